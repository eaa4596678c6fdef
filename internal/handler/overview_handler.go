package handler

import (
	"airmen-backend/internal/model"
	"airmen-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// OverviewHandler produces the analytics summary: force totals, rank ladder
// distribution and the flight-by-rank matrix.
type OverviewHandler struct {
	repo repository.OverviewRepository
}

func NewOverviewHandler(repo repository.OverviewRepository) *OverviewHandler {
	return &OverviewHandler{repo: repo}
}

func (h *OverviewHandler) GetStats(c *fiber.Ctx) error {
	total, err := h.repo.TotalActive()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load overview: " + err.Error()})
	}

	rankCounts, err := h.repo.RankCounts()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load overview: " + err.Error()})
	}

	matrix, err := h.repo.FlightRankMatrix()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load overview: " + err.Error()})
	}

	// Seniority buckets as shown on the overview cards.
	officers := rankCounts[model.RankMWO] + rankCounts[model.RankSWO] + rankCounts[model.RankWO]
	nco := rankCounts[model.RankSgt] + rankCounts[model.RankCpl]
	other := rankCounts[model.RankLAC] + rankCounts[model.RankAC]

	ranks := make([]fiber.Map, 0, len(model.AllRanks))
	for _, r := range model.AllRanks {
		ranks = append(ranks, fiber.Map{
			"rank":  r,
			"label": model.RankLabels[r],
			"count": rankCounts[r],
		})
	}

	flights := make([]fiber.Map, 0, len(model.AllFlights))
	for _, f := range model.AllFlights {
		var flightTotal int64
		byRank := make(map[model.Rank]int64, len(model.AllRanks))
		for _, r := range model.AllRanks {
			byRank[r] = matrix[f][r]
			flightTotal += matrix[f][r]
		}
		flights = append(flights, fiber.Map{
			"flight": f,
			"total":  flightTotal,
			"ranks":  byRank,
		})
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"total_force": total,
			"officers":    officers,
			"nco":         nco,
			"other_ranks": other,
			"ranks":       ranks,
			"flights":     flights,
		},
	})
}
