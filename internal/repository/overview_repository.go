package repository

import (
	"airmen-backend/internal/model"

	"gorm.io/gorm"
)

type OverviewRepository interface {
	TotalActive() (int64, error)
	RankCounts() (map[model.Rank]int64, error)
	FlightRankMatrix() (map[model.Flight]map[model.Rank]int64, error)
}

type overviewRepository struct {
	db *gorm.DB
}

func NewOverviewRepository(db *gorm.DB) OverviewRepository {
	return &overviewRepository{db}
}

func (r *overviewRepository) TotalActive() (int64, error) {
	var count int64
	err := r.db.Model(&model.Airman{}).Where("status = ?", model.StatusActive).Count(&count).Error
	return count, err
}

// RankCounts groups the active force by rank. Ranks with nobody in them are
// present with a zero count so the report always shows the full ladder.
// RANK is a reserved word in MySQL 8, so the column stays backtick-quoted.
func (r *overviewRepository) RankCounts() (map[model.Rank]int64, error) {
	var rows []struct {
		Rank  model.Rank
		Count int64
	}
	err := r.db.Model(&model.Airman{}).
		Where("status = ?", model.StatusActive).
		Select("`rank`, count(*) as count").
		Group("`rank`").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[model.Rank]int64, len(model.AllRanks))
	for _, rk := range model.AllRanks {
		counts[rk] = 0
	}
	for _, row := range rows {
		if _, known := counts[row.Rank]; known {
			counts[row.Rank] = row.Count
		}
	}
	return counts, nil
}

func (r *overviewRepository) FlightRankMatrix() (map[model.Flight]map[model.Rank]int64, error) {
	var rows []struct {
		Flight model.Flight
		Rank   model.Rank
		Count  int64
	}
	err := r.db.Model(&model.Airman{}).
		Where("status = ?", model.StatusActive).
		Select("flight, `rank`, count(*) as count").
		Group("flight, `rank`").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	matrix := make(map[model.Flight]map[model.Rank]int64, len(model.AllFlights))
	for _, f := range model.AllFlights {
		matrix[f] = make(map[model.Rank]int64, len(model.AllRanks))
		for _, rk := range model.AllRanks {
			matrix[f][rk] = 0
		}
	}
	for _, row := range rows {
		if flight, known := matrix[row.Flight]; known {
			if _, knownRank := flight[row.Rank]; knownRank {
				flight[row.Rank] = row.Count
			}
		}
	}
	return matrix, nil
}
