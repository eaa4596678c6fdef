package handler

import (
	"net/http"
	"testing"

	"airmen-backend/internal/model"
	"airmen-backend/internal/repository"
	"airmen-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func overviewAirman(bdNo string, rank model.Rank, flight model.Flight, status string) model.Airman {
	a := model.Airman{
		BDNo:          bdNo,
		Rank:          rank,
		Trade:         model.TradeRadOp,
		Flight:        flight,
		NameEn:        "Test Airman " + bdNo,
		NameBn:        "টেস্ট বিমানসেনা",
		Mobile:        "01700000000",
		DOB:           "1990-01-01",
		DOE:           "2010-01-01",
		ArrivalDate:   "2020-01-01",
		BloodGroup:    "O+",
		Religion:      "Islam",
		Accommodation: model.AccomAirmenMess,
		Status:        status,
	}
	service.NormalizeAirman(&a)
	return a
}

func TestOverviewStats(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Airman{}))

	for _, a := range []model.Airman{
		overviewAirman("1001", model.RankSgt, model.FlightRadar, model.StatusActive),
		overviewAirman("1002", model.RankCpl, model.FlightOps, model.StatusActive),
		// Pending submissions stay out of the force totals.
		overviewAirman("1003", model.RankSgt, model.FlightRadar, model.StatusPending),
	} {
		require.NoError(t, db.Create(&a).Error)
	}

	app := fiber.New()
	overview := NewOverviewHandler(repository.NewOverviewRepository(db))
	app.Get("/api/admin/overview", overview.GetStats)

	resp := do(t, app, http.MethodGet, "/api/admin/overview", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode(t, resp)

	data, ok := out["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(2), data["total_force"])
	assert.Equal(t, float64(2), data["nco"])
	assert.Equal(t, float64(0), data["officers"])

	ranks, _ := data["ranks"].([]any)
	require.Len(t, ranks, len(model.AllRanks), "every rank appears even with a zero count")

	flights, _ := data["flights"].([]any)
	require.NotEmpty(t, flights)
	var radarTotal float64
	for _, f := range flights {
		entry := f.(map[string]any)
		if entry["flight"] == string(model.FlightRadar) {
			radarTotal = entry["total"].(float64)
		}
	}
	assert.Equal(t, float64(1), radarTotal)
}
