package service

import (
	"testing"

	"airmen-backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeClearsSpouseWhenUnmarried(t *testing.T) {
	a := model.Airman{
		IsMarried:     false,
		SpouseName:    strPtr("X"),
		Accommodation: model.AccomAirmenMess,
	}
	NormalizeAirmanAt(&a, date("2024-06-01"))
	assert.Nil(t, a.SpouseName)

	b := model.Airman{
		IsMarried:     true,
		SpouseName:    strPtr("Ayesha Begum"),
		Accommodation: model.AccomAirmenMess,
	}
	NormalizeAirmanAt(&b, date("2024-06-01"))
	assert.NotNil(t, b.SpouseName)
}

func TestNormalizeEmptyStringsBecomeNil(t *testing.T) {
	a := model.Airman{
		NIDNo:         strPtr(""),
		TDYLocation:   strPtr(""),
		DETLocation:   strPtr(""),
		MedCat:        strPtr(""),
		AccomAddress:  strPtr(""),
		Accommodation: model.AccomAirmenMess,
	}
	NormalizeAirmanAt(&a, date("2024-06-01"))

	assert.Nil(t, a.NIDNo)
	assert.Nil(t, a.TDYLocation)
	assert.Nil(t, a.DETLocation)
	assert.Nil(t, a.MedCat)
	assert.Nil(t, a.AccomAddress)
}

func TestNormalizeLOutDateOnlyForLivingOutModes(t *testing.T) {
	a := model.Airman{
		Accommodation: model.AccomAirmenMess,
		LOutDate:      strPtr("2023-01-01"),
	}
	NormalizeAirmanAt(&a, date("2024-06-01"))
	assert.Nil(t, a.LOutDate, "mess dwellers keep no living-out date")

	b := model.Airman{
		Accommodation: model.AccomLOSQ,
		LOutDate:      strPtr("2023-01-01"),
	}
	NormalizeAirmanAt(&b, date("2024-06-01"))
	assert.NotNil(t, b.LOutDate)
}

func TestNormalizeRecomputesServiceCategory(t *testing.T) {
	a := model.Airman{
		DOE:             "2000-01-01",
		ServiceCategory: model.CategoryBelow15, // stale caller value
		Accommodation:   model.AccomAirmenMess,
	}
	NormalizeAirmanAt(&a, date("2024-06-01"))
	assert.Equal(t, model.CategoryAbove15, a.ServiceCategory)

	a.DOE = "2020-01-01"
	NormalizeAirmanAt(&a, date("2024-06-01"))
	assert.Equal(t, model.CategoryBelow15, a.ServiceCategory)
}
