package handler

import (
	"airmen-backend/internal/model"
	"airmen-backend/internal/service"
)

// airmanView decorates a record with the display-only derived fields the
// directory and review surfaces show. Computed per read, never stored.
type airmanView struct {
	model.Airman
	Age             int    `json:"age"`
	Service         string `json:"service"`
	ArrivalDuration string `json:"arrival_duration"`
}

func newAirmanView(a model.Airman) airmanView {
	return airmanView{
		Airman:          a,
		Age:             service.Age(a.DOB),
		Service:         service.Tenure(a.DOE),
		ArrivalDuration: service.Tenure(a.ArrivalDate),
	}
}

func newAirmanViews(list []model.Airman) []airmanView {
	views := make([]airmanView, 0, len(list))
	for _, a := range list {
		views = append(views, newAirmanView(a))
	}
	return views
}
