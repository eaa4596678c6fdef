package service

import (
	"strings"

	"airmen-backend/internal/model"
)

// FilterSpec is the structured filter for the active directory. Empty fields
// are inactive; all populated fields must match (conjunction). Deployment is
// one of "", "tdy", "det", "med" and matches on presence of the corresponding
// overlay field rather than its value.
type FilterSpec struct {
	Search          string
	Rank            string
	Trade           string
	Flight          string
	BloodGroup      string
	ServiceCategory string
	Deployment      string
}

const (
	DeploymentAny = ""
	DeploymentTDY = "tdy"
	DeploymentDET = "det"
	DeploymentMed = "med"
)

// FilterAirmen returns the subset of data matching spec. The input slice is
// never modified and its order is preserved in the result.
func FilterAirmen(data []model.Airman, spec FilterSpec) []model.Airman {
	result := make([]model.Airman, 0, len(data))
	term := strings.ToLower(spec.Search)

	for _, a := range data {
		if term != "" && !matchesSearch(&a, term) {
			continue
		}
		if spec.Rank != "" && string(a.Rank) != spec.Rank {
			continue
		}
		if spec.Trade != "" && string(a.Trade) != spec.Trade {
			continue
		}
		if spec.Flight != "" && string(a.Flight) != spec.Flight {
			continue
		}
		if spec.BloodGroup != "" && a.BloodGroup != spec.BloodGroup {
			continue
		}
		if spec.ServiceCategory != "" && string(a.ServiceCategory) != spec.ServiceCategory {
			continue
		}
		if !matchesDeployment(&a, spec.Deployment) {
			continue
		}
		result = append(result, a)
	}
	return result
}

// matchesSearch does a case-insensitive substring check across the fixed set
// of searchable fields. Absent optionals count as empty strings, never as a
// match failure on their own.
func matchesSearch(a *model.Airman, term string) bool {
	fields := []string{
		a.BDNo,
		deref(a.NIDNo),
		a.NameEn,
		a.NameBn,
		a.Mobile,
		string(a.Rank),
		string(a.Trade),
		string(a.Flight),
		a.BloodGroup,
		a.Religion,
		string(a.Accommodation),
		deref(a.AccomAddress),
		deref(a.SpouseName),
		deref(a.TDYLocation),
		deref(a.DETLocation),
		deref(a.MedCat),
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

func matchesDeployment(a *model.Airman, kind string) bool {
	switch kind {
	case DeploymentTDY:
		return a.TDYLocation != nil
	case DeploymentDET:
		return a.DETLocation != nil
	case DeploymentMed:
		return a.MedCat != nil
	default:
		return true
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
