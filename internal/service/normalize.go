package service

import (
	"time"

	"airmen-backend/internal/model"
)

// NormalizeAirmanAt enforces the record invariants ahead of any persist.
// Every write path (admin create, public submit, full update, status patch)
// runs through here so the rules cannot drift between entry points:
//
//   - empty-string optionals become NULL, never a stored blank
//   - spouse name is cleared while unmarried
//   - the living-out date only survives under a living-out accommodation mode
//   - the service category is recomputed from the date of enrollment
func NormalizeAirmanAt(a *model.Airman, now time.Time) {
	a.NIDNo = blankToNil(a.NIDNo)
	a.SpouseName = blankToNil(a.SpouseName)
	a.LOutDate = blankToNil(a.LOutDate)
	a.AccomAddress = blankToNil(a.AccomAddress)
	a.TDYLocation = blankToNil(a.TDYLocation)
	a.DETLocation = blankToNil(a.DETLocation)
	a.MedCat = blankToNil(a.MedCat)

	if !a.IsMarried {
		a.SpouseName = nil
	}
	if !a.Accommodation.LivingOut() {
		a.LOutDate = nil
	}

	a.ServiceCategory = ClassifyServiceAt(a.DOE, now)
}

// NormalizeAirman is NormalizeAirmanAt against the current clock.
func NormalizeAirman(a *model.Airman) {
	NormalizeAirmanAt(a, time.Now())
}

func blankToNil(s *string) *string {
	if s != nil && *s == "" {
		return nil
	}
	return s
}
