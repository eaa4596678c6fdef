package model

import "gorm.io/gorm"

// Airman is one person's administrative file. Optional columns are pointers:
// a nil pointer is stored as NULL and marshals as JSON null, which is how
// "no value" is represented everywhere in this system. An empty string is
// never persisted for these fields.
type Airman struct {
	gorm.Model
	BDNo          string  `json:"bd_no" gorm:"column:bd_no;not null"`
	NIDNo         *string `json:"nid_no" gorm:"column:nid_no"`
	TotalChildren int     `json:"total_children"`

	Rank   Rank   `json:"rank" gorm:"not null"`
	Trade  Trade  `json:"trade" gorm:"not null"`
	Flight Flight `json:"flight" gorm:"not null"`

	NameEn string `json:"name_en" gorm:"not null"`
	NameBn string `json:"name_bn" gorm:"not null"`
	Mobile string `json:"mobile"`

	// ISO dates (2006-01-02).
	DOB         string `json:"dob" gorm:"column:dob"`
	DOE         string `json:"doe" gorm:"column:doe"`
	ArrivalDate string `json:"arrival_date"`

	// Derived from DOE, recomputed on every write path that touches it.
	ServiceCategory ServiceCategory `json:"service_category"`

	HeightFeet   int    `json:"height_feet"`
	HeightInches int    `json:"height_inches"`
	BloodGroup   string `json:"blood_group"`
	Religion     string `json:"religion"`

	IsMarried  bool    `json:"is_married"`
	SpouseName *string `json:"spouse_name"`

	Accommodation Accommodation `json:"accommodation"`
	LOutDate      *string       `json:"l_out_date" gorm:"column:l_out_date"`
	AccomAddress  *string       `json:"accom_address"`

	// Deployment/medical overlay. Presence (non-nil) drives status badges
	// and the deployment filter.
	TDYLocation *string `json:"tdy_location" gorm:"column:tdy_location"`
	DETLocation *string `json:"det_location" gorm:"column:det_location"`
	MedCat      *string `json:"med_cat" gorm:"column:med_cat"`

	Status        string `json:"status" gorm:"default:active;index"`
	SubmissionRef string `json:"submission_ref"`
}

// Validate checks the enumerated attributes and the required identity fields.
// Everything else is free text and the form boundary's problem.
func (a *Airman) Validate() error {
	switch {
	case a.BDNo == "":
		return ErrFieldRequired("bd_no")
	case a.NameEn == "":
		return ErrFieldRequired("name_en")
	case a.NameBn == "":
		return ErrFieldRequired("name_bn")
	case !a.Rank.Valid():
		return ErrBadEnum("rank", string(a.Rank))
	case !a.Trade.Valid():
		return ErrBadEnum("trade", string(a.Trade))
	case !a.Flight.Valid():
		return ErrBadEnum("flight", string(a.Flight))
	case !a.Accommodation.Valid():
		return ErrBadEnum("accommodation", string(a.Accommodation))
	}
	return nil
}
