package service

import (
	"fmt"
	"time"

	"airmen-backend/internal/model"
)

// Derived-field calculations. All functions are total: an absent or
// unparseable date yields the zero answer instead of an error, so a bad
// row can never take a listing down.

const dateLayout = "2006-01-02"

// AgeAt returns the whole-year difference between now and dob.
func AgeAt(dob string, now time.Time) int {
	return wholeYears(dob, now)
}

// Age is AgeAt against the current clock.
func Age(dob string) int {
	return AgeAt(dob, time.Now())
}

// TenureAt formats the elapsed time since date as "<years>y <months>m",
// months being the whole-month remainder modulo 12.
func TenureAt(date string, now time.Time) string {
	from, err := time.Parse(dateLayout, date)
	if err != nil {
		return "0y 0m"
	}
	years := diffWholeYears(from, now)
	months := diffWholeMonths(from, now) % 12
	if years < 0 || months < 0 {
		return "0y 0m"
	}
	return fmt.Sprintf("%dy %dm", years, months)
}

// Tenure is TenureAt against the current clock.
func Tenure(date string) string {
	return TenureAt(date, time.Now())
}

// TenureYearsAt returns the whole elapsed years since date. It is
// monotonically non-decreasing as now advances.
func TenureYearsAt(date string, now time.Time) int {
	return wholeYears(date, now)
}

// TenureYears is TenureYearsAt against the current clock.
func TenureYears(date string) int {
	return TenureYearsAt(date, time.Now())
}

// ClassifyServiceAt derives the two-valued service category from the date of
// enrollment: 15 or more whole years is "Above 15 Years". The 15th
// anniversary itself already counts as above.
func ClassifyServiceAt(doe string, now time.Time) model.ServiceCategory {
	if TenureYearsAt(doe, now) >= 15 {
		return model.CategoryAbove15
	}
	return model.CategoryBelow15
}

// ClassifyService is ClassifyServiceAt against the current clock.
func ClassifyService(doe string) model.ServiceCategory {
	return ClassifyServiceAt(doe, time.Now())
}

func wholeYears(date string, now time.Time) int {
	from, err := time.Parse(dateLayout, date)
	if err != nil {
		return 0
	}
	years := diffWholeYears(from, now)
	if years < 0 {
		return 0
	}
	return years
}

func diffWholeYears(from, to time.Time) int {
	years := to.Year() - from.Year()
	if from.AddDate(years, 0, 0).After(to) {
		years--
	}
	return years
}

func diffWholeMonths(from, to time.Time) int {
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if from.AddDate(0, months, 0).After(to) {
		months--
	}
	return months
}
