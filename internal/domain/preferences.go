package domain

import (
	"time"

	"github.com/google/uuid"
)

// AgeRange bounds are inclusive; a nil bound is open.
type AgeRange struct {
	Min *int `json:"min" binding:"omitempty,min=18,max=120"`
	Max *int `json:"max" binding:"omitempty,min=18,max=120"`
}

// Preferences is the feed filter document of a user. Empty lists mean
// "no filter" for that attribute.
type Preferences struct {
	UserID              uuid.UUID `json:"-"`
	AgeRange            *AgeRange `json:"ageRange"`
	DistanceMax         *int      `json:"distanceMax"`
	GenderPreference    []string  `json:"genderPreference"`
	EthnicityPreference []string  `json:"ethnicityPreference"`
	ReligionPreference  []string  `json:"religionPreference"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

func (p *Preferences) Validate() error {
	if p.AgeRange != nil && p.AgeRange.Min != nil && p.AgeRange.Max != nil && *p.AgeRange.Min > *p.AgeRange.Max {
		return ErrInvalidAgeRange
	}
	return nil
}

// FeedFilter is the resolved candidate query derived from Preferences.
type FeedFilter struct {
	Genders     []string
	Ethnicities []string
	Religions   []string
	// BornAfter/BornBefore translate the age range into birthdate bounds.
	BornAfter  *time.Time
	BornBefore *time.Time
}

// Filter converts preferences into birthdate bounds relative to now.
func (p *Preferences) Filter(now time.Time) FeedFilter {
	f := FeedFilter{
		Genders:     p.GenderPreference,
		Ethnicities: p.EthnicityPreference,
		Religions:   p.ReligionPreference,
	}
	if p.AgeRange == nil {
		return f
	}
	if p.AgeRange.Min != nil {
		// at least Min years old: born on or before today minus Min years
		t := yearsBefore(now, *p.AgeRange.Min)
		f.BornBefore = &t
	}
	if p.AgeRange.Max != nil {
		// at most Max years old: born after today minus Max+1 years
		t := yearsBefore(now, *p.AgeRange.Max+1)
		f.BornAfter = &t
	}
	return f
}

// yearsBefore returns the calendar date n years before now. Feb 29 maps to
// Feb 28 in non-leap years instead of rolling into March.
func yearsBefore(now time.Time, n int) time.Time {
	year, month, day := now.Year()-n, now.Month(), now.Day()
	if month == time.February && day == 29 && !isLeap(year) {
		day = 28
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
