package entity

import "time"

const birthDateLayout = "2006-01-02"

const minimumAge = 18

// BirthDate is a calendar date, normalized to midnight UTC so two instances
// built from the same day always compare equal.
type BirthDate struct {
	value time.Time
}

func NewBirthDate(date time.Time) (BirthDate, error) {
	if date.IsZero() {
		return BirthDate{}, InvalidBirthDateError{Raw: ""}
	}
	b := BirthDate{value: time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)}
	if b.value.After(time.Now()) || b.Age() < minimumAge {
		return BirthDate{}, InvalidBirthDateError{Raw: b.value.Format(birthDateLayout)}
	}
	return b, nil
}

// ParseBirthDate accepts the wire format YYYY-MM-DD.
func ParseBirthDate(raw string) (BirthDate, error) {
	date, err := time.Parse(birthDateLayout, raw)
	if err != nil {
		return BirthDate{}, InvalidBirthDateError{Raw: raw}
	}
	return NewBirthDate(date)
}

func (b BirthDate) Value() time.Time {
	return b.value
}

func (b BirthDate) String() string {
	return b.value.Format(birthDateLayout)
}

// Age is the number of whole years elapsed since the birth date.
func (b BirthDate) Age() int {
	now := time.Now()
	age := now.Year() - b.value.Year()
	// The year difference overcounts until the anniversary has passed.
	if now.Month() < b.value.Month() ||
		(now.Month() == b.value.Month() && now.Day() < b.value.Day()) {
		age--
	}
	return age
}
