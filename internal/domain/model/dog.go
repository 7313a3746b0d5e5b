package model

import (
	"fmt"
	"time"
)

type Dog struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"not null;index"`
	Breed       string    `json:"breed" gorm:"not null"`
	DateOfBirth time.Time `json:"date_of_birth" gorm:"not null"`
	KennelID    int64     `json:"kennel_id" gorm:"not null;index"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

// Age returns the dog's age at asOf in years, the decimal part being the
// fraction of the current year already elapsed.
func (d Dog) Age(asOf time.Time) (float64, error) {
	dob := d.DateOfBirth
	if asOf.Before(dob) {
		return 0, fmt.Errorf("age reference date %s is before date of birth %s",
			asOf.Format("2006-01-02"), dob.Format("2006-01-02"))
	}

	years := asOf.Year() - dob.Year()
	anniversary := time.Date(asOf.Year(), dob.Month(), dob.Day(), 0, 0, 0, 0, asOf.Location())
	if asOf.Before(anniversary) {
		years--
		anniversary = time.Date(asOf.Year()-1, dob.Month(), dob.Day(), 0, 0, 0, 0, asOf.Location())
	}

	yearStart := time.Date(asOf.Year(), 1, 1, 0, 0, 0, 0, asOf.Location())
	daysInYear := time.Date(asOf.Year()+1, 1, 1, 0, 0, 0, 0, asOf.Location()).Sub(yearStart).Hours() / 24
	sinceAnniversary := asOf.Sub(anniversary).Hours() / 24

	return float64(years) + sinceAnniversary/daysInYear, nil
}
