package model

import "time"

// DogWeight is one weight measurement. Age is the dog's age at the time of
// the entry, derived from the dog's date of birth when the row is created.
type DogWeight struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Date      time.Time `json:"date" gorm:"not null;index"`
	DogID     int64     `json:"dog_id" gorm:"not null;index"`
	Weight    float64   `json:"weight" gorm:"not null"`
	Age       float64   `json:"age"`
	CreatedAt time.Time `json:"-"`
}
