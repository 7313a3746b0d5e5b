package model

import "time"

type Activity struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Timestamp time.Time `json:"timestamp" gorm:"not null;index"`
	RunnerID  int64     `json:"runner_id" gorm:"not null;index"`
	SportID   int64     `json:"sport_id" gorm:"not null;index"`
	KennelID  int64     `json:"kennel_id" gorm:"not null;index"`
	Location  string    `json:"location" gorm:"not null"`
	Distance  float64   `json:"distance" gorm:"not null"`
	Workout   bool      `json:"workout" gorm:"not null"`
	Notes     string    `json:"notes"`
	Speed     *float64  `json:"speed"` // km/h
	Pace      *string   `json:"pace"`  // min/km, "MM:SS"
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
