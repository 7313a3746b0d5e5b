package model

import "time"

type User struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"uniqueIndex;not null"` // login identifier, an email address
	PasswordHash string `gorm:"column:password_hash;not null"`
	KennelID     int64  `gorm:"not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
