package model

import "time"

type Comment struct {
	ID         int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	ActivityID int64      `json:"activity_id" gorm:"not null;index"`
	UserID     int64      `json:"user_id" gorm:"not null;index"`
	Comment    string     `json:"comment" gorm:"not null"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at"`
}
