package model

type Runner struct {
	ID       int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name     string `json:"name" gorm:"not null"`
	KennelID int64  `json:"kennel_id" gorm:"not null;index"`
}
