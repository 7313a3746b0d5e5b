package model

import "time"

// RefreshToken is one live session row. Only the sha256 of the raw refresh
// token is ever stored; the raw value exists client-side only.
type RefreshToken struct {
	ID                 string    `json:"id" gorm:"type:uuid;primaryKey"`
	UserID             int64     `json:"userId" gorm:"not null;index"`
	HashedRefreshToken string    `json:"-" gorm:"column:hashed_refresh_token;not null;uniqueIndex"`
	ExpiresOn          time.Time `json:"expiresOn" gorm:"not null;index"`
	CreatedAt          time.Time `json:"createdAt"`
}
