package model

// Kennel is the tenant record. Every user and every domain row belongs to
// exactly one kennel.
type Kennel struct {
	ID   int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}
