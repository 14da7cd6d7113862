package models

import "time"

// BaseModel provides shared fields for all persistent models. Identifiers are
// database-assigned autoincrement integers.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
