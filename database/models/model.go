package models

import "time"

// Model is the base for every entity: a synthetic integer identity and
// server-assigned timestamps.
type Model struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m Model) GetID() uint {
	return m.ID
}
