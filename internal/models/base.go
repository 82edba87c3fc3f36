package models

import (
	"time"

	"github.com/google/uuid"
)

// BaseModel contains common fields shared by all entities.
type BaseModel struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewBase returns a BaseModel with a fresh UUID and both timestamps set to now.
func NewBase(now time.Time) BaseModel {
	return BaseModel{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch updates the modification timestamp.
func (b *BaseModel) Touch(now time.Time) {
	b.UpdatedAt = now
}
