package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCategories are created the first time categories are listed.
var DefaultCategories = []string{"Friend", "Colleague", "Parent", "Kid", "Doorman", "Neighbor"}

type Category struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
