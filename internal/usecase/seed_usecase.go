package usecase

import (
	"context"

	"github.com/google/uuid"
)

// SeedOutput reports what the seeding pass inserted.
type SeedOutput struct {
	Seeded     bool `json:"seeded"`
	Friends    int  `json:"friends"`
	Categories int  `json:"categories"`
	Places     int  `json:"places"`
}

// SeedUsecase populates a fresh account with the demo dataset.
type SeedUsecase interface {
	// Seed inserts the demo friends, categories and places for the user.
	// A user who already has friends is left untouched (Seeded=false).
	Seed(ctx context.Context, userID uuid.UUID) (*SeedOutput, error)
}
