package seeders

import (
	"handover-system/internal/repositories"

	"go.uber.org/zap"
)

// Seed loads the demo dataset into the store.
func Seed(store *repositories.Store, logger *zap.Logger) {
	store.Seed(repositories.SeedData{
		Companies: companies,
		Users:     users,
		Equipment: equipment,
		Handovers: handovers,
		Requests:  requests,
		Profiles:  profiles,
	})

	logger.Info("seed data loaded",
		zap.Int("companies", len(companies)),
		zap.Int("users", len(users)),
		zap.Int("equipment", len(equipment)),
		zap.Int("requests", len(requests)),
		zap.Int("profiles", len(profiles)),
	)
}
