package settingsRepo

import (
	"context"

	"slotwise/models"
)

// SettingsRepository stores the provider's weekly availability rule set.
type SettingsRepository interface {
	// GetAvailabilityRules returns the current rule set. An empty result
	// is not an error; callers fall back to models.DefaultSchedule.
	GetAvailabilityRules(ctx context.Context) ([]models.AvailabilityRule, error)

	// SetAvailabilityRules replaces the rule set.
	SetAvailabilityRules(ctx context.Context, rules []models.AvailabilityRule) error
}
