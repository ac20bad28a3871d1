package booking

import "slotwise/models"

// SessionPrice returns the fixed price for a session of the given duration
// in hours.
func SessionPrice(durationHours int) float64 {
	if durationHours >= 2 {
		return models.PriceTwoHour
	}
	return models.PriceOneHour
}
