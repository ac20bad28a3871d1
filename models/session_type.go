package models

// SessionTypes are the consulting formats a client can book.
var SessionTypes = []string{
	"AI Automation Agents Building",
	"App Development using AI Tools",
	"Custom AI Strategy Consulting",
	"Large Language Model Fine-tuning",
}

// Session pricing in USD per fixed duration.
const (
	PriceOneHour = 120.0
	PriceTwoHour = 200.0
)

// ValidSessionType reports whether t is a bookable session type.
func ValidSessionType(t string) bool {
	for _, s := range SessionTypes {
		if s == t {
			return true
		}
	}
	return false
}
