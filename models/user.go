package models

import "time"

// User is a booking client account. Identity is a thin collaborator of the
// engine: the booking flow only needs the ID and display name.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Timezone     string    `bson:"timezone,omitempty" json:"timezone,omitempty"` // preferred display zone
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
