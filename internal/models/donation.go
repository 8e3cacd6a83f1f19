package models

import (
	"time"

	"github.com/google/uuid"
)

// Donation lifecycle states.
const (
	DonationAvailable = "available"
	DonationClaimed   = "claimed"
	DonationCompleted = "completed"
)

// Donation is a surplus-food listing created by a restaurant.
type Donation struct {
	BaseModel
	DonorID     uuid.UUID `gorm:"type:uuid;index" json:"donor_id"`
	Donor       *User     `gorm:"foreignKey:DonorID" json:"donor,omitempty"`
	FoodType    string    `json:"food_type"`
	Quantity    float64   `json:"quantity"`
	ExpiryDate  time.Time `json:"expiry_date"`
	Location    string    `json:"location"`
	Description string    `json:"description,omitempty"`
	Status      string    `gorm:"default:available;index" json:"status"`
}

// donationTransitions is the allowed forward-only status table.
var donationTransitions = map[string]string{
	DonationAvailable: DonationClaimed,
	DonationClaimed:   DonationCompleted,
}

// ValidDonationStatus reports whether s is a known lifecycle state.
func ValidDonationStatus(s string) bool {
	switch s {
	case DonationAvailable, DonationClaimed, DonationCompleted:
		return true
	}
	return false
}

// CanTransition reports whether a donation may move from one status to another.
// Writing the current status back is accepted as a no-op.
func CanTransition(from, to string) bool {
	if from == to {
		return ValidDonationStatus(to)
	}
	return donationTransitions[from] == to
}
