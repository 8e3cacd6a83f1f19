package models

import "time"

// Roles a user can register with.
const (
	RoleRestaurant = "restaurant"
	RoleNGO        = "ngo"
)

// Verification review states.
const (
	VerificationPending  = "pending"
	VerificationVerified = "verified"
	VerificationRejected = "rejected"
)

// Verification holds the document-review sub-record of a user.
type Verification struct {
	Status          string     `gorm:"default:pending" json:"status"`
	Document        *string    `json:"document,omitempty"`
	Number          *string    `json:"number,omitempty"`
	Expiry          *time.Time `json:"expiry,omitempty"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`
}

// User represents a registered restaurant or NGO account.
//
// Role-specific fields are nullable columns; registration validation guarantees
// exactly the declared role's fields are set, and JSON output omits the rest.
type User struct {
	BaseModel
	Name         string  `json:"name"`
	Email        string  `gorm:"uniqueIndex" json:"email"`
	PasswordHash string  `json:"-"`
	Role         string  `json:"role"`
	Phone        string  `json:"phone"`
	Address      string  `json:"address"`
	City         string  `json:"city"`
	ZipCode      string  `json:"zip_code"`
	ProfileImage *string `json:"profile_image"`

	IsAdmin      bool         `json:"-"`
	IsVerified   bool         `json:"is_verified"`
	Verification Verification `gorm:"embedded;embeddedPrefix:verification_" json:"verification"`

	// Restaurant fields
	RestaurantType *string `json:"restaurant_type,omitempty"`
	OperatingHours *string `json:"operating_hours,omitempty"`

	// NGO fields
	NGOType             *string `json:"ngo_type,omitempty"`
	ServiceArea         *string `json:"service_area,omitempty"`
	BeneficiariesServed *int    `json:"beneficiaries_served,omitempty"`
}
