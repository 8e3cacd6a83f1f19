package models

// Contact message triage states. Admins move messages out of "new" as they
// are handled; the value is free-form beyond the default.
const ContactStatusNew = "new"

// ContactMessage is a submission from the public contact form.
type ContactMessage struct {
	BaseModel
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Status  string `gorm:"default:new" json:"status"`
}
