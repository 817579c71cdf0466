package models

import "gorm.io/gorm"

// ContactMessage is one validated contact-form submission. Rows are
// written once and never updated; deletion is a manual admin action.
type ContactMessage struct {
	gorm.Model
	FirstName string `gorm:"type:varchar(80);not null" json:"first_name"`
	LastName  string `gorm:"type:varchar(80)" json:"last_name,omitempty"`
	Email     string `gorm:"type:varchar(254);not null" json:"email"`
	Phone     string `gorm:"type:varchar(40)" json:"phone,omitempty"`
	Subject   string `gorm:"type:varchar(160);not null" json:"subject"`
	Message   string `gorm:"not null" json:"message"`

	// Server-stamped request metadata.
	IP        string `gorm:"type:varchar(45)" json:"ip,omitempty"`
	UserAgent string `gorm:"type:varchar(500)" json:"user_agent,omitempty"`
}
