package models

import "time"

// Lead status values.
const (
	LeadStatusNew      = "new"
	LeadStatusRead     = "read"
	LeadStatusArchived = "archived"
)

// Contact is a message submitted through the public contact form,
// optionally referencing the external property it was sent from.
type Contact struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      *string   `json:"phone,omitempty"`
	Message    string    `json:"message"`
	PropertyID *string   `json:"propertyId,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Appraisal is a property-appraisal request submitted through the public
// form. Typology and Operation are validated against closed whitelists
// before the record is ever persisted.
type Appraisal struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Comments  string    `json:"comments,omitempty"`
	Address   string    `json:"address"`
	Area      string    `json:"neighborhood"`
	Typology  string    `json:"typology"`
	Operation string    `json:"operation"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// Admin is a back-office user allowed into the admin panel.
type Admin struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
