package models

import (
	"gorm.io/gorm"
)

// Clubs is the enumerated set of club memberships offered on the form. The
// first select option is an empty placeholder and is never a valid choice.
var Clubs = []string{
	"TSV Bitzfeld 1922 e.V.",
	"TSV Schwabbach 1947 e.V.",
}

func ValidClub(value string) bool {
	for _, club := range Clubs {
		if value == club {
			return true
		}
	}
	return false
}

// Person is one registrant inside a registration. Birthdate is kept in the
// form's ISO format (2006-01-02) since it is validated, stored, and rendered
// as a calendar date, never computed with.
type Person struct {
	gorm.Model
	RegistrationID uint   `json:"-"`
	Firstname      string `json:"person_firstname"`
	Lastname       string `json:"person_lastname"`
	Birthdate      string `json:"birthdate"`
	ClubMembership string `json:"club_membership"`
}

type Registration struct {
	gorm.Model
	Persons          []Person `json:"persons" gorm:"constraint:OnDelete:CASCADE"`
	ContactFirstname string   `json:"contact_firstname"`
	ContactLastname  string   `json:"contact_lastname"`
	PhoneNumber      string   `json:"phone_number"`
	Email            string   `json:"email"`
	Confirmed        bool     `json:"confirmed"`
}

// Stats are the dashboard counters. Computed server-side, displayed as-is.
type Stats struct {
	TotalRegistrations     int64 `json:"total_registrations"`
	ConfirmedRegistrations int64 `json:"confirmed_registrations"`
	TotalPersons           int64 `json:"total_persons"`
}
