// Package validation checks a registration submission against a declarative
// per-field rule table and returns its findings as the wire-level error map.
// The browser-side controller applies the same rules with the same messages,
// so server findings render exactly like client findings.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/tsv-bitzfeld/sommerfest-anmeldung/internal/models"
)

const (
	MsgRequired     = "Dieses Feld ist erforderlich"
	MsgNameTooShort = "Mindestens 2 Zeichen erforderlich"
	MsgNameCharset  = "Nur Buchstaben und Bindestriche erlaubt"
	MsgEmail        = "Ungültige E-Mail-Adresse"
	MsgPhone        = "Ungültiges Telefonnummerformat"
	MsgBirthdate    = "Geburtsdatum kann nicht in der Zukunft liegen"
	MsgClub         = "Bitte eine Option auswählen"
)

var (
	nameRe  = regexp.MustCompile(`^[A-Za-zÄÖÜäöüß\s-]+$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Area code of 4 digits with a 7 or 8 digit number, or 5 digits with a
	// 6 or 7 digit number, optionally separated by a hyphen or space.
	phoneRe = regexp.MustCompile(`^(?:\d{4}[- ]?\d{7,8}|\d{5}[- ]?\d{6,7})$`)
)

// timeNow is a variable for testability.
var timeNow = time.Now

// PersonInput is one person sub-form as submitted over the wire.
type PersonInput struct {
	Firstname      string `json:"person_firstname" doc:"First name of the person"`
	Lastname       string `json:"person_lastname" doc:"Last name of the person"`
	Birthdate      string `json:"birthdate" doc:"Birthdate in 2006-01-02 format"`
	ClubMembership string `json:"club_membership" doc:"Club membership of the person"`
}

// Submission is the JSON payload of one registration attempt.
type Submission struct {
	CSRFToken        string        `json:"csrf_token" doc:"CSRF token issued with the form page"`
	Persons          []PersonInput `json:"persons" doc:"Registered persons, at least one"`
	ContactFirstname string        `json:"contact_firstname" doc:"First name of the contact person"`
	ContactLastname  string        `json:"contact_lastname" doc:"Last name of the contact person"`
	PhoneNumber      string        `json:"phone_number" doc:"Phone number of the contact person"`
	Email            string        `json:"email" doc:"E-mail address of the contact person"`
}

// Errors maps a form field name to its messages. Person fields carry the
// 1-based positional suffix of their sub-form (person_firstname_2) so the
// client can attach each message to the matching input.
type Errors map[string][]string

func (e Errors) add(field, msg string) {
	e[field] = append(e[field], msg)
}

// Rule is one declarative validation step. Check receives the trimmed,
// non-empty value; Message is attached when Check fails. The required check
// runs before any rule and is implicit for every field in the table.
type Rule struct {
	Check   func(string) bool
	Message string
}

var (
	nameRules = []Rule{
		{func(v string) bool { return len([]rune(v)) >= 2 }, MsgNameTooShort},
		{nameRe.MatchString, MsgNameCharset},
	}
	emailRules = []Rule{
		{emailRe.MatchString, MsgEmail},
	}
	phoneRules = []Rule{
		{phoneRe.MatchString, MsgPhone},
	}
	birthdateRules = []Rule{
		{notInFuture, MsgBirthdate},
	}
	clubRules = []Rule{
		{models.ValidClub, MsgClub},
	}
)

// notInFuture accepts ISO dates up to and including today. An unparsable
// value also fails, keeping the finding on the birthdate field.
func notInFuture(v string) bool {
	d, err := time.Parse("2006-01-02", v)
	if err != nil {
		return false
	}
	return !d.After(timeNow())
}

// ValidateSubmission applies the rule table to every field of s. All
// violations are collected in one pass; an empty map means the submission is
// valid. The function has no side effects.
func ValidateSubmission(s *Submission) Errors {
	errs := Errors{}

	checkField(errs, "contact_firstname", s.ContactFirstname, nameRules)
	checkField(errs, "contact_lastname", s.ContactLastname, nameRules)
	checkField(errs, "phone_number", s.PhoneNumber, phoneRules)
	checkField(errs, "email", s.Email, emailRules)

	for i, p := range s.Persons {
		n := i + 1
		checkField(errs, fmt.Sprintf("person_firstname_%d", n), p.Firstname, nameRules)
		checkField(errs, fmt.Sprintf("person_lastname_%d", n), p.Lastname, nameRules)
		checkField(errs, fmt.Sprintf("birthdate_%d", n), p.Birthdate, birthdateRules)
		checkField(errs, fmt.Sprintf("club_membership_%d", n), p.ClubMembership, clubRules)
	}

	return errs
}

// Complete reports whether every required value of a person is present.
// Used as a defensive double-check when collecting persons for persistence.
func (p PersonInput) Complete() bool {
	return strings.TrimSpace(p.Firstname) != "" &&
		strings.TrimSpace(p.Lastname) != "" &&
		strings.TrimSpace(p.Birthdate) != "" &&
		strings.TrimSpace(p.ClubMembership) != ""
}

func checkField(errs Errors, field, value string, rules []Rule) {
	value = strings.TrimSpace(value)
	if value == "" {
		errs.add(field, MsgRequired)
		return
	}
	for _, rule := range rules {
		if !rule.Check(value) {
			errs.add(field, rule.Message)
			return
		}
	}
}
