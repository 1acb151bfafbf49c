package handlers

import (
	"context"
	"log"
	"strings"

	"github.com/tsv-bitzfeld/sommerfest-anmeldung/internal/models"
	"github.com/tsv-bitzfeld/sommerfest-anmeldung/internal/notifier"
	"github.com/tsv-bitzfeld/sommerfest-anmeldung/internal/validation"
	"gorm.io/gorm"
)

type RegistrationHandler struct {
	db       *gorm.DB
	notifier notifier.Notifier
}

func NewRegistrationHandler(db *gorm.DB, notifier notifier.Notifier) *RegistrationHandler {
	return &RegistrationHandler{db: db, notifier: notifier}
}

type SubmitRequest struct {
	RequestedWith string `header:"X-Requested-With" doc:"AJAX marker sent by the form controller"`
	Body          validation.Submission
}

// SubmitResponse is the union the form controller dispatches on: a non-empty
// Errors map means field-level findings, otherwise Success or Error decides.
type SubmitResponse struct {
	Body struct {
		Success bool              `json:"success"`
		Error   string            `json:"error,omitempty"`
		Errors  validation.Errors `json:"errors,omitempty"`
	}
}

func (h *RegistrationHandler) HandleSubmit(ctx context.Context, input *SubmitRequest) (*SubmitResponse, error) {
	res := &SubmitResponse{}

	// The client collects persons before submitting; an empty sequence here
	// means it was bypassed.
	if len(input.Body.Persons) == 0 {
		res.Body.Error = "Bitte fügen Sie mindestens eine Person hinzu."
		return res, nil
	}

	if errs := validation.ValidateSubmission(&input.Body); len(errs) > 0 {
		res.Body.Errors = errs
		return res, nil
	}

	registration := models.Registration{
		ContactFirstname: strings.TrimSpace(input.Body.ContactFirstname),
		ContactLastname:  strings.TrimSpace(input.Body.ContactLastname),
		PhoneNumber:      strings.TrimSpace(input.Body.PhoneNumber),
		Email:            strings.TrimSpace(input.Body.Email),
	}
	for _, p := range input.Body.Persons {
		if !p.Complete() {
			continue
		}
		registration.Persons = append(registration.Persons, models.Person{
			Firstname:      strings.TrimSpace(p.Firstname),
			Lastname:       strings.TrimSpace(p.Lastname),
			Birthdate:      strings.TrimSpace(p.Birthdate),
			ClubMembership: p.ClubMembership,
		})
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&registration).Error
	})
	if err != nil {
		log.Printf("Failed to save registration: %v", err)
		res.Body.Error = "Die Anmeldung konnte nicht gespeichert werden."
		return res, nil
	}

	if h.notifier != nil {
		if err := h.notifier.NotifyRegistration(registration); err != nil {
			log.Printf("Failed to notify about registration %d: %v", registration.ID, err)
		}
	}

	res.Body.Success = true
	return res, nil
}
