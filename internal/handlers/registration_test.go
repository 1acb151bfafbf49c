package handlers

import (
	"context"
	"testing"

	"github.com/tsv-bitzfeld/sommerfest-anmeldung/internal/models"
	"github.com/tsv-bitzfeld/sommerfest-anmeldung/internal/validation"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.Registration{}, &models.Person{}); err != nil {
		t.Fatalf("failed to auto migrate: %v", err)
	}
	return db
}

func validSubmitRequest() *SubmitRequest {
	req := &SubmitRequest{RequestedWith: "XMLHttpRequest"}
	req.Body = validation.Submission{
		CSRFToken: "token",
		Persons: []validation.PersonInput{
			{Firstname: "Lena", Lastname: "Weber", Birthdate: "2014-05-30", ClubMembership: "TSV Bitzfeld 1922 e.V."},
			{Firstname: "Max", Lastname: "Weber", Birthdate: "2016-02-11", ClubMembership: "TSV Schwabbach 1947 e.V."},
		},
		ContactFirstname: "Jörg",
		ContactLastname:  "Weber",
		PhoneNumber:      "0711-1234567",
		Email:            "joerg.weber@example.de",
	}
	return req
}

// countingNotifier records how often it was called.
type countingNotifier struct {
	calls int
	last  models.Registration
	err   error
}

func (n *countingNotifier) NotifyRegistration(registration models.Registration) error {
	n.calls++
	n.last = registration
	return n.err
}

func TestHandleSubmit(t *testing.T) {
	db := setupDB(t)
	notifier := &countingNotifier{}
	handler := NewRegistrationHandler(db, notifier)

	resp, err := handler.HandleSubmit(context.Background(), validSubmitRequest())
	if err != nil {
		t.Fatalf("HandleSubmit returned error: %v", err)
	}
	if !resp.Body.Success {
		t.Fatalf("expected success, got %+v", resp.Body)
	}

	var count int64
	db.Model(&models.Registration{}).Count(&count)
	if count != 1 {
		t.Errorf("expected 1 registration in DB, got %d", count)
	}
	db.Model(&models.Person{}).Count(&count)
	if count != 2 {
		t.Errorf("expected 2 persons in DB, got %d", count)
	}

	var registration models.Registration
	if err := db.Preload("Persons").First(&registration).Error; err != nil {
		t.Fatalf("failed to find registration: %v", err)
	}
	if registration.ContactFirstname != "Jörg" {
		t.Errorf("expected contact 'Jörg', got '%s'", registration.ContactFirstname)
	}
	if registration.Confirmed {
		t.Error("new registration must not be confirmed")
	}

	if notifier.calls != 1 {
		t.Errorf("expected 1 notification, got %d", notifier.calls)
	}
	if len(notifier.last.Persons) != 2 {
		t.Errorf("expected notification to carry 2 persons, got %d", len(notifier.last.Persons))
	}
}

func TestHandleSubmit_NoPersons(t *testing.T) {
	db := setupDB(t)
	handler := NewRegistrationHandler(db, nil)

	req := validSubmitRequest()
	req.Body.Persons = nil

	resp, err := handler.HandleSubmit(context.Background(), req)
	if err != nil {
		t.Fatalf("HandleSubmit returned error: %v", err)
	}
	if resp.Body.Success {
		t.Error("expected submission to be rejected")
	}
	if resp.Body.Error != "Bitte fügen Sie mindestens eine Person hinzu." {
		t.Errorf("unexpected error message: %q", resp.Body.Error)
	}

	var count int64
	db.Model(&models.Registration{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no registration in DB, got %d", count)
	}
}

func TestHandleSubmit_FieldErrors(t *testing.T) {
	db := setupDB(t)
	notifier := &countingNotifier{}
	handler := NewRegistrationHandler(db, notifier)

	req := validSubmitRequest()
	req.Body.Email = "kaputt"
	req.Body.Persons[1].Firstname = "X"

	resp, err := handler.HandleSubmit(context.Background(), req)
	if err != nil {
		t.Fatalf("HandleSubmit returned error: %v", err)
	}
	if resp.Body.Success {
		t.Error("expected submission to be rejected")
	}
	if got := resp.Body.Errors["email"]; len(got) != 1 || got[0] != validation.MsgEmail {
		t.Errorf("expected email error, got %v", got)
	}
	if got := resp.Body.Errors["person_firstname_2"]; len(got) != 1 || got[0] != validation.MsgNameTooShort {
		t.Errorf("expected positional person error, got %v", got)
	}

	var count int64
	db.Model(&models.Registration{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no registration in DB, got %d", count)
	}
	if notifier.calls != 0 {
		t.Errorf("expected no notification, got %d", notifier.calls)
	}
}

func TestHandleSubmit_NotifierFailureIsNotFatal(t *testing.T) {
	db := setupDB(t)
	notifier := &countingNotifier{err: context.DeadlineExceeded}
	handler := NewRegistrationHandler(db, notifier)

	resp, err := handler.HandleSubmit(context.Background(), validSubmitRequest())
	if err != nil {
		t.Fatalf("HandleSubmit returned error: %v", err)
	}
	if !resp.Body.Success {
		t.Errorf("expected success despite notifier failure, got %+v", resp.Body)
	}
}
