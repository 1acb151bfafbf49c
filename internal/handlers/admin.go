package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/tsv-bitzfeld/sommerfest-anmeldung/internal/flash"
	"github.com/tsv-bitzfeld/sommerfest-anmeldung/internal/models"
	"github.com/tsv-bitzfeld/sommerfest-anmeldung/internal/notifier"
	"gorm.io/gorm"
)

// AdminHandler serves the dashboard and its record actions. All actions are
// full-page form posts; outcomes travel back as a flash on the redirect.
type AdminHandler struct {
	db     *gorm.DB
	mailer notifier.Mailer
}

func NewAdminHandler(db *gorm.DB, mailer notifier.Mailer) *AdminHandler {
	return &AdminHandler{db: db, mailer: mailer}
}

func (h *AdminHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	var registrations []models.Registration
	if err := h.db.Preload("Persons").Order("created_at DESC").Find(&registrations).Error; err != nil {
		log.Printf("Failed to load registrations: %v", err)
		http.Error(w, "Datenbankfehler", http.StatusInternalServerError)
		return
	}

	stats, err := h.collectStats()
	if err != nil {
		log.Printf("Failed to collect stats: %v", err)
		http.Error(w, "Datenbankfehler", http.StatusInternalServerError)
		return
	}

	render(w, r, "admin.html", &pageData{
		Title:         "Admin Dashboard",
		Registrations: registrations,
		Stats:         stats,
	})
}

func (h *AdminHandler) collectStats() (models.Stats, error) {
	var stats models.Stats
	if err := h.db.Model(&models.Registration{}).Count(&stats.TotalRegistrations).Error; err != nil {
		return stats, err
	}
	if err := h.db.Model(&models.Registration{}).Where("confirmed = ?", true).Count(&stats.ConfirmedRegistrations).Error; err != nil {
		return stats, err
	}
	if err := h.db.Model(&models.Person{}).Count(&stats.TotalPersons).Error; err != nil {
		return stats, err
	}
	return stats, nil
}

func (h *AdminHandler) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		flash.Set(w, flash.KindError, "Eintrag nicht gefunden")
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	var registration models.Registration
	if err := h.db.Preload("Persons").First(&registration, id).Error; err != nil {
		flash.Set(w, flash.KindError, "Eintrag nicht gefunden")
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	// Confirming twice must not send a second mail.
	if registration.Confirmed {
		flash.Set(w, flash.KindWarning, "Anmeldung ist bereits bestätigt")
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	registration.Confirmed = true
	if err := h.db.Save(&registration).Error; err != nil {
		log.Printf("Failed to confirm registration %d: %v", registration.ID, err)
		flash.Set(w, flash.KindError, "Bestätigung fehlgeschlagen")
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	if h.mailer != nil {
		if err := h.mailer.SendConfirmation(registration); err != nil {
			log.Printf("Failed to send confirmation mail for registration %d: %v", registration.ID, err)
			flash.Set(w, flash.KindWarning, "Bestätigt, aber die E-Mail konnte nicht gesendet werden")
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}
	}

	flash.Set(w, flash.KindSuccess, "Anmeldung bestätigt und E-Mail gesendet")
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (h *AdminHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		flash.Set(w, flash.KindError, "Eintrag nicht gefunden")
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("registration_id = ?", id).Delete(&models.Person{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Where("id = ?", id).Delete(&models.Registration{}).Error
	})
	if err != nil {
		log.Printf("Failed to delete registration %d: %v", id, err)
		flash.Set(w, flash.KindError, "Löschen fehlgeschlagen")
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	flash.Set(w, flash.KindSuccess, "Eintrag gelöscht")
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (h *AdminHandler) HandleDeleteAll(w http.ResponseWriter, r *http.Request) {
	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("1 = 1").Delete(&models.Person{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Where("1 = 1").Delete(&models.Registration{}).Error
	})
	if err != nil {
		log.Printf("Failed to delete all registrations: %v", err)
		flash.Set(w, flash.KindError, "Löschen fehlgeschlagen")
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	flash.Set(w, flash.KindSuccess, "Alle Einträge gelöscht")
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}
