package handlers

import (
	"log"
	"net/http"

	"github.com/tsv-bitzfeld/sommerfest-anmeldung/internal/models"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Anmeldungen"

// HandleExport streams all registrations as an xlsx workbook, one row per
// registered person with the registration's contact fields repeated.
func (h *AdminHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	var registrations []models.Registration
	if err := h.db.Preload("Persons").Order("created_at").Find(&registrations).Error; err != nil {
		log.Printf("Failed to load registrations for export: %v", err)
		http.Error(w, "Datenbankfehler", http.StatusInternalServerError)
		return
	}

	f, err := buildExport(registrations)
	if err != nil {
		log.Printf("Failed to build export: %v", err)
		http.Error(w, "Export fehlgeschlagen", http.StatusInternalServerError)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="anmeldungen.xlsx"`)
	if err := f.Write(w); err != nil {
		log.Printf("Failed to write export: %v", err)
	}
}

func buildExport(registrations []models.Registration) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}

	headers := []string{"Zeitstempel", "Vorname", "Nachname", "Geburtsdatum", "Verein", "Kontaktperson", "Telefon", "E-Mail", "Bestätigt"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(exportSheet, cell, header); err != nil {
			return nil, err
		}
	}

	row := 2
	for _, registration := range registrations {
		confirmed := "Nein"
		if registration.Confirmed {
			confirmed = "Ja"
		}
		for _, p := range registration.Persons {
			values := []interface{}{
				registration.CreatedAt.Format("02.01.2006 15:04"),
				p.Firstname,
				p.Lastname,
				p.Birthdate,
				p.ClubMembership,
				registration.ContactFirstname + " " + registration.ContactLastname,
				registration.PhoneNumber,
				registration.Email,
				confirmed,
			}
			for i, value := range values {
				cell, err := excelize.CoordinatesToCellName(i+1, row)
				if err != nil {
					return nil, err
				}
				if err := f.SetCellValue(exportSheet, cell, value); err != nil {
					return nil, err
				}
			}
			row++
		}
	}

	return f, nil
}
