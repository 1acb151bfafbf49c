package handlers

import (
	"html/template"
	"log"
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/tsv-bitzfeld/sommerfest-anmeldung/internal/flash"
	"github.com/tsv-bitzfeld/sommerfest-anmeldung/internal/models"
	"github.com/tsv-bitzfeld/sommerfest-anmeldung/web"
)

var templates = map[string]*template.Template{}

func init() {
	for _, name := range []string{"index.html", "confirmation.html", "login.html", "admin.html"} {
		templates[name] = template.Must(template.ParseFS(web.Templates,
			"templates/layout.html", "templates/"+name))
	}
}

// pageData is the view model shared by all server-rendered pages. Handlers
// only fill the fields their template reads.
type pageData struct {
	Title         string
	CSRFToken     string
	CSRFField     template.HTML
	Flash         *flash.Message
	Clubs         []string
	Registrations []models.Registration
	Stats         models.Stats
}

func render(w http.ResponseWriter, r *http.Request, name string, data *pageData) {
	data.CSRFToken = csrf.Token(r)
	data.CSRFField = csrf.TemplateField(r)
	if msg, ok := flash.Pop(w, r); ok {
		data.Flash = &msg
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates[name].ExecuteTemplate(w, "layout", data); err != nil {
		log.Printf("Failed to render %s: %v", name, err)
	}
}

// PageHandler serves the public, server-rendered pages.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func (h *PageHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	render(w, r, "index.html", &pageData{
		Title: "Anmeldung Sommerfest",
		Clubs: models.Clubs,
	})
}

func (h *PageHandler) HandleConfirmation(w http.ResponseWriter, r *http.Request) {
	render(w, r, "confirmation.html", &pageData{Title: "Anmeldung erhalten"})
}

func (h *PageHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	render(w, r, "login.html", &pageData{Title: "Admin Login"})
}
