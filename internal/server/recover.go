package server

import (
	_ "embed"
	"html/template"
	"log"
	"net/http"

	"github.com/cwkr/account-portal/internal/htmlutil"
)

//go:embed templates/recover.gohtml
var recoverTpl string

type recoverHandler struct {
	settings *Settings
	tpl      *template.Template
}

func (h *recoverHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log.Printf("%s %s", r.Method, r.URL)

	w.Header().Set("Content-Type", "text/html;charset=UTF-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	var err = h.tpl.ExecuteTemplate(w, "recover", map[string]any{
		"title": h.settings.Title,
	})
	if err != nil {
		htmlutil.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func RecoverHandler(settings *Settings) http.Handler {
	return &recoverHandler{
		settings: settings,
		tpl:      template.Must(template.New("recover").Parse(recoverTpl)),
	}
}
