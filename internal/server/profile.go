package server

import (
	_ "embed"
	"encoding/base64"
	"html/template"
	"log"
	"net/http"

	"github.com/cwkr/account-portal/internal/htmlutil"
	"github.com/cwkr/account-portal/internal/httputil"
	"github.com/cwkr/account-portal/internal/session"
	"github.com/gorilla/sessions"
)

//go:embed templates/profile.gohtml
var profileTpl string

type profileHandler struct {
	settings  *Settings
	directory DirectoryFactory
	cookies   sessions.Store
	registry  *session.Registry
	tpl       *template.Template
}

func (h *profileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log.Printf("%s %s", r.Method, r.URL)

	var userSession, found = currentSession(r, h.cookies, h.settings.SessionName, h.registry)
	if !found {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	httputil.NoCache(w)

	var data = map[string]any{
		"title":   h.settings.Title,
		"uid":     userSession.UID,
		"message": r.URL.Query().Get("message"),
	}

	if userSession.DN == "" {
		// statically configured account, profile comes from config and is
		// read only
		var person, found = h.settings.Users[userSession.UID]
		if found {
			data["cn"] = person.CN
			data["mail"] = person.Mail
		}
		data["readonly"] = true
	} else {
		var dir, err = h.directory()
		if err != nil {
			htmlutil.Error(w, "directory unavailable", http.StatusServiceUnavailable)
			return
		}
		defer dir.Close()
		entry, err := dir.FindByUsername(userSession.UID)
		if err != nil {
			log.Printf("!!! profile lookup failed: %v", err)
			htmlutil.Error(w, "profile lookup failed", http.StatusBadGateway)
			return
		}
		data["cn"] = entry.CN
		data["mail"] = entry.Mail
		if len(entry.Photo) > 0 {
			data["photo"] = base64.StdEncoding.EncodeToString(entry.Photo)
		}
		if !entry.CreateTimestamp.IsZero() {
			data["created"] = entry.CreateTimestamp.Format("2006-01-02")
		}
	}

	w.Header().Set("Content-Type", "text/html;charset=UTF-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	if err := h.tpl.ExecuteTemplate(w, "profile", data); err != nil {
		htmlutil.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func ProfileHandler(settings *Settings, directory DirectoryFactory, cookies sessions.Store, registry *session.Registry) http.Handler {
	return &profileHandler{
		settings:  settings,
		directory: directory,
		cookies:   cookies,
		registry:  registry,
		tpl:       template.Must(template.New("profile").Parse(profileTpl)),
	}
}
