package server

import (
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/cwkr/account-portal/internal/htmlutil"
	"github.com/cwkr/account-portal/internal/httputil"
	"github.com/cwkr/account-portal/internal/people"
	"github.com/cwkr/account-portal/internal/session"
	"github.com/cwkr/account-portal/internal/stringutil"
	"github.com/gorilla/sessions"
)

type personHandler struct {
	settings  *Settings
	directory DirectoryFactory
	cookies   sessions.Store
	registry  *session.Registry
}

func (h *personHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log.Printf("%s %s", r.Method, r.URL)

	var userSession, found = currentSession(r, h.cookies, h.settings.SessionName, h.registry)
	if !found {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	if userSession.DN == "" {
		htmlutil.Error(w, "statically configured accounts are read only", http.StatusForbidden)
		return
	}

	var person = people.Person{
		UID:  userSession.UID,
		CN:   strings.TrimSpace(r.PostFormValue("cn")),
		Mail: strings.TrimSpace(r.PostFormValue("mail")),
	}
	if stringutil.IsAnyEmpty(person.CN, person.Mail) {
		httputil.RedirectQuery(w, r, "/profile", url.Values{"message": {"name and mail must not be empty"}})
		return
	}

	var dir, err = h.directory()
	if err != nil {
		htmlutil.Error(w, "directory unavailable", http.StatusServiceUnavailable)
		return
	}
	defer dir.Close()

	if err := dir.UpdateProfile(userSession.DN, &person); err != nil {
		log.Printf("!!! profile update failed: %v", err)
		htmlutil.Error(w, "profile update failed", http.StatusBadGateway)
		return
	}
	http.Redirect(w, r, "/profile", http.StatusFound)
}

func PersonHandler(settings *Settings, directory DirectoryFactory, cookies sessions.Store, registry *session.Registry) http.Handler {
	return &personHandler{
		settings:  settings,
		directory: directory,
		cookies:   cookies,
		registry:  registry,
	}
}
