package server

import (
	"log"
	"net/http"

	"github.com/cwkr/account-portal/internal/session"
	"github.com/gorilla/sessions"
)

type indexHandler struct {
	cookies     sessions.Store
	sessionName string
	registry    *session.Registry
}

func (i *indexHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log.Printf("%s %s", r.Method, r.URL)

	if _, found := currentSession(r, i.cookies, i.sessionName, i.registry); found {
		http.Redirect(w, r, "/profile", http.StatusFound)
	} else {
		http.Redirect(w, r, "/login", http.StatusFound)
	}
}

func IndexHandler(cookies sessions.Store, sessionName string, registry *session.Registry) http.Handler {
	return &indexHandler{
		cookies:     cookies,
		sessionName: sessionName,
		registry:    registry,
	}
}
