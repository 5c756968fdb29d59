package server

import (
	"log"
	"net/http"

	"github.com/cwkr/account-portal/internal/htmlutil"
	"github.com/cwkr/account-portal/internal/httputil"
	"github.com/cwkr/account-portal/internal/session"
	"github.com/gorilla/sessions"
)

type logoutHandler struct {
	cookies     sessions.Store
	sessionName string
	registry    *session.Registry
}

func (l *logoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log.Printf("%s %s", r.Method, r.URL)

	httputil.NoCache(w)

	var token, err = clearSessionCookie(w, r, l.cookies, l.sessionName)
	if err != nil {
		htmlutil.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if token != "" {
		l.registry.Remove(token)
	}
	http.Redirect(w, r, "/login", http.StatusFound)
}

func LogoutHandler(cookies sessions.Store, sessionName string, registry *session.Registry) http.Handler {
	return &logoutHandler{
		cookies:     cookies,
		sessionName: sessionName,
		registry:    registry,
	}
}
