package server

import (
	_ "embed"
	"errors"
	"html/template"
	"log"
	"net/http"
	"strings"

	"github.com/cwkr/account-portal/internal/directory"
	"github.com/cwkr/account-portal/internal/htmlutil"
	"github.com/cwkr/account-portal/internal/httputil"
	"github.com/cwkr/account-portal/internal/session"
	"github.com/cwkr/account-portal/internal/stringutil"
	"github.com/gorilla/sessions"
)

//go:embed templates/login.gohtml
var loginTpl string

type loginHandler struct {
	settings  *Settings
	directory DirectoryFactory
	cookies   sessions.Store
	registry  *session.Registry
	tpl       *template.Template
}

func (l *loginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log.Printf("%s %s", r.Method, r.URL)
	var message string
	var username string

	if r.Method == http.MethodPost {
		username = strings.TrimSpace(r.PostFormValue("username"))
		var password = r.PostFormValue("password")

		if stringutil.IsAnyEmpty(username, password) {
			message = "username and password must not be empty"
		} else if uid, ok := authenticateStatic(l.settings.Users, username, password); ok {
			l.startSession(w, r, "", uid)
			return
		} else if dir, err := l.directory(); err != nil {
			log.Printf("!!! directory unavailable: %v", err)
			message = "login is currently unavailable"
		} else {
			defer dir.Close()
			var entry *directory.Entry
			if entry, err = dir.FindByUsername(username); err == nil && dir.VerifyCredentials(entry.DN, password) {
				l.startSession(w, r, entry.DN, entry.UID)
				return
			}
			if err != nil && errors.Is(err, directory.ErrConnectionFailed) {
				log.Printf("!!! login lookup failed: %v", err)
				message = "login is currently unavailable"
			} else {
				// a missing account and a wrong password are indistinguishable
				// to the user
				message = "invalid username or password"
			}
		}
	} else {
		httputil.NoCache(w)
	}

	w.Header().Set("Content-Type", "text/html;charset=UTF-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	var err = l.tpl.ExecuteTemplate(w, "login", map[string]any{
		"title":      l.settings.Title,
		"message":    message,
		"username":   username,
		"registered": r.URL.Query().Get("registered") != "",
	})
	if err != nil {
		htmlutil.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (l *loginHandler) startSession(w http.ResponseWriter, r *http.Request, dn, uid string) {
	var userSession = l.registry.Create(dn, uid)
	l.registry.Add(userSession)
	if err := saveSessionCookie(w, r, l.cookies, l.settings.SessionName, userSession.Token); err != nil {
		l.registry.Remove(userSession.Token)
		htmlutil.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	log.Printf("uid=%s", uid)
	http.Redirect(w, r, "/profile", http.StatusFound)
}

func LoginHandler(settings *Settings, directory DirectoryFactory, cookies sessions.Store, registry *session.Registry) http.Handler {
	return &loginHandler{
		settings:  settings,
		directory: directory,
		cookies:   cookies,
		registry:  registry,
		tpl:       template.Must(template.New("login").Parse(loginTpl)),
	}
}
