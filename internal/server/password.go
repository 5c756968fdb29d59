package server

import (
	"errors"
	"log"
	"net/http"
	"net/url"

	"github.com/cwkr/account-portal/internal/directory"
	"github.com/cwkr/account-portal/internal/htmlutil"
	"github.com/cwkr/account-portal/internal/httputil"
	"github.com/cwkr/account-portal/internal/people"
	"github.com/cwkr/account-portal/internal/session"
	"github.com/gorilla/sessions"
)

type passwordHandler struct {
	settings  *Settings
	directory DirectoryFactory
	cookies   sessions.Store
	registry  *session.Registry
}

func (h *passwordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	var password = people.NewPassword{
		OldPassword:        r.PostFormValue("old_password"),
		NewPassword:        r.PostFormValue("new_password"),
		NewPasswordConfirm: r.PostFormValue("new_password_confirm"),
	}
	if err := password.Validate(); err != nil {
		httputil.RedirectQuery(w, r, "/profile", url.Values{"message": {err.Error()}})
		return
	}

	var dir, err = h.directory()
	if err != nil {
		htmlutil.Error(w, "directory unavailable", http.StatusServiceUnavailable)
		return
	}
	defer dir.Close()

	// binding with the old password is the verification step
	if err := dir.ChangePassword(userSession.DN, &password); err != nil {
		if errors.Is(err, directory.ErrBindRejected) {
			httputil.RedirectQuery(w, r, "/profile", url.Values{"message": {"current password is incorrect"}})
			return
		}
		log.Printf("!!! password change failed: %v", err)
		htmlutil.Error(w, "password change failed", http.StatusBadGateway)
		return
	}
	httputil.RedirectQuery(w, r, "/profile", url.Values{"message": {"password changed"}})
}

func PasswordHandler(settings *Settings, directory DirectoryFactory, cookies sessions.Store, registry *session.Registry) http.Handler {
	return &passwordHandler{
		settings:  settings,
		directory: directory,
		cookies:   cookies,
		registry:  registry,
	}
}
