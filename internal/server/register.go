package server

import (
	_ "embed"
	"errors"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/cwkr/account-portal/internal/directory"
	"github.com/cwkr/account-portal/internal/htmlutil"
	"github.com/cwkr/account-portal/internal/httputil"
	"github.com/cwkr/account-portal/internal/people"
)

//go:embed templates/register.gohtml
var registerTpl string

type registerHandler struct {
	settings  *Settings
	directory DirectoryFactory
	tpl       *template.Template
}

func (h *registerHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log.Printf("%s %s", r.Method, r.URL)
	var message string
	var user people.NewUser

	if r.Method == http.MethodPost {
		user = people.NewUser{
			UID:             strings.TrimSpace(r.PostFormValue("uid")),
			CN:              strings.TrimSpace(r.PostFormValue("cn")),
			Mail:            strings.TrimSpace(r.PostFormValue("mail")),
			Password:        r.PostFormValue("password"),
			PasswordConfirm: r.PostFormValue("password_confirm"),
		}
		if err := user.Validate(); err != nil {
			message = err.Error()
		} else if dir, err := h.directory(); err != nil {
			log.Printf("!!! directory unavailable: %v", err)
			message = "registration is currently unavailable"
		} else {
			defer dir.Close()
			if err := dir.CreateAccount(&user); err == nil {
				httputil.RedirectQuery(w, r, "/login", url.Values{"registered": {"1"}})
				return
			} else if errors.Is(err, directory.ErrSchemaViolation) {
				log.Printf("!!! account creation rejected: %v", err)
				message = "account was rejected by the directory, it may already exist"
			} else {
				log.Printf("!!! account creation failed: %v", err)
				message = "registration is currently unavailable"
			}
		}
	} else {
		httputil.NoCache(w)
	}

	w.Header().Set("Content-Type", "text/html;charset=UTF-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	var err = h.tpl.ExecuteTemplate(w, "register", map[string]any{
		"title":   h.settings.Title,
		"message": message,
		"uid":     user.UID,
		"cn":      user.CN,
		"mail":    user.Mail,
	})
	if err != nil {
		htmlutil.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func RegisterHandler(settings *Settings, directory DirectoryFactory) http.Handler {
	return &registerHandler{
		settings:  settings,
		directory: directory,
		tpl:       template.Must(template.New("register").Parse(registerTpl)),
	}
}
