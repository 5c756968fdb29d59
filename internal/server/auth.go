package server

import (
	"log"
	"net/http"
	"strings"

	"github.com/cwkr/account-portal/internal/people"
	"github.com/cwkr/account-portal/internal/session"
	"github.com/gorilla/sessions"
	"golang.org/x/crypto/bcrypt"
)

// The cookie stores nothing but the opaque registry token.
const tokenKey = "token"

// currentSession resolves the registry session referenced by the request's
// cookie, if any.
func currentSession(r *http.Request, cookies sessions.Store, sessionName string, registry *session.Registry) (*session.Session, bool) {
	var cookieSession, _ = cookies.Get(r, sessionName)
	var token, ok = cookieSession.Values[tokenKey].(string)
	if !ok || token == "" {
		return nil, false
	}
	return registry.Get(token)
}

func saveSessionCookie(w http.ResponseWriter, r *http.Request, cookies sessions.Store, sessionName, token string) error {
	var cookieSession, _ = cookies.Get(r, sessionName)
	cookieSession.Values[tokenKey] = token
	return cookieSession.Save(r, w)
}

// clearSessionCookie expires the cookie and returns the token it carried.
func clearSessionCookie(w http.ResponseWriter, r *http.Request, cookies sessions.Store, sessionName string) (string, error) {
	var cookieSession, _ = cookies.Get(r, sessionName)
	var token, _ = cookieSession.Values[tokenKey].(string)
	cookieSession.Options.MaxAge = -1
	return token, cookieSession.Save(r, w)
}

// authenticateStatic checks the statically configured fallback accounts.
// These authenticate locally via bcrypt and never touch the directory.
func authenticateStatic(users map[string]people.AuthenticPerson, userID, password string) (string, bool) {
	var lowercaseUserID = strings.ToLower(userID)
	var authenticPerson, found = users[lowercaseUserID]
	if !found {
		return "", false
	}
	if err := bcrypt.CompareHashAndPassword([]byte(authenticPerson.PasswordHash), []byte(password)); err != nil {
		log.Printf("!!! password comparison failed: %v", err)
		return "", false
	}
	return lowercaseUserID, true
}
