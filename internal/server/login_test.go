package server

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/cwkr/account-portal/internal/directory"
	"github.com/cwkr/account-portal/internal/people"
	"github.com/cwkr/account-portal/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func aliceDirectoryEntry() *directory.Entry {
	return &directory.Entry{
		DN:   "uid=alice,dc=example,dc=com",
		UID:  "alice",
		CN:   "Alice A",
		Mail: "alice@example.com",
	}
}

func TestLoginPage(t *testing.T) {
	var registry = session.NewRegistry(0)
	var handler = LoginHandler(testSettings(), fakeFactory(&fakeDirectory{}), testCookieStore(), registry)

	var recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/login", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "name=\"username\"")
}

func TestLoginSuccess(t *testing.T) {
	var settings = testSettings()
	var cookies = testCookieStore()
	var registry = session.NewRegistry(0)
	var dir = &fakeDirectory{entry: aliceDirectoryEntry(), verify: true}
	var handler = LoginHandler(settings, fakeFactory(dir), cookies, registry)

	var recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, postForm("/login", url.Values{"username": {"alice"}, "password": {"secret"}}))

	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, "/profile", recorder.Header().Get("Location"))
	assert.Equal(t, []string{"uid=alice,dc=example,dc=com:secret"}, dir.verified)
	assert.Equal(t, 1, dir.closed, "accessor must be closed")
	require.Equal(t, 1, registry.Len())

	// the cookie resolves back to the freshly minted session
	var followup = httptest.NewRequest(http.MethodGet, "/profile", nil)
	for _, cookie := range recorder.Result().Cookies() {
		followup.AddCookie(cookie)
	}
	var userSession, found = currentSession(followup, cookies, settings.SessionName, registry)
	require.True(t, found)
	assert.Equal(t, "alice", userSession.UID)
	assert.Equal(t, "uid=alice,dc=example,dc=com", userSession.DN)
}

func TestLoginWrongPassword(t *testing.T) {
	var registry = session.NewRegistry(0)
	var dir = &fakeDirectory{entry: aliceDirectoryEntry(), verify: false}
	var handler = LoginHandler(testSettings(), fakeFactory(dir), testCookieStore(), registry)

	var recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, postForm("/login", url.Values{"username": {"alice"}, "password": {"wrong"}}))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "invalid username or password")
	assert.Zero(t, registry.Len())
	assert.Equal(t, 1, dir.closed)
}

func TestLoginUnknownUser(t *testing.T) {
	var registry = session.NewRegistry(0)
	var dir = &fakeDirectory{findErr: fmt.Errorf("%w: nobody", directory.ErrNotFound)}
	var handler = LoginHandler(testSettings(), fakeFactory(dir), testCookieStore(), registry)

	var recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, postForm("/login", url.Values{"username": {"nobody"}, "password": {"secret"}}))

	// indistinguishable from a wrong password
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "invalid username or password")
	assert.Zero(t, registry.Len())
}

func TestLoginDirectoryUnavailable(t *testing.T) {
	var registry = session.NewRegistry(0)
	var handler = LoginHandler(testSettings(), unavailableFactory(directory.ErrConnectionFailed), testCookieStore(), registry)

	var recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, postForm("/login", url.Values{"username": {"alice"}, "password": {"secret"}}))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "login is currently unavailable")
	assert.NotContains(t, recorder.Body.String(), "connection", "protocol detail must not leak")
	assert.Zero(t, registry.Len())
}

func TestLoginEmptyFields(t *testing.T) {
	var registry = session.NewRegistry(0)
	var dir = &fakeDirectory{}
	var handler = LoginHandler(testSettings(), fakeFactory(dir), testCookieStore(), registry)

	var recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, postForm("/login", url.Values{"username": {"alice"}}))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "must not be empty")
	assert.Zero(t, dir.verified)
}

func TestLoginStaticUser(t *testing.T) {
	var hash, err = bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	var settings = testSettings()
	settings.Users = map[string]people.AuthenticPerson{
		"bob": {Person: people.Person{CN: "Bob B", Mail: "bob@example.com"}, PasswordHash: string(hash)},
	}
	var registry = session.NewRegistry(0)
	var dir = &fakeDirectory{}
	var handler = LoginHandler(settings, fakeFactory(dir), testCookieStore(), registry)

	var recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, postForm("/login", url.Values{"username": {"Bob"}, "password": {"secret"}}))

	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, "/profile", recorder.Header().Get("Location"))
	require.Equal(t, 1, registry.Len())
	// static accounts never touch the directory
	assert.Empty(t, dir.verified)
}
