package server

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/cwkr/account-portal/internal/directory"
	"github.com/cwkr/account-portal/internal/people"
	"github.com/cwkr/account-portal/internal/session"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/require"
)

// fakeDirectory records accessor calls for handler tests.
type fakeDirectory struct {
	entry     *directory.Entry
	findErr   error
	verify    bool
	verified  []string
	created   []*people.NewUser
	createErr error
	changed   []*people.NewPassword
	changeErr error
	updated   []*people.Person
	updateErr error
	photos    [][]byte
	photoErr  error
	closed    int
}

func (d *fakeDirectory) FindByUsername(username string) (*directory.Entry, error) {
	if d.findErr != nil {
		return nil, d.findErr
	}
	return d.entry, nil
}

func (d *fakeDirectory) CreateAccount(user *people.NewUser) error {
	if d.createErr != nil {
		return d.createErr
	}
	d.created = append(d.created, user)
	return nil
}

func (d *fakeDirectory) ChangePassword(userDN string, password *people.NewPassword) error {
	if d.changeErr != nil {
		return d.changeErr
	}
	d.changed = append(d.changed, password)
	return nil
}

func (d *fakeDirectory) UpdateProfile(userDN string, person *people.Person) error {
	if d.updateErr != nil {
		return d.updateErr
	}
	d.updated = append(d.updated, person)
	return nil
}

func (d *fakeDirectory) UpdatePhoto(userDN string, photo []byte) error {
	if d.photoErr != nil {
		return d.photoErr
	}
	d.photos = append(d.photos, photo)
	return nil
}

func (d *fakeDirectory) VerifyCredentials(userDN, password string) bool {
	d.verified = append(d.verified, userDN+":"+password)
	return d.verify
}

func (d *fakeDirectory) Close() {
	d.closed++
}

func fakeFactory(d *fakeDirectory) DirectoryFactory {
	return func() (Directory, error) {
		return d, nil
	}
}

func unavailableFactory(err error) DirectoryFactory {
	return func() (Directory, error) {
		return nil, err
	}
}

func testSettings() *Settings {
	return &Settings{
		Title:         "Account Portal",
		SessionName:   "PSESSION",
		SessionSecret: "test-secret",
		Directory:     directory.NewDefaultSettings(),
	}
}

func testCookieStore() sessions.Store {
	return sessions.NewCookieStore([]byte("test-secret"))
}

func postForm(path string, form url.Values) *http.Request {
	var r = httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

// withSessionCookie attaches a cookie referencing the given registry token.
func withSessionCookie(t *testing.T, r *http.Request, cookies sessions.Store, sessionName, token string) *http.Request {
	t.Helper()
	var recorder = httptest.NewRecorder()
	require.NoError(t, saveSessionCookie(recorder, httptest.NewRequest(http.MethodGet, "/", nil), cookies, sessionName, token))
	for _, cookie := range recorder.Result().Cookies() {
		r.AddCookie(cookie)
	}
	return r
}

func addTestSession(registry *session.Registry, dn, uid string) *session.Session {
	var userSession = registry.Create(dn, uid)
	registry.Add(userSession)
	return userSession
}
