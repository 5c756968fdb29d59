package server

import (
	"io"
	"log"
	"net/http"

	"github.com/cwkr/account-portal/internal/htmlutil"
	"github.com/cwkr/account-portal/internal/session"
	"github.com/gorilla/sessions"
)

// Uploaded avatars replace the photo attribute as-is; decoding or resizing is
// the client's concern.
const maxAvatarBytes = 4 << 20

type avatarHandler struct {
	settings  *Settings
	directory DirectoryFactory
	cookies   sessions.Store
	registry  *session.Registry
}

func (h *avatarHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	r.Body = http.MaxBytesReader(w, r.Body, maxAvatarBytes)
	var file, header, err = r.FormFile("avatar_file")
	if err != nil {
		htmlutil.Error(w, "avatar_file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if contentType := header.Header.Get("Content-Type"); contentType != "image/jpeg" {
		htmlutil.Error(w, "avatar must be a JPEG image", http.StatusBadRequest)
		return
	}

	photo, err := io.ReadAll(file)
	if err != nil {
		htmlutil.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	dir, err := h.directory()
	if err != nil {
		htmlutil.Error(w, "directory unavailable", http.StatusServiceUnavailable)
		return
	}
	defer dir.Close()

	if err := dir.UpdatePhoto(userSession.DN, photo); err != nil {
		log.Printf("!!! photo update failed: %v", err)
		htmlutil.Error(w, "photo update failed", http.StatusBadGateway)
		return
	}
	http.Redirect(w, r, "/profile", http.StatusFound)
}

func AvatarHandler(settings *Settings, directory DirectoryFactory, cookies sessions.Store, registry *session.Registry) http.Handler {
	return &avatarHandler{
		settings:  settings,
		directory: directory,
		cookies:   cookies,
		registry:  registry,
	}
}
