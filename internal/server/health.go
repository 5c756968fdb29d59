package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/cwkr/account-portal/internal/httputil"
)

type healthHandler struct {
	directory DirectoryFactory
}

func (h *healthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {

	var status = struct {
		Status string `json:"status"`
	}{"UP"}

	httputil.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	if dir, err := h.directory(); err != nil {
		log.Printf("%s %s", r.Method, r.URL)
		log.Printf("!!! 503 Service Unavailable - %s", err.Error())
		status.Status = err.Error()
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		dir.Close()
	}

	var bytes, _ = json.Marshal(status)
	w.Write(bytes)
}

func HealthHandler(directory DirectoryFactory) http.Handler {
	return &healthHandler{
		directory: directory,
	}
}
