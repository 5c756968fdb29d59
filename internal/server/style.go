package server

import (
	_ "embed"
	"fmt"
	"net/http"
	"time"

	"github.com/cwkr/account-portal/internal/httputil"
)

//go:embed assets/portal.css
var cssContent string

func StyleHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/css")
		httputil.Cache(w, 120*time.Hour)
		fmt.Fprint(w, cssContent)
	})
}
