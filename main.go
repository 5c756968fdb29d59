package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/cwkr/account-portal/internal/directory"
	"github.com/cwkr/account-portal/internal/htmlutil"
	"github.com/cwkr/account-portal/internal/middleware"
	"github.com/cwkr/account-portal/internal/server"
	"github.com/cwkr/account-portal/internal/session"
	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
	"github.com/hjson/hjson-go/v4"
)

func main() {
	var configFilename string
	var saveConfig bool

	log.SetOutput(os.Stdout)

	flag.StringVar(&configFilename, "config", "account-portal.hjson", "config file name")
	flag.BoolVar(&saveConfig, "save", false, "save config and exit")
	flag.Parse()

	// Set defaults
	var settings = server.NewDefaultSettings()

	if configBytes, err := os.ReadFile(configFilename); err == nil {
		if err := hjson.Unmarshal(configBytes, settings); err != nil {
			panic(err)
		}
	}
	if settings.Directory == nil {
		settings.Directory = directory.NewDefaultSettings()
	} else {
		settings.Directory.ApplyDefaults()
	}

	if saveConfig {
		log.Printf("Saving config file %s", configFilename)
		configBytes, err := hjson.Marshal(settings)
		if err != nil {
			panic(err)
		}
		if err := os.WriteFile(configFilename, configBytes, 0644); err != nil {
			panic(err)
		}
		os.Exit(0)
	}

	var cookieStore = sessions.NewCookieStore([]byte(settings.SessionSecret))
	cookieStore.Options.HttpOnly = true
	cookieStore.Options.MaxAge = 0

	var registry = session.NewRegistry(time.Duration(settings.SessionTTL) * time.Second)
	defer registry.Stop()

	var directoryFactory = server.LiveDirectory(settings.Directory)

	var router = mux.NewRouter()

	router.NotFoundHandler = htmlutil.NotFoundHandler()
	router.Handle("/", server.IndexHandler(cookieStore, settings.SessionName, registry)).
		Methods(http.MethodGet)
	router.Handle("/style", server.StyleHandler()).
		Methods(http.MethodGet)
	router.Handle("/login", server.LoginHandler(settings, directoryFactory, cookieStore, registry)).
		Methods(http.MethodGet, http.MethodPost)
	router.Handle("/logout", server.LogoutHandler(cookieStore, settings.SessionName, registry)).
		Methods(http.MethodGet)
	router.Handle("/register", server.RegisterHandler(settings, directoryFactory)).
		Methods(http.MethodGet, http.MethodPost)
	router.Handle("/recover", server.RecoverHandler(settings)).
		Methods(http.MethodGet)
	router.Handle("/profile", server.ProfileHandler(settings, directoryFactory, cookieStore, registry)).
		Methods(http.MethodGet)
	router.Handle("/profile/person", server.PersonHandler(settings, directoryFactory, cookieStore, registry)).
		Methods(http.MethodPost)
	router.Handle("/profile/password", server.PasswordHandler(settings, directoryFactory, cookieStore, registry)).
		Methods(http.MethodPost)
	router.Handle("/profile/avatar", server.AvatarHandler(settings, directoryFactory, cookieStore, registry)).
		Methods(http.MethodPost)
	router.Handle("/health", server.HealthHandler(directoryFactory)).
		Methods(http.MethodGet)

	log.Printf("Listening on http://localhost:%d/", settings.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%d", settings.Port), middleware.RequestLog(router)); err != nil {
		panic(err)
	}
}
