package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"med-reminder-api/internal/adapters/auth/firebase"
	"med-reminder-api/internal/ports/auth"
	"med-reminder-api/internal/router"
)

// @title med-reminder-api
// @version 0.1
// @description Backend de recordatorio de medicamentos: tratamientos, generación de tomas y calendario.
// @BasePath /
func main() {
	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	// Con FIREBASE_WEB_API_KEY verificamos tokens reales; sin ella el
	// middleware queda en modo dev (X-Debug-User-ID).
	var verifier auth.AuthVerifier
	if key := os.Getenv("FIREBASE_WEB_API_KEY"); key != "" {
		client, err := firebase.NewClient(firebase.Config{APIKey: key})
		if err != nil {
			log.Fatalf("firebase client: %v", err)
		}
		verifier = firebase.NewVerifier(client)
	}

	r := router.NewRouter(router.Options{AuthVerifier: verifier})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		// Mayor que el timeout de la transacción de creación, para que
		// el corte lo haga el service (con rollback) y no el server.
		WriteTimeout: 35 * time.Second,
	}

	log.Printf("starting server on %s", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
