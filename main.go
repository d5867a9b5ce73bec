package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/platahq/plata-backend/internal/infra/db/mongodb/helpers"
	"github.com/platahq/plata-backend/internal/setup"
	"github.com/platahq/plata-backend/internal/setup/config"
	"github.com/platahq/plata-backend/internal/setup/middlewares"
)

func main() {
	config.LoadEnvFile(".env")
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("server is running with port", port)

	handler := middlewares.CorsMiddleware(
		middlewares.RecoveryMiddleware(setup.Server()),
	)

	sm := http.Server{
		Addr:        ":" + port,
		Handler:     handler,
		IdleTimeout: 60 * time.Second,
		ReadTimeout: 5 * time.Second,
		// The watch routes hold their response open for the life of the
		// subscription, so no write deadline.
	}

	go func() {
		err := sm.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	sig := <-sigChan
	log.Println("received terminate, graceful shutdown", sig)

	tc, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	sm.Shutdown(tc)

	helpers.DisconnectRedis()
}
