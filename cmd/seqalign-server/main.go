// Command seqalign-server provides a REST API for pairwise sequence
// alignment.
//
// Usage:
//
//	seqalign-server [options]
//
// Options:
//
//	-port     Port to listen on (default: 8080)
//	-host     Host to bind to (default: localhost)
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/innaky/seqalign/api/handlers"
)

func main() {
	port := flag.Int("port", 8080, "Port to listen on")
	host := flag.String("host", "localhost", "Host to bind to")
	flag.Parse()

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/align", func(r chi.Router) {
			r.Post("/global", handlers.GlobalAlignHandler)
			r.Post("/local", handlers.LocalAlignHandler)
		})

		r.Get("/matrix", handlers.MatrixHandler)

		r.Route("/sequence", func(r chi.Router) {
			r.Post("/validate", handlers.ValidateHandler)
			r.Post("/info", handlers.SequenceInfoHandler)
			r.Post("/complement", handlers.ComplementHandler)
			r.Post("/reverse-complement", handlers.ReverseComplementHandler)
			r.Post("/transcribe", handlers.TranscribeHandler)
		})
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		fmt.Fprintln(w, "seqalign API")
		fmt.Fprintln(w, "")
		fmt.Fprintln(w, "POST /api/align/global  {\"sequence1\": ..., \"sequence2\": ..., \"type\": \"na\"|\"aa\", \"affine\": bool, scoring overrides...}")
		fmt.Fprintln(w, "POST /api/align/local   same body; response adds ungapped_seq1/ungapped_seq2")
		fmt.Fprintln(w, "GET  /api/matrix        bundled BLOSUM62")
		fmt.Fprintln(w, "POST /api/sequence/{validate,info,complement,reverse-complement,transcribe}")
	})

	addr := fmt.Sprintf("%s:%d", *host, *port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan bool, 1)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		server.SetKeepAlivesEnabled(false)
		if err := server.Shutdown(ctx); err != nil {
			log.Fatalf("Could not gracefully shutdown: %v\n", err)
		}
		close(done)
	}()

	log.Printf("seqalign API server starting on http://%s\n", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on %s: %v\n", addr, err)
	}

	<-done
	log.Println("Server stopped")
}
