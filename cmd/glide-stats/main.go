package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"umbrella-glide/internal/app"
	"umbrella-glide/internal/web"
)

func main() {
	if err := app.LoadEnv(); err != nil {
		log.Printf("env: %v", err)
	}
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	handler := web.NewProgressHandler(cfg.OpenStore(nil), nil)
	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           web.NewRouter(handler),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Printf("listening on http://%s", cfg.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}
