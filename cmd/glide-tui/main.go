package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"umbrella-glide/internal/app"
	"umbrella-glide/internal/audio"
	"umbrella-glide/internal/shell"
	"umbrella-glide/internal/sims/glide"
	"umbrella-glide/internal/tui"

	"github.com/gdamore/tcell/v2"
)

func main() {
	if err := app.LoadEnv(); err != nil {
		log.Printf("env: %v", err)
	}
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	logPath := flag.String("log", "", "write logs to this file instead of discarding them")
	flag.Parse()

	// The terminal is owned by tcell, so logs go to a file or nowhere.
	logger := log.New(io.Discard, "", log.LstdFlags)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("open log: %v", err)
		}
		defer f.Close()
		logger.SetOutput(f)
	}

	loop := glide.New(cfg.GlideConfig(), nil)

	var sink audio.Sink = audio.Silent{}
	if !cfg.Mute {
		if s, err := audio.NewSpeaker(); err != nil {
			logger.Printf("audio disabled: %v", err)
		} else {
			sink = s
		}
	}
	defer sink.Close()

	opts := []shell.Option{shell.WithSink(sink), shell.WithLogger(logger)}
	if cfg.Seed != 0 {
		opts = append(opts, shell.WithSeed(cfg.Seed))
	}
	sh := shell.New(cfg.OpenStore(logger), loop, opts...)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	tps := cfg.TPS
	if tps <= 0 {
		tps = 60
	}
	runner := tui.NewRunner(screen, loop, sh, sink, logger)
	if err := runner.Run(ctx, time.Second/time.Duration(tps)); err != nil && !errors.Is(err, context.Canceled) {
		logger.Printf("run: %v", err)
	}
}
