//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"umbrella-glide/internal/app"
	"umbrella-glide/internal/audio"
	"umbrella-glide/internal/shell"
	"umbrella-glide/internal/sims/glide"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	if err := app.LoadEnv(); err != nil {
		log.Printf("env: %v", err)
	}
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	loop := glide.New(cfg.GlideConfig(), nil)

	var sink audio.Sink = audio.Silent{}
	if !cfg.Mute {
		s, err := audio.NewSpeaker()
		if err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			sink = s
		}
	}
	defer sink.Close()

	opts := []shell.Option{shell.WithSink(sink)}
	if cfg.Seed != 0 {
		opts = append(opts, shell.WithSeed(cfg.Seed))
	}
	sh := shell.New(cfg.OpenStore(nil), loop, opts...)
	defer sh.Close()

	game := app.New(loop, sh, sink, cfg.Debug)
	size := loop.Size()

	ebiten.SetWindowTitle("Umbrella Glide")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(int(float64(size.W)*cfg.Scale), int(float64(size.H)*cfg.Scale))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
