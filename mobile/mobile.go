//go:build ebiten

package mobile

import (
	"log"
	"path/filepath"

	"umbrella-glide/internal/app"
	"umbrella-glide/internal/audio"
	"umbrella-glide/internal/shell"
	"umbrella-glide/internal/sims/glide"
	"umbrella-glide/internal/store"

	"github.com/hajimehoshi/ebiten/v2/mobile"
)

var storeDir string

// SetStoreDir sets the directory progress is saved in. Call before StartGame.
func SetStoreDir(dir string) { storeDir = dir }

// StartGame hands the game to the platform view.
func StartGame() {
	loop := glide.New(glide.DefaultConfig(), nil)
	sink, err := audio.NewSpeaker()
	if err != nil {
		log.Printf("audio disabled: %v", err)
		sink = audio.Silent{}
	}
	mobile.SetGame(app.New(loop, shell.New(openStore(), loop, shell.WithSink(sink)), sink, false))
}

func openStore() store.KV {
	if storeDir == "" {
		return store.NewMemory(nil)
	}
	cfg := &app.Config{Store: filepath.Join(storeDir, "progress.json")}
	return cfg.OpenStore(nil)
}

// Dummy is a dummy exported function.
//
// gomobile doesn't compile a package that doesn't include any exported function.
// Dummy forces gomobile to compile this package.
func Dummy() {}
