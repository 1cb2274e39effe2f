// Package mobile binds the game for gomobile builds. Build with the ebiten
// tag, e.g. `ebitenmobile bind -tags ebiten ./mobile`.
package mobile
