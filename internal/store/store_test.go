package store

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestFileMissingStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "progress.json")
	f, err := Open(path)
	if err != nil {
		t.Fatalf("Open missing file: %v", err)
	}
	if _, ok, _ := f.Get(KeyHighScore); ok {
		t.Fatal("expected empty store")
	}
}

func TestFileWriteThrough(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "progress.json")
	f, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Set(KeyCoins, "12"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := f.Set(KeyPlayerName, "BraveHawk123"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	other, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if v, ok, _ := other.Get(KeyCoins); !ok || v != "12" {
		t.Fatalf("coins=%q ok=%v", v, ok)
	}
	if v, _, _ := other.Get(KeyPlayerName); v != "BraveHawk123" {
		t.Fatalf("playerName=%q", v)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("temp files left behind: %v", entries)
	}
}

func TestFileReloadSeesOtherWriters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")
	reader, _ := Open(path)
	writer, _ := Open(path)
	if err := writer.Set(KeyHighScore, "40"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := reader.Get(KeyHighScore); ok {
		t.Fatal("reader should serve its cache until Reload")
	}
	if err := reader.Reload(); err != nil {
		t.Fatal(err)
	}
	if v, _, _ := reader.Get(KeyHighScore); v != "40" {
		t.Fatalf("highScore after reload=%q", v)
	}
	if snap := reader.Snapshot(); len(snap) != 1 {
		t.Fatalf("snapshot=%v", snap)
	}
}

func TestFileCorruptIsUsable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := Open(path)
	if !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}
	if f == nil {
		t.Fatal("corrupt store must still be returned")
	}
	if err := f.Set(KeyCoins, "1"); err != nil {
		t.Fatalf("Set on recovered store: %v", err)
	}
	if _, err := Open(path); err != nil {
		t.Fatalf("rewritten file should decode: %v", err)
	}
}

func TestMemory(t *testing.T) {
	m := NewMemory(map[string]string{KeyCoins: "3"})
	if v, ok, err := m.Get(KeyCoins); err != nil || !ok || v != "3" {
		t.Fatalf("Get=%q,%v,%v", v, ok, err)
	}
	_ = m.Set(KeyHighScore, "9")
	if keys := m.Keys(); !slices.Equal(keys, []string{KeyCoins, KeyHighScore}) {
		t.Fatalf("keys=%v", keys)
	}
}
