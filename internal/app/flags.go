package app

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

	"umbrella-glide/internal/sims/glide"
	"umbrella-glide/internal/store"

	"github.com/joho/godotenv"
)

// Environment variables consulted for defaults.
const (
	EnvStore = "GLIDE_STORE"
	EnvSeed  = "GLIDE_SEED"
	EnvAddr  = "GLIDE_ADDR"
	EnvMute  = "GLIDE_MUTE"
)

// Config represents the command-line parameters shared by the binaries.
type Config struct {
	Scale     float64
	TPS       int
	Seed      int64
	Store     string
	Addr      string
	Mute      bool
	Normalize bool
	Debug     bool
	Sets      KVList
}

// NewConfig returns a Config populated with defaults, overridden by the
// GLIDE_* environment variables.
func NewConfig() *Config {
	c := &Config{Scale: 1, TPS: 60, Addr: "127.0.0.1:8470"}
	if v := os.Getenv(EnvStore); v != "" {
		c.Store = v
	}
	if v := os.Getenv(EnvSeed); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = seed
		} else {
			log.Printf("app: ignoring %s=%q: %v", EnvSeed, v, err)
		}
	}
	if v := os.Getenv(EnvAddr); v != "" {
		c.Addr = v
	}
	if v := os.Getenv(EnvMute); v != "" {
		if mute, err := strconv.ParseBool(v); err == nil {
			c.Mute = mute
		} else {
			log.Printf("app: ignoring %s=%q: %v", EnvMute, v, err)
		}
	}
	return c
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Float64Var(&c.Scale, "scale", c.Scale, "window scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for names and runs (0 = time based)")
	fs.StringVar(&c.Store, "store", c.Store, "progress file (default: user config dir)")
	fs.StringVar(&c.Addr, "addr", c.Addr, "listen address for the stats server")
	fs.BoolVar(&c.Mute, "mute", c.Mute, "disable sound")
	fs.BoolVar(&c.Normalize, "normalize", c.Normalize, "scale physics by real frame time")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "enable the tuning panel and debug overlay")
	fs.Var(&c.Sets, "set", "physics override key=value (repeatable)")
}

// GlideConfig builds the loop configuration from flags and -set overrides.
// Explicit -set keys win over the dedicated flags.
func (c *Config) GlideConfig() glide.Config {
	values := map[string]string{
		"tps":       strconv.Itoa(c.TPS),
		"normalize": strconv.FormatBool(c.Normalize),
	}
	if c.Seed != 0 {
		values["seed"] = strconv.FormatInt(c.Seed, 10)
	}
	for k, v := range c.Sets.Map() {
		values[k] = v
	}
	return glide.FromMap(values)
}

// OpenStore opens the progress file. Failures are logged and fall back to
// an in-memory store so play can continue.
func (c *Config) OpenStore(logger *log.Logger) store.KV {
	if logger == nil {
		logger = log.Default()
	}
	path := c.Store
	if path == "" {
		p, err := store.DefaultPath()
		if err != nil {
			logger.Printf("app: no config dir, progress will not persist: %v", err)
			return store.NewMemory(nil)
		}
		path = p
	}
	f, err := store.Open(path)
	switch {
	case err == nil:
		return f
	case errors.Is(err, store.ErrCorrupt):
		logger.Printf("app: %v; starting fresh", err)
		return f
	default:
		logger.Printf("app: open %s: %v; progress will not persist", path, err)
		return store.NewMemory(nil)
	}
}

// LoadEnv reads .env style files into the process environment without
// overriding variables that are already set. Missing files are ignored.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// KVList collects repeated key=value flags.
type KVList map[string]string

// String implements flag.Value.
func (l *KVList) String() string {
	if l == nil || len(*l) == 0 {
		return ""
	}
	keys := make([]string, 0, len(*l))
	for k := range *l {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + (*l)[k]
	}
	return strings.Join(parts, ",")
}

// Set implements flag.Value.
func (l *KVList) Set(s string) error {
	key, value, ok := strings.Cut(s, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", s)
	}
	if *l == nil {
		*l = KVList{}
	}
	(*l)[key] = strings.TrimSpace(value)
	return nil
}

// Map returns a copy of the collected pairs.
func (l KVList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for k, v := range l {
		out[k] = v
	}
	return out
}
