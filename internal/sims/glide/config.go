package glide

import "strconv"

// Params holds the physics and pickup tuning for a run. Gravity and
// terminal velocity are expressed per tick at the nominal frame rate.
type Params struct {
	GravityOpen    float64
	GravityClosed  float64
	TerminalOpen   float64
	TerminalClosed float64

	// ScoreRate converts fallen distance into metres of depth.
	ScoreRate float64
	// EdgeMargin keeps the body this far from the left and right edges.
	EdgeMargin float64

	CoinChance float64
	CoinRadius float64
	CoinMinGap float64
	CoinValue  int
	CoinMax    int

	// HintScore hides the controls hint once the run reaches this depth.
	HintScore int
}

// Config controls the Loop dimensions and timing.
type Config struct {
	Width  int
	Height int

	Seed int64

	// TPS is the frame rate the per-tick constants are tuned for.
	TPS int
	// Normalize scales each tick by the measured frame time instead of
	// advancing by fixed per-call increments.
	Normalize bool

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  360,
		Height: 640,
		Seed:   1,
		TPS:    60,
		Params: Params{
			GravityOpen:    0.15,
			GravityClosed:  0.5,
			TerminalOpen:   3,
			TerminalClosed: 15,
			ScoreRate:      0.1,
			EdgeMargin:     30,
			CoinChance:     0.02,
			CoinRadius:     22,
			CoinMinGap:     60,
			CoinValue:      1,
			CoinMax:        6,
			HintScore:      50,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["tps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.TPS = parsed
		}
	}
	if v, ok := cfg["normalize"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Normalize = parsed
		}
	}
	if v, ok := cfg["coin_value"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.CoinValue = parsed
		}
	}
	if v, ok := cfg["coin_max"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.CoinMax = parsed
		}
	}
	if v, ok := cfg["hint_score"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.HintScore = parsed
		}
	}
	for _, ctrl := range controls {
		v, ok := cfg[ctrl.Key]
		if !ok {
			continue
		}
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			continue
		}
		c.Params.setFloat(ctrl.Key, ctrl.Clamp(parsed))
	}
	return c
}

// setFloat assigns a float tunable by key.
func (p *Params) setFloat(key string, v float64) bool {
	switch key {
	case "gravity_open":
		p.GravityOpen = v
	case "gravity_closed":
		p.GravityClosed = v
	case "terminal_open":
		p.TerminalOpen = v
	case "terminal_closed":
		p.TerminalClosed = v
	case "score_rate":
		p.ScoreRate = v
	case "edge_margin":
		p.EdgeMargin = v
	case "coin_chance":
		p.CoinChance = v
	case "coin_radius":
		p.CoinRadius = v
	case "coin_min_gap":
		p.CoinMinGap = v
	default:
		return false
	}
	return true
}
