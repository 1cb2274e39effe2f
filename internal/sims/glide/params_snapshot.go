package glide

import (
	"strconv"

	"umbrella-glide/internal/core"
)

var controls = []core.ParameterControl{
	{Key: "gravity_open", Label: "Gravity (open)", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 2, HasMin: true, HasMax: true},
	{Key: "gravity_closed", Label: "Gravity (closed)", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 5, HasMin: true, HasMax: true},
	{Key: "terminal_open", Label: "Terminal (open)", Type: core.ParamTypeFloat, Step: 0.5, Min: 0.5, Max: 30, HasMin: true, HasMax: true},
	{Key: "terminal_closed", Label: "Terminal (closed)", Type: core.ParamTypeFloat, Step: 1, Min: 1, Max: 60, HasMin: true, HasMax: true},
	{Key: "score_rate", Label: "Score rate", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true},
	{Key: "edge_margin", Label: "Edge margin", Type: core.ParamTypeFloat, Step: 5, Min: 0, Max: 120, HasMin: true, HasMax: true},
	{Key: "coin_chance", Label: "Coin chance", Type: core.ParamTypeFloat, Step: 0.005, Min: 0, Max: 1, HasMin: true, HasMax: true},
	{Key: "coin_radius", Label: "Coin radius", Type: core.ParamTypeFloat, Step: 2, Min: 4, Max: 80, HasMin: true, HasMax: true},
	{Key: "coin_min_gap", Label: "Coin min gap", Type: core.ParamTypeFloat, Step: 10, Min: 0, Max: 400, HasMin: true, HasMax: true},
}

// Parameters reports the current tunables grouped for display.
func (l *Loop) Parameters() core.ParameterSnapshot {
	p := l.cfg.Params
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Screen",
			Params: []core.Parameter{
				intParam("w", "Width", l.cfg.Width),
				intParam("h", "Height", l.cfg.Height),
				int64Param("seed", "Seed", l.seed),
				intParam("tps", "Ticks per second", l.cfg.TPS),
				boolParam("normalize", "Normalize by frame time", l.cfg.Normalize),
			},
		},
		{
			Name:    "Fall",
			Summary: "Per-tick gravity and velocity ceilings for each umbrella mode.",
			Params: []core.Parameter{
				floatParam("gravity_open", "Gravity (open)", p.GravityOpen),
				floatParam("gravity_closed", "Gravity (closed)", p.GravityClosed),
				floatParam("terminal_open", "Terminal (open)", p.TerminalOpen),
				floatParam("terminal_closed", "Terminal (closed)", p.TerminalClosed),
				floatParam("score_rate", "Score rate", p.ScoreRate),
				floatParam("edge_margin", "Edge margin", p.EdgeMargin),
				intParam("hint_score", "Hint score", p.HintScore),
			},
		},
		{
			Name: "Coins",
			Params: []core.Parameter{
				floatParam("coin_chance", "Coin chance", p.CoinChance),
				floatParam("coin_radius", "Coin radius", p.CoinRadius),
				floatParam("coin_min_gap", "Coin min gap", p.CoinMinGap),
				intParam("coin_value", "Coin value", p.CoinValue),
				intParam("coin_max", "Coin max", p.CoinMax),
			},
		},
	}}
}

// ParameterControls lists the tunables adjustable from the HUD.
func (l *Loop) ParameterControls() []core.ParameterControl {
	out := make([]core.ParameterControl, len(controls))
	copy(out, controls)
	return out
}

// SetFloatParameter updates a float tunable, clamping it to its control
// bounds. It reports whether key names a known tunable.
func (l *Loop) SetFloatParameter(key string, value float64) bool {
	for _, ctrl := range controls {
		if ctrl.Key != key {
			continue
		}
		return l.cfg.Params.setFloat(key, ctrl.Clamp(value))
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}
