package glide

import "math"

// Coin is a pickup waiting below the falling body.
type Coin struct {
	X     float64
	Y     float64
	Value int
}

// Coins returns a copy of the pickups still in play.
func (l *Loop) Coins() []Coin {
	return append([]Coin(nil), l.coins...)
}

// PlaceCoin adds a pickup at a fixed position.
func (l *Loop) PlaceCoin(x, y float64, value int) {
	l.coins = append(l.coins, Coin{X: x, Y: y, Value: value})
}

// collectCoins pays out every coin the body swept through on its way from
// prevY to its current position. Coins left above the body are dropped
// since it can never climb back to them.
func (l *Loop) collectCoins(prevY float64) {
	if len(l.coins) == 0 {
		return
	}
	r := l.cfg.Params.CoinRadius
	top := prevY - r
	bottom := l.player.Y + r
	kept := l.coins[:0]
	for _, c := range l.coins {
		if c.Y >= top && c.Y <= bottom && math.Abs(c.X-l.player.X) <= r {
			if l.listener != nil && c.Value > 0 {
				l.listener.OnCoinCollect(c.Value)
			}
			continue
		}
		if c.Y < top {
			continue
		}
		kept = append(kept, c)
	}
	l.coins = kept
}

func (l *Loop) spawnCoin() {
	p := l.cfg.Params
	if p.CoinMax <= 0 || len(l.coins) >= p.CoinMax {
		return
	}
	if !l.rng.Chance(p.CoinChance) {
		return
	}
	top := l.player.Y + p.CoinMinGap
	bottom := float64(l.cfg.Height) - p.CoinRadius
	if top >= bottom {
		return
	}
	left := p.EdgeMargin
	right := float64(l.cfg.Width) - p.EdgeMargin
	if right <= left {
		left, right = 0, float64(l.cfg.Width)
	}
	l.coins = append(l.coins, Coin{
		X:     l.rng.Range(left, right),
		Y:     l.rng.Range(top, bottom),
		Value: p.CoinValue,
	})
}
