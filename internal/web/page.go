package web

import (
	"context"
	"fmt"
	"io"

	"umbrella-glide/internal/shell"

	"github.com/a-h/templ"
)

const pageStyle = `body{margin:0;font-family:system-ui,sans-serif;background:linear-gradient(#87ceeb,#1e3a8a);color:#fff;min-height:100vh}
main{max-width:28rem;margin:0 auto;padding:3rem 1.5rem}
h1{margin:0 0 .25rem}
.name{color:#fbbf24;margin:0 0 2rem}
dl{display:grid;grid-template-columns:1fr auto;gap:.75rem 1rem;background:rgba(0,0,0,.35);padding:1.25rem;border-radius:.75rem}
dt{opacity:.8}
dd{margin:0;font-weight:700;text-align:right}`

// ProgressPage renders the player's persisted record.
func ProgressPage(p shell.Progress) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		name := p.PlayerName
		if name == "" {
			name = "No runs yet"
		}
		_, err := fmt.Fprintf(w, `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Umbrella Glide progress</title>
<style>%s</style>
</head>
<body>
<main>
<h1>Umbrella Glide</h1>
<p class="name">%s</p>
<dl>
<dt>Best depth</dt><dd id="high-score">%d m</dd>
<dt>Coins</dt><dd id="coins">%d</dd>
</dl>
</main>
</body>
</html>
`, pageStyle, templ.EscapeString(name), p.HighScore, p.Coins)
		return err
	})
}
