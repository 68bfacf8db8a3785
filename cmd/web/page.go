package main

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

const pageHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>termtris</title>
<style>
body { background: #10101c; color: #e0e0f0; font-family: monospace; text-align: center; padding-top: 10vh; }
h1 { letter-spacing: 0.5em; color: #f0a000; }
code { display: inline-block; background: #1e1e30; padding: 0.8em 1.4em; border-radius: 4px; font-size: 1.2em; }
.keys { color: #9a9ac0; margin-top: 2em; }
</style>
</head>
<body>
<h1>TERMTRIS</h1>
<p>Falling blocks in your terminal. Connect with:</p>
`

const pageFoot = `<p class="keys">arrows or hjkl to move and rotate, space to drop, p to pause, q to quit</p>
</body>
</html>
`

// indexPage renders the landing page with the ssh command to connect.
func indexPage(command string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, pageHead); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "<p><code>"+templ.EscapeString(command)+"</code></p>\n"); err != nil {
			return err
		}
		_, err := io.WriteString(w, pageFoot)
		return err
	})
}
