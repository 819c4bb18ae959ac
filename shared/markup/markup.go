// Package markup reads the small HTML subset the menu overlay is written in:
// font (color, class), b and br.
package markup

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Line is one overlay row. Color is the innermost font color in effect
// when the row's first text was read.
type Line struct {
	Text  string
	Color string
	Bold  bool
}

// Parse splits markup into rows at every <br>. Unknown tags are ignored.
func Parse(markup string) []Line {
	z := html.NewTokenizer(strings.NewReader(markup))
	var (
		lines  []Line
		cur    Line
		open   bool
		colors []string
		bold   int
	)
	flush := func() {
		lines = append(lines, cur)
		cur = Line{}
		open = false
	}

	for {
		switch z.Next() {
		case html.ErrorToken:
			if z.Err() != io.EOF {
				return lines
			}
			if open {
				flush()
			}
			return lines
		case html.TextToken:
			text := string(z.Text())
			if text == "" {
				continue
			}
			if !open {
				if n := len(colors); n > 0 {
					cur.Color = colors[n-1]
				}
				cur.Bold = bold > 0
				open = true
			}
			cur.Text += text
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			switch string(name) {
			case "br":
				flush()
			case "b":
				bold++
			case "font":
				color := ""
				if n := len(colors); n > 0 {
					color = colors[n-1]
				}
				for hasAttr {
					var key, val []byte
					key, val, hasAttr = z.TagAttr()
					if string(key) == "color" {
						color = string(val)
					}
				}
				colors = append(colors, color)
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "b":
				bold = max(bold-1, 0)
			case "font":
				if n := len(colors); n > 0 {
					colors = colors[:n-1]
				}
			}
		}
	}
}

// Plain returns the overlay text with one row per line.
func Plain(markup string) string {
	lines := Parse(markup)
	rows := make([]string, len(lines))
	for i, l := range lines {
		rows[i] = l.Text
	}
	return strings.Join(rows, "\n")
}
