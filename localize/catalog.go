// Package localize resolves menu strings from the config lang table.
package localize

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"github.com/automoto/screenmenu/menu"
	"github.com/automoto/screenmenu/pkg/logging"
)

// Fallback is the table used when neither the player's tag nor its base language has a key.
const Fallback = "en"

// Catalog holds one key table per language tag.
type Catalog struct {
	tables map[string]map[string]string
}

// New indexes lang by canonical tag. Entries with an unparsable tag are skipped.
func New(lang map[string]map[string]string) *Catalog {
	c := &Catalog{tables: make(map[string]map[string]string, len(lang))}
	for name, table := range lang {
		tag, err := language.Parse(name)
		if err != nil {
			logging.Warn("localize", "skipping language %q: %v", name, err)
			continue
		}
		c.tables[tag.String()] = table
	}
	return c
}

// Languages lists the loaded tags.
func (c *Catalog) Languages() []string {
	out := make([]string, 0, len(c.tables))
	for tag := range c.tables {
		out = append(out, tag)
	}
	return out
}

// For returns a Localizer for a player's language, such as "pt-BR" or "de".
func (c *Catalog) For(lang string) *Localizer {
	l := &Localizer{}
	seen := map[string]bool{}
	add := func(tag string) {
		if t, ok := c.tables[tag]; ok && !seen[tag] {
			seen[tag] = true
			l.chain = append(l.chain, t)
		}
	}

	if tag, err := language.Parse(lang); err == nil {
		add(tag.String())
		if base, conf := tag.Base(); conf != language.No {
			add(base.String())
		}
	}
	add(Fallback)
	return l
}

// Localizer looks a key up along a fallback chain of tables.
type Localizer struct {
	chain []map[string]string
}

var _ menu.Localizer = (*Localizer)(nil)

// Localize returns the translation of key with {0}, {1}, ... replaced by
// args. An unknown key is returned as is.
func (l *Localizer) Localize(key string, args ...any) string {
	text := key
	for _, t := range l.chain {
		if v, ok := t[key]; ok {
			text = v
			break
		}
	}
	return Format(text, args...)
}

// Format replaces {i} placeholders with the i-th argument.
func Format(text string, args ...any) string {
	if len(args) == 0 || !strings.Contains(text, "{") {
		return text
	}
	pairs := make([]string, 0, 2*len(args))
	for i, a := range args {
		pairs = append(pairs, "{"+strconv.Itoa(i)+"}", fmt.Sprint(a))
	}
	return strings.NewReplacer(pairs...).Replace(text)
}
