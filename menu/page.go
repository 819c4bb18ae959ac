package menu

// MaxPage is the last valid page index for n real options; 0 when n is 0.
func MaxPage(n, perPage int) int {
	if n <= 0 || perPage <= 0 {
		return 0
	}
	return (n+perPage-1)/perPage - 1
}

// PageEntry is one body line of a page.
type PageEntry struct {
	Option *Option
	// Number is the digit shown in front of the line, 0 when unnumbered.
	Number int
	// Selectable is the position in the selectable sequence, -1 when the line cannot be picked.
	Selectable int
}

// Target is what a selectable index or a digit resolves to.
type Target struct {
	Option *Option
	Nav    NavButton
	// Key is the digit that triggers the target, used to match the flash.
	Key int
}

func (t Target) Valid() bool {
	return t.Option != nil || t.Nav != NavNone
}

type pageFlags struct {
	hasParent      bool
	exit           bool
	calibrate      bool
	numberDisabled bool
}

// Page is the derived, read-only view of a single page.
type Page struct {
	Index   int
	MaxPage int
	Entries []PageEntry
	Enabled int
	Nav     []NavButton
}

// buildPage slices options for page. Spacers do not count toward pagination;
// a spacer belongs to the page of the next real option and trailing spacers
// belong to the last page.
func buildPage(options []*Option, page int, flags pageFlags) Page {
	count := 0
	for _, o := range options {
		if !o.spacer {
			count++
		}
	}

	p := Page{MaxPage: MaxPage(count, ItemsPerPage)}
	p.Index = clamp(page, 0, p.MaxPage)

	start := p.Index * ItemsPerPage
	end := min(count, start+ItemsPerPage)

	number := 1
	var pending []*Option
	flush := func() {
		for _, s := range pending {
			p.Entries = append(p.Entries, PageEntry{Option: s, Selectable: -1})
		}
		pending = pending[:0]
	}

	idx := 0
	for _, o := range options {
		if o.spacer {
			pending = append(pending, o)
			continue
		}
		if idx >= start && idx < end {
			flush()
			e := PageEntry{Option: o, Selectable: -1}
			switch {
			case !o.Disabled:
				e.Number = number
				e.Selectable = p.Enabled
				number++
				p.Enabled++
			case flags.numberDisabled:
				e.Number = number
				number++
			}
			p.Entries = append(p.Entries, e)
		}
		pending = pending[:0]
		idx++
	}
	if p.Index == p.MaxPage {
		flush()
	}

	if p.Index > 0 || flags.hasParent {
		p.Nav = append(p.Nav, NavBack)
	}
	if p.Index < p.MaxPage {
		p.Nav = append(p.Nav, NavNext)
	}
	if flags.exit {
		p.Nav = append(p.Nav, NavExit)
	}
	if flags.calibrate {
		p.Nav = append(p.Nav, NavCalibrate)
	}
	return p
}

// Selectable is the length of the combined sequence of enabled options and nav buttons.
func (p Page) Selectable() int {
	return p.Enabled + len(p.Nav)
}

// Resolve maps a selectable index to its option or nav button.
func (p Page) Resolve(sel int) Target {
	if sel < 0 || sel >= p.Selectable() {
		return Target{}
	}
	if sel < p.Enabled {
		for _, e := range p.Entries {
			if e.Selectable == sel {
				return Target{Option: e.Option, Key: e.Number}
			}
		}
		return Target{}
	}
	nav := p.Nav[sel-p.Enabled]
	return Target{Nav: nav, Key: nav.Key()}
}

// Digit maps a pressed digit to a target. Digits without a matching
// enabled line or visible nav button resolve to an invalid Target.
func (p Page) Digit(key int) Target {
	if nav := navForKey(key); nav != NavNone {
		if p.NavIndex(nav) < 0 {
			return Target{}
		}
		return Target{Nav: nav, Key: key}
	}
	if key < 1 || key > ItemsPerPage {
		return Target{}
	}
	for _, e := range p.Entries {
		if e.Number == key {
			if e.Selectable < 0 {
				return Target{}
			}
			return Target{Option: e.Option, Key: key}
		}
	}
	return Target{}
}

// NavIndex is the selectable index of n on this page, or -1 when n is not shown.
func (p Page) NavIndex(n NavButton) int {
	for i, b := range p.Nav {
		if b == n {
			return p.Enabled + i
		}
	}
	return -1
}

// HasNav reports whether n is shown on this page.
func (p Page) HasNav(n NavButton) bool {
	return p.NavIndex(n) >= 0
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// wrap moves sel by delta around a sequence of length n.
func wrap(sel, delta, n int) int {
	if n <= 0 {
		return 0
	}
	return ((sel+delta)%n + n) % n
}
