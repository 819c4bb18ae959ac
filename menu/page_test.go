package menu

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func optionList(n int) []*Option {
	out := make([]*Option, n)
	for i := range out {
		out[i] = &Option{Text: fmt.Sprintf("Option %d", i+1)}
	}
	return out
}

func TestMaxPage(t *testing.T) {
	assert.Equal(t, 0, MaxPage(0, ItemsPerPage))
	for n := 1; n <= 40; n++ {
		want := (n+ItemsPerPage-1)/ItemsPerPage - 1
		assert.Equal(t, want, MaxPage(n, ItemsPerPage), "n=%d", n)
	}
	assert.Equal(t, 0, MaxPage(6, ItemsPerPage))
	assert.Equal(t, 1, MaxPage(7, ItemsPerPage))
}

func TestBuildPageClampsIndex(t *testing.T) {
	opts := optionList(8)
	assert.Equal(t, 1, buildPage(opts, 5, pageFlags{}).Index)
	assert.Equal(t, 0, buildPage(opts, -3, pageFlags{}).Index)
	assert.Equal(t, 0, buildPage(nil, 2, pageFlags{}).Index)
}

func TestEightOptionsPagination(t *testing.T) {
	opts := optionList(8)

	first := buildPage(opts, 0, pageFlags{})
	require.Len(t, first.Entries, 6)
	assert.Equal(t, "Option 1", first.Entries[0].Option.Text)
	assert.Equal(t, "Option 6", first.Entries[5].Option.Text)
	assert.Equal(t, []NavButton{NavNext}, first.Nav)

	second := buildPage(opts, 1, pageFlags{})
	require.Len(t, second.Entries, 2)
	assert.Equal(t, "Option 7", second.Entries[0].Option.Text)
	assert.Equal(t, 1, second.Entries[0].Number)
	assert.Equal(t, []NavButton{NavBack}, second.Nav)
}

func TestNavOrder(t *testing.T) {
	opts := optionList(15)
	p := buildPage(opts, 1, pageFlags{exit: true, calibrate: true})
	assert.Equal(t, []NavButton{NavBack, NavNext, NavExit, NavCalibrate}, p.Nav)
	assert.Equal(t, 6, p.NavIndex(NavBack))
	assert.Equal(t, 9, p.NavIndex(NavCalibrate))
	assert.Equal(t, 10, p.Selectable())

	sub := buildPage(optionList(2), 0, pageFlags{hasParent: true})
	assert.Equal(t, []NavButton{NavBack}, sub.Nav)
}

func TestDisabledOptionsExcludedFromSelection(t *testing.T) {
	opts := []*Option{{Text: "A"}, {Text: "B", Disabled: true}, {Text: "C"}}

	p := buildPage(opts, 0, pageFlags{})
	assert.Equal(t, 2, p.Enabled)
	assert.Equal(t, "A", p.Resolve(0).Option.Text)
	assert.Equal(t, "C", p.Resolve(1).Option.Text)
	assert.False(t, p.Resolve(2).Valid())
}

func TestDigitNumbering(t *testing.T) {
	opts := []*Option{{Text: "A"}, {Text: "B", Disabled: true}, {Text: "C"}}

	t.Run("disabled lines numbered", func(t *testing.T) {
		p := buildPage(opts, 0, pageFlags{numberDisabled: true})
		assert.Equal(t, []int{1, 2, 3}, numbers(p))
		assert.Equal(t, "A", p.Digit(1).Option.Text)
		assert.False(t, p.Digit(2).Valid(), "a disabled line's number does nothing")
		assert.Equal(t, "C", p.Digit(3).Option.Text)
		assert.False(t, p.Digit(4).Valid())
	})

	t.Run("disabled lines unnumbered", func(t *testing.T) {
		p := buildPage(opts, 0, pageFlags{})
		assert.Equal(t, []int{1, 0, 2}, numbers(p))
		assert.Equal(t, "C", p.Digit(2).Option.Text)
		assert.False(t, p.Digit(3).Valid())
	})

	t.Run("nav digits only when shown", func(t *testing.T) {
		p := buildPage(optionList(8), 0, pageFlags{})
		assert.Equal(t, NavNext, p.Digit(8).Nav)
		assert.False(t, p.Digit(7).Valid())
		assert.False(t, p.Digit(9).Valid())
		assert.False(t, p.Digit(0).Valid())
	})
}

func TestAllDisabledPage(t *testing.T) {
	opts := []*Option{{Text: "A", Disabled: true}, {Text: "B", Disabled: true}}
	p := buildPage(opts, 0, pageFlags{exit: true})

	assert.Equal(t, 0, p.Enabled)
	assert.Equal(t, 1, p.Selectable())
	assert.Equal(t, NavExit, p.Resolve(0).Nav)
}

func TestSpacersTakeNoSlot(t *testing.T) {
	opts := optionList(6)
	// spacer between option 3 and 4, and one before the 7th option
	opts = append(opts[:3], append([]*Option{{spacer: true}}, opts[3:]...)...)
	opts = append(opts, &Option{spacer: true}, &Option{Text: "Option 7"}, &Option{spacer: true})

	first := buildPage(opts, 0, pageFlags{})
	assert.Equal(t, 1, first.MaxPage)
	require.Len(t, first.Entries, 7)
	assert.True(t, first.Entries[3].Option.IsSpacer())
	assert.Equal(t, -1, first.Entries[3].Selectable)
	assert.Equal(t, 0, first.Entries[3].Number)
	assert.Equal(t, 6, first.Enabled)

	second := buildPage(opts, 1, pageFlags{})
	require.Len(t, second.Entries, 3)
	assert.True(t, second.Entries[0].Option.IsSpacer(), "spacer goes with the next real option")
	assert.Equal(t, "Option 7", second.Entries[1].Option.Text)
	assert.True(t, second.Entries[2].Option.IsSpacer(), "trailing spacer stays on the last page")
}

func TestWrap(t *testing.T) {
	for n := 1; n <= 9; n++ {
		for start := 0; start < n; start++ {
			sel := start
			for i := 0; i < n; i++ {
				sel = wrap(sel, 1, n)
			}
			assert.Equal(t, start, sel)
			for i := 0; i < n; i++ {
				sel = wrap(sel, -1, n)
			}
			assert.Equal(t, start, sel)
		}
	}
	assert.Equal(t, 0, wrap(3, 1, 0))
}

func numbers(p Page) []int {
	out := make([]int, len(p.Entries))
	for i, e := range p.Entries {
		out[i] = e.Number
	}
	return out
}
