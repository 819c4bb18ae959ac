package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMenuOverlay(t *testing.T) {
	in := "<font class='fontSize-s'>" +
		"<font color='#E7CCA5'>Shop:</font><br>" +
		"<font color='#EFCE21'>1. Glock &amp; co</font><br>" +
		"</font>"

	assert.Equal(t, []Line{
		{Text: "Shop:", Color: "#E7CCA5"},
		{Text: "1. Glock & co", Color: "#EFCE21"},
	}, Parse(in))
	assert.Equal(t, "Shop:\n1. Glock & co", Plain(in))
}

func TestParseCalibrationOverlay(t *testing.T) {
	in := "<font color='#00FF00' class='fontSize-m'><b>Select</b></font><br>" +
		"<font color='#00FFFF' class='fontSize-m'><b>X: -9.000</b></font>"

	lines := Parse(in)
	if assert.Len(t, lines, 2) {
		assert.Equal(t, Line{Text: "Select", Color: "#00FF00", Bold: true}, lines[0])
		assert.Equal(t, Line{Text: "X: -9.000", Color: "#00FFFF", Bold: true}, lines[1])
	}
}

func TestParseEmpty(t *testing.T) {
	assert.Empty(t, Parse(""))
	assert.Equal(t, "", Plain(""))
}
