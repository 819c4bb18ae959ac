package localize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/automoto/screenmenu/config"
)

func testCatalog() *Catalog {
	return New(map[string]map[string]string{
		"en":    {"Next": "Next", "Close": "Close", "ScrollKeys": "[{0}/{1}] Scroll"},
		"pt":    {"Next": "Próximo", "Close": "Fechar"},
		"pt-BR": {"Close": "Sair"},
		"??":    {"Next": "broken"},
	})
}

func TestLookupOrder(t *testing.T) {
	c := testCatalog()

	tests := []struct {
		lang, key, want string
	}{
		{"pt-BR", "Close", "Sair"},
		{"pt-BR", "Next", "Próximo"},
		{"pt-PT", "Close", "Fechar"},
		{"pt", "ScrollKeys", "[{0}/{1}] Scroll"},
		{"de", "Next", "Next"},
		{"", "Close", "Close"},
		{"not a tag!", "Next", "Next"},
		{"pt-BR", "Missing", "Missing"},
	}
	for _, tt := range tests {
		t.Run(tt.lang+"/"+tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, c.For(tt.lang).Localize(tt.key))
		})
	}
	assert.Len(t, c.Languages(), 3)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "[W/S] Scroll", testCatalog().For("en").Localize("ScrollKeys", "W", "S"))
	assert.Equal(t, "X: -9.000  Y: 0", Format("X: {0}  Y: {1}", "-9.000", 0))
	assert.Equal(t, "{0} only", Format("{0} only"))
	assert.Equal(t, "{1} and a", Format("{1} and {0}", "a"))
}

func TestDefaultConfigKeys(t *testing.T) {
	en := config.Default().Lang["en"]
	l := New(config.Default().Lang).For("fr")
	for _, key := range []string{"Prev", "Back", "Next", "Close", "ChangeRes", "ScrollKeys", "SelectKey", "ExitKey", "SelectRes", "ResHint", "ResValue"} {
		v, ok := en[key]
		if assert.True(t, ok, key) {
			assert.Equal(t, v, l.Localize(key))
		}
	}
}
