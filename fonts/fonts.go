package fonts

import (
	"fmt"
	"strings"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular FontName = "go-regular"
	Bold    FontName = "go-bold"
	Small   FontName = "go-small"
)

// pointsPerUnit converts a surface font size to points on the viewer screen.
const pointsPerUnit = 0.64

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts   = map[FontName]font.Face{}
	sources = map[FontName]*truetype.Font{}
	sized   = map[string]font.Face{}
)

// LoadGoFonts registers the Go font family under Regular, Bold and Small.
func LoadGoFonts() error {
	for name, ttf := range map[FontName][]byte{Regular: goregular.TTF, Bold: gobold.TTF} {
		f, err := truetype.Parse(ttf)
		if err != nil {
			return fmt.Errorf("parse font %s: %w", name, err)
		}
		sources[name] = f
	}
	fonts[Regular] = truetype.NewFace(sources[Regular], &truetype.Options{Size: 14})
	fonts[Bold] = truetype.NewFace(sources[Bold], &truetype.Options{Size: 16})
	fonts[Small] = truetype.NewFace(sources[Regular], &truetype.Options{Size: 11})
	return nil
}

// ForSurface returns a face for a text surface's font name and size.
// Names containing "bold" use the bold source; everything else is regular.
func ForSurface(name string, size int) font.Face {
	key := fmt.Sprintf("%s/%d", name, size)
	if f, ok := sized[key]; ok {
		return f
	}
	src := sources[Regular]
	if strings.Contains(strings.ToLower(name), "bold") {
		src = sources[Bold]
	}
	if src == nil {
		panic("fonts not loaded")
	}
	f := truetype.NewFace(src, &truetype.Options{Size: float64(size) * pointsPerUnit})
	sized[key] = f
	return f
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
