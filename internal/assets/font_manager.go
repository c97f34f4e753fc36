// internal/assets/font_manager.go
package assets

import (
	"fmt"
	"log"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type faceKey struct {
	size float64
	bold bool
}

// FontManager загружает и кэширует шрифты интерфейса. Шрифты Go встроены в
// бинарник, файлы с диска не нужны.
type FontManager struct {
	regular *opentype.Font
	bold    *opentype.Font
	faces   map[faceKey]font.Face
}

// NewFontManager разбирает встроенные TTF.
func NewFontManager() (*FontManager, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bold font: %w", err)
	}
	return &FontManager{
		regular: regular,
		bold:    bold,
		faces:   make(map[faceKey]font.Face),
	}, nil
}

// Face возвращает начертание нужного кегля. При ошибке отдаёт
// basicfont.Face7x13, чтобы интерфейс всё равно что-то показал.
func (m *FontManager) Face(size float64, bold bool) font.Face {
	key := faceKey{size: size, bold: bold}
	if face, ok := m.faces[key]; ok {
		return face
	}

	src := m.regular
	if bold {
		src = m.bold
	}
	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Printf("WARNING: failed to build font face size=%v bold=%v: %v", size, bold, err)
		return basicfont.Face7x13
	}
	m.faces[key] = face
	return face
}

// Close освобождает все созданные начертания.
func (m *FontManager) Close() {
	for key, face := range m.faces {
		if err := face.Close(); err != nil {
			log.Printf("WARNING: failed to close font face %+v: %v", key, err)
		}
		delete(m.faces, key)
	}
}
