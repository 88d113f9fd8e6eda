package gui

import (
	"math"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/sirupsen/logrus"

	"github.com/sbugallo/muos-pokemon-randomizer-app/internal/glyph"
)

// fontRasterSize is the size the atlas is rasterized at; draw calls scale
// down from it.
const fontRasterSize = 48

type typographyState struct {
	font     rl.Font
	ownsFont bool
}

var uiType typographyState

// initTypography loads the bundled UI font once, including the private-use
// icon range, and falls back to raylib's default font when the asset is
// missing. Must run after the window exists.
func initTypography() {
	uiType.font = rl.GetFontDefault()

	candidates := []string{
		filepath.Join("assets", "fonts", "pokemon-randomizer.ttf"),
	}
	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates,
			filepath.Join(filepath.Dir(exe), "assets", "fonts", "pokemon-randomizer.ttf"))
	}

	runes := fontRunes()
	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		font := rl.LoadFontEx(path, fontRasterSize, runes, int32(len(runes)))
		if font.Texture.ID == 0 {
			continue
		}
		uiType.font = font
		uiType.ownsFont = true
		logrus.WithField("font", path).Info("Loaded UI font")
		break
	}
	if !uiType.ownsFont {
		logrus.Warn("UI font not found, icon glyphs will not render")
	}

	rl.SetTextureFilter(uiType.font.Texture, rl.FilterBilinear)
}

func shutdownTypography() {
	if uiType.ownsFont && uiType.font.Texture.ID != 0 {
		rl.UnloadFont(uiType.font)
	}
	uiType = typographyState{}
}

// fontRunes returns printable ASCII plus the icon codepoints so the atlas
// covers everything the UI draws.
func fontRunes() []rune {
	runes := make([]rune, 0, 95+len(glyph.Runes()))
	for r := rune(32); r <= 126; r++ {
		runes = append(runes, r)
	}
	return append(runes, glyph.Runes()...)
}

func drawText(text string, x, y, fontSize int32, clr rl.Color) {
	if uiType.font.Texture.ID == 0 {
		rl.DrawText(text, x, y, fontSize, clr)
		return
	}
	rl.DrawTextEx(uiType.font, text, rl.Vector2{X: float32(x), Y: float32(y)}, float32(fontSize), 1, clr)
}

func measureText(text string, fontSize int32) int32 {
	if uiType.font.Texture.ID == 0 {
		return int32(rl.MeasureText(text, fontSize))
	}
	return int32(math.Round(float64(rl.MeasureTextEx(uiType.font, text, float32(fontSize), 1).X)))
}
