// Package glyph holds the private-use icon codepoints provided by the bundled
// UI font. The values must stay in sync with assets/fonts/pokemon-randomizer.ttf.
package glyph

const (
	Heart         = ""
	Thunder       = ""
	Exclamation   = ""
	ThunderFilled = ""

	GamePad = ""

	Check = ""
	Close = ""

	File   = ""
	Folder = ""
	SDCard = ""

	GamePadA     = ""
	GamePadB     = ""
	GamePadMenu  = ""
	GamePadX     = ""
	GamePadY     = ""
	GamePadDown  = ""
	GamePadLeft  = ""
	GamePadRight = ""
	GamePadUp    = ""
)

// Runes lists every icon codepoint, used when loading the font atlas so the
// private-use range is rasterized alongside ASCII.
func Runes() []rune {
	return []rune{
		'', '', '', '', '', '', '',
		'', '', '', '', '', '', '',
		'', '', '', '', '',
	}
}
