package tastiera

import (
	"strings"

	"golang.org/x/text/language"
)

// Layout produces the key grid for a shift/symbol mode combination. It must
// be a pure function of its two inputs: no side effects, deterministic.
type Layout interface {
	Keys(shift, symbols bool) Grid
}

// LayoutFunc adapts a plain function to the Layout interface.
type LayoutFunc func(shift, symbols bool) Grid

func (f LayoutFunc) Keys(shift, symbols bool) Grid {
	return f(shift, symbols)
}

// Built-in letter layouts. All of them share the same symbol grid.
var (
	QWERTY Layout = letterLayout("qwertyuiop", "asdfghjkl", "zxcvbnm")
	AZERTY Layout = letterLayout("azertyuiop", "qsdfghjklm", "wxcvbn")
	QWERTZ Layout = letterLayout("qwertzuiop", "asdfghjkl", "yxcvbnm")
)

var layoutTags = []language.Tag{
	language.English, // QWERTY, also the fallback
	language.French,  // AZERTY
	language.German,  // QWERTZ
}

var layoutMatcher = language.NewMatcher(layoutTags)

// ForLanguage picks the letter layout conventionally used for the given
// language tag. Unrecognized tags fall back to QWERTY.
func ForLanguage(tag language.Tag) Layout {
	_, index, _ := layoutMatcher.Match(tag)
	switch index {
	case 1:
		return AZERTY
	case 2:
		return QWERTZ
	default:
		return QWERTY
	}
}

func letterLayout(top, home, bottom string) Layout {
	return LayoutFunc(func(shift, symbols bool) Grid {
		if symbols {
			return symbolGrid()
		}
		bottomRow := Row{{Kind: KeyShift}}
		bottomRow = append(bottomRow, textRow(bottom, shift)...)
		bottomRow = append(bottomRow, Key{Kind: KeyBackspace})
		return Grid{
			textRow(top, shift),
			textRow(home, shift),
			bottomRow,
			{{Kind: KeySymbols}, {Kind: KeySpace}},
		}
	})
}

func textRow(letters string, shift bool) Row {
	if shift {
		letters = strings.ToUpper(letters)
	}
	row := make(Row, 0, len(letters))
	for _, r := range letters {
		row = append(row, TextKey(string(r)))
	}
	return row
}

func symbolGrid() Grid {
	punctuation := Row{}
	for _, s := range []string{"*", "\"", "'", ":", ";", "!", "?"} {
		punctuation = append(punctuation, TextKey(s))
	}
	punctuation = append(punctuation, Key{Kind: KeyBackspace})
	return Grid{
		textRow("1234567890", false),
		textRow("@#$%&-+()/", false),
		punctuation,
		{{Kind: KeySymbols}, {Kind: KeySpace}},
	}
}
