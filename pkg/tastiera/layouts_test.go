package tastiera

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func gridLabels(row Row) string {
	var s string
	for _, key := range row {
		s += key.Label
	}
	return s
}

func TestLayoutsAreDeterministic(t *testing.T) {
	for _, layout := range []Layout{QWERTY, AZERTY, QWERTZ} {
		for _, shift := range []bool{false, true} {
			for _, symbols := range []bool{false, true} {
				assert.Equal(t, layout.Keys(shift, symbols), layout.Keys(shift, symbols))
			}
		}
	}
}

func TestQWERTYLetterRows(t *testing.T) {
	grid := QWERTY.Keys(false, false)
	require.Len(t, grid, 4)

	assert.Equal(t, "qwertyuiop", gridLabels(grid[0]))
	assert.Equal(t, "asdfghjkl", gridLabels(grid[1]))

	bottom := grid[2]
	require.Len(t, bottom, 9)
	assert.Equal(t, KeyShift, bottom[0].Kind)
	assert.Equal(t, "zxcvbnm", gridLabels(bottom))
	assert.Equal(t, KeyBackspace, bottom[len(bottom)-1].Kind)

	last := grid[3]
	require.Len(t, last, 2)
	assert.Equal(t, KeySymbols, last[0].Kind)
	assert.Equal(t, KeySpace, last[1].Kind)
}

func TestShiftUppercasesLetters(t *testing.T) {
	grid := QWERTY.Keys(true, false)
	assert.Equal(t, "QWERTYUIOP", gridLabels(grid[0]))
	assert.Equal(t, "ASDFGHJKL", gridLabels(grid[1]))
}

func TestAZERTYAndQWERTZRows(t *testing.T) {
	assert.Equal(t, "azertyuiop", gridLabels(AZERTY.Keys(false, false)[0]))
	assert.Equal(t, "qsdfghjklm", gridLabels(AZERTY.Keys(false, false)[1]))
	assert.Equal(t, "qwertzuiop", gridLabels(QWERTZ.Keys(false, false)[0]))
}

func TestSymbolGridSharedAcrossLayouts(t *testing.T) {
	qwerty := QWERTY.Keys(false, true)
	azerty := AZERTY.Keys(false, true)
	assert.Equal(t, qwerty, azerty)

	assert.Equal(t, "1234567890", gridLabels(qwerty[0]))
	assert.Equal(t, "@#$%&-+()/", gridLabels(qwerty[1]))
	assert.Equal(t, KeyBackspace, qwerty[2][len(qwerty[2])-1].Kind)

	// Shift has no effect on the symbol grid.
	assert.Equal(t, qwerty, QWERTY.Keys(true, true))
}

func TestForLanguage(t *testing.T) {
	cases := []struct {
		code string
		want Layout
	}{
		{"en", QWERTY},
		{"en-US", QWERTY},
		{"fr", AZERTY},
		{"fr-CA", AZERTY},
		{"de", QWERTZ},
		{"de-AT", QWERTZ},
		{"zu", QWERTY}, // unsupported languages fall back to QWERTY
	}
	for _, c := range cases {
		tag, err := language.Parse(c.code)
		require.NoError(t, err, c.code)
		got := ForLanguage(tag)
		assert.Equal(t, c.want.Keys(false, false), got.Keys(false, false), c.code)
	}
}
