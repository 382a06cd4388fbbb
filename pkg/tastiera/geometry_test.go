package tastiera

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const geomDelta = 0.001

func TestPlanGridEmpty(t *testing.T) {
	avail := NewRect(0, 0, 300, 300)

	assert.Equal(t, Plan{}, PlanGrid(Grid{}, avail, false))
	assert.Equal(t, Plan{}, PlanGrid(Grid{{}, {}}, avail, false))
}

func TestPlanGridSkipsEmptyRows(t *testing.T) {
	grid := Grid{
		{},
		{TextKey("a"), TextKey("b")},
		{},
		{TextKey("c")},
	}
	plan := PlanGrid(grid, NewRect(0, 0, 300, 300), false)

	require.Len(t, plan.Rows, 2)
	assert.Equal(t, "a", plan.Rows[0][0].Key.Label)
	assert.Equal(t, "c", plan.Rows[1][0].Key.Label)
}

func TestPlanGridRowHeightFillsThirdOfAvailable(t *testing.T) {
	grid := QWERTY.Keys(false, false)
	avail := NewRect(0, 0, 640, 480)
	plan := PlanGrid(grid, avail, false)

	require.Len(t, plan.Rows, 4)
	n := float32(len(plan.Rows))
	gridHeight := n*plan.RowHeight + (n-1)*plan.VSpace
	assert.InDelta(t, avail.Height()/3, gridHeight, geomDelta)
}

func TestPlanGridBoundsAnchoredToBottom(t *testing.T) {
	avail := NewRect(10, 20, 650, 500)
	plan := PlanGrid(QWERTY.Keys(false, false), avail, false)

	assert.InDelta(t, avail.MinX, plan.Bounds.MinX, geomDelta)
	assert.InDelta(t, avail.MaxX, plan.Bounds.MaxX, geomDelta)
	assert.InDelta(t, avail.MaxY, plan.Bounds.MaxY, geomDelta)
	assert.Greater(t, plan.Bounds.MinY, avail.MinY)

	// Every placed key sits inside the bounds.
	for _, row := range plan.Rows {
		for _, placed := range row {
			assert.GreaterOrEqual(t, placed.Rect.MinY, plan.Bounds.MinY)
			assert.LessOrEqual(t, placed.Rect.MaxY, plan.Bounds.MaxY+geomDelta)
		}
	}
}

func TestPlanGridRowsAlignWithWidestRow(t *testing.T) {
	avail := NewRect(0, 0, 640, 480)
	plan := PlanGrid(QWERTY.Keys(false, false), avail, false)

	// Rows with a Space key stretch it to absorb the slack, so every such
	// row ends exactly one gap short of the right edge, like the widest row.
	for i, row := range plan.Rows {
		hasSpace := false
		for _, placed := range row {
			if placed.Key.Kind == KeySpace {
				hasSpace = true
			}
		}
		if !hasSpace {
			continue
		}
		last := row[len(row)-1]
		assert.InDelta(t, avail.MaxX-plan.HSpace, last.Rect.MaxX, geomDelta, "row %d", i)
		assert.InDelta(t, avail.MinX+plan.HSpace, row[0].Rect.MinX, geomDelta, "row %d", i)
	}
}

func TestPlanGridSpaceWidthMatchesDeficit(t *testing.T) {
	grid := Grid{
		{TextKey("1"), TextKey("2"), TextKey("3"), TextKey("4"), TextKey("5"), TextKey("6")},
		{{Kind: KeySymbols}, {Kind: KeySpace}},
	}
	avail := NewRect(0, 0, 600, 300)
	plan := PlanGrid(grid, avail, false)

	require.Len(t, plan.Rows, 2)
	space := plan.Rows[1][1]
	require.Equal(t, KeySpace, space.Key.Kind)

	// widest row: 6 units + 7 gaps; space row fixed part: 1.5 units + 3 gaps.
	widest := 6 + 7*spaceBetweenKeys
	fixed := 1.5 + 3*spaceBetweenKeys
	assert.InDelta(t, plan.ButtonWidth*(widest-fixed), space.Rect.Width(), geomDelta)
}

func TestPlanGridNegativeStretchClampsToZero(t *testing.T) {
	grid := Grid{
		{TextKey("a")},
		{TextKey("1"), {Kind: KeySpace}, TextKey("2"), {Kind: KeySpace}},
	}
	plan := PlanGrid(grid, NewRect(0, 0, 300, 300), false)

	require.Len(t, plan.Rows, 2)
	for _, placed := range plan.Rows[1] {
		if placed.Key.Kind == KeySpace {
			assert.InDelta(t, 0, placed.Rect.Width(), geomDelta)
		}
	}
}

func TestPlanGridCentersRowsWithoutSpace(t *testing.T) {
	grid := Grid{
		{TextKey("q"), TextKey("w"), TextKey("e"), TextKey("r"), TextKey("t")},
		{TextKey("a"), TextKey("s")},
	}
	avail := NewRect(0, 0, 500, 300)
	plan := PlanGrid(grid, avail, false)

	require.Len(t, plan.Rows, 2)
	short := plan.Rows[1]
	leftPad := short[0].Rect.MinX - avail.MinX
	rightPad := avail.MaxX - short[len(short)-1].Rect.MaxX
	assert.InDelta(t, leftPad, rightPad, geomDelta)
	assert.Greater(t, leftPad, float32(0))
}

func TestPlanGridSingleRowScenario(t *testing.T) {
	grid := Grid{{TextKey("a"), TextKey("b"), {Kind: KeyBackspace}}}
	plan := PlanGrid(grid, NewRect(0, 0, 300, 300), false)

	require.Len(t, plan.Rows, 1)
	row := plan.Rows[0]
	require.Len(t, row, 3)

	// widest = 3.5 units + 4 gaps = 25/6; button width = 300/(25/6) = 72.
	assert.InDelta(t, 72, plan.ButtonWidth, geomDelta)
	assert.InDelta(t, 12, plan.HSpace, geomDelta)

	assert.InDelta(t, 12, row[0].Rect.MinX, geomDelta)
	assert.InDelta(t, 84, row[0].Rect.MaxX, geomDelta)
	assert.InDelta(t, 96, row[1].Rect.MinX, geomDelta)
	assert.InDelta(t, 168, row[1].Rect.MaxX, geomDelta)
	assert.InDelta(t, 180, row[2].Rect.MinX, geomDelta)
	assert.InDelta(t, 288, row[2].Rect.MaxX, geomDelta)
	assert.InDelta(t, 108, row[2].Rect.Width(), geomDelta)
}

func TestPlanGridWiderKeysGetWiderRects(t *testing.T) {
	plan := PlanGrid(QWERTY.Keys(false, false), NewRect(0, 0, 640, 480), false)

	require.Len(t, plan.Rows, 4)
	bottom := plan.Rows[2]
	shift := bottom[0]
	letter := bottom[1]
	require.Equal(t, KeyShift, shift.Key.Kind)
	require.Equal(t, KeyText, letter.Key.Kind)
	assert.InDelta(t, letter.Rect.Width()*1.5, shift.Rect.Width(), geomDelta)
}

func TestPlanGridClipboardRow(t *testing.T) {
	grid := QWERTY.Keys(false, false)
	avail := NewRect(0, 0, 640, 480)

	without := PlanGrid(grid, avail, false)
	with := PlanGrid(grid, avail, true)

	require.NotNil(t, with.Clipboard)
	assert.Nil(t, without.Clipboard)

	// The clipboard slot spans the full width minus the outer gaps and sits
	// above every key row.
	assert.InDelta(t, avail.MinX+with.HSpace, with.Clipboard.MinX, geomDelta)
	assert.InDelta(t, avail.MaxX-with.HSpace, with.Clipboard.MaxX, geomDelta)
	assert.InDelta(t, with.RowHeight, with.Clipboard.Height(), geomDelta)
	assert.Less(t, with.Clipboard.MaxY, with.Rows[0][0].Rect.MinY+geomDelta)

	// The extra slot raises the bounds but leaves the key sizing untouched.
	assert.InDelta(t, without.RowHeight, with.RowHeight, geomDelta)
	assert.InDelta(t,
		without.Bounds.Height()+with.RowHeight+with.VSpace,
		with.Bounds.Height(), geomDelta)
}
