package tastiera

// spaceBetweenKeys is the gap between adjacent keys, expressed as a fraction
// of the unit button width (horizontally) or the row height (vertically).
const spaceBetweenKeys float32 = 1.0 / 6.0

// gridHeightDivisor fixes the keyboard grid to one third of the available
// height, leaving the rest for host content.
const gridHeightDivisor float32 = 3

// PlacedKey is one key with its computed on-screen rectangle.
type PlacedKey struct {
	Key  Key
	Rect Rect
}

// Plan is the geometry for one frame of the keyboard: every key placed in
// host coordinates, plus the overall bounds. It is plain data; rendering is
// a separate step that iterates it.
type Plan struct {
	// Rows holds the placed keys for every non-empty grid row, top to bottom.
	Rows [][]PlacedKey

	// Clipboard is the slot reserved for the clipboard-preview button, nil
	// when no clipboard row was requested.
	Clipboard *Rect

	// Bounds is the full rectangle the keyboard occupies, anchored to the
	// bottom of the available rect and spanning its width.
	Bounds Rect

	RowHeight   float32
	ButtonWidth float32
	HSpace      float32
	VSpace      float32
}

// PlanGrid computes key geometry for grid inside avail. The grid fills one
// third of avail's height; row slack goes to Space keys and space-less rows
// are centered. clipboardRow reserves one extra full-width slot above the
// key rows. A grid with no non-empty rows plans to nothing.
func PlanGrid(grid Grid, avail Rect, clipboardRow bool) Plan {
	rows := make([]Row, 0, len(grid))
	for _, row := range grid {
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}
	if len(rows) == 0 {
		return Plan{}
	}

	widest := float32(0)
	for _, row := range rows {
		if units := rowUnits(row); units > widest {
			widest = units
		}
	}
	if widest <= 0 {
		return Plan{}
	}

	// availHeight = gridHeightDivisor * (n*rowHeight + (n-1)*rowHeight*S)
	n := float32(len(rows))
	rowHeight := avail.Height() / gridHeightDivisor / ((n-1)*spaceBetweenKeys + n)
	vspace := rowHeight * spaceBetweenKeys
	buttonWidth := avail.Width() / widest
	hspace := buttonWidth * spaceBetweenKeys

	slots := n
	if clipboardRow {
		slots++
	}
	totalHeight := vspace + slots*(rowHeight+vspace)

	plan := Plan{
		Rows:        make([][]PlacedKey, 0, len(rows)),
		Bounds:      NewRect(avail.MinX, avail.MaxY-totalHeight, avail.MaxX, avail.MaxY),
		RowHeight:   rowHeight,
		ButtonWidth: buttonWidth,
		HSpace:      hspace,
		VSpace:      vspace,
	}

	y := plan.Bounds.MinY + vspace
	if clipboardRow {
		clip := NewRect(avail.MinX+hspace, y, avail.MaxX-hspace, y+rowHeight)
		plan.Clipboard = &clip
		y += rowHeight + vspace
	}

	for _, row := range rows {
		plan.Rows = append(plan.Rows, placeRow(row, avail, y, rowHeight, buttonWidth, hspace, widest))
		y += rowHeight + vspace
	}
	return plan
}

func placeRow(row Row, avail Rect, y, rowHeight, buttonWidth, hspace, widest float32) []PlacedKey {
	relSum := float32(0)
	spaceCount := 0
	for _, key := range row {
		relSum += key.RelativeWidth()
		if key.Kind == KeySpace {
			spaceCount++
		}
	}
	rowUnits := relSum + float32(len(row)+1)*spaceBetweenKeys

	spaceWidth := float32(0)
	if spaceCount > 0 {
		// The deficit against the widest row is split across the Space keys
		// so the row stretches to line up with it.
		stretch := (widest - rowUnits) / float32(spaceCount)
		if stretch < 0 {
			stretch = 0
		}
		spaceWidth = buttonWidth * stretch
	}

	x := avail.MinX + hspace
	if spaceCount == 0 {
		// No spacer to absorb the deficit: center the row instead.
		content := relSum*buttonWidth + float32(len(row)-1)*hspace
		pad := (avail.Width() - content) / 2
		if pad < 0 {
			pad = 0
		}
		x = avail.MinX + pad
	}

	placed := make([]PlacedKey, 0, len(row))
	for _, key := range row {
		width := buttonWidth * key.RelativeWidth()
		if key.Kind == KeySpace {
			width = spaceWidth
		}
		placed = append(placed, PlacedKey{Key: key, Rect: NewRect(x, y, x+width, y+rowHeight)})
		x += width + hspace
	}
	return placed
}

func rowUnits(row Row) float32 {
	units := float32(len(row)+1) * spaceBetweenKeys
	for _, key := range row {
		units += key.RelativeWidth()
	}
	return units
}
