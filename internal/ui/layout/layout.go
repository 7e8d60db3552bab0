// Package layout splits screen areas into regions. Regions always tile the
// area they were cut from: widths (or heights) sum to the parent size.
package layout

// Rect is a cell-addressed screen area.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Empty reports whether the area has no drawable cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Direction selects the axis a split runs along.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

type constraintKind int

const (
	kindPercentage constraintKind = iota
	kindLength
	kindFill
)

// Constraint sizes one region of a split.
type Constraint struct {
	kind  constraintKind
	value int
}

// Percentage sizes a region as a share of the parent, rounded down.
func Percentage(p int) Constraint {
	return Constraint{kind: kindPercentage, value: clamp(p, 0, 100)}
}

// Length sizes a region to a fixed number of cells.
func Length(n int) Constraint {
	return Constraint{kind: kindLength, value: max(n, 0)}
}

// Fill takes whatever the other constraints leave over.
func Fill() Constraint {
	return Constraint{kind: kindFill}
}

// Split cuts area into one region per constraint along dir. Fixed lengths are
// served first, then percentages of the full size; fill regions share what
// remains. Without a fill region the last region absorbs the rounding slack.
func Split(area Rect, dir Direction, constraints ...Constraint) []Rect {
	if len(constraints) == 0 {
		return nil
	}
	total := area.Width
	if dir == Vertical {
		total = area.Height
	}
	total = max(total, 0)

	sizes := make([]int, len(constraints))
	remaining := total
	for i, c := range constraints {
		if c.kind == kindLength {
			sizes[i] = min(c.value, remaining)
			remaining -= sizes[i]
		}
	}
	fills := 0
	for i, c := range constraints {
		switch c.kind {
		case kindPercentage:
			sizes[i] = min(total*c.value/100, remaining)
			remaining -= sizes[i]
		case kindFill:
			fills++
		}
	}
	if fills > 0 {
		share, extra := remaining/fills, remaining%fills
		for i, c := range constraints {
			if c.kind != kindFill {
				continue
			}
			sizes[i] = share
			if extra > 0 {
				sizes[i]++
				extra--
			}
		}
	} else {
		sizes[len(sizes)-1] += remaining
	}

	regions := make([]Rect, len(sizes))
	offset := 0
	for i, size := range sizes {
		if dir == Horizontal {
			regions[i] = Rect{X: area.X + offset, Y: area.Y, Width: size, Height: area.Height}
		} else {
			regions[i] = Rect{X: area.X, Y: area.Y + offset, Width: area.Width, Height: size}
		}
		offset += size
	}
	return regions
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
