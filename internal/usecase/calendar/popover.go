package calendar

// PopoverPlacement is the clamped top-left origin of a detail popover.
type PopoverPlacement struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// PlacePopover positions a width×height popover at the anchor point, pulled
// back as needed so it stays fully inside the viewport. A popover larger
// than the viewport pins to the top-left edge.
func PlacePopover(anchorX, anchorY, width, height, viewportW, viewportH int) PopoverPlacement {
	x := anchorX
	if x+width > viewportW {
		x = viewportW - width
	}
	if x < 0 {
		x = 0
	}

	y := anchorY
	if y+height > viewportH {
		y = viewportH - height
	}
	if y < 0 {
		y = 0
	}

	return PopoverPlacement{X: x, Y: y}
}
