package ui

import "image/color"

var (
	colTrack       = color.RGBA{0x88, 0x88, 0x88, 0xFF}
	colActiveRange = color.RGBA{0x33, 0xB5, 0xE5, 0xFF} // "Ice Cream Sandwich" blue

	colThumb        = color.RGBA{0xD8, 0xD8, 0xD8, 0xFF}
	colThumbPressed = color.RGBA{0x33, 0xB5, 0xE5, 0xFF}
	colThumbBorder  = color.RGBA{0xF0, 0xF0, 0xF0, 0xFF}
)
