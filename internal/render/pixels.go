package render

import "image/color"

// Default colors used when a simulation does not publish a palette.
var (
	defaultDay   = color.RGBA{R: 17, G: 74, B: 88, A: 255}
	defaultNight = color.RGBA{R: 216, G: 231, B: 226, A: 255}
)

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf
// using the default day/night colors.
func fillBinaryRGBA(buf []byte, cells []uint8) {
	for i, c := range cells {
		col := defaultDay
		if c != 0 {
			col = defaultNight
		}
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette.
// Values beyond the palette clamp to its last entry.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
