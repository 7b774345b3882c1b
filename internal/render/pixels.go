package render

// FillBinary colors binary cell data (0/1) into f: live cells take on, dead
// cells stay black. cells is row-major with the frame's dimensions.
func FillBinary(f *Frame, cells []uint8, on RGB) {
	for i, c := range cells {
		if i >= len(f.Pix) {
			return
		}
		if c != 0 {
			f.Pix[i] = on
			continue
		}
		f.Pix[i] = Black
	}
}

// FillPalette converts cell values into colors using a palette. Values past the
// end of the palette use its last entry. When the palette is empty the frame
// is cleared to black.
func FillPalette(f *Frame, cells []uint8, palette []RGB) {
	if len(palette) == 0 {
		f.Fill(Black)
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		if i >= len(f.Pix) {
			return
		}
		idx := int(c)
		if idx > last {
			idx = last
		}
		f.Pix[i] = palette[idx]
	}
}

// FillStripRGBA converts strip-ordered pixels back into a row-major RGBA
// buffer of the layout's size, so previews show what the wired matrix shows.
func FillStripRGBA(buf []byte, layout Layout, strip []RGB) {
	w := layout.Width()
	for i, c := range strip {
		if i >= layout.Cells() {
			return
		}
		col, row := layout.Coords(i)
		base := (row*w + col) * 4
		buf[base+0] = c.R
		buf[base+1] = c.G
		buf[base+2] = c.B
		buf[base+3] = 0xff
	}
}
