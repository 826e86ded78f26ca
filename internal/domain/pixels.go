package domain

import (
	"image"
	"image/color"
)

// RGBA expands the buffer into an opaque *image.RGBA for the stdlib encoders.
func (b PixelBuffer) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	for i, j := 0, 0; i+2 < len(b.Pix) && j+3 < len(img.Pix); i, j = i+3, j+4 {
		img.Pix[j] = b.Pix[i]
		img.Pix[j+1] = b.Pix[i+1]
		img.Pix[j+2] = b.Pix[i+2]
		img.Pix[j+3] = 0xff
	}
	return img
}

// PixelBufferFrom flattens any image to 8-bit RGB, dropping alpha.
func PixelBufferFrom(img image.Image) PixelBuffer {
	bounds := img.Bounds()
	buf := PixelBuffer{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Pix:    make([]uint8, 0, bounds.Dx()*bounds.Dy()*3),
	}

	if rgba, ok := img.(*image.RGBA); ok {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			row := rgba.Pix[rgba.PixOffset(bounds.Min.X, y):rgba.PixOffset(bounds.Max.X, y)]
			for x := 0; x+4 <= len(row); x += 4 {
				buf.Pix = append(buf.Pix, row[x], row[x+1], row[x+2])
			}
		}
		return buf
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			buf.Pix = append(buf.Pix, c.R, c.G, c.B)
		}
	}
	return buf
}
