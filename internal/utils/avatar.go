package utils

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
)

var avatarColors = map[string]color.RGBA{
	"Male":   {R: 0x4a, G: 0x90, B: 0xd9, A: 0xff},
	"Female": {R: 0xd9, G: 0x6a, B: 0xa8, A: 0xff},
}

// DefaultAvatar renders a gender-keyed placeholder profile photo as PNG
// bytes. Users replace it through the profile photo upload.
func DefaultAvatar(gender string) []byte {
	fill, ok := avatarColors[gender]
	if !ok {
		fill = color.RGBA{R: 0x8a, G: 0x8a, B: 0x8a, A: 0xff}
	}

	const size = 128
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	bg := color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
	const cx, cy, r = size / 2, size / 2, size/2 - 8

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				img.Set(x, y, fill)
			} else {
				img.Set(x, y, bg)
			}
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		// encoding an in-memory RGBA image cannot fail in practice
		return nil
	}
	return buf.Bytes()
}
