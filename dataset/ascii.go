package dataset

import (
	"bytes"
	"image"
	"image/color"
)

// ASCII draws an image as text, one rune per pixel: '█' for ink, ' ' for anything else.
func ASCII(img image.Image) string {
	var buf bytes.Buffer
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			if c.Y == 0 {
				buf.WriteRune('█')
			} else {
				buf.WriteByte(' ')
			}
		}
		buf.WriteByte('\n')
	}
	return buf.String()
}
