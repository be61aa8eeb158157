package chart

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	hintStrip  = 18 // extra bottom padding build reserves for the caption
	hintInsetX = 16 // the chart's left padding
)

var (
	hintBand = color.RGBA{R: 0, G: 0, B: 0, A: 200}
	hintText = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// DrawHint returns a copy of img with text written on a dark band filling
// the bottom strip pixels, vertically centred in the band.
func DrawHint(img image.Image, text string, strip int) image.Image {
	if img == nil || strings.TrimSpace(text) == "" {
		return img
	}
	face := basicfont.Face7x13
	if h := face.Metrics().Height.Ceil(); strip < h {
		strip = h
	}
	b := img.Bounds()
	out := image.NewRGBA(b)
	draw.Draw(out, b, img, b.Min, draw.Src)

	band := image.Rect(b.Min.X, b.Max.Y-strip, b.Max.X, b.Max.Y)
	draw.Draw(out, band, image.NewUniform(hintBand), image.Point{}, draw.Over)

	ascent := face.Metrics().Ascent.Ceil()
	baseline := band.Min.Y + (strip+ascent)/2
	d := &font.Drawer{
		Dst:  out,
		Src:  image.NewUniform(hintText),
		Face: face,
		Dot:  fixed.P(b.Min.X+hintInsetX, baseline),
	}
	d.DrawString(text)
	return out
}

// Blank returns a dark placeholder image, shown while no chart could be rendered.
func Blank(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{R: 18, G: 18, B: 18, A: 255}), image.Point{}, draw.Src)
	return img
}
