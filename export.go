package main

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"boxlabel/internal/label"
)

// exportPNG writes the source image with the label boxes drawn on top.
// Degenerate boxes are left out.
func exportPNG(filename string, source image.Image, width, height int, boxes []label.Box, boxColor string) error {
	var dc *gg.Context
	if source != nil {
		dc = gg.NewContextForImage(source)
	} else {
		if width < 1 || height < 1 {
			return fmt.Errorf("nothing to export")
		}
		dc = gg.NewContext(width, height)
		dc.SetColor(color.White)
		dc.Clear()
	}

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %w", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    14,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	stroke := parseHexColor(boxColor)
	for _, box := range label.NonDegenerate(boxes) {
		drawBoxPNG(dc, box, stroke)
	}

	return dc.SavePNG(filename)
}

func drawBoxPNG(dc *gg.Context, box label.Box, stroke color.Color) {
	g := box.Geometry

	dc.SetLineWidth(exportBorderWidth)
	dc.SetColor(stroke)
	dc.DrawRectangle(g.Left, g.Top, g.Width, g.Height)
	dc.Stroke()

	// Index tag above the top-left corner, inside the image when the box
	// touches the top edge.
	tag := strconv.Itoa(box.Index)
	tw, th := dc.MeasureString(tag)
	x, y := g.Left, g.Top-th-4
	if y < 0 {
		y = g.Top
	}
	dc.DrawRectangle(x, y, tw+6, th+4)
	dc.Fill()
	dc.SetColor(color.White)
	dc.DrawStringAnchored(tag, x+3, y+2, 0, 1)
}
