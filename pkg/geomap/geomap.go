// Package geomap renders survey coverage maps: one circle marker per image
// geolocation over a slippy-map background.
package geomap

import (
	"image"
	"image/color"
	"image/png"
	"io"

	sm "github.com/flopp/go-staticmaps"
	"github.com/golang/geo/s2"
)

var markerColor = color.RGBA{R: 0xff, A: 0x80}

// Position is one geolocation in decimal degrees.
type Position struct {
	Lat float64
	Lon float64
}

// Render draws one semi-transparent red marker per position and returns the
// rendered map. A nil image (and nil error) is returned when positions is
// empty: there is nothing to map.
func Render(positions []Position, width, height int) (image.Image, error) {
	if len(positions) == 0 {
		return nil, nil
	}

	ctx := sm.NewContext()
	ctx.SetSize(width, height)
	for _, p := range positions {
		ctx.AddObject(sm.NewMarker(s2.LatLngFromDegrees(p.Lat, p.Lon), markerColor, 10.0))
	}
	return ctx.Render()
}

// EncodePNG writes an image as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
