// Package radial places text labels around concentric rings.
//
// Angles are in degrees, 0° along the positive x axis, counter-clockwise
// positive. Every function here is pure: the same table always yields the
// same placements, so callers may re-derive the layout on every frame.
package radial

import (
	"fmt"
	"math"

	"github.com/mattn/go-runewidth"
)

// Ring is one concentric circle of the diagram.
type Ring struct {
	Name   string
	Radius float64
}

// Point is a static label entry: which ring it sits on and at what angle.
type Point struct {
	Ring  string
	Angle float64 // degrees
	Label string
}

// Placed is a projected label.
// AnchorX/AnchorY is the polar point itself; X/Y is where the label text
// starts so that it is horizontally centred on the anchor.
type Placed struct {
	Ring    string
	Label   string
	AnchorX float64
	AnchorY float64
	X       float64
	Y       float64
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// ClockAngle returns the angle of a clock-face position (0 = twelve o'clock,
// 3 = three o'clock). Entries on different rings that share an hour must use
// this so their bearings line up exactly.
func ClockAngle(hour int) float64 {
	return 90 - 30*float64(hour%12)
}

// Place projects a single label onto a ring of the given radius, treating
// one label cell as one layout unit.
func Place(radius, angle float64, label string) Placed {
	return PlaceScaled(radius, angle, label, 1)
}

// PlaceScaled is Place for a surface where one text cell spans cell layout
// units horizontally, so the label stays centred once rasterised.
func PlaceScaled(radius, angle float64, label string, cell float64) Placed {
	rad := Radians(angle)
	ax := radius * math.Cos(rad)
	ay := radius * math.Sin(rad)
	half := float64(runewidth.StringWidth(label)) * cell / 2
	return Placed{
		Label:   label,
		AnchorX: ax,
		AnchorY: ay,
		X:       ax - half,
		Y:       ay,
	}
}

// Layout places every point on its ring with cell layout units per text
// cell (1 for unscaled placement). A point naming a ring that is not in
// rings is a programming error and panics.
func Layout(rings []Ring, points []Point, cell float64) []Placed {
	radii := make(map[string]float64, len(rings))
	for _, r := range rings {
		radii[r.Name] = r.Radius
	}
	out := make([]Placed, 0, len(points))
	for _, p := range points {
		radius, ok := radii[p.Ring]
		if !ok {
			panic(fmt.Sprintf("radial: point %q references unknown ring %q", p.Label, p.Ring))
		}
		pl := PlaceScaled(radius, p.Angle, p.Label, cell)
		pl.Ring = p.Ring
		out = append(out, pl)
	}
	return out
}
