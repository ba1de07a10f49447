package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"theoryboard/internal/jsonutil"
	"theoryboard/internal/radial"
)

// Dataset is everything the dashboard displays: menu items with their
// detail texts, and the diagram table with its coordinate space.
type Dataset struct {
	Items   []string
	Infos   []string
	Diagram radial.Diagram
	Space   radial.Space
}

var defaultItems = []string{"Circle of fifths", "Harmonic"}

var defaultInfos = []string{
	`The circle of fifths arranges the twelve major keys so that each step clockwise rises a perfect fifth.

Outer ring: major keys, C at the top.
Middle ring: the relative minor of each major key.
Inner ring: the key signature, counted in sharps (#) clockwise and flats (b) counter-clockwise.

Neighbouring keys share all but one note, which makes the circle a map of closely related keys for modulation.

F#/Gb and D#m/Ebm sit at six o'clock, where the sharp and flat sides meet as enharmonic equivalents.`,
	`The harmonic series is the set of frequencies at whole-number multiples of a fundamental.

1: fundamental
2: octave
3: octave + fifth
4: two octaves
5: two octaves + major third
6: two octaves + fifth

The 3:2 ratio between the second and third harmonics is the perfect fifth that generates the circle of fifths.`,
}

// Default returns the built-in dataset: two menu entries and the circle of
// fifths in the [-200,200] square.
func Default() Dataset {
	return Dataset{
		Items:   append([]string(nil), defaultItems...),
		Infos:   append([]string(nil), defaultInfos...),
		Diagram: radial.CircleOfFifths(),
		Space:   radial.DefaultSpace,
	}
}

// File is the on-disk dataset format. Omitted sections keep their built-in
// defaults.
type File struct {
	Items   []string     `json:"items,omitempty" yaml:"items,omitempty"`
	Infos   []string     `json:"infos,omitempty" yaml:"infos,omitempty"`
	Diagram *DiagramFile `json:"diagram,omitempty" yaml:"diagram,omitempty"`
	Space   *SpaceFile   `json:"space,omitempty" yaml:"space,omitempty"`
}

// DiagramFile describes rings and the labels placed on them.
type DiagramFile struct {
	Title  string      `json:"title,omitempty" yaml:"title,omitempty"`
	Rings  []RingFile  `json:"rings" yaml:"rings"`
	Points []PointFile `json:"points" yaml:"points"`
}

// RingFile is one ring.
type RingFile struct {
	Name   string  `json:"name" yaml:"name"`
	Radius float64 `json:"radius" yaml:"radius"`
}

// PointFile places a label by angle in degrees or by clock hour (0-11).
// Exactly one of the two must be set.
type PointFile struct {
	Ring  string   `json:"ring" yaml:"ring"`
	Label string   `json:"label" yaml:"label"`
	Angle *float64 `json:"angle,omitempty" yaml:"angle,omitempty"`
	Hour  *int     `json:"hour,omitempty" yaml:"hour,omitempty"`
}

// SpaceFile bounds the layout coordinate space.
type SpaceFile struct {
	XMin float64 `json:"x_min" yaml:"x_min"`
	XMax float64 `json:"x_max" yaml:"x_max"`
	YMin float64 `json:"y_min" yaml:"y_min"`
	YMax float64 `json:"y_max" yaml:"y_max"`
}

// LoadDataset reads a dataset file. ".json" files are decoded strictly;
// ".yaml" and ".yml" with yaml.v3. An empty path returns Default.
func LoadDataset(path string) (Dataset, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("reading dataset: %w", err)
	}
	var f File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := jsonutil.UnmarshalStrict(data, &f, "parsing dataset "+path); err != nil {
			return Dataset{}, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return Dataset{}, fmt.Errorf("parsing dataset %s: %w", path, err)
		}
	default:
		return Dataset{}, fmt.Errorf("dataset %s: unsupported extension %q (want .json, .yaml or .yml)", path, ext)
	}
	ds, err := f.Dataset()
	if err != nil {
		return Dataset{}, fmt.Errorf("dataset %s: %w", path, err)
	}
	return ds, nil
}

// Dataset converts the file into a validated Dataset, filling omitted
// sections from Default.
func (f File) Dataset() (Dataset, error) {
	ds := Default()
	if f.Items != nil || f.Infos != nil {
		ds.Items = f.Items
		ds.Infos = f.Infos
	}
	if f.Diagram != nil {
		d, err := f.Diagram.diagram()
		if err != nil {
			return Dataset{}, err
		}
		ds.Diagram = d
	}
	if f.Space != nil {
		ds.Space = radial.Space{XMin: f.Space.XMin, XMax: f.Space.XMax, YMin: f.Space.YMin, YMax: f.Space.YMax}
	}
	if err := ds.Validate(); err != nil {
		return Dataset{}, err
	}
	return ds, nil
}

func (d DiagramFile) diagram() (radial.Diagram, error) {
	out := radial.Diagram{Title: d.Title}
	for _, r := range d.Rings {
		out.Rings = append(out.Rings, radial.Ring{Name: r.Name, Radius: r.Radius})
	}
	for i, p := range d.Points {
		var angle float64
		switch {
		case p.Angle != nil && p.Hour != nil:
			return radial.Diagram{}, fmt.Errorf("point %d (%q): set angle or hour, not both", i, p.Label)
		case p.Angle != nil:
			angle = *p.Angle
		case p.Hour != nil:
			if *p.Hour < 0 || *p.Hour > 11 {
				return radial.Diagram{}, fmt.Errorf("point %d (%q): hour %d outside 0-11", i, p.Label, *p.Hour)
			}
			angle = radial.ClockAngle(*p.Hour)
		default:
			return radial.Diagram{}, fmt.Errorf("point %d (%q): missing angle or hour", i, p.Label)
		}
		out.Points = append(out.Points, radial.Point{Ring: p.Ring, Angle: angle, Label: p.Label})
	}
	return out, nil
}

// Validate checks what the dashboard relies on, so a bad file is
// reported as an error instead of tripping a panic in the UI.
func (ds Dataset) Validate() error {
	var errs []error
	if len(ds.Items) == 0 {
		errs = append(errs, errors.New("no menu items"))
	}
	if len(ds.Items) != len(ds.Infos) {
		errs = append(errs, fmt.Errorf("%d items but %d infos", len(ds.Items), len(ds.Infos)))
	}
	if !ds.Space.Valid() {
		errs = append(errs, fmt.Errorf("space must be finite with positive extent: %+v", ds.Space))
	}
	rings := make(map[string]bool, len(ds.Diagram.Rings))
	for _, r := range ds.Diagram.Rings {
		if r.Name == "" {
			errs = append(errs, errors.New("ring with empty name"))
		}
		if rings[r.Name] {
			errs = append(errs, fmt.Errorf("duplicate ring %q", r.Name))
		}
		switch {
		case !(r.Radius > 0) || math.IsInf(r.Radius, 0):
			errs = append(errs, fmt.Errorf("ring %q: radius must be positive and finite, got %v", r.Name, r.Radius))
		case ds.Space.Valid() && r.Radius > ds.Space.MaxRadius():
			errs = append(errs, fmt.Errorf("ring %q: radius %v exceeds %v for this space", r.Name, r.Radius, ds.Space.MaxRadius()))
		}
		rings[r.Name] = true
	}
	for _, p := range ds.Diagram.Points {
		if math.IsInf(p.Angle, 0) || math.IsNaN(p.Angle) {
			errs = append(errs, fmt.Errorf("point %q: angle must be finite, got %v", p.Label, p.Angle))
		}
		if !rings[p.Ring] {
			errs = append(errs, fmt.Errorf("point %q: unknown ring %q", p.Label, p.Ring))
		}
	}
	return errors.Join(errs...)
}
