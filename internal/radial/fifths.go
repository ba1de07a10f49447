package radial

// Ring names of the circle-of-fifths chart.
const (
	RingMajor     = "major"
	RingMinor     = "minor"
	RingSignature = "signature"
)

// Diagram is a static ring/point table.
type Diagram struct {
	Title  string
	Rings  []Ring
	Points []Point
}

var (
	fifthsMajor = [12]string{"C", "G", "D", "A", "E", "B", "F#/Gb", "Db", "Ab", "Eb", "Bb", "F"}
	fifthsMinor = [12]string{"Am", "Em", "Bm", "F#m", "C#m", "G#m", "D#m/Ebm", "Bbm", "Fm", "Cm", "Gm", "Dm"}
	fifthsSig   = [12]string{"0", "1#", "2#", "3#", "4#", "5#", "6#/6b", "5b", "4b", "3b", "2b", "1b"}
)

// CircleOfFifths returns the chart: majors on the outer ring, their relative
// minors on the middle ring and the key signature on the inner ring, all
// twelve clock positions shared across rings. C major sits at twelve o'clock.
func CircleOfFifths() Diagram {
	d := Diagram{
		Title: "Circle of fifths",
		Rings: []Ring{
			{Name: RingMajor, Radius: 170},
			{Name: RingMinor, Radius: 120},
			{Name: RingSignature, Radius: 70},
		},
		Points: make([]Point, 0, 36),
	}
	for hour := 0; hour < 12; hour++ {
		angle := ClockAngle(hour)
		d.Points = append(d.Points,
			Point{Ring: RingMajor, Angle: angle, Label: fifthsMajor[hour]},
			Point{Ring: RingMinor, Angle: angle, Label: fifthsMinor[hour]},
			Point{Ring: RingSignature, Angle: angle, Label: fifthsSig[hour]},
		)
	}
	return d
}

// Place lays out every point of the diagram.
func (d Diagram) Place(cell float64) []Placed {
	return Layout(d.Rings, d.Points, cell)
}
