package harmony

// Quality is the suffix appended to a root to spell a chord ("", "m", "dim", "7", ...)
type Quality string

const (
	QualityMajor      Quality = ""
	QualityMinor      Quality = "m"
	QualityDiminished Quality = "dim"
	QualityDominant7  Quality = "7"
	QualityMajor7     Quality = "maj7"
	QualityMinor7     Quality = "m7"
)

// Chord is a root pitch plus a quality suffix. It is only flattened to text at the boundary.
type Chord struct {
	Root    Pitch
	Quality Quality
}

// String returns the display symbol, e.g. "C#m7"
func (c Chord) String() string {
	return c.Root.String() + string(c.Quality)
}

// WithQuality returns a copy of the chord with its quality replaced. The root is kept as is.
func (c Chord) WithQuality(q Quality) Chord {
	return Chord{Root: c.Root, Quality: q}
}
