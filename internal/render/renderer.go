package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Conceptual-Machines/vibe-chords/internal/catalogue"
	"github.com/Conceptual-Machines/vibe-chords/internal/logger"
	"github.com/Conceptual-Machines/vibe-chords/internal/progression"
	"github.com/google/uuid"
)

// Output describes the files written for one progression
type Output struct {
	ID          string
	MIDIPath    string
	WAVPath     string
	Arrangement *Arrangement
}

// Renderer writes progressions to disk as a MIDI file and a WAV preview
type Renderer struct {
	outputDir  string
	sampleRate int
}

// NewRenderer creates a renderer writing into outputDir. A non-positive sample rate uses DefaultSampleRate.
func NewRenderer(outputDir string, sampleRate int) *Renderer {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	return &Renderer{
		outputDir:  outputDir,
		sampleRate: sampleRate,
	}
}

// Render arranges the result with the mood's performance setting and writes <mood>_<key>_<id>.mid/.wav
func (r *Renderer) Render(result *progression.Result, perf catalogue.Performance) (*Output, error) {
	start := time.Now()

	arr, err := Arrange(result, perf)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	id := uuid.New().String()
	base := filepath.Join(r.outputDir, fileStem(result, id))
	out := &Output{
		ID:          id,
		MIDIPath:    base + ".mid",
		WAVPath:     base + ".wav",
		Arrangement: arr,
	}

	if err := writeFile(out.MIDIPath, func(f *os.File) error { return WriteMIDI(f, arr) }); err != nil {
		return nil, err
	}
	if err := writeFile(out.WAVPath, func(f *os.File) error { return WriteWAV(f, arr, r.sampleRate) }); err != nil {
		return nil, err
	}

	logger.Info("Progression rendered", logger.Fields{
		"mood":        string(result.Mood),
		"key":         result.Key,
		"style":       string(perf.Style),
		"bpm":         perf.BPM,
		"midi":        out.MIDIPath,
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return out, nil
}

func writeFile(path string, write func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// fileStem builds a filesystem-safe name; '#' becomes 's' (F#m -> Fsm)
func fileStem(result *progression.Result, id string) string {
	key := strings.ReplaceAll(result.Key, "#", "s")
	return fmt.Sprintf("%s_%s_%s", result.Mood, key, id[:8])
}
