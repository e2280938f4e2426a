package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Conceptual-Machines/vibe-chords/internal/catalogue"
	"github.com/Conceptual-Machines/vibe-chords/internal/harmony"
	"github.com/Conceptual-Machines/vibe-chords/internal/logger"
	"github.com/Conceptual-Machines/vibe-chords/internal/progression"
	"github.com/Conceptual-Machines/vibe-chords/internal/render"
	"github.com/Conceptual-Machines/vibe-chords/internal/services"
	"github.com/google/uuid"
	"github.com/peterh/liner"
)

const (
	sourceCLI = "cli"

	keyPrompt     = "Key (e.g. C, Gm, F#): "
	moodPrompt    = "Mood: "
	anotherPrompt = "Generate another progression? (y/n): "
)

// Session runs the interactive generate loop. A nil renderer skips rendering
// and a nil history skips recording.
type Session struct {
	resolver *progression.Resolver
	renderer *render.Renderer
	history  *services.HistoryService
	in       LineReader
	out      io.Writer
	keys     map[string]bool
}

// NewSession wires a loop reading from in and writing to out
func NewSession(resolver *progression.Resolver, renderer *render.Renderer, history *services.HistoryService, in LineReader, out io.Writer) *Session {
	keys := make(map[string]bool)
	for _, name := range harmony.KeyNames() {
		keys[name] = true
	}
	return &Session{
		resolver: resolver,
		renderer: renderer,
		history:  history,
		in:       in,
		out:      out,
		keys:     keys,
	}
}

// Run loops until the user declines another progression or closes the input.
// Bad input is reported and prompted again; it never ends the session.
func (s *Session) Run() error {
	for {
		s.printAvailable()

		key, err := s.in.Prompt("\n" + keyPrompt)
		if err != nil {
			return s.finish(err)
		}
		key = strings.TrimSpace(key)
		if !s.keys[key] {
			fmt.Fprintf(s.out, "Error: %q is not a valid key. Try another.\n", key)
			continue
		}

		mood, err := s.in.Prompt(moodPrompt)
		if err != nil {
			return s.finish(err)
		}
		mood = strings.ToLower(strings.TrimSpace(mood))
		if !s.resolver.Catalogue().Has(catalogue.MoodID(mood)) {
			fmt.Fprintf(s.out, "Error: %q is not a valid mood. Try another.\n", mood)
			continue
		}

		s.generate(key, catalogue.MoodID(mood))

		another, err := s.in.Prompt("\n" + anotherPrompt)
		if err != nil {
			return s.finish(err)
		}
		if !isYes(another) {
			return nil
		}
	}
}

func (s *Session) generate(key string, mood catalogue.MoodID) {
	result, err := s.resolver.Resolve(key, mood)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}

	fmt.Fprint(s.out, "\n"+FormatResult(result))

	if err := s.history.Record(result, uuid.New().String(), sourceCLI); err != nil {
		logger.Warn("Failed to record generation history", logger.Fields{"error": err.Error()})
	}

	if s.renderer == nil {
		return
	}
	perf, err := s.resolver.Catalogue().Performance(mood)
	if err != nil {
		perf = catalogue.DefaultPerformance
	}
	output, err := s.renderer.Render(result, perf)
	if err != nil {
		fmt.Fprintf(s.out, "Error: could not render progression: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "   - MIDI: %s\n   - Audio: %s\n", output.MIDIPath, output.WAVPath)
}

func (s *Session) printAvailable() {
	fmt.Fprintf(s.out, "\nAvailable keys: %s\n", strings.Join(harmony.KeyNames(), ", "))

	moods := s.resolver.Catalogue().Moods()
	names := make([]string, len(moods))
	for i, mood := range moods {
		names[i] = string(mood)
	}
	fmt.Fprintf(s.out, "Available moods: %s\n", strings.Join(names, ", "))
}

// finish treats Ctrl+C and end of input as a normal exit
func (s *Session) finish(err error) error {
	if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
		fmt.Fprintln(s.out)
		return nil
	}
	return err
}

// isYes accepts y/yes and the Portuguese s/sim
func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes", "s", "sim":
		return true
	}
	return false
}

// FormatResult renders a result the way the interactive loop prints it
func FormatResult(result *progression.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Progression (%s, %s):\n", result.Key, result.Mood)
	fmt.Fprintf(&b, "   - Mood: %s\n", result.Description)
	fmt.Fprintf(&b, "   - Numerals: %s\n", result.NumeralString())
	fmt.Fprintf(&b, "   - Chords:   %s\n", result.ChordString())
	if unresolved := result.Unresolved(); len(unresolved) > 0 {
		fmt.Fprintf(&b, "   - Unsupported numerals: %s\n", strings.Join(unresolved, ", "))
	}
	return b.String()
}
