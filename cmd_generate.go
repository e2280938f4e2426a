package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Conceptual-Machines/vibe-chords/internal/catalogue"
	"github.com/Conceptual-Machines/vibe-chords/internal/cli"
	"github.com/Conceptual-Machines/vibe-chords/internal/progression"
	"github.com/Conceptual-Machines/vibe-chords/internal/render"
	"github.com/spf13/cobra"
)

var generateFlags struct {
	key      string
	mood     string
	template int
	render   bool
	json     bool
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one progression",
	Example: `  vibe-chords generate --key C --mood feliz
  vibe-chords generate --key F#m --mood misterioso --template 2 --json
  vibe-chords generate --key Am --mood triste --render`,
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVarP(&generateFlags.key, "key", "k", "", "key, e.g. C, F#, Am (required)")
	f.StringVarP(&generateFlags.mood, "mood", "m", "", "mood id from the catalogue (required)")
	f.IntVar(&generateFlags.template, "template", -1, "template index; -1 picks one at random")
	f.BoolVar(&generateFlags.render, "render", false, "also write MIDI and WAV files to RENDER_OUTPUT_DIR")
	f.BoolVar(&generateFlags.json, "json", false, "print the result as JSON")

	_ = generateCmd.MarkFlagRequired("key")
	_ = generateCmd.MarkFlagRequired("mood")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	a, err := bootstrap(cmd, false)
	if err != nil {
		return err
	}
	defer a.cleanup()

	result, err := resolveFromFlags(a.resolver)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := printResult(out, result, generateFlags.json); err != nil {
		return err
	}

	if !generateFlags.render {
		return nil
	}
	perf, err := a.resolver.Catalogue().Performance(result.Mood)
	if err != nil {
		return err
	}
	output, err := render.NewRenderer(a.cfg.RenderOutputDir, a.cfg.RenderSampleRate).Render(result, perf)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	fmt.Fprintf(out, "MIDI:  %s\nAudio: %s\n", output.MIDIPath, output.WAVPath)
	return nil
}

func resolveFromFlags(resolver *progression.Resolver) (*progression.Result, error) {
	mood := catalogue.MoodID(generateFlags.mood)
	if generateFlags.template >= 0 {
		return resolver.ResolveTemplate(generateFlags.key, mood, generateFlags.template)
	}
	return resolver.Resolve(generateFlags.key, mood)
}

func printResult(out io.Writer, result *progression.Result, asJSON bool) error {
	if !asJSON {
		_, err := fmt.Fprint(out, cli.FormatResult(result))
		return err
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
