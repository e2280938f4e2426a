package main

import (
	"github.com/Conceptual-Machines/vibe-chords/internal/cli"
	"github.com/Conceptual-Machines/vibe-chords/internal/render"
	"github.com/spf13/cobra"
)

var playFlags struct {
	noRender bool
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive loop: pick a key and a mood, get a progression",
	Long: `Prompts for a key and a mood, prints the progression and writes a MIDI file
and a WAV preview to RENDER_OUTPUT_DIR. Ctrl+C or Ctrl+D quits.`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&playFlags.noRender, "no-render", false, "print progressions without writing MIDI/WAV files")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	a, err := bootstrap(cmd, true)
	if err != nil {
		return err
	}
	defer a.cleanup()

	var renderer *render.Renderer
	if !playFlags.noRender {
		renderer = render.NewRenderer(a.cfg.RenderOutputDir, a.cfg.RenderSampleRate)
	}

	console := cli.NewConsole(a.cfg.HistoryFile)
	defer console.Close()

	return cli.NewSession(a.resolver, renderer, a.history, console, cmd.OutOrStdout()).Run()
}
