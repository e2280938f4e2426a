package main

import (
	"fmt"
	"strings"

	"github.com/Conceptual-Machines/vibe-chords/internal/catalogue"
	"github.com/Conceptual-Machines/vibe-chords/internal/config"
	"github.com/Conceptual-Machines/vibe-chords/internal/harmony"
	"github.com/spf13/cobra"
)

var moodsFlags struct {
	templates bool
}

var moodsCmd = &cobra.Command{
	Use:   "moods",
	Short: "List catalogue moods and accepted keys",
	RunE:  runMoods,
}

func init() {
	moodsCmd.Flags().BoolVar(&moodsFlags.templates, "templates", false, "also list every template of each mood")
}

func runMoods(cmd *cobra.Command, _ []string) error {
	cat, err := catalogue.Load(catalogueOverride(cmd))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, id := range cat.Moods() {
		mood, err := cat.Mood(id)
		if err != nil {
			return err
		}
		perf := mood.Performance
		fmt.Fprintf(out, "%-16s %3d bpm  program %-3d %-8s %s\n", mood.ID, perf.BPM, perf.Instrument, perf.Style, mood.Description)
		if moodsFlags.templates {
			for i, tmpl := range mood.Templates {
				fmt.Fprintf(out, "    %d: %s\n", i, strings.Join(tmpl, " - "))
			}
		}
	}
	fmt.Fprintf(out, "\nKeys: %s\n", strings.Join(harmony.KeyNames(), ", "))
	return nil
}

// catalogueOverride resolves the catalogue path without the full bootstrap
func catalogueOverride(cmd *cobra.Command) string {
	if cmd.Flags().Changed("catalogue") {
		return rootFlags.cataloguePath
	}
	return config.Load().CataloguePath
}
