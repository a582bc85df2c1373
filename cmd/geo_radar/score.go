package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jonathan/geo-radar/internal/config"
	"github.com/jonathan/geo-radar/internal/extract"
	"github.com/jonathan/geo-radar/internal/scoring"
	"github.com/spf13/cobra"
)

var (
	scoreOrg     string
	scoreTargets string
	scoreInput   string
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a saved answer text against an organization's taxonomy",
	Long: `Run the extraction and scoring pipeline on a single answer text, read from
a file or stdin, without calling any engine or touching the store. Useful
for tuning taxonomies and debugging extraction.`,
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&scoreOrg, "org", "", "Organization name from the targets file (required)")
	scoreCmd.Flags().StringVar(&scoreTargets, "targets", "", "Path to the JSON targets file (required)")
	scoreCmd.Flags().StringVar(&scoreInput, "input", "-", "Answer text file, or - for stdin")
	_ = scoreCmd.MarkFlagRequired("org")
	_ = scoreCmd.MarkFlagRequired("targets")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	targets, err := config.LoadTargetsFile(scoreTargets)
	if err != nil {
		return err
	}
	cfg, ok := targets.OrgMap()[scoreOrg]
	if !ok {
		return fmt.Errorf("organization %q not found in %s", scoreOrg, scoreTargets)
	}

	raw, err := readInput(scoreInput)
	if err != nil {
		return err
	}

	sources := extract.Sources(raw)
	md := extract.ParseMetadata(raw)
	score, breakdown := scoring.Score(raw, cfg, sources)

	fmt.Printf("Score:          %d/100\n", score)
	fmt.Printf("Breakdown:      %s\n", strings.Join(breakdown, ", "))
	fmt.Printf("Sources:        %s\n", strings.Join(sources, ", "))
	fmt.Printf("Recommendation: %d/5\n", md.Recommendation)
	fmt.Printf("Top competitor: %s\n", md.TopCompetitor)
	return nil
}

func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}
