package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"manifestprep/internal/manifest"
)

// maxReportedProblems caps per-line output so a badly broken manifest does
// not flood the terminal.
const maxReportedProblems = 20

func newValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <manifest>",
		Short: "Check the structural invariants of a manifest file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			file, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("open manifest: %w", err)
			}
			defer file.Close()

			var (
				records  int64
				problems []string
				invalid  int
				seenIDs  = make(map[string]int)
			)

			report := func(line int, format string, args ...any) {
				invalid++
				if len(problems) < maxReportedProblems {
					problems = append(problems, fmt.Sprintf("line %d: %s", line, fmt.Sprintf(format, args...)))
				}
			}

			err = manifest.ScanLines(file, func(line int, data []byte) error {
				rec, err := manifest.DecodeRecord(data)
				if err != nil {
					report(line, "%v", err)
					return nil
				}
				if err := rec.Check(); err != nil {
					report(line, "%v", err)
					return nil
				}
				if prev, ok := seenIDs[rec.Source.ID]; ok {
					report(line, "id %s already used on line %d", rec.Source.ID, prev)
					return nil
				}
				seenIDs[rec.Source.ID] = line
				records++
				return nil
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if invalid == 0 {
				fmt.Fprintf(out, "Manifest valid: %d records\n", records)
				return nil
			}

			for _, problem := range problems {
				fmt.Fprintln(out, problem)
			}
			if invalid > len(problems) {
				fmt.Fprintf(out, "... and %d more\n", invalid-len(problems))
			}
			return fmt.Errorf("manifest %s has %d invalid lines (%d valid records)", path, invalid, records)
		},
	}
}
