package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"manifestprep/internal/language"
	"manifestprep/internal/ledger"
)

func newRunsCommand(ctx *commandContext) *cobra.Command {
	var limit int

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "Show recorded prepare runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openLedger()
			if err != nil {
				return err
			}
			if store == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Run ledger is disabled in configuration")
				return nil
			}
			defer store.Close()

			runs, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded")
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, buildRunRow(run))
			}
			table := renderTable(
				[]string{"ID", "Started", "Duration", "Languages", "Output", "Records", "Skipped", "Failed", "Status"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignRight, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft},
			)
			fmt.Fprint(cmd.OutOrStdout(), table)
			return nil
		},
	}
	runsCmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to show (0 for all)")

	runsCmd.AddCommand(newRunsClearCommand(ctx))
	return runsCmd
}

func buildRunRow(run *ledger.Run) []string {
	return []string{
		formatCount(run.ID),
		formatTimestamp(run.StartedAt),
		formatDuration(run.Duration()),
		language.PairLabel(run.SourceLang, run.TargetLang),
		truncateMiddle(run.OutputManifest, 40),
		formatCount(run.RecordsWritten),
		formatCount(int64(run.LinesSkipped)),
		formatCount(int64(run.FilesFailed)),
		string(run.Status),
	}
}

func newRunsClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all recorded runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openLedger()
			if err != nil {
				return err
			}
			if store == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Run ledger is disabled in configuration")
				return nil
			}
			defer store.Close()

			removed, err := store.Clear(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d runs\n", removed)
			return nil
		},
	}
}
