package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"manifestprep/internal/language"
	"manifestprep/internal/manifest"
)

type manifestStats struct {
	records     int64
	malformed   int64
	emptySource int64
	pairs       map[[2]string]int64
	audioPaths  map[string]struct{}
}

func newStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <manifest>",
		Short: "Summarize an existing manifest file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := collectManifestStats(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			rows := [][]string{
				{"Records", formatCount(stats.records)},
				{"Distinct audio clips", formatCount(int64(len(stats.audioPaths)))},
				{"Empty source text", formatCount(stats.emptySource)},
				{"Malformed lines", formatCount(stats.malformed)},
			}
			fmt.Fprint(out, renderTable([]string{"Metric", "Value"}, rows, []columnAlignment{alignLeft, alignRight}))

			if len(stats.pairs) > 0 {
				type pairCount struct {
					pair  [2]string
					count int64
				}
				pairs := make([]pairCount, 0, len(stats.pairs))
				for pair, count := range stats.pairs {
					pairs = append(pairs, pairCount{pair, count})
				}
				sort.Slice(pairs, func(i, j int) bool {
					if pairs[i].count != pairs[j].count {
						return pairs[i].count > pairs[j].count
					}
					return pairs[i].pair[0] < pairs[j].pair[0]
				})

				pairRows := make([][]string, 0, len(pairs))
				for _, pc := range pairs {
					pairRows = append(pairRows, []string{
						language.PairLabel(pc.pair[0], pc.pair[1]),
						formatCount(pc.count),
					})
				}
				fmt.Fprint(out, renderTable([]string{"Language pair", "Records"}, pairRows, []columnAlignment{alignLeft, alignRight}))
			}
			return nil
		},
	}
}

func collectManifestStats(path string) (*manifestStats, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer file.Close()

	stats := &manifestStats{
		pairs:      make(map[[2]string]int64),
		audioPaths: make(map[string]struct{}),
	}

	err = manifest.ScanLines(file, func(line int, data []byte) error {
		rec, err := manifest.DecodeRecord(data)
		if err != nil {
			stats.malformed++
			return nil
		}
		stats.records++
		if rec.Source.Text == "" {
			stats.emptySource++
		}
		stats.pairs[[2]string{rec.Source.Lang, rec.Target.Lang}]++
		if rec.Source.AudioLocalPath != "" {
			stats.audioPaths[rec.Source.AudioLocalPath] = struct{}{}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}
