package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/pathfind"
)

func newCompareCmd(a *app) *cobra.Command {
	var (
		algos  []string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run several algorithms concurrently on the same grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list := make([]pathfind.Algorithm, 0, len(algos))
			for _, name := range algos {
				algo, err := pathfind.ParseAlgorithm(name)
				if err != nil {
					return err
				}
				list = append(list, algo)
			}
			ref, err := a.cfg.GreedyReference()
			if err != nil {
				return err
			}
			g, err := a.cfg.BuildGrid()
			if err != nil {
				return err
			}

			out, err := pathfind.Compare(cmd.Context(), g, list, pathfind.WithGreedyReference(ref))
			if err != nil {
				return err
			}
			summaries := make([]pathfind.Summary, len(out))
			for i, o := range out {
				summaries[i] = o.Summary
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(summaries)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), summaryTable(summaries))
			return err
		},
	}
	cmd.Flags().StringSliceVar(&algos, "algos", []string{"bfs", "dijkstra", "astar", "greedy"}, "algorithms to compare")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print summaries as JSON")

	return cmd
}

// summaryTable renders one row per summary.
func summaryTable(rows []pathfind.Summary) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ALGORITHM", "FOUND", "LENGTH", "WEIGHT", "EXPANDED", "DISCOVERED", "EVENTS")
	for _, s := range rows {
		t.Row(
			strings.ToUpper(s.Algorithm.String()),
			strconv.FormatBool(s.Found),
			strconv.Itoa(s.PathLength),
			strconv.Itoa(s.PathWeight),
			strconv.Itoa(s.Expanded),
			strconv.Itoa(s.Discovered),
			strconv.Itoa(s.Events),
		)
	}

	return t.Render()
}
