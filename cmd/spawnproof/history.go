package main

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/spawnproof/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List previous solver runs",
	Long: `Display the most recent solver runs recorded in the history database.

Examples:
  spawnproof history
  spawnproof history --limit 50
  spawnproof history --clear`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of runs to show")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the whole history")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	logger := loggerFromContext(cmd.Context())

	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagHistoryClear {
		n, err := store.ClearRuns()
		if err != nil {
			return err
		}
		logger.Info("history cleared", "runs", n)
		return nil
	}

	runs, err := store.RecentRuns(flagHistoryLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No solver runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'spawnproof solve --path <file>' to solve a layout.")
		return nil
	}

	fmt.Fprint(out, historyTable(runs))
	return nil
}

// historyTable renders runs, newest first, as a borderless table.
func historyTable(runs []storage.Run) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"ID", "Date", "Input", "Size", "Trapdoor", "Status", "Carpets", "Coverage", "Time"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})

	solved, carpets := 0, 0
	for _, run := range runs {
		id := run.ID
		if len(id) > 8 {
			id = id[:8]
		}
		trapdoor := ""
		if run.FreeTrapdoor {
			trapdoor = "free"
		}
		coverage := "-"
		if run.Status == storage.StatusSolved {
			coverage = fmt.Sprintf("%.2f%%", run.Coverage*100)
			solved++
			carpets += run.Carpets
		}

		table.Append([]string{
			id,
			run.CreatedAt.Local().Format("2006-01-02 15:04"),
			run.InputPath,
			fmt.Sprintf("%dx%d", run.Width, run.Height),
			trapdoor,
			run.Status,
			fmt.Sprintf("%d", run.Carpets),
			coverage,
			run.Elapsed.String(),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("%d runs", len(runs)), "", "", "", "",
		fmt.Sprintf("%d solved", solved),
		fmt.Sprintf("%d", carpets), "", "",
	})

	table.Render()
	return buf.String()
}
