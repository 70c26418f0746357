package cmd

import (
	"github.com/spf13/cobra"

	"gooze.dev/pkg/goozejs/internal/domain"
)

var historyLimitFlag int

// historyCmd represents the history command.
var historyCmd = newHistoryCmd()

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent project runs",
		Long:  "List the most recent project runs recorded in the local history database, newest first.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.History(cmd.Context(), domain.HistoryArgs{Limit: historyLimitFlag})
		},
	}

	cmd.Flags().IntVarP(&historyLimitFlag, historyLimitFlagName, "n", domain.DefaultHistoryLimit, "maximum number of runs to list")

	return cmd
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
