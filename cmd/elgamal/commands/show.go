package commands

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

func showCmd() *cobra.Command {
	var dump bool
	cmd := &cobra.Command{
		Use:   "show [report-id]",
		Short: "List stored reports, or print one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				ids, err := appCtx.Reports.ListReports()
				if err != nil {
					return err
				}
				if len(ids) == 0 {
					fmt.Fprintln(out, "No reports stored.")
				}
				for _, id := range ids {
					fmt.Fprintln(out, id)
				}
				return nil
			}

			r, ok, err := appCtx.Reports.LoadReport(args[0])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("no report %s", args[0])
			}
			if dump {
				cfg := spew.ConfigState{Indent: "  ", SortKeys: true}
				cfg.Fdump(out, r)
				return nil
			}
			printReport(out, r)
			return nil
		},
	}
	cmd.Flags().BoolVar(&dump, "dump", false, "dump the full report structure")
	return cmd
}
