package ui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/murkoff/internal/catalog"
)

var writeClipboard = clipboard.WriteAll

func (a *App) reportCmd() *cobra.Command {
	var copyText bool

	cmd := &cobra.Command{
		Use:   "report <id>",
		Short: "Print a research report",
		Long: `Print one of the GP-TWO research reports.

The id is a file id from 'murkoff ls --bin' (for example report-01).
Reports are printed as stored, without the decryption preamble.`,
		Example: `  murkoff report report-01
  murkoff report report-03 --copy`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.reportPath(args[0])
			if err != nil {
				return err
			}
			text, err := catalog.ReadReport(path)
			if err != nil {
				return fmt.Errorf("reading report: %w", err)
			}

			out := cmd.OutOrStdout()
			if copyText {
				if err := writeClipboard(text); err != nil {
					return fmt.Errorf("writing clipboard: %w", err)
				}
				fmt.Fprintf(out, "Copied %s to the clipboard.\n", args[0])
				return nil
			}
			fmt.Fprintln(out, strings.TrimRight(text, "\n"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&copyText, "copy", false, "Copy the report to the clipboard instead of printing it")

	return cmd
}

// reportPath maps a catalog file id to its bundled report.
func (a *App) reportPath(id string) (string, error) {
	it, ok := a.catalog.Find(id)
	if !ok {
		return "", fmt.Errorf("report %s: %w", id, catalog.ErrAssetNotFound)
	}
	if !strings.HasPrefix(it.Content, "reports/") {
		return "", fmt.Errorf("%s is not a report", it.Name)
	}
	return it.Content, nil
}
