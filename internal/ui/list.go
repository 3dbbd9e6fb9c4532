package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/murkoff/internal/catalog"
)

func (a *App) listCmd() *cobra.Command {
	var bin bool

	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List the desktop files or the recycle bin",
		Long: `List the bundled file tree shown in File Explorer.

With --bin, list the recycle bin instead, with the puzzle that guards
each deleted folder.`,
		Example: `  murkoff ls
  murkoff ls --bin`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items := a.catalog.Files()
			if bin {
				items = a.catalog.Recycled()
			}
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing here.")
				return nil
			}
			printItems(cmd.OutOrStdout(), items, bin)
			return nil
		},
	}

	cmd.Flags().BoolVar(&bin, "bin", false, "List the recycle bin")

	return cmd
}

// printItems writes the tree as a table, children indented under their
// folder.
func printItems(w io.Writer, items []catalog.Item, bin bool) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 48

	header := []any{formatHeader("ID"), formatHeader("NAME"), formatHeader("TYPE"), formatHeader("STATUS")}
	if bin {
		header = append(header, formatHeader("PUZZLE"))
	}
	tbl.AddRow(header...)

	var walk func(items []catalog.Item, depth int)
	walk = func(items []catalog.Item, depth int) {
		for _, it := range items {
			name := strings.Repeat("  ", depth) + it.Name
			if it.IsFolder() {
				name = formatFolder(name)
			}
			row := []any{it.ID, name, string(it.Type), itemStatus(it)}
			if bin {
				row = append(row, formatMuted(it.Puzzle))
			}
			tbl.AddRow(row...)
			walk(it.Children, depth+1)
		}
	}
	walk(items, 0)

	fmt.Fprintln(w, tbl)
}

func itemStatus(it catalog.Item) string {
	switch {
	case it.Locked:
		return formatLocked("locked")
	case it.IsFolder():
		return formatMuted(fmt.Sprintf("%d items", len(it.Children)))
	case it.CanOpen:
		return "open"
	default:
		return formatMuted("sealed")
	}
}
