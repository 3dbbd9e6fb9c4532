package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/murkoff/internal/catalog"
	"github.com/javiermolinar/murkoff/internal/mail"
)

// maxBodyWidth caps wrapped mail bodies on wide terminals.
const maxBodyWidth = 80

func (a *App) mailCmd() *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "mail [id]",
		Short: "List the inbox or print one message",
		Long: `Without arguments, list the inbox of the logged-in researcher.
With a message id, print that message with its body wrapped to the
terminal width.`,
		Example: `  murkoff mail
  murkoff mail --search bertram
  murkoff mail 6`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			box := mail.New(a.catalog.Mail())
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				msgs := box.Messages(query)
				if len(msgs) == 0 {
					fmt.Fprintln(out, "No messages found.")
					return nil
				}
				printInbox(out, msgs, box.Unread(query))
				return nil
			}

			msg, ok := a.catalog.Message(args[0])
			if !ok {
				return fmt.Errorf("message %s: %w", args[0], catalog.ErrAssetNotFound)
			}
			printMessage(out, msg, min(termWidth(), maxBodyWidth))
			return nil
		},
	}

	cmd.Flags().StringVar(&query, "search", "", "Only list messages whose sender, subject or preview match")

	return cmd
}

func printInbox(w io.Writer, msgs []catalog.Message, unread int) {
	fmt.Fprintf(w, "%s %s\n\n", formatHeader("Inbox"), formatMuted(fmt.Sprintf("(%d unread)", unread)))

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 40
	tbl.AddRow("", formatHeader("ID"), formatHeader("FROM"), formatHeader("SUBJECT"), formatHeader("DATE"))
	for _, m := range msgs {
		mark := " "
		subject := m.Subject
		if !m.Read {
			mark = formatFolder("●")
			subject = formatFolder(subject)
		}
		if m.Flagged {
			mark += formatFlag("⚑")
		} else {
			mark += " "
		}
		tbl.AddRow(mark, m.ID, m.Sender(), subject, formatMuted(m.Date))
	}
	tbl.RightAlign(1)

	fmt.Fprintln(w, tbl)
}

func printMessage(w io.Writer, m catalog.Message, width int) {
	fmt.Fprintln(w, formatHeader(m.Subject))
	fmt.Fprintf(w, "%s %s\n", formatMuted("From:"), m.From)
	fmt.Fprintf(w, "%s %s\n", formatMuted("Date:"), m.Date)
	if m.Classification != "" && m.Classification != "normal" {
		fmt.Fprintf(w, "%s %s\n", formatMuted("Classification:"), formatFlag(strings.ToUpper(m.Classification)))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, wordwrap.String(m.Body, width))
}
