// Package ticket holds the ticket list, detail, and mutation commands.
package ticket

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"deskline/internal/application/ticket/dto"
	"deskline/internal/application/ticket/usecases"
	"deskline/internal/domain/upload"
	"deskline/internal/interfaces/cli/app"
	"deskline/internal/interfaces/tui"
	"deskline/internal/shared/constants"
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ticket",
		Short: "Browse and manage support tickets",
	}

	cmd.AddCommand(
		newListCommand(),
		newShowCommand(),
		newCreateCommand(),
		newUpdateCommand(),
		newDeleteCommand(),
		newExportCommand(),
		newBrowseCommand(),
	)

	return cmd
}

func newListCommand() *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tickets, ten per page",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}
			defer a.Close()

			if _, err := a.Sessions.Require(); err != nil {
				return err
			}

			result, err := a.ListTickets.Execute(cmd.Context(), usecases.ListTicketsQuery{Page: page})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNUMBER\tSTATUS\tCREATED\tASSIGNEE\tDOCS\tDETAILS")
			for _, row := range dto.RowsFromTickets(result.Tickets) {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\t%s\n",
					row.ID, row.TicketNumber, row.Status, row.CreatedAt, row.AssignedTo, row.Documents, row.Details)
			}
			w.Flush()

			fmt.Fprintf(out, "%s (page %d of %d)\n",
				dto.PageSummary(result.Page, constants.TicketPageSize, len(result.Tickets), result.TotalRecords),
				result.Page, result.TotalPages)
			if result.Stale {
				fmt.Fprintln(out, "Warning: showing cached results, the server could not be reached")
			}
			if result.FromMirror {
				fmt.Fprintln(out, "Warning: showing the last saved snapshot, the server could not be reached")
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&page, "page", "p", 1, "Page to fetch")
	return cmd
}

func newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one ticket with its documents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			a, err := app.New()
			if err != nil {
				return err
			}
			defer a.Close()

			if _, err := a.Sessions.Require(); err != nil {
				return err
			}

			fetched, err := a.GetTicket.Execute(cmd.Context(), usecases.GetTicketQuery{TicketID: id})
			if err != nil {
				return err
			}

			printDetail(cmd, dto.DetailFromTicket(*fetched))
			return nil
		},
	}
}

func newCreateCommand() *cobra.Command {
	var (
		providerID uint
		serviceID  uint
		details    string
		files      []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "File a new ticket",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}
			defer a.Close()

			if _, err := a.Sessions.Require(); err != nil {
				return err
			}

			documents, err := stageFiles(files)
			if err != nil {
				return err
			}

			result, err := a.CreateTicket.Execute(cmd.Context(), usecases.CreateTicketCommand{
				ProviderID: providerID,
				ServiceID:  serviceID,
				Details:    details,
				Documents:  documents,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Created ticket %s (id %d)\n", result.TicketNumber, result.TicketID)
			for _, name := range result.RejectedFiles {
				fmt.Fprintf(out, "Skipped %s: larger than the upload limit\n", name)
			}
			return nil
		},
	}

	cmd.Flags().UintVar(&providerID, "provider", 0, "Service provider id (see \"deskline catalog providers\")")
	cmd.Flags().UintVar(&serviceID, "service", 0, "Service id (see \"deskline catalog services\")")
	cmd.Flags().StringVarP(&details, "details", "d", "", "Ticket details")
	cmd.Flags().StringArrayVarP(&files, "file", "f", nil, "Document to attach (repeatable)")
	return cmd
}

func newUpdateCommand() *cobra.Command {
	var (
		providerID uint
		serviceID  uint
		details    string
		files      []string
		removeDocs []uint
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit a ticket's fields and documents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			a, err := app.New()
			if err != nil {
				return err
			}
			defer a.Close()

			if _, err := a.Sessions.Require(); err != nil {
				return err
			}

			documents, err := stageFiles(files)
			if err != nil {
				return err
			}

			result, err := a.UpdateTicket.Execute(cmd.Context(), usecases.UpdateTicketCommand{
				TicketID:           id,
				ProviderID:         providerID,
				ServiceID:          serviceID,
				Details:            details,
				NewDocuments:       documents,
				RemovedDocumentIDs: removeDocs,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Updated ticket %d\n", id)
			for _, name := range result.RejectedFiles {
				fmt.Fprintf(out, "Skipped %s: larger than the upload limit\n", name)
			}
			for docID, message := range result.RemovalErrors {
				fmt.Fprintf(out, "Could not remove document %d: %s\n", docID, message)
			}
			return nil
		},
	}

	cmd.Flags().UintVar(&providerID, "provider", 0, "Service provider id")
	cmd.Flags().UintVar(&serviceID, "service", 0, "Service id")
	cmd.Flags().StringVarP(&details, "details", "d", "", "Ticket details")
	cmd.Flags().StringArrayVarP(&files, "file", "f", nil, "Document to attach (repeatable)")
	cmd.Flags().UintSliceVar(&removeDocs, "remove-doc", nil, "Document id to remove (repeatable)")
	return cmd
}

func newDeleteCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a ticket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			a, err := app.New()
			if err != nil {
				return err
			}
			defer a.Close()

			if _, err := a.Sessions.Require(); err != nil {
				return err
			}

			if !yes {
				answer, err := promptLine(cmd, fmt.Sprintf("Delete ticket %d? [y/N] ", id))
				if err != nil {
					return err
				}
				if answer != "y" && answer != "Y" && answer != "yes" {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
					return nil
				}
			}

			if err := a.DeleteTicket.Execute(cmd.Context(), usecases.DeleteTicketCommand{TicketID: id}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted ticket %d\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Delete without asking")
	return cmd
}

func newExportCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export <id>",
		Short: "Export a ticket as a standalone HTML page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			a, err := app.New()
			if err != nil {
				return err
			}
			defer a.Close()

			if _, err := a.Sessions.Require(); err != nil {
				return err
			}

			fetched, err := a.GetTicket.Execute(cmd.Context(), usecases.GetTicketQuery{TicketID: id})
			if err != nil {
				return err
			}

			page, err := a.Export.TicketHTML(dto.DetailFromTicket(*fetched))
			if err != nil {
				return err
			}

			if output == "" {
				output = fmt.Sprintf("ticket-%d.html", id)
			}
			if err := os.WriteFile(output, []byte(page), 0o644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported ticket %d to %s\n", id, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default ticket-<id>.html)")
	return cmd
}

func newBrowseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse tickets interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New()
			if err != nil {
				return err
			}
			defer a.Close()

			if _, err := a.Sessions.Require(); err != nil {
				return err
			}

			return tui.Run(cmd.Context(), a.ListTickets, a.GetTicket, a.DeleteTicket)
		},
	}
}

func printDetail(cmd *cobra.Command, detail dto.TicketDetail) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Ticket %s (id %d)\n", detail.TicketNumber, detail.ID)
	fmt.Fprintf(out, "Status:      %s\n", detail.Status)
	fmt.Fprintf(out, "Created:     %s\n", detail.CreatedAt)
	fmt.Fprintf(out, "Assigned to: %s\n", detail.AssignedTo)
	if detail.AssignDate != "" {
		fmt.Fprintf(out, "Assigned on: %s\n", detail.AssignDate)
	}
	fmt.Fprintf(out, "\n%s\n", detail.Details)
	if len(detail.Documents) > 0 {
		fmt.Fprintln(out, "\nDocuments:")
		for _, doc := range detail.Documents {
			fmt.Fprintf(out, "  [%d] %s (%s)\n     %s\n", doc.ID, doc.Name, doc.Type, doc.URL)
		}
	}
}

func stageFiles(paths []string) ([]upload.Attachment, error) {
	attachments := make([]upload.Attachment, 0, len(paths))
	for _, p := range paths {
		a, err := upload.NewAttachment(p)
		if err != nil {
			return nil, err
		}
		attachments = append(attachments, a)
	}
	return attachments, nil
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid ticket id %q", raw)
	}
	return uint(id), nil
}

func promptLine(cmd *cobra.Command, label string) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), label)
	var answer string
	if _, err := fmt.Fscanln(cmd.InOrStdin(), &answer); err != nil {
		return "", nil
	}
	return answer, nil
}
