// Package export renders tickets into standalone HTML documents for
// sharing outside the terminal. Ticket details are authored as free text
// and may carry markdown; the output is sanitized because it is opened
// in a browser.
package export

import (
	"bytes"
	"fmt"
	"html"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"

	"deskline/internal/application/ticket/dto"
)

type ExportService interface {
	TicketHTML(detail dto.TicketDetail) (string, error)
}

type exportServiceImpl struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func NewExportService() ExportService {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Linkify,
		),
		goldmark.WithRendererOptions(
			htmlrenderer.WithHardWraps(),
		),
	)

	policy := bluemonday.UGCPolicy()

	return &exportServiceImpl{
		md:     md,
		policy: policy,
	}
}

// TicketHTML renders the ticket as a complete HTML page. The details body
// goes through markdown conversion and sanitization; everything else is
// escaped field data.
func (s *exportServiceImpl) TicketHTML(detail dto.TicketDetail) (string, error) {
	var body bytes.Buffer
	if err := s.md.Convert([]byte(detail.Details), &body); err != nil {
		return "", fmt.Errorf("failed to render ticket details: %w", err)
	}
	detailsHTML := s.policy.Sanitize(body.String())

	var page bytes.Buffer
	fmt.Fprintf(&page, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>Ticket %s</title>\n</head>\n<body>\n",
		html.EscapeString(detail.TicketNumber))
	fmt.Fprintf(&page, "<h1>Ticket %s</h1>\n", html.EscapeString(detail.TicketNumber))
	fmt.Fprintf(&page, "<p><strong>Status:</strong> %s</p>\n", html.EscapeString(detail.Status))
	fmt.Fprintf(&page, "<p><strong>Created:</strong> %s</p>\n", html.EscapeString(detail.CreatedAt))
	fmt.Fprintf(&page, "<p><strong>Assigned to:</strong> %s</p>\n", html.EscapeString(detail.AssignedTo))
	if detail.AssignDate != "" {
		fmt.Fprintf(&page, "<p><strong>Assigned on:</strong> %s</p>\n", html.EscapeString(detail.AssignDate))
	}
	page.WriteString("<h2>Details</h2>\n")
	page.WriteString(detailsHTML)

	if len(detail.Documents) > 0 {
		page.WriteString("\n<h2>Documents</h2>\n<ul>\n")
		for _, doc := range detail.Documents {
			fmt.Fprintf(&page, "<li><a href=\"%s\">%s</a> (%s)</li>\n",
				html.EscapeString(doc.URL), html.EscapeString(doc.Name), html.EscapeString(doc.Type))
		}
		page.WriteString("</ul>\n")
	}

	page.WriteString("</body>\n</html>\n")
	return page.String(), nil
}
