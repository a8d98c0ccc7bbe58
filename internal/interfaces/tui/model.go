// Package tui is the interactive ticket browser: a paginated list, a
// detail view, and a delete confirmation modal. All data flows through
// the same use cases as the plain commands, so caching and fallback
// behavior is identical.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"deskline/internal/application/ticket/dto"
	"deskline/internal/application/ticket/usecases"
)

// view identifies which screen is active.
type view int

const (
	viewList view = iota
	viewDetail
	viewConfirmDelete
)

// pageLoadedMsg delivers a fetched ticket page through the message loop.
type pageLoadedMsg struct {
	result *usecases.ListTicketsResult
}

// detailLoadedMsg delivers a fetched ticket detail.
type detailLoadedMsg struct {
	detail dto.TicketDetail
}

// deleteDoneMsg reports the outcome of a delete mutation.
type deleteDoneMsg struct {
	id  uint
	err error
}

// errMsg reports a failed fetch; the current screen stays up.
type errMsg struct {
	err error
}

// Model is the browser's bubbletea model.
type Model struct {
	ctx    context.Context
	list   usecases.ListTicketsExecutor
	get    usecases.GetTicketExecutor
	delete usecases.DeleteTicketExecutor

	keys  keyMap
	theme theme

	view    view
	loading bool
	width   int
	height  int

	rows       []dto.TicketRow
	cursor     int
	page       int
	totalPages int
	total      int64
	stale      bool
	fromMirror bool

	detail dto.TicketDetail

	// confirmID is the ticket the open modal would delete. Zero when no
	// modal is up.
	confirmID uint

	notice  string
	lastErr string
}

// NewModel builds the browser over the given use cases.
func NewModel(
	ctx context.Context,
	list usecases.ListTicketsExecutor,
	get usecases.GetTicketExecutor,
	del usecases.DeleteTicketExecutor,
) Model {
	return Model{
		ctx:    ctx,
		list:   list,
		get:    get,
		delete: del,
		keys:   defaultKeyMap(),
		theme:  defaultTheme(),
		view:   viewList,
		page:   1,
	}
}

// Run starts the browser and blocks until the user quits.
func Run(
	ctx context.Context,
	list usecases.ListTicketsExecutor,
	get usecases.GetTicketExecutor,
	del usecases.DeleteTicketExecutor,
) error {
	program := tea.NewProgram(NewModel(ctx, list, get, del), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return m.loadPage(m.page)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch message := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = message.Width
		m.height = message.Height
		return m, nil

	case pageLoadedMsg:
		// a response that resolved after further navigation must not
		// replace the page the user last asked for; the newer fetch's
		// own message settles the view
		if message.result.Superseded {
			return m, nil
		}
		m.loading = false
		m.rows = dto.RowsFromTickets(message.result.Tickets)
		m.page = message.result.Page
		m.totalPages = message.result.TotalPages
		m.total = message.result.TotalRecords
		m.stale = message.result.Stale
		m.fromMirror = message.result.FromMirror
		if m.cursor >= len(m.rows) {
			m.cursor = max(0, len(m.rows)-1)
		}
		return m, nil

	case detailLoadedMsg:
		m.loading = false
		m.detail = message.detail
		m.view = viewDetail
		return m, nil

	case deleteDoneMsg:
		m.loading = false
		m.confirmID = 0
		m.view = viewList
		if message.err != nil {
			m.lastErr = message.err.Error()
			return m, nil
		}
		m.notice = fmt.Sprintf("Deleted ticket %d", message.id)
		return m, m.loadPage(m.page)

	case errMsg:
		m.loading = false
		m.lastErr = message.err.Error()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeys(message)
	}

	return m, nil
}

func (m Model) handleKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	// the modal captures everything until answered
	if m.view == viewConfirmDelete {
		switch {
		case key.Matches(message, m.keys.Confirm):
			id := m.confirmID
			m.loading = true
			return m, m.deleteTicket(id)
		case key.Matches(message, m.keys.Cancel), key.Matches(message, m.keys.Quit):
			m.confirmID = 0
			m.view = viewList
			return m, nil
		}
		return m, nil
	}

	switch {
	case key.Matches(message, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(message, m.keys.Up):
		if m.view == viewList && m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(message, m.keys.Down):
		if m.view == viewList && m.cursor < len(m.rows)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(message, m.keys.PrevPage):
		if m.view == viewList && m.page > 1 {
			m.loading = true
			return m, m.loadPage(m.page - 1)
		}
		return m, nil

	case key.Matches(message, m.keys.NextPage):
		if m.view == viewList && m.page < m.totalPages {
			m.loading = true
			return m, m.loadPage(m.page + 1)
		}
		return m, nil

	case key.Matches(message, m.keys.Open):
		if m.view == viewList && m.cursor < len(m.rows) {
			m.loading = true
			return m, m.loadDetail(m.rows[m.cursor].ID)
		}
		return m, nil

	case key.Matches(message, m.keys.Back):
		if m.view == viewDetail {
			m.view = viewList
		}
		return m, nil

	case key.Matches(message, m.keys.Delete):
		if m.view == viewList && m.cursor < len(m.rows) {
			m.confirmID = m.rows[m.cursor].ID
			m.view = viewConfirmDelete
		}
		return m, nil

	case key.Matches(message, m.keys.Refresh):
		if m.view == viewList {
			m.loading = true
			m.notice = ""
			m.lastErr = ""
			return m, m.loadPage(m.page)
		}
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	switch m.view {
	case viewDetail:
		return m.detailView()
	case viewConfirmDelete:
		return m.confirmView()
	default:
		return m.listView()
	}
}

func (m Model) listView() string {
	var b strings.Builder

	b.WriteString(m.theme.title.Render("Tickets"))
	b.WriteString("\n\n")

	if len(m.rows) == 0 && !m.loading {
		b.WriteString("No tickets found\n")
	}

	b.WriteString(m.theme.header.Render(fmt.Sprintf("  %-6s %-12s %-20s %-12s %s", "ID", "NUMBER", "STATUS", "CREATED", "DETAILS")))
	b.WriteString("\n")
	for i, row := range m.rows {
		line := fmt.Sprintf("%-6d %-12s %-20s %-12s %s", row.ID, row.TicketNumber, row.Status, row.CreatedAt, row.Details)
		if i == m.cursor {
			b.WriteString(m.theme.selected.Render("> " + line))
		} else {
			b.WriteString(m.theme.row.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.status.Render(fmt.Sprintf("Page %d/%d · %d tickets", m.page, max(m.totalPages, 1), m.total)))
	if m.loading {
		b.WriteString(m.theme.status.Render(" · loading…"))
	}
	b.WriteString("\n")

	if m.stale {
		b.WriteString(m.theme.warning.Render("Showing cached results, the server could not be reached"))
		b.WriteString("\n")
	}
	if m.fromMirror {
		b.WriteString(m.theme.warning.Render("Showing the last saved snapshot, the server could not be reached"))
		b.WriteString("\n")
	}
	if m.notice != "" {
		b.WriteString(m.theme.status.Render(m.notice))
		b.WriteString("\n")
	}
	if m.lastErr != "" {
		b.WriteString(m.theme.errText.Render(m.lastErr))
		b.WriteString("\n")
	}

	b.WriteString(m.theme.status.Render("↑/↓ move · ←/→ page · enter open · d delete · r refresh · q quit"))
	return b.String()
}

func (m Model) detailView() string {
	var b strings.Builder
	d := m.detail

	b.WriteString(m.theme.title.Render(fmt.Sprintf("Ticket %s", d.TicketNumber)))
	b.WriteString("\n\n")
	b.WriteString(m.theme.label.Render("Status:      ") + d.Status + "\n")
	b.WriteString(m.theme.label.Render("Created:     ") + d.CreatedAt + "\n")
	b.WriteString(m.theme.label.Render("Assigned to: ") + d.AssignedTo + "\n")
	if d.AssignDate != "" {
		b.WriteString(m.theme.label.Render("Assigned on: ") + d.AssignDate + "\n")
	}
	b.WriteString("\n" + d.Details + "\n")

	if len(d.Documents) > 0 {
		b.WriteString("\n" + m.theme.header.Render("Documents") + "\n")
		for _, doc := range d.Documents {
			b.WriteString(fmt.Sprintf("  [%d] %s (%s)\n", doc.ID, doc.Name, doc.Type))
		}
	}

	b.WriteString("\n")
	b.WriteString(m.theme.status.Render("esc back · q quit"))
	return b.String()
}

func (m Model) confirmView() string {
	prompt := fmt.Sprintf("Delete ticket %d?\n\nThis cannot be undone.\n\n[y] delete   [n] cancel", m.confirmID)
	return m.theme.modal.Render(prompt)
}

func (m Model) loadPage(page int) tea.Cmd {
	return func() tea.Msg {
		result, err := m.list.Execute(m.ctx, usecases.ListTicketsQuery{Page: page})
		if err != nil {
			return errMsg{err: err}
		}
		return pageLoadedMsg{result: result}
	}
}

func (m Model) loadDetail(id uint) tea.Cmd {
	return func() tea.Msg {
		fetched, err := m.get.Execute(m.ctx, usecases.GetTicketQuery{TicketID: id})
		if err != nil {
			return errMsg{err: err}
		}
		return detailLoadedMsg{detail: dto.DetailFromTicket(*fetched)}
	}
}

func (m Model) deleteTicket(id uint) tea.Cmd {
	return func() tea.Msg {
		err := m.delete.Execute(m.ctx, usecases.DeleteTicketCommand{TicketID: id})
		return deleteDoneMsg{id: id, err: err}
	}
}
