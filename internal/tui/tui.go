package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const pageSize = 10

func NewApp() *Model {
	ti := textinput.New()
	ti.Placeholder = "search the archive..."
	ti.Focus()
	ti.CharLimit = 0
	ti.Width = 60
	ti.Prompt = "> "

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorAmber)

	return &Model{
		state:   StateSearch,
		input:   ti,
		spinner: sp,
		client:  NewArchiveClient(),
		page:    1,
	}
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 10

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, msg.Height-8)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = msg.Height - 8
		}
		return m, nil

	case SearchResultMsg:
		m.isFetching = false
		m.err = nil
		m.query = msg.query
		m.page = msg.page
		m.total = msg.total
		m.results = msg.results
		m.selected = 0
		return m, nil

	case DocumentMsg:
		m.isFetching = false
		m.err = nil
		m.document = msg.document
		m.state = StateDocument
		m.viewport.SetContent(renderDocument(msg.document, m.viewport.Width))
		m.viewport.GotoTop()
		return m, nil

	case RequestErrorMsg:
		m.isFetching = false
		m.err = msg.err
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		if m.state == StateDocument {
			m.state = StateSearch
			m.document = nil
			return m, nil
		}
		return m, tea.Quit
	}

	if m.state == StateDocument {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "enter":
		query := strings.TrimSpace(m.input.Value())
		if query != "" && !m.isFetching {
			m.isFetching = true
			return m, tea.Batch(m.spinner.Tick, m.client.SearchCmd(query, 1, pageSize))
		}
		return m, nil

	case "up":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case "down":
		if m.selected < len(m.results)-1 {
			m.selected++
		}
		return m, nil

	case "ctrl+o":
		if len(m.results) > 0 && !m.isFetching {
			m.isFetching = true
			return m, tea.Batch(m.spinner.Tick, m.client.GetDocumentCmd(m.results[m.selected].ID))
		}
		return m, nil

	case "ctrl+n":
		if m.query != "" && m.page*pageSize < m.total && !m.isFetching {
			m.isFetching = true
			return m, tea.Batch(m.spinner.Tick, m.client.SearchCmd(m.query, m.page+1, pageSize))
		}
		return m, nil

	case "ctrl+p":
		if m.query != "" && m.page > 1 && !m.isFetching {
			m.isFetching = true
			return m, tea.Batch(m.spinner.Tick, m.client.SearchCmd(m.query, m.page-1, pageSize))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) View() string {
	if m.state == StateDocument {
		return m.documentView()
	}

	return m.searchView()
}

func (m *Model) searchView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(logo))
	b.WriteString("\n")

	inputBox := borderStyle.Width(max(20, m.width-4)).Render(m.input.View())
	b.WriteString(inputBox)
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")

	case m.isFetching:
		b.WriteString(m.spinner.View())
		b.WriteString(infoStyle.Render(" searching..."))
		b.WriteString("\n")

	case m.query != "":
		b.WriteString(m.resultsView())

	default:
		b.WriteString(infoStyle.Render("type a query and press enter"))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("[Enter: Search] [↑/↓: Select] [Ctrl+O: Open] [Ctrl+N/P: Page] [Esc: Quit]"))

	return b.String()
}

func (m *Model) resultsView() string {
	var b strings.Builder

	if m.total == 0 {
		b.WriteString(infoStyle.Render(fmt.Sprintf("no results for %q", m.query)))
		b.WriteString("\n")
		return b.String()
	}

	totalPages := (m.total + pageSize - 1) / pageSize
	b.WriteString(infoStyle.Render(fmt.Sprintf("%d results for %q (page %d/%d)", m.total, m.query, m.page, totalPages)))
	b.WriteString("\n\n")

	for i, hit := range m.results {
		line := fmt.Sprintf("%s  %s  %s",
			scoreStyle.Render(fmt.Sprintf("%.3f", hit.Score)),
			dateStyle.Render(hit.Date),
			hit.Title,
		)

		if i == m.selected {
			b.WriteString(resultSelectedStyle.Render("▸ " + line))
		} else {
			b.WriteString(resultTitleStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m *Model) documentView() string {
	var b strings.Builder

	title := "document"
	if m.document != nil {
		title = m.document.Title
	}

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("[↑/↓: Scroll] [Esc: Back]"))

	return b.String()
}

func renderDocument(doc *DocumentDetail, width int) string {
	var b strings.Builder

	b.WriteString(dateStyle.Render(doc.Date))
	if doc.SourceFile != "" {
		b.WriteString(infoStyle.Render("  (" + doc.SourceFile + ")"))
	}
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(max(20, width-2)).Render(doc.Text))

	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
