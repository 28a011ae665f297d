package output

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PanelTitle is the heading of the interactive report panel
const PanelTitle = "Pre-Deploy Validator"

// Panel shows a finished report in a scrollable terminal view
type Panel struct {
	title   string
	content string
	notice  string
}

// NewPanel creates a panel over the lines collected in buf
func NewPanel(buf *BufferSink, styles Styles, notice string) *Panel {
	return &Panel{
		title:   PanelTitle,
		content: buf.Render(styles),
		notice:  notice,
	}
}

// Show runs the panel until the operator quits or ctx is cancelled
func (p *Panel) Show(ctx context.Context, in io.Reader, out io.Writer) error {
	program := tea.NewProgram(
		newPanelModel(p.title, p.content, p.notice),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("output panel failed: %w", err)
	}
	return nil
}

var (
	panelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")).
			Padding(0, 1)
	panelFooterStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245"))
)

// panelModel holds the state for the Bubble Tea panel
type panelModel struct {
	title    string
	content  string
	notice   string
	viewport viewport.Model
	ready    bool
}

func newPanelModel(title, content, notice string) panelModel {
	return panelModel{title: title, content: content, notice: notice}
}

// Init implements the Bubble Tea init method
func (m panelModel) Init() tea.Cmd {
	return nil
}

// Update implements the Bubble Tea update method
func (m panelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		height := msg.Height - lipgloss.Height(m.headerView()) - lipgloss.Height(m.footerView())
		if height < 1 {
			height = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements the Bubble Tea view method
func (m panelModel) View() string {
	if !m.ready {
		return "Loading report..."
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.headerView(), m.viewport.View(), m.footerView())
}

func (m panelModel) headerView() string {
	return panelTitleStyle.Render(m.title)
}

func (m panelModel) footerView() string {
	percent := 100.0
	if m.ready {
		percent = m.viewport.ScrollPercent() * 100
	}
	return panelFooterStyle.Render(fmt.Sprintf("%s | %3.f%% | [↑↓] Scroll | [q] Quit", m.notice, percent))
}
