package inspect

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mdouchement/mppcps"
)

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f5f"))

type model struct {
	table   table.Model
	input   textinput.Model
	device  *mppcps.DummyDevice
	verbose bool
	err     error
}

func newTUI(device *mppcps.DummyDevice, verbose bool) *model {
	columns := []table.Column{
		{Title: "Fields", Width: 24},
		{Title: "Values", Width: 80},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		Foreground(lipgloss.Color("#00afff")).
		BorderForeground(lipgloss.Color("#00afff")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#ffffff")).
		Bold(false)
	t.SetStyles(s)

	ti := textinput.New()
	ti.Placeholder = `\x02hpo...\x03XX\r`
	if device != nil {
		ti.Placeholder = "HPO"
	}
	ti.Prompt = "> "
	ti.CharLimit = 256 // Longer commands are rejected by the device.
	ti.Focus()

	return &model{
		table:   t,
		input:   ti,
		device:  device,
		verbose: verbose,
	}
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds [2]tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetWidth(msg.Width)
		m.table.SetHeight(max(msg.Height-3, 1)) // Room for the input and the error line.
		m.input.Width = msg.Width - len(m.input.Prompt) - 1
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			return m, tea.Quit
		case "enter":
			m.submit()
			m.input.SetValue("")
			return m, nil
		}
	}

	m.table, cmds[0] = m.table.Update(msg)
	m.input, cmds[1] = m.input.Update(msg)
	return m, tea.Batch(cmds[:]...)
}

func (m *model) View() string {
	var status string
	if m.err != nil {
		status = errorStyle.Render(m.err.Error())
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.table.View(), m.input.View(), status)
}

func (m *model) submit() {
	fields, err := process(m.device, m.input.Value(), m.verbose)
	m.err = err
	if err != nil {
		return
	}

	rows := make([]table.Row, 0, len(fields))
	for _, f := range fields {
		rows = append(rows, table.Row{f.Name, f.Value})
		if f.Note != "" {
			rows = append(rows, table.Row{"", f.Note})
		}
	}
	m.table.SetRows(rows)
}

// process decodes a response frame, or in simulation mode, the response of
// the dummy device to the given request.
func process(device *mppcps.DummyDevice, input string, verbose bool) ([]mppcps.Field, error) {
	if device == nil {
		frame, err := mppcps.UnescapeFrame(input)
		if err != nil {
			return nil, err
		}

		return mppcps.Inspect(frame, "", verbose)
	}

	frame, command, err := mppcps.ParseRequest(input)
	if err != nil {
		return nil, err
	}

	response := device.Handle(frame)
	fields := []mppcps.Field{
		{Name: "Request", Value: mppcps.EscapeFrame(frame)},
		{Name: "Response", Value: mppcps.EscapeFrame(response)},
	}

	more, err := mppcps.Inspect(response, command, verbose)
	if err != nil {
		return nil, err
	}

	return append(fields, more...), nil
}
