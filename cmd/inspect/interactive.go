package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/classmeta/annotation"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	err       error
	filename  string
	filter    textinput.Model
	instances []*annotation.Instance
	visible   []*annotation.Instance
	selected  int
	state     modelState
}

type modelState int

const (
	stateBrowse modelState = iota
	stateFilter
	stateShowDetail
)

func newInteractiveModel(filename string) *interactiveModel {
	filter := textinput.New()
	filter.Placeholder = "name filter"
	filter.Prompt = "/ "
	filter.Width = 40
	return &interactiveModel{
		filename: filename,
		filter:   filter,
		state:    stateBrowse,
	}
}

type loadedMsg struct {
	err       error
	instances []*annotation.Instance
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.loadDump
}

func (m *interactiveModel) loadDump() tea.Msg {
	instances, err := loadDump(m.filename)
	if err != nil {
		return loadedMsg{err: err}
	}
	return loadedMsg{instances: instances}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateFilter {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateBrowse && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateBrowse && m.selected < len(m.visible)-1 {
				m.selected++
			}

		case "/":
			if m.state == stateBrowse {
				m.state = stateFilter
				m.filter.Focus()
				return m, nil
			}

		case "enter":
			switch m.state {
			case stateBrowse:
				if len(m.visible) > 0 {
					m.state = stateShowDetail
				}
			case stateFilter:
				m.filter.Blur()
				m.state = stateBrowse
			case stateShowDetail:
				m.state = stateBrowse
			}

		case "esc":
			switch m.state {
			case stateFilter:
				m.filter.Blur()
				m.filter.SetValue("")
				m.applyFilter()
				m.state = stateBrowse
			case stateShowDetail:
				m.state = stateBrowse
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.instances = msg.instances
		m.applyFilter()
	}

	if m.state == stateFilter {
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.applyFilter()
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) applyFilter() {
	needle := strings.ToLower(m.filter.Value())
	m.visible = m.visible[:0]
	for _, inst := range m.instances {
		if inst == nil {
			continue
		}
		if needle == "" || strings.Contains(strings.ToLower(inst.Name), needle) {
			m.visible = append(m.visible, inst)
		}
	}
	if m.selected >= len(m.visible) {
		m.selected = 0
	}
}

func (m *interactiveModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if m.instances == nil {
		return "Loading annotation dump..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Annotation Inspector"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")

	switch m.state {
	case stateBrowse, stateFilter:
		if m.state == stateFilter || m.filter.Value() != "" {
			b.WriteString(m.filter.View())
			b.WriteString("\n\n")
		}
		if len(m.visible) == 0 {
			b.WriteString(helpStyle.Render("no annotations match"))
			b.WriteString("\n")
		}
		for i, inst := range m.visible {
			cursor := "  "
			if i == m.selected && m.state == stateBrowse {
				cursor = "> "
				b.WriteString(selectedStyle.Render(cursor + inst.String()))
			} else {
				b.WriteString(cursor + m.formatInstance(inst))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		if m.state == stateFilter {
			b.WriteString(helpStyle.Render("enter apply • esc clear"))
		} else {
			b.WriteString(helpStyle.Render("↑/↓ select • enter detail • / filter • q quit"))
		}

	case stateShowDetail:
		inst := m.visible[m.selected]
		b.WriteString(nameStyle.Render("@" + inst.Name))
		b.WriteString("\n\n")
		if len(inst.Params) == 0 {
			b.WriteString(helpStyle.Render("(no parameters)"))
			b.WriteString("\n")
		}
		for _, p := range inst.Params {
			kind := "absent"
			if p.Value != nil {
				kind = p.Value.Kind().String()
			}
			b.WriteString(fmt.Sprintf("  %s = %s %s\n",
				p.Name,
				valueStyle.Render(p.ValueString()),
				helpStyle.Render("("+kind+")")))
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter/esc back • q quit"))
	}

	return b.String()
}

func (m *interactiveModel) formatInstance(inst *annotation.Instance) string {
	s := inst.String()
	at := strings.IndexByte(s, '(')
	if at < 0 {
		return nameStyle.Render(s)
	}
	return nameStyle.Render(s[:at]) + valueStyle.Render(s[at:])
}

func runInteractive(filename string) error {
	p := tea.NewProgram(newInteractiveModel(filename), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
