package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type picker struct {
	styles []string
	cursor int
	chosen string
}

func newPicker(styles []string) picker {
	return picker{styles: styles}
}

func (m picker) Init() tea.Cmd { return nil }

func (m picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "esc", "ctrl+c":
		m.chosen = ""
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.styles)-1 {
			m.cursor++
		}
	case "enter", " ":
		if len(m.styles) > 0 {
			m.chosen = m.styles[m.cursor]
		}
		return m, tea.Quit
	}
	return m, nil
}

func (m picker) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("glint") + dimStyle.Render("  choose a style") + "\n\n")
	for i, s := range m.styles {
		line := fmt.Sprintf("%-20s %s", s, dimStyle.Render(Descriptions[s]))
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> ") + selectedStyle.Render(fmt.Sprintf("%-20s", s)) + " " + dimStyle.Render(Descriptions[s]))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteByte('\n')
	}
	b.WriteString("\n" + hintStyle.Render("↑/↓ move · enter run · q quit"))
	return panelStyle.Render(b.String())
}

// Pick shows the style menu and returns the chosen style, or "" when the
// user quits without choosing.
func Pick(styles []string, opts ...tea.ProgramOption) (string, error) {
	final, err := tea.NewProgram(newPicker(styles), opts...).Run()
	if err != nil {
		return "", err
	}
	return final.(picker).chosen, nil
}
