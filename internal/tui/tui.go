// Package tui implements the interactive calculator screen: a styled display
// over a button grid, with every press delegated to the keypad editor.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"abacus/internal/keypad"
)

var (
	displayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("170")).
			Padding(0, 1).
			Width(21).
			Align(lipgloss.Right)

	buttonStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Width(3).
			Align(lipgloss.Center)

	selectedButtonStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("170")).
				Foreground(lipgloss.Color("170")).
				Bold(true).
				Width(3).
				Align(lipgloss.Center)

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// buttons is the keypad layout. Rows may be ragged; the cursor clamps to the
// row it moves onto.
var buttons = [][]string{
	{"C", "(", ")", "⌫"},
	{"7", "8", "9", "/"},
	{"4", "5", "6", "*"},
	{"1", "2", "3", "-"},
	{"0", ".", "√", "+"},
	{"xʸ", "="},
}

type keymap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Press  key.Binding
	Equals key.Binding
	Clear  key.Binding
	Delete key.Binding
	Quit   key.Binding
}

var defaultKeys = keymap{
	Up:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
	Down:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
	Left:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
	Right:  key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
	Press:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "press")),
	Equals: key.NewBinding(key.WithKeys("="), key.WithHelp("=", "equals")),
	Clear:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
	Delete: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "delete")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// Model is the Bubble Tea model for the calculator screen.
type Model struct {
	pad      keypad.Editor
	keys     keymap
	result   string
	row, col int
	quitting bool
}

// New constructs a calculator screen with the cursor on the first button.
func New() Model {
	return Model{keys: defaultKeys}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(km, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(km, m.keys.Up):
		m.move(-1, 0)
	case key.Matches(km, m.keys.Down):
		m.move(1, 0)
	case key.Matches(km, m.keys.Left):
		m.move(0, -1)
	case key.Matches(km, m.keys.Right):
		m.move(0, 1)
	case key.Matches(km, m.keys.Press):
		m.press(buttons[m.row][m.col])
	case key.Matches(km, m.keys.Equals):
		m.press("=")
	case key.Matches(km, m.keys.Clear):
		m.press("C")
	case key.Matches(km, m.keys.Delete):
		m.press("⌫")
	default:
		switch s := km.String(); s {
		case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
			".", "+", "-", "*", "/", "(", ")":
			m.press(s)
		case "^":
			m.press("xʸ")
		case "s":
			m.press("√")
		}
	}
	return m, nil
}

// move shifts the cursor within the button grid.
func (m *Model) move(dr, dc int) {
	m.row = clamp(m.row+dr, len(buttons)-1)
	m.col = clamp(m.col+dc, len(buttons[m.row])-1)
}

func clamp(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

// press routes a button label to the keypad editor.
func (m *Model) press(label string) {
	if label != "=" {
		m.result = ""
	}
	switch label {
	case "C":
		m.pad.Clear()
	case "⌫":
		m.pad.Delete()
	case "(":
		m.pad.Open()
	case ")":
		m.pad.Close()
	case "√":
		m.pad.Sqrt()
	case "xʸ":
		m.pad.Operator("**")
	case "+", "-", "*", "/":
		m.pad.Operator(label)
	case ".":
		m.pad.Point()
	case "=":
		m.result = m.pad.Equals()
	default:
		m.pad.Digit(label[0])
	}
}

// displayText is what the display line shows: the expression being built, the
// last result, or an idle zero.
func (m Model) displayText() string {
	if s := m.pad.Expression(); s != "" {
		return s
	}
	if m.result != "" {
		return m.result
	}
	return "0"
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	rows := make([]string, 0, len(buttons)+2)
	rows = append(rows, displayStyle.Render(m.displayText()))
	for i, row := range buttons {
		cells := make([]string, 0, len(row))
		for j, label := range row {
			st := buttonStyle
			if i == m.row && j == m.col {
				st = selectedButtonStyle
			}
			cells = append(cells, st.Render(label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	rows = append(rows, helpStyle.Render("arrows move · enter press · c clear · q quit"))
	return lipgloss.JoinVertical(lipgloss.Left, rows...) + "\n"
}

// Run starts the calculator and blocks until the user quits.
func Run() error {
	_, err := tea.NewProgram(New()).Run()
	return err
}
