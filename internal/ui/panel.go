package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/loupedev/loupe/internal/prefs"
)

// PanelHooks connects the preferences panel to the controller. Dispatch runs
// one action; the query hooks are re-read after every dispatch so the panel
// always shows live state.
type PanelHooks struct {
	Dispatch func(prefs.Action) error
	Record   func() prefs.Record
	Theme    func() string
	Preview  func(width int) string
}

type panelButton struct {
	action  prefs.Action
	label   string
	details string
}

func panelButtons() []panelButton {
	return []panelButton{
		{prefs.ActionIncreaseText, "Larger Text", "Grow the text size one step"},
		{prefs.ActionDecreaseText, "Smaller Text", "Shrink the text size one step"},
		{prefs.ActionToggleTheme, "Toggle Theme", "Flip between light and dark"},
		{prefs.ActionToggleLinks, "Highlight Links", "Underline links and show their targets"},
		{prefs.ActionToggleReadableFont, "Readable Text", "Looser spacing, no italics"},
		{prefs.ActionToggleImagesHidden, "Hide Images", "Drop image placeholders from the page"},
		{prefs.ActionReset, "Reset", "Back to defaults, theme to system"},
	}
}

type panelKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Apply  key.Binding
	Grow   key.Binding
	Shrink key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func newPanelKeyMap() panelKeyMap {
	return panelKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Apply:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "apply")),
		Grow:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "larger text")),
		Shrink: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "smaller text")),
		Back:   key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc/q", "done")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k panelKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Apply, k.Grow, k.Shrink, k.Back}
}

func (k panelKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Apply}, {k.Grow, k.Shrink, k.Back, k.Quit}}
}

type panelModel struct {
	hooks    PanelHooks
	buttons  []panelButton
	cursor   int
	status   string
	statusOK bool
	quitting bool
	help     help.Model
	keys     panelKeyMap

	width  int
	height int
}

func newPanelModel(hooks PanelHooks) panelModel {
	helpModel := help.New()
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(string(Accent))).Bold(true)
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(string(Muted)))
	helpModel.Styles.ShortKey = keyStyle
	helpModel.Styles.ShortDesc = hintStyle
	helpModel.Styles.FullKey = keyStyle
	helpModel.Styles.FullDesc = hintStyle

	return panelModel{
		hooks:   hooks,
		buttons: panelButtons(),
		help:    helpModel,
		keys:    newPanelKeyMap(),
	}
}

func (m panelModel) Init() tea.Cmd {
	return nil
}

func (m panelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.buttons)-1 {
				m.cursor++
			}
		case "enter", " ":
			m.dispatch(m.buttons[m.cursor].action)
		case "+", "=":
			m.dispatch(prefs.ActionIncreaseText)
		case "-":
			m.dispatch(prefs.ActionDecreaseText)
		case "esc", "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		default:
			if n := numberKey(msg.String()); n >= 1 && n <= len(m.buttons) {
				m.cursor = n - 1
				m.dispatch(m.buttons[m.cursor].action)
			}
		}
	}
	return m, nil
}

func (m *panelModel) dispatch(action prefs.Action) {
	if err := m.hooks.Dispatch(action); err != nil {
		m.status = err.Error()
		m.statusOK = false
		return
	}
	m.status = "applied " + string(action)
	m.statusOK = true
}

func numberKey(s string) int {
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return 0
	}
	return int(s[0] - '0')
}

func (m panelModel) View() tea.View {
	if m.quitting {
		return tea.View{}
	}

	width := m.width
	height := m.height
	if width <= 0 {
		width = TerminalWidth()
	}
	if height <= 0 {
		height = 26
	}
	layout := calculateMenuLayout(width, height)

	leftPanel := lipgloss.NewStyle().
		Width(layout.leftWidth).
		Height(layout.leftHeight).
		PaddingRight(1).
		Render(m.renderButtons(layout.leftWidth - 1))

	rightPanel := lipgloss.NewStyle().
		Width(layout.rightWidth).
		Height(layout.rightHeight).
		PaddingLeft(1).
		Render(m.renderPreview(layout.rightWidth-1, layout.rightHeight))

	var body string
	if layout.stacked {
		body = lipgloss.JoinVertical(lipgloss.Left, leftPanel, "", rightPanel)
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, leftPanel, rightPanel)
	}
	footer := m.help.View(m.keys)

	v := tea.NewView(Frame("DISPLAY PREFERENCES", "Changes apply live and persist across runs.", body, footer))
	v.AltScreen = true
	return v
}

func (m panelModel) renderButtons(innerWidth int) string {
	rec := m.hooks.Record()
	lines := make([]string, 0, len(m.buttons)+2)

	for i, b := range m.buttons {
		state := m.buttonState(b.action, rec)
		label := fmt.Sprintf("%d. %s", i+1, b.label)
		if state != "" {
			label += "  " + state
		}
		label = ansi.Truncate(label, max(14, innerWidth-4), "...")

		if i == m.cursor {
			lines = append(lines, PrimaryStyle().Render("> "+label))
		} else {
			lines = append(lines, "  "+label)
		}
	}

	lines = append(lines, "")
	if m.status != "" {
		style := SuccessStyle
		if !m.statusOK {
			style = ErrorStyle
		}
		lines = append(lines, style.Render(ansi.Truncate(m.status, max(14, innerWidth), "...")))
	}

	return strings.Join(lines, "\n")
}

func (m panelModel) buttonState(action prefs.Action, rec prefs.Record) string {
	onOff := func(on bool) string {
		if on {
			return SuccessStyle.Render("on")
		}
		return MutedStyle.Render("off")
	}
	switch action {
	case prefs.ActionIncreaseText, prefs.ActionDecreaseText:
		return MutedStyle.Render(fmt.Sprintf("(%d)", rec.FontSize))
	case prefs.ActionToggleTheme:
		return MutedStyle.Render("(" + m.hooks.Theme() + ")")
	case prefs.ActionToggleLinks:
		return onOff(rec.HighlightLinks)
	case prefs.ActionToggleReadableFont:
		return onOff(rec.ReadableFont)
	case prefs.ActionToggleImagesHidden:
		return onOff(rec.HideImages)
	}
	return ""
}

func (m panelModel) renderPreview(innerWidth int, innerHeight int) string {
	rec := m.hooks.Record()

	section := []string{
		lipgloss.NewStyle().Foreground(lipgloss.Color(string(Accent))).Bold(true).Render("Preview"),
	}

	preview := m.hooks.Preview(max(minPreviewWidth, innerWidth))
	for _, line := range strings.Split(strings.TrimRight(preview, "\n"), "\n") {
		section = append(section, ansi.Truncate(line, max(10, innerWidth), "..."))
	}

	section = append(section,
		"",
		MutedStyle.Render(fmt.Sprintf("text %d · theme %s", rec.FontSize, m.hooks.Theme())),
	)

	if len(section) > innerHeight {
		section = section[:innerHeight]
	}
	return strings.Join(section, "\n")
}

const minPreviewWidth = 24

// RunPanel opens the interactive preferences panel.
func RunPanel(hooks PanelHooks) error {
	if !IsInteractiveTerminal() {
		return fmt.Errorf("non-interactive terminal")
	}
	program := tea.NewProgram(newPanelModel(hooks))
	_, err := program.Run()
	return err
}
