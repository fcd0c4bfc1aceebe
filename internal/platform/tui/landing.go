package tui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-jumper/internal/profile"
)

const (
	fieldNickname = iota
	fieldAge
	fieldCount
)

// LandingKeyMap defines the key bindings for the landing screen.
type LandingKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Scores key.Binding
	Quit   key.Binding
}

// DefaultLandingKeyMap returns default key bindings.
func DefaultLandingKeyMap() LandingKeyMap {
	return LandingKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("S-tab", "prev field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play"),
		),
		Scores: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

var (
	landingTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	landingLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	landingFocusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	landingHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
)

// LandingModel is the profile form shown before a game starts.
type LandingModel struct {
	inputs      []textinput.Model
	focus       int
	keys        LandingKeyMap
	width       int
	height      int
	submitted   bool
	wantsScores bool
	quitting    bool
}

// NewLandingModel creates an empty profile form.
func NewLandingModel(width, height int) LandingModel {
	inputs := make([]textinput.Model, fieldCount)

	nick := textinput.New()
	nick.Placeholder = profile.DefaultNickname
	nick.CharLimit = 16
	nick.Width = 20
	nick.Prompt = "› "
	inputs[fieldNickname] = nick

	age := textinput.New()
	age.Placeholder = profile.DefaultAge
	age.CharLimit = 3
	age.Width = 20
	age.Prompt = "› "
	inputs[fieldAge] = age

	m := LandingModel{
		inputs: inputs,
		keys:   DefaultLandingKeyMap(),
		width:  width,
		height: height,
	}
	m.setFocus(fieldNickname)
	return m
}

// Init starts the cursor blink.
func (m LandingModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the landing screen.
func (m LandingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Scores):
			m.wantsScores = true
			return m, nil
		case key.Matches(msg, m.keys.Submit):
			if m.focus < fieldCount-1 {
				m.setFocus(m.focus + 1)
				return m, nil
			}
			m.submitted = true
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.setFocus((m.focus + 1) % fieldCount)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.setFocus((m.focus + fieldCount - 1) % fieldCount)
			return m, nil
		}

		if m.focus == fieldAge && msg.Type == tea.KeyRunes && !allDigits(msg.Runes) {
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// setFocus moves keyboard focus to field i.
func (m *LandingModel) setFocus(i int) {
	m.focus = i
	for j := range m.inputs {
		if j == i {
			m.inputs[j].Focus()
			m.inputs[j].PromptStyle = landingFocusStyle
			continue
		}
		m.inputs[j].Blur()
		m.inputs[j].PromptStyle = lipgloss.NewStyle()
	}
}

// View renders the profile form.
func (m LandingModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(landingTitleStyle.Render("P L A T F O R M   J U M P E R"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Jump between platforms and dodge the blocks.", m.width))
	b.WriteString("\n\n")

	labels := [fieldCount]string{"Nickname", "Age"}
	for i, in := range m.inputs {
		b.WriteString(centerText(landingLabelStyle.Render(labels[i]), m.width))
		b.WriteString("\n")
		b.WriteString(centerText(in.View(), m.width))
		b.WriteString("\n\n")
	}

	b.WriteString(centerText(landingHintStyle.Render("Leave a field blank to play as "+profile.DefaultNickname+"."), m.width))
	b.WriteString("\n\n")

	controls := "Tab: Next field  |  Enter: Play  |  Ctrl+S: Scores  |  Esc: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Profile returns the values typed into the form, untrimmed.
func (m LandingModel) Profile() profile.Profile {
	return profile.Profile{
		Nickname: m.inputs[fieldNickname].Value(),
		Age:      m.inputs[fieldAge].Value(),
	}
}

// Submitted returns true once the player confirmed the form.
func (m LandingModel) Submitted() bool {
	return m.submitted
}

// WantsScoreboard returns true if the player asked for the high scores.
func (m LandingModel) WantsScoreboard() bool {
	return m.wantsScores
}

// IsQuitting returns true if user requested to quit.
func (m LandingModel) IsQuitting() bool {
	return m.quitting
}

func allDigits(rs []rune) bool {
	for _, r := range rs {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
