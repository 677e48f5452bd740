package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/omnitrix-arcade/internal/core"
	"github.com/vovakirdan/omnitrix-arcade/internal/games/arena/defs"
	"github.com/vovakirdan/omnitrix-arcade/internal/progress"
)

// Game modes a menu item can start.
const (
	ModeArena   = "arena"
	ModeClassic = "classic"
)

// MenuItem represents a selectable entry in the mission picker.
type MenuItem struct {
	Mode      string
	MissionID string // Empty for the side-scroller
	Title     string
	Stars     int
	Locked    bool
	Header    string // World name printed above this item
	Color     core.Color
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuLockedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	menuStarStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	menuHelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the mission picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	save           progress.SaveData
	unlockAll      bool
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user selects an entry
	openScoreboard bool      // True if user pressed Tab for scoreboard
	notice         string
}

// NewMenuModel creates a mission picker for a save. With unlockAll every
// mission can be started regardless of progress.
func NewMenuModel(save progress.SaveData, unlockAll bool, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		items:     menuItems(save, unlockAll),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		save:      save,
		unlockAll: unlockAll,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
	// Start on the mission the campaign would pick next.
	next := progress.NextMission(save).ID
	for i, it := range m.items {
		if it.MissionID == next {
			m.cursor = i
		}
	}
	return m
}

func menuItems(save progress.SaveData, unlockAll bool) []MenuItem {
	var items []MenuItem
	for wi, w := range defs.Worlds() {
		for mi, ms := range w.Missions {
			it := MenuItem{
				Mode:      ModeArena,
				MissionID: ms.ID,
				Title:     ms.Name,
				Stars:     save.Stars(ms.ID),
				Locked:    !unlockAll && !progress.MissionUnlocked(save, wi, mi),
				Color:     core.Color(w.Color),
			}
			if mi == 0 {
				it.Header = w.Name
			}
			items = append(items, it)
		}
	}
	return append(items, MenuItem{
		Mode:   ModeClassic,
		Title:  "Classic side-scroller",
		Header: "Omnitrix Classic",
		Color:  core.ColorGreen,
	})
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		item := m.items[m.cursor]
		if item.Locked {
			m.notice = "Earn a star on the previous mission to unlock this one."
			return m, nil
		}
		m.selected = &item
		return m, tea.Quit

	case MenuActionClassic:
		item := m.items[len(m.items)-1]
		m.selected = &item
		return m, tea.Quit

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("O M N I T R I X   A R E N A"), m.width))
	b.WriteString("\n")
	sub := fmt.Sprintf("%d stars  |  %d aliens", m.save.TotalStars(), len(m.save.UnlockedAliens))
	b.WriteString(centerText(sub, m.width))
	b.WriteString("\n\n")

	lines, cursorLine := m.itemLines()
	// Header, notice and footer take 7 rows.
	visible := max(m.height-7, 5)
	start := 0
	if cursorLine >= visible {
		start = cursorLine - visible + 1
	}
	end := min(start+visible, len(lines))
	for _, l := range lines[start:end] {
		b.WriteString(l)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString(centerText(m.notice, m.width))
	}
	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  C: Classic  |  Tab: Scores  |  Q: Quit"
	b.WriteString(menuHelpStyle.Render(centerText(controls, m.width)))
	b.WriteString("\n")
	return b.String()
}

// itemLines lays out world headers and missions, returning the line index
// of the cursor.
func (m MenuModel) itemLines() ([]string, int) {
	var lines []string
	cursorLine := 0
	indent := strings.Repeat(" ", max((m.width-40)/2, 0))
	for i, it := range m.items {
		if it.Header != "" {
			header := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(string(it.Color)))
			lines = append(lines, indent+header.Render(it.Header))
		}
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
			cursorLine = len(lines)
		}
		var line string
		switch {
		case it.Locked:
			line = menuLockedStyle.Render(fmt.Sprintf("%s%-24s locked", cursor, it.Title))
		case it.Mode == ModeClassic:
			line = fmt.Sprintf("%s%-24s", cursor, it.Title)
		default:
			line = fmt.Sprintf("%s%-24s %s", cursor, it.Title, menuStarStyle.Render(starString(it.Stars)))
		}
		if i == m.cursor && !it.Locked {
			line = menuCursorStyle.Render(cursor) + line[len(cursor):]
		}
		lines = append(lines, indent+"  "+line)
	}
	return lines, cursorLine
}

func starString(n int) string {
	n = core.Clamp(n, 0, 3)
	return strings.Repeat("★", n) + strings.Repeat("☆", 3-n)
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Mode            string
	MissionID       string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// Result summarizes how the menu was left.
func (m MenuModel) Result() MenuResult {
	result := MenuResult{Config: m.config}
	switch {
	case m.openScoreboard:
		result.WantsScoreboard = true
	case m.selected != nil:
		result.Mode = m.selected.Mode
		result.MissionID = m.selected.MissionID
	default:
		result.Quit = true
	}
	return result
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(save progress.SaveData, unlockAll bool, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(save, unlockAll, cfg), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
