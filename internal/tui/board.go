// Package tui renders the interactive three-bucket board. It is a rendering
// layer only: every keystroke maps to a store operation or a projection
// read, and the board re-snapshots after each mutation.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/valter-silva-au/daystack/internal/core"
	"github.com/valter-silva-au/daystack/pkg/models"
)

type boardModel struct {
	store core.Store

	width  int
	height int

	activeCol int
	cursor    []int
	columns   [][]models.Task
	doneCount int

	// Inline add/edit share one text input.
	adding   bool
	editing  bool
	editID   string
	input    textinput.Model
	inputErr string

	// Carryover modal.
	deciding bool

	styles boardStyles
}

type boardStyles struct {
	panel       lipgloss.Style
	activePanel lipgloss.Style
	header      lipgloss.Style
	selected    lipgloss.Style
	muted       lipgloss.Style
	done        lipgloss.Style
	modal       lipgloss.Style
	help        lipgloss.Style
}

func newBoardStyles(accent string) boardStyles {
	if accent == "" {
		accent = "62"
	}
	return boardStyles{
		panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		activePanel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(accent)).
			Padding(0, 1),
		header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accent)),
		selected: lipgloss.NewStyle().Bold(true).Reverse(true),
		muted:    lipgloss.NewStyle().Faint(true),
		done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
		modal: lipgloss.NewStyle().
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color(accent)).
			Padding(1, 2),
		help: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// Run starts the board. It evaluates the daily prompt on startup and shows
// the carryover modal when a decision is pending.
func Run(store core.Store, accent string) error {
	m := newBoardModel(store, accent)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func newBoardModel(store core.Store, accent string) boardModel {
	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = 200

	m := boardModel{
		store:   store,
		input:   input,
		cursor:  make([]int, len(models.Buckets)),
		columns: make([][]models.Task, len(models.Buckets)),
		styles:  newBoardStyles(accent),
	}
	m.deciding = store.RefreshDailyPrompt() == models.PromptPendingDecision
	m.snapshot()
	return m
}

// snapshot re-reads the store projections into the render state.
func (m *boardModel) snapshot() {
	for i, b := range models.Buckets {
		m.columns[i] = m.store.TasksInBucket(b)
		if m.cursor[i] >= len(m.columns[i]) {
			m.cursor[i] = len(m.columns[i]) - 1
		}
		if m.cursor[i] < 0 {
			m.cursor[i] = 0
		}
	}
	m.doneCount = len(m.store.CompletedSorted())
}

func (m boardModel) selectedTask() (models.Task, bool) {
	col := m.columns[m.activeCol]
	if len(col) == 0 {
		return models.Task{}, false
	}
	return col[m.cursor[m.activeCol]], true
}

func (m boardModel) Init() tea.Cmd { return nil }

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, okMsg := msg.(tea.WindowSizeMsg); okMsg {
		m.width = size.Width
		m.height = size.Height
		return m, nil
	}

	if m.deciding {
		return m.updateDeciding(msg)
	}
	if m.adding || m.editing {
		return m.updateInput(msg)
	}
	return m.updateBoard(msg)
}

// updateDeciding handles the carryover modal.
func (m boardModel) updateDeciding(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, okMsg := msg.(tea.KeyMsg)
	if !okMsg {
		return m, nil
	}
	switch key.String() {
	case "c":
		m.store.ApplyDecision(models.DecisionCarryOver)
	case "w":
		m.store.ApplyDecision(models.DecisionClearToThisWeek)
	case "esc", "q":
		m.store.ApplyDecision(models.DecisionCancel)
	default:
		return m, nil
	}
	m.deciding = false
	m.snapshot()
	return m, nil
}

// updateInput handles inline add and edit.
func (m boardModel) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, okMsg := msg.(tea.KeyMsg); okMsg {
		switch key.String() {
		case "enter":
			title := strings.TrimSpace(m.input.Value())
			if title == "" {
				m.inputErr = "title cannot be empty"
				return m, nil
			}
			if m.adding {
				m.store.AddTask(title, models.Buckets[m.activeCol])
			} else {
				m.store.UpdateTaskTitle(m.editID, title)
			}
			m.closeInput()
			m.snapshot()
			return m, nil
		case "esc":
			m.closeInput()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *boardModel) closeInput() {
	m.adding = false
	m.editing = false
	m.editID = ""
	m.inputErr = ""
	m.input.SetValue("")
	m.input.Blur()
}

// updateBoard handles navigation and store commands.
func (m boardModel) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, okMsg := msg.(tea.KeyMsg)
	if !okMsg {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "tab", "l", "right":
		m.activeCol = (m.activeCol + 1) % len(models.Buckets)
	case "shift+tab", "h", "left":
		m.activeCol = (m.activeCol - 1 + len(models.Buckets)) % len(models.Buckets)

	case "j", "down":
		if m.cursor[m.activeCol] < len(m.columns[m.activeCol])-1 {
			m.cursor[m.activeCol]++
		}
	case "k", "up":
		if m.cursor[m.activeCol] > 0 {
			m.cursor[m.activeCol]--
		}

	case " ", "enter":
		if task, found := m.selectedTask(); found {
			m.store.CompleteTask(task.ID)
			m.snapshot()
		}

	case "u":
		if m.store.CanUndo() {
			m.store.UndoLastComplete()
			m.snapshot()
		}

	case "m":
		if task, found := m.selectedTask(); found {
			next := models.Buckets[(m.activeCol+1)%len(models.Buckets)]
			m.store.MoveTask(task.ID, next)
			m.snapshot()
		}

	case "a":
		m.adding = true
		m.input.Placeholder = "New task in " + models.Buckets[m.activeCol].Label()
		m.input.Focus()

	case "e":
		if task, found := m.selectedTask(); found {
			m.editing = true
			m.editID = task.ID
			m.input.Placeholder = "Edit title"
			m.input.SetValue(task.Title)
			m.input.CursorEnd()
			m.input.Focus()
		}
	}

	return m, nil
}

func (m boardModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.deciding {
		return m.viewModal()
	}

	colWidth := m.width/len(models.Buckets) - 4
	if colWidth < 16 {
		colWidth = 16
	}

	panels := make([]string, 0, len(models.Buckets))
	for i, b := range models.Buckets {
		panels = append(panels, m.viewColumn(i, b, colWidth))
	}
	board := lipgloss.JoinHorizontal(lipgloss.Top, panels...)

	footer := m.styles.muted.Render(fmt.Sprintf("%d done", m.doneCount))
	help := m.styles.help.Render("tab: bucket  j/k: move  space: done  u: undo  m: move  a: add  e: edit  q: quit")

	parts := []string{board, footer, help}
	if m.adding || m.editing {
		title := "Add task"
		if m.editing {
			title = "Edit task"
		}
		if m.inputErr != "" {
			title += "  " + m.styles.header.Render(m.inputErr)
		}
		parts = append(parts, m.styles.panel.Render(title+"\n"+m.input.View()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m boardModel) viewColumn(i int, b models.Bucket, width int) string {
	var sb strings.Builder
	sb.WriteString(m.styles.header.Render(fmt.Sprintf("%s (%d)", b.Label(), len(m.columns[i]))))
	sb.WriteString("\n")

	if len(m.columns[i]) == 0 {
		sb.WriteString(m.styles.muted.Render("empty"))
	}
	for j, t := range m.columns[i] {
		line := "☐ " + t.Title
		if i == m.activeCol && j == m.cursor[i] {
			line = m.styles.selected.Render(line)
		}
		sb.WriteString(line)
		if j < len(m.columns[i])-1 {
			sb.WriteString("\n")
		}
	}

	style := m.styles.panel
	if i == m.activeCol {
		style = m.styles.activePanel
	}
	return style.Width(width).Render(sb.String())
}

func (m boardModel) viewModal() string {
	today := m.store.TasksInBucket(models.BucketToday)

	var sb strings.Builder
	sb.WriteString(m.styles.header.Render("New day"))
	sb.WriteString(fmt.Sprintf("\n\n%d unfinished Today task(s):\n", len(today)))
	for _, t := range today {
		sb.WriteString("  ☐ " + t.Title + "\n")
	}
	sb.WriteString("\n")
	sb.WriteString(m.styles.help.Render("c: carry over   w: move to this week   esc: cancel"))

	modal := m.styles.modal.Render(sb.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}
