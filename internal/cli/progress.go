package cli

import (
	"context"
	"fmt"
	"time"

	"charm.land/bubbles/v2/progress"
	tea "charm.land/bubbletea/v2"
	"github.com/bidforge/bidforge-go/internal/models"
	"github.com/bidforge/bidforge-go/internal/service"
	"github.com/charmbracelet/lipgloss"
)

const pollInterval = 200 * time.Millisecond

// stageRank orders the agents for progress rendering.
var stageRank = map[models.AgentName]int{
	models.AgentExtractor:  1,
	models.AgentParsing:    2,
	models.AgentSales:      3,
	models.AgentTechnical:  4,
	models.AgentPricing:    5,
	models.AgentFinalizing: 6,
}

const stageCount = 6

// Theme holds the color scheme for the progress display.
type Theme struct {
	Status  lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
	Hint    lipgloss.Color
}

// defaultTheme provides default colors.
var defaultTheme = Theme{
	Status:  lipgloss.Color("#5FAFD7"), // light blue
	Success: lipgloss.Color("#00D787"), // green
	Error:   lipgloss.Color("#FF005F"), // red
	Hint:    lipgloss.Color("#6C6C6C"), // dim gray
}

func (t Theme) statusStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Status)
}

func (t Theme) completedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Success).Bold(true)
}

func (t Theme) errorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Error).Bold(true)
}

func (t Theme) hintStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Hint).Italic(true)
}

// tickMsg triggers polling the document state
type tickMsg time.Time

// runDoneMsg carries the pipeline result
type runDoneMsg struct {
	finalID string
	err     error
}

// progressModel is the bubbletea model for pipeline stage progress.
type progressModel struct {
	pipeline *service.Pipeline
	id       string
	doc      models.Rfp
	progress progress.Model
	theme    Theme
	done     chan runDoneMsg
	result   *runDoneMsg
	quitting bool
}

// newProgressModel creates a new progress model and starts the run.
func newProgressModel(pipeline *service.Pipeline, id string) progressModel {
	prog := progress.New(
		progress.WithDefaultBlend(),
		progress.WithWidth(40),
	)

	done := make(chan runDoneMsg, 1)
	go func() {
		finalID, err := pipeline.Run(context.Background(), id)
		done <- runDoneMsg{finalID: finalID, err: err}
	}()

	return progressModel{
		pipeline: pipeline,
		id:       id,
		progress: prog,
		theme:    defaultTheme,
		done:     done,
	}
}

// Init returns the initial command (start polling).
func (m progressModel) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		m.progress.Init(),
	)
}

// Update handles messages and returns the updated model.
func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			// The run is not cancellable; it keeps mutating state in
			// the background until it finishes.
			m.quitting = true
			return m, tea.Quit
		}

	case tickMsg:
		select {
		case result := <-m.done:
			m.result = &result
			m.id = result.finalID
			m.refresh()
			return m, tea.Quit
		default:
		}
		m.refresh()
		return m, tickCmd()

	case progress.FrameMsg:
		var cmd tea.Cmd
		m.progress, cmd = m.progress.Update(msg)
		return m, cmd
	}

	return m, nil
}

// refresh pulls the latest document snapshot, following a mid-run rekey
// by falling back to the single stored document.
func (m *progressModel) refresh() {
	if doc, ok := m.pipeline.Documents().Get(m.id); ok {
		m.doc = doc
		return
	}
	if all := m.pipeline.Documents().List(); len(all) > 0 {
		m.doc = all[len(all)-1]
		m.id = m.doc.ID
	}
}

// View renders the progress display.
func (m progressModel) View() tea.View {
	return tea.NewView(m.renderContent())
}

// renderContent builds the display string.
func (m progressModel) renderContent() string {
	if m.result != nil || m.quitting {
		return m.finalView()
	}

	status := m.theme.statusStyle().Render(fmt.Sprintf("[%s]", m.doc.Status))

	var pct float64
	stage := "waiting"
	if rank, ok := stageRank[m.doc.ActiveAgent]; ok {
		pct = float64(rank) / stageCount
		stage = string(m.doc.ActiveAgent)
	}
	if m.doc.Status == models.StatusComplete {
		pct = 1
	}

	progressBar := m.progress.ViewAs(pct)
	hint := m.theme.hintStyle().Render("Press Ctrl+C to detach (the run continues)")

	return fmt.Sprintf("%s %s %s\n%s\n", status, progressBar, stage, hint)
}

// finalView renders the completion message.
func (m progressModel) finalView() string {
	if m.quitting && m.result == nil {
		return m.theme.hintStyle().Render(fmt.Sprintf("\nRun for %s continues in background.\n", m.id))
	}

	if m.result.err != nil {
		return m.theme.errorStyle().Render(fmt.Sprintf("\n✗ Pipeline failed at %s: %s\n", m.doc.ActiveAgent, m.result.err))
	}

	return m.theme.completedStyle().Render(fmt.Sprintf("✓ Complete in %ds\n", m.doc.ProcessingDuration)) +
		fmt.Sprintf("  Bid: %s\n  Organisation: %s\n", m.doc.ID, m.doc.Organisation)
}

// tickCmd returns a command that sends a tick after the poll interval.
func tickCmd() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// RunPipelineProgress runs the interactive progress UI over one
// pipeline run and returns the document's final ID.
func RunPipelineProgress(pipeline *service.Pipeline, id string) (string, error) {
	model := newProgressModel(pipeline, id)
	p := tea.NewProgram(model)

	finalModel, err := p.Run()
	if err != nil {
		return id, fmt.Errorf("progress UI error: %w", err)
	}

	m, ok := finalModel.(progressModel)
	if !ok || m.result == nil {
		// Detached: wait for the pipeline to finish anyway, since the
		// caller needs the final document.
		result := <-model.done
		return result.finalID, result.err
	}

	return m.result.finalID, m.result.err
}
