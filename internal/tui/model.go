package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"fex/internal/domain"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Phase is the screen the model is currently showing.
type Phase int

const (
	PhaseScanning Phase = iota
	PhaseCopying
	PhaseDone
	PhaseError
)

// Messages sent by the scan and copy drivers.
type (
	ScanProgressMsg struct {
		Found int
	}
	PlanReadyMsg struct {
		Plan domain.CopyPlan
	}
	CopyProgressMsg struct {
		Current int
		Total   int
		File    string
	}
	CopyDoneMsg struct {
		Summary domain.Summary
	}
	ErrorMsg struct {
		Err error
	}
	tickMsg time.Time
)

// ScanFunc starts the scan in the background; it reports back with
// PlanReadyMsg or ErrorMsg and may stream ScanProgressMsg in between.
type ScanFunc func() tea.Cmd

// CopyFunc starts the copy run for a ready plan; it reports back with
// CopyDoneMsg or ErrorMsg and streams CopyProgressMsg while running.
type CopyFunc func(plan domain.CopyPlan) tea.Cmd

// Config carries the run settings the TUI displays and the commands
// that drive the scan and copy in the background.
type Config struct {
	Source      string
	Dest        string
	Extensions  string
	Overwrite   bool
	Preserve    bool
	DryRun      bool
	Verbose     bool
	ExecuteScan ScanFunc
	ExecuteCopy CopyFunc
}

// Model drives the interactive run.
type Model struct {
	config      Config
	Phase       Phase
	Plan        domain.CopyPlan
	Summary     domain.Summary
	spinner     spinner.Model
	progress    progress.Model
	found       int
	copyCurrent int
	copyTotal   int
	currentFile string
	Err         error
	Quitting    bool
	width       int
	height      int
}

func NewModel(cfg Config) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	p := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(50),
		progress.WithoutPercentage(),
	)

	return Model{
		config:   cfg,
		Phase:    PhaseScanning,
		spinner:  s,
		progress: p,
		width:    80,
		height:   24,
	}
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.config.ExecuteScan != nil {
		cmds = append(cmds, m.config.ExecuteScan())
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(msg.Width-20, 60)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.Quitting = true
			return m, tea.Quit
		case "enter":
			if m.Phase == PhaseDone || m.Phase == PhaseError {
				return m, tea.Quit
			}
		}

	case ScanProgressMsg:
		m.found = msg.Found
		return m, nil

	case PlanReadyMsg:
		m.Plan = msg.Plan
		if m.config.DryRun || len(m.Plan.Items) == 0 {
			m.Phase = PhaseDone
			return m, nil
		}
		m.Phase = PhaseCopying
		m.copyTotal = len(m.Plan.Items)
		if m.config.ExecuteCopy != nil {
			return m, tea.Batch(tickCmd(), m.config.ExecuteCopy(m.Plan))
		}
		return m, nil

	case CopyProgressMsg:
		m.copyCurrent = msg.Current
		m.copyTotal = msg.Total
		m.currentFile = msg.File
		return m, nil

	case CopyDoneMsg:
		m.Summary = msg.Summary
		m.Phase = PhaseDone
		return m, nil

	case ErrorMsg:
		m.Phase = PhaseError
		m.Err = msg.Err
		return m, nil

	case spinner.TickMsg:
		if m.Phase == PhaseScanning || m.Phase == PhaseCopying {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd

	case tickMsg:
		if m.Phase == PhaseCopying {
			var cmds []tea.Cmd
			if m.copyTotal > 0 {
				cmds = append(cmds, m.progress.SetPercent(float64(m.copyCurrent)/float64(m.copyTotal)))
			}
			cmds = append(cmds, tickCmd(), m.spinner.Tick)
			return m, tea.Batch(cmds...)
		}
	}

	return m, nil
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch m.Phase {
	case PhaseScanning:
		b.WriteString(m.renderScanning())
	case PhaseCopying:
		b.WriteString(m.renderCopying())
	case PhaseDone:
		b.WriteString(m.renderDone())
	case PhaseError:
		b.WriteString(m.renderError())
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("📦 fex")
	subtitle := subtitleStyle.Render("File extraction made simple")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		subtitle,
		"",
		dimStyle.Render(fmt.Sprintf("%s Source:      %s", iconFolder, shortenPath(m.config.Source))),
		dimStyle.Render(fmt.Sprintf("%s Destination: %s", iconFolder, shortenPath(m.config.Dest))),
		dimStyle.Render(fmt.Sprintf("   Extensions:  %s", m.config.Extensions)),
		dimStyle.Render(fmt.Sprintf("   Duplicates:  %s", domain.DuplicatePolicyLabel(m.config.Overwrite))),
		dimStyle.Render(fmt.Sprintf("   Layout:      %s", domain.LayoutLabel(m.config.Preserve))),
	)
}

func (m Model) renderScanning() string {
	if m.found > 0 {
		return fmt.Sprintf("%s Scanning for files... %s",
			m.spinner.View(),
			countStyle.Render(fmt.Sprintf("%d found", m.found)),
		)
	}
	return fmt.Sprintf("%s Scanning for files...", m.spinner.View())
}

func (m Model) renderCopying() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Copying Files"))
	b.WriteString("\n\n")

	percent := 0.0
	if m.copyTotal > 0 {
		percent = float64(m.copyCurrent) / float64(m.copyTotal)
	}

	b.WriteString(fmt.Sprintf("  %s Copying...\n\n", m.spinner.View()))
	b.WriteString(fmt.Sprintf("  %s\n", m.progress.ViewAs(percent)))
	b.WriteString(fmt.Sprintf("  %s %s\n",
		countStyle.Render(fmt.Sprintf("%d/%d files", m.copyCurrent, m.copyTotal)),
		dimStyle.Render(fmt.Sprintf("(%.0f%%)", percent*100)),
	))

	if m.currentFile != "" {
		b.WriteString(fmt.Sprintf("\n  %s %s\n", iconArrow, fileNameStyle.Render(m.currentFile)))
	}

	return b.String()
}

func (m Model) renderDone() string {
	if len(m.Plan.Items) == 0 {
		return dimStyle.Render("No files found with the specified extensions.")
	}
	if m.config.DryRun {
		return m.renderDryRun()
	}
	return m.renderSummary()
}

func (m Model) renderDryRun() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Files to Copy"))
	b.WriteString("\n\n")

	for _, line := range formatFileList(m.Plan.Items, 4) {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("\n  %s\n", countStyle.Render(fmt.Sprintf("%d files matched", len(m.Plan.Items)))))
	b.WriteString(highlightBoxStyle.Render("🔍 Dry Run - No files were copied"))

	if m.config.Verbose && len(m.Plan.Warnings) > 0 {
		b.WriteString("\n")
		b.WriteString(m.renderWarnings())
	}

	return b.String()
}

func (m Model) renderSummary() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Copy Complete"))
	b.WriteString("\n\n")

	if m.Summary.HasFailures() {
		b.WriteString(fmt.Sprintf("  %s\n\n", warningStyle.Render(iconWarning+" Completed with failures")))
	} else {
		b.WriteString(fmt.Sprintf("  %s\n\n", successStyle.Render(iconCopied+" All files processed")))
	}

	b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Copied:"), statValueStyle.Render(fmt.Sprintf("%s %d", iconCopied, m.Summary.Copied))))
	b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Overwritten:"), statValueStyle.Render(fmt.Sprintf("%s %d", iconOverwritten, m.Summary.Overwritten))))
	b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Skipped:"), dimStyle.Render(fmt.Sprintf("%s %d", iconSkipped, m.Summary.Skipped))))
	b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Failed:"), failedStyle(m.Summary).Render(fmt.Sprintf("%s %d", iconFailed, m.Summary.Failed))))
	b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Total:"), statValueStyle.Render(fmt.Sprintf("%d files", m.Summary.Total()))))

	if m.Summary.HasFailures() {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Failures:"))
		b.WriteString("\n")
		for i, r := range m.Summary.Failures {
			if i >= 4 {
				b.WriteString(dimStyle.Render(fmt.Sprintf("  ... and %d more\n", len(m.Summary.Failures)-4)))
				break
			}
			b.WriteString(fmt.Sprintf("  %s %s: %v\n", errorStyle.Render(iconFailed), fileNameStyle.Render(r.Item.Entry.RelPath), r.Err))
		}
	}

	if m.config.Verbose && len(m.Plan.Warnings) > 0 {
		b.WriteString("\n")
		b.WriteString(m.renderWarnings())
	}

	return b.String()
}

func (m Model) renderWarnings() string {
	var b strings.Builder

	b.WriteString(warningStyle.Render("Warnings:"))
	b.WriteString("\n")
	for _, warning := range m.Plan.Warnings {
		b.WriteString(fmt.Sprintf("  %s %s\n", warningStyle.Render(iconWarning), warning))
	}

	return b.String()
}

func (m Model) renderError() string {
	icon := errorStyle.Render(iconFailed)
	msg := errorStyle.Render(fmt.Sprintf("Error: %s", m.Err.Error()))

	return highlightBoxStyle.BorderForeground(errorColor).Render(fmt.Sprintf("%s %s", icon, msg))
}

func (m Model) renderHelp() string {
	var help string
	switch m.Phase {
	case PhaseScanning:
		help = "Press q to quit"
	case PhaseCopying:
		help = "Copying files... Please wait"
	case PhaseDone:
		help = "Press Enter to exit"
	case PhaseError:
		help = "Press Enter or q to exit"
	}
	return helpStyle.Render(help)
}

// formatFileList renders plan items, truncating long plans to the first
// and last few entries.
func formatFileList(items []domain.CopyItem, maxItems int) []string {
	if len(items) == 0 {
		return []string{}
	}

	lines := make([]string, 0, min(len(items), maxItems+1))
	if len(items) > maxItems {
		half := maxItems / 2
		for i := 0; i < half; i++ {
			lines = append(lines, formatFileItem(items[i]))
		}
		lines = append(lines, dimStyle.Render(fmt.Sprintf("... %d more files ...", len(items)-maxItems)))
		for i := len(items) - half; i < len(items); i++ {
			lines = append(lines, formatFileItem(items[i]))
		}
	} else {
		for _, item := range items {
			lines = append(lines, formatFileItem(item))
		}
	}

	return lines
}

func formatFileItem(item domain.CopyItem) string {
	return fmt.Sprintf("%s %s %s",
		fileNameStyle.Render(item.Entry.RelPath),
		dimStyle.Render(iconArrow),
		dimStyle.Render(item.TargetPath),
	)
}

func failedStyle(s domain.Summary) lipgloss.Style {
	if s.HasFailures() {
		return errorStyle
	}
	return dimStyle
}

// shortenPath swaps the home directory prefix for ~ in displayed paths.
func shortenPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if strings.HasPrefix(path, home) {
		return "~" + path[len(home):]
	}
	return path
}
