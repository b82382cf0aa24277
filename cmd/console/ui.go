package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/mythosquest/scenario-engine/pkg/scenario"
	"github.com/mythosquest/scenario-engine/pkg/validate"
)

// ConsoleUI previews generated scenarios: briefing and objectives on the
// left, doom timeline and validation outcome on the right.
type ConsoleUI struct {
	cfg    *ConsoleConfig
	client *http.Client

	scenarioViewport viewport.Model
	reportViewport   viewport.Model

	current    *GenerateResponse
	difficulty scenario.Difficulty

	loading   bool
	statusMsg string
	err       error

	width  int
	height int
	ready  bool
}

type scenarioMsg *GenerateResponse

type errMsg struct{ err error }

type statusMsg string

var (
	scenarioPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("62")).
				Padding(0, 1)

	reportPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")). // purple
			Bold(true)

	briefingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	optionalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	hiddenStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("46")) // bright green

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey
)

func NewConsoleUI(cfg *ConsoleConfig, client *http.Client) ConsoleUI {
	scenarioVp := viewport.New(50, 20)
	reportVp := viewport.New(40, 20)

	return ConsoleUI{
		cfg:              cfg,
		client:           client,
		scenarioViewport: scenarioVp,
		reportViewport:   reportVp,
		difficulty:       scenario.DifficultyNormal,
		loading:          true,
	}
}

func (m ConsoleUI) Init() tea.Cmd {
	return m.generate()
}

func (m ConsoleUI) generate() tea.Cmd {
	client := m.client
	baseURL := m.cfg.APIBaseURL
	difficulty := string(m.difficulty)
	return func() tea.Msg {
		resp, err := generateScenario(client, baseURL, difficulty, "")
		if err != nil {
			return errMsg{err}
		}
		return scenarioMsg(resp)
	}
}

func (m ConsoleUI) copyToClipboard() tea.Cmd {
	current := m.current
	return func() tea.Msg {
		if current == nil || current.Scenario == nil {
			return statusMsg("nothing to copy")
		}
		data, err := json.MarshalIndent(current.Scenario, "", "  ")
		if err != nil {
			return errMsg{err}
		}
		if err := clipboard.WriteAll(string(data)); err != nil {
			return errMsg{err}
		}
		return statusMsg("scenario JSON copied to clipboard")
	}
}

func nextDifficulty(d scenario.Difficulty) scenario.Difficulty {
	switch d {
	case scenario.DifficultyNormal:
		return scenario.DifficultyHard
	case scenario.DifficultyHard:
		return scenario.DifficultyNightmare
	default:
		return scenario.DifficultyNormal
	}
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layoutViewports()
		m.refreshContent()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "n", "g":
			m.loading = true
			m.statusMsg = ""
			m.err = nil
			return m, m.generate()
		case "d":
			m.difficulty = nextDifficulty(m.difficulty)
			m.loading = true
			m.statusMsg = ""
			m.err = nil
			return m, m.generate()
		case "c":
			return m, m.copyToClipboard()
		}

	case scenarioMsg:
		m.current = msg
		m.loading = false
		m.err = nil
		m.refreshContent()
		return m, nil

	case errMsg:
		m.err = msg.err
		m.loading = false
		return m, nil

	case statusMsg:
		m.statusMsg = string(msg)
		return m, nil
	}

	var cmd tea.Cmd
	var cmds []tea.Cmd
	m.scenarioViewport, cmd = m.scenarioViewport.Update(msg)
	cmds = append(cmds, cmd)
	m.reportViewport, cmd = m.reportViewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *ConsoleUI) layoutViewports() {
	scenarioWidth := m.width * 3 / 5
	reportWidth := m.width - scenarioWidth - 6
	contentHeight := m.height - 5
	if contentHeight < 5 {
		contentHeight = 5
	}

	m.scenarioViewport.Width = scenarioWidth
	m.scenarioViewport.Height = contentHeight
	m.reportViewport.Width = reportWidth
	m.reportViewport.Height = contentHeight
}

func (m *ConsoleUI) refreshContent() {
	if m.current == nil || m.current.Scenario == nil {
		return
	}
	m.scenarioViewport.SetContent(m.writeScenarioContent())
	m.reportViewport.SetContent(m.writeReportContent())
	m.scenarioViewport.GotoTop()
	m.reportViewport.GotoTop()
}

func objectiveMarker(o scenario.ScenarioObjective) string {
	switch {
	case o.IsHidden:
		return "??"
	case o.IsOptional:
		return "()"
	default:
		return "[]"
	}
}

func (m *ConsoleUI) writeScenarioContent() string {
	s := m.current.Scenario
	width := m.scenarioViewport.Width - 2
	if width < 20 {
		width = 20
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(s.Title) + "\n")
	b.WriteString(fmt.Sprintf("%s / %s / doom %d / ~%d min / %d-%d investigators\n\n",
		s.Category, s.Difficulty, s.StartDoom, s.EstimatedTime, s.PartySizeMin, s.PartySizeMax))

	b.WriteString(briefingStyle.Render(wordwrap.String(s.Briefing, width)) + "\n\n")

	b.WriteString(sectionStyle.Render("Goal") + "\n")
	b.WriteString(wordwrap.String(s.Goal, width) + "\n\n")

	if s.SpecialRule != "" {
		b.WriteString(sectionStyle.Render("Special Rule") + "\n")
		b.WriteString(wordwrap.String(s.SpecialRule, width) + "\n\n")
	}

	b.WriteString(sectionStyle.Render("Objectives") + "\n")
	for _, o := range s.Objectives {
		line := fmt.Sprintf("%s %s: %s", objectiveMarker(o), o.ID, o.Description)
		if o.TargetAmount > 1 {
			line += fmt.Sprintf(" (x%d)", o.TargetAmount)
		}
		if o.RevealedBy != "" {
			line += " <- " + o.RevealedBy
		}
		wrapped := wordwrap.String(line, width)
		switch {
		case o.IsHidden:
			b.WriteString(hiddenStyle.Render(wrapped) + "\n")
		case o.IsOptional:
			b.WriteString(optionalStyle.Render(wrapped) + "\n")
		default:
			b.WriteString(wrapped + "\n")
		}
	}

	b.WriteString("\n" + sectionStyle.Render("Start Location") + "\n")
	b.WriteString(s.StartLocation + " (" + string(s.TileSet) + " tiles)\n")

	return b.String()
}

func (m *ConsoleUI) writeReportContent() string {
	s := m.current.Scenario
	rep := m.current.Report
	width := m.reportViewport.Width - 2
	if width < 20 {
		width = 20
	}

	var b strings.Builder

	b.WriteString(sectionStyle.Render("Doom Timeline") + "\n")
	for _, ev := range s.DoomEvents {
		line := fmt.Sprintf("%2d  %s", ev.Threshold, ev.Message)
		if ev.Kind == scenario.DoomSpawnEnemy || ev.Kind == scenario.DoomSpawnBoss {
			line = fmt.Sprintf("%2d  %s (%s x%d)", ev.Threshold, ev.Message, ev.TargetID, ev.Amount)
		}
		b.WriteString(wordwrap.String(line, width) + "\n")
	}

	b.WriteString("\n" + sectionStyle.Render("Victory") + "\n")
	for _, v := range s.Victories {
		b.WriteString(wordwrap.String(v.Description, width) + "\n")
	}

	b.WriteString("\n" + sectionStyle.Render("Defeat") + "\n")
	for _, d := range s.Defeats {
		b.WriteString(wordwrap.String(d.Description, width) + "\n")
	}

	b.WriteString("\n" + sectionStyle.Render("Validation") + "\n")
	if rep.IsWinnable {
		b.WriteString(okStyle.Render(fmt.Sprintf("winnable, confidence %d", rep.Confidence)) + "\n")
	} else {
		b.WriteString(errorStyle.Render(fmt.Sprintf("not winnable, confidence %d", rep.Confidence)) + "\n")
	}
	for _, is := range rep.Issues {
		line := fmt.Sprintf("%s: %s", is.Code, is.Message)
		if is.Severity == validate.SeverityError {
			b.WriteString(errorStyle.Render(wordwrap.String(line, width)) + "\n")
		} else {
			b.WriteString(warningStyle.Render(wordwrap.String(line, width)) + "\n")
		}
	}

	if len(m.current.Fixes) > 0 {
		b.WriteString("\n" + sectionStyle.Render("Applied Fixes") + "\n")
		for _, f := range m.current.Fixes {
			b.WriteString(wordwrap.String(fmt.Sprintf("%s: %s", f.Code, f.Description), width) + "\n")
		}
	}

	b.WriteString("\n" + helpStyle.Render(fmt.Sprintf("seed %d, %d attempt(s)", m.current.Seed, m.current.Attempts)) + "\n")
	if m.current.BestEffort {
		b.WriteString(warningStyle.Render("best effort: issues remain") + "\n")
	}

	return b.String()
}

func (m ConsoleUI) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := titleStyle.Render("Scenario Preview") +
		helpStyle.Render(fmt.Sprintf("  difficulty: %s", m.difficulty))

	var body string
	switch {
	case m.err != nil:
		body = errorStyle.Render("Error: " + m.err.Error())
	case m.loading:
		body = warningStyle.Render("Generating scenario...")
	case m.current == nil:
		body = helpStyle.Render("No scenario yet. Press n to generate.")
	default:
		left := scenarioPanelStyle.Render(m.scenarioViewport.View())
		right := reportPanelStyle.Render(m.reportViewport.View())
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	}

	footer := helpStyle.Render("n: new  d: cycle difficulty  c: copy JSON  q: quit")
	if m.statusMsg != "" {
		footer = helpStyle.Render(m.statusMsg)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
