// Package tui is the terminal front-end of wqsuite. It renders one session's
// batch as rows and relays key presses back into the session as actions.
package tui

import (
	"context"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/bft-labs/wqsuite/internal/app"
	"github.com/bft-labs/wqsuite/internal/domain"
	"github.com/bft-labs/wqsuite/internal/editor"
	"github.com/bft-labs/wqsuite/internal/ports"
	"github.com/bft-labs/wqsuite/pkg/log"
)

// Session is the part of an app session the UI drives.
type Session interface {
	Names() []domain.ParameterID
	Snapshot() editor.Snapshot
	Dispatch(a editor.Action) (editor.Snapshot, editor.Notice, error)
	ApplyRowActions(actions []editor.Action) (editor.Snapshot, error)
	RunAnalysis(ctx context.Context) (app.AnalysisResult, editor.Notice, error)
	GenerateProposal(ctx context.Context, in domain.ProposalInputs) (string, editor.Notice, error)
}

type tab int

const (
	tabAnalysis tab = iota
	tabProposal
)

var tabTitles = []string{"Multi-Param Analysis", "Proposal Generator"}

type focus int

const (
	focusInput focus = iota
	focusList
)

const (
	valueStep     = 0.1
	toastTTL      = 4 * time.Second
	minSplitWidth = 100
)

// toastExpiredMsg clears the toast it was scheduled for, unless a newer one
// replaced it.
type toastExpiredMsg struct{ seq int }

// staged remembers a value the model wrote into the value field. The field
// shows FormatValue(value), which may be clipped by the char limit, so add
// uses value itself while the field text is unchanged.
type staged struct {
	text  string
	value float64
	set   bool
}

// Model is the root bubbletea model.
type Model struct {
	ctx     context.Context
	session Session
	logger  ports.Logger
	keys    keyMap
	help    help.Model

	tab   tab
	focus focus
	names []domain.ParameterID

	snap   editor.Snapshot
	value  textinput.Model
	staged staged
	cursor int
	marked map[int]bool

	results    viewport.Model
	findings   domain.Findings
	reportPath string

	fields       *proposalFields
	form         *huh.Form
	proposalPath string

	notice   editor.Notice
	toastSeq int

	width    int
	height   int
	quitting bool
}

// New creates the model for session s. ctx bounds the analysis and proposal
// calls made from the UI.
func New(ctx context.Context, s Session, logger ports.Logger) *Model {
	if logger == nil {
		logger = log.NewNoopLogger()
	}

	value := textinput.New()
	value.Prompt = ""
	value.Placeholder = "0.0"
	value.CharLimit = 32
	value.Width = 12
	value.Focus()

	fields := defaultProposalFields()
	return &Model{
		ctx:     ctx,
		session: s,
		logger:  logger,
		keys:    defaultKeyMap(),
		help:    help.New(),
		names:   s.Names(),
		snap:    s.Snapshot(),
		value:   value,
		marked:  make(map[int]bool),
		results: viewport.New(60, 12),
		fields:  fields,
		form:    newProposalForm(fields, 0),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil
	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.notice = editor.Notice{}
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.SwitchTab):
			return m, m.switchTab()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	if m.tab == tabProposal {
		return m, m.updateProposal(msg)
	}
	return m, m.updateAnalysis(msg)
}

func (m *Model) setSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	resultsWidth := width - 4
	if width >= minSplitWidth {
		resultsWidth = width/2 - 4
	}
	m.results.Width = max(resultsWidth, 20)
	m.results.Height = max(height-16, 5)
	if len(m.findings) > 0 {
		m.results.SetContent(m.renderFindings())
	}
	m.form = m.form.WithWidth(max(width-4, 20))
}

func (m *Model) switchTab() tea.Cmd {
	if m.tab == tabAnalysis {
		m.tab = tabProposal
		m.value.Blur()
		return m.form.Init()
	}
	m.tab = tabAnalysis
	if m.focus == focusInput {
		return m.value.Focus()
	}
	return nil
}

func (m *Model) updateAnalysis(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var valueCmd, resultsCmd tea.Cmd
		m.value, valueCmd = m.value.Update(msg)
		m.results, resultsCmd = m.results.Update(msg)
		return tea.Batch(valueCmd, resultsCmd)
	}
	if keyMsg.Type == tea.KeyPgUp || keyMsg.Type == tea.KeyPgDown {
		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)
		return cmd
	}
	if m.focus == focusList {
		return m.updateList(keyMsg)
	}
	return m.updateInput(keyMsg)
}

func (m *Model) updateInput(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.PrevParam):
		return m.cycleParam(-1)
	case key.Matches(msg, m.keys.NextParam):
		return m.cycleParam(1)
	case key.Matches(msg, m.keys.StepUp):
		return m.stepValue(valueStep)
	case key.Matches(msg, m.keys.StepDown):
		return m.stepValue(-valueStep)
	case key.Matches(msg, m.keys.Add):
		return m.add()
	case key.Matches(msg, m.keys.Run):
		return m.runAnalysis()
	case key.Matches(msg, m.keys.ClearAll):
		return m.dispatch(editor.ClearAll())
	case key.Matches(msg, m.keys.FocusList):
		if !m.snap.Empty() {
			m.focus = focusList
			m.value.Blur()
		}
		return nil
	}

	if !acceptsValueKey(msg) {
		return nil
	}
	var cmd tea.Cmd
	m.value, cmd = m.value.Update(msg)
	if v, ok := m.fieldValue(); ok {
		return tea.Batch(cmd, m.dispatch(editor.SetValue(v)))
	}
	return cmd
}

func (m *Model) updateList(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Back):
		return m.focusValue()
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.snap.Len()-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Edit):
		return m.editRow(m.cursor)
	case key.Matches(msg, m.keys.Delete):
		return m.deleteRow(m.cursor)
	case key.Matches(msg, m.keys.Mark):
		m.marked[m.cursor] = !m.marked[m.cursor]
	case key.Matches(msg, m.keys.DeleteMark):
		return m.deleteMarked()
	case key.Matches(msg, m.keys.Run):
		return m.runAnalysis()
	case key.Matches(msg, m.keys.ClearAll):
		return m.dispatch(editor.ClearAll())
	}
	return nil
}

func (m *Model) focusValue() tea.Cmd {
	m.focus = focusInput
	return m.value.Focus()
}

// dispatch sends one action to the session and re-reads the snapshot.
// Errors are contract faults: they are logged and never shown.
func (m *Model) dispatch(a editor.Action) tea.Cmd {
	snap, notice, err := m.session.Dispatch(a)
	if err != nil {
		m.logger.Error("action failed", ports.String("action", a.Kind.String()), ports.Err(err))
	}
	m.apply(snap)
	return m.showNotice(notice)
}

// apply installs a new snapshot. Row marks and the cursor refer to indices of
// the previous revision, so they are reset or clamped.
func (m *Model) apply(snap editor.Snapshot) {
	if snap.Revision != m.snap.Revision {
		clear(m.marked)
	}
	m.snap = snap
	if m.cursor >= snap.Len() {
		m.cursor = max(snap.Len()-1, 0)
	}
	if snap.Empty() && m.focus == focusList {
		m.focus = focusInput
		m.value.Focus()
	}
}

func (m *Model) cycleParam(dir int) tea.Cmd {
	if len(m.names) == 0 {
		return nil
	}
	idx := 0
	for i, n := range m.names {
		if n == m.snap.Selected {
			idx = i
			break
		}
	}
	next := (idx + dir + len(m.names)) % len(m.names)
	return m.dispatch(editor.SelectParam(m.names[next]))
}

func (m *Model) stepValue(delta float64) tea.Cmd {
	v := math.Round((m.snap.Value+delta)*1e6) / 1e6
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	cmd := m.dispatch(editor.SetValue(v))
	m.stage(v)
	return cmd
}

// stage writes v into the value field.
func (m *Model) stage(v float64) {
	m.value.SetValue(domain.FormatValue(v))
	m.value.CursorEnd()
	m.staged = staged{text: m.value.Value(), value: v, set: true}
}

// fieldValue returns the number the value field stands for.
func (m *Model) fieldValue() (float64, bool) {
	text := m.value.Value()
	if m.staged.set && text == m.staged.text {
		return m.staged.value, true
	}
	return parseValue(text)
}

func (m *Model) add() tea.Cmd {
	v, ok := m.fieldValue()
	if !ok {
		return m.showNotice(editor.Warning("Lab value must be a number."))
	}
	if v != m.snap.Value {
		m.dispatch(editor.SetValue(v))
	}
	snap, notice, err := m.session.Dispatch(editor.Add())
	if err != nil {
		m.logger.Error("action failed", ports.String("action", editor.ActionAdd.String()), ports.Err(err))
	}
	m.apply(snap)
	if notice.Kind == editor.NoticeSuccess {
		m.value.Reset()
		m.staged = staged{}
	}
	return m.showNotice(notice)
}

func (m *Model) editRow(index int) tea.Cmd {
	if index < 0 || index >= m.snap.Len() {
		return nil
	}
	cmd := m.dispatch(editor.EditRow(m.snap, index))
	m.stage(m.snap.Value)
	return tea.Batch(cmd, m.focusValue())
}

func (m *Model) deleteRow(index int) tea.Cmd {
	if index < 0 || index >= m.snap.Len() {
		return nil
	}
	return m.dispatch(editor.DeleteRow(m.snap, index))
}

// deleteMarked removes every marked row in one batch computed from the
// current snapshot.
func (m *Model) deleteMarked() tea.Cmd {
	actions := make([]editor.Action, 0, len(m.marked))
	for i := 0; i < m.snap.Len(); i++ {
		if m.marked[i] {
			actions = append(actions, editor.DeleteRow(m.snap, i))
		}
	}
	if len(actions) == 0 {
		return nil
	}
	snap, err := m.session.ApplyRowActions(actions)
	if err != nil {
		m.logger.Error("row batch failed", ports.Int("actions", len(actions)), ports.Err(err))
	}
	m.apply(snap)
	return nil
}

func (m *Model) runAnalysis() tea.Cmd {
	res, notice, err := m.session.RunAnalysis(m.ctx)
	if err != nil {
		m.logger.Error("analysis failed", ports.Err(err))
	}
	if len(res.Findings) > 0 {
		m.findings = res.Findings
		m.reportPath = res.ReportPath
		m.results.SetContent(m.renderFindings())
		m.results.GotoTop()
	}
	return m.showNotice(notice)
}

func (m *Model) showNotice(n editor.Notice) tea.Cmd {
	if n.Empty() {
		return nil
	}
	m.notice = n
	m.toastSeq++
	seq := m.toastSeq
	return tea.Tick(toastTTL, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

func (m *Model) renderFindings() string {
	lines := make([]string, 0, len(m.findings))
	for _, f := range m.findings {
		lines = append(lines, renderFinding(f))
	}
	return strings.Join(lines, "\n")
}

// acceptsValueKey filters keys that would put something other than a number
// into the value field.
func acceptsValueKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if !unicode.IsDigit(r) && r != '.' && r != '-' {
				return false
			}
		}
		return true
	case tea.KeySpace, tea.KeyTab, tea.KeyShiftTab, tea.KeyEsc:
		return false
	default:
		return true
	}
}

// parseValue reads the value field. An empty field is 0.
func parseValue(text string) (float64, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, true
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
