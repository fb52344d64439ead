package session

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/keyline/internal/command"
	"github.com/rileyhilliard/keyline/internal/config"
	"github.com/rileyhilliard/keyline/internal/envfile"
	"github.com/rileyhilliard/keyline/internal/errors"
	"github.com/rileyhilliard/keyline/internal/keys"
	"github.com/rileyhilliard/keyline/internal/logger"
	"github.com/rileyhilliard/keyline/internal/terminal"
	"github.com/rileyhilliard/keyline/internal/ui"
)

// maxHistory caps the number of output lines kept on screen.
const maxHistory = 500

type mode int

const (
	keyMode mode = iota
	promptMode
)

// Model is the Bubble Tea model for an interactive session. It uses pointer
// receivers because binding actions are closures over the model.
type Model struct {
	cfg        *config.Config
	dir        string
	file       *envfile.File
	dispatcher *keys.Dispatcher
	commands   *command.Table
	input      textinput.Model
	mode       mode
	header     string
	history    []string
	out        *bytes.Buffer // command output, flushed into history
	next       tea.Cmd       // set by actions that need the event loop
	quitting   bool
	width      int
	log        logger.Logger
}

// NewModel creates a session for cfg. dir resolves the relative env file path.
func NewModel(cfg *config.Config, dir string, log logger.Logger) *Model {
	if log == nil {
		log = logger.Noop()
	}

	m := &Model{
		dir:   dir,
		out:   &bytes.Buffer{},
		input: textinput.New(),
		log:   log,
	}
	m.apply(cfg)
	return m
}

// apply installs cfg: prompt, env file, command table and dispatcher.
func (m *Model) apply(cfg *config.Config) {
	m.cfg = cfg
	m.file = envfile.New(m.dir, cfg.Env.File)
	m.input.Prompt = ui.RenderPrompt(cfg.Prompt.Character, cfg.Prompt.Text)
	m.input.Placeholder = "help"
	m.commands = Commands(cfg, m.out)
	m.dispatcher = m.newDispatcher(cfg.Bindings)
}

func (m *Model) newDispatcher(bindings []config.BindingConfig) *keys.Dispatcher {
	kb := make([]keys.Binding, 0, len(bindings))
	for _, b := range bindings {
		kb = append(kb, keys.Binding{Descriptor: b.Key, Action: m.action(b)})
	}
	return keys.NewDispatcher(keys.NewRegistry(kb), keys.WithLogger(m.log))
}

func (m *Model) action(b config.BindingConfig) keys.Action {
	switch b.Action {
	case config.ActionPrompt:
		return m.openPrompt
	case config.ActionExec:
		line := b.Line
		return func() { m.run(line) }
	case config.ActionHelp:
		return m.showHelp
	case config.ActionClear:
		return m.clear
	case config.ActionQuit:
		return m.quit
	}
	m.log.Warn("binding %q has unknown action %q", b.Key, b.Action)
	return nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.mode == promptMode {
			return m.updatePrompt(msg)
		}
		return m.updateKeys(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(0, msg.Width-lipgloss.Width(m.input.Prompt)-1)
		return m, nil

	case ReloadMsg:
		m.reload(msg)
		return m, nil
	}

	return m, nil
}

// updateKeys routes one keystroke through the dispatcher.
func (m *Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ev := terminal.FromKeyMsg(msg)
	if m.dispatcher.Dispatch(ev) == keys.Terminate {
		return m, m.terminate()
	}
	return m, m.takeNext()
}

// updatePrompt edits the prompt line. Enter runs it, ctrl+c abandons it,
// and escape still ends the session.
func (m *Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if terminal.FromKeyMsg(msg).IsEscape() {
		return m, m.terminate()
	}

	switch msg.Type {
	case tea.KeyEnter:
		line := m.input.Value()
		m.closePrompt()
		m.run(line)
		return m, m.takeNext()

	case tea.KeyCtrlC:
		m.closePrompt()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) openPrompt() {
	m.mode = promptMode
	m.input.Reset()
	m.next = m.input.Focus()
}

func (m *Model) closePrompt() {
	m.input.Blur()
	m.input.Reset()
	m.mode = keyMode
}

// run executes one command line and records its output. Errors are shown
// and never end the session.
func (m *Model) run(line string) {
	if line == "" {
		return
	}
	m.appendLines(echoStyle.Render(ui.RenderPrompt(m.cfg.Prompt.Character, "") + line))

	err := m.commands.Execute(m.file, line)
	m.flush()
	if err != nil {
		m.log.Debug("command %q failed: %v", line, err)
		m.appendError(err)
	}
}

func (m *Model) showHelp() {
	m.appendLines(titleStyle.Render("Key bindings"))
	fmt.Fprint(m.out, ui.RenderBindingTable(Rows(m.cfg.Bindings)))
	m.flush()

	m.appendLines(titleStyle.Render("Commands"))
	if err := m.commands.Execute(m.file, "help"); err != nil {
		m.appendError(err)
	}
	m.flush()
}

func (m *Model) clear() {
	m.history = nil
}

func (m *Model) quit() {
	m.quitting = true
	m.next = tea.Quit
}

func (m *Model) terminate() tea.Cmd {
	m.quitting = true
	return tea.Quit
}

func (m *Model) takeNext() tea.Cmd {
	cmd := m.next
	m.next = nil
	return cmd
}

func (m *Model) reload(msg ReloadMsg) {
	if msg.Err != nil {
		m.appendError(msg.Err)
		return
	}
	if msg.Config == nil {
		return
	}
	m.apply(msg.Config)
	ui.ApplyColorMode(msg.Config.Output.Color)
	m.appendLines(ui.SuccessStyle().Render(fmt.Sprintf("%s Reloaded %d key bindings",
		ui.SymbolSuccess, len(msg.Config.Bindings))))
}

// flush moves buffered command output into the history.
func (m *Model) flush() {
	if m.out.Len() == 0 {
		return
	}
	text := strings.TrimRight(m.out.String(), "\n")
	m.out.Reset()
	m.appendLines(strings.Split(text, "\n")...)
}

func (m *Model) appendError(err error) {
	if klErr, ok := errors.As(err); ok {
		m.appendLines(ui.RenderError(ui.SymbolFail + " " + klErr.Message))
		if klErr.Cause != nil {
			m.appendLines(suggestionStyle.Render(klErr.Cause.Error()))
		}
		if klErr.Suggestion != "" {
			m.appendLines(suggestionStyle.Render(klErr.Suggestion))
		}
		return
	}
	m.appendLines(ui.RenderError(ui.SymbolFail + " " + err.Error()))
}

func (m *Model) appendLines(lines ...string) {
	m.history = append(m.history, lines...)
	if over := len(m.history) - maxHistory; over > 0 {
		m.history = m.history[over:]
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(m.header)
	for _, line := range m.history {
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	if m.mode == promptMode {
		sb.WriteString(m.input.View())
	} else {
		sb.WriteString(m.renderFooter())
	}
	return sb.String()
}

// renderFooter lists the keys that open the prompt or help, plus escape.
func (m *Model) renderFooter() string {
	var parts []string
	seen := make(map[string]bool)
	for _, row := range Rows(m.cfg.Bindings) {
		if row.Shadowed {
			continue
		}
		action := row.Action
		if action != config.ActionPrompt && action != config.ActionHelp {
			continue
		}
		if seen[action] {
			continue
		}
		seen[action] = true
		parts = append(parts, footerKeyStyle.Render(row.Key)+footerStyle.Render(" "+action))
	}
	parts = append(parts, footerKeyStyle.Render("esc")+footerStyle.Render(" quit"))
	return strings.Join(parts, footerStyle.Render(" | "))
}
