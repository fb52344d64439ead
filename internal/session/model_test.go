package session

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rileyhilliard/keyline/internal/config"
	"github.com/rileyhilliard/keyline/internal/envfile"
	"github.com/rileyhilliard/keyline/internal/errors"
	"github.com/rileyhilliard/keyline/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	ui.DisableColors()
	os.Exit(m.Run())
}

func newTestModel(t *testing.T, bindings ...config.BindingConfig) (*Model, string) {
	t.Helper()
	cfg := config.DefaultConfig()
	if bindings != nil {
		cfg.Bindings = bindings
	}
	dir := t.TempDir()
	return NewModel(cfg, dir, nil), dir
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func press(m *Model, msg tea.Msg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func assertQuit(t *testing.T, cmd tea.Cmd, msgAndArgs ...interface{}) {
	t.Helper()
	require.NotNil(t, cmd, msgAndArgs...)
	assert.IsType(t, tea.QuitMsg{}, cmd(), msgAndArgs...)
}

func historyText(m *Model) string {
	return strings.Join(m.history, "\n")
}

func TestModel_EscapeQuits(t *testing.T) {
	m, _ := newTestModel(t)

	cmd := press(m, tea.KeyMsg{Type: tea.KeyEsc})

	assertQuit(t, cmd)
	assert.True(t, m.quitting)
	assert.Empty(t, m.View())
}

func TestModel_EscapeQuitsWithoutBindings(t *testing.T) {
	m, _ := newTestModel(t, []config.BindingConfig{}...)
	require.Empty(t, m.cfg.Bindings)

	assertQuit(t, press(m, tea.KeyMsg{Type: tea.KeyEsc}))
}

func TestModel_UnboundKeyIsIgnored(t *testing.T) {
	m, _ := newTestModel(t)

	cmd := press(m, runeKey('z'))

	assert.Nil(t, cmd)
	assert.False(t, m.quitting)
	assert.Empty(t, m.history)
	assert.Equal(t, keyMode, m.mode)
}

func TestModel_QuitBinding(t *testing.T) {
	m, _ := newTestModel(t)

	assertQuit(t, press(m, tea.KeyMsg{Type: tea.KeyCtrlC}))
}

func TestModel_FirstBindingWins(t *testing.T) {
	m, _ := newTestModel(t,
		config.BindingConfig{Key: "x", Action: config.ActionClear},
		config.BindingConfig{Key: "x", Action: config.ActionQuit},
	)
	m.appendLines("old output")

	cmd := press(m, runeKey('x'))

	assert.Nil(t, cmd)
	assert.False(t, m.quitting)
	assert.Empty(t, m.history)
}

func TestModel_ShiftedLetter(t *testing.T) {
	m, _ := newTestModel(t,
		config.BindingConfig{Key: "q", Action: config.ActionClear},
		config.BindingConfig{Key: "shift+q", Action: config.ActionQuit},
	)

	assert.Nil(t, press(m, runeKey('q')))
	assertQuit(t, press(m, runeKey('Q')))
}

func TestModel_PromptRunsCommand(t *testing.T) {
	m, dir := newTestModel(t)

	press(m, runeKey(':'))
	require.Equal(t, promptMode, m.mode)
	assert.Empty(t, m.input.Value(), "the key that opened the prompt is not typed")

	m.input.SetValue("env APP_ENV=test")
	press(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, keyMode, m.mode)
	assert.False(t, m.quitting)
	assert.Contains(t, historyText(m), "env APP_ENV=test")
	assert.Contains(t, historyText(m), "Wrote 1 variable")

	vars, err := envfile.New(dir, ".env").Read()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"APP_ENV": "test"}, vars)
}

func TestModel_PromptTyping(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, runeKey(':'))

	for _, r := range "help" {
		press(m, runeKey(r))
	}

	assert.Equal(t, "help", m.input.Value())
	assert.Equal(t, promptMode, m.mode)
}

func TestModel_PromptInvalidCommand(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, runeKey(':'))

	m.input.SetValue("foo a b")
	cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.False(t, m.quitting)
	assert.Equal(t, keyMode, m.mode)
	assert.Contains(t, historyText(m), "foo is not a valid command")
	assert.Contains(t, historyText(m), "Type 'help'")
}

func TestModel_PromptEmptyLine(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, runeKey(':'))

	press(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, keyMode, m.mode)
	assert.Empty(t, m.history)
}

func TestModel_PromptEscapeQuits(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, runeKey(':'))
	m.input.SetValue("env")

	assertQuit(t, press(m, tea.KeyMsg{Type: tea.KeyEsc}))
}

func TestModel_PromptCtrlCCancels(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, runeKey(':'))
	m.input.SetValue("env")

	cmd := press(m, tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.Nil(t, cmd)
	assert.False(t, m.quitting)
	assert.Equal(t, keyMode, m.mode)
	assert.Empty(t, m.history)
}

func TestModel_ExecBinding(t *testing.T) {
	m, dir := newTestModel(t)
	m.cfg.Env.Vars = map[string]string{"APP_ENV": "development"}
	m.apply(m.cfg)

	cmd := press(m, tea.KeyMsg{Type: tea.KeyCtrlE})

	assert.Nil(t, cmd)
	assert.Contains(t, historyText(m), "Wrote 1 variable")
	vars, err := envfile.New(dir, ".env").Read()
	require.NoError(t, err)
	assert.Equal(t, "development", vars["APP_ENV"])
}

func TestModel_HelpBinding(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, runeKey('?'))

	text := historyText(m)
	assert.Contains(t, text, "Key bindings")
	assert.Contains(t, text, "ctrl+e")
	assert.Contains(t, text, "exec: env")
	assert.Contains(t, text, "Commands")
	assert.Contains(t, text, "env [KEY=VALUE ...]")
	assert.Contains(t, text, "keys")
}

func TestModel_ClearBinding(t *testing.T) {
	m, _ := newTestModel(t)
	m.appendLines("one", "two")

	press(m, tea.KeyMsg{Type: tea.KeyCtrlL})

	assert.Empty(t, m.history)
}

func TestModel_KeysCommand(t *testing.T) {
	m, _ := newTestModel(t)

	m.run("keys")

	assert.Contains(t, historyText(m), "escape always quits")
}

func TestModel_Reload(t *testing.T) {
	m, _ := newTestModel(t)

	cfg := config.DefaultConfig()
	cfg.Bindings = []config.BindingConfig{{Key: "x", Action: config.ActionQuit}}
	press(m, ReloadMsg{Config: cfg})

	assert.Contains(t, historyText(m), "Reloaded 1 key bindings")
	assert.Nil(t, press(m, tea.KeyMsg{Type: tea.KeyCtrlC}), "old bindings are gone")
	assertQuit(t, press(m, runeKey('x')))
}

func TestModel_ReloadError(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, ReloadMsg{Err: errors.New(errors.ErrConfig, "bindings[0] has no key", "Give every binding a key")})

	assert.Contains(t, historyText(m), "bindings[0] has no key")
	assertQuit(t, press(m, tea.KeyMsg{Type: tea.KeyCtrlC}), "old bindings stay")
}

func TestModel_ReloadAppliesColorMode(t *testing.T) {
	m, _ := newTestModel(t)
	t.Cleanup(ui.DisableColors)

	cfg := config.DefaultConfig()
	cfg.Output.Color = ui.ColorModeAlways
	press(m, ReloadMsg{Config: cfg})
	assert.Equal(t, termenv.ANSI, lipgloss.ColorProfile())

	cfg = config.DefaultConfig()
	cfg.Output.Color = ui.ColorModeNever
	press(m, ReloadMsg{Config: cfg})
	assert.Equal(t, termenv.Ascii, lipgloss.ColorProfile())
}

func TestModel_ReloadMovesEnvFile(t *testing.T) {
	m, dir := newTestModel(t)

	cfg := config.DefaultConfig()
	cfg.Env.File = "config/.env.local"
	press(m, ReloadMsg{Config: cfg})

	assert.Equal(t, filepath.Join(dir, "config", ".env.local"), m.file.Path)
}

func TestModel_HistoryIsCapped(t *testing.T) {
	m, _ := newTestModel(t)

	for i := 0; i < maxHistory+10; i++ {
		m.appendLines("line")
	}

	assert.Len(t, m.history, maxHistory)
}

func TestModel_View(t *testing.T) {
	m, _ := newTestModel(t)
	m.appendLines("hello")

	view := m.View()
	assert.Contains(t, view, "hello")
	assert.Contains(t, view, ": prompt")
	assert.Contains(t, view, "? help")
	assert.Contains(t, view, "esc quit")

	press(m, runeKey(':'))
	assert.Contains(t, m.View(), "[?]")
}

func TestModel_ViewHeader(t *testing.T) {
	m, _ := newTestModel(t)
	m.header = ui.RenderHeader(ui.HeaderInfo{Version: "v1.0.0", Source: "defaults"})

	assert.True(t, strings.HasPrefix(m.View(), "keyline v1.0.0\n"))
}

func TestModel_WindowSize(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Equal(t, 80, m.width)
	assert.Greater(t, m.input.Width, 0)
}
