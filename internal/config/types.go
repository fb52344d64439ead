package config

// CurrentConfigVersion is the schema version for the config file.
const CurrentConfigVersion = 1

// Binding action names.
const (
	ActionPrompt = "prompt" // open the line-command prompt
	ActionExec   = "exec"   // run Line as a line command
	ActionHelp   = "help"   // list bindings and commands
	ActionClear  = "clear"  // clear the session output
	ActionQuit   = "quit"   // leave the session
)

// Actions lists every valid binding action.
var Actions = []string{ActionPrompt, ActionExec, ActionHelp, ActionClear, ActionQuit}

// Config represents the complete .keyline.yaml configuration file.
type Config struct {
	Version  int             `yaml:"version" mapstructure:"version"`
	Prompt   PromptConfig    `yaml:"prompt" mapstructure:"prompt"`
	Bindings []BindingConfig `yaml:"bindings" mapstructure:"bindings"`
	Env      EnvConfig       `yaml:"env" mapstructure:"env"`
	Output   OutputConfig    `yaml:"output" mapstructure:"output"`
}

// PromptConfig controls the line-command prompt.
type PromptConfig struct {
	// Character is the marker drawn before the input, "[?]" by default.
	Character string `yaml:"character" mapstructure:"character"`

	// Text is optional label shown after the marker.
	Text string `yaml:"text,omitempty" mapstructure:"text"`
}

// BindingConfig binds a key descriptor to an action. Order matters: the
// first binding that matches a keystroke wins.
type BindingConfig struct {
	// Key is a descriptor such as "ctrl+c" or "shift + tab".
	Key string `yaml:"key" mapstructure:"key"`

	// Action is one of Actions.
	Action string `yaml:"action" mapstructure:"action"`

	// Line is the command line run by the exec action.
	Line string `yaml:"line,omitempty" mapstructure:"line"`
}

// EnvConfig controls the env command.
type EnvConfig struct {
	// File is the env file path, relative to the config file's directory.
	File string `yaml:"file" mapstructure:"file"`

	// Vars are written by every env invocation, before command-line overrides.
	Vars map[string]string `yaml:"vars" mapstructure:"vars"`
}

// OutputConfig controls terminal output formatting.
type OutputConfig struct {
	// Color mode: "auto", "always", or "never".
	Color string `yaml:"color" mapstructure:"color"`
}

// DefaultBindings returns the bindings used when the config defines none.
func DefaultBindings() []BindingConfig {
	return []BindingConfig{
		{Key: ":", Action: ActionPrompt},
		{Key: "?", Action: ActionHelp},
		{Key: "ctrl+e", Action: ActionExec, Line: "env"},
		{Key: "ctrl+l", Action: ActionClear},
		{Key: "ctrl+c", Action: ActionQuit},
	}
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Prompt: PromptConfig{
			Character: "[?]",
		},
		Bindings: DefaultBindings(),
		Env: EnvConfig{
			File: ".env",
			Vars: map[string]string{},
		},
		Output: OutputConfig{
			Color: "auto",
		},
	}
}
