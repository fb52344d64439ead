package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/rileyhilliard/keyline/internal/config"
	"github.com/rileyhilliard/keyline/internal/errors"
	"github.com/rileyhilliard/keyline/internal/keys"
	"github.com/rileyhilliard/keyline/internal/session"
	"github.com/rileyhilliard/keyline/internal/ui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var keysYAML bool

// keysCmd lists the configured bindings
var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List key bindings in match order",
	Long: `List the configured key bindings in the order they are matched.

Each binding shows the descriptor as written, the key combination it
matches, and its action. A binding that normalizes to the same combination
as an earlier one can never fire and is marked shadowed.

Examples:
  keyline keys
  keyline keys --yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		return listKeys(cmd.OutOrStdout(), cfg.Bindings, keysYAML)
	},
}

// keysParseCmd shows how descriptors are parsed
var keysParseCmd = &cobra.Command{
	Use:   "parse <descriptor>...",
	Short: "Show how key descriptors are parsed",
	Long: `Parse each descriptor and print the key name and modifier flags it
matches. Useful for checking a binding before adding it.

Examples:
  keyline keys parse ctrl+c "shift + tab" meta+x`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return parseKeys(cmd.OutOrStdout(), args)
	},
}

// keysAddCmd appends a binding to the config file
var keysAddCmd = &cobra.Command{
	Use:   "add <key> <action> [line...]",
	Short: "Add a key binding to the config file",
	Long: `Append a binding to .keyline.yaml, keeping existing comments.
Actions: prompt, exec, help, clear, quit. exec takes the line to run.

Examples:
  keyline keys add ctrl+t exec env APP_ENV=test
  keyline keys add f1 help`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.Find(cfgFile)
		if err != nil {
			return err
		}
		return addKey(cmd.OutOrStdout(), path, args)
	},
}

func init() {
	keysCmd.Flags().BoolVar(&keysYAML, "yaml", false, "print bindings as YAML")
	keysAddCmd.Flags().SetInterspersed(false)
	keysCmd.AddCommand(keysParseCmd, keysAddCmd)
	rootCmd.AddCommand(keysCmd)
}

// keyListing is the --yaml shape of one binding.
type keyListing struct {
	Key      string `yaml:"key"`
	Matches  string `yaml:"matches"`
	Action   string `yaml:"action"`
	Shadowed bool   `yaml:"shadowed,omitempty"`
}

func listKeys(w io.Writer, bindings []config.BindingConfig, asYAML bool) error {
	rows := session.Rows(bindings)

	if !asYAML {
		fmt.Fprint(w, ui.RenderBindingTable(rows))
		return nil
	}

	listing := make([]keyListing, len(rows))
	for i, row := range rows {
		listing[i] = keyListing{
			Key:      row.Key,
			Matches:  row.Canonical,
			Action:   row.Action,
			Shadowed: row.Shadowed,
		}
	}
	data, err := yaml.Marshal(listing)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to encode bindings",
			"This shouldn't happen - please report this bug")
	}
	_, err = w.Write(data)
	return err
}

func parseKeys(w io.Writer, descriptors []string) error {
	columns := []ui.TableColumn{
		{Title: "DESCRIPTOR", Width: 20},
		{Title: "NAME", Width: 12},
		{Title: "CTRL", Width: 6},
		{Title: "SHIFT", Width: 6},
		{Title: "META", Width: 6},
		{Title: "MATCHES", Width: 20},
	}

	rows := make([][]string, len(descriptors))
	for i, s := range descriptors {
		d := keys.Parse(s)
		rows[i] = []string{
			fmt.Sprintf("%q", s),
			fmt.Sprintf("%q", d.Name),
			yesNo(d.Ctrl),
			yesNo(d.Shift),
			yesNo(d.Meta),
			d.String(),
		}
	}

	fmt.Fprintln(w, ui.RenderSimpleTable(columns, rows))
	return nil
}

func addKey(w io.Writer, path string, args []string) error {
	if path == "" {
		return errors.New(errors.ErrConfig,
			"No config file to add the binding to",
			"Run 'keyline init' to create one")
	}

	b := config.BindingConfig{
		Key:    args[0],
		Action: args[1],
		Line:   strings.Join(args[2:], " "),
	}
	if b.Action != config.ActionExec && b.Line != "" {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("The %s action doesn't take a command line", b.Action),
			"Only exec bindings run a line, e.g. keyline keys add ctrl+t exec env")
	}

	cfg := config.DefaultConfig()
	cfg.Bindings = []config.BindingConfig{b}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	if err := config.AddBinding(path, b); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to add the binding to "+path,
			"Check that the file is valid YAML and writable")
	}

	fmt.Fprintf(w, "%s Added %s %s %s\n",
		ui.SymbolSuccess, keys.Parse(b.Key), ui.SymbolArrow, session.Describe(b))
	return nil
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "-"
}
