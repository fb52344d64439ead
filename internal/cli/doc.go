// Package cli implements the keyline command-line interface.
//
// Running keyline with no subcommand starts the interactive session: every
// keystroke is matched against the configured bindings, the prompt binding
// opens a "[?]" line editor for line commands, and escape quits.
//
//	keyline                     - Interactive session
//	keyline exec <line...>      - Run one line command and exit
//	keyline keys                - List bindings in match order
//	keyline keys parse <key...> - Show how descriptors are parsed
//	keyline keys add <key> <action> [line...]
//	keyline init                - Create .keyline.yaml
//	keyline doctor              - Diagnose config, env file and terminal
//	keyline version             - Print version information
//
// # Flag Handling
//
// Global flags (--config, --verbose, --no-color) are defined on the root
// command and available to all subcommands.
package cli
