// Package ui provides the terminal styling shared by keyline's commands and
// its interactive session.
//
// Colors are ANSI codes rendered through Lip Gloss:
//
//	ColorSuccess   (green)  - Successful operations
//	ColorError     (red)    - Failures and errors
//	ColorWarning   (yellow) - Shadowed bindings
//	ColorInfo      (cyan)   - Prompt marker and key names
//	ColorMuted     (gray)   - Hints and canonical key forms
//
// ApplyColorMode honors output.color; DisableColors is used for --no-color.
package ui
