package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess  = "✓" // Operation completed
	SymbolFail     = "✗" // Operation failed
	SymbolWarning  = "!" // Needs attention
	SymbolShadowed = "⊘" // Binding can never fire
	SymbolArrow    = "→" // Key to action
)
