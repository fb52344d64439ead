package session

import "github.com/rileyhilliard/keyline/internal/config"

// ReloadMsg carries a freshly loaded config into the session. When Err is
// set the session keeps its current bindings and shows the error.
type ReloadMsg struct {
	Config *config.Config
	Err    error
}
