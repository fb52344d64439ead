package keys

// Action is the callback bound to a key combination.
type Action func()

// Binding is one registration request: a descriptor string and its action.
// A slice of bindings is the ordered mapping a Registry is built from.
type Binding struct {
	Descriptor string
	Action     Action
}

// Entry is a parsed binding held by a Registry.
type Entry struct {
	// Source is the descriptor string as registered.
	Source     string
	Descriptor Descriptor
	Action     Action
}

// Registry holds parsed bindings in registration order.
// It is immutable once built.
type Registry struct {
	entries []Entry
}

// NewRegistry parses every binding in order. Bindings are neither
// deduplicated nor checked for collisions.
func NewRegistry(bindings []Binding) *Registry {
	entries := make([]Entry, 0, len(bindings))
	for _, b := range bindings {
		entries = append(entries, Entry{
			Source:     b.Descriptor,
			Descriptor: Parse(b.Descriptor),
			Action:     b.Action,
		})
	}
	return &Registry{entries: entries}
}

// Lookup returns the first entry, in registration order, whose descriptor
// equals d.
func (r *Registry) Lookup(d Descriptor) (Entry, bool) {
	if r == nil {
		return Entry{}, false
	}
	for _, e := range r.entries {
		if e.Descriptor == d {
			return e, true
		}
	}
	return Entry{}, false
}

// Entries returns a copy of the entries in registration order.
func (r *Registry) Entries() []Entry {
	if r == nil {
		return nil
	}
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entries)
}

// Shadowed returns the indices of entries that can never fire because an
// earlier entry normalizes to the same descriptor.
func (r *Registry) Shadowed() []int {
	if r == nil {
		return nil
	}
	seen := make(map[Descriptor]bool, len(r.entries))
	var shadowed []int
	for i, e := range r.entries {
		if seen[e.Descriptor] {
			shadowed = append(shadowed, i)
			continue
		}
		seen[e.Descriptor] = true
	}
	return shadowed
}
