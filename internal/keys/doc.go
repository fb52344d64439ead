// Package keys matches raw terminal keystrokes against key-combo bindings.
//
// A binding pairs a human-readable descriptor such as "ctrl+c" or
// "shift + tab" with an Action. Descriptors are parsed once into a
// Descriptor (name plus ctrl/shift/meta flags) when the Registry is built,
// and the Registry never changes afterwards.
//
// # Matching
//
// The Dispatcher turns each RawEvent into a candidate Descriptor and scans
// the registry in insertion order. The first entry whose four fields all
// equal the candidate's fires; later entries are not consulted, so a second
// binding that normalizes to the same Descriptor is unreachable.
//
// # Reserved keys
//
// "escape" is never looked up. Dispatch returns Terminate for it regardless
// of what the registry holds; callers decide how to shut down.
package keys
