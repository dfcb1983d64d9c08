package verilog

import (
	"sync/atomic"
)

// langState pairs an active standard with its flattened symbol table.
// States are immutable; SetStandard swaps in a new one.
type langState struct {
	std      Standard
	keywords map[string]Standard
}

// Language holds an active language standard and answers keyword
// classification queries against it. The zero value is not usable;
// construct with New.
//
// Reads are lock-free. SetStandard replaces the state atomically, so a
// concurrent reader sees either the old or the new standard, never a
// mix. Concurrent writers must serialize externally.
type Language struct {
	state atomic.Pointer[langState]
}

// New returns a Language with the given active standard.
func New(std Standard) *Language {
	l := &Language{}
	l.SetStandard(std)
	return l
}

// Standard returns the active standard.
func (l *Language) Standard() Standard {
	return l.state.Load().std
}

// SetStandard sets the active standard. Out-of-range values select the
// newest IEEE 1800 standard.
func (l *Language) SetStandard(std Standard) {
	if std >= numStandards {
		std = Maximum()
	}
	l.state.Store(&langState{std: std, keywords: flattened[std]})
}

// SetStandardName parses name and sets the active standard. On an
// unknown name the active standard is left unchanged and a
// *BadStandardError is returned; otherwise the newly active standard
// is returned.
func (l *Language) SetStandardName(name string) (Standard, error) {
	std, err := ParseStandard(name)
	if err != nil {
		return l.Standard(), err
	}
	l.SetStandard(std)
	return std, nil
}

// IsKeyword reports whether sym is reserved under the active standard,
// returning the earliest standard that reserved it.
func (l *Language) IsKeyword(sym string) (Standard, bool) {
	std, ok := l.state.Load().keywords[sym]
	return std, ok
}

// Keywords returns the flattened symbol table for the active standard.
// The returned map is shared and must not be modified.
func (l *Language) Keywords() map[string]Standard {
	return l.state.Load().keywords
}

// defaultLanguage backs the package-level convenience functions. It
// starts at the newest supported IEEE 1800 standard.
var defaultLanguage = New(Maximum())

// SetStandard parses name and sets the process-wide active standard.
// On an unknown name the active standard is left unchanged and a
// *BadStandardError is returned.
func SetStandard(name string) (Standard, error) {
	return defaultLanguage.SetStandardName(name)
}

// ActiveStandard returns the process-wide active standard.
func ActiveStandard() Standard {
	return defaultLanguage.Standard()
}
