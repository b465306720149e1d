// Marquee - Movie Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package models

import (
	"strings"
	"sync"
)

// Director is a movie director identified by name.
type Director struct {
	name string
}

// NewDirector returns a Director with a trimmed name.
// Empty or whitespace-only input produces a Director with no name.
func NewDirector(name string) *Director {
	return &Director{name: strings.TrimSpace(name)}
}

// Name returns the director's name, or "" when unset.
func (d *Director) Name() string {
	if d == nil {
		return ""
	}
	return d.name
}

// Valid reports whether the director has a name.
func (d *Director) Valid() bool { return d.Name() != "" }

// Equal compares directors by name.
func (d *Director) Equal(other *Director) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.name == other.name
}

// Less orders directors by name.
func (d *Director) Less(other *Director) bool { return d.Name() < other.Name() }

func (d *Director) String() string { return "<Director " + d.Name() + ">" }

// Genre is a movie genre identified by name.
type Genre struct {
	name string
}

// NewGenre returns a Genre with a trimmed name.
func NewGenre(name string) *Genre {
	return &Genre{name: strings.TrimSpace(name)}
}

// Name returns the genre name, or "" when unset.
func (g *Genre) Name() string {
	if g == nil {
		return ""
	}
	return g.name
}

// Valid reports whether the genre has a name.
func (g *Genre) Valid() bool { return g.Name() != "" }

// Equal compares genres by name.
func (g *Genre) Equal(other *Genre) bool {
	if g == nil || other == nil {
		return g == other
	}
	return g.name == other.name
}

// Less orders genres by name.
func (g *Genre) Less(other *Genre) bool { return g.Name() < other.Name() }

func (g *Genre) String() string { return "<Genre " + g.Name() + ">" }

// Actor is a performer identified by name.
//
// Colleagues form a directed relation: a.AddColleague(b) records that a
// worked with b, and says nothing about b's list. Register both directions
// explicitly when the relation should be symmetric.
type Actor struct {
	name string

	mu         sync.RWMutex
	colleagues []*Actor
}

// NewActor returns an Actor with a trimmed name.
func NewActor(name string) *Actor {
	return &Actor{name: strings.TrimSpace(name)}
}

// Name returns the actor's name, or "" when unset.
func (a *Actor) Name() string {
	if a == nil {
		return ""
	}
	return a.name
}

// Valid reports whether the actor has a name.
func (a *Actor) Valid() bool { return a.Name() != "" }

// Equal compares actors by name.
func (a *Actor) Equal(other *Actor) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.name == other.name
}

// Less orders actors by name.
func (a *Actor) Less(other *Actor) bool { return a.Name() < other.Name() }

func (a *Actor) String() string { return "<Actor " + a.Name() + ">" }

// AddColleague appends colleague to this actor's colleague list.
// The list is append-only; nil is ignored.
func (a *Actor) AddColleague(colleague *Actor) {
	if colleague == nil {
		return
	}
	a.mu.Lock()
	a.colleagues = append(a.colleagues, colleague)
	a.mu.Unlock()
}

// WorkedWith reports whether colleague is in this actor's colleague list.
func (a *Actor) WorkedWith(colleague *Actor) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	for _, c := range a.colleagues {
		if c.Equal(colleague) {
			return true
		}
	}
	return false
}

// Colleagues returns a copy of the colleague list in insertion order.
func (a *Actor) Colleagues() []*Actor {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]*Actor, len(a.colleagues))
	copy(out, a.colleagues)
	return out
}
