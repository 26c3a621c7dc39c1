// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package bios

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Directory maps a staff member's short name to their bio.
// It cannot be changed after construction.
type Directory struct {
	entries map[string]string
	names   []string
}

// New copies entries into a Directory
func New(entries map[string]string) *Directory {
	d := &Directory{
		entries: make(map[string]string, len(entries)),
		names:   make([]string, 0, len(entries)),
	}
	for name, bio := range entries {
		d.entries[name] = bio
		d.names = append(d.names, name)
	}
	sort.Strings(d.names)
	return d
}

// Default returns the built-in staff directory
func Default() *Directory {
	return New(map[string]string{
		"kirk":    "My name is James Kirk and I love snakes.",
		"picard":  "My name is Jean-Luc Picard and I'm mad for cats.",
		"sisko":   "My name is Benjamin Sisko and I'm all about the budgies.",
		"janeway": "My name is Kathryn Janeway and I want to hug every hamster",
		"archer":  "My name is Jonathan Archer and beagles are my thing.",
	})
}

// LoadFile reads a YAML mapping of name to bio
func LoadFile(path string) (*Directory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bios file: %w", err)
	}

	var entries map[string]string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse bios file %s: %w", path, err)
	}
	if len(entries) == 0 {
		return nil, errors.New("bios file " + path + " has no entries")
	}

	return New(entries), nil
}

// Names returns all names in lexicographic order
func (d *Directory) Names() []string {
	out := make([]string, len(d.names))
	copy(out, d.names)
	return out
}

// Lookup returns the bio for name. A miss is not an error.
func (d *Directory) Lookup(name string) (string, bool) {
	bio, ok := d.entries[name]
	return bio, ok
}

// Len returns the number of entries
func (d *Directory) Len() int {
	return len(d.names)
}
