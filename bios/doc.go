// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package bios holds the staff directory shown on the /staff pages.

	dir := bios.Default()            // built-in entries
	dir, err := bios.LoadFile(path)  // YAML: name: bio

	dir.Names()          // sorted
	dir.Lookup("kirk")   // bio, ok

A Directory is built once at startup and never changes, so it is safe to
share between requests.
*/
package bios
