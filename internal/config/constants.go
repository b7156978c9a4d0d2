// Package config holds small, fixed constants shared across the analyser,
// the fixture loader, and the CLI.
package config

// Version is the current semantic-analyser core version.
var Version = "0.1.0"

// FixtureFileExt is the conventional extension for YAML program fixtures.
// The CLI does not check it; it reads whatever path it is given.
const FixtureFileExt = ".yaml"

// IsTestMode indicates the process is running under `go test`. Nothing in
// this repository sets or reads it, so it stays false.
var IsTestMode = false
