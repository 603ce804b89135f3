package config

import _ "embed"

// defaultTemplate is the commented configuration file shipped with the tool.
// It documents every supported key together with its built-in default, and
// is what `lsg init` writes out for the user to edit.
//
//go:embed default.yaml
var defaultTemplate string

// DefaultTemplate returns the commented default configuration document.
func DefaultTemplate() string {
	return defaultTemplate
}
