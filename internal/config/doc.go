// Package config loads twibbon.json, the optional project configuration.
//
// A missing file is not an error: Load returns the defaults so the CLI works
// out of the box. Flags override loaded values in cmd/twibbon.
package config
