package config

import (
	"fmt"
	"unicode/utf8"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if utf8.RuneCountInString(c.Delimiter) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", c.Delimiter)
	}
	switch c.Output {
	case "auto", "text", "json":
	default:
		return fmt.Errorf("output must be one of auto, text, json; got %q", c.Output)
	}
	return nil
}

// DelimiterRune returns the configured delimiter as a rune.
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}
