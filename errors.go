package ssdanchors

import (
	"fmt"
)

// ConfigError indicates a request for a preset name that is not registered
type ConfigError struct {
	// Preset is the unknown preset name that was requested
	Preset string
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	return fmt.Sprintf("no such preset: %s", e.Preset)
}

// DomainError indicates input values outside the domain of a computation,
// such as a box with non-positive extent fed to the target encoder or a
// rectangle whose maximum lies below its minimum
type DomainError struct {
	// Op names the operation that rejected the input
	Op string
	// Reason describes why the input is invalid
	Reason string
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}
