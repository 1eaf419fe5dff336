// Package options provides shared utilities for option validation across packages.
package options

import "github.com/erraggy/jsonschemadoc/schemaerrors"

// ValidateSingleInputSource ensures exactly one input source is specified.
// sources is a variadic list of booleans indicating whether each source is set.
// The returned *schemaerrors.ConfigError names option and carries the number
// of sources found.
func ValidateSingleInputSource(option, noSourceMsg, multiSourceMsg string, sources ...bool) error {
	sourceCount := 0
	for _, hasSource := range sources {
		if hasSource {
			sourceCount++
		}
	}

	switch {
	case sourceCount == 0:
		return &schemaerrors.ConfigError{Option: option, Value: sourceCount, Message: noSourceMsg}
	case sourceCount > 1:
		return &schemaerrors.ConfigError{Option: option, Value: sourceCount, Message: multiSourceMsg}
	}
	return nil
}
