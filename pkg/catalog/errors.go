package catalog

import "errors"

var (
	// ErrInvalidInput is returned by the translator for values that are
	// neither strings, string slices, nor message carriers.
	ErrInvalidInput = errors.New("catalog: value is not a translatable message")

	// ErrFailedToParseJSON wraps JSON translation source failures.
	ErrFailedToParseJSON = errors.New("catalog: failed to parse JSON translations")

	// ErrFailedToParseYAML wraps YAML translation source failures.
	ErrFailedToParseYAML = errors.New("catalog: failed to parse YAML translations")

	// ErrInvalidStructure indicates a translation source whose shape is not
	// locale -> key -> string.
	ErrInvalidStructure = errors.New("catalog: invalid translation structure")

	// ErrFailedToReadFile wraps filesystem read failures in LoadFS.
	ErrFailedToReadFile = errors.New("catalog: failed to read translation file")
)
