package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidInteger is returned when a task-count entry does not start with a decimal integer.
	ErrInvalidInteger = zerr.New("invalid integer value")

	// ErrInvalidRepeat is returned when a "(xN)" repeat marker is malformed or N is not positive.
	ErrInvalidRepeat = zerr.New("invalid repeat count")

	// ErrUnexpectedCharacter is returned when a task-count entry is followed by an unexpected character.
	ErrUnexpectedCharacter = zerr.New("unexpected character")

	// ErrMalformedDelimiter is returned when a "%[...]" token in a line format is unterminated or
	// contains characters outside the delimiter class.
	ErrMalformedDelimiter = zerr.New("invalid delimiter in format specification")

	// ErrInvalidHostExpression is returned when a host-list expression cannot be parsed.
	ErrInvalidHostExpression = zerr.New("invalid host expression")

	// ErrHostListClosed is returned when pushing into a host list that has been released.
	ErrHostListClosed = zerr.New("host list already released")

	// ErrMissingEnv is returned when a required environment variable is unset or empty.
	ErrMissingEnv = zerr.New("required variable missing from environment")

	// ErrInvalidEnvName is returned when an empty variable name is given to --include-env.
	ErrInvalidEnvName = zerr.New("invalid variable name provided with -i/--include-env option")

	// ErrInvalidNodeListPath is returned when an empty path is given to --nodelist.
	ErrInvalidNodeListPath = zerr.New("invalid file path provided with -l/--nodelist option")

	// ErrNodeListOpen is returned when a node-list file cannot be opened.
	ErrNodeListOpen = zerr.New("unable to open nodelist")

	// ErrNodeListRead is returned when a node-list file cannot be read to the end.
	ErrNodeListRead = zerr.New("unable to read nodelist")

	// ErrConfigRead is returned when the config file cannot be read.
	ErrConfigRead = zerr.New("failed to read config file")

	// ErrConfigParse is returned when the config file cannot be parsed.
	ErrConfigParse = zerr.New("failed to parse config file")

	// ErrMachinefileFailed is returned when machine file generation halts on a parse error.
	ErrMachinefileFailed = zerr.New("machine file generation failed")

	// ErrUnknownMode is returned when a run is requested in a mode snodelist does not implement.
	ErrUnknownMode = zerr.New("unknown mode")

	// ErrUnknownSourceKind is returned when a host-list source has an unsupported kind.
	ErrUnknownSourceKind = zerr.New("unknown host-list source kind")

	// ErrWriteFailed is returned when output cannot be written.
	ErrWriteFailed = zerr.New("failed to write output")
)
