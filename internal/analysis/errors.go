package analysis

import "errors"

var (
	// ErrInvalidDocument marks an undecodable or unparsable upload.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrNoSkills marks a resume with no recognizable vocabulary terms.
	// Analysis cannot proceed without at least one skill; no partial
	// result is produced.
	ErrNoSkills = errors.New("no skills found")
)
