package domain

import (
	"fmt"
	"regexp"
)

// idPattern restricts identifiers to characters that are safe as file paths
// and database keys. Slashes are allowed so prompts can be organized in
// directories, e.g. "agents/researcher".
var idPattern = regexp.MustCompile(`^[a-zA-Z0-9\-_/]+$`)

// Prompt is one stored template: raw text as written (comments, directives
// and the __END__ section included) plus the parameter histories recorded for
// its keywords. RawText is what gets persisted; rendered output never is.
type Prompt struct {
	ID      string
	RawText string
	Params  *ParameterStore
}

// NewPrompt validates id and returns an empty prompt document. The id check
// happens here, before any storage I/O.
func NewPrompt(id string) (*Prompt, error) {
	if err := ValidateID(id); err != nil {
		return nil, err
	}
	return &Prompt{
		ID:     id,
		Params: NewParameterStore(),
	}, nil
}

// ValidateID reports whether id is usable as a prompt identifier.
func ValidateID(id string) error {
	if id == "" {
		return InvalidArgumentError{Reason: "prompt id must not be empty"}
	}
	if !idPattern.MatchString(id) {
		return InvalidArgumentError{Reason: fmt.Sprintf("prompt id %q contains invalid characters (allowed: letters, digits, -, _, /)", id)}
	}
	return nil
}
