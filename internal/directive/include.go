package directive

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// include loads the content of a file into the prompt at the directive's
// position. Nested directives inside the included file are resolved too, and
// each file may be included at most once per Run so include cycles terminate
// with an inline error instead of recursing forever.
func (r *Registry) include(ctx context.Context, args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("include requires a file path")
	}
	path := args[0]
	if !filepath.IsAbs(path) {
		path = filepath.Join(r.root, path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("Could not include '%s'", args[0])
	}
	if r.included[abs] {
		return "", fmt.Errorf("File '%s' already included", args[0])
	}
	r.included[abs] = true

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("Could not include '%s'", args[0])
	}
	text := strings.TrimRight(string(content), "\n")
	return r.resolveText(ctx, text), nil
}
