// Package glsl expands #include directives in GLSL sources.
package glsl

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// ErrIncludeCycle is returned when a file includes itself, directly or not.
var ErrIncludeCycle = errors.New("include cycle")

const directive = "#include"

// Load reads name from fsys and replaces every `#include "file"` line with
// the expanded contents of file. Include paths resolve against the directory
// of the including file.
func Load(fsys fs.FS, name string) (string, error) {
	var sb strings.Builder
	if err := expand(fsys, path.Clean(name), nil, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func expand(fsys fs.FS, name string, stack []string, out *strings.Builder) error {
	for _, s := range stack {
		if s == name {
			return fmt.Errorf("%w: %s -> %s", ErrIncludeCycle, strings.Join(stack, " -> "), name)
		}
	}
	stack = append(stack, name)

	src, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}

	sc := bufio.NewScanner(strings.NewReader(string(src)))
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		target, ok, err := parseInclude(text)
		if err != nil {
			return fmt.Errorf("%s:%d: %w", name, line, err)
		}
		if !ok {
			out.WriteString(text)
			out.WriteByte('\n')
			continue
		}
		if err := expand(fsys, path.Join(path.Dir(name), target), stack, out); err != nil {
			return err
		}
	}
	return sc.Err()
}

// parseInclude reports whether line is an include directive and returns its target.
func parseInclude(line string) (string, bool, error) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, directive) {
		return "", false, nil
	}
	rest := strings.TrimSpace(trimmed[len(directive):])
	if len(rest) < 2 || rest[0] != '"' {
		return "", false, fmt.Errorf("malformed include %q", trimmed)
	}
	end := strings.IndexByte(rest[1:], '"')
	if end <= 0 {
		return "", false, fmt.Errorf("malformed include %q", trimmed)
	}
	return rest[1 : end+1], true, nil
}
