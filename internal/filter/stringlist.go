package filter

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// StringList is an ordered list of non-empty, trimmed match strings.
//
// Call sites hand string filters around in two shapes: an already-split
// list, or a raw newline-delimited block from a text area or flag value.
// StringList normalizes both at the boundary so everything past the
// config/flag layer works with one canonical form. A nil StringList means
// "unset" (inherit from the next filter layer); a non-nil empty list means
// "explicitly no filters".
type StringList []string

// SplitLines normalizes a newline-delimited block into a StringList.
// Entries are trimmed, empties dropped, order preserved, no deduplication.
// The result is always non-nil so an all-whitespace block still counts as
// an explicitly-set empty list.
func SplitLines(blob string) StringList {
	list := StringList{}
	for _, line := range strings.Split(blob, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	return list
}

// Normalize re-applies trimming and empty-drop to an already-split list
func Normalize(items []string) StringList {
	list := StringList{}
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	return list
}

// UnmarshalYAML accepts either a YAML sequence of strings or a single
// multi-line scalar block, normalizing both forms.
func (l *StringList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var blob string
		if err := value.Decode(&blob); err != nil {
			return fmt.Errorf("decoding string filter block: %w", err)
		}
		*l = SplitLines(blob)
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := value.Decode(&items); err != nil {
			return fmt.Errorf("decoding string filter list: %w", err)
		}
		*l = Normalize(items)
		return nil
	default:
		return fmt.Errorf("string filters must be a list or a multi-line string")
	}
}
