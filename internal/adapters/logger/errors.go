package logger

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"go.trai.ch/wcw/internal/ui/output"
)

// ErrorEntry is one level of an error chain.
type ErrorEntry = output.ErrorEntry

func collectErrorEntries(err error) []ErrorEntry {
	return output.ErrorChain(err)
}

// formatErrorEntries renders entries as an "Error:" line followed by an
// indented "Caused by:" list.
func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		var indent string
		if i == 0 {
			lines = append(lines, "Error: "+msgLines[0])
			indent = "       "
		} else {
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			lines = append(lines, "    → "+msgLines[0])
			indent = "      "
		}

		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}
		for _, key := range slices.Sorted(maps.Keys(entry.Metadata)) {
			lines = append(lines, fmt.Sprintf("%s%s: %v", indent, key, entry.Metadata[key]))
		}
	}

	return strings.Join(lines, "\n")
}
