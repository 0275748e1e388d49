// Package importer turns raw clipboard text from the statistics sites into
// candidate player records. Parsing is best effort: malformed lines and
// blocks are skipped, never fatal, because the input is noisy paste data.
package importer

import (
	"strings"

	"github.com/mkrogh/superliga-companion/internal/domain/player"
)

// Parse detects the paste format from the first non-empty line and runs the
// matching parser. A line containing the field delimiter selects the
// delimited parser, anything else the block parser.
func Parse(raw string) []player.Candidate {
	lines := nonEmptyLines(raw)
	if len(lines) == 0 {
		return nil
	}

	if strings.Contains(lines[0], "|") {
		return parseDelimited(lines)
	}
	return parseBlocks(lines)
}

func nonEmptyLines(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}
