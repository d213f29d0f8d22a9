package syntax

import (
	"fmt"
	"strconv"
	"strings"
)

type ShapeEntry struct {
	Kind string
	Dims []float64
}

// ParseShapeList parses entries like "rect=6x8, circle=5" in the order they were given
func ParseShapeList(input string, separator string) ([]ShapeEntry, error) {
	if separator == "" {
		separator = "\n"
	}

	var result []ShapeEntry
	for _, line := range strings.Split(input, separator) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		// remove inline comment
		if idx := strings.Index(line, "#"); idx != -1 {
			line = strings.TrimSpace(line[:idx])
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("missing dimensions in %q, expected kind=AxB", line)
		}
		kind := strings.ToLower(strings.TrimSpace(parts[0]))
		if kind == "" {
			return nil, fmt.Errorf("missing shape kind in %q", line)
		}

		var dims []float64
		for _, raw := range strings.Split(strings.ToLower(parts[1]), "x") {
			raw = strings.TrimSpace(raw)
			dim, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid dimension %q in %q", raw, line)
			}
			dims = append(dims, dim)
		}

		result = append(result, ShapeEntry{Kind: kind, Dims: dims})
	}
	return result, nil
}
