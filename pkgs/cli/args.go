package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/keskad/solid/pkgs/syntax"
)

// parseArgsAsShapes joins the arguments into one shape list. A trailing "-"
// appends shapes read from stdin, one per line.
func parseArgsAsShapes(args []string, stdin io.Reader) ([]syntax.ShapeEntry, error) {
	var fromStdin []string
	if len(args) >= 1 && args[len(args)-1] == "-" {
		args = args[:len(args)-1]

		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read from stdin: %v", err)
		}
		fromStdin = strings.Split(string(data), "\n")
	}

	var joined []string
	for _, a := range args {
		if strings.TrimSpace(a) == "" {
			continue
		}
		joined = append(joined, a)
	}
	joined = append(joined, fromStdin...)

	entries, err := syntax.ParseShapeList(strings.Join(joined, ","), ",")
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, errors.New("no shape argument provided")
	}
	return entries, nil
}
