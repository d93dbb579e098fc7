package sequence

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadCodes reads one code per line from r. Surrounding whitespace is
// trimmed and blank lines are skipped; codes are not validated here.
func ReadCodes(r io.Reader) ([]string, error) {
	var codes []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			codes = append(codes, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("sequence: reading codes: %w", err)
	}
	return codes, nil
}
