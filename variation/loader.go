// File: loader.go
// Role: parse the two-column whitespace-separated variation table format
// of spec §4.2/§6.
//
// Grounded on soniakeys-graph/io/readtext.go's line-oriented bufio.Scanner
// loader idiom: no CSV/regex dependency, just tokenize and parse.

package variation

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
)

// Load reads the variation table at path. Any row whose second column
// fails integer parsing is recorded as Unassigned for that signature's
// first column; unrecognized/blank lines are skipped entirely. Load fails
// fast (ErrFileMissing) only if path cannot be opened — a malformed row
// is not a load failure per spec §4.2/§7.
func Load(path string, key Key) (*Table, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("variation: Load %q: %w: %v", path, ErrFileMissing, err)
	}
	defer f.Close()

	classes := make(map[int]int)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		fields := splitFields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		signature, err := strconv.Atoi(fields[0])
		if err != nil {
			continue
		}
		class, err := strconv.Atoi(fields[1])
		if err != nil {
			classes[signature] = Unassigned
			continue
		}
		classes[signature] = class
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("variation: Load %q: %w", path, err)
	}

	return &Table{key: key, classes: classes}, nil
}

// splitFields is a minimal whitespace tokenizer (space/tab), avoiding a
// regexp dependency for a two-column format.
func splitFields(line string) []string {
	var fields []string
	start := -1
	for i, r := range line {
		if r == ' ' || r == '\t' || r == '\r' {
			if start >= 0 {
				fields = append(fields, line[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		fields = append(fields, line[start:])
	}
	return fields
}
