package point

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads one "x,y,z" record per line from r and returns the points in
// input order. Blank lines are skipped; spaces around each field are ignored.
//
// The first malformed record stops parsing and is returned as *ParseError.
// Read failures from r are returned wrapped.
func Parse(r io.Reader) (Cloud, error) {
	var (
		cloud Cloud
		line  int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		p, err := parseRecord(text)
		if err != nil {
			return nil, &ParseError{Line: line, Text: text, Err: err}
		}
		cloud = append(cloud, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("point: read input: %w", err)
	}

	return cloud, nil
}

// ParseString is Parse over an in-memory input.
func ParseString(s string) (Cloud, error) {
	return Parse(strings.NewReader(s))
}

func parseRecord(text string) (Point, error) {
	fields := strings.Split(text, ",")
	if len(fields) != 3 {
		return Point{}, fmt.Errorf("%w: got %d", ErrFieldCount, len(fields))
	}

	var xyz [3]int
	for i, f := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 32)
		if err != nil {
			return Point{}, fmt.Errorf("%w: %w", ErrCoordinate, err)
		}
		xyz[i] = int(v)
	}

	return Point{X: xyz[0], Y: xyz[1], Z: xyz[2]}, nil
}
