// Package batch reads newline-delimited JSON point records for the
// incdbscan command line driver. Each line is a JSON array of numbers,
// e.g. [1.0, 2.5, -3.25].
package batch

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/valyala/fastjson"
)

// ReadVectors parses one float64 vector per non-blank line of r.
func ReadVectors(r io.Reader) ([][]float64, error) {
	var parser fastjson.Parser
	var vectors [][]float64

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		value, err := parser.Parse(text)
		if err != nil {
			return nil, fmt.Errorf("batch: line %d: %w", line, err)
		}
		arr, err := value.Array()
		if err != nil {
			return nil, fmt.Errorf("batch: line %d: expected a JSON array of numbers", line)
		}

		vec := make([]float64, len(arr))
		for i, item := range arr {
			f, err := item.Float64()
			if err != nil {
				return nil, fmt.Errorf("batch: line %d: element %d is not a number", line, i)
			}
			vec[i] = f
		}
		vectors = append(vectors, vec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}

	return vectors, nil
}
