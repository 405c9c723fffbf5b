// Package testutil contains helpers shared by the backend provider tests.
package testutil

import (
	"bytes"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"
)

// Lines splits the given logging output into individual non-empty lines.
func Lines(_ *testing.T, output []byte) [][]byte {
	var lines [][]byte

	for _, line := range bytes.Split(output, []byte("\n")) {
		if len(bytes.TrimSpace(line)) != 0 {
			lines = append(lines, line)
		}
	}

	return lines
}

// Line asserts that the given logging output contains exactly one non-empty line, returning it.
func Line(t *testing.T, output []byte) []byte {
	lines := Lines(t, output)
	require.Len(t, lines, 1)

	return lines[0]
}

// FieldString extracts the string value at the given path from a JSON encoded log line fatally terminating the
// current test if the field does not exist.
func FieldString(t *testing.T, line []byte, path ...interface{}) string {
	value := jsoniter.Get(line, path...)
	require.NotEqual(t, jsoniter.InvalidValue, value.ValueType())

	return value.ToString()
}

// FieldMissing asserts that no value exists at the given path in a JSON encoded log line.
func FieldMissing(t *testing.T, line []byte, path ...interface{}) {
	require.Equal(t, jsoniter.InvalidValue, jsoniter.Get(line, path...).ValueType())
}
