package bench_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sawcount/bench"
)

func TestWriteTable(t *testing.T) {
	results := []bench.Result{
		{N: 3, Impl: "recursive", Value: 36, Elapsed: 1500 * time.Microsecond, Status: bench.StatusOK},
		{N: 3, Impl: "reference", Value: 36, Elapsed: 2 * time.Millisecond, Status: bench.StatusMatch},
		{N: 20, Impl: "recursive", Elapsed: 5 * time.Second, Status: bench.StatusTimeout},
		{N: 20, Impl: "reference", Status: bench.StatusSkipped},
		{N: 21, Impl: "faulty", Status: bench.StatusError, Err: errors.New("boom")},
	}

	var buf bytes.Buffer
	require.NoError(t, bench.WriteTable(&buf, results))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")

	require.Len(t, lines, 11)
	assert.True(t, strings.HasPrefix(lines[0], "N    | Impl"))
	assert.Equal(t, "3    | recursive  | 36              | 1.50       | OK        ", lines[2])
	assert.Contains(t, lines[3], "MATCH")
	assert.True(t, strings.HasPrefix(lines[4], "---"), "rule after each step count")
	assert.Contains(t, lines[5], "> 5000")
	assert.Contains(t, lines[5], "TIMEOUT")
	assert.Contains(t, lines[6], "SKIPPED")
	assert.Contains(t, lines[8], "ERROR")
	assert.Equal(t, "     ! boom", lines[9])
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteTable_WriterError(t *testing.T) {
	err := bench.WriteTable(failingWriter{}, nil)
	assert.EqualError(t, err, "disk full")
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "DIFF!", bench.StatusMismatch.String())
	assert.Equal(t, "UNKNOWN", bench.Status(42).String())
}
