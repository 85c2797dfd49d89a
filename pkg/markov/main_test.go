package markov

import (
	"bytes"
	"go/build"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// catCorpus is the small corpus most tests are written against.
const catCorpus = "the cat sat on the mat the cat ran"

// fixedRand always picks the same index, clamped to the valid range, which
// makes generation fully deterministic.
type fixedRand int

func (f fixedRand) IntN(n int) int {
	return min(int(f), n-1)
}

// firstRand always picks the first candidate.
const firstRand = fixedRand(0)

// lastRand always picks the last candidate.
const lastRand = fixedRand(1 << 30)

// setupTestModel creates a Model over corpus with a deterministic chooser and
// a debug logger writing into the returned buffer.
func setupTestModel(t *testing.T, corpus string, order int, opts ...Option) (*Model, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	opts = append([]Option{WithLogger(logger), WithRand(firstRand)}, opts...)
	m, err := NewModel(corpus, order, opts...)
	require.NoError(t, err)
	return m, &logs
}

var (
	benchmarkCorpus string
	corpusOnce      sync.Once
)

// createBenchmarkCorpus reads Go source files to create a corpus for benchmarking.
func createBenchmarkCorpus() string {
	corpusOnce.Do(func() {
		var sb strings.Builder
		goRoot := build.Default.GOROOT
		filesToRead := []string{
			filepath.Join(goRoot, "src/net/http/server.go"),
			filepath.Join(goRoot, "src/go/parser/parser.go"),
			filepath.Join(goRoot, "src/encoding/json/encode.go"),
		}

		for _, file := range filesToRead {
			content, err := os.ReadFile(file)
			if err != nil {
				benchmarkCorpus = "this is a fallback corpus for benchmarking. it is not very long but will prevent a crash. "
				return
			}
			sb.Write(content)
			sb.WriteString("\n")
		}
		benchmarkCorpus = sb.String()
	})
	return benchmarkCorpus
}
