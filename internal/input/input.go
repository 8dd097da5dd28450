package input

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/denis-bt/sync-core-visualization/internal/model"
)

// StdinSource is the Source recorded for lines read from standard input.
const StdinSource = "-"

// maxLineSize bounds a single log line. Debug dumps can be long.
const maxLineSize = 16 << 20

// ReadLines reads r to EOF and returns its lines with line endings stripped.
func ReadLines(r io.Reader, source string) ([]model.RawLine, error) {
	var out []model.RawLine

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	n := 0
	for scanner.Scan() {
		n++
		out = append(out, model.RawLine{
			Text:   strings.TrimSuffix(scanner.Text(), "\r"),
			Source: source,
			Number: n,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "read %s", source)
	}
	return out, nil
}

// Expand resolves glob patterns to a deduplicated list of files, in argument
// order. Recursive patterns like logs/**/*.log are supported. A pattern that
// matches nothing is an error.
func Expand(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly(), doublestar.WithFailOnIOErrors())
		if err != nil {
			return nil, errors.Wrapf(err, "expand %q", pattern)
		}
		if len(matches) == 0 {
			return nil, errors.Newf("no files match %q", pattern)
		}
		for _, m := range matches {
			abs, err := filepath.Abs(m)
			if err != nil {
				abs = m
			}
			if seen[abs] {
				continue
			}
			seen[abs] = true
			files = append(files, m)
		}
	}
	return files, nil
}

// Load reads every file matched by patterns, or stdin when no pattern is given.
// Everything is read into memory before returning.
func Load(patterns []string, stdin io.Reader) ([]model.RawLine, error) {
	if len(patterns) == 0 {
		zlog.Debug().Msg("reading standard input")
		return ReadLines(stdin, StdinSource)
	}

	files, err := Expand(patterns)
	if err != nil {
		return nil, err
	}

	var all []model.RawLine
	for _, path := range files {
		lines, err := readFile(path)
		if err != nil {
			return nil, err
		}
		zlog.Info().Str("file", path).Int("lines", len(lines)).Msg("loaded")
		all = append(all, lines...)
	}
	return all, nil
}

func readFile(path string) ([]model.RawLine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open input")
	}
	defer f.Close()
	return ReadLines(f, path)
}
