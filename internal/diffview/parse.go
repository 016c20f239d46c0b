package diffview

import (
	"bytes"
	"fmt"
	"strings"

	sgdiff "github.com/sourcegraph/go-diff/diff"
)

// noNewlineText is the marker line without its leading backslash.
const noNewlineText = " No newline at end of file"

type LineType byte

const (
	LineContext LineType = ' '
	LineAdded   LineType = '+'
	LineRemoved LineType = '-'
	LineTrailer LineType = '\\'
)

// Line is one tagged hunk line. Source is nil for additions and trailers,
// Target is nil for removals and trailers.
type Line struct {
	Type   LineType
	Source *int
	Target *int
	Text   string
}

type PatchedFile struct {
	Source string
	Target string
	Hunks  [][]Line
}

func ParseUnifiedDiff(raw []byte) ([]PatchedFile, error) {
	fileDiffs, err := sgdiff.ParseMultiFileDiff(raw)
	if err != nil {
		return nil, err
	}

	files := make([]PatchedFile, 0, len(fileDiffs))
	for _, fd := range fileDiffs {
		file := PatchedFile{
			Source: strings.TrimSpace(fd.OrigName),
			Target: strings.TrimSpace(fd.NewName),
			Hunks:  make([][]Line, 0, len(fd.Hunks)),
		}
		for _, h := range fd.Hunks {
			lines, err := hunkLines(h)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", file.Target, err)
			}
			file.Hunks = append(file.Hunks, lines)
		}
		files = append(files, file)
	}
	return files, nil
}

func hunkLines(h *sgdiff.Hunk) ([]Line, error) {
	oldLn := int(h.OrigStartLine)
	newLn := int(h.NewStartLine)
	body := splitHunkBody(h.Body)

	lines := make([]Line, 0, len(body)+2)
	for _, line := range body {
		// Whitespace-stripped diffs lose the space prefix of blank context lines.
		if line == "" {
			line = " "
		}
		switch line[0] {
		case ' ':
			lines = append(lines, Line{
				Type:   LineContext,
				Source: linePtr(oldLn),
				Target: linePtr(newLn),
				Text:   line[1:],
			})
			oldLn++
			newLn++

		case '-':
			lines = append(lines, Line{Type: LineRemoved, Source: linePtr(oldLn), Text: line[1:]})
			oldLn++

		case '+':
			lines = append(lines, Line{Type: LineAdded, Target: linePtr(newLn), Text: line[1:]})
			newLn++

		case '\\':
			lines = append(lines, Line{Type: LineTrailer, Text: line[1:]})

		default:
			return nil, fmt.Errorf("unexpected hunk line prefix %q", line)
		}
	}

	// go-diff drops the no-newline markers from the body and records them
	// as an offset (old side) or a missing final newline (new side).
	if h.OrigNoNewlineAt > 0 {
		lines = append(lines, Line{Type: LineTrailer, Text: noNewlineText})
	}
	if len(h.Body) > 0 && !bytes.HasSuffix(h.Body, []byte("\n")) {
		lines = append(lines, Line{Type: LineTrailer, Text: noNewlineText})
	}
	return lines, nil
}

func splitHunkBody(body []byte) []string {
	lines := strings.Split(strings.ReplaceAll(string(body), "\r\n", "\n"), "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
