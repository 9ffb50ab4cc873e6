package request

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	ioutils "github.com/albiontools/icon-downloader/internal/io"
)

// FieldUnset marks an optional integer field that was absent from the
// input line. Defaulting happens in the resolver, once the identifier's
// embedded-tier status is known.
const FieldUnset = -1

// Line is one raw line of the downloads file, data or not.
type Line struct {
	// Raw is the line text without the trailing newline.
	Raw string

	// Number is the 1-based line number in the source file.
	Number int
}

// IsData reports whether the line holds a download record, as opposed
// to a blank line or a '#' comment.
func (l Line) IsData() bool {
	trimmed := strings.TrimSpace(l.Raw)
	return trimmed != "" && !strings.HasPrefix(trimmed, "#")
}

// ParsedLine is a download record split into its fields.
//
// Only Name is mandatory. Tier, Enchant and Quality hold FieldUnset
// when the line omitted them; range checks and defaults are the
// resolver's job.
type ParsedLine struct {
	RawText    string
	LineNumber int

	Name    string
	Tier    int
	Enchant int
	Quality int
}

// Parse splits a data line into its fields.
//
// The format is "Name, tier[, enchant[, quality]]", comma-separated
// with each field trimmed. Returns (nil, nil) for blank and comment
// lines. Returns an error when a present field is not an integer or
// when more than four fields are given.
func Parse(l Line) (*ParsedLine, error) {
	if !l.IsData() {
		return nil, nil
	}

	fields := strings.Split(l.Raw, ",")
	if len(fields) > 4 {
		return nil, fmt.Errorf("line %d: too many fields (%d, max 4)", l.Number, len(fields))
	}

	name := strings.TrimSpace(fields[0])
	if name == "" {
		return nil, fmt.Errorf("line %d: missing item name", l.Number)
	}

	parsed := &ParsedLine{
		RawText:    l.Raw,
		LineNumber: l.Number,
		Name:       name,
		Tier:       FieldUnset,
		Enchant:    FieldUnset,
		Quality:    FieldUnset,
	}

	ints := []*int{&parsed.Tier, &parsed.Enchant, &parsed.Quality}
	labels := []string{"tier", "enchant", "quality"}
	for i, field := range fields[1:] {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		value, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad %s %q", l.Number, labels[i], field)
		}
		*ints[i] = value
	}

	return parsed, nil
}

// ReadLines reads every line of the downloads file, preserving blanks
// and comments so the rewrite can keep them in place.
func ReadLines(path string) ([]Line, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []Line
	scanner := bufio.NewScanner(f)
	for number := 1; scanner.Scan(); number++ {
		lines = append(lines, Line{Raw: scanner.Text(), Number: number})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// Rewrite replaces the downloads file with the retained lines in a
// single atomic step, so an interrupted run never leaves a partially
// compacted file behind.
func Rewrite(path string, retained []string) error {
	var b strings.Builder
	for _, line := range retained {
		b.WriteString(strings.TrimRight(line, "\r\n"))
		b.WriteString("\n")
	}
	return ioutils.ReplaceFile(path, []byte(b.String()))
}
