// Package textenc decodes diff input one physical line at a time, trying an
// ordered list of candidate encodings. The first encoding that decodes a line
// wins; if none does, the error from the last candidate is returned.
package textenc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// DefaultEncodings are tried in order when no configuration overrides them.
var DefaultEncodings = []string{"utf-8", "windows-1251"}

var ErrUndefinedByte = errors.New("byte has no mapping")

type Encoding struct {
	Name   string
	decode func([]byte) (string, error)
}

func (e Encoding) Decode(line []byte) (string, error) {
	return e.decode(line)
}

// Lookup resolves an encoding by its WHATWG label, e.g. "utf-8", "latin1"
// or "windows-1251".
func Lookup(name string) (Encoding, error) {
	label := strings.ToLower(strings.TrimSpace(name))
	enc, err := htmlindex.Get(label)
	if err != nil {
		return Encoding{}, fmt.Errorf("unknown encoding %q: %w", name, err)
	}
	canonical, err := htmlindex.Name(enc)
	if err != nil {
		canonical = label
	}

	if canonical == "utf-8" {
		return Encoding{Name: canonical, decode: decodeUTF8}, nil
	}
	return Encoding{Name: canonical, decode: legacyDecoder(canonical, enc)}, nil
}

func decodeUTF8(line []byte) (string, error) {
	out, _, err := transform.Bytes(encoding.UTF8Validator, line)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// legacyDecoder rejects bytes the code page leaves undefined. x/text maps
// them to U+FFFD, or to the matching C1 control for the windows-* pages.
func legacyDecoder(name string, enc encoding.Encoding) func([]byte) (string, error) {
	codePage := strings.HasPrefix(name, "windows-")
	return func(line []byte) (string, error) {
		out, err := enc.NewDecoder().Bytes(line)
		if err != nil {
			return "", err
		}
		for _, r := range string(out) {
			if r == utf8.RuneError || (codePage && r >= 0x80 && r <= 0x9f) {
				return "", ErrUndefinedByte
			}
		}
		return string(out), nil
	}
}

type Decoder struct {
	encodings []Encoding
	log       *slog.Logger
}

func NewDecoder(names []string, log *slog.Logger) (*Decoder, error) {
	if len(names) == 0 {
		names = DefaultEncodings
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	d := &Decoder{log: log}
	for _, name := range names {
		enc, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		d.encodings = append(d.encodings, enc)
	}
	return d, nil
}

// DecodeLine decodes a single physical line, newline included.
func (d *Decoder) DecodeLine(line []byte) (string, error) {
	var lastErr error
	for i, enc := range d.encodings {
		s, err := enc.Decode(line)
		if err == nil {
			if i > 0 {
				d.log.Debug("decoded with fallback encoding", "encoding", enc.Name)
			}
			return s, nil
		}
		lastErr = fmt.Errorf("decode as %s: %w", enc.Name, err)
	}
	return "", lastErr
}

// DecodeLines reads r to the end and returns it as UTF-8. Every line is
// decoded independently, so one input may mix encodings.
func (d *Decoder) DecodeLines(r io.Reader) (string, error) {
	br := bufio.NewReader(r)
	var b strings.Builder
	for lineNo := 1; ; lineNo++ {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			s, decErr := d.DecodeLine(line)
			if decErr != nil {
				return "", fmt.Errorf("line %d: %w", lineNo, decErr)
			}
			b.WriteString(s)
		}
		if err == io.EOF {
			return b.String(), nil
		}
		if err != nil {
			return "", err
		}
	}
}
