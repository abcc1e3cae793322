// Copyright 2023-24 Christophe Vu-Brugier. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

// Package hexfmt converts between raw bytes and the ASCII hexadecimal
// representations used by the sg3_utils family: space separated pairs,
// comma separated "0x.." values, and unseparated pair runs. Lines may carry
// trailing '#' comments, and the first token of each line can optionally be
// skipped (useful for dumps that prefix each line with an offset).
package hexfmt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrInvalidHexDigit is returned when parsed text contains something other
// than hex digit pairs, separators or comments.
var ErrInvalidHexDigit = errors.New("invalid hex digit")

// Output styles understood by Format. A buffer encoded with any style
// decodes back to the identical bytes.
type Style int

const (
	Spaced   Style = iota // "70 00 05 0a", 16 bytes per line
	CommaHex              // "0x70,0x00,0x05,0x0a,", 16 bytes per line
	NoSpace               // "7000050a", single run of pairs
)

const bytesPerLine = 16

// ParseString decodes ASCII hexadecimal text into bytes. Accepted input is
// pairs of hex digits, optionally prefixed "0x" or suffixed "h", separated
// by spaces, tabs, commas or newlines. A run of more than two adjacent
// digits is split into pairs. If ignoreFirst is set, the first token on
// each line is discarded.
func ParseString(s string, ignoreFirst bool) ([]byte, error) {
	return Parse(strings.NewReader(s), ignoreFirst)
}

// Parse decodes ASCII hexadecimal text from r, line by line. See ParseString.
func Parse(r io.Reader, ignoreFirst bool) ([]byte, error) {
	var data []byte

	scanner := bufio.NewScanner(r)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		line := scanner.Text()

		// Strip trailing comment
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}

		tokens := strings.FieldsFunc(line, func(r rune) bool {
			return r == ' ' || r == '\t' || r == ',' || r == '\r'
		})

		for i, tok := range tokens {
			if ignoreFirst && i == 0 {
				continue
			}

			b, err := parseToken(tok)
			if err != nil {
				return nil, fmt.Errorf("line %d: %q: %w", lineNum, tok, err)
			}
			data = append(data, b...)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return data, nil
}

// ParseNoSpace decodes a single run of hex digit pairs with no separators
// between them, e.g. "7000050a". Parsing stops at the first character that
// is not part of a full pair, matching the forgiving sg_decode_sense
// --nospace behaviour. An input starting with a non-pair is an error.
func ParseNoSpace(s string) ([]byte, error) {
	var data []byte

	for i := 0; i+1 < len(s); i += 2 {
		hi, ok1 := hexVal(s[i])
		lo, ok2 := hexVal(s[i+1])
		if !ok1 || !ok2 {
			break
		}
		data = append(data, hi<<4|lo)
	}

	if len(data) == 0 && len(s) > 0 {
		return nil, fmt.Errorf("%q: %w", s, ErrInvalidHexDigit)
	}

	return data, nil
}

// ParseFile reads ASCII hexadecimal from the named file, or from stdin when
// the name is "-".
func ParseFile(name string, ignoreFirst bool) ([]byte, error) {
	if name == "-" {
		return Parse(os.Stdin, ignoreFirst)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f, ignoreFirst)
}

// Format renders data in the given style. The result of any style feeds
// back through Parse (or ParseNoSpace for the NoSpace style) unchanged.
func Format(data []byte, style Style) string {
	var sb strings.Builder

	for i, b := range data {
		switch style {
		case CommaHex:
			fmt.Fprintf(&sb, "0x%02x,", b)
		default:
			fmt.Fprintf(&sb, "%02x", b)
		}

		if style == NoSpace {
			continue
		}

		if i%bytesPerLine == bytesPerLine-1 {
			sb.WriteByte('\n')
		} else if style == Spaced && i != len(data)-1 {
			sb.WriteByte(' ')
		}
	}

	if style != NoSpace && len(data)%bytesPerLine != 0 {
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Dump renders data as a classic hex dump: a 16 byte wide table with a
// leading offset column and a trailing ASCII column.
func Dump(data []byte) string {
	var sb strings.Builder

	for off := 0; off < len(data); off += bytesPerLine {
		end := off + bytesPerLine
		if end > len(data) {
			end = len(data)
		}

		fmt.Fprintf(&sb, "%08x  ", off)

		for i := off; i < off+bytesPerLine; i++ {
			if i < end {
				fmt.Fprintf(&sb, "%02x ", data[i])
			} else {
				sb.WriteString("   ")
			}
			if i-off == 7 {
				sb.WriteByte(' ')
			}
		}

		sb.WriteString(" ")
		for i := off; i < end; i++ {
			if data[i] >= 0x20 && data[i] < 0x7f {
				sb.WriteByte(data[i])
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func parseToken(tok string) ([]byte, error) {
	if len(tok) > 2 && (tok[:2] == "0x" || tok[:2] == "0X") {
		tok = tok[2:]
	} else if n := len(tok); n > 1 && (tok[n-1] == 'h' || tok[n-1] == 'H') {
		tok = tok[:n-1]
	}

	var out []byte

	// A lone digit is a byte value; longer runs must form pairs.
	if len(tok) == 1 {
		v, ok := hexVal(tok[0])
		if !ok {
			return nil, ErrInvalidHexDigit
		}
		return []byte{v}, nil
	}

	if len(tok)%2 != 0 {
		return nil, ErrInvalidHexDigit
	}

	for i := 0; i+1 < len(tok); i += 2 {
		hi, ok1 := hexVal(tok[i])
		lo, ok2 := hexVal(tok[i+1])
		if !ok1 || !ok2 {
			return nil, ErrInvalidHexDigit
		}
		out = append(out, hi<<4|lo)
	}

	return out, nil
}

func hexVal(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
