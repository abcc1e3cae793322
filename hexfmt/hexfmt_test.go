// Copyright 2023-24 Christophe Vu-Brugier. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package hexfmt

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseString(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		name  string
		input string
		want  []byte
	}{
		{"spaced", "70 00 05 0a", []byte{0x70, 0x00, 0x05, 0x0a}},
		{"comma 0x", "0x70,0x00,0x05,0x0a,", []byte{0x70, 0x00, 0x05, 0x0a}},
		{"mixed separators", "70,00\t05  0a", []byte{0x70, 0x00, 0x05, 0x0a}},
		{"pair run token", "7000050a", []byte{0x70, 0x00, 0x05, 0x0a}},
		{"lone digit", "5 a", []byte{0x05, 0x0a}},
		{"h suffix", "25h 00h", []byte{0x25, 0x00}},
		{"multi line", "70 00\n05 0a\n", []byte{0x70, 0x00, 0x05, 0x0a}},
		{"comment", "70 00 # fixed format\n05 0a", []byte{0x70, 0x00, 0x05, 0x0a}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		got, err := ParseString(tt.input, false)
		assert.NoError(err, tt.name)
		assert.Equal(tt.want, got, tt.name)
	}
}

func TestParseInvalid(t *testing.T) {
	assert := assert.New(t)

	for _, input := range []string{"7g", "wibble", "123", "0x"} {
		_, err := ParseString(input, false)
		assert.ErrorIs(err, ErrInvalidHexDigit, input)
	}
}

func TestParseIgnoreFirst(t *testing.T) {
	assert := assert.New(t)

	// dStrHex style dump with a leading offset on each line
	input := "00000000 70 00 05\n00000003 0a 00\n"
	got, err := ParseString(input, true)
	assert.NoError(err)
	assert.Equal([]byte{0x70, 0x00, 0x05, 0x0a, 0x00}, got)
}

func TestParseNoSpace(t *testing.T) {
	assert := assert.New(t)

	got, err := ParseNoSpace("7000050a")
	assert.NoError(err)
	assert.Equal([]byte{0x70, 0x00, 0x05, 0x0a}, got)

	// Trailing partial pair is dropped, not an error
	got, err = ParseNoSpace("70005")
	assert.NoError(err)
	assert.Equal([]byte{0x70, 0x00}, got)

	_, err = ParseNoSpace("zz00")
	assert.ErrorIs(err, ErrInvalidHexDigit)
}

// Every style must round-trip every byte value exactly.
func TestFormatRoundTrip(t *testing.T) {
	assert := assert.New(t)

	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}

	samples := [][]byte{
		{0x01, 0xff, 0x00},
		all,
		bytes.Repeat([]byte{0x00}, 33),
	}

	for _, sample := range samples {
		got, err := ParseString(Format(sample, Spaced), false)
		assert.NoError(err)
		assert.Equal(sample, got)

		got, err = ParseString(Format(sample, CommaHex), false)
		assert.NoError(err)
		assert.Equal(sample, got)

		got, err = ParseNoSpace(Format(sample, NoSpace))
		assert.NoError(err)
		assert.Equal(sample, got)
	}
}

func TestDump(t *testing.T) {
	assert := assert.New(t)

	out := Dump([]byte("SEAGATE Tech\x00\x01"))
	assert.Contains(out, "00000000")
	assert.Contains(out, "53 45 41 47 41 54 45 20")
	assert.Contains(out, "SEAGATE Tech..")
}
