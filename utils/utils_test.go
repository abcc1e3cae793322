// Copyright 2023-24 Christophe Vu-Brugier. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetBE(t *testing.T) {
	assert := assert.New(t)

	buf := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef, 0xff}

	v, err := GetBE(buf, 0, 1)
	assert.NoError(err)
	assert.Equal(uint64(0x01), v)

	v, err = GetBE(buf, 1, 2)
	assert.NoError(err)
	assert.Equal(uint64(0x2345), v)

	v, err = GetBE(buf, 3, 4)
	assert.NoError(err)
	assert.Equal(uint64(0x6789abcd), v)

	v, err = GetBE(buf, 0, 8)
	assert.NoError(err)
	assert.Equal(uint64(0x0123456789abcdef), v)

	// Unaligned access is fine as long as the field fits
	v, err = GetBE(buf, 1, 8)
	assert.NoError(err)
	assert.Equal(uint64(0x23456789abcdefff), v)

	_, err = GetBE(buf, 8, 2)
	assert.ErrorIs(err, ErrOutOfBounds)

	_, err = GetBE(buf, -1, 1)
	assert.ErrorIs(err, ErrOutOfBounds)
}

func TestPutBE(t *testing.T) {
	assert := assert.New(t)

	buf := make([]byte, 8)

	assert.NoError(PutBE(buf, 2, 4, 0xdeadbeef))
	assert.Equal([]byte{0, 0, 0xde, 0xad, 0xbe, 0xef, 0, 0}, buf)

	assert.ErrorIs(PutBE(buf, 7, 2, 0x1234), ErrOutOfBounds)
	assert.ErrorIs(PutBE(buf, 0, 2, 0x10000), ErrValueTooLarge)
	assert.ErrorIs(PutBE(buf, 0, 1, 0x100), ErrValueTooLarge)

	// Max value per width is accepted
	assert.NoError(PutBE(buf, 0, 1, 0xff))
	assert.NoError(PutBE(buf, 0, 8, 0xffffffffffffffff))
}

// Round trip: get then put with the decoded value must reproduce the bytes.
func TestBERoundTrip(t *testing.T) {
	assert := assert.New(t)

	orig := []byte{0x70, 0x00, 0x05, 0xff, 0x80, 0x01, 0x7f, 0xfe, 0x12, 0x34}

	for _, width := range []int{1, 2, 4, 8} {
		for offset := 0; offset+width <= len(orig); offset++ {
			buf := make([]byte, len(orig))
			copy(buf, orig)

			v, err := GetBE(buf, offset, width)
			assert.NoError(err)
			assert.NoError(PutBE(buf, offset, width, v))
			assert.Equal(orig, buf)
		}
	}
}

func TestBadWidthPanics(t *testing.T) {
	assert := assert.New(t)

	assert.Panics(func() { GetBE(make([]byte, 8), 0, 3) })
	assert.Panics(func() { PutBE(make([]byte, 8), 0, 0, 0) })
}

func TestBits(t *testing.T) {
	assert := assert.New(t)

	// READ CAPACITY(16) byte 12: rc_basis(5:4), p_type(3:1), prot_en(0)
	b := byte(0x35)
	assert.Equal(byte(0x3), GetBits(b, 4, 2))
	assert.Equal(byte(0x2), GetBits(b, 1, 3))
	assert.Equal(byte(0x1), GetBits(b, 0, 1))

	assert.Equal(byte(0x15), SetBits(b, 4, 2, 1))
	assert.Equal(byte(0x3b), SetBits(b, 1, 3, 5))

	// Excess bits of the value are masked off
	assert.Equal(byte(0x34), SetBits(b, 0, 1, 0xfe))
}

func TestFormatBytes(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("999 B", FormatBytes(999))
	assert.Equal("512 B", FormatBytes(512))
	assert.Equal("33.6 MB", FormatBytes(33554432))
}
