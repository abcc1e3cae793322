// Copyright 2023-24 Christophe Vu-Brugier. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

// Byte-field accessors for the big-endian, unaligned fields used throughout
// SCSI CDBs, sense data and command responses.

package utils

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned when a field extends past the end of its buffer.
	ErrOutOfBounds = errors.New("field extends past end of buffer")

	// ErrValueTooLarge is returned when a value does not fit the field width.
	ErrValueTooLarge = errors.New("value does not fit field width")
)

// GetBE reads width bytes starting at offset as a big-endian unsigned
// integer. Width must be 1, 2, 4 or 8; any other width is a contract
// violation and panics.
func GetBE(buf []byte, offset, width int) (uint64, error) {
	checkWidth(width)

	if offset < 0 || offset+width > len(buf) {
		return 0, ErrOutOfBounds
	}

	var v uint64
	for _, b := range buf[offset : offset+width] {
		v = v<<8 | uint64(b)
	}

	return v, nil
}

// PutBE writes value as a big-endian unsigned integer of width bytes
// starting at offset. Width must be 1, 2, 4 or 8.
func PutBE(buf []byte, offset, width int, value uint64) error {
	checkWidth(width)

	if offset < 0 || offset+width > len(buf) {
		return ErrOutOfBounds
	}

	if width < 8 && value>>(uint(width)*8) != 0 {
		return ErrValueTooLarge
	}

	for i := width - 1; i >= 0; i-- {
		buf[offset+i] = byte(value)
		value >>= 8
	}

	return nil
}

// GetBits extracts an nbits wide field from b, starting at bit position
// shift (bit 0 is the least significant bit).
func GetBits(b byte, shift, nbits uint) byte {
	return (b >> shift) & (1<<nbits - 1)
}

// SetBits returns b with the nbits wide field at bit position shift
// replaced by v. Bits of v outside the field are discarded.
func SetBits(b byte, shift, nbits uint, v byte) byte {
	mask := byte(1<<nbits-1) << shift
	return b&^mask | v<<shift&mask
}

// FormatBytes formats a uint64 byte quantity using human-readable units, e.g. kilobyte, megabyte.
func FormatBytes(v uint64) string {
	var i int

	suffixes := [...]string{"B", "KB", "MB", "GB", "TB", "PB", "EB"}
	d := uint64(1)

	for i = 0; i < len(suffixes)-1; i++ {
		if v >= d*1000 {
			d *= 1000
		} else {
			break
		}
	}

	if i == 0 {
		return fmt.Sprintf("%d %s", v, suffixes[i])
	} else {
		// Print 3 significant digits
		return fmt.Sprintf("%.3g %s", float64(v)/float64(d), suffixes[i])
	}
}

func checkWidth(width int) {
	switch width {
	case 1, 2, 4, 8:
	default:
		panic(fmt.Sprintf("utils: invalid field width %d", width))
	}
}
