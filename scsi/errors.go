// Copyright 2023-24 Christophe Vu-Brugier. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

// Decoder and encoder error values. Truncated or unrecognized response data
// is deliberately not an error: decoders return the most complete partial
// result they can, with a flag set on the result instead (sense data is
// diagnostic output, and a partial answer beats none). Encoders are the
// opposite: a CDB field that cannot hold the requested value is always a
// hard failure, since clamping would corrupt the command sent to a device.

package scsi

import "errors"

var (
	// ErrEmptyInput is returned when a decoder is handed a zero-length buffer.
	ErrEmptyInput = errors.New("empty input")

	// ErrShortBuffer is returned when a buffer is impossibly short for the
	// response being decoded, with no well-defined partial interpretation.
	ErrShortBuffer = errors.New("buffer too short for response")

	// ErrValueOutOfRange is returned by CDB builders when a parameter does
	// not fit its CDB field.
	ErrValueOutOfRange = errors.New("value out of range for CDB field")
)
