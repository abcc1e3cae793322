// Copyright 2023-24 Christophe Vu-Brugier. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package scsi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSenseProgressFixed(t *testing.T) {
	assert := assert.New(t)

	// NOT READY / FORMAT IN PROGRESS with an SKS progress indication
	buf := []byte{
		0x70, 0x00, 0x02, 0x00, 0x00, 0x00, 0x00, 0x0a,
		0x00, 0x00, 0x00, 0x00, 0x04, 0x04, 0x00, 0x80,
		0x30, 0x00,
	}

	p, ok := SenseProgress(buf)
	assert.True(ok)
	assert.Equal(uint16(0x3000), p)
	assert.Equal(18, ProgressPercent(p))
}

func TestSenseProgressDescriptor(t *testing.T) {
	assert := assert.New(t)

	// Progress in a sense key specific descriptor
	buf := []byte{
		0x72, 0x02, 0x04, 0x04, 0x00, 0x00, 0x00, 0x08,
		0x02, 0x06, 0x00, 0x00, 0x80, 0x80, 0x00, 0x00,
	}

	p, ok := SenseProgress(buf)
	assert.True(ok)
	assert.Equal(uint16(0x8000), p)
	assert.Equal(50, ProgressPercent(p))
}

func TestSenseProgressAnotherProgressDescriptor(t *testing.T) {
	assert := assert.New(t)

	// The type 0x0a descriptor reports progress regardless of sense key
	buf := []byte{
		0x72, 0x00, 0x00, 0x1d, 0x00, 0x00, 0x00, 0x08,
		0x0a, 0x06, 0x00, 0x1d, 0x00, 0x00, 0x40, 0x00,
	}

	p, ok := SenseProgress(buf)
	assert.True(ok)
	assert.Equal(uint16(0x4000), p)
	assert.Equal(25, ProgressPercent(p))
}

func TestSenseProgressAbsent(t *testing.T) {
	assert := assert.New(t)

	// Clean sense without SKSV: no progress to report, not an error
	buf := []byte{0x70, 0, 0, 0, 0, 0, 0, 0x0a, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	_, ok := SenseProgress(buf)
	assert.False(ok)

	// Progress is only meaningful for NO SENSE and NOT READY
	buf = []byte{
		0x70, 0x00, 0x05, 0x00, 0x00, 0x00, 0x00, 0x0a,
		0x00, 0x00, 0x00, 0x00, 0x24, 0x00, 0x00, 0x80,
		0x30, 0x00,
	}
	_, ok = SenseProgress(buf)
	assert.False(ok)

	_, ok = SenseProgress([]byte{0x33, 0x01})
	assert.False(ok)

	_, ok = SenseProgress(nil)
	assert.False(ok)
}
