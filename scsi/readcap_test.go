// Copyright 2023-24 Christophe Vu-Brugier. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package scsi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeReadCapacity10(t *testing.T) {
	assert := assert.New(t)

	rc, err := DecodeReadCapacity10([]byte{0x00, 0x00, 0xff, 0xff, 0x00, 0x00, 0x02, 0x00})
	assert.NoError(err)
	assert.Equal(uint32(0xffff), rc.LastLBA)
	assert.Equal(uint32(512), rc.BlockSize)
	assert.False(rc.Overflow())
	assert.Equal(uint64(65536*512), rc.Capacity())
	assert.Contains(rc.String(), "Last LBA=65535")
}

func TestDecodeReadCapacity10Overflow(t *testing.T) {
	assert := assert.New(t)

	rc, err := DecodeReadCapacity10([]byte{0xff, 0xff, 0xff, 0xff, 0x00, 0x00, 0x02, 0x00})
	assert.NoError(err)
	assert.True(rc.Overflow())
	assert.Equal(uint64(0), rc.Capacity())
	assert.Contains(rc.String(), "16 byte cdb variant")
}

func TestDecodeReadCapacity10Short(t *testing.T) {
	assert := assert.New(t)

	_, err := DecodeReadCapacity10(nil)
	assert.ErrorIs(err, ErrEmptyInput)

	_, err = DecodeReadCapacity10(make([]byte, 7))
	assert.ErrorIs(err, ErrShortBuffer)
}

func TestDecodeReadCapacity16(t *testing.T) {
	assert := assert.New(t)

	buf := make([]byte, RCAP16_REPLY_LEN)
	copy(buf, []byte{
		0x00, 0x00, 0x00, 0x00, 0x77, 0x35, 0x94, 0x3f, // last LBA
		0x00, 0x00, 0x10, 0x00, // block size 4096
		0x15, // rc_basis=1, prot type 2, prot_en
		0x23, // p_i_exponent=2, lbppbe=3
		0xc1, 0x00, // lbpme, lbprz, lowest aligned LBA 0x100
	})

	rc, err := DecodeReadCapacity16(buf)
	assert.NoError(err)
	assert.Equal(uint64(0x7735943f), rc.LastLBA)
	assert.Equal(uint32(4096), rc.BlockSize)
	assert.True(rc.ProtEnabled)
	assert.Equal(byte(2), rc.ProtType)
	assert.Equal(byte(1), rc.RCBasis)
	assert.Equal(byte(2), rc.PIExponent)
	assert.Equal(byte(3), rc.LBPPBExponent)
	assert.True(rc.LBPME)
	assert.True(rc.LBPRZ)
	assert.Equal(uint16(0x100), rc.LowestAlignedLBA)
	assert.Equal(uint64(0x77359440)*4096, rc.Capacity())

	out := rc.String()
	assert.Contains(out, "Protection: enabled [type 3 protection]")
	assert.Contains(out, "8 logical blocks per physical block")
	assert.Contains(out, "lbpme=true, lbprz=true")
	assert.Contains(out, "Lowest aligned LBA=256")
}

func TestDecodeReadCapacity16Defaults(t *testing.T) {
	assert := assert.New(t)

	buf := make([]byte, 16)
	buf[7] = 0x3f  // last LBA 63
	buf[10] = 0x02 // block size 512

	rc, err := DecodeReadCapacity16(buf)
	assert.NoError(err)
	assert.False(rc.ProtEnabled)
	assert.False(rc.LBPME)
	assert.Equal(uint64(64*512), rc.Capacity())
	assert.Contains(rc.String(), "Protection: disabled")
}

func TestDecodeReadCapacity16Short(t *testing.T) {
	_, err := DecodeReadCapacity16(make([]byte, 15))
	assert.ErrorIs(t, err, ErrShortBuffer)
}

func TestRCBasisString(t *testing.T) {
	assert := assert.New(t)

	assert.Contains(RCBasisString(0), "conventional zones")
	assert.Equal("last LBA on logical unit", RCBasisString(1))
	assert.Contains(RCBasisString(3), "reserved")
}
