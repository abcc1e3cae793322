// Copyright 2023-24 Christophe Vu-Brugier. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

// READ CAPACITY (10) and (16) response parsing (SBC-4 clause 5.20/5.21).

package scsi

import (
	"fmt"
	"strings"

	"github.com/cvubrugier/sg3-utils/utils"
)

// ReadCapacity10 is the decoded 8 byte READ CAPACITY(10) response.
type ReadCapacity10 struct {
	LastLBA   uint32
	BlockSize uint32
}

// Overflow reports whether the device signalled that the capacity does not
// fit the 32-bit field and READ CAPACITY(16) must be issued instead. This
// is a decode-time sentinel, not an error.
func (rc *ReadCapacity10) Overflow() bool {
	return rc.LastLBA == RCAP10_LBA_OVERFLOW
}

// Capacity returns the device capacity in bytes, or 0 when the overflow
// sentinel is set.
func (rc *ReadCapacity10) Capacity() uint64 {
	if rc.Overflow() {
		return 0
	}
	return (uint64(rc.LastLBA) + 1) * uint64(rc.BlockSize)
}

func (rc *ReadCapacity10) String() string {
	if rc.Overflow() {
		return "READ CAPACITY(10) indicates device capacity too large\n  now trying 16 byte cdb variant\n"
	}

	capacity := rc.Capacity()
	return fmt.Sprintf("Last LBA=%d (0x%x), Number of logical blocks=%d\n"+
		"Logical block length=%d bytes\n"+
		"Device size: %d bytes, %s\n",
		rc.LastLBA, rc.LastLBA, uint64(rc.LastLBA)+1, rc.BlockSize,
		capacity, utils.FormatBytes(capacity))
}

// DecodeReadCapacity10 parses a READ CAPACITY(10) response.
func DecodeReadCapacity10(buf []byte) (*ReadCapacity10, error) {
	if len(buf) == 0 {
		return nil, ErrEmptyInput
	}
	if len(buf) < RCAP10_REPLY_LEN {
		return nil, ErrShortBuffer
	}

	lastLBA, _ := utils.GetBE(buf, 0, 4)
	blockSize, _ := utils.GetBE(buf, 4, 4)

	return &ReadCapacity10{
		LastLBA:   uint32(lastLBA),
		BlockSize: uint32(blockSize),
	}, nil
}

// ReadCapacity16 is the decoded READ CAPACITY(16) response.
type ReadCapacity16 struct {
	LastLBA   uint64
	BlockSize uint32

	ProtEnabled bool
	ProtType    byte // 0..7; meaningful only when ProtEnabled
	RCBasis     byte // 0..3 (ZBC)

	PIExponent    byte // 0..15, protection information intervals exponent
	LBPPBExponent byte // 0..15, logical blocks per physical block exponent

	LBPME bool // logical block provisioning management enabled
	LBPRZ bool // logical block provisioning read zeros

	LowestAlignedLBA uint16 // 14 bits
}

// Capacity returns the device capacity in bytes.
func (rc *ReadCapacity16) Capacity() uint64 {
	return (rc.LastLBA + 1) * uint64(rc.BlockSize)
}

// RCBasisString explains a ZBC rc_basis field value.
func RCBasisString(rcBasis byte) string {
	switch rcBasis {
	case 0:
		return "last LBA of conventional zones, or last LBA if no conventional zones"
	case 1:
		return "last LBA on logical unit"
	default:
		return fmt.Sprintf("reserved (0x%x)", rcBasis)
	}
}

func (rc *ReadCapacity16) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Last LBA=%d (0x%x), Number of logical blocks=%d\n",
		rc.LastLBA, rc.LastLBA, rc.LastLBA+1)
	fmt.Fprintf(&sb, "Logical block length=%d bytes\n", rc.BlockSize)

	if rc.ProtEnabled {
		fmt.Fprintf(&sb, "Protection: enabled [type %d protection]\n", rc.ProtType+1)
	} else {
		sb.WriteString("Protection: disabled\n")
	}

	fmt.Fprintf(&sb, "Logical blocks per physical block exponent=%d", rc.LBPPBExponent)
	if rc.LBPPBExponent > 0 {
		fmt.Fprintf(&sb, " [%d logical blocks per physical block]", 1<<rc.LBPPBExponent)
	}
	sb.WriteByte('\n')

	fmt.Fprintf(&sb, "Logical block provisioning: lbpme=%t, lbprz=%t\n", rc.LBPME, rc.LBPRZ)
	fmt.Fprintf(&sb, "Lowest aligned LBA=%d\n", rc.LowestAlignedLBA)

	capacity := rc.Capacity()
	fmt.Fprintf(&sb, "Device size: %d bytes, %s\n", capacity, utils.FormatBytes(capacity))

	return sb.String()
}

// DecodeReadCapacity16 parses a READ CAPACITY(16) response. The standard
// response is 32 bytes; only the first 16 carry fields, so that is the
// minimum accepted.
func DecodeReadCapacity16(buf []byte) (*ReadCapacity16, error) {
	if len(buf) == 0 {
		return nil, ErrEmptyInput
	}
	if len(buf) < 16 {
		return nil, ErrShortBuffer
	}

	lastLBA, _ := utils.GetBE(buf, 0, 8)
	blockSize, _ := utils.GetBE(buf, 8, 4)

	return &ReadCapacity16{
		LastLBA:          lastLBA,
		BlockSize:        uint32(blockSize),
		ProtEnabled:      utils.GetBits(buf[12], 0, 1) != 0,
		ProtType:         utils.GetBits(buf[12], 1, 3),
		RCBasis:          utils.GetBits(buf[12], 4, 2),
		PIExponent:       utils.GetBits(buf[13], 4, 4),
		LBPPBExponent:    utils.GetBits(buf[13], 0, 4),
		LBPME:            utils.GetBits(buf[14], 7, 1) != 0,
		LBPRZ:            utils.GetBits(buf[14], 6, 1) != 0,
		LowestAlignedLBA: uint16(buf[14]&0x3f)<<8 | uint16(buf[15]),
	}, nil
}
