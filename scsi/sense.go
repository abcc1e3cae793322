// Copyright 2023-24 Christophe Vu-Brugier. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

// Sense data parsing, both fixed format (response codes 0x70/0x71) and
// descriptor format (0x72/0x73). See SPC-5 clause 4.4.

package scsi

import (
	"github.com/cvubrugier/sg3-utils/utils"
)

// SenseFormat classifies sense data by its response code.
type SenseFormat int

const (
	UnknownFormat SenseFormat = iota
	FixedFormat
	DescriptorFormat
)

func (f SenseFormat) String() string {
	switch f {
	case FixedFormat:
		return "Fixed format"
	case DescriptorFormat:
		return "Descriptor format"
	}
	return "Unknown format"
}

// SenseData is the decoded view of a sense buffer. Which fields carry
// meaning depends on Format: fixed format fills the flat fields, descriptor
// format fills Descriptors, and an unrecognized response code leaves only
// ResponseCode and Raw.
//
// The decoder trusts the buffer bound over the declared additional sense
// length: declared fields that extend past the supplied buffer are left
// zero and Truncated is set, they never fail the decode.
type SenseData struct {
	Raw          []byte
	ResponseCode byte // low 7 bits of byte 0
	Format       SenseFormat
	Deferred     bool // response code 0x71 or 0x73

	SenseKey byte
	ASC      byte
	ASCQ     byte

	// Fixed format flag bits
	Filemark bool
	EOM      bool
	ILI      bool
	SDatOvfl bool

	InfoValid   bool
	Info        uint64
	CmdSpecific uint64
	FRUCode     byte
	SKSV        bool
	SKS         [3]byte

	AdditionalLength int
	VendorBytes      []byte // fixed format bytes beyond offset 18

	// Descriptor format descriptor list, in buffer order
	Descriptors []SenseDescriptor

	Truncated bool
}

// DecodeSense parses a sense buffer of any caller-supplied length. Only a
// zero-length buffer is an error; anything else produces the most complete
// partial decode the bytes allow.
func DecodeSense(buf []byte) (*SenseData, error) {
	if len(buf) == 0 {
		return nil, ErrEmptyInput
	}

	s := &SenseData{
		Raw:          buf,
		ResponseCode: buf[0] & 0x7f,
	}

	switch s.ResponseCode {
	case 0x70, 0x71:
		s.Format = FixedFormat
		s.Deferred = s.ResponseCode == 0x71
		s.decodeFixed(buf)
	case 0x72, 0x73:
		s.Format = DescriptorFormat
		s.Deferred = s.ResponseCode == 0x73
		s.decodeDescriptor(buf)
	default:
		// Not a sense format we know; keep the envelope, decode nothing.
		s.Format = UnknownFormat
	}

	return s, nil
}

func (s *SenseData) decodeFixed(buf []byte) {
	// The report ends at 8 + additional sense length, or at the end of the
	// buffer, whichever comes first.
	end := len(buf)
	if len(buf) >= 8 {
		s.AdditionalLength = int(buf[7])
		if reported := 8 + s.AdditionalLength; reported <= len(buf) {
			end = reported
		} else {
			s.Truncated = true
		}
	} else {
		s.Truncated = true
	}

	if len(buf) > 2 {
		s.SenseKey = buf[2] & 0x0f
		s.Filemark = buf[2]&0x80 != 0
		s.EOM = buf[2]&0x40 != 0
		s.ILI = buf[2]&0x20 != 0
		s.SDatOvfl = buf[2]&0x10 != 0
	}

	if v, err := utils.GetBE(buf, 3, 4); err == nil {
		s.Info = v
		s.InfoValid = buf[0]&0x80 != 0
	}

	if v, err := utils.GetBE(buf, 8, 4); err == nil && end >= 12 {
		s.CmdSpecific = v
	}

	// ASC/ASCQ require an additional sense length of at least 6
	if end >= 14 {
		s.ASC = buf[12]
		s.ASCQ = buf[13]
	} else {
		s.Truncated = true
	}

	if end >= 15 {
		s.FRUCode = buf[14]
	}

	if end >= 18 {
		s.SKSV = buf[15]&0x80 != 0
		copy(s.SKS[:], buf[15:18])
	}

	if end > 18 {
		s.VendorBytes = buf[18:end]
	}
}

func (s *SenseData) decodeDescriptor(buf []byte) {
	if len(buf) > 1 {
		s.SenseKey = buf[1] & 0x0f
	}
	if len(buf) > 3 {
		s.ASC = buf[2]
		s.ASCQ = buf[3]
	}
	if len(buf) > 4 {
		s.SDatOvfl = buf[4]&0x80 != 0
	}

	if len(buf) < 8 {
		s.Truncated = true
		return
	}

	s.AdditionalLength = int(buf[7])
	end := 8 + s.AdditionalLength
	if end > len(buf) {
		end = len(buf)
		s.Truncated = true
	}

	for off := 8; off < end; {
		if off+2 > end {
			// Lone type byte with no room for a length
			s.Truncated = true
			break
		}

		desc := SenseDescriptor{Type: buf[off]}
		declared := int(buf[off+1])

		payloadEnd := off + 2 + declared
		if payloadEnd > end {
			payloadEnd = end
			desc.Truncated = true
			s.Truncated = true
		}

		desc.Raw = buf[off+2 : payloadEnd]
		s.Descriptors = append(s.Descriptors, desc)

		off = payloadEnd
	}
}

// FindDescriptor returns the first descriptor of the given type, or nil.
func (s *SenseData) FindDescriptor(dtype byte) *SenseDescriptor {
	for i := range s.Descriptors {
		if s.Descriptors[i].Type == dtype {
			return &s.Descriptors[i]
		}
	}
	return nil
}
