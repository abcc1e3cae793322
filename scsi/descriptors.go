// Copyright 2023-24 Christophe Vu-Brugier. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

// Descriptor format sense descriptors (SPC-5 clause 4.4.2). Each descriptor
// is [type][length][payload]; the payload layout depends on the type.
// Unknown types are carried as raw bytes so that vendor specific or future
// descriptors survive a decode/render round trip.

package scsi

import "github.com/cvubrugier/sg3-utils/utils"

// Sense descriptor types
const (
	DESC_INFORMATION        = 0x00
	DESC_COMMAND_SPECIFIC   = 0x01
	DESC_SENSE_KEY_SPECIFIC = 0x02
	DESC_FRU                = 0x03
	DESC_STREAM_COMMANDS    = 0x04
	DESC_BLOCK_COMMANDS     = 0x05
	DESC_OSD_OBJECT_ID      = 0x06
	DESC_OSD_RESP_INTEGRITY = 0x07
	DESC_OSD_ATTR_ID        = 0x08
	DESC_ATA_STATUS_RETURN  = 0x09
	DESC_PROGRESS           = 0x0a
	DESC_REFERRAL           = 0x0b
	DESC_FORWARDED_SENSE    = 0x0c
	DESC_DIRECT_ACCESS      = 0x0d
	DESC_MICROCODE_ACTIVATE = 0x0e
)

var descriptorNames = map[byte]string{
	DESC_INFORMATION:        "Information",
	DESC_COMMAND_SPECIFIC:   "Command specific information",
	DESC_SENSE_KEY_SPECIFIC: "Sense key specific",
	DESC_FRU:                "Field replaceable unit code",
	DESC_STREAM_COMMANDS:    "Stream commands",
	DESC_BLOCK_COMMANDS:     "Block commands",
	DESC_OSD_OBJECT_ID:      "OSD object identification",
	DESC_OSD_RESP_INTEGRITY: "OSD response integrity check value",
	DESC_OSD_ATTR_ID:        "OSD attribute identification",
	DESC_ATA_STATUS_RETURN:  "ATA status return",
	DESC_PROGRESS:           "Progress indication",
	DESC_REFERRAL:           "User data segment referral",
	DESC_FORWARDED_SENSE:    "Forwarded sense data",
	DESC_DIRECT_ACCESS:      "Direct-access block device",
	DESC_MICROCODE_ACTIVATE: "Microcode activation",
}

// SenseDescriptor is one entry of a descriptor format sense report. Raw
// holds the payload bytes following the type and length header; offsets in
// the accessor methods are therefore shifted by two relative to SPC tables.
type SenseDescriptor struct {
	Type      byte
	Raw       []byte
	Truncated bool // declared length exceeded the sense report bound
}

// Name returns the descriptor type name, or a generic label for unknown
// and vendor specific types.
func (d *SenseDescriptor) Name() string {
	if name, ok := descriptorNames[d.Type]; ok {
		return name
	}
	if d.Type >= 0x80 {
		return "Vendor specific"
	}
	return "Unknown"
}

// Information returns the 8 byte information field of an information
// descriptor (type 0x00), and whether it was present and complete.
func (d *SenseDescriptor) Information() (uint64, bool) {
	if d.Type != DESC_INFORMATION {
		return 0, false
	}
	v, err := utils.GetBE(d.Raw, 2, 8)
	return v, err == nil
}

// CommandSpecific returns the 8 byte field of a command specific
// information descriptor (type 0x01).
func (d *SenseDescriptor) CommandSpecific() (uint64, bool) {
	if d.Type != DESC_COMMAND_SPECIFIC {
		return 0, false
	}
	v, err := utils.GetBE(d.Raw, 2, 8)
	return v, err == nil
}

// SenseKeySpecific returns the SKSV bit and the three sense key specific
// bytes of a type 0x02 descriptor.
func (d *SenseDescriptor) SenseKeySpecific() (sksv bool, sks [3]byte, ok bool) {
	if d.Type != DESC_SENSE_KEY_SPECIFIC || len(d.Raw) < 5 {
		return false, sks, false
	}
	copy(sks[:], d.Raw[2:5])
	return d.Raw[2]&0x80 != 0, sks, true
}

// FRUCode returns the field replaceable unit code of a type 0x03 descriptor.
func (d *SenseDescriptor) FRUCode() (byte, bool) {
	if d.Type != DESC_FRU || len(d.Raw) < 2 {
		return 0, false
	}
	return d.Raw[1], true
}

// StreamFlags returns the FILEMARK, EOM and ILI bits of a stream commands
// descriptor (type 0x04).
func (d *SenseDescriptor) StreamFlags() (filemark, eom, ili, ok bool) {
	if d.Type != DESC_STREAM_COMMANDS || len(d.Raw) < 2 {
		return false, false, false, false
	}
	b := d.Raw[1]
	return b&0x80 != 0, b&0x40 != 0, b&0x20 != 0, true
}

// BlockILI returns the ILI bit of a block commands descriptor (type 0x05).
func (d *SenseDescriptor) BlockILI() (ili, ok bool) {
	if d.Type != DESC_BLOCK_COMMANDS || len(d.Raw) < 2 {
		return false, false
	}
	return d.Raw[1]&0x20 != 0, true
}

// Progress returns the numerator of the progress indication held by an
// "another progress indication" descriptor (type 0x0a). The denominator
// is 65536.
func (d *SenseDescriptor) Progress() (uint16, bool) {
	if d.Type != DESC_PROGRESS {
		return 0, false
	}
	v, err := utils.GetBE(d.Raw, 4, 2)
	return uint16(v), err == nil
}

// AtaStatusReturn is the register image carried by an ATA status return
// descriptor (SAT, type 0x09).
type AtaStatusReturn struct {
	Extend bool
	Error  byte
	Count  uint16
	LBA    uint64
	Device byte
	Status byte
}

// AtaStatus decodes a type 0x09 descriptor.
func (d *SenseDescriptor) AtaStatus() (*AtaStatusReturn, bool) {
	if d.Type != DESC_ATA_STATUS_RETURN || len(d.Raw) < 12 {
		return nil, false
	}

	a := &AtaStatusReturn{
		Extend: d.Raw[0]&0x01 != 0,
		Error:  d.Raw[1],
		Count:  uint16(d.Raw[2])<<8 | uint16(d.Raw[3]),
		Device: d.Raw[10],
		Status: d.Raw[11],
	}

	// LBA bytes interleave as (7:0, 15:8, 23:16) with the extend bytes
	// (31:24, 39:32, 47:40) in the hi positions.
	a.LBA = uint64(d.Raw[5]) | uint64(d.Raw[7])<<8 | uint64(d.Raw[9])<<16 |
		uint64(d.Raw[4])<<24 | uint64(d.Raw[6])<<32 | uint64(d.Raw[8])<<40

	return a, true
}

// ForwardedSense decodes a forwarded sense data descriptor (type 0x0c):
// the status of the forwarded command and its embedded sense data.
func (d *SenseDescriptor) ForwardedSense() (status byte, sense *SenseData, ok bool) {
	if d.Type != DESC_FORWARDED_SENSE || len(d.Raw) < 3 {
		return 0, nil, false
	}

	nested, err := DecodeSense(d.Raw[2:])
	if err != nil {
		return d.Raw[1], nil, false
	}

	return d.Raw[1], nested, true
}
