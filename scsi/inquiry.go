// Copyright 2023-24 Christophe Vu-Brugier. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

// Standard INQUIRY response parsing (SPC-5 clause 6.7.2).

package scsi

import (
	"fmt"
	"strings"
)

// Table 150 of SPC-5: peripheral device type
var deviceTypeNames = map[byte]string{
	0x00: "disk",
	0x01: "tape",
	0x02: "printer",
	0x03: "processor",
	0x04: "write once optical disk",
	0x05: "cd/dvd",
	0x06: "scanner",
	0x07: "optical memory device",
	0x08: "medium changer",
	0x09: "communications",
	0x0c: "storage array controller",
	0x0d: "enclosure services device",
	0x0e: "simplified direct access device",
	0x0f: "optical card reader/writer device",
	0x10: "bridge controller commands",
	0x11: "object based storage",
	0x12: "automation/driver interface",
	0x14: "host managed zoned block",
	0x1e: "well known logical unit",
	0x1f: "unknown or no device type",
}

// DeviceTypeName returns the name of a peripheral device type value.
func DeviceTypeName(devType byte) string {
	if name, ok := deviceTypeNames[devType]; ok {
		return name
	}
	return fmt.Sprintf("reserved device type 0x%x", devType)
}

// InquiryResponse is the decoded standard INQUIRY data. A device may return
// fewer than the nominal 96 bytes; fields past the end of the buffer are
// left at their zero value and Length records how much was actually
// available.
type InquiryResponse struct {
	PeripheralQualifier  byte
	PeripheralDeviceType byte
	RMB                  bool // removable medium
	Version              byte
	ResponseDataFormat   byte
	AdditionalLength     byte

	// Byte 7 capability flags
	Wide   bool
	Sync   bool
	CmdQue bool
	SftRe  bool

	VendorID   string // bytes 8..16
	ProductID  string // bytes 16..32
	ProductRev string // bytes 32..36

	Length int
}

// DecodeInquiry parses a standard INQUIRY response of any returned length.
// Only an empty buffer is an error.
func DecodeInquiry(buf []byte) (*InquiryResponse, error) {
	if len(buf) == 0 {
		return nil, ErrEmptyInput
	}

	inq := &InquiryResponse{
		PeripheralQualifier:  buf[0] >> 5,
		PeripheralDeviceType: buf[0] & 0x1f,
		Length:               len(buf),
	}

	if len(buf) > 1 {
		inq.RMB = buf[1]&0x80 != 0
	}
	if len(buf) > 2 {
		inq.Version = buf[2]
	}
	if len(buf) > 3 {
		inq.ResponseDataFormat = buf[3] & 0x0f
	}
	if len(buf) > 4 {
		inq.AdditionalLength = buf[4]
	}
	if len(buf) > 7 {
		inq.Wide = buf[7]&0x20 != 0
		inq.Sync = buf[7]&0x10 != 0
		inq.CmdQue = buf[7]&0x02 != 0
		inq.SftRe = buf[7]&0x01 != 0
	}

	inq.VendorID = asciiField(buf, 8, 16)
	inq.ProductID = asciiField(buf, 16, 32)
	inq.ProductRev = asciiField(buf, 32, 36)

	return inq, nil
}

func (inq *InquiryResponse) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Device type: %s", DeviceTypeName(inq.PeripheralDeviceType))
	if inq.PeripheralQualifier != 0 {
		fmt.Fprintf(&sb, " (qualifier 0x%x)", inq.PeripheralQualifier)
	}
	if inq.RMB {
		sb.WriteString(", removable")
	}
	sb.WriteByte('\n')

	fmt.Fprintf(&sb, "Vendor: %-8s  Product: %-16s  Revision: %s\n",
		inq.VendorID, inq.ProductID, inq.ProductRev)

	var caps []string
	for _, c := range []struct {
		set  bool
		name string
	}{{inq.Wide, "wide"}, {inq.Sync, "sync"}, {inq.CmdQue, "cmdque"}, {inq.SftRe, "sftre"}} {
		if c.set {
			caps = append(caps, c.name)
		}
	}
	if len(caps) > 0 {
		fmt.Fprintf(&sb, "Capabilities: %s\n", strings.Join(caps, " "))
	}

	return sb.String()
}

// asciiField extracts a space-padded ASCII field, clamped to the buffer.
// A field wholly past the end of the buffer is absent, not empty padding.
func asciiField(buf []byte, start, end int) string {
	if start >= len(buf) {
		return ""
	}
	if end > len(buf) {
		end = len(buf)
	}
	return strings.TrimRight(string(buf[start:end]), " \x00")
}
