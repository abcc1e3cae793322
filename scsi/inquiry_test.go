// Copyright 2023-24 Christophe Vu-Brugier. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package scsi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleInquiry() []byte {
	buf := make([]byte, 96)
	buf[0] = 0x00 // disk
	buf[1] = 0x80 // removable
	buf[2] = 0x06 // SPC-4
	buf[3] = 0x02
	buf[4] = 91 // additional length
	buf[7] = 0x32
	copy(buf[8:], "ACME    ")
	copy(buf[16:], "SUPERDISK 9000  ")
	copy(buf[32:], "1.2 ")
	return buf
}

func TestDecodeInquiry(t *testing.T) {
	assert := assert.New(t)

	inq, err := DecodeInquiry(sampleInquiry())
	assert.NoError(err)
	assert.Equal(byte(0), inq.PeripheralQualifier)
	assert.Equal(byte(0), inq.PeripheralDeviceType)
	assert.True(inq.RMB)
	assert.Equal(byte(0x06), inq.Version)
	assert.Equal(byte(0x02), inq.ResponseDataFormat)
	assert.Equal(byte(91), inq.AdditionalLength)
	assert.True(inq.Wide)
	assert.True(inq.Sync)
	assert.True(inq.CmdQue)
	assert.False(inq.SftRe)
	assert.Equal("ACME", inq.VendorID)
	assert.Equal("SUPERDISK 9000", inq.ProductID)
	assert.Equal("1.2", inq.ProductRev)
	assert.Equal(96, inq.Length)

	out := inq.String()
	assert.Contains(out, "Device type: disk, removable")
	assert.Contains(out, "Vendor: ACME")
	assert.Contains(out, "Capabilities: wide sync cmdque")
}

func TestDecodeInquiryShort(t *testing.T) {
	assert := assert.New(t)

	// Devices may return fewer bytes than requested
	inq, err := DecodeInquiry(sampleInquiry()[:8])
	assert.NoError(err)
	assert.True(inq.RMB)
	assert.True(inq.Wide)
	assert.Equal("", inq.VendorID)
	assert.Equal(8, inq.Length)

	inq, err = DecodeInquiry([]byte{0x45})
	assert.NoError(err)
	assert.Equal(byte(0x02), inq.PeripheralQualifier)
	assert.Equal(byte(0x05), inq.PeripheralDeviceType)

	_, err = DecodeInquiry(nil)
	assert.ErrorIs(err, ErrEmptyInput)
}

func TestDecodeInquiryTruncatedField(t *testing.T) {
	assert := assert.New(t)

	// A buffer ending inside the product ID keeps the readable prefix
	inq, err := DecodeInquiry(sampleInquiry()[:21])
	assert.NoError(err)
	assert.Equal("ACME", inq.VendorID)
	assert.Equal("SUPER", inq.ProductID)
	assert.Equal("", inq.ProductRev)
}

func TestDeviceTypeName(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("disk", DeviceTypeName(0x00))
	assert.Equal("cd/dvd", DeviceTypeName(0x05))
	assert.Equal("host managed zoned block", DeviceTypeName(0x14))
	assert.Contains(DeviceTypeName(0x1b), "reserved")
}
