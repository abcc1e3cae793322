// Copyright 2023-24 Christophe Vu-Brugier. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package scsi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTestUnitReadyCDB(t *testing.T) {
	assert.Equal(t, CDB6{0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, NewTestUnitReadyCDB())
}

func TestNewInquiryCDB(t *testing.T) {
	assert := assert.New(t)

	cdb, err := NewInquiryCDB(false, 0, INQ_REPLY_LEN)
	assert.NoError(err)
	assert.Equal(CDB6{0x12, 0x00, 0x00, 0x00, 0x24, 0x00}, cdb)

	// Vital product data page request
	cdb, err = NewInquiryCDB(true, 0x80, 0xff)
	assert.NoError(err)
	assert.Equal(CDB6{0x12, 0x01, 0x80, 0x00, 0xff, 0x00}, cdb)

	_, err = NewInquiryCDB(false, 0, 0x10000)
	assert.ErrorIs(err, ErrValueOutOfRange)
}

func TestNewRequestSenseCDB(t *testing.T) {
	assert := assert.New(t)

	cdb, err := NewRequestSenseCDB(true, 252)
	assert.NoError(err)
	assert.Equal(CDB6{0x03, 0x01, 0x00, 0x00, 0xfc, 0x00}, cdb)

	_, err = NewRequestSenseCDB(false, 256)
	assert.ErrorIs(err, ErrValueOutOfRange)
}

func TestNewReadCapacity10CDB(t *testing.T) {
	assert := assert.New(t)

	cdb, err := NewReadCapacity10CDB(false, 0)
	assert.NoError(err)
	assert.Equal(CDB10{0x25, 0, 0, 0, 0, 0, 0, 0, 0, 0}, cdb)

	cdb, err = NewReadCapacity10CDB(true, 0x12345678)
	assert.NoError(err)
	assert.Equal(CDB10{0x25, 0, 0x12, 0x34, 0x56, 0x78, 0, 0, 0x01, 0}, cdb)

	// LBAs beyond 32 bits need the 16 byte variant
	_, err = NewReadCapacity10CDB(true, 0x1_0000_0000)
	assert.ErrorIs(err, ErrValueOutOfRange)
}

func TestNewReadCapacity16CDB(t *testing.T) {
	assert := assert.New(t)

	cdb, err := NewReadCapacity16CDB(true, 0x1_0000_0000, RCAP16_REPLY_LEN)
	assert.NoError(err)
	assert.Len(cdb, 16)
	assert.Equal(CDB16{
		0x9e, 0x10,
		0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x20,
		0x01, 0x00,
	}, cdb)

	pmi, lba, allocLen, err := ParseReadCapacity16CDB(cdb[:])
	assert.NoError(err)
	assert.True(pmi)
	assert.Equal(uint64(0x1_0000_0000), lba)
	assert.Equal(uint32(RCAP16_REPLY_LEN), allocLen)
}

func TestParseReadCapacity16CDBErrors(t *testing.T) {
	assert := assert.New(t)

	_, _, _, err := ParseReadCapacity16CDB(make([]byte, 10))
	assert.ErrorIs(err, ErrShortBuffer)

	// Wrong service action
	bad := make([]byte, 16)
	bad[0] = SCSI_SERVICE_ACTION_IN_16
	bad[1] = SAI_GET_LBA_STATUS
	_, _, _, err = ParseReadCapacity16CDB(bad)
	assert.Error(err)
}

func TestDecodeCDB(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		cdb  []byte
		name string
	}{
		{[]byte{0x00, 0, 0, 0, 0, 0}, "TEST UNIT READY"},
		{[]byte{0x12, 0, 0, 0, 0x24, 0}, "INQUIRY"},
		{[]byte{0x25, 0, 0, 0, 0, 0, 0, 0, 0, 0}, "READ CAPACITY(10)"},
		{[]byte{0x9e, 0x10, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0x20, 0, 0}, "READ CAPACITY(16)"},
		{[]byte{0x9e, 0x12, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0x20, 0, 0}, "GET LBA STATUS"},
		{[]byte{0x28, 0, 0, 0, 0, 0, 0, 0, 1, 0}, "READ(10)"},
	}

	for _, tt := range tests {
		info, err := DecodeCDB(tt.cdb)
		assert.NoError(err)
		assert.Equal(tt.name, info.Name, tt.name)
	}
}

func TestDecodeCDBServiceActionAtOffset8(t *testing.T) {
	assert := assert.New(t)

	// Variable length CDBs put the service action in a two byte field
	cdb := make([]byte, 32)
	cdb[0] = SCSI_VARIABLE_LEN_16
	cdb[7] = 0x18
	cdb[9] = 0x09
	info, err := DecodeCDB(cdb)
	assert.NoError(err)
	assert.Equal(9, info.ServiceAction)
	assert.Equal("READ(32)", info.Name)

	// The extended opcode does the same even with a 16 byte CDB
	cdb = make([]byte, 16)
	cdb[0] = SCSI_EXTENDED_CDB
	cdb[8] = 0x01
	cdb[9] = 0x02
	info, err = DecodeCDB(cdb)
	assert.NoError(err)
	assert.Equal(0x0102, info.ServiceAction)
}

func TestDecodeCDBUnknown(t *testing.T) {
	assert := assert.New(t)

	info, err := DecodeCDB([]byte{0x27, 0, 0, 0, 0, 0})
	assert.NoError(err)
	assert.Contains(info.Name, "opcode 0x27")
	assert.Contains(info.Name, "unknown")

	info, err = DecodeCDB([]byte{0xc1, 0, 0, 0, 0, 0})
	assert.NoError(err)
	assert.Contains(info.Name, "vendor specific")

	_, err = DecodeCDB(nil)
	assert.ErrorIs(err, ErrEmptyInput)
}

func TestDecodeCDBLoneOpcode(t *testing.T) {
	assert := assert.New(t)

	// A single byte is enough to name commands without a service action
	info, err := DecodeCDB([]byte{0x12})
	assert.NoError(err)
	assert.Equal("INQUIRY", info.Name)
	assert.Equal(-1, info.ServiceAction)
}
