// Copyright 2023-24 Christophe Vu-Brugier. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

// CDB builders and opcode decoding.

package scsi

import (
	"fmt"

	"github.com/cvubrugier/sg3-utils/utils"
)

// CDBInfo is the decoded identity of an arbitrary CDB.
type CDBInfo struct {
	OpCode        byte
	ServiceAction int // -1 when no service action field was read
	Name          string
}

// DecodeCDB reads the opcode (and service action, where the opcode carries
// one) of an arbitrary CDB and resolves the human-readable command name.
// Unknown opcodes and service actions are named, not rejected; only an
// empty buffer is an error.
func DecodeCDB(cdb []byte) (CDBInfo, error) {
	var info CDBInfo

	if len(cdb) == 0 {
		return info, ErrEmptyInput
	}

	info.OpCode = cdb[0]
	info.ServiceAction = -1

	// The extended and variable-length opcodes keep their service action in
	// a two byte field at offset 8; everything else that has one uses the
	// low five bits of byte 1.
	if info.OpCode == SCSI_EXTENDED_CDB || info.OpCode == SCSI_RES_PROVISION || len(cdb) > 16 {
		if sa, err := utils.GetBE(cdb, 8, 2); err == nil {
			info.ServiceAction = int(sa)
		}
	} else if len(cdb) > 1 {
		info.ServiceAction = int(cdb[1] & 0x1f)
	}

	info.Name = OpcodeName(info.OpCode, info.ServiceAction)

	return info, nil
}

// OpcodeName maps an (opcode, service action) pair to a command name.
// Pass a negative service action if none was available.
func OpcodeName(opcode byte, sa int) string {
	if m, ok := serviceActionNames[opcode]; ok {
		if sa >= 0 {
			if name, ok := m[uint16(sa)]; ok {
				return name
			}
			return fmt.Sprintf("opcode 0x%02x, service action 0x%x (unknown)", opcode, sa)
		}
	}

	if name, ok := opcodeNames[opcode]; ok {
		return name
	}

	if opcode >= 0xc0 {
		return fmt.Sprintf("opcode 0x%02x (vendor specific)", opcode)
	}

	return fmt.Sprintf("opcode 0x%02x (unknown)", opcode)
}

// NewTestUnitReadyCDB builds a TEST UNIT READY CDB.
func NewTestUnitReadyCDB() CDB6 {
	return CDB6{SCSI_TEST_UNIT_READY}
}

// NewInquiryCDB builds an INQUIRY CDB. The page code is only meaningful
// when evpd is set.
func NewInquiryCDB(evpd bool, page byte, allocLen int) (CDB6, error) {
	var cdb CDB6

	cdb[0] = SCSI_INQUIRY
	if evpd {
		cdb[1] = 0x01
	}
	cdb[2] = page

	if err := putField(cdb[:], 3, 2, uint64(allocLen), "allocation length"); err != nil {
		return cdb, err
	}

	return cdb, nil
}

// NewRequestSenseCDB builds a REQUEST SENSE CDB. The desc flag requests
// descriptor format sense data.
func NewRequestSenseCDB(desc bool, allocLen int) (CDB6, error) {
	var cdb CDB6

	cdb[0] = SCSI_REQUEST_SENSE
	if desc {
		cdb[1] = 0x01
	}

	if err := putField(cdb[:], 4, 1, uint64(allocLen), "allocation length"); err != nil {
		return cdb, err
	}

	return cdb, nil
}

// NewReadCapacity10CDB builds a READ CAPACITY(10) CDB. The LBA field is
// only meaningful when pmi is set.
func NewReadCapacity10CDB(pmi bool, lba uint64) (CDB10, error) {
	var cdb CDB10

	cdb[0] = SCSI_READ_CAPACITY_10

	if err := putField(cdb[:], 2, 4, lba, "logical block address"); err != nil {
		return cdb, err
	}
	if pmi {
		cdb[8] = 0x01
	}

	return cdb, nil
}

// NewReadCapacity16CDB builds a READ CAPACITY(16) CDB (SERVICE ACTION
// IN(16) with the READ CAPACITY(16) service action).
func NewReadCapacity16CDB(pmi bool, lba uint64, allocLen int) (CDB16, error) {
	var cdb CDB16

	cdb[0] = SCSI_SERVICE_ACTION_IN_16
	cdb[1] = SAI_READ_CAPACITY_16

	if err := putField(cdb[:], 2, 8, lba, "logical block address"); err != nil {
		return cdb, err
	}
	if err := putField(cdb[:], 10, 4, uint64(allocLen), "allocation length"); err != nil {
		return cdb, err
	}
	if pmi {
		cdb[14] = 0x01
	}

	return cdb, nil
}

// ParseReadCapacity16CDB recovers the semantic parameters of a READ
// CAPACITY(16) CDB built by NewReadCapacity16CDB.
func ParseReadCapacity16CDB(cdb []byte) (pmi bool, lba uint64, allocLen uint32, err error) {
	if len(cdb) < 16 {
		return false, 0, 0, ErrShortBuffer
	}
	if cdb[0] != SCSI_SERVICE_ACTION_IN_16 || cdb[1]&0x1f != SAI_READ_CAPACITY_16 {
		return false, 0, 0, fmt.Errorf("not a READ CAPACITY(16) CDB (opcode 0x%02x)", cdb[0])
	}

	lba, _ = utils.GetBE(cdb, 2, 8)
	al, _ := utils.GetBE(cdb, 10, 4)

	return cdb[14]&0x01 != 0, lba, uint32(al), nil
}

func putField(buf []byte, offset, width int, value uint64, name string) error {
	if err := utils.PutBE(buf, offset, width, value); err != nil {
		return fmt.Errorf("%s %#x: %w", name, value, ErrValueOutOfRange)
	}
	return nil
}
