// Copyright 2023-24 Christophe Vu-Brugier. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

// Static opcode and service action name tables. Immutable after package
// initialization, safe for lock-free concurrent lookup.

package scsi

// Table 32 of SPC-5 (T10/BSR INCITS 502) Revision 22, and the command sets
// it references. Overlapping device-type specific opcodes resolve to the
// direct access / primary command meaning.
var opcodeNames = map[byte]string{
	0x00: "TEST UNIT READY",
	0x01: "REZERO UNIT",
	0x03: "REQUEST SENSE",
	0x04: "FORMAT UNIT",
	0x05: "READ BLOCK LIMITS",
	0x07: "REASSIGN BLOCKS",
	0x08: "READ(6)",
	0x0a: "WRITE(6)",
	0x0b: "SEEK(6)",
	0x0f: "READ REVERSE(6)",
	0x10: "WRITE FILEMARKS(6)",
	0x11: "SPACE(6)",
	0x12: "INQUIRY",
	0x14: "RECOVER BUFFERED DATA",
	0x15: "MODE SELECT(6)",
	0x16: "RESERVE(6)",
	0x17: "RELEASE(6)",
	0x18: "COPY",
	0x19: "ERASE(6)",
	0x1a: "MODE SENSE(6)",
	0x1b: "START STOP UNIT",
	0x1c: "RECEIVE DIAGNOSTIC RESULTS",
	0x1d: "SEND DIAGNOSTIC",
	0x1e: "PREVENT ALLOW MEDIUM REMOVAL",
	0x23: "READ FORMAT CAPACITIES",
	0x25: "READ CAPACITY(10)",
	0x28: "READ(10)",
	0x2a: "WRITE(10)",
	0x2b: "SEEK(10)",
	0x2e: "WRITE AND VERIFY(10)",
	0x2f: "VERIFY(10)",
	0x34: "PRE-FETCH(10)",
	0x35: "SYNCHRONIZE CACHE(10)",
	0x37: "READ DEFECT DATA(10)",
	0x3b: "WRITE BUFFER",
	0x3c: "READ BUFFER(10)",
	0x3e: "READ LONG(10)",
	0x3f: "WRITE LONG(10)",
	0x40: "CHANGE DEFINITION",
	0x41: "WRITE SAME(10)",
	0x42: "UNMAP",
	0x43: "READ TOC/PMA/ATIP",
	0x44: "REPORT DENSITY SUPPORT",
	0x4c: "LOG SELECT",
	0x4d: "LOG SENSE",
	0x51: "READ DISC INFORMATION",
	0x52: "READ TRACK INFORMATION",
	0x55: "MODE SELECT(10)",
	0x56: "RESERVE(10)",
	0x57: "RELEASE(10)",
	0x5a: "MODE SENSE(10)",
	0x5e: "PERSISTENT RESERVE IN",
	0x5f: "PERSISTENT RESERVE OUT",
	0x7d: "ATA PASS-THROUGH(32)",
	0x80: "WRITE FILEMARKS(16)",
	0x81: "READ REVERSE(16)",
	0x85: "ATA PASS-THROUGH(16)",
	0x86: "ACCESS CONTROL IN",
	0x87: "ACCESS CONTROL OUT",
	0x88: "READ(16)",
	0x89: "COMPARE AND WRITE",
	0x8a: "WRITE(16)",
	0x8c: "READ ATTRIBUTE",
	0x8d: "WRITE ATTRIBUTE",
	0x8e: "WRITE AND VERIFY(16)",
	0x8f: "VERIFY(16)",
	0x90: "PRE-FETCH(16)",
	0x91: "SYNCHRONIZE CACHE(16)",
	0x93: "WRITE SAME(16)",
	0xa0: "REPORT LUNS",
	0xa1: "ATA PASS-THROUGH(12)",
	0xa2: "SECURITY PROTOCOL IN",
	0xa8: "READ(12)",
	0xaa: "WRITE(12)",
	0xae: "WRITE AND VERIFY(12)",
	0xaf: "VERIFY(12)",
	0xb5: "SECURITY PROTOCOL OUT",
	0xb7: "READ DEFECT DATA(12)",
	0xbf: "SEND DVD STRUCTURE",
}

// Opcodes whose meaning depends on a service action. A CDB carrying one of
// these opcodes is named through this table instead of opcodeNames.
var serviceActionNames = map[byte]map[uint16]string{
	0x83: {
		0x00: "EXTENDED COPY(LID1)",
		0x01: "EXTENDED COPY(LID4)",
		0x10: "POPULATE TOKEN",
		0x11: "WRITE USING TOKEN",
		0x1c: "COPY OPERATION ABORT",
	},
	0x84: {
		0x00: "RECEIVE COPY STATUS(LID1)",
		0x01: "RECEIVE COPY DATA(LID1)",
		0x03: "RECEIVE COPY OPERATING PARAMETERS",
		0x04: "RECEIVE COPY FAILURE DETAILS(LID1)",
		0x05: "RECEIVE COPY STATUS(LID4)",
		0x07: "RECEIVE ROD TOKEN INFORMATION",
	},
	0x9b: {
		0x01: "READ BUFFER(16)",
	},
	0x9e: {
		SAI_READ_CAPACITY_16: "READ CAPACITY(16)",
		0x11:                 "READ LONG(16)",
		SAI_GET_LBA_STATUS:   "GET LBA STATUS",
		0x13:                 "REPORT REFERRALS",
		0x14:                 "STREAM CONTROL",
		0x15:                 "BACKGROUND CONTROL",
		0x16:                 "GET STREAM STATUS",
	},
	0x9f: {
		0x11: "WRITE LONG(16)",
		0x12: "WRITE SCATTERED(16)",
	},
	0xa3: {
		0x05: "REPORT IDENTIFYING INFORMATION",
		0x0a: "REPORT TARGET PORT GROUPS",
		0x0c: "REPORT SUPPORTED OPERATION CODES",
		0x0d: "REPORT SUPPORTED TASK MANAGEMENT FUNCTIONS",
		0x0e: "REPORT PRIORITY",
		0x0f: "REPORT TIMESTAMP",
	},
	0xa4: {
		0x06: "SET IDENTIFYING INFORMATION",
		0x0a: "SET TARGET PORT GROUPS",
		0x0e: "SET PRIORITY",
		0x0f: "SET TIMESTAMP",
	},
	SCSI_VARIABLE_LEN_16: {
		0x0009: "READ(32)",
		0x000b: "WRITE(32)",
		0x000c: "WRITE AND VERIFY(32)",
		0x000d: "WRITE SAME(32)",
		0x8801: "READ(64)",
		0x8a01: "WRITE(64)",
	},
}
