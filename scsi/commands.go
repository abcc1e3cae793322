// Copyright 2023-24 Christophe Vu-Brugier. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

// SCSI command definitions.

package scsi

const (
	// SCSI commands built and decoded by this package
	SCSI_TEST_UNIT_READY      = 0x00
	SCSI_REQUEST_SENSE        = 0x03
	SCSI_INQUIRY              = 0x12
	SCSI_READ_CAPACITY_10     = 0x25
	SCSI_SERVICE_ACTION_IN_16 = 0x9e

	// Opcodes whose service action lives in a two byte field at offset 8
	SCSI_EXTENDED_CDB    = 0x7e
	SCSI_RES_PROVISION   = 0x75
	SCSI_VARIABLE_LEN_16 = 0x7f

	// SERVICE ACTION IN(16) service actions
	SAI_READ_CAPACITY_16 = 0x10
	SAI_GET_LBA_STATUS   = 0x12

	// Minimum length of standard INQUIRY response
	INQ_REPLY_LEN = 36

	// READ CAPACITY reply lengths
	RCAP10_REPLY_LEN = 8
	RCAP16_REPLY_LEN = 32

	// Maximum sense data length accepted by the decoder. Descriptor format
	// sense actually tops out at 255+8 bytes.
	MAX_SENSE_LEN = 8192

	// READ CAPACITY(10) last LBA value signalling that the capacity does not
	// fit the 32-bit field and READ CAPACITY(16) must be issued instead.
	RCAP10_LBA_OVERFLOW = 0xffffffff
)

// SCSI status byte values (see https://www.t10.org/lists/2status.htm)
const (
	STATUS_GOOD                 = 0x00
	STATUS_CHECK_CONDITION      = 0x02
	STATUS_CONDITION_MET        = 0x04
	STATUS_BUSY                 = 0x08
	STATUS_RESERVATION_CONFLICT = 0x18
	STATUS_TASK_SET_FULL        = 0x28
	STATUS_ACA_ACTIVE           = 0x30
	STATUS_TASK_ABORTED         = 0x40
)

// Sense key values
const (
	SK_NO_SENSE        = 0x0
	SK_RECOVERED_ERROR = 0x1
	SK_NOT_READY       = 0x2
	SK_MEDIUM_ERROR    = 0x3
	SK_HARDWARE_ERROR  = 0x4
	SK_ILLEGAL_REQUEST = 0x5
	SK_UNIT_ATTENTION  = 0x6
	SK_DATA_PROTECT    = 0x7
	SK_BLANK_CHECK     = 0x8
	SK_VENDOR_SPECIFIC = 0x9
	SK_COPY_ABORTED    = 0xa
	SK_ABORTED_COMMAND = 0xb
	SK_VOLUME_OVERFLOW = 0xd
	SK_MISCOMPARE      = 0xe
	SK_COMPLETED       = 0xf
)

// SCSI CDB types
type CDB6 [6]byte
type CDB10 [10]byte
type CDB16 [16]byte
