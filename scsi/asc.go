// Copyright 2023-24 Christophe Vu-Brugier. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

// Additional sense code lookup. The built-in table is a working subset of
// https://www.t10.org/lists/asc-num.txt; codes without an entry render as
// raw hex rather than failing, and vendor ranges are labelled as such.
// Site-specific or newer codes can be layered on top with the sensedb
// package.

package scsi

import "fmt"

func ascKey(asc, ascq byte) uint16 {
	return uint16(asc)<<8 | uint16(ascq)
}

// ASCString returns the meaning of an additional sense code / qualifier
// pair. Unknown pairs yield a "raw codes" fallback string, never an error.
func ASCString(asc, ascq byte) string {
	if s, ok := ascNames[ascKey(asc, ascq)]; ok {
		return s
	}

	switch {
	case asc == 0x40 && ascq >= 0x80:
		return fmt.Sprintf("DIAGNOSTIC FAILURE ON COMPONENT %02XH", ascq)
	case asc == 0x4d:
		return fmt.Sprintf("TAGGED OVERLAPPED COMMANDS (task tag %02XH)", ascq)
	case asc == 0x70:
		return fmt.Sprintf("DECOMPRESSION EXCEPTION SHORT ALGORITHM ID OF %02XH", ascq)
	case asc >= 0x80:
		return fmt.Sprintf("vendor specific ASC=%02Xh, ASCQ=%02Xh", asc, ascq)
	case ascq >= 0x80:
		return fmt.Sprintf("ASC=%02Xh, ASCQ=%02Xh (vendor qualifier)", asc, ascq)
	}

	return fmt.Sprintf("ASC=%02Xh, ASCQ=%02Xh (unknown)", asc, ascq)
}

var ascNames = map[uint16]string{
	0x0000: "NO ADDITIONAL SENSE INFORMATION",
	0x0001: "FILEMARK DETECTED",
	0x0002: "END-OF-PARTITION/MEDIUM DETECTED",
	0x0004: "BEGINNING-OF-PARTITION/MEDIUM DETECTED",
	0x0005: "END-OF-DATA DETECTED",
	0x0006: "I/O PROCESS TERMINATED",
	0x0016: "OPERATION IN PROGRESS",
	0x0017: "CLEANING REQUESTED",
	0x001e: "CONFLICTING SA CREATION REQUEST",
	0x0100: "NO INDEX/SECTOR SIGNAL",
	0x0200: "NO SEEK COMPLETE",
	0x0300: "PERIPHERAL DEVICE WRITE FAULT",
	0x0400: "LOGICAL UNIT NOT READY, CAUSE NOT REPORTABLE",
	0x0401: "LOGICAL UNIT IS IN PROCESS OF BECOMING READY",
	0x0402: "LOGICAL UNIT NOT READY, INITIALIZING COMMAND REQUIRED",
	0x0403: "LOGICAL UNIT NOT READY, MANUAL INTERVENTION REQUIRED",
	0x0404: "LOGICAL UNIT NOT READY, FORMAT IN PROGRESS",
	0x0405: "LOGICAL UNIT NOT READY, REBUILD IN PROGRESS",
	0x0407: "LOGICAL UNIT NOT READY, OPERATION IN PROGRESS",
	0x0409: "LOGICAL UNIT NOT READY, SELF-TEST IN PROGRESS",
	0x040a: "LOGICAL UNIT NOT ACCESSIBLE, ASYMMETRIC ACCESS STATE TRANSITION",
	0x040b: "LOGICAL UNIT NOT ACCESSIBLE, TARGET PORT IN STANDBY STATE",
	0x040c: "LOGICAL UNIT NOT ACCESSIBLE, TARGET PORT IN UNAVAILABLE STATE",
	0x0411: "LOGICAL UNIT NOT READY, NOTIFY (ENABLE SPINUP) REQUIRED",
	0x041a: "LOGICAL UNIT NOT READY, START STOP UNIT COMMAND IN PROGRESS",
	0x041b: "LOGICAL UNIT NOT READY, SANITIZE IN PROGRESS",
	0x041c: "LOGICAL UNIT NOT READY, ADDITIONAL POWER USE NOT YET GRANTED",
	0x0500: "LOGICAL UNIT DOES NOT RESPOND TO SELECTION",
	0x0600: "NO REFERENCE POSITION FOUND",
	0x0700: "MULTIPLE PERIPHERAL DEVICES SELECTED",
	0x0800: "LOGICAL UNIT COMMUNICATION FAILURE",
	0x0801: "LOGICAL UNIT COMMUNICATION TIME-OUT",
	0x0802: "LOGICAL UNIT COMMUNICATION PARITY ERROR",
	0x0900: "TRACK FOLLOWING ERROR",
	0x0a00: "ERROR LOG OVERFLOW",
	0x0b00: "WARNING",
	0x0b01: "WARNING - SPECIFIED TEMPERATURE EXCEEDED",
	0x0b02: "WARNING - ENCLOSURE DEGRADED",
	0x0b03: "WARNING - BACKGROUND SELF-TEST FAILED",
	0x0c00: "WRITE ERROR",
	0x0c02: "WRITE ERROR - AUTO REALLOCATION FAILED",
	0x0c03: "WRITE ERROR - RECOMMEND REASSIGNMENT",
	0x0e00: "INVALID INFORMATION UNIT",
	0x1000: "ID CRC OR ECC ERROR",
	0x1001: "LOGICAL BLOCK GUARD CHECK FAILED",
	0x1002: "LOGICAL BLOCK APPLICATION TAG CHECK FAILED",
	0x1003: "LOGICAL BLOCK REFERENCE TAG CHECK FAILED",
	0x1100: "UNRECOVERED READ ERROR",
	0x1101: "READ RETRIES EXHAUSTED",
	0x1102: "ERROR TOO LONG TO CORRECT",
	0x1104: "UNRECOVERED READ ERROR - AUTO REALLOCATE FAILED",
	0x110b: "UNRECOVERED READ ERROR - RECOMMEND REASSIGNMENT",
	0x1200: "ADDRESS MARK NOT FOUND FOR ID FIELD",
	0x1300: "ADDRESS MARK NOT FOUND FOR DATA FIELD",
	0x1400: "RECORDED ENTITY NOT FOUND",
	0x1401: "RECORD NOT FOUND",
	0x1500: "RANDOM POSITIONING ERROR",
	0x1501: "MECHANICAL POSITIONING ERROR",
	0x1600: "DATA SYNCHRONIZATION MARK ERROR",
	0x1700: "RECOVERED DATA WITH NO ERROR CORRECTION APPLIED",
	0x1701: "RECOVERED DATA WITH RETRIES",
	0x1800: "RECOVERED DATA WITH ERROR CORRECTION APPLIED",
	0x1900: "DEFECT LIST ERROR",
	0x1a00: "PARAMETER LIST LENGTH ERROR",
	0x1b00: "SYNCHRONOUS DATA TRANSFER ERROR",
	0x1c00: "DEFECT LIST NOT FOUND",
	0x1d00: "MISCOMPARE DURING VERIFY OPERATION",
	0x2000: "INVALID COMMAND OPERATION CODE",
	0x2100: "LOGICAL BLOCK ADDRESS OUT OF RANGE",
	0x2101: "INVALID ELEMENT ADDRESS",
	0x2200: "ILLEGAL FUNCTION (USE 20 00, 24 00, OR 26 00)",
	0x2400: "INVALID FIELD IN CDB",
	0x2401: "CDB DECRYPTION ERROR",
	0x2500: "LOGICAL UNIT NOT SUPPORTED",
	0x2600: "INVALID FIELD IN PARAMETER LIST",
	0x2601: "PARAMETER NOT SUPPORTED",
	0x2602: "PARAMETER VALUE INVALID",
	0x2700: "WRITE PROTECTED",
	0x2701: "HARDWARE WRITE PROTECTED",
	0x2702: "LOGICAL UNIT SOFTWARE WRITE PROTECTED",
	0x2800: "NOT READY TO READY CHANGE, MEDIUM MAY HAVE CHANGED",
	0x2801: "IMPORT OR EXPORT ELEMENT ACCESSED",
	0x2900: "POWER ON, RESET, OR BUS DEVICE RESET OCCURRED",
	0x2901: "POWER ON OCCURRED",
	0x2902: "SCSI BUS RESET OCCURRED",
	0x2903: "BUS DEVICE RESET FUNCTION OCCURRED",
	0x2904: "DEVICE INTERNAL RESET",
	0x2a00: "PARAMETERS CHANGED",
	0x2a01: "MODE PARAMETERS CHANGED",
	0x2a02: "LOG PARAMETERS CHANGED",
	0x2a03: "RESERVATIONS PREEMPTED",
	0x2a04: "RESERVATIONS RELEASED",
	0x2a05: "REGISTRATIONS PREEMPTED",
	0x2a06: "ASYMMETRIC ACCESS STATE CHANGED",
	0x2b00: "COPY CANNOT EXECUTE SINCE HOST CANNOT DISCONNECT",
	0x2c00: "COMMAND SEQUENCE ERROR",
	0x2e00: "INSUFFICIENT TIME FOR OPERATION",
	0x2f00: "COMMANDS CLEARED BY ANOTHER INITIATOR",
	0x3000: "INCOMPATIBLE MEDIUM INSTALLED",
	0x3001: "CANNOT READ MEDIUM - UNKNOWN FORMAT",
	0x3002: "CANNOT READ MEDIUM - INCOMPATIBLE FORMAT",
	0x3100: "MEDIUM FORMAT CORRUPTED",
	0x3101: "FORMAT COMMAND FAILED",
	0x3200: "NO DEFECT SPARE LOCATION AVAILABLE",
	0x3300: "TAPE LENGTH ERROR",
	0x3400: "ENCLOSURE FAILURE",
	0x3500: "ENCLOSURE SERVICES FAILURE",
	0x3700: "ROUNDED PARAMETER",
	0x3900: "SAVING PARAMETERS NOT SUPPORTED",
	0x3a00: "MEDIUM NOT PRESENT",
	0x3a01: "MEDIUM NOT PRESENT - TRAY CLOSED",
	0x3a02: "MEDIUM NOT PRESENT - TRAY OPEN",
	0x3b0d: "MEDIUM DESTINATION ELEMENT FULL",
	0x3b0e: "MEDIUM SOURCE ELEMENT EMPTY",
	0x3d00: "INVALID BITS IN IDENTIFY MESSAGE",
	0x3e00: "LOGICAL UNIT HAS NOT SELF-CONFIGURED YET",
	0x3e01: "LOGICAL UNIT FAILURE",
	0x3e02: "TIMEOUT ON LOGICAL UNIT",
	0x3f00: "TARGET OPERATING CONDITIONS HAVE CHANGED",
	0x3f01: "MICROCODE HAS BEEN CHANGED",
	0x3f02: "CHANGED OPERATING DEFINITION",
	0x3f03: "INQUIRY DATA HAS CHANGED",
	0x3f05: "DEVICE IDENTIFIER CHANGED",
	0x3f0e: "REPORTED LUNS DATA HAS CHANGED",
	0x4000: "RAM FAILURE (SHOULD USE 40 NN)",
	0x4100: "DATA PATH FAILURE (SHOULD USE 40 NN)",
	0x4200: "POWER-ON OR SELF-TEST FAILURE (SHOULD USE 40 NN)",
	0x4300: "MESSAGE ERROR",
	0x4400: "INTERNAL TARGET FAILURE",
	0x4500: "SELECT OR RESELECT FAILURE",
	0x4600: "UNSUCCESSFUL SOFT RESET",
	0x4700: "SCSI PARITY ERROR",
	0x4800: "INITIATOR DETECTED ERROR MESSAGE RECEIVED",
	0x4900: "INVALID MESSAGE ERROR",
	0x4a00: "COMMAND PHASE ERROR",
	0x4b00: "DATA PHASE ERROR",
	0x4c00: "LOGICAL UNIT FAILED SELF-CONFIGURATION",
	0x4e00: "OVERLAPPED COMMANDS ATTEMPTED",
	0x5300: "MEDIA LOAD OR EJECT FAILED",
	0x5301: "UNLOAD TAPE FAILURE",
	0x5302: "MEDIUM REMOVAL PREVENTED",
	0x5500: "SYSTEM RESOURCE FAILURE",
	0x5501: "SYSTEM BUFFER FULL",
	0x5a00: "OPERATOR REQUEST OR STATE CHANGE INPUT",
	0x5a01: "OPERATOR MEDIUM REMOVAL REQUEST",
	0x5b00: "LOG EXCEPTION",
	0x5b01: "THRESHOLD CONDITION MET",
	0x5c00: "RPL STATUS CHANGE",
	0x5d00: "FAILURE PREDICTION THRESHOLD EXCEEDED",
	0x5dff: "FAILURE PREDICTION THRESHOLD EXCEEDED (FALSE)",
	0x5e00: "LOW POWER CONDITION ON",
	0x6500: "VOLTAGE FAULT",
	0x7400: "SECURITY ERROR",
	0x7408: "DIGITAL SIGNATURE VALIDATION FAILURE",
	0x7471: "LOGICAL UNIT ACCESS NOT AUTHORIZED",
}
