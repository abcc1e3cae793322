// Copyright 2023-24 Christophe Vu-Brugier. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

// Sense category classification and the utility exit status table.

package scsi

import "fmt"

// Category is the coarse outcome class of a command, derived from its
// sense data. It replaces per-call-site switches over sense keys with one
// enumerated dispatch.
type Category int

const (
	CatClean          Category = iota // no error reported
	CatRecovered                      // error recovered by the device
	CatNotReady                       // device not ready
	CatMediumHard                     // medium or hardware error
	CatIllegalRequest                 // bad opcode or field
	CatUnitAttention                  // state change notification
	CatDataProtect                    // write protected or protection error
	CatCopyAborted
	CatAbortedCommand
	CatMiscompare
	CatSense // sense data present but not classifiable
)

var categoryNames = map[Category]string{
	CatClean:          "no error",
	CatRecovered:      "recovered error",
	CatNotReady:       "not ready",
	CatMediumHard:     "medium or hardware error",
	CatIllegalRequest: "illegal request",
	CatUnitAttention:  "unit attention",
	CatDataProtect:    "data protect",
	CatCopyAborted:    "copy aborted",
	CatAbortedCommand: "aborted command",
	CatMiscompare:     "miscompare",
	CatSense:          "unclassified sense data",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("category %d", int(c))
}

// Category classifies decoded sense data.
func (s *SenseData) Category() Category {
	if s.Format == UnknownFormat {
		return CatSense
	}

	switch s.SenseKey {
	case SK_NO_SENSE, SK_COMPLETED:
		return CatClean
	case SK_RECOVERED_ERROR:
		return CatRecovered
	case SK_NOT_READY:
		return CatNotReady
	case SK_MEDIUM_ERROR, SK_HARDWARE_ERROR, SK_BLANK_CHECK:
		return CatMediumHard
	case SK_ILLEGAL_REQUEST:
		return CatIllegalRequest
	case SK_UNIT_ATTENTION:
		return CatUnitAttention
	case SK_DATA_PROTECT:
		return CatDataProtect
	case SK_COPY_ABORTED:
		return CatCopyAborted
	case SK_ABORTED_COMMAND:
		return CatAbortedCommand
	case SK_MISCOMPARE:
		return CatMiscompare
	default:
		return CatSense
	}
}

// Utility exit status values, matching the sg3_utils convention so scripts
// written against the C tools keep working.
const (
	ES_GOOD             = 0
	ES_SYNTAX_ERROR     = 1
	ES_NOT_READY        = 2
	ES_MEDIUM_HARD      = 3
	ES_ILLEGAL_REQUEST  = 5
	ES_UNIT_ATTENTION   = 6
	ES_DATA_PROTECT     = 7
	ES_INVALID_OPCODE   = 9
	ES_COPY_ABORTED     = 10
	ES_ABORTED_COMMAND  = 11
	ES_MISCOMPARE       = 14
	ES_FILE_ERROR       = 15
	ES_ILLEGAL_REQ_INFO = 17
	ES_MEDIUM_HARD_INFO = 18
	ES_NO_SENSE         = 20
	ES_RECOVERED        = 21
	ES_RES_CONFLICT     = 24
	ES_CONDITION_MET    = 25
	ES_BUSY             = 26
	ES_TASK_SET_FULL    = 27
	ES_ACA_ACTIVE       = 28
	ES_TASK_ABORTED     = 29
	ES_TIMEOUT          = 33
	ES_PROTECTION       = 40
	ES_MALFORMED_SENSE  = 97
	ES_SENSE_PRESENT    = 98
	ES_OTHER            = 99
)

var exitStatusNames = map[int]string{
	ES_GOOD:             "No errors",
	ES_SYNTAX_ERROR:     "Syntax error (bad options usage)",
	ES_NOT_READY:        "Device not ready",
	ES_MEDIUM_HARD:      "Medium or hardware error (plus blank check)",
	ES_ILLEGAL_REQUEST:  "Illegal request",
	ES_UNIT_ATTENTION:   "Unit attention",
	ES_DATA_PROTECT:     "Data protect",
	ES_INVALID_OPCODE:   "Illegal request, invalid opcode",
	ES_COPY_ABORTED:     "Copy aborted",
	ES_ABORTED_COMMAND:  "Aborted command",
	ES_MISCOMPARE:       "Miscompare",
	ES_FILE_ERROR:       "File error",
	ES_ILLEGAL_REQ_INFO: "Illegal request with info field",
	ES_MEDIUM_HARD_INFO: "Medium or hardware error with info field",
	ES_NO_SENSE:         "No sense data",
	ES_RECOVERED:        "Recovered error",
	ES_RES_CONFLICT:     "SCSI status: reservation conflict",
	ES_CONDITION_MET:    "SCSI status: condition met",
	ES_BUSY:             "SCSI status: busy",
	ES_TASK_SET_FULL:    "SCSI status: task set full",
	ES_ACA_ACTIVE:       "SCSI status: ACA active",
	ES_TASK_ABORTED:     "SCSI status: task aborted",
	ES_TIMEOUT:          "SCSI command timeout",
	ES_PROTECTION:       "Aborted command, protection error",
	ES_MALFORMED_SENSE:  "Response malformed",
	ES_SENSE_PRESENT:    "Some sense data, not categorized",
	ES_OTHER:            "Some other error or warning",
}

// ExitStatusString looks up the meaning of a utility exit status value.
func ExitStatusString(es int) (string, bool) {
	s, ok := exitStatusNames[es]
	return s, ok
}

// ExitStatus maps a sense category to its conventional exit status.
func (c Category) ExitStatus() int {
	switch c {
	case CatClean:
		return ES_GOOD
	case CatRecovered:
		return ES_RECOVERED
	case CatNotReady:
		return ES_NOT_READY
	case CatMediumHard:
		return ES_MEDIUM_HARD
	case CatIllegalRequest:
		return ES_ILLEGAL_REQUEST
	case CatUnitAttention:
		return ES_UNIT_ATTENTION
	case CatDataProtect:
		return ES_DATA_PROTECT
	case CatCopyAborted:
		return ES_COPY_ABORTED
	case CatAbortedCommand:
		return ES_ABORTED_COMMAND
	case CatMiscompare:
		return ES_MISCOMPARE
	default:
		return ES_SENSE_PRESENT
	}
}
