// Copyright 2023-24 Christophe Vu-Brugier. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

// Human-readable rendering of decoded sense data and SCSI status values.
// All lookup tables are immutable after package initialization.

package scsi

import (
	"fmt"
	"strings"

	"github.com/cvubrugier/sg3-utils/hexfmt"
)

// Table 49 of SPC-5 (T10/BSR INCITS 502) Revision 22
var senseKeyNames = [16]string{
	"No Sense",
	"Recovered Error",
	"Not Ready",
	"Medium Error",
	"Hardware Error",
	"Illegal Request",
	"Unit Attention",
	"Data Protect",
	"Blank Check",
	"Vendor specific",
	"Copy Aborted",
	"Aborted Command",
	"Reserved",
	"Volume Overflow",
	"Miscompare",
	"Completed",
}

// SenseKeyName returns the name of a sense key value. Values above 15
// cannot occur in well-formed sense data but are still rendered.
func SenseKeyName(key byte) string {
	if int(key) < len(senseKeyNames) {
		return senseKeyNames[key]
	}
	return fmt.Sprintf("Sense key 0x%x (invalid)", key)
}

var statusNames = map[byte]string{
	STATUS_GOOD:                 "Good",
	STATUS_CHECK_CONDITION:      "Check Condition",
	STATUS_CONDITION_MET:        "Condition Met",
	STATUS_BUSY:                 "Busy",
	0x10:                        "Intermediate (obsolete)",
	0x14:                        "Intermediate-Condition Met (obsolete)",
	STATUS_RESERVATION_CONFLICT: "Reservation Conflict",
	0x22:                        "Command Terminated (obsolete)",
	STATUS_TASK_SET_FULL:        "Task Set Full",
	STATUS_ACA_ACTIVE:           "ACA Active",
	STATUS_TASK_ABORTED:         "Task Aborted",
}

// StatusString returns the name of a SCSI status byte value.
func StatusString(status byte) string {
	if name, ok := statusNames[status]; ok {
		return name
	}
	return fmt.Sprintf("Unknown status 0x%02x", status)
}

// String renders decoded sense data as multi-line text, one finding per
// line, in the style of the sg3_utils sense printer.
func (s *SenseData) String() string {
	var sb strings.Builder

	if s.Format == UnknownFormat {
		fmt.Fprintf(&sb, "Unknown sense response code 0x%02x\n", s.ResponseCode)
		sb.WriteString(hexfmt.Dump(s.Raw))
		return sb.String()
	}

	current := "current"
	if s.Deferred {
		current = "deferred"
	}
	fmt.Fprintf(&sb, "%s, %s; Sense key: %s\n", s.Format, current, SenseKeyName(s.SenseKey))
	fmt.Fprintf(&sb, " Additional sense: %s\n", ASCString(s.ASC, s.ASCQ))

	if s.Format == FixedFormat {
		s.appendFixed(&sb)
	} else {
		for i := range s.Descriptors {
			s.Descriptors[i].append(&sb, s.SenseKey)
		}
	}

	if s.Truncated {
		sb.WriteString(" <<< sense data truncated >>>\n")
	}

	return sb.String()
}

func (s *SenseData) appendFixed(sb *strings.Builder) {
	var flags []string
	if s.Filemark {
		flags = append(flags, "Filemark")
	}
	if s.EOM {
		flags = append(flags, "EOM")
	}
	if s.ILI {
		flags = append(flags, "ILI")
	}
	if s.SDatOvfl {
		flags = append(flags, "SDAT_OVFL")
	}
	if len(flags) > 0 {
		fmt.Fprintf(sb, " Flags: %s\n", strings.Join(flags, ", "))
	}

	if s.InfoValid {
		fmt.Fprintf(sb, " Information: 0x%x\n", s.Info)
	}
	if s.CmdSpecific != 0 {
		fmt.Fprintf(sb, " Command specific: 0x%x\n", s.CmdSpecific)
	}
	if s.FRUCode != 0 {
		fmt.Fprintf(sb, " Field replaceable unit code: %d\n", s.FRUCode)
	}
	if s.SKSV {
		appendSKS(sb, s.SenseKey, s.SKS)
	}
	if len(s.VendorBytes) > 0 {
		fmt.Fprintf(sb, " Vendor specific bytes:\n%s", hexfmt.Dump(s.VendorBytes))
	}
}

func (d *SenseDescriptor) append(sb *strings.Builder, senseKey byte) {
	fmt.Fprintf(sb, " %s descriptor:", d.Name())

	switch d.Type {
	case DESC_INFORMATION:
		if v, ok := d.Information(); ok {
			fmt.Fprintf(sb, " 0x%x\n", v)
			break
		}
		fallthrough
	case DESC_COMMAND_SPECIFIC:
		if v, ok := d.CommandSpecific(); ok {
			fmt.Fprintf(sb, " 0x%x\n", v)
			break
		}
		fallthrough
	default:
		sb.WriteByte('\n')
		if len(d.Raw) > 0 {
			sb.WriteString(hexfmt.Dump(d.Raw))
		}
	case DESC_SENSE_KEY_SPECIFIC:
		sb.WriteByte('\n')
		// The sense key of the outer report selects the field meaning
		if sksv, sks, ok := d.SenseKeySpecific(); ok && sksv {
			appendSKS(sb, senseKey, sks)
		}
	case DESC_FRU:
		if code, ok := d.FRUCode(); ok {
			fmt.Fprintf(sb, " %d\n", code)
		} else {
			sb.WriteByte('\n')
		}
	case DESC_PROGRESS:
		if p, ok := d.Progress(); ok {
			fmt.Fprintf(sb, " %d%%\n", int(p)*100/65536)
		} else {
			sb.WriteByte('\n')
		}
	case DESC_ATA_STATUS_RETURN:
		if a, ok := d.AtaStatus(); ok {
			fmt.Fprintf(sb, " status=0x%02x error=0x%02x device=0x%02x count=0x%x lba=0x%x\n",
				a.Status, a.Error, a.Device, a.Count, a.LBA)
		} else {
			sb.WriteByte('\n')
		}
	case DESC_FORWARDED_SENSE:
		if status, nested, ok := d.ForwardedSense(); ok {
			fmt.Fprintf(sb, " status: %s\n", StatusString(status))
			for _, line := range strings.Split(strings.TrimRight(nested.String(), "\n"), "\n") {
				fmt.Fprintf(sb, "   %s\n", line)
			}
		} else {
			sb.WriteByte('\n')
		}
	}

	if d.Truncated {
		sb.WriteString("   <<< descriptor truncated >>>\n")
	}
}

func appendSKS(sb *strings.Builder, senseKey byte, sks [3]byte) {
	field := uint16(sks[1])<<8 | uint16(sks[2])

	switch senseKey {
	case SK_ILLEGAL_REQUEST:
		where := "parameter list"
		if sks[0]&0x40 != 0 {
			where = "CDB"
		}
		fmt.Fprintf(sb, " Field pointer: byte %d", field)
		if sks[0]&0x08 != 0 {
			fmt.Fprintf(sb, " bit %d", sks[0]&0x07)
		}
		fmt.Fprintf(sb, " in %s\n", where)
	case SK_NO_SENSE, SK_NOT_READY:
		fmt.Fprintf(sb, " Progress indication: %d%%\n", int(field)*100/65536)
	case SK_RECOVERED_ERROR, SK_MEDIUM_ERROR, SK_HARDWARE_ERROR:
		fmt.Fprintf(sb, " Actual retry count: %d\n", field)
	default:
		fmt.Fprintf(sb, " Sense key specific: 0x%02x 0x%02x 0x%02x\n", sks[0], sks[1], sks[2])
	}
}
