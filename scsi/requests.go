// Copyright 2023-24 Christophe Vu-Brugier. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

// Progress indication extraction from REQUEST SENSE responses. Devices
// report progress of long operations (format, sanitize, self-test) as a
// 16-bit numerator over 65536, either in the fixed format sense key
// specific bytes or in a descriptor.

package scsi

// SenseProgress returns the progress indication carried by a sense buffer,
// if one is present. Absence is a normal outcome, not an error: a device
// that is not in the middle of a long operation simply has none.
func SenseProgress(buf []byte) (progress uint16, ok bool) {
	s, err := DecodeSense(buf)
	if err != nil || s.Format == UnknownFormat {
		return 0, false
	}

	// Only NO SENSE and NOT READY report progress in the SKS field
	keyed := s.SenseKey == SK_NO_SENSE || s.SenseKey == SK_NOT_READY

	switch s.Format {
	case FixedFormat:
		if keyed && s.SKSV {
			return uint16(s.SKS[1])<<8 | uint16(s.SKS[2]), true
		}
	case DescriptorFormat:
		for i := range s.Descriptors {
			d := &s.Descriptors[i]

			if keyed {
				if sksv, sks, ok := d.SenseKeySpecific(); ok && sksv {
					return uint16(sks[1])<<8 | uint16(sks[2]), true
				}
			}
			if p, ok := d.Progress(); ok {
				return p, true
			}
		}
	}

	return 0, false
}

// ProgressPercent converts a raw progress indication to an integer
// percentage.
func ProgressPercent(progress uint16) int {
	return int(progress) * 100 / 65536
}
