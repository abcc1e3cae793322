// Copyright 2023-24 Christophe Vu-Brugier. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

// Package sensedb overlays the built-in additional sense code table with a
// YAML database, so that vendor specific ASC/ASCQ pairs and codes newer
// than the compiled-in table still render with a meaning.
package sensedb

import (
	"os"
	"regexp"

	"gopkg.in/yaml.v2"

	"github.com/cvubrugier/sg3-utils/scsi"
)

// SenseCode is one additional sense code entry.
type SenseCode struct {
	ASC  uint8  `yaml:"asc"`
	ASCQ uint8  `yaml:"ascq"`
	Text string `yaml:"text"`

	// Matches devices this entry applies to, by INQUIRY vendor ID.
	// Empty means any device.
	VendorRegex    string `yaml:"vendor_regex,omitempty"`
	compiledRegexp *regexp.Regexp
}

// SenseDb is a loaded sense code database.
type SenseDb struct {
	Codes []SenseCode `yaml:"codes"`
}

// LookupASC resolves an ASC/ASCQ pair, preferring database entries over
// the built-in table. It never fails; unknown pairs fall back to the
// built-in raw hex rendering.
func (db *SenseDb) LookupASC(asc, ascq byte) string {
	return db.LookupASCForVendor(asc, ascq, "")
}

// LookupASCForVendor is LookupASC restricted to entries whose vendor
// pattern matches the given INQUIRY vendor ID.
func (db *SenseDb) LookupASCForVendor(asc, ascq byte, vendor string) string {
	for _, c := range db.Codes {
		if c.ASC != asc || c.ASCQ != ascq {
			continue
		}
		if c.compiledRegexp != nil && !c.compiledRegexp.MatchString(vendor) {
			continue
		}
		return c.Text
	}

	return scsi.ASCString(asc, ascq)
}

// OpenSenseDb opens a YAML-formatted sense code database, unmarshalls it,
// and returns a SenseDb. A missing file yields an empty database, so that
// callers can probe a default path without special-casing.
func OpenSenseDb(dbfile string) (SenseDb, error) {
	var db SenseDb

	f, err := os.Open(dbfile)
	if err != nil {
		return db, nil
	}

	defer f.Close()
	dec := yaml.NewDecoder(f)

	if err := dec.Decode(&db); err != nil {
		return db, err
	}

	for i, c := range db.Codes {
		if c.VendorRegex != "" {
			db.Codes[i].compiledRegexp, _ = regexp.Compile(c.VendorRegex)
		}
	}

	return db, nil
}
