// Copyright 2023-24 Christophe Vu-Brugier. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

// T10 asc-num.txt to YAML sense code database converter.
//
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"
)

const defaultAscNumURL = "https://www.t10.org/lists/asc-num.txt"

type SenseCode struct {
	ASC  uint8  `yaml:"asc"`
	ASCQ uint8  `yaml:"ascq"`
	Text string `yaml:"text"`
}

type SenseDb struct {
	Codes []SenseCode `yaml:"codes"`
}

// Entry lines look like:
//
//	00h/00h  DTLPWROMAEBKVF  NO ADDITIONAL SENSE INFORMATION
//
// where the middle column flags which device types use the code. Lines not
// matching this shape (headers, column rulers, NNh ranges) are skipped.
var entryRegexp = regexp.MustCompile(`^\s*([0-9A-Fa-f]{2})h?/([0-9A-Fa-f]{2})h?\s+([DTLPWROMCAEBKVFSZ.\s]*?)\s\s+(\S.*?)\s*$`)

func parseAscNum(src io.Reader) ([]SenseCode, error) {
	var codes []SenseCode

	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		m := entryRegexp.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}

		asc, err1 := strconv.ParseUint(m[1], 16, 8)
		ascq, err2 := strconv.ParseUint(m[2], 16, 8)
		if err1 != nil || err2 != nil {
			continue
		}

		codes = append(codes, SenseCode{
			ASC:  uint8(asc),
			ASCQ: uint8(ascq),
			Text: strings.TrimSpace(m[4]),
		})
	}

	return codes, scanner.Err()
}

func main() {
	var (
		ascNumURL               string
		inFilename, outFilename string
		reader                  io.Reader
	)

	flag.StringVar(&ascNumURL, "url", defaultAscNumURL, "Optional asc-num.txt URL")
	flag.StringVar(&inFilename, "in", "", "Optional path to local asc-num.txt")
	flag.StringVar(&outFilename, "out", "sensedb.yaml", "Output .yaml filename")
	flag.Parse()

	if inFilename != "" {
		f, err := os.Open(inFilename)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Cannot read asc-num list: %v\n", err)
			os.Exit(1)
		}

		defer f.Close()
		fmt.Printf("Reading from local file %s\n", f.Name())
		reader = f
	} else {
		resp, err := http.Get(ascNumURL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Cannot fetch asc-num list: %v\n", err)
			os.Exit(1)
		}

		defer resp.Body.Close()
		fmt.Printf("Reading from fetched list %s\n", ascNumURL)
		reader = resp.Body
	}

	codes, err := parseAscNum(reader)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing asc-num list: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Parsed asc-num.txt - %d entries\n", len(codes))

	destFile, err := os.Create(outFilename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cannot create output: %v\n", err)
		os.Exit(1)
	}

	defer destFile.Close()
	destFile.WriteString("# Generated from " + defaultAscNumURL + "\n")

	enc := yaml.NewEncoder(destFile)

	if err := enc.Encode(SenseDb{codes}); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding yaml: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully wrote output to %s\n", outFilename)
}
