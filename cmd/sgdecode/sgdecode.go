// Copyright 2023-24 Christophe Vu-Brugier. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

// Reference decoder for SCSI sense data and CDBs, in the spirit of the
// sg_decode_sense utility. Input bytes come from the command line as hex,
// or from a binary or ASCII hex file; no device I/O is performed.
//
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cvubrugier/sg3-utils/hexfmt"
	"github.com/cvubrugier/sg3-utils/scsi"
	"github.com/cvubrugier/sg3-utils/sensedb"
)

type jsonDescriptor struct {
	Type      byte   `json:"type"`
	Name      string `json:"name"`
	Raw       string `json:"raw,omitempty"`
	Truncated bool   `json:"truncated,omitempty"`
}

type jsonSense struct {
	ResponseCode byte             `json:"response_code"`
	Format       string           `json:"format"`
	Deferred     bool             `json:"deferred,omitempty"`
	SenseKey     byte             `json:"sense_key"`
	SenseKeyName string           `json:"sense_key_name"`
	ASC          byte             `json:"asc"`
	ASCQ         byte             `json:"ascq"`
	Additional   string           `json:"additional_sense"`
	Info         uint64           `json:"information,omitempty"`
	Descriptors  []jsonDescriptor `json:"descriptors,omitempty"`
	Truncated    bool             `json:"truncated,omitempty"`
}

func senseToJSON(s *scsi.SenseData, db *sensedb.SenseDb) jsonSense {
	js := jsonSense{
		ResponseCode: s.ResponseCode,
		Format:       s.Format.String(),
		Deferred:     s.Deferred,
		SenseKey:     s.SenseKey,
		SenseKeyName: scsi.SenseKeyName(s.SenseKey),
		ASC:          s.ASC,
		ASCQ:         s.ASCQ,
		Additional:   db.LookupASC(s.ASC, s.ASCQ),
		Truncated:    s.Truncated,
	}

	if s.InfoValid {
		js.Info = s.Info
	}

	for i := range s.Descriptors {
		d := &s.Descriptors[i]
		js.Descriptors = append(js.Descriptors, jsonDescriptor{
			Type:      d.Type,
			Name:      d.Name(),
			Raw:       hexfmt.Format(d.Raw, hexfmt.NoSpace),
			Truncated: d.Truncated,
		})
	}

	return js
}

func readInput(binFile, hexFile string, noSpace, ignoreFirst bool, args []string) ([]byte, error) {
	switch {
	case binFile != "":
		if binFile == "-" {
			return io.ReadAll(os.Stdin)
		}
		return os.ReadFile(binFile)
	case hexFile != "":
		return hexfmt.ParseFile(hexFile, ignoreFirst)
	case noSpace:
		return hexfmt.ParseNoSpace(strings.Join(args, ""))
	default:
		return hexfmt.ParseString(strings.Join(args, " "), false)
	}
}

func listExitStatuses(from, to int) {
	for es := from; es <= to; es++ {
		if s, ok := scsi.ExitStatusString(es); ok {
			fmt.Printf("%d: %s\n", es, s)
		}
	}
}

func main() {
	doCDB := flag.Bool("cdb", false, "Decode given hex as a CDB rather than sense data")
	binFile := flag.String("binary", "", "Read sense data in binary from file, '-' for stdin")
	hexFile := flag.String("file", "", "Read sense data in ASCII hexadecimal from file, '-' for stdin")
	noSpace := flag.Bool("nospace", false, "No separators between pairs of hex digits, e.g. '7000050a'")
	ignoreFirst := flag.Bool("ignore-first", false, "When reading hex from a file, skip the first value on each line")
	jsonOut := flag.Bool("json", false, "Output in JSON instead of plain text")
	statusArg := flag.String("status", "", "SCSI status value in hex")
	errES := flag.Int("err", -1, "Print the meaning of this utility exit status and exit")
	listErr := flag.Bool("list-err", false, "List utility exit statuses and their meanings")
	hexDump := flag.Bool("hex", false, "Print the input bytes as a hex dump instead of decoding")
	wfname := flag.String("write", "", "Write the input bytes in binary to this file")
	dbFile := flag.String("sensedb", "sensedb.yaml", "Optional YAML additional sense code database")
	flag.Parse()

	if *listErr {
		listExitStatuses(0, 127)
		return
	}
	if *errES >= 0 {
		s, ok := scsi.ExitStatusString(*errES)
		if !ok {
			s = fmt.Sprintf("Unable to decode exit status %d", *errES)
		}
		fmt.Println(s)
		return
	}

	if *statusArg != "" {
		status, err := strconv.ParseUint(strings.TrimPrefix(*statusArg, "0x"), 16, 8)
		if err != nil {
			fmt.Fprintf(os.Stderr, "-status expects a hex byte value: %v\n", err)
			os.Exit(scsi.ES_SYNTAX_ERROR)
		}
		fmt.Printf("SCSI status: %s\n", scsi.StatusString(byte(status)))
	}

	data, err := readInput(*binFile, *hexFile, *noSpace, *ignoreFirst, flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(scsi.ES_FILE_ERROR)
	}

	if len(data) == 0 {
		if *statusArg != "" {
			return
		}
		fmt.Fprintln(os.Stderr, "Need sense or CDB bytes on the command line or in a file")
		flag.PrintDefaults()
		os.Exit(scsi.ES_SYNTAX_ERROR)
	}

	if *wfname != "" {
		if err := os.WriteFile(*wfname, data, 0644); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(scsi.ES_FILE_ERROR)
		}
		return
	}

	if *hexDump {
		fmt.Print(hexfmt.Dump(data))
		return
	}

	if *doCDB {
		info, err := scsi.DecodeCDB(data)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(scsi.ES_SYNTAX_ERROR)
		}

		if *jsonOut {
			out, _ := json.MarshalIndent(struct {
				OpCode        byte   `json:"opcode"`
				ServiceAction int    `json:"service_action"`
				Name          string `json:"name"`
			}{info.OpCode, info.ServiceAction, info.Name}, "", "  ")
			fmt.Println(string(out))
		} else {
			fmt.Println(info.Name)
		}
		return
	}

	db, err := sensedb.OpenSenseDb(*dbFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot load sense database %s: %v\n", *dbFile, err)
		os.Exit(scsi.ES_FILE_ERROR)
	}

	if len(data) > scsi.MAX_SENSE_LEN {
		fmt.Fprintf(os.Stderr, "sense data too long (max. %d bytes)\n", scsi.MAX_SENSE_LEN)
		os.Exit(scsi.ES_SYNTAX_ERROR)
	}

	sense, err := scsi.DecodeSense(data)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(scsi.ES_MALFORMED_SENSE)
	}

	if *jsonOut {
		out, _ := json.MarshalIndent(senseToJSON(sense, &db), "", "  ")
		fmt.Println(string(out))
	} else {
		fmt.Print(sense.String())
	}
}
