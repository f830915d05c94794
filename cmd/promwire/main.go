// Copyright 2024 The Promwire Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// The promwire command checks Prometheus text exposition data line by line.
// It routes '#' lines to the comment reader and everything else to the
// sample reader, reports per-input counts and can dump every parsed record
// as one JSON object per line.
package main

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	jsoniter "github.com/json-iterator/go"

	"github.com/promwire/promwire/linefmt"
	"github.com/promwire/promwire/log"
	"github.com/promwire/promwire/model"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// lineStats counts what one input turned out to contain. Plain '#' lines
// that are not HELP/TYPE metadata are legal in the exposition format, so
// they are counted apart from invalid lines.
type lineStats struct {
	Samples  int
	Metadata int
	Comments int
	Blank    int
	Invalid  int
}

// record is the JSON shape emitted under --dump. Value is a pointer so that
// comment records omit it rather than reporting a spurious zero.
type record struct {
	Kind      string             `json:"kind"`
	Name      string             `json:"name"`
	Labels    model.LabelList    `json:"labels,omitempty"`
	Value     *model.SampleValue `json:"value,omitempty"`
	Timestamp *model.Time        `json:"timestamp,omitempty"`
	Text      string             `json:"text,omitempty"`
}

// checkReader splits r into lines and routes each through the parser. When
// dump is non-nil every parsed record is written to it as a JSON line.
// Invalid lines are logged with their line number and counted, never fatal.
func checkReader(r io.Reader, logger log.Logger, dump io.Writer) (lineStats, error) {
	var st lineStats
	enc := json.NewEncoder(dump)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for lineno := 1; sc.Scan(); lineno++ {
		line := strings.TrimRight(strings.TrimLeft(sc.Text(), " \t"), "\r")
		switch {
		case line == "":
			st.Blank++
		case line[0] == '#':
			c, ok := linefmt.TryReadComment(line)
			if !ok {
				st.Comments++
				continue
			}
			st.Metadata++
			if dump != nil {
				if err := enc.Encode(record{Kind: c.Kind.String(), Name: c.Name, Text: c.Text}); err != nil {
					return st, err
				}
			}
		default:
			s, ok := linefmt.TryReadSample(line)
			if !ok {
				st.Invalid++
				logger.Warnf("line %d: not a valid sample: %q", lineno, line)
				continue
			}
			st.Samples++
			if dump != nil {
				if err := enc.Encode(record{
					Kind:      "SAMPLE",
					Name:      s.Name,
					Labels:    s.Labels,
					Value:     &s.Value,
					Timestamp: s.Timestamp,
				}); err != nil {
					return st, err
				}
			}
		}
	}
	return st, sc.Err()
}

func checkFile(name string, dump io.Writer) (lineStats, error) {
	if name == "-" {
		return checkReader(os.Stdin, log.With("input", "stdin"), dump)
	}
	f, err := os.Open(name)
	if err != nil {
		return lineStats{}, err
	}
	defer f.Close()
	return checkReader(f, log.With("input", name), dump)
}

func main() {
	var (
		app           = kingpin.New("promwire", "Check and decode Prometheus text exposition data line by line.")
		logLevel      = app.Flag("log.level", "Only log messages with the given severity or above. Valid levels: [debug, info, warn, error, fatal].").Default("info").String()
		logFormat     = app.Flag("log.format", "Log output format. One of: [text, json].").Default("text").String()
		dump          = app.Flag("dump", "Emit every parsed record as a JSON line on stdout.").Bool()
		failOnInvalid = app.Flag("fail-on-invalid", "Exit with status 1 if any line fails to parse.").Bool()
		files         = app.Arg("files", "Input files ('-' or none for stdin).").Default("-").Strings()
	)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if err := log.SetLevel(*logLevel); err != nil {
		log.Fatal(err)
	}
	if err := log.SetFormat(*logFormat); err != nil {
		log.Fatal(err)
	}

	var out io.Writer
	if *dump {
		out = os.Stdout
	}

	invalid := 0
	for _, name := range *files {
		st, err := checkFile(name, out)
		if err != nil {
			log.With("input", name).Fatal(err)
		}
		invalid += st.Invalid
		log.With("input", name).
			With("samples", st.Samples).
			With("metadata", st.Metadata).
			With("comments", st.Comments).
			With("blank", st.Blank).
			With("invalid", st.Invalid).
			Info("done")
	}
	if *failOnInvalid && invalid > 0 {
		os.Exit(1)
	}
}
