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

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/promwire/promwire/log"
)

const exposition = `
# HELP http_requests_total The total number of HTTP requests.
# TYPE http_requests_total counter
http_requests_total{method="post",code="200"} 1027 1395066363000
http_requests_total{method="post",code="400"}    3 1395066363000

# Just a plain comment, ignored.
msdos_file_access_time_seconds{path="C:\\DIR\\FILE.TXT",error="Cannot find file:\n\"FILE.TXT\""} 1.458255915e9
something_weird{problem="division by zero"} +Inf -3982045
this one is broken
also{broken="yes",} 1
`

func TestCheckReader(t *testing.T) {
	st, err := checkReader(strings.NewReader(exposition), log.With("input", "test"), nil)
	require.NoError(t, err)
	require.Equal(t, lineStats{
		Samples:  4,
		Metadata: 2,
		Comments: 1,
		Blank:    2,
		Invalid:  2,
	}, st)
}

func TestCheckReaderDump(t *testing.T) {
	var buf bytes.Buffer
	st, err := checkReader(strings.NewReader(exposition), log.With("input", "test"), &buf)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, st.Samples+st.Metadata)

	require.Contains(t, lines[0], `"kind":"HELP"`)
	require.Contains(t, lines[0], `"name":"http_requests_total"`)
	require.Contains(t, lines[2], `"kind":"SAMPLE"`)
	require.Contains(t, lines[2], `"value":"1027"`)
	require.Contains(t, lines[2], `"timestamp":1395066363`)

	// +Inf must survive the trip through JSON.
	var inf string
	for _, l := range lines {
		if strings.Contains(l, "something_weird") {
			inf = l
		}
	}
	require.Contains(t, inf, `"value":"+Inf"`)
	require.Contains(t, inf, `"timestamp":-3982.045`)
}

func TestCheckReaderEmpty(t *testing.T) {
	st, err := checkReader(strings.NewReader(""), log.With("input", "test"), nil)
	require.NoError(t, err)
	require.Equal(t, lineStats{}, st)
}
