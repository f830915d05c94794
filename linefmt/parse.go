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

// Package linefmt decodes single lines of the Prometheus text exposition
// format into model.Sample and model.Comment records.
//
// The package is a per-line decoder, not a stream processor: callers split
// their input into lines and route each one to TryReadSample or
// TryReadComment (typically lines starting with '#' to the latter). Each
// call is a pure function of its input, so the package is safe for
// concurrent use without synchronization.
package linefmt

import (
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/promwire/promwire/model"
)

// TryReadSample attempts the full sample grammar
//
//	metric_name{label_name="label_value", ...} value [timestamp]
//
// against the given line. It returns ok=false on any grammar failure
// (malformed quoting, unparseable value, dangling label comma). Trailing
// characters after a successful parse are discarded: the grammar accepts a
// prefix match rather than requiring a full-line match.
func TryReadSample(line string) (model.Sample, bool) {
	_, s, ok := readSample(line, 0)
	if !ok {
		return model.Sample{}, false
	}
	return s, true
}

// TryReadComment attempts the comment grammar
//
//	# HELP|TYPE metric_name free text
//
// against the given line. Lines that do not begin with '#' followed by one
// of the two recognized keywords yield ok=false; there is no generic comment
// kind.
func TryReadComment(line string) (model.Comment, bool) {
	_, c, ok := readComment(line, 0)
	if !ok {
		return model.Comment{}, false
	}
	return c, true
}

// Every rule below takes the input string and a cursor position and returns
// the advanced cursor alongside its result. Rules that can fail return the
// original cursor on failure; composed rules treat any failure as failure of
// the whole line.

// isNameRune reports whether r may appear in a metric or label name.
// See https://prometheus.io/docs/concepts/data_model/#metric-names-and-labels
func isNameRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == ':' || r == '.'
}

// skipBlankTab advances pos past spaces and tabs.
func skipBlankTab(s string, pos int) int {
	for pos < len(s) && (s[pos] == ' ' || s[pos] == '\t') {
		pos++
	}
	return pos
}

// readName skips leading blanks, then consumes the maximal run of name
// runes. It cannot fail; an empty name is a valid outcome and callers that
// require one must check separately.
func readName(s string, pos int) (int, string) {
	pos = skipBlankTab(s, pos)
	start := pos
	for pos < len(s) {
		r, n := utf8.DecodeRuneInString(s[pos:])
		if !isNameRune(r) {
			break
		}
		pos += n
	}
	return pos, s[start:pos]
}

// isEscapable reports whether b may follow a backslash inside a quoted
// label value.
func isEscapable(b byte) bool {
	return b == '"' || b == '\\' || b == '\'' || b == 'n'
}

// readQuotedString consumes a double-quoted string at pos. Inside the quotes
// any byte except '\' and '"' passes through; a backslash must be followed
// by a double quote, a backslash, a single quote or the letter n. Reducing
// doubled backslashes to one is the only decoding performed: all other
// escape pairs stay literal two-character sequences in the result. A
// missing quote, an invalid escape or a lone trailing backslash fails.
func readQuotedString(s string, pos int) (int, string, bool) {
	orig := pos
	if pos >= len(s) || s[pos] != '"' {
		return orig, "", false
	}
	pos++
	start := pos
	for pos < len(s) {
		switch s[pos] {
		case '"':
			return pos + 1, strings.ReplaceAll(s[start:pos], `\\`, `\`), true
		case '\\':
			if pos+1 >= len(s) || !isEscapable(s[pos+1]) {
				return orig, "", false
			}
			pos += 2
		default:
			pos++
		}
	}
	return orig, "", false // no closing quote
}

// readLabelPair consumes one `name = "value"` pair.
func readLabelPair(s string, pos int) (int, string, string, bool) {
	pos, name := readName(s, pos)
	pos = skipBlankTab(s, pos)
	if pos >= len(s) || s[pos] != '=' {
		return pos, "", "", false
	}
	pos = skipBlankTab(s, pos+1)
	pos, value, ok := readQuotedString(s, pos)
	if !ok {
		return pos, "", "", false
	}
	return pos, name, value, true
}

// readLabels consumes an optional `{name="value", ...}` block. Absence of a
// '{' after leading blanks is a success with an empty list, not a failure.
// Whitespace is tolerated around '{', '}', '=' and ','. A trailing comma
// before '}' fails the whole block. Duplicate names overwrite earlier
// entries.
func readLabels(s string, pos int) (int, model.LabelList, bool) {
	orig := pos
	p := skipBlankTab(s, pos)
	if p >= len(s) || s[p] != '{' {
		return orig, model.LabelList{}, true
	}
	p++
	labels := model.LabelList{}
	if next, name, value, ok := readLabelPair(s, p); ok {
		labels[name] = value
		p = next
		for {
			sep := skipBlankTab(s, p)
			if sep >= len(s) || s[sep] != ',' {
				break
			}
			next, name, value, ok := readLabelPair(s, skipBlankTab(s, sep+1))
			if !ok {
				// The separator is not consumed, so the '}' check
				// below fails on the dangling comma.
				break
			}
			labels[name] = value
			p = next
		}
	}
	p = skipBlankTab(s, p)
	if p >= len(s) || s[p] != '}' {
		return orig, nil, false
	}
	return p + 1, labels, true
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// scanFloat returns the end of the longest float literal starting at pos: an
// optional sign, then either a digit run with optional fraction, a fraction
// with no integer part, or one of the case-insensitive specials inf,
// infinity and nan that double parsing tolerates. An exponent marker is
// consumed only when at least one digit follows it, so "1.5e" scans as the
// literal "1.5".
func scanFloat(s string, pos int) (int, bool) {
	p := pos
	if p < len(s) && (s[p] == '+' || s[p] == '-') {
		p++
	}
	for _, lit := range []string{"infinity", "inf", "nan"} {
		if len(s)-p >= len(lit) && strings.EqualFold(s[p:p+len(lit)], lit) {
			return p + len(lit), true
		}
	}
	mantissa := false
	start := p
	for p < len(s) && isDigit(s[p]) {
		p++
	}
	if p > start {
		mantissa = true
	}
	if p < len(s) && s[p] == '.' {
		frac := p + 1
		for frac < len(s) && isDigit(s[frac]) {
			frac++
		}
		if mantissa || frac > p+1 {
			p = frac
			mantissa = true
		}
	}
	if !mantissa {
		return pos, false
	}
	if p < len(s) && (s[p] == 'e' || s[p] == 'E') {
		q := p + 1
		if q < len(s) && (s[q] == '+' || s[q] == '-') {
			q++
		}
		expStart := q
		for q < len(s) && isDigit(s[q]) {
			q++
		}
		if q > expStart {
			p = q
		}
	}
	return p, true
}

// readValue consumes the sample value: the literals +Inf and -Inf, or
// standard decimal/exponential notation. Nothing numeric at the cursor
// fails. No quotes are expected or consumed here.
func readValue(s string, pos int) (int, float64, bool) {
	orig := pos
	p := skipBlankTab(s, pos)
	if strings.HasPrefix(s[p:], "+Inf") {
		return p + 4, math.Inf(+1), true
	}
	if strings.HasPrefix(s[p:], "-Inf") {
		return p + 4, math.Inf(-1), true
	}
	end, ok := scanFloat(s, p)
	if !ok {
		return orig, 0, false
	}
	v, err := strconv.ParseFloat(s[p:end], 64)
	if err != nil {
		return orig, 0, false
	}
	return end, v, true
}

// readTimestamp consumes an optional trailing timestamp. The number is read
// with float tolerance and truncated toward zero to milliseconds, matching
// the exposition format's allowance for fractional timestamps. When nothing
// numeric follows, the cursor stays where it was (leading blanks included)
// and the timestamp is simply absent. This rule cannot fail.
func readTimestamp(s string, pos int) (int, *model.Time) {
	p := skipBlankTab(s, pos)
	end, ok := scanFloat(s, p)
	if !ok {
		return pos, nil
	}
	f, err := strconv.ParseFloat(s[p:end], 64)
	if err != nil {
		return pos, nil
	}
	ts := model.Time(f)
	return end, &ts
}

// readSample sequences name, label block, value and timestamp, in that
// order, with no backtracking across the boundaries once a rule commits.
// The value is mandatory; name, labels and timestamp may each be empty or
// absent. Unconsumed trailing characters are left to the caller.
func readSample(s string, pos int) (int, model.Sample, bool) {
	pos, name := readName(s, pos)
	pos, labels, ok := readLabels(s, pos)
	if !ok {
		return pos, model.Sample{}, false
	}
	pos, value, ok := readValue(s, pos)
	if !ok {
		return pos, model.Sample{}, false
	}
	pos, ts := readTimestamp(s, pos)
	return pos, model.Sample{
		Name:      name,
		Labels:    labels,
		Value:     model.SampleValue(value),
		Timestamp: ts,
	}, true
}

// readComment recognizes `# HELP|TYPE <name> <text>`. The marker and
// keyword are mandatory; the name may be empty and the free text runs
// verbatim to the end of the line (a trailing newline, if the caller passed
// one, is excluded).
func readComment(s string, pos int) (int, model.Comment, bool) {
	orig := pos
	if pos >= len(s) || s[pos] != '#' {
		return orig, model.Comment{}, false
	}
	pos = skipBlankTab(s, pos+1)
	var kind model.CommentKind
	switch {
	case strings.HasPrefix(s[pos:], "HELP"):
		kind = model.HelpComment
		pos += 4
	case strings.HasPrefix(s[pos:], "TYPE"):
		kind = model.TypeComment
		pos += 4
	default:
		return orig, model.Comment{}, false
	}
	pos, name := readName(s, pos)
	pos = skipBlankTab(s, pos)
	end := len(s)
	if i := strings.IndexByte(s[pos:], '\n'); i >= 0 {
		end = pos + i
		if end > pos && s[end-1] == '\r' {
			end--
		}
	}
	c := model.Comment{Name: name, Kind: kind, Text: s[pos:end]}
	return end, c, true
}
