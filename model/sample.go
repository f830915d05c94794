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

package model

import (
	"fmt"
	"strconv"
	"strings"
)

// A SampleValue is a representation of a value for a given sample at a given
// time. It may be +Inf, -Inf or NaN, as double parsing allows.
type SampleValue float64

// Equal does a straight v==o.
func (v SampleValue) Equal(o SampleValue) bool {
	return v == o
}

// MarshalJSON implements json.Marshaler. The value is emitted as a quoted
// string so that +Inf, -Inf and NaN survive the trip through JSON.
func (v SampleValue) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`"%s"`, v)), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *SampleValue) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("sample value must be a quoted string")
	}
	f, err := strconv.ParseFloat(string(b[1:len(b)-1]), 64)
	if err != nil {
		return err
	}
	*v = SampleValue(f)
	return nil
}

func (v SampleValue) String() string {
	return strconv.FormatFloat(float64(v), 'f', -1, 64)
}

// Sample is one parsed metric observation line: a metric name, the labels
// attached to it, a mandatory value and an optional millisecond timestamp
// (nil when the line carried none).
type Sample struct {
	Name      string
	Labels    LabelList
	Value     SampleValue
	Timestamp *Time
}

// Equal compares the name, then the labels, then the timestamp, then the
// value.
func (s *Sample) Equal(o *Sample) bool {
	if s == o {
		return true
	}
	if s.Name != o.Name {
		return false
	}
	if !s.Labels.Equal(o.Labels) {
		return false
	}
	if (s.Timestamp == nil) != (o.Timestamp == nil) {
		return false
	}
	if s.Timestamp != nil && !s.Timestamp.Equal(*o.Timestamp) {
		return false
	}
	return s.Value.Equal(o.Value)
}

func (s *Sample) String() string {
	var b strings.Builder
	b.WriteString(s.Name)
	if len(s.Labels) > 0 {
		b.WriteString(s.Labels.String())
	}
	b.WriteString(" ")
	b.WriteString(s.Value.String())
	if s.Timestamp != nil {
		fmt.Fprintf(&b, " %d", int64(*s.Timestamp))
	}
	return b.String()
}
