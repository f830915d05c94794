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
	"sort"
	"strconv"
	"strings"
)

// A LabelList is the collection of name/value pairs attached to one sample
// line. Names are unique; iteration order is undefined. Values hold the label
// text unescaped exactly once: doubled backslashes are collapsed to one,
// every other escape pair (`\"`, `\n`, `\'`) stays a literal two-character
// sequence.
type LabelList map[string]string

// LabelListFromMap returns a LabelList backed by m. The map is not copied;
// use Clone first if the caller keeps mutating it.
func LabelListFromMap(m map[string]string) LabelList {
	if m == nil {
		return LabelList{}
	}
	return LabelList(m)
}

// GetString returns the raw text value of the named label.
func (l LabelList) GetString(name string) (string, bool) {
	v, ok := l[name]
	return v, ok
}

// GetNumber reparses the named label value as a float64. A label that is
// present but not numeric-looking counts as absent.
func (l LabelList) GetNumber(name string) (float64, bool) {
	v, ok := l[name]
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Len returns the number of labels in the list.
func (l LabelList) Len() int {
	return len(l)
}

// Equal returns true iff both lists have exactly the same name/value pairs.
func (l LabelList) Equal(o LabelList) bool {
	if len(l) != len(o) {
		return false
	}
	for n, v := range l {
		ov, ok := o[n]
		if !ok || ov != v {
			return false
		}
	}
	return true
}

// Clone returns a copy of the label list.
func (l LabelList) Clone() LabelList {
	ln := make(LabelList, len(l))
	for n, v := range l {
		ln[n] = v
	}
	return ln
}

func (l LabelList) String() string {
	lstrs := make([]string, 0, len(l))
	for n, v := range l {
		lstrs = append(lstrs, fmt.Sprintf("%s=%q", n, v))
	}
	sort.Strings(lstrs)
	return fmt.Sprintf("{%s}", strings.Join(lstrs, ", "))
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (l *LabelList) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var m map[string]string
	if err := unmarshal(&m); err != nil {
		return err
	}
	*l = LabelListFromMap(m)
	return nil
}
