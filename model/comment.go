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
	"strings"
)

// CommentKind enumerates the recognized metadata comment keywords. There is
// no generic or unknown kind: a line with any other keyword is not a Comment.
type CommentKind int

const (
	// HelpComment is a `# HELP <name> <text>` line.
	HelpComment CommentKind = iota
	// TypeComment is a `# TYPE <name> <text>` line.
	TypeComment
)

func (k CommentKind) String() string {
	switch k {
	case HelpComment:
		return "HELP"
	case TypeComment:
		return "TYPE"
	}
	return fmt.Sprintf("CommentKind(%d)", int(k))
}

// MarshalJSON implements json.Marshaler, emitting the keyword.
func (k CommentKind) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", k.String())), nil
}

// Comment is one metadata declaration line. Name is the metric name the
// comment describes (may be empty if the line carried none), Text the free
// text after it (may be empty).
type Comment struct {
	Name string
	Kind CommentKind
	Text string
}

// Equal returns true iff both comments carry the same kind, name and text.
func (c Comment) Equal(o Comment) bool {
	return c == o
}

func (c Comment) String() string {
	parts := []string{"#", c.Kind.String()}
	if c.Name != "" {
		parts = append(parts, c.Name)
	}
	if c.Text != "" {
		parts = append(parts, c.Text)
	}
	return strings.Join(parts, " ")
}
