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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommentKindString(t *testing.T) {
	require.Equal(t, "HELP", HelpComment.String())
	require.Equal(t, "TYPE", TypeComment.String())
	require.Equal(t, "CommentKind(42)", CommentKind(42).String())
}

func TestCommentKindJSON(t *testing.T) {
	b, err := json.Marshal(TypeComment)
	require.NoError(t, err)
	require.Equal(t, `"TYPE"`, string(b))
}

func TestCommentEqual(t *testing.T) {
	a := Comment{Name: "node_cpu_seconds_total", Kind: HelpComment, Text: "Seconds the CPUs spent in each mode."}
	require.True(t, a.Equal(a))
	require.False(t, a.Equal(Comment{Name: a.Name, Kind: TypeComment, Text: a.Text}))
}

func TestCommentString(t *testing.T) {
	c := Comment{Name: "node_cpu_seconds_total", Kind: TypeComment, Text: "counter"}
	require.Equal(t, "# TYPE node_cpu_seconds_total counter", c.String())

	require.Equal(t, "# HELP", Comment{Kind: HelpComment}.String())
}
