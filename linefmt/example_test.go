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

package linefmt_test

import (
	"fmt"

	"github.com/promwire/promwire/linefmt"
)

func ExampleTryReadSample() {
	s, ok := linefmt.TryReadSample(`http_requests_total{method="post",code="200"} 1.5e3 1395066363000`)
	fmt.Println(ok, s.Name, s.Value, *s.Timestamp)

	method, _ := s.Labels.GetString("method")
	code, _ := s.Labels.GetNumber("code")
	fmt.Println(method, code)

	_, ok = linefmt.TryReadSample("# test")
	fmt.Println(ok)
	// Output:
	// true http_requests_total 1500 1395066363
	// post 200
	// false
}

func ExampleTryReadComment() {
	c, ok := linefmt.TryReadComment("# HELP node_cpu_seconds_total Seconds the CPUs spent in each mode.")
	fmt.Println(ok, c.Kind, c.Name)
	fmt.Println(c.Text)

	_, ok = linefmt.TryReadComment("metric 12345")
	fmt.Println(ok)
	// Output:
	// true HELP node_cpu_seconds_total
	// Seconds the CPUs spent in each mode.
	// false
}
