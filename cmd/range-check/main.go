// Copyright 2023 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// range-check reports, via its exit code, whether VERSION satisfies
// RANGE: 0 if it does, -1 if it does not, with distinct exit codes
// for a usage error or either argument failing to parse.
package main

import (
	"flag"
	"os"

	"github.com/mariokonrad/semver"
)

func main() {
	flag.Usage = func() {
		os.Stderr.WriteString("usage: range-check RANGE VERSION\n")
	}
	flag.Parse()
	args := flag.Args()
	if len(args) != 2 {
		flag.Usage()
		os.Exit(2)
	}

	r := semver.ParseRange(args[0])
	if !r.Ok() {
		os.Exit(3)
	}
	v := semver.Parse(args[1])
	if !v.Ok() {
		os.Exit(4)
	}
	if r.Satisfies(v) {
		os.Exit(0)
	}
	os.Exit(-1)
}
