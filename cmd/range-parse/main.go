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

// range-parse reports, via its exit code, whether a single argument
// is a well-formed version range. It prints nothing except a usage
// line on stderr when the argument count is wrong.
package main

import (
	"flag"
	"os"

	"github.com/mariokonrad/semver"
)

func main() {
	flag.Usage = func() {
		os.Stderr.WriteString("usage: range-parse RANGE\n")
	}
	flag.Parse()
	args := flag.Args()
	if len(args) != 1 {
		flag.Usage()
		os.Exit(2)
	}

	r := semver.ParseRange(args[0])
	if !r.Ok() {
		os.Exit(3)
	}
	os.Exit(0)
}
