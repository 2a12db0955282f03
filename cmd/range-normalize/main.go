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

// range-normalize prints the normalized form of a version range to
// stdout and exits 0, or exits non-zero on usage or parse failure.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mariokonrad/semver"
)

func main() {
	flag.Usage = func() {
		os.Stderr.WriteString("usage: range-normalize RANGE\n")
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
	fmt.Println(r.String())
	os.Exit(0)
}
