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

// semver-compare exits with the sign of compare(V1, V2): -1, 0, or 1.
// Both arguments are parsed in loose mode, matching the upstream
// example this was ported from.
package main

import (
	"flag"
	"os"

	"github.com/mariokonrad/semver"
)

func main() {
	flag.Usage = func() {
		os.Stderr.WriteString("usage: semver-compare V1 V2\n")
	}
	flag.Parse()
	args := flag.Args()
	if len(args) != 2 {
		flag.Usage()
		os.Exit(2)
	}

	v1 := semver.ParseLoose(args[0])
	v2 := semver.ParseLoose(args[1])
	if !v1.Ok() || !v2.Ok() {
		os.Exit(3)
	}
	os.Exit(v1.Compare(v2))
}
