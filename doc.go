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

/*
Package semver parses Semantic Versioning 2.0.0 version strings
(https://semver.org) and npm-style version ranges
(https://docs.npmjs.com/misc/semver), and answers containment and
satisfying-version queries against a parsed range.

A Version is immutable once constructed and totally ordered: major,
minor, and patch compare numerically; a pre-release version always
sorts below the otherwise-equal release version; build metadata never
affects comparison. Parsing never panics or returns an error across the
public API: a malformed string yields a Version whose Ok method
reports false, and such a Version must not be used in range queries.

A Range is parsed from the grammar

	range-set  := (range (logical-or range)*)?
	range      := hyphen | simple+
	hyphen     := partial dash partial
	simple     := partial | op-partial | caret-partial | tilde-partial

where a partial version allows major, minor, or patch to be absent or a
wildcard (*, x, X). The parser reduces each surface form (hyphen range,
operator comparator, bare partial, tilde, caret) to concrete lower and
upper bounds and builds an AST of and/or/comparator nodes, which is then
flattened and sorted into a canonical normal form so that two ranges
that parse to the same set of alternatives compare equal.

	r := semver.MustParseRange(">=1.2.3 <2.0.0 || 3.0.0")
	r.Satisfies(semver.MustParse("1.5.0")) // true
	r.Satisfies(semver.MustParse("3.0.0")) // true
	r.Satisfies(semver.MustParse("2.5.0")) // false

Range intersection and complement are not implemented; the upstream
C++ implementation this package was ported from left them unfinished,
and no caller in this module's scope needs them.
*/
package semver
