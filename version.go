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

package semver

import (
	"math"
	"strconv"
	"strings"
)

// Version is an immutable, totally ordered SemVer 2.0.0 version.
//
// The zero Version is not valid; construct one with Parse, ParseLoose,
// New, Min, Max, or Invalid.
type Version struct {
	major, minor, patch uint64
	prerelease          string
	build               string
	ok                  bool
}

// Invalid returns the sentinel Version used to signal a failed query,
// such as MinSatisfying over a list with no satisfying element. Its
// Ok method reports false.
func Invalid() Version { return Version{} }

// Min returns the smallest valid version, 0.0.0.
func Min() Version { return Version{ok: true} }

// Max returns the largest representable version: all three numeric
// components at the type's upper bound.
func Max() Version {
	return Version{major: math.MaxUint64, minor: math.MaxUint64, patch: math.MaxUint64, ok: true}
}

// New constructs a Version from numeric components and an optional
// pre-release identifier. Build metadata cannot be set this way since
// it never affects comparison or equality; parse a string if a
// specific build tag must be preserved in String's output.
func New(major, minor, patch uint64, prerelease ...string) Version {
	v := Version{major: major, minor: minor, patch: patch, ok: true}
	if len(prerelease) > 0 {
		pre := strings.Join(prerelease, ".")
		if pre != "" && !validDotSeparatedIdentifiers(pre) {
			return Invalid()
		}
		v.prerelease = pre
	}
	return v
}

// Parse parses s as a strict SemVer 2.0.0 version string. On failure
// the returned Version's Ok method reports false; no error is ever
// returned across this boundary, matching the package's error model.
func Parse(s string) Version {
	return parseVersion(s, false)
}

// ParseLoose is a convenience form used by CLI frontends: it trims
// surrounding whitespace, strips a leading non-digit prefix such as
// "v", ">=", "^", or "~", and removes internal whitespace between
// lexical elements before parsing strictly. Parse is the canonical
// entry point; prefer it unless the input may carry such a prefix.
func ParseLoose(s string) Version {
	return parseVersion(s, true)
}

// MustParse is like Parse but panics if s is not a valid version. It
// exists for tests and package-level constants, never for input that
// might legitimately fail to parse.
func MustParse(s string) Version {
	v := Parse(s)
	if !v.Ok() {
		panic("semver: MustParse: invalid version " + strconv.Quote(s))
	}
	return v
}

func parseVersion(s string, loose bool) Version {
	if loose {
		s = stripLoosePrefix(s)
	}
	p := &versionParser{s: s}
	maj, ok := p.numericIdentifier()
	if !ok {
		return Invalid()
	}
	if !p.consume('.') {
		return Invalid()
	}
	min, ok := p.numericIdentifier()
	if !ok {
		return Invalid()
	}
	if !p.consume('.') {
		return Invalid()
	}
	pat, ok := p.numericIdentifier()
	if !ok {
		return Invalid()
	}
	var pre, build string
	if p.consume('-') {
		pre, ok = p.dotSeparatedIdentifiers()
		if !ok {
			return Invalid()
		}
	}
	if p.consume('+') {
		build, ok = p.dotSeparatedIdentifiers()
		if !ok {
			return Invalid()
		}
	}
	if !p.eof() {
		return Invalid()
	}
	return Version{major: maj, minor: min, patch: pat, prerelease: pre, build: build, ok: true}
}

// stripLoosePrefix trims whitespace, drops a leading run of non-digit,
// non-space characters (a prefix such as "v", ">=", "^", "~"), and
// removes any remaining internal whitespace.
func stripLoosePrefix(s string) string {
	s = strings.TrimSpace(s)
	i := 0
	for i < len(s) && !isDigit(rune(s[i])) && s[i] != ' ' {
		i++
	}
	s = s[i:]
	return strings.Join(strings.Fields(s), "")
}

type versionParser struct {
	s   string
	pos int
}

func (p *versionParser) eof() bool { return p.pos >= len(p.s) }

func (p *versionParser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.s[p.pos]
}

func (p *versionParser) consume(c byte) bool {
	if p.peek() == c {
		p.pos++
		return true
	}
	return false
}

// numericIdentifier parses a SemVer numeric core component: "0" or
// [1-9][0-9]*. A leading zero in a multi-digit component is rejected.
func (p *versionParser) numericIdentifier() (uint64, bool) {
	start := p.pos
	for !p.eof() && isDigit(rune(p.peek())) {
		p.pos++
	}
	digits := p.s[start:p.pos]
	if digits == "" {
		return 0, false
	}
	if len(digits) > 1 && digits[0] == '0' {
		return 0, false
	}
	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// dotSeparatedIdentifiers parses a non-empty dot-separated list of
// identifiers (pre-release or build metadata) and returns the raw
// matched text, unchanged, for storage.
func (p *versionParser) dotSeparatedIdentifiers() (string, bool) {
	start := p.pos
	if !p.identifier() {
		return "", false
	}
	for p.consume('.') {
		if !p.identifier() {
			return "", false
		}
	}
	return p.s[start:p.pos], true
}

// identifier parses one alphanumeric-or-hyphen run of at least one
// character.
func (p *versionParser) identifier() bool {
	start := p.pos
	for !p.eof() && isIdentChar(rune(p.peek())) {
		p.pos++
	}
	return p.pos > start
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentChar(r rune) bool { return isDigit(r) || isLetter(r) || r == '-' }

// validDotSeparatedIdentifiers reports whether s is a well-formed,
// non-empty, dot-separated SemVer identifier list. Used to validate
// pre-release strings supplied programmatically via New.
func validDotSeparatedIdentifiers(s string) bool {
	if s == "" {
		return false
	}
	for _, part := range strings.Split(s, ".") {
		if part == "" {
			return false
		}
		for _, r := range part {
			if !isIdentChar(r) {
				return false
			}
		}
	}
	return true
}

// Major returns the major version component.
func (v Version) Major() uint64 { return v.major }

// Minor returns the minor version component.
func (v Version) Minor() uint64 { return v.minor }

// Patch returns the patch version component.
func (v Version) Patch() uint64 { return v.patch }

// Prerelease returns the dot-separated pre-release identifiers,
// without the leading hyphen, or "" if none.
func (v Version) Prerelease() string { return v.prerelease }

// Build returns the dot-separated build identifiers, without the
// leading plus sign, or "" if none. Build metadata never affects
// ordering or equality.
func (v Version) Build() string { return v.build }

// Ok reports whether v was successfully parsed or constructed. An
// invalid Version must not be used in Range queries.
func (v Version) Ok() bool { return v.ok }

// HasPrerelease reports whether v carries a pre-release tag.
func (v Version) HasPrerelease() bool { return v.prerelease != "" }

// String returns the canonical "major.minor.patch[-prerelease][+build]"
// representation, or "<invalid>" if v is not Ok.
func (v Version) String() string {
	if !v.Ok() {
		return "<invalid>"
	}
	var b strings.Builder
	b.WriteString(strconv.FormatUint(v.major, 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatUint(v.minor, 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatUint(v.patch, 10))
	if v.prerelease != "" {
		b.WriteByte('-')
		b.WriteString(v.prerelease)
	}
	if v.build != "" {
		b.WriteByte('+')
		b.WriteString(v.build)
	}
	return b.String()
}

// Equal reports whether v and o have equal major, minor, patch, and
// pre-release. Build metadata is always ignored.
func (v Version) Equal(o Version) bool { return v.Compare(o) == 0 }

// Less reports whether v sorts strictly before o.
func (v Version) Less(o Version) bool { return v.Compare(o) < 0 }

// LessOrEqual reports whether v sorts at or before o.
func (v Version) LessOrEqual(o Version) bool { return v.Compare(o) <= 0 }

// Greater reports whether v sorts strictly after o.
func (v Version) Greater(o Version) bool { return v.Compare(o) > 0 }

// GreaterOrEqual reports whether v sorts at or after o.
func (v Version) GreaterOrEqual(o Version) bool { return v.Compare(o) >= 0 }

// Compare returns -1, 0, or +1 as v is less than, equal to, or
// greater than o, following SemVer 2.0.0 precedence. Build metadata is
// ignored.
func (v Version) Compare(o Version) int {
	if c := cmpUint64(v.major, o.major); c != 0 {
		return c
	}
	if c := cmpUint64(v.minor, o.minor); c != 0 {
		return c
	}
	if c := cmpUint64(v.patch, o.patch); c != 0 {
		return c
	}

	vPre, oPre := v.prerelease != "", o.prerelease != ""
	switch {
	case !vPre && !oPre:
		return 0
	case vPre && !oPre:
		return -1 // a version with a pre-release is less than the release.
	case !vPre && oPre:
		return 1
	}
	return comparePrerelease(v.prerelease, o.prerelease)
}

func cmpUint64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// comparePrerelease compares two non-empty pre-release strings
// field-by-field, split on '.', following SemVer 2.0.0 precedence:
// numeric fields compare as integers, non-numeric fields compare
// lexically, numeric always sorts below non-numeric, and the version
// with fewer fields sorts lower when all preceding fields are equal.
func comparePrerelease(a, b string) int {
	af := strings.Split(a, ".")
	bf := strings.Split(b, ".")
	n := len(af)
	if len(bf) < n {
		n = len(bf)
	}
	for i := 0; i < n; i++ {
		if c := compareIdentifier(af[i], bf[i]); c != 0 {
			return c
		}
	}
	return cmpUint64(uint64(len(af)), uint64(len(bf)))
}

func compareIdentifier(a, b string) int {
	an, aNum := isNumericIdentifier(a)
	bn, bNum := isNumericIdentifier(b)
	switch {
	case aNum && bNum:
		return cmpUint64(an, bn)
	case aNum && !bNum:
		return -1
	case !aNum && bNum:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

func isNumericIdentifier(s string) (uint64, bool) {
	for _, r := range s {
		if !isDigit(r) {
			return 0, false
		}
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
