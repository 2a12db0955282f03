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

// lowerBound computes the least version a comparator term covers,
// following the rules in the bound-derivation table: an absent or
// wildcarded major yields Min(); each subsequent absent/wildcarded
// component is implicitly zero. Build metadata is never part of a
// bound.
func lowerBound(p partial) Version {
	if p.major == nil {
		return Min()
	}
	if p.minor == nil {
		return New(*p.major, 0, 0)
	}
	if p.patch == nil {
		return New(*p.major, *p.minor, 0)
	}
	if p.prerelease != "" {
		return New(*p.major, *p.minor, *p.patch, p.prerelease)
	}
	return New(*p.major, *p.minor, *p.patch)
}

// upperBound computes the least version excluded by a comparator
// term: caret expands to the next incompatible release (the largest
// non-zero leading component plus one), tilde and a wildcarded patch
// expand to the next minor, and a fully concrete term's upper bound
// equals its lower bound. The synthetic "-0" pre-release on a
// next-release bound excludes all pre-releases of that release while
// remaining exclusive of the release itself.
func upperBound(p partial) Version {
	if p.major == nil {
		return Max()
	}
	if p.op == "^" && *p.major != 0 {
		return New(*p.major+1, 0, 0, "0")
	}
	if p.minor == nil {
		return New(*p.major+1, 0, 0, "0")
	}
	if p.op == "^" && *p.minor != 0 {
		return New(*p.major, *p.minor+1, 0, "0")
	}
	if p.patch == nil || p.op == "~" {
		return New(*p.major, *p.minor+1, 0, "0")
	}
	if p.op == "^" && *p.patch != 0 {
		return New(*p.major, *p.minor, *p.patch+1, "0")
	}
	return lowerBound(p)
}

// successor returns the smallest version strictly greater than v
// reachable by incrementing patch by one; any pre-release on v is
// dropped, since the incremented release version always exceeds all
// of v's pre-releases.
func successor(v Version) Version {
	return New(v.Major(), v.Minor(), v.Patch()+1)
}

// predecessor returns the node-level bound used for lt(v): if v
// carries a pre-release, the release version with the same major,
// minor, and patch (which sorts above v; for a derived "-0" upper
// bound such as 2.0.0-0 this gives 2.0.0); if v's patch is nonzero,
// the previous patch. When v's patch is already zero and v carries no
// pre-release, v itself is returned, so the bound equals the excluded
// limit. Upper bounds derived from caret, tilde, or partial terms
// carry "-0" and take the pre-release branch; explicit "<" comparators
// such as "<1.2.3" or "<2.0.0" take the other two.
func predecessor(v Version) Version {
	if v.HasPrerelease() {
		return New(v.Major(), v.Minor(), v.Patch())
	}
	if v.Patch() > 0 {
		return New(v.Major(), v.Minor(), v.Patch()-1)
	}
	return New(v.Major(), v.Minor(), v.Patch())
}
