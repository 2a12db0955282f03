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

import "strings"

// Range is an immutable, normalized npm-style version range: a
// sequence of top-level alternatives, implicitly OR-combined. Each
// alternative is either a single comparator or an and-node of
// comparators. The empty string is a valid range equivalent to
// ">=0.0.0".
type Range struct {
	alternatives []*node
	ok           bool
}

// ParseRange parses s as a version range. On failure the returned
// Range's Ok method reports false.
func ParseRange(s string) Range {
	alts, ok := parseRangeAlternatives(s)
	if !ok {
		return Range{}
	}
	return Range{alternatives: alts, ok: true}
}

// MustParseRange is like ParseRange but panics if s does not parse.
// For tests and package-level constants only.
func MustParseRange(s string) Range {
	r := ParseRange(s)
	if !r.Ok() {
		panic("semver: MustParseRange: invalid range " + s)
	}
	return r
}

// Ok reports whether r was successfully parsed.
func (r Range) Ok() bool { return r.ok }

// Satisfies reports whether v is admitted by r: true iff any
// top-level alternative evaluates true against v. An invalid range
// satisfies nothing.
func (r Range) Satisfies(v Version) bool {
	if !r.ok {
		return false
	}
	for _, a := range r.alternatives {
		if a.Eval(v) {
			return true
		}
	}
	return false
}

// Outside is the logical negation of Satisfies.
func (r Range) Outside(v Version) bool { return !r.Satisfies(v) }

// MinSatisfying returns the least version (under the version order)
// among vs that satisfies r, or Invalid() if none does. Ties are
// broken by input order: the first satisfier that is ≤ all later
// satisfiers wins.
func (r Range) MinSatisfying(vs []Version) Version {
	result := Invalid()
	for _, v := range vs {
		if !r.Satisfies(v) {
			continue
		}
		if !result.Ok() || v.Less(result) {
			result = v
		}
	}
	return result
}

// MaxSatisfying returns the greatest version among vs that satisfies
// r, or Invalid() if none does.
func (r Range) MaxSatisfying(vs []Version) Version {
	result := Invalid()
	for _, v := range vs {
		if !r.Satisfies(v) {
			continue
		}
		if !result.Ok() || v.Greater(result) {
			result = v
		}
	}
	return result
}

// Min returns the infimum of the set of versions r admits, or
// Invalid() if r is invalid or admits nothing (every alternative has
// an empty intersection, as in ">2.0.0 <1.0.0").
func (r Range) Min() Version {
	return r.extremum(true)
}

// Max returns the supremum of the set of versions r admits.
func (r Range) Max() Version {
	return r.extremum(false)
}

func (r Range) extremum(wantMin bool) Version {
	if !r.ok || len(r.alternatives) == 0 {
		return Invalid()
	}
	var best Version
	found := false
	for _, a := range r.alternatives {
		lo, hi, ok := altBounds(a)
		if !ok {
			continue
		}
		candidate := lo
		if !wantMin {
			candidate = hi
		}
		if !found {
			best = candidate
			found = true
			continue
		}
		if wantMin && candidate.Less(best) {
			best = candidate
		}
		if !wantMin && candidate.Greater(best) {
			best = candidate
		}
	}
	if !found {
		return Invalid()
	}
	return best
}

// altBounds computes the [lo, hi] interval an alternative admits,
// per the node-level bounds of §4.3: a leaf's bounds follow directly
// from its relation; an and-node's bounds are the intersection (max
// of lowers, min of uppers) of its children's, contributing nothing
// if that intersection is empty.
func altBounds(n *node) (lo, hi Version, ok bool) {
	switch n.kind {
	case kindEq:
		return n.version, n.version, true
	case kindLt:
		return Min(), predecessor(n.version), true
	case kindLe:
		return Min(), n.version, true
	case kindGt:
		return successor(n.version), Max(), true
	case kindGe:
		return n.version, Max(), true
	case kindAnd:
		lo, hi = Min(), Max()
		for _, c := range n.children {
			clo, chi, cok := altBounds(c)
			if !cok {
				return Version{}, Version{}, false
			}
			if clo.Greater(lo) {
				lo = clo
			}
			if chi.Less(hi) {
				hi = chi
			}
		}
		if lo.Greater(hi) {
			return Version{}, Version{}, false
		}
		return lo, hi, true
	default:
		// The normalizer never leaves an or-node as a bare
		// alternative or nested under and; nothing in this package
		// constructs one.
		return Version{}, Version{}, false
	}
}

// Equal reports whether r and o are the same normalized range: equal
// validity and, if both valid, the same sequence of structurally
// equal alternatives. This is sound but incomplete: ranges admitting
// the same set of versions through syntactically different forms
// (e.g. "1.2.3" vs ">=1.2.3 <=1.2.3") compare unequal.
func (r Range) Equal(o Range) bool {
	if r.ok != o.ok {
		return false
	}
	if !r.ok {
		return true
	}
	if len(r.alternatives) != len(o.alternatives) {
		return false
	}
	for i := range r.alternatives {
		if !r.alternatives[i].Equal(o.alternatives[i]) {
			return false
		}
	}
	return true
}

// String renders the normalized range: alternatives separated by
// " || ", and-node children space-separated, each leaf as
// "<op><version>". Re-parsing the result yields an equal Range.
func (r Range) String() string {
	if !r.ok {
		return "<invalid>"
	}
	parts := make([]string, len(r.alternatives))
	for i, a := range r.alternatives {
		parts[i] = nodeString(a)
	}
	return strings.Join(parts, " || ")
}

func nodeString(n *node) string {
	if n.isLeaf() {
		return n.opSymbol() + n.version.String()
	}
	children := make([]string, len(n.children))
	for i, c := range n.children {
		children[i] = nodeString(c)
	}
	return strings.Join(children, " ")
}
