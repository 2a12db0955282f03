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

import "sort"

// rangeParser is a one-token-lookahead recursive-descent parser over
// the grammar:
//
//	range-set := (range (logical_or range)*)?
//	range     := hyphen | simple+
//	hyphen    := partial dash partial
//	simple    := partial | op_partial | caret_partial | tilde_partial
type rangeParser struct {
	lex *lexer
	tok token
}

func newRangeParser(s string) *rangeParser {
	p := &rangeParser{lex: newLexer(s)}
	p.advance()
	return p
}

func (p *rangeParser) advance() { p.tok = p.lex.scan() }

func (p *rangeParser) cur() partial { return p.lex.p }

func isTermToken(t token) bool {
	return t == tokPartial || t == tokOpPartial || t == tokCaretPartial || t == tokTildePartial
}

// parseAlternatives parses a full range-set and returns its top-level
// alternatives, unnormalized (not yet flattened or sorted).
func (p *rangeParser) parseAlternatives() ([]*node, bool) {
	if p.tok == tokEOF {
		return []*node{newGe(Min())}, true
	}
	var alts []*node
	for {
		alt, ok := p.parseRange()
		if !ok {
			return nil, false
		}
		alts = append(alts, alt)
		if p.tok == tokLogicalOr {
			p.advance()
			continue
		}
		break
	}
	if p.tok != tokEOF {
		return nil, false
	}
	return alts, true
}

// parseRange parses a single range: either a hyphen range or a
// sequence of one or more simple terms combined under an implicit
// and.
func (p *rangeParser) parseRange() (*node, bool) {
	if !isTermToken(p.tok) {
		return nil, false
	}
	firstTok := p.tok
	first := p.cur()
	p.advance()

	if firstTok == tokPartial && p.tok == tokDash {
		p.advance()
		if p.tok != tokPartial {
			return nil, false
		}
		second := p.cur()
		p.advance()
		return hyphenNode(first, second), true
	}

	terms := []*node{termNode(first)}
	for isTermToken(p.tok) {
		terms = append(terms, termNode(p.cur()))
		p.advance()
	}
	if len(terms) == 1 {
		return terms[0], true
	}
	return newAnd(terms...), true
}

// termNode reduces one comparator term to its AST node, following the
// parsing-rules table: an explicit operator applies directly to the
// term's lower bound; a bare, caret, or tilde term expands to an
// equality, a lower-bounded-only range, or a closed [lower, upper)
// range, depending on how lower and upper relate.
func termNode(p partial) *node {
	switch p.op {
	case "<":
		return newLt(lowerBound(p))
	case "<=":
		return newLe(lowerBound(p))
	case ">":
		return newGt(lowerBound(p))
	case ">=":
		return newGe(lowerBound(p))
	case "=":
		return newEq(lowerBound(p))
	default: // "", "^", "~"
		lo := lowerBound(p)
		up := upperBound(p)
		switch {
		case lo.Equal(up):
			return newEq(lo)
		case up.Equal(Max()):
			return newGe(lo)
		default:
			return newAnd(newGe(lo), newLt(up))
		}
	}
}

// hyphenNode reduces a hyphen range "a - b" to its AST node. If b is
// a full version, its lower bound is used as an inclusive upper
// bound; otherwise b's derived upper bound is used as an exclusive
// one. If the resulting endpoints are inverted, they are swapped; if
// they collapse to the same version, the range is an equality.
func hyphenNode(a, b partial) *node {
	lo := lowerBound(a)
	hi := upperBound(b)
	hiInclusive := false
	if b.fullVersion {
		hi = lowerBound(b)
		hiInclusive = true
	}
	if lo.Greater(hi) {
		lo, hi = hi, lo
	}
	if lo.Equal(hi) {
		return newEq(lo)
	}
	if hiInclusive {
		return newAnd(newGe(lo), newLe(hi))
	}
	return newAnd(newGe(lo), newLt(hi))
}

// parseRangeAlternatives parses s and returns its normalized
// top-level alternatives: nested ors flattened, alternatives sorted
// into the canonical order of §4.4/§4.5, and-node children likewise
// sorted.
func parseRangeAlternatives(s string) ([]*node, bool) {
	alts, ok := newRangeParser(s).parseAlternatives()
	if !ok {
		return nil, false
	}
	return normalizeAlternatives(alts), true
}

// normalizeAlternatives flattens nested or-subtrees into a flat list
// of alternatives, normalizes each (sorting and-node children), and
// sorts the whole list into canonical order.
func normalizeAlternatives(alts []*node) []*node {
	var flat []*node
	for _, a := range alts {
		flat = append(flat, flattenOr(a)...)
	}
	normalized := make([]*node, len(flat))
	for i, a := range flat {
		normalized[i] = normalizeNode(a)
	}
	sort.Slice(normalized, func(i, j int) bool { return normalized[i].Less(normalized[j]) })
	return normalized
}

func flattenOr(n *node) []*node {
	if n.kind != kindOr {
		return []*node{n}
	}
	var out []*node
	for _, c := range n.children {
		out = append(out, flattenOr(c)...)
	}
	return out
}

// normalizeNode sorts an and-node's children into canonical order;
// any other node is returned unchanged (leaves have no children to
// sort, and nested ors were already removed by flattenOr).
func normalizeNode(n *node) *node {
	if n.kind != kindAnd {
		return n
	}
	children := make([]*node, len(n.children))
	copy(children, n.children)
	sort.Slice(children, func(i, j int) bool { return children[i].Less(children[j]) })
	return &node{kind: kindAnd, children: children}
}
