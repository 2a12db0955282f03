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
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Version
	}{
		{"0.0.0", New(0, 0, 0)},
		{"1.2.3", New(1, 2, 3)},
		{"1.2.3-alpha", New(1, 2, 3, "alpha")},
		{"1.2.3-alpha.1", New(1, 2, 3, "alpha.1")},
		{"1.2.3-0.3.7", New(1, 2, 3, "0.3.7")},
		{"1.2.3-x.7.z.92", New(1, 2, 3, "x.7.z.92")},
		{"1.2.3+build.1", New(1, 2, 3)},
		{"1.2.3-beta+exp.sha.5114f85", New(1, 2, 3, "beta")},
	}
	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			got := Parse(test.in)
			if !got.Ok() {
				t.Fatalf("Parse(%q).Ok() = false, want true", test.in)
			}
			if !got.Equal(test.want) {
				t.Errorf("Parse(%q) = %v, want %v", test.in, got, test.want)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []string{
		"",
		"1",
		"1.2",
		"1.2.3.4",
		"01.2.3",
		"1.02.3",
		"1.2.03",
		"1.2.3-",
		"1.2.3-.",
		"1.2.3-alpha..1",
		"1.2.3+",
		"v1.2.3",
		"1.2.3 ",
		" 1.2.3",
		"1.2.3-alpha_beta",
	}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			if got := Parse(in); got.Ok() {
				t.Errorf("Parse(%q).Ok() = true, want false (got %v)", in, got)
			}
		})
	}
}

func TestParseLoose(t *testing.T) {
	tests := []struct {
		in   string
		want Version
	}{
		{"v1.2.3", New(1, 2, 3)},
		{"  1.2.3  ", New(1, 2, 3)},
		{">=1.2.3", New(1, 2, 3)},
		{"^1.2.3", New(1, 2, 3)},
		{"~1.2.3", New(1, 2, 3)},
		{"1 . 2 . 3", New(1, 2, 3)},
	}
	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			got := ParseLoose(test.in)
			if !got.Ok() {
				t.Fatalf("ParseLoose(%q).Ok() = false, want true", test.in)
			}
			if !got.Equal(test.want) {
				t.Errorf("ParseLoose(%q) = %v, want %v", test.in, got, test.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		v    Version
		want string
	}{
		{New(1, 2, 3), "1.2.3"},
		{New(1, 2, 3, "alpha.1"), "1.2.3-alpha.1"},
		{Min(), "0.0.0"},
		{Invalid(), "<invalid>"},
	}
	for _, test := range tests {
		if got := test.v.String(); got != test.want {
			t.Errorf("%#v.String() = %q, want %q", test.v, got, test.want)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	inputs := []string{
		"0.0.0", "1.2.3", "1.2.3-alpha", "1.2.3-alpha.1", "1.2.3+build",
		"1.2.3-beta.11+sha.exp", "10.20.30", "1.0.0-alpha+001",
	}
	for _, in := range inputs {
		v := Parse(in)
		if !v.Ok() {
			t.Fatalf("Parse(%q).Ok() = false", in)
		}
		reparsed := Parse(v.String())
		if !reparsed.Ok() {
			t.Fatalf("Parse(%q) (reprint of %q) .Ok() = false", v.String(), in)
		}
		if !v.Equal(reparsed) {
			t.Errorf("Parse(%q).String() = %q, reparsed %v != original %v", in, v.String(), reparsed, v)
		}
	}
}

func TestCompare(t *testing.T) {
	// Ascending order per the SemVer 2.0.0 precedence examples.
	order := []string{
		"1.0.0-alpha",
		"1.0.0-alpha.1",
		"1.0.0-alpha.beta",
		"1.0.0-beta",
		"1.0.0-beta.2",
		"1.0.0-beta.11",
		"1.0.0-rc.1",
		"1.0.0",
		"1.0.1",
		"1.1.0",
		"2.0.0",
	}
	for i := 0; i < len(order); i++ {
		vi := MustParse(order[i])
		for j := 0; j < len(order); j++ {
			vj := MustParse(order[j])
			want := cmpUint64(uint64(i), uint64(j))
			if got := vi.Compare(vj); got != want {
				t.Errorf("Compare(%q, %q) = %d, want %d", order[i], order[j], got, want)
			}
		}
	}
}

func TestCompareBuildIgnored(t *testing.T) {
	a := MustParse("1.2.3+build.1")
	b := MustParse("1.2.3+build.2")
	if !a.Equal(b) {
		t.Errorf("%v.Equal(%v) = false, want true: build metadata must not affect equality", a, b)
	}
	if a.Compare(b) != 0 {
		t.Errorf("%v.Compare(%v) = %d, want 0", a, b, a.Compare(b))
	}
}

func TestCompareTotalOrder(t *testing.T) {
	vs := []Version{
		MustParse("1.0.0-alpha"),
		MustParse("1.0.0-alpha.1"),
		MustParse("1.0.0"),
		MustParse("1.2.3"),
		MustParse("2.0.0"),
		Min(),
		Max(),
	}
	for _, a := range vs {
		for _, b := range vs {
			for _, c := range vs {
				// Antisymmetry.
				if a.Less(b) && b.Less(a) {
					t.Errorf("antisymmetry violated: %v < %v and %v < %v", a, b, b, a)
				}
				// Transitivity.
				if a.Less(b) && b.Less(c) && !a.Less(c) {
					t.Errorf("transitivity violated: %v < %v < %v but not %v < %v", a, b, c, a, c)
				}
			}
			// Totality.
			if !a.Less(b) && !b.Less(a) && !a.Equal(b) {
				t.Errorf("totality violated: neither %v < %v nor %v < %v nor equal", a, b, b, a)
			}
		}
	}
}

func TestAlphaLessThanRelease(t *testing.T) {
	if !MustParse("1.0.0-alpha").Less(MustParse("1.0.0")) {
		t.Error("1.0.0-alpha must be less than 1.0.0")
	}
}

func TestMinMaxSentinels(t *testing.T) {
	min := Min()
	if !min.Ok() || min.Major() != 0 || min.Minor() != 0 || min.Patch() != 0 || min.HasPrerelease() {
		t.Errorf("Min() = %v, want 0.0.0", min)
	}
	max := Max()
	if !max.Ok() || max.Major() != math.MaxUint64 || max.Minor() != math.MaxUint64 || max.Patch() != math.MaxUint64 {
		t.Errorf("Max() = %v, want all components at uint64 max", max)
	}
	if !min.Less(max) {
		t.Error("Min() must be less than Max()")
	}
	if Invalid().Ok() {
		t.Error("Invalid().Ok() = true, want false")
	}
}

func TestNewInvalidPrerelease(t *testing.T) {
	if New(1, 2, 3, "bad..id").Ok() {
		t.Error("New with malformed pre-release should be invalid")
	}
}
