// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package token

import (
	"runtime"
	"strings"

	"golang.org/x/text/cases"
)

// Boundedness classifies a Variant token or expression as either closed
// (constrained to a known set of matches, even if that set is infinite in
// length) or open (unconstrained along some axis, such as depth or
// breadth).
type Boundedness int

const (
	Closed Boundedness = iota
	Open
)

func (b Boundedness) IsClosed() bool { return b == Closed }
func (b Boundedness) IsOpen() bool   { return b == Open }

// PathsAreCaseInsensitive is the ambient platform case-sensitivity rule
// (§3, §4.3). It defaults to the host OS's filesystem convention and may be
// overridden, notably in tests that must behave identically across
// platforms.
var PathsAreCaseInsensitive = runtime.GOOS == "windows" || runtime.GOOS == "darwin"

var fold = cases.Fold()

// caseFoldedEqual compares two strings using simple Unicode case folding,
// matching the fold a compiled matcher is expected to apply.
func caseFoldedEqual(a, b string) bool {
	if a == b {
		return true
	}
	return fold.String(a) == fold.String(b)
}

// hasCasing reports whether s contains any character whose case folding
// differs from itself, i.e. whether case sensitivity is even meaningful for
// s.
func hasCasing(s string) bool {
	return strings.ToLower(s) != strings.ToUpper(s)
}

type varianceKind int

const (
	varianceInvariant varianceKind = iota
	varianceVariant
)

// Variance classifies a subtree: it either matches a single known literal
// (Invariant) or some set of candidates (Variant), further classified by
// Boundedness.
type Variance struct {
	kind        varianceKind
	text        string
	boundedness Boundedness
}

// Invariant constructs a Variance matching exactly the given literal text.
func Invariant(text string) Variance {
	return Variance{kind: varianceInvariant, text: text}
}

// Variant constructs a Variance matching some constrained or unconstrained
// set of candidates.
func Variant(b Boundedness) Variance {
	return Variance{kind: varianceVariant, boundedness: b}
}

func (v Variance) IsInvariant() bool { return v.kind == varianceInvariant }
func (v Variance) IsVariant() bool   { return v.kind == varianceVariant }

// Boundedness reports the boundedness of v. An Invariant Variance is always
// Closed.
func (v Variance) Boundedness() Boundedness {
	if v.kind == varianceVariant {
		return v.boundedness
	}
	return Closed
}

// InvariantText returns the literal text of an Invariant Variance.
func (v Variance) InvariantText() (string, bool) {
	if v.kind == varianceInvariant {
		return v.text, true
	}
	return "", false
}

// Add implements the concatenation monoid: Invariant+Invariant concatenates;
// Open+Open stays Open; any other combination is Variant(Closed).
// Invariant("") is the identity.
func (v Variance) Add(rhs Variance) Variance {
	switch {
	case v.kind == varianceInvariant && rhs.kind == varianceInvariant:
		return Invariant(v.text + rhs.text)
	case v.kind == varianceVariant && rhs.kind == varianceVariant &&
		v.boundedness == Open && rhs.boundedness == Open:
		return Variant(Open)
	default:
		return Variant(Closed)
	}
}

// Equal implements the equality rule used by the disjunction operator:
// two Invariants are equal if their texts agree under the ambient
// case-folding rule; two Variants are equal if their boundedness agrees.
func (v Variance) Equal(rhs Variance) bool {
	switch {
	case v.kind == varianceInvariant && rhs.kind == varianceInvariant:
		if PathsAreCaseInsensitive {
			return caseFoldedEqual(v.text, rhs.text)
		}
		return v.text == rhs.text
	case v.kind == varianceVariant && rhs.kind == varianceVariant:
		return v.boundedness == rhs.boundedness
	default:
		return false
	}
}

// conjunctiveVariance folds a sequence of variances using Add, the
// concatenation monoid; an empty sequence is the identity Invariant("").
func conjunctiveVariance(vs []Variance) Variance {
	acc := Invariant("")
	for i, v := range vs {
		if i == 0 {
			acc = v
			continue
		}
		acc = acc.Add(v)
	}
	return acc
}

// disjunctiveVariance implements the alternative/class disjunction rule: if
// every pair of operands is Equal, the result is their common value;
// otherwise Variant(Closed).
func disjunctiveVariance(vs []Variance) Variance {
	if len(vs) == 0 {
		return Invariant("")
	}
	for i := 1; i < len(vs); i++ {
		if !vs[0].Equal(vs[i]) {
			return Variant(Closed)
		}
	}
	return vs[0]
}
