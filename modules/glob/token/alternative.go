// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package token

// Alternative is `{a,b,...}`: exactly one of its branches, each itself a
// token sequence.
type Alternative struct {
	Branches [][]Token
}

func (a *Alternative) isKind() {}

// variance: the disjunction of each branch's own conjunctive variance; the
// branches must all agree (per Variance.Equal) for the alternative itself
// to be anything other than Variant(Closed).
func (a *Alternative) variance() Variance {
	vs := make([]Variance, len(a.Branches))
	for i, branch := range a.Branches {
		bvs := make([]Variance, len(branch))
		for j, tok := range branch {
			bvs[j] = tok.Variance()
		}
		vs[i] = conjunctiveVariance(bvs)
	}
	return disjunctiveVariance(vs)
}

func (a *Alternative) depth() Boundedness {
	for _, branch := range a.Branches {
		for _, tok := range branch {
			if tok.Depth() == Open {
				return Open
			}
		}
	}
	return Closed
}

func (a *Alternative) breadth() Boundedness {
	for _, branch := range a.Branches {
		for _, tok := range branch {
			if tok.Breadth() == Open {
				return Open
			}
		}
	}
	return Closed
}

func (a *Alternative) isComponentBoundary() bool { return false }
func (a *Alternative) isCapturing() bool         { return true }

// Any builds a synthetic Alternative Tree whose branches are the top-level
// token sequences of each given tree, combining several already-parsed
// patterns into one. The resulting Tree carries no single source
// expression; Expression is the comma-joined originals for diagnostics
// only.
func Any(trees ...*Tree) *Tree {
	branches := make([][]Token, len(trees))
	exprs := make([]string, len(trees))
	for i, t := range trees {
		branches[i] = t.Tokens
		exprs[i] = t.Expression
	}
	joined := ""
	for i, e := range exprs {
		if i > 0 {
			joined += ","
		}
		joined += e
	}
	return &Tree{
		Expression: joined,
		Tokens:     []Token{New(&Alternative{Branches: branches}, Span{})},
	}
}
