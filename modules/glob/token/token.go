// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package token implements the lexical parser and token tree for glob
// expressions: Literal, Separator, Wildcard.{One,ZeroOrMore,Tree}, Class,
// Alternative and Repetition tokens, plus the variance and boundedness
// analyzers and the invariant-prefix partitioner built over them.
package token

import (
	"fmt"
	"strings"
)

// Span records the rune offsets of a token within the original expression
// text. A zero Span means the token carries no source-location annotation
// (see Tree.Unannotate).
type Span struct {
	Start, End int
}

func (s Span) IsZero() bool { return s == Span{} }

// Kind is the sealed set of token kinds: Literal, Separator, the three
// Wildcard forms, Class, Alternative and Repetition. Concrete
// implementations live in literal.go, separator.go, wildcard.go, class.go,
// alternative.go and repetition.go.
type Kind interface {
	// variance reports the conjunctive/disjunctive variance contribution
	// of this kind in isolation.
	variance() Variance
	// depth reports whether this kind alone makes an expression's match
	// depth unbounded (Wildcard.Tree does, as does an Alternative or
	// Repetition containing one, or an unbounded Repetition containing a
	// component boundary).
	depth() Boundedness
	// breadth reports whether this kind alone makes an expression's match
	// breadth unbounded (Wildcard.Tree and Wildcard.ZeroOrMore do).
	breadth() Boundedness
	// isComponentBoundary reports whether this kind terminates a path
	// component on its own (Separator, rooted/unrooted Wildcard.Tree).
	isComponentBoundary() bool
	// isCapturing reports whether a match against this kind produces a
	// capture (Alternative, Class, Repetition, every Wildcard).
	isCapturing() bool
	isKind()
}

// Token pairs a Kind with its source Span.
type Token struct {
	Kind Kind
	Span Span
}

func New(kind Kind, span Span) Token { return Token{Kind: kind, Span: span} }

func (t Token) Variance() Variance           { return t.Kind.variance() }
func (t Token) Depth() Boundedness           { return t.Kind.depth() }
func (t Token) Breadth() Boundedness         { return t.Kind.breadth() }
func (t Token) IsComponentBoundary() bool    { return t.Kind.isComponentBoundary() }
func (t Token) IsCapturing() bool            { return t.Kind.isCapturing() }

// HasSubTokens reports whether t recurses into child tokens (Alternative
// and Repetition do; every other kind is a leaf).
func (t Token) HasSubTokens() bool {
	switch k := t.Kind.(type) {
	case *Alternative:
		return true
	case *Repetition:
		return true
	default:
		_ = k
		return false
	}
}

// HasTokenWith reports whether t, or any token nested within it (through
// Alternative branches or Repetition bodies), satisfies pred.
func (t Token) HasTokenWith(pred func(Token) bool) bool {
	if pred(t) {
		return true
	}
	switch k := t.Kind.(type) {
	case *Alternative:
		for _, branch := range k.Branches {
			for _, bt := range branch {
				if bt.HasTokenWith(pred) {
					return true
				}
			}
		}
	case *Repetition:
		for _, rt := range k.Tokens {
			if rt.HasTokenWith(pred) {
				return true
			}
		}
	}
	return false
}

// HasPrecedingTokenWith reports whether any token preceding t's position in
// tokens (the flat sequence at the same nesting level, scanned backward)
// satisfies pred; it does not recurse into sub-trees of earlier tokens.
func HasPrecedingTokenWith(tokens []Token, i int, pred func(Token) bool) bool {
	for j := i - 1; j >= 0; j-- {
		if pred(tokens[j]) {
			return true
		}
	}
	return false
}

// HasTerminatingTokenWith reports whether the last token at this nesting
// level (or, if it is an Alternative/Repetition, the last token of each of
// its terminating branches, recursively) satisfies pred.
func HasTerminatingTokenWith(tokens []Token, pred func(Token) bool) bool {
	if len(tokens) == 0 {
		return false
	}
	last := tokens[len(tokens)-1]
	if pred(last) {
		return true
	}
	switch k := last.Kind.(type) {
	case *Alternative:
		for _, branch := range k.Branches {
			if HasTerminatingTokenWith(branch, pred) {
				return true
			}
		}
		return false
	case *Repetition:
		return HasTerminatingTokenWith(k.Tokens, pred)
	default:
		return false
	}
}

// IsRooted reports whether the token at index i in tokens is anchored to
// the start of the path: either it is the first token and is itself a
// rooted Wildcard.Tree, or the immediately preceding token is a Separator
// or a rooted Wildcard.Tree.
func IsRooted(tokens []Token, i int) bool {
	if i == 0 {
		if wt, ok := tokens[0].Kind.(*WildcardTree); ok {
			return wt.IsRooted
		}
		return false
	}
	prev := tokens[i-1]
	switch k := prev.Kind.(type) {
	case *Separator:
		return true
	case *WildcardTree:
		return k.IsRooted
	default:
		return false
	}
}

// Unroot clears the rootedness of a leading Wildcard.Tree token, used by
// Partition when an invariant prefix is extracted and the residual pattern
// must no longer require an absolute path.
func Unroot(tokens []Token) []Token {
	if len(tokens) == 0 {
		return tokens
	}
	if wt, ok := tokens[0].Kind.(*WildcardTree); ok && wt.IsRooted {
		out := make([]Token, len(tokens))
		copy(out, tokens)
		unrooted := *wt
		unrooted.IsRooted = false
		out[0] = New(&unrooted, tokens[0].Span)
		return out
	}
	return tokens
}

// Tree is a fully parsed glob expression: the original text plus its flat,
// top-level token sequence (sub-expressions nest inside Alternative and
// Repetition tokens).
type Tree struct {
	Expression string
	Tokens     []Token
}

// Variance reports the conjunctive variance of the whole tree: the Add-fold
// of every top-level token's variance.
func (t *Tree) Variance() Variance {
	vs := make([]Variance, len(t.Tokens))
	for i, tok := range t.Tokens {
		vs[i] = tok.Variance()
	}
	return conjunctiveVariance(vs)
}

// Depth reports whether the tree's match depth is unbounded: Open iff any
// top-level token is a Wildcard.Tree, an Alternative or Repetition
// containing one, or a Repetition whose upper bound is unbounded and which
// contains a component boundary.
func (t *Tree) Depth() Boundedness {
	for _, tok := range t.Tokens {
		if tok.Depth() == Open {
			return Open
		}
	}
	return Closed
}

// Breadth reports whether the tree's match breadth is unbounded: Open iff
// any top-level token is a Wildcard.Tree or Wildcard.ZeroOrMore, or an
// Alternative or Repetition containing one.
func (t *Tree) Breadth() Boundedness {
	for _, tok := range t.Tokens {
		if tok.Breadth() == Open {
			return Open
		}
	}
	return Closed
}

// IsRooted reports whether the expression is anchored to an absolute path:
// its first token is a Separator or a rooted Wildcard.Tree.
func (t *Tree) IsRooted() bool {
	if len(t.Tokens) == 0 {
		return false
	}
	if _, ok := t.Tokens[0].Kind.(*Separator); ok {
		return true
	}
	return IsRooted(t.Tokens, 0)
}

// Unannotate strips Span information from every token in the tree,
// recursively. Parsers that tracked spans for diagnostics can discard them
// once diagnostics are no longer needed, trimming a tree kept for a long
// lifetime (e.g. a walk-result cache).
func (t *Tree) Unannotate() *Tree {
	return &Tree{Expression: t.Expression, Tokens: unannotateTokens(t.Tokens)}
}

func unannotateTokens(tokens []Token) []Token {
	out := make([]Token, len(tokens))
	for i, tok := range tokens {
		out[i] = Token{Kind: unannotateKind(tok.Kind), Span: Span{}}
	}
	return out
}

func unannotateKind(k Kind) Kind {
	switch v := k.(type) {
	case *Alternative:
		branches := make([][]Token, len(v.Branches))
		for i, b := range v.Branches {
			branches[i] = unannotateTokens(b)
		}
		return &Alternative{Branches: branches}
	case *Repetition:
		return &Repetition{Tokens: unannotateTokens(v.Tokens), Lower: v.Lower, Upper: v.Upper}
	default:
		return k
	}
}

// String reconstructs a readable (not necessarily byte-identical)
// rendering of the tree, useful for error messages and debugging.
func (t *Tree) String() string {
	var b strings.Builder
	for _, tok := range t.Tokens {
		b.WriteString(renderKind(tok.Kind))
	}
	return b.String()
}

func renderKind(k Kind) string {
	switch v := k.(type) {
	case *Literal:
		return v.Text
	case *Separator:
		return "/"
	case *WildcardOne:
		return "?"
	case *WildcardZeroOrMore:
		if v.Eager {
			return "*"
		}
		return "$"
	case *WildcardTree:
		return "**"
	case *Class:
		return renderClass(v)
	case *Alternative:
		parts := make([]string, len(v.Branches))
		for i, branch := range v.Branches {
			var b strings.Builder
			for _, tok := range branch {
				b.WriteString(renderKind(tok.Kind))
			}
			parts[i] = b.String()
		}
		return "{" + strings.Join(parts, ",") + "}"
	case *Repetition:
		var b strings.Builder
		for _, tok := range v.Tokens {
			b.WriteString(renderKind(tok.Kind))
		}
		bounds := ""
		switch {
		case v.Upper == nil:
			bounds = fmt.Sprintf("%d,", v.Lower)
		case *v.Upper == v.Lower:
			bounds = fmt.Sprintf("%d", v.Lower)
		default:
			bounds = fmt.Sprintf("%d,%d", v.Lower, *v.Upper)
		}
		return "<" + b.String() + ":" + bounds + ">"
	default:
		return ""
	}
}
