// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package match is the matcher-compiler collaborator: it turns a token.Tree
// (or a single token.Component) into something that can be asked whether a
// candidate path matches, without ever compiling to a regular expression.
// It is grounded on modules/wildmatch's Consume-over-path-components design,
// generalized from that package's own hand-rolled parser to consume
// modules/glob/token's tree instead.
package match

import "strings"

// CandidatePath is text being matched against a compiled pattern, split
// into the path-component form a unit chain consumes. Wrapping a string this
// way keeps capture offsets indexed consistently against the original text
// rather than against an intermediate, reformatted representation.
type CandidatePath struct {
	text       string
	components []string
}

// NewCandidatePath splits s on '/' into path components. Empty leading or
// trailing components (from a leading or trailing slash) are preserved as
// empty strings so that rootedness and trailing-slash distinctions survive
// the split; callers that pre-normalize their paths will not see them.
func NewCandidatePath(s string) CandidatePath {
	return CandidatePath{text: s, components: strings.Split(s, "/")}
}

func (c CandidatePath) String() string { return c.text }

// Capture is one matched sub-range of the original candidate text,
// corresponding to a single capturing token (Wildcard, Class, Alternative
// or Repetition) in the pattern, in the order those tokens appear.
type Capture struct {
	Start, End int // byte offsets into the CandidatePath's text
	Text       string
}

// MatchedText is the full result of a successful match: the whole matched
// span plus every capture in pattern order.
type MatchedText struct {
	Whole    Capture
	Captures []Capture
}
