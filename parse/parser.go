// Copyright 2026 The Sexp Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package parse

import (
	"errors"

	"github.com/sexprlang/sexp/intern"
	"github.com/sexprlang/sexp/tree"
)

// ErrMalformedInput is returned by Parse when the input has unmatched
// parentheses (either a stray closing paren or unclosed opening ones),
// contains a byte the tokenizer cannot classify, or has an atom the
// intern pool fails to store (a zero id). It is the only
// error Parse can return; there is no separate sentinel per cause,
// since the tree is discarded either way and the position of the
// fault is not otherwise actionable from outside the parser.
var ErrMalformedInput = errors.New("sexp: malformed input")

func handleLeftParen(t *tree.Tree, s *stack) {
	node := t.AllocateNode(tree.KindList)
	if f := s.peek(); f != nil {
		appendChild(t, f, node)
	}
	s.push(node)
}

// handleAtom reports false if the atom's text could not be interned.
func handleAtom(t *tree.Tree, s *stack, token Token) bool {
	node := t.AllocateNode(tree.KindAtom)
	t.SetAtom(node, token.Text)
	if id, _ := t.AtomID(node); id == 0 {
		return false
	}
	if f := s.peek(); f != nil {
		appendChild(t, f, node)
	}
	return true
}

// Parse reads a complete S-expression document from data, returning a
// Tree that retains its own share of pool. On malformed input the
// returned tree is nil and the error is ErrMalformedInput; any nodes
// allocated during the failed attempt are discarded along with the
// tree.
//
// Multiple top-level forms are permitted and become multiple roots of
// the returned tree, in the order they appear in data.
func Parse(data []byte, pool *intern.Pool) (*tree.Tree, error) {
	t := tree.New(pool)

	s := newStack()
	z := NewTokenizer(data)

	for {
		tok := z.Next()
		if tok.Kind == TokenEnd {
			break
		}

		switch tok.Kind {
		case TokenError:
			t.Free()
			return nil, ErrMalformedInput
		case TokenLeftParen:
			handleLeftParen(t, s)
		case TokenRightParen:
			if !s.pop() {
				t.Free()
				return nil, ErrMalformedInput
			}
		case TokenAtom:
			if !handleAtom(t, s, tok) {
				t.Free()
				return nil, ErrMalformedInput
			}
		}
	}

	if len(s.data) > 0 {
		t.Free()
		return nil, ErrMalformedInput
	}

	return t, nil
}
