// Copyright 2026 The Sexp Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/sexprlang/sexp"
	"github.com/sexprlang/sexp/internal/query"
)

// replState holds the REPL's one live document, replaced wholesale by
// each parse command; no REPL command mutates it in place.
type replState struct {
	doc    *sexp.Document
	prefix *query.PrefixIndex
}

func replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactively parse, inspect, and mutate an S-expression document",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl()
		},
	}
}

func runRepl() error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	state := &replState{prefix: query.NewPrefixIndex(nil)}
	line.SetCompleter(func(input string) []string {
		return state.prefix.Complete(input)
	})

	for {
		input, err := line.Prompt("sexp> ")
		if err == io.EOF || err == liner.ErrPromptAborted {
			return nil
		}
		if err != nil {
			return err
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		if err := state.dispatch(input); err != nil {
			if err == io.EOF {
				return nil
			}
			fmt.Println("error:", err)
		}
	}
}

func (s *replState) dispatch(input string) error {
	fields := strings.SplitN(input, " ", 2)
	cmd := fields[0]
	var rest string
	if len(fields) > 1 {
		rest = fields[1]
	}

	switch cmd {
	case "parse":
		return s.cmdParse(rest)
	case "print":
		return s.cmdPrint()
	case "find":
		return s.cmdFind(rest)
	case "quit", "exit":
		return io.EOF
	default:
		return fmt.Errorf("unknown command %q (try: parse, print, find, quit)", cmd)
	}
}

func (s *replState) cmdParse(src string) error {
	if s.doc != nil {
		s.doc.Free()
	}
	doc, err := sexp.Parse([]byte(src))
	if err != nil {
		return err
	}
	s.doc = doc

	s.prefix = query.NewPrefixIndex(nil)
	for _, child := range doc.Root().Children() {
		if child.Kind() != sexp.KindList {
			continue
		}
		head := child.FirstChild()
		if head.Valid() && head.Kind() == sexp.KindAtom {
			if text, ok := head.Atom(); ok {
				s.prefix.Insert(string(text))
			}
		}
	}
	return nil
}

func (s *replState) cmdPrint() error {
	if s.doc == nil {
		return fmt.Errorf("no document parsed yet")
	}
	fmt.Println(s.doc.String())
	return nil
}

func (s *replState) cmdFind(key string) error {
	if s.doc == nil {
		return fmt.Errorf("no document parsed yet")
	}
	h := s.doc.Root().ChildNamed([]byte(key))
	if !h.Valid() {
		if suggestion, ok := query.SuggestKey(s.doc.Root(), key); ok {
			return fmt.Errorf("no form keyed %q; did you mean %q?", key, suggestion)
		}
		return fmt.Errorf("no form keyed %q", key)
	}
	fmt.Println(h.String())
	return nil
}
