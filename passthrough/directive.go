// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package passthrough

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// directiveLexer tokenizes preprocessor lines. Other is a catch-all so that
// directives this package does not handle, such as #define, always lex.
var directiveLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Directive", Pattern: `#[A-Za-z_]+`},
	{Name: "String", Pattern: `"[^"]*"`},
	{Name: "Word", Pattern: `[^\s";]+`},
	{Name: "Semicolon", Pattern: `;`},
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Other", Pattern: `.`},
})

var (
	tokenDirective = directiveLexer.Symbols()["Directive"]
	tokenString    = directiveLexer.Symbols()["String"]
	tokenWord      = directiveLexer.Symbols()["Word"]
)

// directive is a preprocessor line split into its name and arguments.
// Quotes around string arguments and semicolons are dropped.
type directive struct {
	name string
	args []string
}

// arg returns the i-th argument, or "" when there are fewer arguments.
func (d directive) arg(i int) string {
	if i < len(d.args) {
		return d.args[i]
	}
	return ""
}

// parseDirective lexes a line that starts with '#'.
func parseDirective(line string) (directive, error) {
	lex, err := directiveLexer.LexString("", line)
	if err != nil {
		return directive{}, err
	}
	tokens, err := lexer.ConsumeAll(lex)
	if err != nil {
		return directive{}, fmt.Errorf("directive %q: %w", line, err)
	}

	var d directive
	for _, tok := range tokens {
		switch tok.Type {
		case tokenDirective:
			if d.name == "" {
				d.name = tok.Value
			} else {
				d.args = append(d.args, tok.Value)
			}
		case tokenString:
			d.args = append(d.args, strings.Trim(tok.Value, `"`))
		case tokenWord:
			d.args = append(d.args, tok.Value)
		}
	}
	return d, nil
}
