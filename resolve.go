package mathexpr

import (
	"strconv"
	"unicode"
)

// parseIdent resolves an identifier. Parameters take precedence over module
// constants, and constants take precedence over functions.
func (p *parser) parseIdent(power int) (*Node, error) {
	tok := p.la
	if i, ok := p.params[fold(tok.Text)]; ok {
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Node{Kind: NodeParam, Index: i, Name: tok.Text}, nil
	}
	for _, m := range p.mods {
		if _, ok := m.Field(tok.Text); ok {
			if err := p.advance(); err != nil {
				return nil, err
			}
			return &Node{Kind: NodeField, Module: m, Name: tok.Text}, nil
		}
	}
	for _, m := range p.mods {
		fn, ok := m.Func(tok.Text)
		if !ok {
			continue
		}
		if !fn.CanCall(1) {
			return nil, &CallError{Col: tok.Pos, Func: tok.Text, Len: 1}
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		// The argument is the next term alone: sin x y -> sin(x) * y.
		arg, err := p.parseExpr(powerArg)
		if err != nil {
			return nil, err
		}
		return &Node{Kind: NodeCall, Module: m, Fn: fn, Name: tok.Text, Left: arg}, nil
	}
	return nil, &NameError{Col: tok.Pos, Name: tok.Text}
}

// checkConfig validates a parameter list against itself and a module list.
// Collisions are errors rather than being resolved by precedence.
func checkConfig(params []string, mods []Module) error {
	for i, m := range mods {
		if m == nil {
			return &ConfigError{Problem: "module " + strconv.Itoa(i) + " is nil"}
		}
	}
	seen := make(map[string]string, len(params))
	for _, name := range params {
		if !isIdent(name) {
			return &ConfigError{Name: name, Problem: "not an identifier"}
		}
		k := fold(name)
		if prev, ok := seen[k]; ok {
			return &ConfigError{Name: name, Problem: "duplicates parameter " + strconv.Quote(prev)}
		}
		seen[k] = name
		for _, m := range mods {
			if _, ok := m.Field(name); ok {
				return &ConfigError{Name: name, Problem: "collides with a module constant"}
			}
			if _, ok := m.Func(name); ok {
				return &ConfigError{Name: name, Problem: "collides with a module function"}
			}
		}
	}
	return nil
}

// isIdent reports whether name would lex as a single identifier.
func isIdent(name string) bool {
	for i, r := range name {
		switch {
		case unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return name != ""
}
