package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ParseCSS parses a small CSS subset: rulesets with a single .class or #id selector and
// "key: value;" declarations. At-rules and other selectors are skipped. Later rules override
// earlier ones for the same selector.
func ParseCSS(content string) (*Stylesheet, error) {
	sheet := &Stylesheet{}
	p := css.NewParser(parse.NewInputString(content), false)
	var cur *Rule
	nested := 0 // depth inside at-rule blocks, whose rules are ignored
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); err != nil && !errors.Is(err, io.EOF) {
				return sheet, fmt.Errorf("css: %w", err)
			}
			return sheet, nil
		case css.BeginAtRuleGrammar:
			nested++
		case css.EndAtRuleGrammar:
			nested--
		case css.BeginRulesetGrammar:
			if nested > 0 {
				cur = nil
				continue
			}
			sel := strings.TrimSpace(string(data) + tokensString(p.Values()))
			if len(sel) >= 2 && (sel[0] == '.' || sel[0] == '#') && !strings.ContainsAny(sel, " ,>+~:") {
				cur = &Rule{Selector: sel, Props: make(map[string]string)}
			} else {
				cur = nil
			}
		case css.DeclarationGrammar:
			if cur != nil {
				cur.Props[strings.ToLower(string(data))] = strings.TrimSpace(tokensString(p.Values()))
			}
		case css.EndRulesetGrammar:
			if cur != nil {
				sheet.Rules = append(sheet.Rules, *cur)
				cur = nil
			}
		}
	}
}

func tokensString(tokens []css.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.Write(t.Data)
	}
	return b.String()
}
