package css

import (
	"bytes"
	"errors"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser parses CSS stylesheets into flat declaration lists.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// block tracks currently open at-rule blocks.
type block struct {
	name    string
	prelude string
}

// Parse parses CSS text into a Stylesheet. Source identifies what is being
// parsed and is kept in the result.
func (p *Parser) Parse(data []byte, source string) *Stylesheet {
	sheet := &Stylesheet{
		Source: source,
		Text:   string(data),
	}
	p.log.Debug("Parsing CSS", zap.String("source", source), zap.Int("bytes", len(data)))

	parser := css.NewParser(parse.NewInput(bytes.NewReader(data)), false)

	var (
		selector  string
		blocks    []block
		errOffset = -1
	)

	media := func() string {
		for i := len(blocks) - 1; i >= 0; i-- {
			if blocks[i].name == "@media" {
				return blocks[i].prelude
			}
		}
		return ""
	}

	for {
		gt, _, tok := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if !parser.HasParseError() {
				if err := parser.Err(); err != nil && !errors.Is(err, io.EOF) {
					sheet.Warnings = append(sheet.Warnings, err.Error())
					p.log.Debug("CSS read error", zap.String("source", source), zap.Error(err))
				}
				return sheet
			}
			// recoverable, parser skips offending tokens
			if parser.Offset() == errOffset {
				// no progress, give up on the rest
				return sheet
			}
			errOffset = parser.Offset()
			sheet.Warnings = append(sheet.Warnings, parser.Err().Error())
			p.log.Debug("CSS parse error", zap.String("source", source), zap.Error(parser.Err()))

		case css.AtRuleGrammar:
			rule := p.newAtRule(tok, parser.Values(), lineAt(data, parser.Offset()))
			sheet.AtRules = append(sheet.AtRules, rule)
			if rule.Name == "@import" {
				if url := extractImportURL(parser.Values()); url != "" {
					sheet.Imports = append(sheet.Imports, url)
					p.log.Debug("Parsed @import", zap.String("url", url))
				}
			}

		case css.BeginAtRuleGrammar:
			rule := p.newAtRule(tok, parser.Values(), lineAt(data, parser.Offset()))
			sheet.AtRules = append(sheet.AtRules, rule)
			blocks = append(blocks, block{name: rule.Name, prelude: rule.Prelude})

		case css.EndAtRuleGrammar:
			if len(blocks) > 0 {
				blocks = blocks[:len(blocks)-1]
			}

		case css.BeginRulesetGrammar:
			selector = joinTokens(parser.Values())

		case css.EndRulesetGrammar:
			selector = ""

		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			value, important := declarationValue(parser.Values())
			if value == "" {
				continue
			}
			owner := selector
			if owner == "" && len(blocks) > 0 {
				// @font-face and @page carry declarations directly
				owner = blocks[len(blocks)-1].name
			}
			sheet.Declarations = append(sheet.Declarations, Declaration{
				Selector:  owner,
				Property:  string(tok),
				Value:     value,
				Important: important,
				Media:     media(),
			})
		}
	}
}

func (p *Parser) newAtRule(name []byte, values []css.Token, line int) AtRule {
	rule := AtRule{
		Name:    strings.ToLower(string(name)),
		Prelude: joinTokens(values),
		Line:    line,
	}
	rule.Raw = rule.Name
	if rule.Prelude != "" {
		rule.Raw += " " + rule.Prelude
	}
	p.log.Debug("Parsed @-rule", zap.String("rule", rule.Raw))
	return rule
}

// joinTokens builds source-like text from tokens collapsing whitespace.
func joinTokens(tokens []css.Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		if t.TokenType == css.WhitespaceToken {
			sb.WriteByte(' ')
			continue
		}
		sb.Write(t.Data)
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}

// declarationValue returns raw declaration value with trailing !important
// removed.
func declarationValue(tokens []css.Token) (string, bool) {
	important := false
	n := len(tokens)
	for n > 0 && tokens[n-1].TokenType == css.WhitespaceToken {
		n--
	}
	if n >= 2 && tokens[n-1].TokenType == css.IdentToken && strings.EqualFold(string(tokens[n-1].Data), "important") &&
		tokens[n-2].TokenType == css.DelimToken && string(tokens[n-2].Data) == "!" {
		important = true
		n -= 2
	}
	return joinTokens(tokens[:n]), important
}

// extractImportURL extracts the URL from @import tokens.
// Handles: @import "url"; @import url("url"); @import url(url);
func extractImportURL(tokens []css.Token) string {
	for i, t := range tokens {
		switch t.TokenType {
		case css.StringToken:
			return Unquote(string(t.Data))
		case css.URLToken:
			s := strings.TrimSuffix(strings.TrimPrefix(string(t.Data), "url("), ")")
			return Unquote(s)
		case css.FunctionToken:
			// url( "quoted" ) is tokenized as function with string argument
			if strings.EqualFold(string(t.Data), "url(") && i+1 < len(tokens) && tokens[i+1].TokenType == css.StringToken {
				return Unquote(string(tokens[i+1].Data))
			}
		}
	}
	return ""
}

func lineAt(data []byte, offset int) int {
	if offset > len(data) {
		offset = len(data)
	}
	return bytes.Count(data[:offset], []byte{'\n'}) + 1
}
