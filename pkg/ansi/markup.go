package ansi

import "strings"

// TokenKind classifies a markup token.
type TokenKind int

const (
	TokenText TokenKind = iota
	TokenOpen
	TokenClose
)

// Token is one lexical unit of markup text. Value holds the literal text for
// TokenText and the tag name for TokenOpen; it is empty for TokenClose.
type Token struct {
	Kind  TokenKind
	Value string
}

// closeTag is the generic closer.
const closeTag = "[/]"

// Tokenize splits text into plain text runs, opening tags and closers.
// Bracketed text that is not a valid tag stays part of the surrounding text.
func Tokenize(text string) []Token {
	var tokens []Token
	start := 0
	for i := 0; i < len(text); {
		if text[i] != '[' {
			i++
			continue
		}
		tok, n := scanTag(text[i:])
		if n == 0 {
			i++
			continue
		}
		if start < i {
			tokens = append(tokens, Token{Kind: TokenText, Value: text[start:i]})
		}
		tokens = append(tokens, tok)
		i += n
		start = i
	}
	if start < len(text) {
		tokens = append(tokens, Token{Kind: TokenText, Value: text[start:]})
	}
	return tokens
}

// scanTag reads a tag at the start of s, which begins with '['. It returns
// the token and its byte length, or a zero length when s does not start with
// a tag.
func scanTag(s string) (Token, int) {
	if strings.HasPrefix(s, closeTag) {
		return Token{Kind: TokenClose}, len(closeTag)
	}
	end := strings.IndexByte(s, ']')
	if end < 2 {
		return Token{}, 0
	}
	name := s[1:end]
	for i := 0; i < len(name); i++ {
		if !isNameByte(name[i]) {
			return Token{}, 0
		}
	}
	return Token{Kind: TokenOpen, Value: name}, end + 1
}

func isNameByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '.' || c == '_' || c == '-':
		return true
	}
	return false
}

// Strip concatenates the text tokens, dropping every tag.
func Strip(tokens []Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		if tok.Kind == TokenText {
			b.WriteString(tok.Value)
		}
	}
	return b.String()
}

// Render replaces each opening tag with lookup(name) and each matched closer
// with Reset. Closers without an open tag are dropped. If a tag that emitted
// a code is still open at the end, a final Reset is appended.
func Render(tokens []Token, lookup func(name string) string) string {
	var b strings.Builder
	var open []string
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenText:
			b.WriteString(tok.Value)
		case TokenOpen:
			code := lookup(tok.Value)
			open = append(open, code)
			b.WriteString(code)
		case TokenClose:
			if len(open) == 0 {
				continue
			}
			open = open[:len(open)-1]
			b.WriteString(Reset)
		}
	}
	for _, code := range open {
		if code != "" {
			b.WriteString(Reset)
			break
		}
	}
	return b.String()
}
