// ===== internal/dhcp/lexer.go =====
package dhcp

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// TokenKind classifies a lexical token
type TokenKind int

const (
	TokenParen      TokenKind = iota // ( ) [ ] { }
	TokenTerminator                  // ;
	TokenWord                        // any other run of non-blank characters
	TokenDecl                        // declaration keyword
	TokenOption                      // lease option keyword
)

func (k TokenKind) String() string {
	switch k {
	case TokenParen:
		return "PAREN"
	case TokenTerminator:
		return "TERMINATOR"
	case TokenWord:
		return "WORD"
	case TokenDecl:
		return "DECL"
	case TokenOption:
		return "OPTION"
	default:
		return "UNKNOWN"
	}
}

// Token is one lexical unit of a lease file
type Token struct {
	Kind   TokenKind
	Text   string        // token text exactly as written
	Decl   DeclKeyword   // set for TokenDecl
	Option OptionKeyword // set for TokenOption
	Line   int           // 1-based
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%s)", t.Kind, t.Text)
}

// isParen reports whether t is the bracket character c
func (t Token) isParen(c string) bool {
	return t.Kind == TokenParen && t.Text == c
}

const parens = "()[]{}"

// Lex splits a lease file into tokens. It never fails: words that are not
// keywords become TokenWord and are judged by the parser. Quotes are kept.
// A line whose first non-blank character is '#' is a comment.
func Lex(input string) []Token {
	var tokens []Token
	line := 1
	lineStart := true

	for pos := 0; pos < len(input); {
		r, size := utf8.DecodeRuneInString(input[pos:])

		switch {
		case strings.ContainsRune(parens, r):
			tokens = append(tokens, Token{Kind: TokenParen, Text: string(r), Line: line})
			lineStart = false
			pos += size
		case r == '\n':
			line++
			lineStart = true
			pos += size
		case unicode.IsSpace(r):
			pos += size
		case r == ';':
			tokens = append(tokens, Token{Kind: TokenTerminator, Text: ";", Line: line})
			lineStart = false
			pos += size
		case r == '#' && lineStart:
			// a comment line; '#' elsewhere starts an ordinary word
			if end := strings.IndexByte(input[pos:], '\n'); end >= 0 {
				pos += end
			} else {
				pos = len(input)
			}
		default:
			end := pos + wordLength(input[pos:])
			tokens = append(tokens, classify(input[pos:end], line))
			lineStart = false
			pos = end
		}
	}

	return tokens
}

// wordLength returns the byte length of the word at the start of s
func wordLength(s string) int {
	for i, r := range s {
		if unicode.IsSpace(r) || r == ';' {
			return i
		}
	}
	return len(s)
}

// classify tries declaration keywords first, then lease options
func classify(word string, line int) Token {
	if kw, err := ParseDeclKeyword(word); err == nil {
		return Token{Kind: TokenDecl, Text: word, Decl: kw, Line: line}
	}
	if kw, err := ParseOptionKeyword(word); err == nil {
		return Token{Kind: TokenOption, Text: word, Option: kw, Line: line}
	}
	return Token{Kind: TokenWord, Text: word, Line: line}
}
