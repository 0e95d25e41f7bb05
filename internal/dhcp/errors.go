// ===== internal/dhcp/errors.go =====
package dhcp

import (
	"errors"
	"fmt"
)

var (
	ErrUnrecognizedKeyword = errors.New("unrecognized keyword")
	ErrInvalidDateFormat   = errors.New("invalid date format")
	ErrExpectedToken       = errors.New("expected token")
	ErrMissingArgument     = errors.New("missing argument")
	ErrUnexpectedToken     = errors.New("unexpected token")
	ErrUnterminatedLease   = errors.New("unterminated lease")
)

// KeywordError is returned when a word matches no keyword of a class
type KeywordError struct {
	Word  string
	Class string
}

func (e *KeywordError) Error() string {
	return fmt.Sprintf("'%s' is not a recognized %s keyword", e.Word, e.Class)
}

func (e *KeywordError) Is(target error) bool {
	return target == ErrUnrecognizedKeyword
}

// ParseError describes the first problem found in a lease file.
// Kind is one of the Err* sentinels and is matched by errors.Is.
type ParseError struct {
	Kind     error
	Line     int    // line of Token, 0 at end of input
	Token    string // offending token text, "" at end of input
	Expected string // expected token, for ErrExpectedToken
	Option   string // statement being parsed
	Lease    string // IP of the enclosing lease block
	Err      error  // underlying cause, e.g. a models.DateError
}

func (e *ParseError) Error() string {
	msg := e.Kind.Error()
	switch {
	case e.Expected != "":
		msg = fmt.Sprintf("%s '%s', got %s", msg, e.Expected, e.got())
	case e.Option != "":
		msg = fmt.Sprintf("%s for '%s'", msg, e.Option)
		if e.Token != "" {
			msg += fmt.Sprintf(", got %s", e.got())
		}
	case e.Token != "":
		msg = fmt.Sprintf("%s %s", msg, e.got())
	}

	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Lease != "" {
		msg = fmt.Sprintf("lease %s: %s", e.Lease, msg)
	}
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	return msg
}

func (e *ParseError) got() string {
	if e.Token == "" {
		return "end of input"
	}
	return fmt.Sprintf("'%s'", e.Token)
}

func (e *ParseError) Is(target error) bool {
	return target == e.Kind
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
