// ===== internal/dhcp/parser.go =====
package dhcp

import (
	"strings"

	"dhcpleases/pkg/models"
)

// zoneSuffix may follow the clock of a starts/ends statement. It is
// dropped; dhcpd always writes UTC.
const zoneSuffix = "UTC"

// neverDate is written by dhcpd for a lease with no end
const neverDate = "never"

// parser walks a materialized token slice with one token of lookahead
type parser struct {
	tokens []Token
	pos    int
}

// ParseLeases parses the contents of a dhcpd.leases file. Leases are
// returned in file order, duplicates included. On the first error nothing
// is returned.
func ParseLeases(content string) (models.Leases, error) {
	p := &parser{tokens: Lex(content)}

	leases, err := p.parseConfig()
	if err != nil {
		return nil, err
	}
	return leases, nil
}

func (p *parser) peek() (Token, bool) {
	if p.pos >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) next() {
	p.pos++
}

// parseConfig parses declarations until the input is exhausted
func (p *parser) parseConfig() (models.Leases, error) {
	leases := models.Leases{}

	for {
		tok, ok := p.peek()
		if !ok {
			return leases, nil
		}

		if tok.Kind != TokenDecl {
			return nil, &ParseError{Kind: ErrUnexpectedToken, Line: tok.Line, Token: tok.Text}
		}

		switch tok.Decl {
		case DeclLease:
			lease, err := p.parseLease()
			if err != nil {
				return nil, err
			}
			leases = append(leases, lease)
		default:
			return nil, &ParseError{Kind: ErrUnexpectedToken, Line: tok.Line, Token: tok.Text}
		}
	}
}

// parseLease parses `lease <ip> { statements }`
func (p *parser) parseLease() (models.Lease, error) {
	start, _ := p.peek()
	p.next()

	// the address is the next token, whatever it is
	ip, ok := p.peek()
	if !ok {
		return models.Lease{}, &ParseError{Kind: ErrMissingArgument, Line: start.Line, Option: start.Text}
	}
	p.next()
	lease := models.Lease{IP: ip.Text}

	tok, ok := p.peek()
	if !ok || !tok.isParen("{") {
		return models.Lease{}, &ParseError{
			Kind:     ErrExpectedToken,
			Line:     tok.Line,
			Token:    tok.Text,
			Expected: "{",
			Lease:    lease.IP,
		}
	}
	p.next()

	for {
		tok, ok := p.peek()
		if !ok {
			return models.Lease{}, &ParseError{Kind: ErrUnterminatedLease, Line: start.Line, Lease: lease.IP}
		}

		switch {
		case tok.isParen("}"):
			p.next()
			return lease, nil
		case tok.Kind == TokenTerminator:
			p.next()
		case tok.Kind == TokenOption:
			p.next()
			if err := p.parseOption(tok, &lease); err != nil {
				return models.Lease{}, err
			}
		default:
			return models.Lease{}, &ParseError{Kind: ErrUnexpectedToken, Line: tok.Line, Token: tok.Text, Lease: lease.IP}
		}
	}
}

// parseOption consumes the arguments of one statement into lease
func (p *parser) parseOption(opt Token, lease *models.Lease) error {
	if opt.Option == OptionStarts || opt.Option == OptionEnds {
		return p.parseDate(opt, lease)
	}

	args, err := p.arguments(opt, opt.Option.arity(), lease.IP)
	if err != nil {
		return err
	}

	switch opt.Option {
	case OptionHardware:
		lease.Hardware = &models.Hardware{Type: args[0], MAC: args[1]}
	case OptionUID:
		lease.UID = args[0]
	case OptionClientHostname:
		lease.ClientHostname = args[0]
	case OptionHostname:
		lease.Hostname = args[0]
	case OptionAbandoned:
		lease.Abandoned = true
	}
	return nil
}

// parseDate handles `starts|ends <weekday> <date> <time> [UTC]` and
// `starts|ends never`
func (p *parser) parseDate(opt Token, lease *models.Lease) error {
	if tok, ok := p.peek(); ok && tok.Kind == TokenWord && tok.Text == neverDate {
		p.next()
		return nil
	}

	args, err := p.arguments(opt, 3, lease.IP)
	if err != nil {
		return err
	}

	date, err := models.ParseDate(args[0], args[1], args[2])
	if err != nil {
		return &ParseError{
			Kind:   ErrInvalidDateFormat,
			Line:   opt.Line,
			Token:  strings.Join(args, " "),
			Option: opt.Text,
			Lease:  lease.IP,
			Err:    err,
		}
	}

	if tok, ok := p.peek(); ok && tok.Kind == TokenWord && tok.Text == zoneSuffix {
		p.next()
	}

	if opt.Option == OptionStarts {
		lease.Dates.Starts = &date
	} else {
		lease.Dates.Ends = &date
	}
	return nil
}

// arguments consumes n argument tokens verbatim. Brackets, terminators and
// the end of input cannot be arguments.
func (p *parser) arguments(owner Token, n int, ip string) ([]string, error) {
	args := make([]string, 0, n)
	for i := 0; i < n; i++ {
		tok, ok := p.peek()
		if !ok || tok.Kind == TokenParen || tok.Kind == TokenTerminator {
			line := tok.Line
			if !ok {
				line = owner.Line
			}
			return nil, &ParseError{Kind: ErrMissingArgument, Line: line, Token: tok.Text, Option: owner.Text, Lease: ip}
		}
		args = append(args, tok.Text)
		p.next()
	}
	return args, nil
}
