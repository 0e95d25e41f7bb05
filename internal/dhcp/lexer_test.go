package dhcp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLex(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:  "empty lease",
			input: "lease 192.0.0.2 {\n}",
			expected: []Token{
				{Kind: TokenDecl, Text: "lease", Decl: DeclLease, Line: 1},
				{Kind: TokenWord, Text: "192.0.0.2", Line: 1},
				{Kind: TokenParen, Text: "{", Line: 1},
				{Kind: TokenParen, Text: "}", Line: 2},
			},
		},
		{
			name:  "statement with terminator",
			input: "\thardware ethernet 11:22:33:44:55:66;",
			expected: []Token{
				{Kind: TokenOption, Text: "hardware", Option: OptionHardware, Line: 1},
				{Kind: TokenWord, Text: "ethernet", Line: 1},
				{Kind: TokenWord, Text: "11:22:33:44:55:66", Line: 1},
				{Kind: TokenTerminator, Text: ";", Line: 1},
			},
		},
		{
			name:  "quotes are kept",
			input: `client-hostname "NAME";`,
			expected: []Token{
				{Kind: TokenOption, Text: "client-hostname", Option: OptionClientHostname, Line: 1},
				{Kind: TokenWord, Text: `"NAME"`, Line: 1},
				{Kind: TokenTerminator, Text: ";", Line: 1},
			},
		},
		{
			name:  "whitespace splits quoted values",
			input: `hostname "my host"`,
			expected: []Token{
				{Kind: TokenOption, Text: "hostname", Option: OptionHostname, Line: 1},
				{Kind: TokenWord, Text: `"my`, Line: 1},
				{Kind: TokenWord, Text: `host"`, Line: 1},
			},
		},
		{
			name:  "all brackets",
			input: "( ) [ ] { }",
			expected: []Token{
				{Kind: TokenParen, Text: "(", Line: 1},
				{Kind: TokenParen, Text: ")", Line: 1},
				{Kind: TokenParen, Text: "[", Line: 1},
				{Kind: TokenParen, Text: "]", Line: 1},
				{Kind: TokenParen, Text: "{", Line: 1},
				{Kind: TokenParen, Text: "}", Line: 1},
			},
		},
		{
			name:  "keywords are case sensitive",
			input: "Lease STARTS",
			expected: []Token{
				{Kind: TokenWord, Text: "Lease", Line: 1},
				{Kind: TokenWord, Text: "STARTS", Line: 1},
			},
		},
		{
			name:  "comments are skipped",
			input: "# dhcpd.leases\n# written by dhcpd\nabandoned",
			expected: []Token{
				{Kind: TokenOption, Text: "abandoned", Option: OptionAbandoned, Line: 3},
			},
		},
		{
			name:  "hash inside a line is a word",
			input: "uid #abc; }",
			expected: []Token{
				{Kind: TokenOption, Text: "uid", Option: OptionUID, Line: 1},
				{Kind: TokenWord, Text: "#abc", Line: 1},
				{Kind: TokenTerminator, Text: ";", Line: 1},
				{Kind: TokenParen, Text: "}", Line: 1},
			},
		},
		{
			name:  "indented comment line",
			input: "{\n   # note } ;\n}",
			expected: []Token{
				{Kind: TokenParen, Text: "{", Line: 1},
				{Kind: TokenParen, Text: "}", Line: 3},
			},
		},
		{
			name:  "windows line endings",
			input: "uid x;\r\nends never;\r\n",
			expected: []Token{
				{Kind: TokenOption, Text: "uid", Option: OptionUID, Line: 1},
				{Kind: TokenWord, Text: "x", Line: 1},
				{Kind: TokenTerminator, Text: ";", Line: 1},
				{Kind: TokenOption, Text: "ends", Option: OptionEnds, Line: 2},
				{Kind: TokenWord, Text: "never", Line: 2},
				{Kind: TokenTerminator, Text: ";", Line: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Lex(tt.input))
		})
	}
}

func TestKeywords_RoundTrip(t *testing.T) {
	for kw, name := range optionNames {
		got, err := ParseOptionKeyword(name)
		require.NoError(t, err)
		assert.Equal(t, kw, got)
		assert.Equal(t, name, kw.String())
	}
	assert.Len(t, optionNames, 7)

	decl, err := ParseDeclKeyword("lease")
	require.NoError(t, err)
	assert.Equal(t, DeclLease, decl)
	assert.Equal(t, "lease", decl.String())
}

func TestKeywords_Unrecognized(t *testing.T) {
	_, err := ParseOptionKeyword("binding")
	assert.True(t, errors.Is(err, ErrUnrecognizedKeyword))
	assert.Contains(t, err.Error(), "'binding'")

	_, err = ParseDeclKeyword("host")
	assert.True(t, errors.Is(err, ErrUnrecognizedKeyword))

	_, err = ParseOptionKeyword("Hostname")
	assert.Error(t, err)
}
