package dhcp

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dhcpleases/pkg/models"
)

const allOptions = `
# The format of this file is documented in the dhcpd.leases(5) manual page.
lease 192.168.0.2 {
	starts 2 2019/01/01 22:00:00 UTC;
	ends 2 2019/01/01 23:00:00 UTC;
	hardware type 11:11:11:11:11:11;
	uid Client1;
	client-hostname "CLIENTHOSTNAME";
	hostname "TESTHOSTNAME";
	abandoned;
}

lease 192.168.0.3 {
	starts 1 1985/01/01 00:00:00 UTC;
	hardware type 22:22:22:22:22:22;
	uid Client2;
	hostname "TESTHOSTNAME";
}
`

func date(t *testing.T, weekday, d, clock string) *models.Date {
	t.Helper()
	v, err := models.ParseDate(weekday, d, clock)
	require.NoError(t, err)
	return &v
}

func TestParseLeases_Empty(t *testing.T) {
	leases, err := ParseLeases("\n    lease 192.0.0.2 {\n\n    }")
	require.NoError(t, err)

	require.Len(t, leases, 1)
	assert.Equal(t, models.Lease{IP: "192.0.0.2"}, leases[0])
	assert.Nil(t, leases[0].Hardware)
	assert.False(t, leases[0].Abandoned)
}

func TestParseLeases_NoDeclarations(t *testing.T) {
	leases, err := ParseLeases("# nothing here\n")
	require.NoError(t, err)
	assert.Empty(t, leases)
}

func TestParseLeases_AllOptions(t *testing.T) {
	leases, err := ParseLeases(allOptions)
	require.NoError(t, err)

	want := models.Leases{
		{
			IP: "192.168.0.2",
			Dates: models.LeaseDates{
				Starts: date(t, "2", "2019/01/01", "22:00:00"),
				Ends:   date(t, "2", "2019/01/01", "23:00:00"),
			},
			Hardware:       &models.Hardware{Type: "type", MAC: "11:11:11:11:11:11"},
			UID:            "Client1",
			ClientHostname: `"CLIENTHOSTNAME"`,
			Hostname:       `"TESTHOSTNAME"`,
			Abandoned:      true,
		},
		{
			IP:       "192.168.0.3",
			Dates:    models.LeaseDates{Starts: date(t, "1", "1985/01/01", "00:00:00")},
			Hardware: &models.Hardware{Type: "type", MAC: "22:22:22:22:22:22"},
			UID:      "Client2",
			Hostname: `"TESTHOSTNAME"`,
		},
	}

	if diff := cmp.Diff(want, leases); diff != "" {
		t.Errorf("ParseLeases mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "Monday 1985/01/01 00:00:00", leases[1].Dates.Starts.String())
	assert.Nil(t, leases[1].Dates.Ends)
}

func TestParseLeases_WithoutTerminators(t *testing.T) {
	leases, err := ParseLeases("lease 10.0.0.1 { starts 3 2020/05/06 07:08:09 hardware ethernet aa:bb abandoned }")
	require.NoError(t, err)

	require.Len(t, leases, 1)
	assert.Equal(t, "Wednesday 2020/05/06 07:08:09", leases[0].Dates.Starts.String())
	assert.Equal(t, "aa:bb", leases[0].MAC())
	assert.True(t, leases[0].Abandoned)
}

func TestParseLeases_EndsNever(t *testing.T) {
	leases, err := ParseLeases("lease 10.0.0.1 {\n starts 3 2020/05/06 07:08:09;\n ends never;\n}")
	require.NoError(t, err)

	require.Len(t, leases, 1)
	assert.NotNil(t, leases[0].Dates.Starts)
	assert.Nil(t, leases[0].Dates.Ends)
}

func TestParseLeases_KeepsRenewals(t *testing.T) {
	input := `
lease 192.168.0.2 { starts 2 2019/01/01 22:00:00; hostname "first"; }
lease 192.168.0.3 { }
lease 192.168.0.2 { starts 3 2019/01/02 22:00:00; hostname "second"; }
`
	leases, err := ParseLeases(input)
	require.NoError(t, err)
	require.Len(t, leases, 3)

	latest, ok := leases.ByLeased("192.168.0.2")
	require.True(t, ok)
	assert.Equal(t, `"second"`, latest.Hostname)

	all := leases.ByLeasedAll("192.168.0.2")
	require.Len(t, all, 2)
	assert.Equal(t, `"first"`, all[0].Hostname)
	assert.Equal(t, `"second"`, all[1].Hostname)
}

func TestParseLeases_ActiveWindow(t *testing.T) {
	leases, err := ParseLeases(allOptions)
	require.NoError(t, err)

	assert.True(t, leases[0].IsActiveAt(*date(t, "2", "2019/01/01", "22:30:00")))
	assert.False(t, leases[0].IsActiveAt(*date(t, "2", "2019/01/01", "21:59:00")))
	assert.False(t, leases[0].IsActiveAt(*date(t, "2", "2019/01/01", "23:59:00")))
}

func TestParseLeases_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  error
		check func(t *testing.T, pe *ParseError)
	}{
		{
			name:  "missing closing brace",
			input: "\n    lease 192.0.0.2 {\n\n    ",
			kind:  ErrUnterminatedLease,
			check: func(t *testing.T, pe *ParseError) {
				assert.Equal(t, 2, pe.Line)
				assert.Equal(t, "192.0.0.2", pe.Lease)
			},
		},
		{
			name:  "invalid start date",
			input: "lease 192.0.0.2 {\n starts 2 2019-01-02 00:00:00;\n}",
			kind:  ErrInvalidDateFormat,
			check: func(t *testing.T, pe *ParseError) {
				assert.Equal(t, "starts", pe.Option)
				assert.Equal(t, 2, pe.Line)
				assert.True(t, errors.Is(pe, models.ErrInvalidDateFormat))
			},
		},
		{
			name:  "hour out of range",
			input: "lease 1.1.1.1 { ends 2 2019/01/02 24:00:00; }",
			kind:  ErrInvalidDateFormat,
		},
		{
			name:  "missing brace after ip",
			input: "lease 192.0.0.2 starts",
			kind:  ErrExpectedToken,
			check: func(t *testing.T, pe *ParseError) {
				assert.Equal(t, "{", pe.Expected)
				assert.Equal(t, "starts", pe.Token)
			},
		},
		{
			name:  "input ends after ip",
			input: "lease 192.0.0.2",
			kind:  ErrExpectedToken,
		},
		{
			name:  "input ends after lease keyword",
			input: "lease",
			kind:  ErrMissingArgument,
			check: func(t *testing.T, pe *ParseError) {
				assert.Equal(t, "lease", pe.Option)
			},
		},
		{
			name:  "bracket in address position",
			input: "lease { }",
			kind:  ErrExpectedToken,
			check: func(t *testing.T, pe *ParseError) {
				assert.Equal(t, "{", pe.Expected)
				assert.Equal(t, "}", pe.Token)
			},
		},
		{
			name:  "hardware without mac",
			input: "lease 1.1.1.1 { hardware ethernet; }",
			kind:  ErrMissingArgument,
			check: func(t *testing.T, pe *ParseError) {
				assert.Equal(t, "hardware", pe.Option)
				assert.Equal(t, ";", pe.Token)
			},
		},
		{
			name:  "hostname at end of input",
			input: "lease 1.1.1.1 { hostname",
			kind:  ErrMissingArgument,
		},
		{
			name:  "uid followed by closing brace",
			input: "lease 1.1.1.1 { uid }",
			kind:  ErrMissingArgument,
		},
		{
			name:  "unknown option",
			input: "lease 1.1.1.1 {\n binding state active;\n}",
			kind:  ErrUnexpectedToken,
			check: func(t *testing.T, pe *ParseError) {
				assert.Equal(t, "binding", pe.Token)
				assert.Equal(t, 2, pe.Line)
			},
		},
		{
			name:  "stray top-level word",
			input: "authoring-byte-order little-endian;",
			kind:  ErrUnexpectedToken,
		},
		{
			name:  "option outside a lease",
			input: "hostname foo;",
			kind:  ErrUnexpectedToken,
		},
		{
			name:  "stray closing brace",
			input: "lease 1.1.1.1 { } }",
			kind:  ErrUnexpectedToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leases, err := ParseLeases(tt.input)
			require.Error(t, err)
			assert.Nil(t, leases)
			assert.True(t, errors.Is(err, tt.kind), "got %v", err)

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			if tt.check != nil {
				tt.check(t, pe)
			}
		})
	}
}

func TestParseLeases_HashValue(t *testing.T) {
	leases, err := ParseLeases("lease 1.1.1.1 { uid #abc; }")
	require.NoError(t, err)
	require.Len(t, leases, 1)
	assert.Equal(t, "#abc", leases[0].UID)
}

func TestParseLeases_SignedDateField(t *testing.T) {
	leases, err := ParseLeases("lease 1.1.1.1 { starts +2 2019/+1/1 1:2:3; }")
	assert.Nil(t, leases)
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
	assert.ErrorIs(t, err, models.ErrInvalidDateFormat)
}

func TestParseLeases_NoPartialResults(t *testing.T) {
	input := allOptions + "lease 192.168.0.4 { starts 9 2019/01/01 00:00:00; }"

	leases, err := ParseLeases(input)
	assert.Nil(t, leases)
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestParseError_Message(t *testing.T) {
	_, err := ParseLeases("lease 1.1.1.1 {\n  hardware ethernet;\n}")
	require.Error(t, err)
	assert.Equal(t, "line 2: lease 1.1.1.1: missing argument for 'hardware', got ';'", err.Error())

	_, err = ParseLeases("lease 1.1.1.1 [")
	require.Error(t, err)
	assert.Equal(t, "line 1: lease 1.1.1.1: expected token '{', got '['", err.Error())
}
