// ===== internal/dhcp/keywords.go =====
package dhcp

import "fmt"

// DeclKeyword is a top-level declaration keyword
type DeclKeyword int

const (
	DeclLease DeclKeyword = iota + 1
)

var declNames = map[DeclKeyword]string{
	DeclLease: "lease",
}

// ParseDeclKeyword matches s exactly against the declaration keywords
func ParseDeclKeyword(s string) (DeclKeyword, error) {
	for kw, name := range declNames {
		if name == s {
			return kw, nil
		}
	}
	return 0, &KeywordError{Word: s, Class: "declaration"}
}

func (k DeclKeyword) String() string {
	if name, ok := declNames[k]; ok {
		return name
	}
	return fmt.Sprintf("DeclKeyword(%d)", int(k))
}

// OptionKeyword is a statement keyword inside a lease block
type OptionKeyword int

const (
	OptionAbandoned OptionKeyword = iota + 1
	OptionClientHostname
	OptionEnds
	OptionHardware
	OptionHostname
	OptionStarts
	OptionUID
)

var optionNames = map[OptionKeyword]string{
	OptionAbandoned:      "abandoned",
	OptionClientHostname: "client-hostname",
	OptionEnds:           "ends",
	OptionHardware:       "hardware",
	OptionHostname:       "hostname",
	OptionStarts:         "starts",
	OptionUID:            "uid",
}

// ParseOptionKeyword matches s exactly against the lease option keywords
func ParseOptionKeyword(s string) (OptionKeyword, error) {
	for kw, name := range optionNames {
		if name == s {
			return kw, nil
		}
	}
	return 0, &KeywordError{Word: s, Class: "lease option"}
}

func (k OptionKeyword) String() string {
	if name, ok := optionNames[k]; ok {
		return name
	}
	return fmt.Sprintf("OptionKeyword(%d)", int(k))
}

// arity is the number of argument tokens the option consumes
func (k OptionKeyword) arity() int {
	switch k {
	case OptionStarts, OptionEnds:
		return 3
	case OptionHardware:
		return 2
	case OptionUID, OptionClientHostname, OptionHostname:
		return 1
	default:
		return 0
	}
}
