package cci

import (
	"fmt"
	"strings"

	dErrors "interbank/pkg/domain-errors"
)

// AccountType selects the BCP body layout. The value is the digit written
// in front of the account serial.
type AccountType string

const (
	Savings  AccountType = "1"
	Checking AccountType = "2"
	CTS      AccountType = "3"
)

var accountTypeNames = map[string]AccountType{
	"1":         Savings,
	"savings":   Savings,
	"ahorro":    Savings,
	"ahorros":   Savings,
	"2":         Checking,
	"checking":  Checking,
	"corriente": Checking,
	"3":         CTS,
	"cts":       CTS,
}

// ParseAccountType accepts the layout digit or the English or Spanish name, in any case.
func ParseAccountType(s string) (AccountType, error) {
	t, ok := accountTypeNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("unknown account type %q", s))
	}
	return t, nil
}

// Valid reports whether t is one of the three BCP account types.
func (t AccountType) Valid() bool {
	return t == Savings || t == Checking || t == CTS
}

func (t AccountType) String() string {
	switch t {
	case Savings:
		return "savings"
	case Checking:
		return "checking"
	case CTS:
		return "cts"
	default:
		return "unknown"
	}
}

// Kind is the BCP account classification recovered by Decode.
type Kind string

const (
	KindAhorro    Kind = "Ahorro"
	KindCorriente Kind = "Corriente"
)

// Currency is the BCP currency flag recovered by Decode.
type Currency string

const (
	CurrencyPEN Currency = "PEN"
	CurrencyUSD Currency = "USD"
)
