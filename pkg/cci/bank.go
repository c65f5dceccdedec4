// Package cci converts Peruvian domestic account numbers to the 20-digit
// Código de Cuenta Interbancario and decodes a CCI back into account metadata.
//
// Every function in this package is pure: it reads only the immutable tables
// declared here and is safe for concurrent use without locking.
package cci

import (
	"fmt"
	"strings"

	dErrors "interbank/pkg/domain-errors"
)

// Bank names an issuing bank as it appears in decoded metadata.
type Bank string

const (
	BankBCP        Bank = "BCP"
	BankBBVA       Bank = "BBVA"
	BankInterbank  Bank = "INTERBANK"
	BankScotiabank Bank = "SCOTIABANK"
	BankNacion     Bank = "BANCO DE LA NACION"
	BankBanbif     Bank = "BANBIF"
	BankMiBanco    Bank = "MI BANCO"
)

const bankCodeLength = 3

// BankEntry pairs a bank with its 3-digit interbank code.
type BankEntry struct {
	Bank Bank   `json:"bank"`
	Code string `json:"code"`
}

// bankTable is scanned linearly by IdentifyBank; order is the display order.
var bankTable = [...]BankEntry{
	{Bank: BankBCP, Code: "002"},
	{Bank: BankBBVA, Code: "011"},
	{Bank: BankInterbank, Code: "003"},
	{Bank: BankScotiabank, Code: "009"},
	{Bank: BankNacion, Code: "018"},
	{Bank: BankBanbif, Code: "038"},
	{Bank: BankMiBanco, Code: "049"},
}

var bankAliases = map[string]Bank{
	"bcp":                BankBCP,
	"credito":            BankBCP,
	"bbva":               BankBBVA,
	"continental":        BankBBVA,
	"interbank":          BankInterbank,
	"ibk":                BankInterbank,
	"scotiabank":         BankScotiabank,
	"scotia":             BankScotiabank,
	"nacion":             BankNacion,
	"bn":                 BankNacion,
	"banco de la nacion": BankNacion,
	"banbif":             BankBanbif,
	"mibanco":            BankMiBanco,
	"mi banco":           BankMiBanco,
}

// Banks returns a copy of the bank code table.
func Banks() []BankEntry {
	out := make([]BankEntry, len(bankTable))
	copy(out, bankTable[:])
	return out
}

// Code returns the bank's 3-digit interbank code, or "" for a bank outside the table.
func (b Bank) Code() string {
	for _, e := range bankTable {
		if e.Bank == b {
			return e.Code
		}
	}
	return ""
}

func (b Bank) String() string { return string(b) }

// BankByCode resolves a 3-digit code. The bool is false when no bank uses it.
func BankByCode(code string) (Bank, bool) {
	for _, e := range bankTable {
		if e.Code == code {
			return e.Bank, true
		}
	}
	return "", false
}

// ParseBank resolves free-form user input: a bank name, a short alias or a 3-digit code.
func ParseBank(name string) (Bank, error) {
	key := strings.ToLower(strings.Join(strings.Fields(name), " "))
	if key == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "bank cannot be empty")
	}
	if b, ok := bankAliases[key]; ok {
		return b, nil
	}
	if b, ok := BankByCode(key); ok {
		return b, nil
	}
	for _, e := range bankTable {
		if strings.EqualFold(string(e.Bank), key) {
			return e.Bank, nil
		}
	}
	return "", dErrors.New(dErrors.CodeUnknownBank, fmt.Sprintf("unknown bank %q", name))
}

// IdentifyBank returns the bank that issued cci.
// It fails with CodeInvalidFormat unless cci is exactly 20 digits, and with
// CodeUnknownBank when the 3-digit prefix is not in the bank table.
func IdentifyBank(cci string) (Bank, error) {
	if err := checkCCIFormat(cci); err != nil {
		return "", err
	}
	prefix := cci[:bankCodeLength]
	if b, ok := BankByCode(prefix); ok {
		return b, nil
	}
	return "", dErrors.New(dErrors.CodeUnknownBank, fmt.Sprintf("unknown bank code %s", prefix))
}
