package cci

import (
	"strings"

	dErrors "interbank/pkg/domain-errors"
)

// CCI is a validated interbank account code. Construct it with Parse at
// input boundaries; the zero value is not a valid code.
type CCI string

// Parse validates s as a CCI from a known bank. Surrounding spaces and the
// dash or space separators used in printed codes are ignored.
func Parse(s string) (CCI, error) {
	cleaned := Clean(s)
	if _, err := IdentifyBank(cleaned); err != nil {
		return "", err
	}
	return CCI(cleaned), nil
}

// Clean drops the dash and space separators used in printed codes without
// validating what is left.
func Clean(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '-' || r == ' ' {
			return -1
		}
		return r
	}, strings.TrimSpace(s))
}

func (c CCI) String() string { return string(c) }

// BankCode returns the 3-digit prefix, or "" if c is not 20 characters long.
func (c CCI) BankCode() string {
	if len(c) != Length {
		return ""
	}
	return string(c[:bankCodeLength])
}

// Bank returns the issuing bank. It is always found for a parsed CCI.
func (c CCI) Bank() Bank {
	b, _ := BankByCode(c.BankCode())
	return b
}

// CheckDigits returns the two trailing check digits, or "" if c is not 20 characters long.
func (c CCI) CheckDigits() string {
	if len(c) != Length {
		return ""
	}
	return string(c[Length-2:])
}

// Formatted renders the code the way banks print it: XXX-XXX-XXXXXXXXXXXX-XX.
// A value of the wrong length is returned unchanged.
func (c CCI) Formatted() string {
	s := string(c)
	if len(s) != Length {
		return s
	}
	return s[0:3] + "-" + s[3:6] + "-" + s[6:18] + "-" + s[18:20]
}

// Decode is shorthand for Decode(c.String()).
func (c CCI) Decode() (Metadata, error) {
	return Decode(string(c))
}

// VerifyBCP recomputes both BCP check digits and compares them with the
// trailing digits of cci.
func VerifyBCP(cci string) error {
	bank, err := IdentifyBank(cci)
	if err != nil {
		return err
	}
	if bank != BankBCP {
		return dErrors.New(dErrors.CodeInvalidInput, "check digit verification is only defined for BCP codes")
	}
	want1, want2 := bcpCheckDigit(cci[0:6]), bcpCheckDigit(cci[6:18])
	if cci[18] != want1 || cci[19] != want2 {
		return dErrors.New(dErrors.CodeInvalidChecksum,
			"BCP check digits do not match, expected "+string([]byte{want1, want2}))
	}
	return nil
}
