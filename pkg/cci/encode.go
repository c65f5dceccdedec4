package cci

import (
	"fmt"
	"strings"

	dErrors "interbank/pkg/domain-errors"
)

const (
	// Length is the fixed length of every CCI.
	Length = 20

	bcpAccountLength       = 14
	bcpSerialLength        = 11
	bbvaShortAccountLength = 18
	bbvaLongAccountLength  = 20
)

// EncodeBCP builds the CCI for a 14-digit BCP account number.
//
// The body is the office prefix (first 3 digits) followed by the account type
// digit and the 11-digit serial; each half carries its own check digit.
func EncodeBCP(accountNumber string, accountType AccountType) (string, error) {
	if len(accountNumber) != bcpAccountLength {
		return "", dErrors.New(dErrors.CodeInvalidLength,
			fmt.Sprintf("BCP account number must have %d digits, got %d", bcpAccountLength, len(accountNumber)))
	}
	if !isDigits(accountNumber) {
		return "", dErrors.New(dErrors.CodeInvalidFormat, "BCP account number must contain only digits")
	}
	if !accountType.Valid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("unknown BCP account type %q", string(accountType)))
	}

	office := accountNumber[:3]
	serial := leftPad(accountNumber[3:], bcpSerialLength)

	group1 := BankBCP.Code() + office
	group2 := string(accountType) + serial

	var b strings.Builder
	b.Grow(Length)
	b.WriteString(group1)
	b.WriteString(group2)
	b.WriteByte(bcpCheckDigit(group1))
	b.WriteByte(bcpCheckDigit(group2))
	return b.String(), nil
}

// EncodeBBVA builds the CCI for a BBVA account number in its 18-digit form
// (bank, branch, control, account) or its 20-digit form, which carries two
// filler digits between branch and control.
func EncodeBBVA(accountNumber string) (string, error) {
	n := len(accountNumber)
	if n != bbvaShortAccountLength && n != bbvaLongAccountLength {
		return "", dErrors.New(dErrors.CodeInvalidLength,
			fmt.Sprintf("BBVA account number must have %d or %d digits, got %d", bbvaShortAccountLength, bbvaLongAccountLength, n))
	}
	if !isDigits(accountNumber) {
		return "", dErrors.New(dErrors.CodeInvalidFormat, "BBVA account number must contain only digits")
	}

	bank := accountNumber[0:4]
	branch := accountNumber[4:8]
	control, account := accountNumber[8:10], accountNumber[10:18]
	if n == bbvaLongAccountLength {
		control, account = accountNumber[10:12], accountNumber[12:20]
	}

	// The interbank layout keeps only the last 3 digits of bank and branch.
	var b strings.Builder
	b.Grow(Length)
	b.WriteString(bank[1:])
	b.WriteString(branch[1:])
	b.WriteString("00")
	b.WriteString(control)
	b.WriteString(account)
	b.WriteByte(weightedCheckDigit(bank+branch, bbvaBranchWeights))
	b.WriteByte(weightedCheckDigit(control+account, bbvaAccountWeights))
	return b.String(), nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func leftPad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
