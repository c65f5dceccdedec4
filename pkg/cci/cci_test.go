package cci_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"interbank/pkg/cci"
	dErrors "interbank/pkg/domain-errors"
	"interbank/pkg/testutil"
)

type ValueObjectSuite struct {
	suite.Suite
}

func TestValueObjectSuite(t *testing.T) {
	suite.Run(t, new(ValueObjectSuite))
}

func (s *ValueObjectSuite) TestParse() {
	s.Run("plain digits", func() {
		c, err := cci.Parse(testutil.Accounts.BCPSavingsCCI)
		s.Require().NoError(err)
		s.Equal(testutil.Accounts.BCPSavingsCCI, c.String())
		s.Equal("002", c.BankCode())
		s.Equal(cci.BankBCP, c.Bank())
		s.Equal("33", c.CheckDigits())
	})

	s.Run("formatted input round-trips", func() {
		c, err := cci.Parse(" 002-192-105678912345-33 ")
		s.Require().NoError(err)
		s.Equal("002-192-105678912345-33", c.Formatted())
		s.Equal(testutil.Accounts.BCPSavingsCCI, c.String())
	})

	s.Run("rejects unknown bank", func() {
		_, err := cci.Parse(testutil.Accounts.UnknownBankCCI)
		s.True(dErrors.HasCode(err, dErrors.CodeUnknownBank))
	})

	s.Run("rejects short input", func() {
		_, err := cci.Parse("002-192")
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidFormat))
	})

	s.Run("decode via value", func() {
		c, err := cci.Parse(testutil.Accounts.NacionCCI)
		s.Require().NoError(err)
		md, err := c.Decode()
		s.Require().NoError(err)
		s.Equal(cci.BankNacion, md.Bank)
	})
}

func (s *ValueObjectSuite) TestUnparsedValues() {
	for _, c := range []cci.CCI{"", "0021921", cci.CCI(testutil.Accounts.BCPSavingsCCI + "0")} {
		s.Run("length "+fmt.Sprint(len(c)), func() {
			s.NotPanics(func() {
				s.Empty(c.BankCode())
				s.Empty(c.CheckDigits())
				s.Empty(c.Bank())
				s.Equal(string(c), c.Formatted())
			})
		})
	}
}

func (s *ValueObjectSuite) TestVerifyBCP() {
	s.Run("encoder output verifies", func() {
		for _, code := range []string{testutil.Accounts.BCPSavingsCCI, testutil.Accounts.BCPCheckingCCI, testutil.Accounts.BCPCTSCCI, testutil.Accounts.BCPPENSavings} {
			s.NoError(cci.VerifyBCP(code), code)
		}
	})

	s.Run("tampered body fails", func() {
		err := cci.VerifyBCP("00219210567891234433")
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidChecksum), "got %v", err)
	})

	s.Run("tampered check digit fails", func() {
		err := cci.VerifyBCP("00219210567891234534")
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidChecksum))
	})

	s.Run("other bank is rejected", func() {
		err := cci.VerifyBCP(testutil.Accounts.InterbankCCI)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	s.Run("malformed input", func() {
		err := cci.VerifyBCP("abc")
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidFormat))
	})
}

func TestBanks(t *testing.T) {
	banks := cci.Banks()
	require.Len(t, banks, 7)
	assert.Equal(t, cci.BankEntry{Bank: cci.BankBCP, Code: "002"}, banks[0])

	banks[0].Code = "999"
	assert.Equal(t, "002", cci.BankBCP.Code(), "Banks returns a copy")

	want := map[cci.Bank]string{
		cci.BankBCP: "002", cci.BankBBVA: "011", cci.BankInterbank: "003", cci.BankScotiabank: "009",
		cci.BankNacion: "018", cci.BankBanbif: "038", cci.BankMiBanco: "049",
	}
	for bank, code := range want {
		assert.Equal(t, code, bank.Code(), bank)
		got, ok := cci.BankByCode(code)
		assert.True(t, ok)
		assert.Equal(t, bank, got)
	}
	assert.Empty(t, cci.Bank("NOPE").Code())
}

func TestParseBank(t *testing.T) {
	tests := []struct {
		in   string
		want cci.Bank
	}{
		{"bcp", cci.BankBCP},
		{"BBVA", cci.BankBBVA},
		{"  Banco   de la Nacion ", cci.BankNacion},
		{"mi banco", cci.BankMiBanco},
		{"038", cci.BankBanbif},
		{"SCOTIABANK", cci.BankScotiabank},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := cci.ParseBank(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := cci.ParseBank("")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	_, err = cci.ParseBank("banco inexistente")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnknownBank))
}

func TestParseAccountType(t *testing.T) {
	tests := map[string]cci.AccountType{
		"1": cci.Savings, "Savings": cci.Savings, "AHORRO": cci.Savings,
		"2": cci.Checking, "checking": cci.Checking, "Corriente": cci.Checking,
		"3": cci.CTS, "cts": cci.CTS,
	}
	for in, want := range tests {
		got, err := cci.ParseAccountType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := cci.ParseAccountType("4")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	assert.Equal(t, "unknown", cci.AccountType("9").String())
}

// RoundTripSuite checks encode/decode consistency over random accounts.
// Justification: callers normalize stored account numbers through both
// directions; the recovered digits must match what the layout preserves.
type RoundTripSuite struct {
	suite.Suite
	rng *rand.Rand
}

func TestRoundTripSuite(t *testing.T) {
	suite.Run(t, new(RoundTripSuite))
}

func (s *RoundTripSuite) SetupTest() {
	s.rng = rand.New(rand.NewPCG(42, 1024))
}

func (s *RoundTripSuite) randomDigits(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('0' + s.rng.IntN(10))
	}
	return string(b)
}

func (s *RoundTripSuite) TestBCPSavingsIsIdempotent() {
	for i := 0; i < 500; i++ {
		acct := s.randomDigits(14)
		code, err := cci.EncodeBCP(acct, cci.Savings)
		s.Require().NoError(err)
		s.Require().NoError(cci.VerifyBCP(code))

		md, err := cci.Decode(code)
		s.Require().NoError(err)
		s.Equal(acct, md.AccountNumber)
		s.Equal(cci.KindAhorro, md.Type)

		again, err := cci.EncodeBCP(md.AccountNumber, cci.Savings)
		s.Require().NoError(err)
		s.Equal(code, again)
	}
}

func (s *RoundTripSuite) TestBCPOtherTypesDropTheSerialLeadingDigit() {
	for _, t := range []cci.AccountType{cci.Checking, cci.CTS} {
		for i := 0; i < 200; i++ {
			acct := s.randomDigits(14)
			code, err := cci.EncodeBCP(acct, t)
			s.Require().NoError(err)

			md, err := cci.Decode(code)
			s.Require().NoError(err)
			s.Equal(acct[:3]+acct[4:], md.AccountNumber)
			s.Equal(cci.KindCorriente, md.Type)
		}
	}
}

func (s *RoundTripSuite) TestBBVAIsIdempotent() {
	for i := 0; i < 500; i++ {
		// BBVA Peru accounts start with bank 0011 and a branch beginning with 0.
		acct := "0011" + "0" + s.randomDigits(13)
		code, err := cci.EncodeBBVA(acct)
		s.Require().NoError(err)

		md, err := cci.Decode(code)
		s.Require().NoError(err)
		s.Equal(cci.BankBBVA, md.Bank)
		s.Equal(acct, md.AccountNumber)

		again, err := cci.EncodeBBVA(md.AccountNumber)
		s.Require().NoError(err)
		s.Equal(code, again)
	}
}

func (s *RoundTripSuite) TestEncodersRejectEverythingButDigits() {
	for i := 0; i < 300; i++ {
		n := s.rng.IntN(25)
		in := []byte(s.randomDigits(n))
		if n > 0 && s.rng.IntN(2) == 0 {
			in[s.rng.IntN(n)] = 'x'
		}
		str := string(in)

		_, err := cci.EncodeBCP(str, cci.Savings)
		if len(str) == 14 && isAllDigits(str) {
			s.NoError(err, str)
		} else {
			s.Error(err, str)
		}

		_, err = cci.EncodeBBVA(str)
		if (len(str) == 18 || len(str) == 20) && isAllDigits(str) {
			s.NoError(err, str)
		} else {
			s.Error(err, str)
		}

		_, err = cci.Decode(str)
		if len(str) != 20 || !isAllDigits(str) {
			s.True(dErrors.HasCode(err, dErrors.CodeInvalidFormat), str)
		}
	}
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func TestConcurrentUse(t *testing.T) {
	codes := []string{
		testutil.Accounts.BCPSavingsCCI,
		testutil.Accounts.BBVACCI,
		testutil.Accounts.UnknownBankCCI,
		"not-a-cci",
	}

	result := testutil.RunConcurrent(200, func(idx int) error {
		code := codes[idx%len(codes)]
		md, err := cci.Decode(code)
		if err != nil {
			return err
		}
		if md.CCI != code {
			return fmt.Errorf("decoded %s as %s", code, md.CCI)
		}
		encoded, err := cci.EncodeBCP(testutil.Accounts.BCPAccount, cci.Savings)
		if err != nil {
			return err
		}
		if encoded != testutil.Accounts.BCPSavingsCCI {
			return fmt.Errorf("unexpected encoding %s", encoded)
		}
		return nil
	})

	assert.Equal(t, int32(200), result.Total())
	assert.Equal(t, int32(100), result.Successes)
	assert.Equal(t, int32(50), result.UnknownBanks)
	assert.Equal(t, int32(50), result.InvalidFormats)
	assert.Zero(t, result.Errors)
}

func TestConcurrentVerify(t *testing.T) {
	tampered := testutil.Accounts.BCPSavingsCCI[:18] + "00"

	successes, errs := testutil.RunConcurrentCollect(100, func(idx int) error {
		if idx%2 == 0 {
			return cci.VerifyBCP(testutil.Accounts.BCPSavingsCCI)
		}
		return cci.VerifyBCP(tampered)
	})

	assert.Equal(t, int32(50), successes)
	require.Len(t, errs, 50)
	for _, err := range errs {
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidChecksum))
	}
}
