package cci

import (
	"fmt"
	"strings"

	dErrors "interbank/pkg/domain-errors"
)

// Metadata is the decoded form of a CCI. BCPDetails is set only when Bank is BankBCP.
type Metadata struct {
	Bank          Bank   `json:"bank"`
	AccountNumber string `json:"accountNumber"`
	CCI           string `json:"cci"`
	*BCPDetails
}

// BCPDetails carries the fields only the BCP layout encodes.
type BCPDetails struct {
	Currency Currency `json:"currency"`
	Type     Kind     `json:"type"`
}

// span is a half-open [from, to) range into a CCI.
type span struct{ from, to int }

// accountLayout rebuilds a domestic account number as prefix followed by the spans.
type accountLayout struct {
	prefix string
	spans  []span
}

func (l accountLayout) extract(cci string) string {
	var b strings.Builder
	b.WriteString(l.prefix)
	for _, s := range l.spans {
		b.WriteString(cci[s.from:s.to])
	}
	return b.String()
}

// accountLayouts covers every bank except BCP, whose layout depends on the type digit.
var accountLayouts = map[Bank]accountLayout{
	BankInterbank:  {spans: []span{{3, 6}, {8, 18}}},
	BankBBVA:       {prefix: "00110", spans: []span{{3, 6}, {8, 18}}},
	BankScotiabank: {spans: []span{{3, 6}, {11, 18}}},
	BankBanbif:     {prefix: "0", spans: []span{{7, 18}}},
	BankMiBanco:    {spans: []span{{8, 18}}},
	BankNacion:     {spans: []span{{7, 18}}},
}

var (
	bcpSavingsLayout = accountLayout{spans: []span{{3, 6}, {7, 18}}}
	bcpOtherLayout   = accountLayout{spans: []span{{3, 6}, {8, 18}}}
)

const (
	bcpTypeIndex     = 6
	bcpCurrencyIndex = 15
)

// Decode identifies the issuing bank and rebuilds the domestic account number.
// It fails with the same codes as IdentifyBank.
func Decode(cci string) (Metadata, error) {
	bank, err := IdentifyBank(cci)
	if err != nil {
		return Metadata{}, err
	}

	if bank == BankBCP {
		return decodeBCP(cci), nil
	}

	layout, ok := accountLayouts[bank]
	if !ok {
		return Metadata{}, dErrors.New(dErrors.CodeInternal, fmt.Sprintf("no account layout for %s", bank))
	}
	return Metadata{
		Bank:          bank,
		AccountNumber: layout.extract(cci),
		CCI:           cci,
	}, nil
}

func decodeBCP(cci string) Metadata {
	layout, kind := bcpOtherLayout, KindCorriente
	if cci[bcpTypeIndex] == Savings[0] {
		layout, kind = bcpSavingsLayout, KindAhorro
	}
	currency := CurrencyUSD
	if cci[bcpCurrencyIndex] == '0' {
		currency = CurrencyPEN
	}
	return Metadata{
		Bank:          BankBCP,
		AccountNumber: layout.extract(cci),
		CCI:           cci,
		BCPDetails:    &BCPDetails{Currency: currency, Type: kind},
	}
}

func checkCCIFormat(cci string) error {
	if len(cci) != Length || !isDigits(cci) {
		return dErrors.New(dErrors.CodeInvalidFormat, fmt.Sprintf("CCI must be exactly %d digits", Length))
	}
	return nil
}
