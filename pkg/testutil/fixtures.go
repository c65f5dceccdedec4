package testutil

// Known account/CCI pairs, computed by hand from the published layouts.
// Kept as plain strings so any package, including pkg/cci's own tests, can use them.
var Accounts = struct {
	BCPAccount     string
	BCPSavingsCCI  string
	BCPCheckingCCI string
	BCPCTSCCI      string
	BCPPENAccount  string
	BCPPENSavings  string
	BBVAShort      string
	BBVALong       string
	BBVACCI        string
	InterbankCCI   string
	ScotiabankCCI  string
	BanbifCCI      string
	MiBancoCCI     string
	NacionCCI      string
	UnknownBankCCI string
}{
	BCPAccount:     "19205678912345",
	BCPSavingsCCI:  "00219210567891234533",
	BCPCheckingCCI: "00219220567891234532",
	BCPCTSCCI:      "00219230567891234531",
	BCPPENAccount:  "19312345678012",
	BCPPENSavings:  "00219311234567801210",
	BBVAShort:      "001101234567890123",
	BBVALong:       "00110123994567890123",
	BBVACCI:        "01112300456789012377",
	InterbankCCI:   "00312300301234567845",
	ScotiabankCCI:  "00917000000012345652",
	BanbifCCI:      "03810100010012345678",
	MiBancoCCI:     "04900000012345678901",
	NacionCCI:      "01800000004567890112",
	UnknownBankCCI: "99912300301234567845",
}
