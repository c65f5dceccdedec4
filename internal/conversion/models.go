package conversion

import (
	"interbank/pkg/cci"
	dErrors "interbank/pkg/domain-errors"
)

// Op names a single conversion.
type Op string

const (
	OpBCP    Op = "bcp"
	OpBBVA   Op = "bbva"
	OpDecode Op = "decode"

	// Single-code checks. They label metrics and spans but are not accepted in batches.
	OpIdentify Op = "identify"
	OpVerify   Op = "verify"
)

// Request is one conversion. AccountType is required for OpBCP and ignored otherwise.
type Request struct {
	Op          Op     `json:"op" validate:"required,oneof=bcp bbva decode"`
	Value       string `json:"value" validate:"required,notblank"`
	AccountType string `json:"accountType,omitempty" validate:"required_if=Op bcp"`
}

// Result is the outcome of one Request. Exactly one of CCI/Metadata or Error is set.
type Result struct {
	Index     int           `json:"index"`
	Op        Op            `json:"op"`
	Input     string        `json:"input"`
	CCI       string        `json:"cci,omitempty"`
	Metadata  *cci.Metadata `json:"metadata,omitempty"`
	Error     string        `json:"error,omitempty"`
	ErrorCode dErrors.Code  `json:"errorCode,omitempty"`
}

// OK reports whether the conversion succeeded.
func (r Result) OK() bool { return r.Error == "" }

// BatchResult holds per-request results in input order.
type BatchResult struct {
	ID      string   `json:"id"`
	Results []Result `json:"results"`
	Failed  int      `json:"failed"`
}
