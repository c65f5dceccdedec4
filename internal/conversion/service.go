package conversion

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"interbank/internal/conversion/metrics"
	"interbank/internal/platform/logger"
	"interbank/internal/platform/tracer"
	"interbank/pkg/cci"
	dErrors "interbank/pkg/domain-errors"
	"interbank/pkg/validation"
)

const (
	defaultConcurrency  = 8
	defaultMaxBatchSize = 10000
)

// MetricsRecorder is the subset of metrics.Metrics the service needs.
type MetricsRecorder interface {
	IncrementConversion(op, bank, outcome string)
	ObserveConversion(op string, start time.Time)
	ObserveBatchSize(n int)
}

// Service wraps the pure codec with logging, metrics and tracing, and adds
// batch conversion. It holds no per-call state and is safe for concurrent use.
type Service struct {
	metrics      MetricsRecorder
	tracer       tracer.Tracer
	logger       *slog.Logger
	concurrency  int
	maxBatchSize int
	newBatchID   func() string
}

// Option configures the Service.
type Option func(*Service)

func WithMetrics(m MetricsRecorder) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		s.logger = l
	}
}

func WithTracer(t tracer.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// WithConcurrency bounds the number of batch items converted at once.
func WithConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

func WithMaxBatchSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxBatchSize = n
		}
	}
}

// WithBatchIDGenerator overrides batch ID generation; tests use it for stable IDs.
func WithBatchIDGenerator(fn func() string) Option {
	return func(s *Service) {
		s.newBatchID = fn
	}
}

// New creates a conversion service. Every dependency is optional.
func New(opts ...Option) *Service {
	s := &Service{
		tracer:       tracer.NewNoop(),
		logger:       logger.Discard(),
		concurrency:  defaultConcurrency,
		maxBatchSize: defaultMaxBatchSize,
		newBatchID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// EncodeBCP converts a 14-digit BCP account number.
func (s *Service) EncodeBCP(ctx context.Context, accountNumber string, accountType cci.AccountType) (string, error) {
	var code string
	err := s.observe(ctx, OpBCP, accountNumber, func() (cci.Bank, error) {
		var err error
		code, err = cci.EncodeBCP(accountNumber, accountType)
		return cci.BankBCP, err
	})
	return code, err
}

// EncodeBBVA converts an 18- or 20-digit BBVA account number.
func (s *Service) EncodeBBVA(ctx context.Context, accountNumber string) (string, error) {
	var code string
	err := s.observe(ctx, OpBBVA, accountNumber, func() (cci.Bank, error) {
		var err error
		code, err = cci.EncodeBBVA(accountNumber)
		return cci.BankBBVA, err
	})
	return code, err
}

// Decode returns the metadata for a CCI.
func (s *Service) Decode(ctx context.Context, code string) (cci.Metadata, error) {
	var md cci.Metadata
	err := s.observe(ctx, OpDecode, code, func() (cci.Bank, error) {
		var err error
		md, err = cci.Decode(code)
		return md.Bank, err
	})
	return md, err
}

// Identify returns the bank that issued code.
func (s *Service) Identify(ctx context.Context, code string) (cci.Bank, error) {
	var bank cci.Bank
	err := s.observe(ctx, OpIdentify, code, func() (cci.Bank, error) {
		var err error
		bank, err = cci.IdentifyBank(code)
		return bank, err
	})
	return bank, err
}

// Verify recomputes the check digits of a BCP code.
func (s *Service) Verify(ctx context.Context, code string) error {
	return s.observe(ctx, OpVerify, code, func() (cci.Bank, error) {
		return cci.BankBCP, cci.VerifyBCP(code)
	})
}

// Convert runs a single request and reports failures inside the Result.
func (s *Service) Convert(ctx context.Context, req Request) Result {
	return s.convert(ctx, 0, req)
}

func (s *Service) convert(ctx context.Context, idx int, req Request) Result {
	req = normalizeRequest(req)
	res := Result{Index: idx, Op: req.Op, Input: req.Value}

	err := validation.Validate(req)
	if err == nil {
		switch req.Op {
		case OpBCP:
			var t cci.AccountType
			if t, err = cci.ParseAccountType(req.AccountType); err == nil {
				res.CCI, err = s.EncodeBCP(ctx, req.Value, t)
			}
		case OpBBVA:
			res.CCI, err = s.EncodeBBVA(ctx, req.Value)
		case OpDecode:
			var md cci.Metadata
			if md, err = s.Decode(ctx, req.Value); err == nil {
				res.Metadata = &md
			}
		default:
			err = dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("unsupported op %q", req.Op))
		}
	}

	if err != nil {
		res.Error = err.Error()
		res.ErrorCode = dErrors.CodeOf(err)
	}
	return res
}

// observe times fn and records the span, metric and log line for one conversion.
func (s *Service) observe(ctx context.Context, op Op, input string, fn func() (cci.Bank, error)) error {
	start := time.Now()
	_, span := s.tracer.Start(ctx, tracer.SpanConvert, tracer.String(tracer.AttrOp, string(op)))

	bank, err := fn()
	elapsed := time.Since(start)

	outcome := metrics.OutcomeOK
	if err != nil {
		outcome = metrics.OutcomeError
		bank = ""
		span.SetAttributes(tracer.String(tracer.AttrErrorCode, string(dErrors.CodeOf(err))))
	}
	span.SetAttributes(tracer.String(tracer.AttrBank, string(bank)), tracer.Duration(tracer.AttrElapsedUs, elapsed))
	span.End(err)

	if s.metrics != nil {
		s.metrics.IncrementConversion(string(op), string(bank), outcome)
		s.metrics.ObserveConversion(string(op), start)
	}

	if err != nil {
		s.logger.DebugContext(ctx, "conversion failed",
			"op", op,
			"input", logger.MaskAccount(input),
			"code", dErrors.CodeOf(err),
			"error", err,
		)
		return err
	}
	s.logger.DebugContext(ctx, "conversion succeeded",
		"op", op,
		"input", logger.MaskAccount(input),
		"bank", bank,
	)
	return nil
}
