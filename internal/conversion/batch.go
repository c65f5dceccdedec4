package conversion

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"interbank/internal/platform/tracer"
	"interbank/pkg/validation"
)

// ConvertBatch converts reqs concurrently, bounded by the configured concurrency.
//
// Results keep input order and carry their own errors; one bad request never
// fails the batch. An error is returned only for an empty or oversized batch
// or when ctx ends before every request has run.
func (s *Service) ConvertBatch(ctx context.Context, reqs []Request) (*BatchResult, error) {
	if err := validation.CheckSliceCount("requests", len(reqs), s.maxBatchSize); err != nil {
		return nil, err
	}

	batchID := s.newBatchID()
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, tracer.SpanBatch,
		tracer.String(tracer.AttrBatchID, batchID),
		tracer.Int(tracer.AttrBatchSize, len(reqs)),
	)

	if s.metrics != nil {
		s.metrics.ObserveBatchSize(len(reqs))
	}
	s.logger.InfoContext(ctx, "batch conversion started",
		"batch_id", batchID,
		"size", len(reqs),
		"concurrency", s.concurrency,
	)

	results := make([]Result, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	launched := 0
	for i, req := range reqs {
		if gctx.Err() != nil {
			break
		}
		launched++
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = s.convert(gctx, i, req)
			return nil
		})
	}

	err := g.Wait()
	if err == nil && launched < len(reqs) {
		err = ctx.Err()
	}
	if err != nil {
		span.End(err)
		s.logger.WarnContext(ctx, "batch conversion aborted",
			"batch_id", batchID,
			"error", err,
		)
		return nil, fmt.Errorf("batch %s: %w", batchID, err)
	}

	failed := 0
	for _, r := range results {
		if !r.OK() {
			failed++
			span.AddEvent(tracer.EventBatchItemFailed,
				tracer.Int("index", r.Index),
				tracer.String(tracer.AttrErrorCode, string(r.ErrorCode)),
			)
		}
	}
	span.SetAttributes(tracer.Int(tracer.AttrFailed, failed))
	span.End(nil)

	s.logger.InfoContext(ctx, "batch conversion finished",
		"batch_id", batchID,
		"size", len(reqs),
		"failed", failed,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return &BatchResult{ID: batchID, Results: results, Failed: failed}, nil
}

func normalizeRequest(req Request) Request {
	req.Op = Op(strings.ToLower(strings.TrimSpace(string(req.Op))))
	req.Value = strings.TrimSpace(req.Value)
	req.AccountType = strings.TrimSpace(req.AccountType)
	return req
}
