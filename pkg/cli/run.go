package cli

import (
	"context"

	"github.com/vito/typeof/pkg/typeof"
	"github.com/vito/typeof/pkg/zapctx"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Classify inspects every value concurrently, at most jobs at a time, and
// returns the reports in input order. A jobs value of zero means no limit.
func Classify(ctx context.Context, vals []typeof.Value, preds []typeof.Predicate, jobs int) ([]typeof.Report, error) {
	ctx, logger := zapctx.With(ctx, zap.Int("values", len(vals)))

	reports := make([]typeof.Report, len(vals))

	eg, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		eg.SetLimit(jobs)
	}

	for i, val := range vals {
		i, val := i, val
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			reports[i] = typeof.Inspect(ctx, val, preds...)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	logger.Debug("classified")

	return reports, nil
}

// Check returns the values which do not satisfy the predicate.
func Check(vals []typeof.Value, pred typeof.Predicate) []typeof.Value {
	var failed []typeof.Value
	for _, val := range vals {
		if !pred.Check(val) {
			failed = append(failed, val)
		}
	}

	return failed
}
