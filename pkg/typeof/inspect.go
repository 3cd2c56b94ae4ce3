package typeof

import (
	"context"

	"github.com/vito/typeof/pkg/zapctx"
	"go.uber.org/zap"
)

// Report collects every verdict about a value.
type Report struct {
	Value      string   `json:"value"`
	Tag        string   `json:"tag"`
	Predicates []string `json:"predicates"`
	Empty      bool     `json:"empty"`
	Truthy     bool     `json:"truthy"`
}

// Inspect classifies a value against the given predicates, or all of them,
// and logs the verdicts at debug level.
func Inspect(ctx context.Context, val Value, preds ...Predicate) Report {
	report := Report{
		Value:      repr(val),
		Tag:        Tag(val),
		Predicates: Satisfied(val, preds...),
		Empty:      IsEmpty(val),
		Truthy:     IsTruthy(val),
	}

	if report.Predicates == nil {
		report.Predicates = []string{}
	}

	zapctx.FromContext(ctx).Debug("inspected",
		zap.String("value", report.Value),
		zap.String("tag", report.Tag),
		zap.Strings("predicates", report.Predicates),
		zap.Bool("empty", report.Empty),
		zap.Bool("truthy", report.Truthy))

	return report
}

func repr(val Value) string {
	if val == nil {
		return Undefined{}.String()
	}

	return val.String()
}
