// File: internal/insights/service.go

// Package insights fetches page metrics, preferring the insights edge and
// falling back to the page's public counters when insights are refused.
package insights

import (
	"context"

	"page_insights_backend/internal/graph"

	"go.uber.org/zap"
)

// Service defines the insights operation.
type Service interface {
	Fetch(ctx context.Context, req Request) Result
}

type service struct {
	graph  graph.API
	logger *zap.Logger
}

// NewService creates a new insights service.
func NewService(api graph.API, logger *zap.Logger) Service {
	return &service{graph: api, logger: logger.Named("InsightsService")}
}

// Fetch tries the insights edge once, then the basic page counters once.
// Any primary failure triggers the fallback; small pages get a business-rule
// rejection from the insights edge that is handled the same as a network error.
func (s *service) Fetch(ctx context.Context, req Request) Result {
	metrics, err := s.graph.PageInsights(ctx, req.query())
	if err == nil {
		return Result{Outcome: PrimarySucceeded, Data: reshape(metrics)}
	}
	primaryErr := err
	s.logger.Warn("Page insights unavailable, falling back to basic page statistics",
		zap.String("page_id", req.PageID),
		zap.Error(primaryErr),
	)

	stats, err := s.graph.PageStats(ctx, req.PageID, req.AccessToken)
	if err != nil {
		s.logger.Error("Basic page statistics fallback failed",
			zap.String("page_id", req.PageID),
			zap.Error(err),
		)
		return Result{Outcome: BothFailed, PrimaryErr: primaryErr, FallbackErr: err}
	}
	return Result{Outcome: FallbackSucceeded, Data: FromPageStats(stats), PrimaryErr: primaryErr}
}

func reshape(metrics []graph.InsightMetric) []Metric {
	out := make([]Metric, 0, len(metrics))
	for _, m := range metrics {
		values := make([]Value, 0, len(m.Values))
		for _, v := range m.Values {
			values = append(values, Value{Value: v.Value, EndTime: v.EndTime})
		}
		out = append(out, Metric{Name: m.Name, Period: m.Period, Values: values})
	}
	return out
}

// FromPageStats lays the page counters out under the insights metric names so
// both sources share one response shape. The pairing is positional and the
// meanings differ: page_engaged_users carries talking_about_count and
// page_impressions_unique carries followers_count.
func FromPageStats(stats *graph.PageStats) []Metric {
	single := func(name string, v int64) Metric {
		return Metric{Name: name, Values: []Value{{Value: v}}}
	}
	return []Metric{
		single(graph.MetricPageFansTotal, stats.FanCount),
		single(graph.MetricPageEngagedUsers, stats.TalkingAboutCount),
		single(graph.MetricPageImpressionsUnique, stats.FollowersCount),
		single(graph.MetricPageActionsPostReactions, stats.NewLikeCount),
	}
}
