// File: internal/graph/model.go
package graph

// Insight metric names requested from the page insights edge.
const (
	MetricPageFansTotal            = "page_fans_total"
	MetricPageEngagedUsers         = "page_engaged_users"
	MetricPageImpressionsUnique    = "page_impressions_unique"
	MetricPageActionsPostReactions = "page_actions_post_reactions"
)

// InsightMetrics is the fixed metric set, in request order.
var InsightMetrics = []string{
	MetricPageFansTotal,
	MetricPageEngagedUsers,
	MetricPageImpressionsUnique,
	MetricPageActionsPostReactions,
}

// PeriodTotalOverRange aggregates every metric over the whole since/until window.
const PeriodTotalOverRange = "total_over_range"

// Basic page fields read when insights are unavailable.
var PageStatsFields = []string{"fan_count", "followers_count", "new_like_count", "talking_about_count"}

// InsightsQuery selects the page and time range for an insights read.
// Since and Until are forwarded as given.
type InsightsQuery struct {
	PageID      string
	AccessToken string
	Since       string
	Until       string
}

// InsightValue is one point of a metric. Value is a number for most metrics
// and an object keyed by reaction type for page_actions_post_reactions.
type InsightValue struct {
	Value   interface{} `json:"value"`
	EndTime string      `json:"end_time,omitempty"`
}

// InsightMetric is a single entry of the insights edge.
type InsightMetric struct {
	ID          string         `json:"id,omitempty"`
	Name        string         `json:"name"`
	Period      string         `json:"period"`
	Title       string         `json:"title,omitempty"`
	Description string         `json:"description,omitempty"`
	Values      []InsightValue `json:"values"`
}

// PageStats holds the public counters of a page. Counters the API omits stay zero.
type PageStats struct {
	ID                string `json:"id"`
	FanCount          int64  `json:"fan_count"`
	FollowersCount    int64  `json:"followers_count"`
	NewLikeCount      int64  `json:"new_like_count"`
	TalkingAboutCount int64  `json:"talking_about_count"`
}

type insightsEnvelope struct {
	Data  []InsightMetric `json:"data"`
	Error *errorBody      `json:"error,omitempty"`
}

type pageStatsEnvelope struct {
	PageStats
	Error *errorBody `json:"error,omitempty"`
}

type errorBody struct {
	Message   string `json:"message"`
	Type      string `json:"type"`
	Code      int    `json:"code"`
	FBTraceID string `json:"fbtrace_id"`
}

type errorEnvelope struct {
	Error *errorBody `json:"error"`
}
