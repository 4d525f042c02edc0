// File: internal/insights/model.go
package insights

import "page_insights_backend/internal/graph"

// Outcome tells which branch of the fetch produced the result.
type Outcome int

const (
	PrimarySucceeded Outcome = iota + 1
	FallbackSucceeded
	BothFailed
)

func (o Outcome) String() string {
	switch o {
	case PrimarySucceeded:
		return "primary"
	case FallbackSucceeded:
		return "fallback"
	case BothFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Source labels reported to the caller.
const (
	SourceInsightsAPI = "Facebook Insights API"
	SourceBasicStats  = "Basic Page Statistics"

	FallbackNote = "Using basic page data as fallback because insights are not available"
)

// Request is the bound query of GET /page-insights. Nothing is validated:
// the values go to the Graph API as received.
type Request struct {
	AccessToken string `form:"access_token"`
	PageID      string `form:"page_id"`
	Since       string `form:"since"`
	Until       string `form:"until"`
}

func (r Request) query() graph.InsightsQuery {
	return graph.InsightsQuery{PageID: r.PageID, AccessToken: r.AccessToken, Since: r.Since, Until: r.Until}
}

// Value is one data point of a metric.
type Value struct {
	Value   interface{} `json:"value"`
	EndTime string      `json:"end_time,omitempty"`
}

// Metric is the reshaped form of a single insights metric.
type Metric struct {
	Name   string  `json:"name"`
	Period string  `json:"period,omitempty"`
	Values []Value `json:"values"`
}

// Result is the tagged outcome of a fetch. On BothFailed, PrimaryErr and
// FallbackErr are both set and Data is empty.
type Result struct {
	Outcome     Outcome
	Data        []Metric
	PrimaryErr  error
	FallbackErr error
}

// Response is the JSON body of a successful fetch.
type Response struct {
	Source string   `json:"source"`
	Note   string   `json:"note,omitempty"`
	Data   []Metric `json:"data"`
}
