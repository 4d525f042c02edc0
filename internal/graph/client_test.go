package graph

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"page_insights_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(&config.Config{GraphAPIBaseURL: srv.URL, GraphAPIVersion: "v16.0"}, zap.NewNop())
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestClient_Profile(t *testing.T) {
	const upstream = `{"id":"10","name":"Jane","picture":{"data":{"url":"https://cdn/p.jpg"}}}`
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/me", r.URL.Path)
		assert.Equal(t, "id,name,picture", r.URL.Query().Get("fields"))
		assert.Equal(t, "tok", r.URL.Query().Get("access_token"))
		writeJSON(w, http.StatusOK, upstream)
	})

	raw, err := client.Profile(context.Background(), "tok")
	require.NoError(t, err)
	assert.JSONEq(t, upstream, string(raw))
}

func TestClient_Pages(t *testing.T) {
	const upstream = `{"data":[{"id":"42","name":"My Page","access_token":"page-tok"}],"paging":{}}`
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/me/accounts", r.URL.Path)
		assert.Equal(t, "tok", r.URL.Query().Get("access_token"))
		writeJSON(w, http.StatusOK, upstream)
	})

	raw, err := client.Pages(context.Background(), "tok")
	require.NoError(t, err)
	assert.JSONEq(t, upstream, string(raw))
}

func TestClient_PageInsights(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/v16.0/42/insights", r.URL.Path)
		assert.Equal(t, "page_fans_total,page_engaged_users,page_impressions_unique,page_actions_post_reactions", q.Get("metric"))
		assert.Equal(t, "total_over_range", q.Get("period"))
		assert.Equal(t, "1700000000", q.Get("since"))
		_, hasUntil := q["until"]
		assert.False(t, hasUntil, "empty range markers are not sent")
		writeJSON(w, http.StatusOK, `{"data":[
			{"name":"page_fans_total","period":"total_over_range","values":[{"value":120,"end_time":"2024-01-02T08:00:00+0000"}],"title":"Fans","id":"42/insights/page_fans_total/total_over_range"},
			{"name":"page_actions_post_reactions","period":"total_over_range","values":[{"value":{"like":3,"love":1}}]}
		]}`)
	})

	metrics, err := client.PageInsights(context.Background(), InsightsQuery{PageID: "42", AccessToken: "tok", Since: "1700000000"})
	require.NoError(t, err)
	require.Len(t, metrics, 2)
	assert.Equal(t, "page_fans_total", metrics[0].Name)
	assert.Equal(t, "total_over_range", metrics[0].Period)
	assert.EqualValues(t, 120, metrics[0].Values[0].Value)
	assert.Equal(t, "2024-01-02T08:00:00+0000", metrics[0].Values[0].EndTime)
	assert.Equal(t, map[string]interface{}{"like": float64(3), "love": float64(1)}, metrics[1].Values[0].Value)
}

func TestClient_PageInsights_PathEscapesPageID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v16.0/42%2Fadmins/insights", r.URL.EscapedPath())
		writeJSON(w, http.StatusOK, `{"data":[]}`)
	})

	_, err := client.PageInsights(context.Background(), InsightsQuery{PageID: "42/admins", AccessToken: "tok"})
	require.NoError(t, err)
}

func TestClient_PageInsights_MissingData(t *testing.T) {
	for _, body := range []string{`{"paging":{}}`, `{"data":null}`} {
		t.Run(body, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, body)
			})

			_, err := client.PageInsights(context.Background(), InsightsQuery{PageID: "42", AccessToken: "tok"})
			require.Error(t, err)

			var gerr *Error
			require.True(t, errors.As(err, &gerr))
			assert.Equal(t, http.StatusOK, gerr.StatusCode)
			assert.Equal(t, "insights response has no data", gerr.Message)
		})
	}
}

func TestClient_PageStats(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v16.0/42", r.URL.Path)
		assert.Equal(t, "fan_count,followers_count,new_like_count,talking_about_count", r.URL.Query().Get("fields"))
		writeJSON(w, http.StatusOK, `{"id":"42","fan_count":10,"followers_count":12,"talking_about_count":3}`)
	})

	stats, err := client.PageStats(context.Background(), "42", "tok")
	require.NoError(t, err)
	assert.EqualValues(t, 10, stats.FanCount)
	assert.EqualValues(t, 12, stats.FollowersCount)
	assert.EqualValues(t, 3, stats.TalkingAboutCount)
	assert.EqualValues(t, 0, stats.NewLikeCount, "missing counters default to zero")
}

func TestClient_Errors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantStatus  int
		wantMessage string
		wantCode    int
	}{
		{
			name:        "upstream error payload",
			status:      http.StatusBadRequest,
			body:        `{"error":{"message":"(#100) The value must be a valid insights metric","type":"OAuthException","code":100,"fbtrace_id":"x"}}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "(#100) The value must be a valid insights metric",
			wantCode:    100,
		},
		{
			name:        "non-json failure",
			status:      http.StatusBadGateway,
			body:        `<html>bad gateway</html>`,
			wantStatus:  http.StatusBadGateway,
			wantMessage: "Request failed with status code 502",
		},
		{
			name:        "error payload on a 200",
			status:      http.StatusOK,
			body:        `{"error":{"message":"Unsupported get request","code":803}}`,
			wantStatus:  http.StatusOK,
			wantMessage: "Unsupported get request",
			wantCode:    803,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.status, tt.body)
			})

			_, err := client.PageInsights(context.Background(), InsightsQuery{PageID: "42", AccessToken: "tok"})
			require.Error(t, err)

			var gerr *Error
			require.True(t, errors.As(err, &gerr))
			assert.Equal(t, tt.wantStatus, gerr.StatusCode)
			assert.Equal(t, tt.wantMessage, gerr.Message)
			assert.Equal(t, tt.wantCode, gerr.Code)
		})
	}
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	client := NewClient(&config.Config{GraphAPIBaseURL: srv.URL, GraphAPIVersion: "v16.0"}, zap.NewNop())

	_, err := client.Profile(context.Background(), "tok")
	require.Error(t, err)

	var gerr *Error
	require.True(t, errors.As(err, &gerr))
	assert.Zero(t, gerr.StatusCode)
	assert.NotEmpty(t, gerr.Message)
}
