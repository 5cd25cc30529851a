package ap

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sandevgo/elex/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var electionDate = time.Date(2015, time.November, 3, 0, 0, 0, 0, time.UTC)

func newTestClient(url string) *Client {
	return NewClient(&config.APConfig{
		APIKey:  "secret-key",
		BaseURL: url,
		Timeout: 5 * time.Second,
	})
}

func TestClient_Election(t *testing.T) {
	fixture, err := os.ReadFile(filepath.Join("testdata", "election.json"))
	require.NoError(t, err)

	var got *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		w.Header().Set("Content-Type", "application/json")
		w.Write(fixture)
	}))
	defer server.Close()

	e, err := newTestClient(server.URL).Election(context.Background(), electionDate, Options{
		Test:         true,
		NationalOnly: true,
		RaceIDs:      []string{"14897", "36542"},
	})
	require.NoError(t, err)

	require.NotNil(t, got)
	assert.Equal(t, "/elections/2015-11-03", got.URL.Path)
	q := got.URL.Query()
	assert.Equal(t, "secret-key", q.Get("apiKey"))
	assert.Equal(t, "json", q.Get("format"))
	assert.Equal(t, "ru", q.Get("level"))
	assert.Equal(t, "true", q.Get("test"))
	assert.Equal(t, "true", q.Get("national"))
	assert.Equal(t, "14897,36542", q.Get("raceID"))
	assert.NotEmpty(t, got.Header.Get("X-Request-ID"))
	assert.Contains(t, got.Header.Get("User-Agent"), "elex")

	assert.Equal(t, "2015-11-03", e.Date)
	require.Len(t, e.Races, 2)
	assert.Equal(t, "Governor", e.Races[0].OfficeName)
	assert.True(t, e.Races[1].IsBallotMeasure())
}

func TestClient_Elections(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/elections/", r.URL.Path)
		fmt.Fprint(w, `{"elections":[{"electionDate":"2015-11-03","testFlag":false,"liveFlag":true},{"electionDate":"2016-02-01","testFlag":true,"liveFlag":false}]}`)
	}))
	defer server.Close()

	list, err := newTestClient(server.URL).Elections(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2016-02-01", list[1].Date)
	assert.True(t, list[1].Test)
}

func TestClient_HTTPErrors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantKind    Kind
		wantReason  string
		wantMessage string
	}{
		{
			name:        "bad request",
			status:      http.StatusBadRequest,
			body:        `{"errorMessage":"Invalid date format"}`,
			wantKind:    KindBadRequest,
			wantReason:  "Bad Request",
			wantMessage: "Invalid date format",
		},
		{
			name:        "unauthorized",
			status:      http.StatusUnauthorized,
			body:        `{"fault":{"faultstring":"Invalid ApiKey","detail":{"errorcode":"oauth.v2.InvalidApiKey"}}}`,
			wantKind:    KindUnauthorized,
			wantReason:  "Unauthorized",
			wantMessage: "Invalid ApiKey (oauth.v2.InvalidApiKey)",
		},
		{
			name:        "unauthorized without json body",
			status:      http.StatusUnauthorized,
			body:        `nope`,
			wantKind:    KindUnauthorized,
			wantReason:  "Unauthorized",
			wantMessage: "Unauthorized",
		},
		{
			name:        "server error",
			status:      http.StatusServiceUnavailable,
			body:        `upstream down`,
			wantKind:    KindOther,
			wantReason:  "Service Unavailable",
			wantMessage: "Service Unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			}))
			defer server.Close()

			_, err := newTestClient(server.URL).Election(context.Background(), electionDate, Options{})

			var httpErr *HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, tt.status, httpErr.StatusCode)
			assert.Equal(t, tt.wantKind, httpErr.Kind())
			assert.Equal(t, tt.wantReason, httpErr.Reason)
			assert.Equal(t, tt.wantMessage, httpErr.Message())
			assert.NotContains(t, httpErr.URL, "secret-key")
			assert.Contains(t, httpErr.URL, "/elections/2015-11-03")
		})
	}
}

func TestLoadFile(t *testing.T) {
	e, err := LoadFile(filepath.Join("testdata", "election.json"))
	require.NoError(t, err)
	assert.Equal(t, "2015-11-03", e.Date)
	require.Len(t, e.Races, 2)
	assert.Equal(t, 476697, e.Races[0].ReportingUnits[0].Candidates[0].VoteCount)

	_, err = LoadFile(filepath.Join("testdata", "missing.json"))
	assert.Error(t, err)
}

func TestOptions_Filter(t *testing.T) {
	e, err := LoadFile(filepath.Join("testdata", "election.json"))
	require.NoError(t, err)

	assert.Len(t, Options{}.Filter(e.Races), 2)

	national := Options{NationalOnly: true}.Filter(e.Races)
	require.Len(t, national, 1)
	assert.Equal(t, "14897", national[0].ID)

	byID := Options{RaceIDs: []string{"36542"}}.Filter(e.Races)
	require.Len(t, byID, 1)
	assert.Equal(t, "OH", byID[0].StateAbbrev)
}
