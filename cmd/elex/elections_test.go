package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/sandevgo/elex/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixturePath = filepath.Join("..", "..", "internal", "providers", "ap", "testdata", "election.json")

// run executes the root command with fresh flag values and records exit codes.
func run(t *testing.T, args ...string) (string, []int, error) {
	t.Helper()
	t.Setenv("ELEX_RUNTIME_PATH", t.TempDir())

	debug, dataFile, formatJSON, testResults, nationalOnly, raceIDs = false, "", false, false, false, nil

	var codes []int
	exit = func(code int) { codes = append(codes, code) }
	t.Cleanup(func() { exit = nil })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), codes, err
}

func TestResults_FromDataFile(t *testing.T) {
	out, codes, err := run(t, "results", "--data-file", fixturePath)
	require.NoError(t, err)
	assert.Empty(t, codes)

	records, err := csv.NewReader(bytes.NewBufferString(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 7)
	assert.Equal(t, "electiondate", records[0][0])
	assert.Equal(t, "Bryant", records[1][10])
}

func TestRaces_DataFileFilters(t *testing.T) {
	out, codes, err := run(t, "races", "--data-file", fixturePath, "--national-only", "--format-json")
	require.NoError(t, err)
	assert.Empty(t, codes)
	assert.Contains(t, out, `"raceid": "14897"`)
	assert.NotContains(t, out, "36542")
}

func TestRaces_NoInputExits(t *testing.T) {
	out, codes, err := run(t, "races")
	require.NoError(t, err)
	assert.Equal(t, []int{1}, codes)
	assert.Empty(t, out)
}

func TestRaces_BadDateExits(t *testing.T) {
	_, codes, err := run(t, "races", "not-a-date")
	require.NoError(t, err)
	assert.Equal(t, []int{1}, codes)
}

func TestRaces_MissingAPIKeyExits(t *testing.T) {
	t.Setenv("AP_API_KEY", "")

	_, codes, err := run(t, "races", "2015-11-03")
	require.NoError(t, err)
	assert.Equal(t, []int{1}, codes)
}

func TestRaces_UnauthorizedExits(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"fault":{"faultstring":"Invalid ApiKey","detail":{"errorcode":"oauth.v2.InvalidApiKey"}}}`)
	}))
	defer server.Close()

	t.Setenv("AP_API_KEY", "bad-key")
	t.Setenv("AP_API_BASE_URL", server.URL)

	out, codes, err := run(t, "races", "2015-11-03")
	require.NoError(t, err)
	assert.Equal(t, []int{1}, codes)
	assert.Empty(t, out)
}

func TestElections_FromAPI(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "good-key", r.URL.Query().Get("apiKey"))
		fmt.Fprint(w, `{"elections":[{"electionDate":"2015-11-03","testFlag":false,"liveFlag":true}]}`)
	}))
	defer server.Close()

	t.Setenv("AP_API_KEY", "good-key")
	t.Setenv("AP_API_BASE_URL", server.URL)

	out, codes, err := run(t, "elections")
	require.NoError(t, err)
	assert.Empty(t, codes)
	assert.Equal(t, "electiondate,testflag,liveflag\n2015-11-03,false,true\n", out)
}

func TestNextElection(t *testing.T) {
	list := []core.ElectionInfo{
		{Date: "2016-11-08", Live: true},
		{Date: "2016-03-01", Live: true},
		{Date: "2016-02-01", Test: true},
		{Date: "2015-11-03", Live: true},
		{Date: "garbage", Live: true},
	}

	next, ok := nextElection(context.Background(), list, time.Date(2016, time.January, 15, 12, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, "2016-03-01", next.Date)

	next, ok = nextElection(context.Background(), list, time.Date(2016, time.March, 1, 23, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, "2016-03-01", next.Date)

	_, ok = nextElection(context.Background(), list, time.Date(2017, time.January, 1, 0, 0, 0, 0, time.UTC))
	assert.False(t, ok)
}
