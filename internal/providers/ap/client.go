package ap

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/sandevgo/elex/internal/config"
	"github.com/sandevgo/elex/internal/core"
	"github.com/sandevgo/elex/pkg/dates"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Options shape an election request.
type Options struct {
	Test         bool
	NationalOnly bool
	RaceIDs      []string
}

func (o Options) values() url.Values {
	v := url.Values{}
	v.Set("format", "json")
	v.Set("level", "ru")
	if o.Test {
		v.Set("test", "true")
	}
	if o.NationalOnly {
		v.Set("national", "true")
	}
	if len(o.RaceIDs) > 0 {
		v.Set("raceID", strings.Join(o.RaceIDs, ","))
	}
	return v
}

// Filter applies NationalOnly and RaceIDs to races loaded from a local file.
func (o Options) Filter(races []core.Race) []core.Race {
	if !o.NationalOnly && len(o.RaceIDs) == 0 {
		return races
	}

	ids := make(map[string]struct{}, len(o.RaceIDs))
	for _, id := range o.RaceIDs {
		ids[id] = struct{}{}
	}

	out := make([]core.Race, 0, len(races))
	for _, r := range races {
		if o.NationalOnly && !r.National {
			continue
		}
		if len(ids) > 0 {
			if _, ok := ids[r.ID]; !ok {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

type Client struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

func NewClient(cfg *config.APConfig) *Client {
	return &Client{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
	}
}

// Election fetches races and reporting-unit results for the election held on date.
func (c *Client) Election(ctx context.Context, date time.Time, opts Options) (*core.Election, error) {
	data, err := c.get(ctx, "/elections/"+dates.Format(date), opts.values())
	if err != nil {
		return nil, err
	}

	var e core.Election
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("decode election: %w", err)
	}
	return &e, nil
}

// Elections lists the election dates known to the API.
func (c *Client) Elections(ctx context.Context) ([]core.ElectionInfo, error) {
	v := url.Values{}
	v.Set("format", "json")

	data, err := c.get(ctx, "/elections/", v)
	if err != nil {
		return nil, err
	}

	var result struct {
		Elections []core.ElectionInfo `json:"elections"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("decode elections: %w", err)
	}
	return result.Elections, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	public := c.baseURL + path + "?" + params.Encode()

	params.Set("apiKey", c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", core.ElexUserAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			Reason:     reasonPhrase(resp),
			URL:        public,
			Body:       data,
		}
	}
	return data, nil
}

func reasonPhrase(resp *http.Response) string {
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if reason == "" {
		return http.StatusText(resp.StatusCode)
	}
	return reason
}
