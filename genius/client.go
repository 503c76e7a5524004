// Package genius is a thin client for the genius.com public API.
package genius

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	sentry "github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
)

const defaultBaseURL = "https://api.genius.com"

// ErrUpstream covers every way the genius API can fail to produce a usable
// payload: network errors, timeouts, non-2xx statuses and malformed bodies.
// Callers do not branch on the failure subtype.
var ErrUpstream = errors.New("genius API request failed")

// ErrSongNotFound is returned when the API reports no song for the given ID.
var ErrSongNotFound = errors.New("song not found")

// Client performs requests against the genius API. Construct it once at
// startup and share it; it holds no per-request state.
type Client struct {
	// BaseURL can be overridden in tests
	BaseURL string

	httpClient  *http.Client
	accessToken string
}

func New(accessToken string, timeout time.Duration) *Client {
	return &Client{
		BaseURL:     defaultBaseURL,
		accessToken: accessToken,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Search runs a search query and returns the raw hits verbatim.
func (c *Client) Search(ctx context.Context, query string) ([]SearchHit, error) {
	logger := log.WithFields(log.Fields{"module": "genius", "function": "Search"})

	span := sentry.StartSpan(ctx, "genius.search")
	span.Description = "Search genius API"
	span.SetTag("query", query)
	defer span.Finish()

	reqURL := fmt.Sprintf("%s/search?q=%s", c.BaseURL, url.QueryEscape(query))

	var decoded searchResponse
	if err := c.get(ctx, reqURL, &decoded); err != nil {
		if errors.Is(err, ErrSongNotFound) {
			// a 404 from /search is just another upstream failure
			err = fmt.Errorf("%w: HTTP 404", ErrUpstream)
		}
		logger.Errorf("search request failed: %v", err)
		sentry.CaptureException(err)
		span.Status = sentry.SpanStatusInternalError
		return nil, err
	}

	if decoded.Response == nil || decoded.Response.Hits == nil {
		err := fmt.Errorf("%w: response is missing hits", ErrUpstream)
		logger.Errorf("malformed search payload: %v", err)
		sentry.CaptureException(err)
		span.Status = sentry.SpanStatusInternalError
		return nil, err
	}

	span.Status = sentry.SpanStatusOK
	span.SetData("hits_count", len(decoded.Response.Hits))
	logger.Tracef("found %d hits", len(decoded.Response.Hits))
	return decoded.Response.Hits, nil
}

// GetSong fetches a single song by its numeric ID.
func (c *Client) GetSong(ctx context.Context, songID int) (*Song, error) {
	logger := log.WithFields(log.Fields{"module": "genius", "song_id": songID, "function": "GetSong"})

	span := sentry.StartSpan(ctx, "genius.get_song")
	span.Description = "Get song from genius API"
	span.SetTag("song_id", fmt.Sprint(songID))
	defer span.Finish()

	reqURL := fmt.Sprintf("%s/songs/%d", c.BaseURL, songID)

	var decoded songResponse
	if err := c.get(ctx, reqURL, &decoded); err != nil {
		if errors.Is(err, ErrSongNotFound) {
			logger.Debugf("song %d not found", songID)
			span.Status = sentry.SpanStatusNotFound
			return nil, err
		}
		logger.Errorf("song request failed: %v", err)
		sentry.CaptureException(err)
		span.Status = sentry.SpanStatusInternalError
		return nil, err
	}

	if decoded.Response == nil || decoded.Response.Song == nil {
		err := fmt.Errorf("%w: response is missing song", ErrUpstream)
		logger.Errorf("malformed song payload: %v", err)
		sentry.CaptureException(err)
		span.Status = sentry.SpanStatusInternalError
		return nil, err
	}

	span.Status = sentry.SpanStatusOK
	return decoded.Response.Song, nil
}

func (c *Client) get(ctx context.Context, reqURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrSongNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: HTTP %d", ErrUpstream, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return nil
}
