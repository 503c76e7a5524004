// Package lyrics extracts lyric text from genius.com song pages. The genius
// API itself does not serve lyrics, so this scrapes the public HTML page.
package lyrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"
)

// ErrNoLyrics is returned when the page loads but contains no lyric text,
// e.g. for instrumentals or not-yet-transcribed songs.
var ErrNoLyrics = errors.New("no lyrics found on song page")

type Scraper struct {
	httpClient *http.Client
}

func NewScraper(timeout time.Duration) *Scraper {
	return &Scraper{
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Fetch downloads the song page and returns the plain lyric text with
// original line breaks.
func (s *Scraper) Fetch(ctx context.Context, songURL string) (string, error) {
	logger := log.WithFields(log.Fields{"module": "lyrics", "url": songURL})

	req, err := http.NewRequestWithContext(ctx, "GET", songURL, nil)
	if err != nil {
		return "", err
	}

	// Set realistic User-Agent to avoid blocks
	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	logger.Tracef("fetching song page")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return "", fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	text := extractLyrics(doc)
	if text == "" {
		logger.Debugf("song page had no lyric containers")
		return "", ErrNoLyrics
	}

	logger.Debugf("extracted %d bytes of lyrics", len(text))
	return text, nil
}

// extractLyrics pulls the text out of the lyric containers, keeping the
// <br>-separated lines intact.
func extractLyrics(doc *goquery.Document) string {
	var parts []string

	doc.Find("div[data-lyrics-container='true']").Each(func(i int, sel *goquery.Selection) {
		sel.Find("br").ReplaceWithHtml("\n")
		text := strings.TrimSpace(sel.Text())
		if text != "" {
			parts = append(parts, text)
		}
	})

	return strings.TrimSpace(strings.Join(parts, "\n"))
}
