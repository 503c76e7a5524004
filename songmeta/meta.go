// Package songmeta turns raw genius API responses into ranked, cleaned-up
// song metadata. It owns the search re-ranking as well as the album and
// translation lookups.
package songmeta

import (
	"context"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"

	"geniurl/fuzzy"
	"geniurl/genius"
	"geniurl/normalize"
)

const (
	defaultFuzzyThreshold = 0.65
	maxResults            = 10
	maxQueryParts         = 5
)

// LyricsFetcher extracts lyric text from a genius.com song page.
type LyricsFetcher interface {
	Fetch(ctx context.Context, songURL string) (string, error)
}

// Service runs lookups against a genius client. It holds no state across
// requests and is safe for concurrent use.
type Service struct {
	genius *genius.Client
	lyrics LyricsFetcher
}

// hitScore accumulates fuzzy scores for one hit across matcher passes.
type hitScore struct {
	sum    float64
	passes int
}

func New(client *genius.Client, lyrics LyricsFetcher) *Service {
	return &Service{genius: client, lyrics: lyrics}
}

// GetMeta searches genius and returns the hits re-ranked by fuzzy similarity
// against the query terms. A nil result with a nil error means the search
// produced no song hits at all.
func (s *Service) GetMeta(ctx context.Context, args GetMetaArgs) (*GetMetaResult, error) {
	logger := log.WithFields(log.Fields{"module": "songmeta", "function": "GetMeta"})

	query := args.Q
	if query == "" {
		query = args.Artist + " " + args.Song
	}

	rawHits, err := s.genius.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	hits := make([]SongMeta, 0, len(rawHits))
	for _, h := range rawHits {
		if h.Type != "song" {
			continue
		}
		hits = append(hits, reshapeHit(h.Result))
	}
	if len(hits) == 0 {
		logger.Debugf("no song hits for query %q", query)
		return nil, nil
	}

	threshold := resolveThreshold(args.Threshold)

	titles := make([]string, len(hits))
	artistNames := make([]string, len(hits))
	for i, h := range hits {
		titles[i] = h.Meta.Title
		if h.Meta.PrimaryArtist != nil && h.Meta.PrimaryArtist.Name != nil {
			artistNames[i] = *h.Meta.PrimaryArtist.Name
		}
	}

	// Scores are accumulated per hit index; absence from a pass adds
	// nothing, presence with a perfect score still registers the hit.
	// The pass count breaks ties so a hit matching every query term
	// outranks one that matched a single term equally well.
	scores := make(map[int]*hitScore)
	add := func(i int, score float64) {
		if scores[i] == nil {
			scores[i] = &hitScore{}
		}
		scores[i].sum += score
		scores[i].passes++
	}

	if args.Song != "" && args.Artist != "" {
		for _, m := range fuzzy.Rank(args.Song, titles, threshold) {
			add(m.Index, m.Score)
		}
		for _, m := range fuzzy.Rank(args.Artist, artistNames, threshold) {
			add(m.Index, m.Score)
		}
	} else {
		// Free-text queries shaped like "Artist - Title" are scored
		// part by part against both fields.
		parts := []string{query}
		if strings.Contains(query, " - ") {
			parts = strings.Split(query, " - ")
			if len(parts) > maxQueryParts {
				parts = parts[:maxQueryParts]
			}
		}

		for _, part := range parts {
			part = strings.TrimSpace(part)
			best := make(map[int]float64)
			for _, m := range fuzzy.Rank(part, titles, threshold) {
				best[m.Index] = m.Score
			}
			for _, m := range fuzzy.Rank(part, artistNames, threshold) {
				if prev, ok := best[m.Index]; !ok || m.Score < prev {
					best[m.Index] = m.Score
				}
			}
			for i, sc := range best {
				add(i, sc)
			}
		}
	}

	var ordered []SongMeta
	if len(scores) == 0 {
		// Nothing scored within the threshold; fall back to the
		// upstream's own ordering instead of returning nothing.
		logger.Debugf("no fuzzy matches within threshold %v, keeping upstream order", threshold)
		ordered = hits
	} else {
		indices := make([]int, 0, len(scores))
		for i := range scores {
			indices = append(indices, i)
		}
		sort.Slice(indices, func(a, b int) bool {
			sa, sb := scores[indices[a]], scores[indices[b]]
			if sa.sum != sb.sum {
				return sa.sum < sb.sum
			}
			if sa.passes != sb.passes {
				return sa.passes > sb.passes
			}
			return indices[a] < indices[b]
		})

		ordered = make([]SongMeta, len(indices))
		for pos, i := range indices {
			ordered[pos] = hits[i]
		}
	}

	if args.PreferLang != "" {
		ordered = partitionByLang(ordered, args.PreferLang, func(h SongMeta) string {
			if h.Language == nil {
				return ""
			}
			return *h.Language
		})
	}

	limit := resolveLimit(args.Limit)
	if len(ordered) > limit {
		ordered = ordered[:limit]
	}
	if len(ordered) == 0 {
		return nil, nil
	}

	logger.Tracef("ranked %d of %d song hits", len(ordered), len(hits))
	return &GetMetaResult{
		Top: ordered[0],
		All: ordered,
	}, nil
}

func reshapeHit(r genius.SongResult) SongMeta {
	meta := Meta{
		Title:           normalize.String(r.Title),
		FullTitle:       normalize.String(r.FullTitle),
		Artists:         normalize.String(r.ArtistNames),
		FeaturedArtists: []Artist{},
	}
	if r.PrimaryArtist != nil {
		meta.PrimaryArtist = reshapeArtist(*r.PrimaryArtist)
	}
	for _, a := range r.FeaturedArtists {
		meta.FeaturedArtists = append(meta.FeaturedArtists, *reshapeArtist(a))
	}
	if r.ReleaseDateComponents != nil {
		meta.ReleaseDate = &ReleaseDate{
			Year:  r.ReleaseDateComponents.Year,
			Month: r.ReleaseDateComponents.Month,
			Day:   r.ReleaseDateComponents.Day,
		}
	}

	return SongMeta{
		URL:      r.URL,
		Path:     r.Path,
		Language: r.Language,
		Meta:     meta,
		Resources: Resources{
			Thumbnail: r.SongArtImageThumbnailURL,
			Image:     r.SongArtImageURL,
		},
		LyricsState: r.LyricsState,
		ID:          r.ID,
	}
}

func reshapeArtist(a genius.ArtistObj) *Artist {
	artist := &Artist{
		URL:         a.URL,
		Image:       a.ImageURL,
		HeaderImage: a.HeaderImageURL,
	}
	if a.Name != nil {
		name := normalize.String(*a.Name)
		artist.Name = &name
	}
	return artist
}

func resolveThreshold(threshold *float64) float64 {
	if threshold == nil {
		return defaultFuzzyThreshold
	}
	t := *threshold
	if t != t { // NaN
		return defaultFuzzyThreshold
	}
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

func resolveLimit(limit int) int {
	if limit < 1 || limit > maxResults {
		return maxResults
	}
	return limit
}
