package songmeta

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"

	"geniurl/normalize"
)

// ErrNoAlbum is returned when the song exists but has no associated album.
var ErrNoAlbum = errors.New("song has no album")

// GetAlbum returns the album a song belongs to.
func (s *Service) GetAlbum(ctx context.Context, songID int) (*Album, error) {
	song, err := s.genius.GetSong(ctx, songID)
	if err != nil {
		return nil, err
	}

	if song.Album == nil || song.Album.ID == 0 {
		log.Debugf("song %d has no album", songID)
		return nil, ErrNoAlbum
	}

	a := song.Album
	return &Album{
		Name:      a.Name,
		FullTitle: a.FullTitle,
		URL:       a.URL,
		CoverArt:  a.CoverArtURL,
		ID:        a.ID,
		Artist: Artist{
			Name:        a.Artist.Name,
			URL:         a.Artist.URL,
			Image:       a.Artist.ImageURL,
			HeaderImage: a.Artist.HeaderImageURL,
		},
	}, nil
}

// GetTranslations returns the lyric translation stubs of a song. A song
// without translations yields an empty, non-nil slice; a song the API does
// not know yields genius.ErrSongNotFound.
func (s *Service) GetTranslations(ctx context.Context, songID int, preferLang string) ([]SongTranslation, error) {
	song, err := s.genius.GetSong(ctx, songID)
	if err != nil {
		return nil, err
	}

	translations := make([]SongTranslation, 0, len(song.TranslationSongs))
	for _, t := range song.TranslationSongs {
		translations = append(translations, SongTranslation{
			Language: t.Language,
			ID:       t.ID,
			Path:     t.Path,
			Title:    t.Title,
			URL:      t.URL,
		})
	}

	if preferLang != "" {
		translations = partitionByLang(translations, preferLang, func(t SongTranslation) string {
			return t.Language
		})
	}

	return translations, nil
}

// GetLyrics looks the song up and scrapes the lyric text from its page.
func (s *Service) GetLyrics(ctx context.Context, songID int) (*SongLyrics, error) {
	song, err := s.genius.GetSong(ctx, songID)
	if err != nil {
		return nil, err
	}

	text, err := s.lyrics.Fetch(ctx, song.URL)
	if err != nil {
		return nil, err
	}

	return &SongLyrics{
		ID:     song.ID,
		Title:  normalize.String(song.Title),
		Path:   song.Path,
		URL:    song.URL,
		Lyrics: text,
	}, nil
}
