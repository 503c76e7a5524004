package genius

// Wire shapes of the genius.com API. Only the fields the service reads are
// declared; everything else in the payload is ignored on decode.

type searchResponse struct {
	Response *struct {
		Hits []SearchHit `json:"hits"`
	} `json:"response"`
}

// SearchHit is one result returned by the /search endpoint. Hits can be of
// type "song", "album" or "artist".
type SearchHit struct {
	Type   string     `json:"type"`
	Result SongResult `json:"result"`
}

// SongResult is the inner result object of a search hit.
type SongResult struct {
	ID                       int          `json:"id"`
	URL                      string       `json:"url"`
	Path                     string       `json:"path"`
	Title                    string       `json:"title"`
	FullTitle                string       `json:"full_title"`
	ArtistNames              string       `json:"artist_names"`
	LyricsState              string       `json:"lyrics_state"`
	Language                 *string      `json:"language"`
	PrimaryArtist            *ArtistObj   `json:"primary_artist"`
	FeaturedArtists          []ArtistObj  `json:"featured_artists"`
	ReleaseDateComponents    *ReleaseDate `json:"release_date_components"`
	SongArtImageThumbnailURL *string      `json:"song_art_image_thumbnail_url"`
	SongArtImageURL          *string      `json:"song_art_image_url"`
}

type ArtistObj struct {
	Name           *string `json:"name"`
	URL            *string `json:"url"`
	ImageURL       *string `json:"image_url"`
	HeaderImageURL *string `json:"header_image_url"`
}

type ReleaseDate struct {
	Year  *int `json:"year"`
	Month *int `json:"month"`
	Day   *int `json:"day"`
}

type songResponse struct {
	Response *struct {
		Song *Song `json:"song"`
	} `json:"response"`
}

// Song is the object returned by the /songs/:id endpoint.
type Song struct {
	ID               int               `json:"id"`
	URL              string            `json:"url"`
	Path             string            `json:"path"`
	Title            string            `json:"title"`
	Album            *AlbumObj         `json:"album"`
	TranslationSongs []TranslationSong `json:"translation_songs"`
}

type AlbumObj struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	FullTitle   string    `json:"full_title"`
	URL         string    `json:"url"`
	CoverArtURL *string   `json:"cover_art_url"`
	Artist      ArtistObj `json:"artist"`
}

type TranslationSong struct {
	ID       int    `json:"id"`
	Language string `json:"language"`
	Path     string `json:"path"`
	Title    string `json:"title"`
	URL      string `json:"url"`
}
