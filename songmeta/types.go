package songmeta

// Artist is a genius.com artist with every field nullable, matching what the
// upstream API actually delivers.
type Artist struct {
	Name        *string `json:"name" xml:"name"`
	URL         *string `json:"url" xml:"url"`
	Image       *string `json:"image" xml:"image"`
	HeaderImage *string `json:"headerImage" xml:"headerImage"`
}

type ReleaseDate struct {
	Year  *int `json:"year" xml:"year"`
	Month *int `json:"month" xml:"month"`
	Day   *int `json:"day" xml:"day"`
}

// Meta carries the normalized text fields of a song hit.
type Meta struct {
	Title           string       `json:"title" xml:"title"`
	FullTitle       string       `json:"fullTitle" xml:"fullTitle"`
	Artists         string       `json:"artists" xml:"artists"`
	PrimaryArtist   *Artist      `json:"primaryArtist" xml:"primaryArtist"`
	FeaturedArtists []Artist     `json:"featuredArtists" xml:"featuredArtists>artist"`
	ReleaseDate     *ReleaseDate `json:"releaseDate" xml:"releaseDate"`
}

type Resources struct {
	Thumbnail *string `json:"thumbnail" xml:"thumbnail"`
	Image     *string `json:"image" xml:"image"`
}

// SongMeta is one song-type search hit with its text fields normalized.
type SongMeta struct {
	URL         string    `json:"url" xml:"url"`
	Path        string    `json:"path" xml:"path"`
	Language    *string   `json:"language" xml:"language"`
	Meta        Meta      `json:"meta" xml:"meta"`
	Resources   Resources `json:"resources" xml:"resources"`
	LyricsState string    `json:"lyricsState" xml:"lyricsState"`
	ID          int       `json:"id" xml:"id"`
}

// GetMetaArgs are the search parameters. Either Q or both Artist and Song
// must be set; the HTTP layer validates this before calling.
type GetMetaArgs struct {
	Q      string
	Artist string
	Song   string

	// Threshold is the maximum fuzzy distance considered a match.
	// nil means the default of 0.65; values are clamped into [0, 1].
	Threshold *float64

	// PreferLang moves hits of this language to the front without
	// changing their relative order. Lower-case ISO 639-1 code.
	PreferLang string

	// Limit caps the number of returned hits, defaulting to and capped
	// at 10. Values below 1 mean the default.
	Limit int
}

// GetMetaResult is the ranked search outcome.
type GetMetaResult struct {
	Top SongMeta   `json:"top" xml:"top"`
	All []SongMeta `json:"all" xml:"all>result"`
}

// Album is the reshaped album object of a song.
type Album struct {
	Name      string  `json:"name" xml:"name"`
	FullTitle string  `json:"fullTitle" xml:"fullTitle"`
	URL       string  `json:"url" xml:"url"`
	CoverArt  *string `json:"coverArt" xml:"coverArt"`
	ID        int     `json:"id" xml:"id"`
	Artist    Artist  `json:"artist" xml:"artist"`
}

// SongLyrics is the scraped lyric text of a song plus basic identity.
type SongLyrics struct {
	ID     int    `json:"id" xml:"id"`
	Title  string `json:"title" xml:"title"`
	Path   string `json:"path" xml:"path"`
	URL    string `json:"url" xml:"url"`
	Lyrics string `json:"lyrics" xml:"lyrics"`
}

// SongTranslation is one lyric translation stub of a song.
type SongTranslation struct {
	Language string `json:"language" xml:"language"`
	ID       int    `json:"id" xml:"id"`
	Path     string `json:"path" xml:"path"`
	Title    string `json:"title" xml:"title"`
	URL      string `json:"url" xml:"url"`
}
