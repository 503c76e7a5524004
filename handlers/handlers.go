// Package handlers wires the HTTP endpoints to the songmeta service and
// shapes the response envelopes.
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"geniurl/genius"
	"geniurl/songmeta"
)

type Handler struct {
	meta *songmeta.Service
}

func New(meta *songmeta.Service) *Handler {
	return &Handler{meta: meta}
}

// Register mounts all API routes on the router.
func (h *Handler) Register(router gin.IRouter) {
	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello, World!")
	})
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "Pong!")
	})

	router.GET("/search", h.Search)
	router.GET("/search/top", h.SearchTop)
	router.GET("/album", func(c *gin.Context) {
		respondClientError(c, "No song ID provided")
	})
	router.GET("/album/:songId", h.Album)
	router.GET("/translations", func(c *gin.Context) {
		respondClientError(c, "No song ID provided")
	})
	router.GET("/translations/:songId", h.Translations)
	router.GET("/lyrics/:songId", h.Lyrics)
}

// APIInfoHeader identifies the service version on every response.
func APIInfoHeader(version string) gin.HandlerFunc {
	value := "geniurl v" + version
	return func(c *gin.Context) {
		c.Header("API-Info", value)
		c.Next()
	}
}

func (h *Handler) Search(c *gin.Context) {
	args, ok := parseSearchArgs(c)
	if !ok {
		return
	}

	result, err := h.meta.GetMeta(c.Request.Context(), args)
	if err != nil {
		respondServerError(c, "Encountered an internal server error")
		return
	}

	now := time.Now().UnixMilli()
	if result == nil {
		respond(c, http.StatusOK, searchData{
			Matches:   0,
			Top:       nil,
			All:       []songmeta.SongMeta{},
			Timestamp: now,
		})
		return
	}

	respond(c, http.StatusOK, searchData{
		Matches:   len(result.All),
		Top:       &result.Top,
		All:       result.All,
		Timestamp: now,
	})
}

func (h *Handler) SearchTop(c *gin.Context) {
	args, ok := parseSearchArgs(c)
	if !ok {
		return
	}
	args.Limit = 1

	result, err := h.meta.GetMeta(c.Request.Context(), args)
	if err != nil {
		respondServerError(c, "Encountered an internal server error")
		return
	}

	if result == nil {
		respondClientError(c, "Found no results matching your search query")
		return
	}

	respond(c, http.StatusOK, searchTopData{
		Matches:   1,
		SongMeta:  result.Top,
		Timestamp: time.Now().UnixMilli(),
	})
}

func (h *Handler) Album(c *gin.Context) {
	songID, ok := parseSongID(c)
	if !ok {
		return
	}

	album, err := h.meta.GetAlbum(c.Request.Context(), songID)
	if err != nil {
		switch {
		case errors.Is(err, songmeta.ErrNoAlbum):
			respondClientError(c, "Couldn't find an album for this song")
		case errors.Is(err, genius.ErrSongNotFound):
			respondClientError(c, "Couldn't find a song with the provided ID")
		default:
			respondServerError(c, "Encountered an internal server error")
		}
		return
	}

	respond(c, http.StatusOK, albumData{
		Matches:   1,
		Album:     album,
		Timestamp: time.Now().UnixMilli(),
	})
}

func (h *Handler) Translations(c *gin.Context) {
	songID, ok := parseSongID(c)
	if !ok {
		return
	}

	preferLang, ok := parsePreferLang(c)
	if !ok {
		return
	}

	translations, err := h.meta.GetTranslations(c.Request.Context(), songID, preferLang)
	if err != nil {
		if errors.Is(err, genius.ErrSongNotFound) {
			respondClientError(c, "Couldn't find a song with the provided ID")
		} else {
			respondServerError(c, "Encountered an internal server error")
		}
		return
	}

	// zero translations is a successful response, not an error
	respond(c, http.StatusOK, translationsData{
		Matches:      len(translations),
		Translations: translations,
		Timestamp:    time.Now().UnixMilli(),
	})
}

func (h *Handler) Lyrics(c *gin.Context) {
	songID, ok := parseSongID(c)
	if !ok {
		return
	}

	result, err := h.meta.GetLyrics(c.Request.Context(), songID)
	if err != nil {
		if errors.Is(err, genius.ErrSongNotFound) {
			respondClientError(c, "Couldn't find a song with the provided ID")
		} else {
			log.Warnf("lyrics lookup for song %d failed: %v", songID, err)
			respondServerError(c, "Couldn't fetch lyrics for this song")
		}
		return
	}

	respond(c, http.StatusOK, lyricsData{
		Matches:    1,
		SongLyrics: *result,
		Timestamp:  time.Now().UnixMilli(),
	})
}

// parseSearchArgs validates the search parameters and responds with a
// client error itself when they are unusable.
func parseSearchArgs(c *gin.Context) (songmeta.GetMetaArgs, bool) {
	q := c.Query("q")
	artist := c.Query("artist")
	song := c.Query("song")

	if q == "" && (artist == "" || song == "") {
		respondClientError(c, "No search params (?q or ?song and ?artist) provided or they are invalid")
		return songmeta.GetMetaArgs{}, false
	}

	args := songmeta.GetMetaArgs{
		Q:      q,
		Artist: artist,
		Song:   song,
	}

	// non-numeric threshold falls back to the default
	if raw := c.Query("threshold"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			args.Threshold = &v
		}
	}

	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			args.Limit = v
		}
	}

	preferLang, ok := parsePreferLang(c)
	if !ok {
		return songmeta.GetMetaArgs{}, false
	}
	args.PreferLang = preferLang

	return args, true
}

func parsePreferLang(c *gin.Context) (string, bool) {
	raw := c.Query("preferLang")
	if raw == "" {
		return "", true
	}
	if !songmeta.ValidLangCode(raw) {
		respondClientError(c, "Provided preferLang is not a valid ISO 639-1 language code")
		return "", false
	}
	return strings.ToLower(raw), true
}

func parseSongID(c *gin.Context) (int, bool) {
	raw := c.Param("songId")
	songID, err := strconv.Atoi(raw)
	if err != nil || songID < 1 {
		respondClientError(c, "Provided song ID is invalid")
		return 0, false
	}
	return songID, true
}
