package handlers

import (
	"encoding/xml"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"geniurl/songmeta"
)

// Response envelopes. Every endpoint answers with
// {error, matches, ...payload, timestamp}; XML responses use a <data> root.

type errorData struct {
	XMLName   xml.Name `json:"-" xml:"data"`
	Error     bool     `json:"error" xml:"error"`
	Matches   *int     `json:"matches" xml:"matches"`
	Message   string   `json:"message" xml:"message"`
	Timestamp int64    `json:"timestamp" xml:"timestamp"`
}

type searchData struct {
	XMLName   xml.Name            `json:"-" xml:"data"`
	Error     bool                `json:"error" xml:"error"`
	Matches   int                 `json:"matches" xml:"matches"`
	Top       *songmeta.SongMeta  `json:"top" xml:"top"`
	All       []songmeta.SongMeta `json:"all" xml:"all>result"`
	Timestamp int64               `json:"timestamp" xml:"timestamp"`
}

type searchTopData struct {
	XMLName xml.Name `json:"-" xml:"data"`
	Error   bool     `json:"error" xml:"error"`
	Matches int      `json:"matches" xml:"matches"`
	songmeta.SongMeta
	Timestamp int64 `json:"timestamp" xml:"timestamp"`
}

type albumData struct {
	XMLName   xml.Name        `json:"-" xml:"data"`
	Error     bool            `json:"error" xml:"error"`
	Matches   int             `json:"matches" xml:"matches"`
	Album     *songmeta.Album `json:"album" xml:"album"`
	Timestamp int64           `json:"timestamp" xml:"timestamp"`
}

type translationsData struct {
	XMLName      xml.Name                   `json:"-" xml:"data"`
	Error        bool                       `json:"error" xml:"error"`
	Matches      int                        `json:"matches" xml:"matches"`
	Translations []songmeta.SongTranslation `json:"translations" xml:"translations>translation"`
	Timestamp    int64                      `json:"timestamp" xml:"timestamp"`
}

type lyricsData struct {
	XMLName xml.Name `json:"-" xml:"data"`
	Error   bool     `json:"error" xml:"error"`
	Matches int      `json:"matches" xml:"matches"`
	songmeta.SongLyrics
	Timestamp int64 `json:"timestamp" xml:"timestamp"`
}

// respond serializes the payload as JSON or XML depending on the request's
// format parameter. Anything other than xml falls back to json.
func respond(c *gin.Context, status int, payload any) {
	if strings.ToLower(c.Query("format")) == "xml" {
		c.XML(status, payload)
		return
	}
	c.JSON(status, payload)
}

func respondClientError(c *gin.Context, message string) {
	respondErrorStatus(c, http.StatusBadRequest, message)
}

func respondServerError(c *gin.Context, message string) {
	respondErrorStatus(c, http.StatusInternalServerError, message)
}

func respondErrorStatus(c *gin.Context, status int, message string) {
	respond(c, status, errorData{
		Error:     true,
		Matches:   nil,
		Message:   message,
		Timestamp: time.Now().UnixMilli(),
	})
}
