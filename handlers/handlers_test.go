package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"geniurl/genius"
	"geniurl/songmeta"
)

const searchHitsBody = `{"response":{"hits":[
	{"type":"song","result":{"id":1,"title":"LIGHT AGAIN!","full_title":"LIGHT AGAIN! by Lil Nas X","artist_names":"Lil Nas X","url":"https://genius.com/1","path":"/1","lyrics_state":"complete","language":"en","primary_artist":{"name":"Lil Nas X"}}},
	{"type":"song","result":{"id":2,"title":"HOLIDAY","full_title":"HOLIDAY by Lil Nas X","artist_names":"Lil Nas X","url":"https://genius.com/2","path":"/2","lyrics_state":"complete","language":"en","primary_artist":{"name":"Lil Nas X"}}}
]}}`

func newTestRouter(t *testing.T, upstream http.HandlerFunc) *gin.Engine {
	t.Helper()
	server := httptest.NewServer(upstream)
	t.Cleanup(server.Close)

	client := genius.New("test-token", 5*time.Second)
	client.BaseURL = server.URL

	gin.SetMode(gin.TestMode)
	router := gin.New()
	New(songmeta.New(client, nil)).Register(router)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", path, nil)
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v\n%s", err, w.Body.String())
	}
	return body
}

func TestSearchMissingParams(t *testing.T) {
	router := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("upstream must not be called for invalid params")
	})

	paths := []string{"/search", "/search?artist=Lil+Nas+X", "/search?song=HOLIDAY"}
	for _, path := range paths {
		w := doRequest(t, router, path)
		if w.Code != http.StatusBadRequest {
			t.Errorf("GET %s = %d; want 400", path, w.Code)
		}
		body := decodeBody(t, w)
		if body["error"] != true {
			t.Errorf("GET %s error field = %v; want true", path, body["error"])
		}
	}
}

func TestSearchSuccess(t *testing.T) {
	router := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(searchHitsBody))
	})

	w := doRequest(t, router, "/search?q=Lil+Nas+X")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200\n%s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	if body["error"] != false {
		t.Errorf("error = %v; want false", body["error"])
	}
	if body["matches"] != float64(2) {
		t.Errorf("matches = %v; want 2", body["matches"])
	}
	if body["top"] == nil {
		t.Error("top missing from response")
	}
	all, ok := body["all"].([]any)
	if !ok || len(all) != 2 {
		t.Errorf("all = %v; want 2 entries", body["all"])
	}
	if _, hasUUID := body["top"].(map[string]any)["uuid"]; hasUUID {
		t.Error("internal ranking fields must not leak into the response")
	}
}

func TestSearchNoResults(t *testing.T) {
	router := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response":{"hits":[]}}`))
	})

	w := doRequest(t, router, "/search?q=e5fc1c88a0abf26ad33a4b4bb81cccf8")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}
	body := decodeBody(t, w)
	if body["matches"] != float64(0) {
		t.Errorf("matches = %v; want 0", body["matches"])
	}
	if body["top"] != nil {
		t.Errorf("top = %v; want null", body["top"])
	}
}

func TestSearchUpstreamFailure(t *testing.T) {
	router := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	w := doRequest(t, router, "/search?q=anything")
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d; want 500", w.Code)
	}
}

func TestSearchXMLFormat(t *testing.T) {
	router := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(searchHitsBody))
	})

	w := doRequest(t, router, "/search?q=Lil+Nas+X&format=xml")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "application/xml") {
		t.Errorf("Content-Type = %q; want application/xml", ct)
	}
	if !strings.Contains(w.Body.String(), "<data>") {
		t.Errorf("XML body missing <data> root:\n%s", w.Body.String())
	}
}

func TestSearchInvalidPreferLang(t *testing.T) {
	router := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("upstream must not be called for invalid preferLang")
	})

	w := doRequest(t, router, "/search?q=test&preferLang=zz")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want 400", w.Code)
	}
}

func TestSearchTop(t *testing.T) {
	router := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(searchHitsBody))
	})

	w := doRequest(t, router, "/search/top?artist=Lil+Nas+X&song=LIGHT+AGAIN%21")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200\n%s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["matches"] != float64(1) {
		t.Errorf("matches = %v; want 1", body["matches"])
	}
	meta, ok := body["meta"].(map[string]any)
	if !ok {
		t.Fatalf("top result fields not inlined: %v", body)
	}
	if meta["title"] != "LIGHT AGAIN!" {
		t.Errorf("title = %v; want LIGHT AGAIN!", meta["title"])
	}
}

func TestAlbumInvalidID(t *testing.T) {
	router := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("upstream must not be called for an invalid song ID")
	})

	for _, path := range []string{"/album/abc", "/album/-5", "/album/0"} {
		w := doRequest(t, router, path)
		if w.Code != http.StatusBadRequest {
			t.Errorf("GET %s = %d; want 400", path, w.Code)
		}
	}
}

func TestAlbumMissingID(t *testing.T) {
	router := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {})
	w := doRequest(t, router, "/album")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want 400", w.Code)
	}
}

func TestAlbumNoAlbumIsClientError(t *testing.T) {
	router := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response":{"song":{"id":43,"title":"Bare","url":"https://genius.com/bare","path":"/bare"}}}`))
	})

	w := doRequest(t, router, "/album/43")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want 400 (client error, not server error)", w.Code)
	}
}

func TestTranslationsEmptyVersusNotFound(t *testing.T) {
	empty := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response":{"song":{"id":43,"title":"Bare","url":"https://genius.com/bare","path":"/bare","translation_songs":[]}}}`))
	})
	w := doRequest(t, empty, "/translations/43")
	if w.Code != http.StatusOK {
		t.Errorf("zero translations: status = %d; want 200", w.Code)
	}
	body := decodeBody(t, w)
	if body["matches"] != float64(0) {
		t.Errorf("matches = %v; want 0", body["matches"])
	}

	missing := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	w = doRequest(t, missing, "/translations/999999999")
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown song: status = %d; want 400", w.Code)
	}
}

func TestHealthAndPing(t *testing.T) {
	router := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {})
	for _, path := range []string{"/health", "/ping"} {
		w := doRequest(t, router, path)
		if w.Code != http.StatusOK {
			t.Errorf("GET %s = %d; want 200", path, w.Code)
		}
	}
}

func TestAPIInfoHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(APIInfoHeader("1.0.0"))
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "Pong!") })

	w := doRequest(t, router, "/ping")
	if got := w.Header().Get("API-Info"); got != "geniurl v1.0.0" {
		t.Errorf("API-Info = %q; want %q", got, "geniurl v1.0.0")
	}
}
