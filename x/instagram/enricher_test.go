package instagram

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/totegamma/campsite/core"
)

const openGraphPage = `<html><head>
<meta property="og:title" content="camp on Instagram">
<meta property="og:description" content="12 likes, 3 comments - camp on August 3, 2026: &quot;day one at the lake&quot;">
</head><body></body></html>`

const jsonLDPage = `<html><head>
<script type="application/ld+json">{"@context":"https://schema.org","@graph":[{"@type":"ImageObject","articleBody":"campfire night"}]}</script>
</head><body></body></html>`

const sharedDataPage = `<html><head></head><body>
<script type="text/javascript">window._sharedData = {"entry_data":{"PostPage":[{"graphql":{"shortcode_media":{"edge_media_to_caption":{"edges":[{"node":{"text":"morning worship"}}]}}}}]}};</script>
</body></html>`

func newTestServer(t *testing.T, oembedStatus int, page string) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/oembed", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "token", r.URL.Query().Get("access_token"))
		if oembedStatus != http.StatusOK {
			w.WriteHeader(oembedStatus)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"title": "from oembed", "author_name": "camp"}`)
	})
	mux.HandleFunc("/p/abc/", func(w http.ResponseWriter, r *http.Request) {
		if page == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, page)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newTestEnricher(server *httptest.Server, token string) *enricher {
	e := NewEnricher(core.Config{InstagramToken: token}).(*enricher)
	e.oembedEndpoint = server.URL + "/oembed"
	return e
}

func TestEnrichOEmbed(t *testing.T) {
	server := newTestServer(t, http.StatusOK, openGraphPage)
	e := newTestEnricher(server, "token")

	result := e.Enrich(context.Background(), server.URL+"/p/abc/")
	if assert.NotNil(t, result.Description) {
		assert.Equal(t, "from oembed", *result.Description)
	}
	assert.Equal(t, "oembed", result.Source)
}

func TestEnrichFallsBackToOpenGraph(t *testing.T) {
	server := newTestServer(t, http.StatusBadRequest, openGraphPage)
	e := newTestEnricher(server, "token")

	result := e.Enrich(context.Background(), server.URL+"/p/abc/")
	if assert.NotNil(t, result.Description) {
		assert.Equal(t, "day one at the lake", *result.Description)
	}
	assert.Equal(t, "og:description", result.Source)
}

func TestEnrichJSONLD(t *testing.T) {
	server := newTestServer(t, http.StatusOK, jsonLDPage)
	e := newTestEnricher(server, "")

	result := e.Enrich(context.Background(), server.URL+"/p/abc/")
	if assert.NotNil(t, result.Description) {
		assert.Equal(t, "campfire night", *result.Description)
	}
	assert.Equal(t, "json-ld", result.Source)
}

func TestEnrichSharedData(t *testing.T) {
	server := newTestServer(t, http.StatusOK, sharedDataPage)
	e := newTestEnricher(server, "")

	result := e.Enrich(context.Background(), server.URL+"/p/abc/")
	if assert.NotNil(t, result.Description) {
		assert.Equal(t, "morning worship", *result.Description)
	}
	assert.Equal(t, "shared-data", result.Source)
}

func TestEnrichNothingFound(t *testing.T) {
	server := newTestServer(t, http.StatusInternalServerError, "")
	e := newTestEnricher(server, "token")

	result := e.Enrich(context.Background(), server.URL+"/p/abc/")
	assert.Nil(t, result.Description)
	assert.Equal(t, "", result.Source)
}

func TestEnrichIsolatesPanics(t *testing.T) {
	e := &enricher{
		extractors: []extractor{
			{"broken", func(context.Context, string, *page) (string, error) {
				panic("unexpected markup")
			}},
			{"working", func(context.Context, string, *page) (string, error) {
				return "  still here ", nil
			}},
		},
	}

	result := e.Enrich(context.Background(), "https://www.instagram.com/p/abc/")
	if assert.NotNil(t, result.Description) {
		assert.Equal(t, "still here", *result.Description)
	}
	assert.Equal(t, "working", result.Source)
}

func TestCaptionOf(t *testing.T) {
	assert.Equal(t, "hello", captionOf(`5 likes, 0 comments - camp on May 1, 2026: "hello". `))
	assert.Equal(t, "plain text", captionOf("plain text"))
}
