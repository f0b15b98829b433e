package instagram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/net/html"

	"github.com/totegamma/campsite/core"
)

const (
	defaultOEmbedEndpoint = "https://graph.facebook.com/v18.0/instagram_oembed"
	userAgent             = "Mozilla/5.0 (compatible; campsite/1.0; +https://github.com/totegamma/campsite)"
)

// Enrichment is the outcome of looking up a post description
type Enrichment struct {
	Description *string
	Source      string
}

// Enricher looks up the caption of an instagram post
type Enricher interface {
	Enrich(ctx context.Context, postURL string) Enrichment
}

type extractor struct {
	name string
	run  func(ctx context.Context, postURL string, page *page) (string, error)
}

type enricher struct {
	client         *resty.Client
	token          string
	oembedEndpoint string
	extractors     []extractor
}

// NewEnricher creates an enricher trying oEmbed first and the post page after
func NewEnricher(config core.Config) Enricher {
	client := resty.New().
		SetTransport(otelhttp.NewTransport(http.DefaultTransport)).
		SetTimeout(10*time.Second).
		SetRetryCount(1).
		SetHeader("User-Agent", userAgent)

	e := &enricher{
		client:         client,
		token:          config.InstagramToken,
		oembedEndpoint: defaultOEmbedEndpoint,
	}
	e.extractors = []extractor{
		{"oembed", e.fromOEmbed},
		{"og:description", fromOpenGraph},
		{"json-ld", fromJSONLD},
		{"shared-data", fromSharedData},
	}
	return e
}

// Enrich runs the extractors in order and returns the first non empty description.
// a failing extractor never stops the ones after it.
func (e *enricher) Enrich(ctx context.Context, postURL string) Enrichment {
	ctx, span := tracer.Start(ctx, "Instagram.Enricher.Enrich")
	defer span.End()

	p := &page{client: e.client, url: postURL}

	for _, ex := range e.extractors {
		description, err := safeRun(ctx, ex, postURL, p)
		if err != nil {
			slog.DebugContext(
				ctx, "extractor failed",
				slog.String("extractor", ex.name),
				slog.String("error", err.Error()),
				slog.String("module", "instagram"),
			)
			continue
		}
		description = strings.TrimSpace(description)
		if description != "" {
			return Enrichment{Description: &description, Source: ex.name}
		}
	}

	return Enrichment{}
}

func safeRun(ctx context.Context, ex extractor, postURL string, p *page) (description string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return ex.run(ctx, postURL, p)
}

type oembedResponse struct {
	Title string `json:"title"`
}

func (e *enricher) fromOEmbed(ctx context.Context, postURL string, _ *page) (string, error) {
	if e.token == "" {
		return "", nil
	}

	var result oembedResponse
	resp, err := e.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"url":          postURL,
			"access_token": e.token,
			"omitscript":   "true",
		}).
		SetResult(&result).
		Get(e.oembedEndpoint)
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("oembed returned %d", resp.StatusCode())
	}

	return result.Title, nil
}

// page fetches and parses the post html at most once
type page struct {
	client *resty.Client
	url    string

	once sync.Once
	doc  *html.Node
	err  error
}

func (p *page) document(ctx context.Context) (*html.Node, error) {
	p.once.Do(func() {
		resp, err := p.client.R().
			SetContext(ctx).
			SetHeader("Accept", "text/html").
			Get(p.url)
		if err != nil {
			p.err = err
			return
		}
		if resp.IsError() {
			p.err = fmt.Errorf("page returned %d", resp.StatusCode())
			return
		}
		p.doc, p.err = html.Parse(bytes.NewReader(resp.Body()))
	})
	return p.doc, p.err
}

func fromOpenGraph(ctx context.Context, _ string, p *page) (string, error) {
	doc, err := p.document(ctx)
	if err != nil {
		return "", err
	}

	var content string
	walk(doc, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == "meta" && attr(n, "property") == "og:description" {
			content = attr(n, "content")
			return false
		}
		return true
	})

	return captionOf(content), nil
}

// captionOf strips the `N likes, M comments - user on date: "..."` wrapper
func captionOf(description string) string {
	start := strings.Index(description, `: "`)
	end := strings.LastIndex(description, `"`)
	if start < 0 || end <= start+3 {
		return description
	}
	return description[start+3 : end]
}

func fromJSONLD(ctx context.Context, _ string, p *page) (string, error) {
	doc, err := p.document(ctx)
	if err != nil {
		return "", err
	}

	var found string
	walk(doc, func(n *html.Node) bool {
		if n.Type != html.ElementNode || n.Data != "script" || attr(n, "type") != "application/ld+json" {
			return true
		}
		var data any
		if err := json.Unmarshal([]byte(text(n)), &data); err != nil {
			return true
		}
		found = findCaption(data)
		return found == ""
	})

	return found, nil
}

var captionKeys = []string{"caption", "articleBody", "description"}

func findCaption(data any) string {
	switch v := data.(type) {
	case map[string]any:
		for _, key := range captionKeys {
			if s, ok := v[key].(string); ok && strings.TrimSpace(s) != "" {
				return s
			}
		}
		if graph, ok := v["@graph"]; ok {
			return findCaption(graph)
		}
	case []any:
		for _, item := range v {
			if s := findCaption(item); s != "" {
				return s
			}
		}
	}
	return ""
}

const sharedDataMarker = "window._sharedData = "

type sharedData struct {
	EntryData struct {
		PostPage []struct {
			Graphql struct {
				ShortcodeMedia struct {
					EdgeMediaToCaption struct {
						Edges []struct {
							Node struct {
								Text string `json:"text"`
							} `json:"node"`
						} `json:"edges"`
					} `json:"edge_media_to_caption"`
				} `json:"shortcode_media"`
			} `json:"graphql"`
		} `json:"PostPage"`
	} `json:"entry_data"`
}

func fromSharedData(ctx context.Context, _ string, p *page) (string, error) {
	doc, err := p.document(ctx)
	if err != nil {
		return "", err
	}

	var blob string
	walk(doc, func(n *html.Node) bool {
		if n.Type != html.ElementNode || n.Data != "script" {
			return true
		}
		body := text(n)
		i := strings.Index(body, sharedDataMarker)
		if i < 0 {
			return true
		}
		blob = strings.TrimRight(strings.TrimSpace(body[i+len(sharedDataMarker):]), ";")
		return false
	})
	if blob == "" {
		return "", nil
	}

	var data sharedData
	if err := json.Unmarshal([]byte(blob), &data); err != nil {
		return "", errors.Wrap(err, "broken shared data")
	}

	for _, post := range data.EntryData.PostPage {
		for _, edge := range post.Graphql.ShortcodeMedia.EdgeMediaToCaption.Edges {
			if edge.Node.Text != "" {
				return edge.Node.Text, nil
			}
		}
	}

	return "", nil
}

// walk visits nodes depth first until visit returns false
func walk(n *html.Node, visit func(*html.Node) bool) bool {
	if !visit(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, visit) {
			return false
		}
	}
	return true
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func text(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return sb.String()
}
