package wikipedia

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/net/html"
)

const (
	articlePrefix    = "https://en.wikipedia.org/wiki/"
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
)

var ErrUnsupportedURL = errors.New("only English Wikipedia article URLs are supported")

// Article holds the scraped pieces the quiz generator needs.
type Article struct {
	URL         string
	Title       string
	Summary     string
	Sections    []string
	BodyText    string
	KeyEntities KeyEntities
}

type KeyEntities struct {
	People        []string
	Organizations []string
	Locations     []string
}

type Client struct {
	httpClient *http.Client
	userAgent  string
}

func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		userAgent:  defaultUserAgent,
	}
}

// FetchArticle downloads and parses one English Wikipedia article.
func (c *Client) FetchArticle(ctx context.Context, rawURL string) (Article, error) {
	rawURL = strings.TrimSpace(rawURL)
	if !strings.HasPrefix(rawURL, articlePrefix) {
		return Article{}, ErrUnsupportedURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return Article{}, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Article{}, fmt.Errorf("fetch article: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Article{}, fmt.Errorf("wikipedia returned status %d", resp.StatusCode)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return Article{}, fmt.Errorf("parse article HTML: %w", err)
	}

	article, err := parseArticle(doc)
	if err != nil {
		return Article{}, err
	}
	article.URL = rawURL
	return article, nil
}
