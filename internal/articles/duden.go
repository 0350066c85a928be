package articles

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/net/html"
)

// Client looks words up on duden.de.
type Client struct {
	endpoint string
	http     *http.Client
	logger   *slog.Logger
}

// NewClient creates a client for the dictionary pages under endpoint.
func NewClient(endpoint string, httpClient *http.Client, logger *slog.Logger) *Client {
	if !strings.HasSuffix(endpoint, "/") {
		endpoint += "/"
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{endpoint: endpoint, http: httpClient, logger: logger}
}

var slugReplacer = strings.NewReplacer(
	"ä", "ae", "ö", "oe", "ü", "ue",
	"Ä", "Ae", "Ö", "Oe", "Ü", "Ue",
	"ß", "sz", " ", "_",
)

// Slug converts a word to the form used in dictionary page URLs.
func Slug(word string) string {
	return slugReplacer.Replace(word)
}

// Lookup fetches the page of word and returns its title, e.g. "Stadt, die".
func (c *Client) Lookup(ctx context.Context, word string) (string, error) {
	url := c.endpoint + Slug(word)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("dictionary response", "url", url, "status", resp.StatusCode)
	if resp.StatusCode == http.StatusNotFound {
		return "", ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	doc, err := html.Parse(io.LimitReader(resp.Body, 2<<20))
	if err != nil {
		return "", fmt.Errorf("failed to parse %s: %w", url, err)
	}

	title := findTitle(doc)
	if title == "" {
		return "", ErrNotFound
	}
	return title, nil
}

// findTitle returns the cleaned text of the lemma heading, without the part
// of speech that may follow it in parentheses.
func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "h1" && hasClass(n, "lemma__title") {
		var sb strings.Builder
		collectText(n, &sb)
		title := strings.ReplaceAll(sb.String(), "\u00ad", "")
		title = strings.Join(strings.Fields(title), " ")
		title, _, _ = strings.Cut(title, "(")
		return strings.TrimSpace(title)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTitle(c); t != "" {
			return t
		}
	}
	return ""
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}

func hasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Key == "class" {
			for _, f := range strings.Fields(a.Val) {
				if f == class {
					return true
				}
			}
		}
	}
	return false
}
