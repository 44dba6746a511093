// Package fatsecret looks up nutrition facts on the Indonesian FatSecret
// website and maps them to a [food.AnalysisResult]. It fetches the public
// search and food pages, converts the nutrition table to Markdown, and parses
// the Indonesian nutrient labels.
//
// Lookup never returns a Go error: failures produce a result whose Error
// field is set, the same tolerant posture the analysis services use.
package fatsecret

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"golang.org/x/net/html"

	"github.com/pockeat/pockeat-go/core/food"
	"github.com/pockeat/pockeat-go/internal/utils"
	"github.com/pockeat/pockeat-go/providers/observability"
)

const (
	// DefaultBaseURL is the Indonesian FatSecret site the original data
	// comes from. Labels on other locales will not parse.
	DefaultBaseURL = "https://www.fatsecret.co.id"
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second
	// DefaultUserAgent is the default User-Agent header value.
	DefaultUserAgent = "pockeat-fatsecret-tool/1.0"
	// MaxBodySize caps the response body at 10MB.
	MaxBodySize = 10 * 1024 * 1024
)

// Client fetches and parses FatSecret nutrition pages.
type Client struct {
	baseURL string
	client  *http.Client
	logger  observability.Logger
}

// New creates a FatSecret client with default settings.
func New() *Client {
	return &Client{
		baseURL: DefaultBaseURL,
		client:  &http.Client{Timeout: DefaultTimeout},
		logger:  observability.NopLogger{},
	}
}

// WithBaseURL overrides the FatSecret site URL.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

// WithHTTPClient sets a custom HTTP client.
func (c *Client) WithHTTPClient(httpClient *http.Client) *Client {
	c.client = httpClient
	return c
}

// WithLogger sets the logger used for lookup tracing.
func (c *Client) WithLogger(logger observability.Logger) *Client {
	if logger != nil {
		c.logger = logger
	}
	return c
}

// Lookup searches FatSecret for keyword and returns the nutrition facts of
// the first matching food. On any failure the returned result carries the
// keyword as its food name and a diagnostic in its Error field.
func (c *Client) Lookup(ctx context.Context, keyword string) *food.AnalysisResult {
	result, err := c.lookup(ctx, keyword)
	if err != nil {
		c.logger.Warn(ctx, "fatsecret lookup failed",
			observability.String("keyword", keyword),
			observability.Error(err),
		)
		failed := food.NewAnalysisResult(keyword)
		failed.Error = err.Error()
		return failed
	}
	return result
}

func (c *Client) lookup(ctx context.Context, keyword string) (*food.AnalysisResult, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, fmt.Errorf("keyword cannot be empty")
	}

	c.logger.Info(ctx, "searching fatsecret",
		observability.String("keyword", keyword),
	)

	searchURL := fmt.Sprintf("%s/kalori-gizi/search?q=%s", c.baseURL, url.QueryEscape(keyword))
	searchHTML, err := c.fetch(ctx, searchURL)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}

	foodPath := firstFoodLink(searchHTML)
	if foodPath == "" {
		return nil, fmt.Errorf("no result found for %q", keyword)
	}
	foodURL := foodPath
	if strings.HasPrefix(foodPath, "/") {
		foodURL = c.baseURL + foodPath
	}

	pageHTML, err := c.fetch(ctx, foodURL)
	if err != nil {
		return nil, fmt.Errorf("food page request failed: %w", err)
	}

	foodName := firstHeading(pageHTML)
	if foodName == "" {
		foodName = keyword
	}

	markdown, err := htmltomarkdown.ConvertString(pageHTML)
	if err != nil {
		return nil, fmt.Errorf("failed to convert food page: %w", err)
	}

	nutrition, found := parseNutritionMarkdown(markdown)
	if !found {
		return nil, fmt.Errorf("nutrition facts not found for %q", keyword)
	}

	result := food.NewAnalysisResult(foodName)
	result.NutritionInfo = nutrition
	result.AddStandardWarnings()

	c.logger.Debug(ctx, "fatsecret lookup succeeded",
		observability.String("food", foodName),
		observability.Float64("calories", nutrition.Calories),
	)
	return result, nil
}

func (c *Client) fetch(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", DefaultUserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer utils.CloseWithLog(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize))
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// firstFoodLink finds the first anchor pointing at a concrete food page
// under /kalori-gizi/umum/, skipping the category index itself.
func firstFoodLink(page string) string {
	root, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return ""
	}

	var found string
	var walk func(node *html.Node)
	walk = func(node *html.Node) {
		if found != "" {
			return
		}
		if node.Type == html.ElementNode && node.Data == "a" {
			for _, attr := range node.Attr {
				if attr.Key != "href" {
					continue
				}
				href := attr.Val
				if strings.Contains(href, "/kalori-gizi/umum/") &&
					!strings.HasSuffix(strings.TrimRight(href, "/"), "/umum") {
					found = href
					return
				}
			}
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)
	return found
}

// firstHeading returns the text of the first h1 element on the page.
func firstHeading(page string) string {
	root, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return ""
	}

	var found string
	var walk func(node *html.Node)
	walk = func(node *html.Node) {
		if found != "" {
			return
		}
		if node.Type == html.ElementNode && node.Data == "h1" {
			found = strings.TrimSpace(nodeText(node))
			return
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)
	return found
}

func nodeText(node *html.Node) string {
	var builder strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			builder.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(node)
	return builder.String()
}
