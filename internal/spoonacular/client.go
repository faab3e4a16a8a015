package spoonacular

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ytget/recipe-finder/internal/model"
)

// Request parameter names
const (
	ParamAPIKey       = "apiKey"
	ParamIngredients  = "ingredients"
	ParamNumber       = "number"
	ParamRanking      = "ranking"
	ParamIgnorePantry = "ignorePantry"

	IDPlaceholder   = "{id}"
	InfoPathSuffix  = "/information"
	ClientUserAgent = "RecipeFinder/1.0"
)

// Default client settings
const (
	DefaultTimeout = 30 * time.Second
)

// Ensure Client implements the interface.
var _ Finder = (*Client)(nil)

// ClientOption configures a Client.
type ClientOption func(*Client)

// Client talks to the recipe provider
type Client struct {
	apiKey         string
	searchEndpoint string
	infoEndpoint   string
	userAgent      string
	httpClient     *http.Client
}

// WithHTTPClient replaces the underlying *http.Client
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout sets the total per-request timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithUserAgent sets the User-Agent header
func WithUserAgent(userAgent string) ClientOption {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// NewClient creates a provider client for the given key and endpoint templates
func NewClient(apiKey, searchEndpoint, infoEndpoint string, options ...ClientOption) *Client {
	c := &Client{
		apiKey:         apiKey,
		searchEndpoint: searchEndpoint,
		infoEndpoint:   infoEndpoint,
		userAgent:      ClientUserAgent,
		httpClient:     &http.Client{Timeout: DefaultTimeout},
	}

	for _, opt := range options {
		opt(c)
	}

	return c
}

// ingredientDTO is one entry of usedIngredients / missedIngredients
type ingredientDTO struct {
	Name string `json:"name"`
}

// searchResultDTO mirrors one element of the find-by-ingredients response
type searchResultDTO struct {
	ID                int             `json:"id"`
	Title             *string         `json:"title"`
	Image             string          `json:"image"`
	UsedIngredients   []ingredientDTO `json:"usedIngredients"`
	MissedIngredients []ingredientDTO `json:"missedIngredients"`
}

// informationDTO mirrors the recipe information response
type informationDTO struct {
	ID        int     `json:"id"`
	Title     *string `json:"title"`
	Image     string  `json:"image"`
	Summary   *string `json:"summary"`
	SourceURL string  `json:"sourceUrl"`
}

// Search runs a "find by ingredients" request. An empty provider response is not an error.
func (c *Client) Search(ctx context.Context, query model.IngredientQuery) ([]model.RecipeSummary, error) {
	reqURL, err := c.searchURL(query)
	if err != nil {
		return nil, err
	}

	var raw []searchResultDTO
	if err := c.getJSON(ctx, "search recipes", reqURL, &raw); err != nil {
		return nil, err
	}

	recipes := make([]model.RecipeSummary, 0, len(raw))
	for _, item := range raw {
		recipes = append(recipes, item.toSummary())
	}

	log.Printf("Search for %q returned %d recipes", query.Joined(), len(recipes))
	return recipes, nil
}

// GetDetails fetches extended information for one recipe
func (c *Client) GetDetails(ctx context.Context, id int) (model.RecipeDetail, error) {
	reqURL, err := c.infoURL(id)
	if err != nil {
		return model.RecipeDetail{}, err
	}

	var raw informationDTO
	if err := c.getJSON(ctx, "get recipe information", reqURL, &raw); err != nil {
		return model.RecipeDetail{}, err
	}

	detail := raw.toDetail()
	if detail.ID == 0 {
		detail.ID = id
	}
	return detail, nil
}

// searchURL builds the find-by-ingredients request URL
func (c *Client) searchURL(query model.IngredientQuery) (string, error) {
	u, err := url.Parse(c.searchEndpoint)
	if err != nil {
		return "", fmt.Errorf("invalid search endpoint %q: %w", c.searchEndpoint, err)
	}

	params := u.Query()
	params.Set(ParamAPIKey, c.apiKey)
	params.Set(ParamIngredients, query.Joined())
	params.Set(ParamNumber, strconv.Itoa(query.ResultLimit))
	params.Set(ParamRanking, strconv.Itoa(int(query.Ranking)))
	params.Set(ParamIgnorePantry, strconv.FormatBool(query.IgnorePantry))
	u.RawQuery = params.Encode()

	return u.String(), nil
}

// infoURL builds the recipe information URL. The {id} placeholder is replaced,
// otherwise /<id>/information is appended to the endpoint path.
func (c *Client) infoURL(id int) (string, error) {
	endpoint := c.infoEndpoint
	idStr := strconv.Itoa(id)
	if strings.Contains(endpoint, IDPlaceholder) {
		endpoint = strings.ReplaceAll(endpoint, IDPlaceholder, idStr)
	} else {
		endpoint = strings.TrimRight(endpoint, "/") + "/" + idStr + InfoPathSuffix
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid information endpoint %q: %w", c.infoEndpoint, err)
	}

	params := u.Query()
	params.Set(ParamAPIKey, c.apiKey)
	u.RawQuery = params.Encode()

	return u.String(), nil
}

// getJSON performs a GET and decodes a 200 response into out
func (c *Client) getJSON(ctx context.Context, op, reqURL string, out any) error {
	if ctx == nil {
		ctx = context.Background()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("%s failed with status %d", op, resp.StatusCode)
		return &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%s: %w: %v", op, ErrMalformedResponse, err)
	}

	return nil
}

func (d searchResultDTO) toSummary() model.RecipeSummary {
	title := model.DefaultRecipeTitle
	if d.Title != nil {
		title = *d.Title
	}

	return model.RecipeSummary{
		ID:                 d.ID,
		Title:              title,
		ImageURL:           d.Image,
		UsedIngredients:    ingredientNames(d.UsedIngredients),
		MissingIngredients: ingredientNames(d.MissedIngredients),
	}
}

func (d informationDTO) toDetail() model.RecipeDetail {
	title := model.DefaultDetailTitle
	if d.Title != nil {
		title = *d.Title
	}

	summary := model.DefaultSummaryText
	if d.Summary != nil {
		summary = *d.Summary
	}

	return model.RecipeDetail{
		ID:          d.ID,
		Title:       title,
		ImageURL:    d.Image,
		SummaryHTML: SanitizeSummary(summary),
		SourceURL:   d.SourceURL,
	}
}

func ingredientNames(items []ingredientDTO) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	return names
}
