package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"tripcraft/internal/config"
	"tripcraft/internal/models/trip_models"
	"tripcraft/pkg/utils"
)

const (
	ProviderSerpAPI = "serpapi"

	EngineFlights = "google_flights"
	EngineHotels  = "google_hotels"
	EngineImages  = "google_images"

	// the provider wants one age per child; the client collects no ages
	defaultChildAge  = "17"
	flightTypeOneWay = "2"
	hotelListSize    = "10"
	hotelSortByPrice = "3"
)

// SearchResult is the decoded provider response, forwarded to the web client untouched.
type SearchResult map[string]any

type SerpAPIClient struct {
	baseURL    string
	apiKey     string
	currency   string
	country    string
	language   string
	timeout    time.Duration
	httpClient *http.Client
	log        *zap.Logger
}

func NewSerpAPIClient(cfg config.SearchConfig, upstream config.UpstreamConfig, log *zap.Logger) *SerpAPIClient {
	return &SerpAPIClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		currency:   cfg.Currency,
		country:    cfg.Country,
		language:   cfg.Language,
		timeout:    upstream.Timeout,
		httpClient: &http.Client{},
		log:        log.With(zap.String("provider", ProviderSerpAPI)),
	}
}

// Search runs one query against engine and returns the decoded JSON body.
func (c *SerpAPIClient) Search(ctx context.Context, engine string, params url.Values) (result SearchResult, err error) {
	start := time.Now()
	defer func() { observe(ProviderSerpAPI, engine, start, err) }()

	q := url.Values{}
	for k, vs := range params {
		q[k] = append([]string(nil), vs...)
	}
	q.Set("engine", engine)
	q.Set("api_key", c.apiKey)

	callCtx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(callCtx, http.MethodGet, c.baseURL+"/search.json?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classify(ctx, ProviderSerpAPI, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classify(ctx, ProviderSerpAPI, err)
	}

	var decoded SearchResult
	decodeErr := json.Unmarshal(body, &decoded)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := strings.TrimSpace(string(body))
		if decodeErr == nil {
			if m, ok := decoded["error"].(string); ok && m != "" {
				msg = m
			}
		}
		if msg == "" {
			msg = resp.Status
		}
		return nil, utils.NewUpstreamError(ProviderSerpAPI, resp.StatusCode, msg)
	}
	if decodeErr != nil {
		return nil, utils.NewUpstreamError(ProviderSerpAPI, resp.StatusCode, "malformed response: "+decodeErr.Error())
	}
	if m, ok := decoded["error"].(string); ok && m != "" {
		return nil, utils.NewUpstreamError(ProviderSerpAPI, resp.StatusCode, m)
	}

	c.log.Debug("search completed", zap.String("engine", engine), zap.Int("keys", len(decoded)))
	return decoded, nil
}

func (c *SerpAPIClient) SearchFlights(ctx context.Context, q trip_models.FlightQuery) (SearchResult, error) {
	params := url.Values{}
	params.Set("departure_id", q.DepartureID)
	params.Set("arrival_id", q.ArrivalID)
	params.Set("outbound_date", q.OutboundDate)
	params.Set("type", flightTypeOneWay)
	params.Set("currency", c.currency)
	return c.Search(ctx, EngineFlights, params)
}

// SearchHotels runs a hotel list search, or a single-property lookup when
// PropertyToken is set.
func (c *SerpAPIClient) SearchHotels(ctx context.Context, q trip_models.HotelQuery) (SearchResult, error) {
	params := url.Values{}
	params.Set("q", q.Query)
	params.Set("check_in_date", q.CheckIn)
	params.Set("check_out_date", q.CheckOut)
	params.Set("adults", strconv.Itoa(q.Adults))
	params.Set("children", strconv.Itoa(q.Children))
	params.Set("currency", c.currency)
	ages, err := ChildrenAges(q.Children)
	if err != nil {
		return nil, err
	}
	if ages != "" {
		params.Set("children_ages", ages)
	}

	if q.PropertyToken != "" {
		params.Set("property_token", q.PropertyToken)
	} else {
		params.Set("gl", c.country)
		params.Set("hl", c.language)
		params.Set("num", hotelListSize)
		params.Set("sort_by", hotelSortByPrice)
	}
	if q.PriceBand != nil {
		params.Set("min_price", strconv.Itoa(q.PriceBand.MinPerNight))
		params.Set("max_price", strconv.Itoa(q.PriceBand.MaxPerNight))
	}
	return c.Search(ctx, EngineHotels, params)
}

func (c *SerpAPIClient) SearchImages(ctx context.Context, query string) (SearchResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("ijn", "0")
	return c.Search(ctx, EngineImages, params)
}

// ChildrenAges encodes every child as age 17, comma separated.
func ChildrenAges(children int) (string, error) {
	if children > trip_models.MaxChildren {
		return "", utils.InvalidInputf("at most %d children per search, got %d", trip_models.MaxChildren, children)
	}
	if children <= 0 {
		return "", nil
	}
	ages := make([]string, children)
	for i := range ages {
		ages[i] = defaultChildAge
	}
	return strings.Join(ages, ", "), nil
}
