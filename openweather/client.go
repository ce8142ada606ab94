// Package openweather is a minimal client for the OpenWeatherMap
// "One Call" API: the combined forecast endpoint and the time-machine
// endpoint for historical days.
package openweather

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5"

// Client issues authenticated requests for a single configured coordinate.
// It owns its *http.Client; construct one Client at startup and share it.
type Client struct {
	config     *Config
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a client for the given configuration. No deadline is
// set beyond the transport's defaults; this is a single-shot tool.
func NewClient(config *Config, logger *zap.Logger) *Client {
	return &Client{
		config:     config,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// Forecast fetches the combined hourly and daily forecast for the
// configured coordinate, in imperial units.
func (c *Client) Forecast(ctx context.Context) (*OneCall, error) {
	return get[OneCall](ctx, c, "onecall", url.Values{
		"exclude": {"currently,minutely"},
		"units":   {"imperial"},
	})
}

// HistoricalDay fetches the hourly observations for the calendar day (UTC)
// containing date.
func (c *Client) HistoricalDay(ctx context.Context, date time.Time) ([]HistoricalHourly, error) {
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	historical, err := get[Historical](ctx, c, "onecall/timemachine", url.Values{
		"units": {"imperial"},
		"dt":    {strconv.FormatInt(midnight.Unix(), 10)},
	})
	if err != nil {
		return nil, err
	}

	return historical.Hourly, nil
}

// Yesterday fetches the hourly observations for the previous UTC day.
func (c *Client) Yesterday(ctx context.Context) ([]HistoricalHourly, error) {
	return c.HistoricalDay(ctx, time.Now().UTC().AddDate(0, 0, -1))
}

// get performs an authenticated GET against endpoint and decodes the body
// as T. Both endpoint methods funnel through here so the query assembly and
// the two-stage decode live in one place.
func get[T any, P interface {
	*T
	response
}](ctx context.Context, c *Client, endpoint string, params url.Values) (*T, error) {
	params.Set("lat", strconv.FormatFloat(c.config.Latitude, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(c.config.Longitude, 'f', -1, 64))
	params.Set("appid", c.config.APIKey)

	requestURL := c.baseURL + "/" + endpoint + "?" + params.Encode()

	c.logger.Debug("requesting weather information", zap.String("url", requestURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, &RequestError{Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RequestError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{Err: err}
	}

	var payload T
	if err := decode(body, P(&payload)); err != nil {
		return nil, err
	}

	return &payload, nil
}

// decode unmarshals body as the expected success shape. When that fails,
// the same bytes are reinterpreted as the provider's {cod, message} error
// shape; only if both readings fail does the caller get the original
// failure back, together with the raw body for diagnosis.
func decode(body []byte, payload response) error {
	err := json.Unmarshal(body, payload)
	if err == nil {
		err = payload.validate()
	}
	if err == nil {
		return nil
	}

	// Both fields of the error shape must be present; a body carrying only
	// one of them is not the provider's error payload.
	var apiErr APIError
	if fallbackErr := json.Unmarshal(body, &apiErr); fallbackErr == nil && apiErr.Code != 0 && apiErr.Message != "" {
		return &apiErr
	}

	return &DecodeError{Err: err, Body: string(body)}
}
