package openweather

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

const onecallBody = `{
	"hourly": [
		{"dt": 1591377600, "temp": 55.0, "feels_like": 55.0, "humidity": 80, "clouds": 40},
		{"dt": 1591381200, "temp": 60.0, "feels_like": 58.5, "humidity": 75, "clouds": 20}
	],
	"daily": []
}`

const historicalBody = `{
	"hourly": [
		{"dt": 1591291200, "temp": 48.0, "feels_like": 45.5, "humidity": 85, "clouds": 90, "wind_speed": 6.5}
	]
}`

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	config := &Config{APIKey: "deadbeef", Latitude: 42.4, Longitude: -71.2}
	client := NewClient(config, zap.NewNop())
	client.baseURL = server.URL
	return client
}

func TestForecast(t *testing.T) {
	var gotPath string
	var gotQuery url.Values

	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Write([]byte(onecallBody))
	}))

	onecall, err := client.Forecast(context.Background())
	if err != nil {
		t.Fatalf("Forecast failed: %v", err)
	}

	if len(onecall.Hourly) != 2 {
		t.Errorf("len(Hourly) = %d, want 2", len(onecall.Hourly))
	}

	if gotPath != "/onecall" {
		t.Errorf("path = %q, want /onecall", gotPath)
	}

	wantQuery := map[string]string{
		"exclude": "currently,minutely",
		"units":   "imperial",
		"lat":     "42.4",
		"lon":     "-71.2",
		"appid":   "deadbeef",
	}
	for key, want := range wantQuery {
		if got := gotQuery.Get(key); got != want {
			t.Errorf("query %s = %q, want %q", key, got, want)
		}
	}
}

func TestHistoricalDay(t *testing.T) {
	var gotPath string
	var gotQuery url.Values

	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Write([]byte(historicalBody))
	}))

	// Mid-afternoon; the request must carry midnight UTC of the same day.
	date := time.Date(2020, time.June, 4, 15, 30, 45, 0, time.UTC)

	hourly, err := client.HistoricalDay(context.Background(), date)
	if err != nil {
		t.Fatalf("HistoricalDay failed: %v", err)
	}

	if len(hourly) != 1 {
		t.Errorf("len(hourly) = %d, want 1", len(hourly))
	}
	if hourly[0].FeelsLike != 45.5 {
		t.Errorf("FeelsLike = %v, want 45.5", hourly[0].FeelsLike)
	}

	if gotPath != "/onecall/timemachine" {
		t.Errorf("path = %q, want /onecall/timemachine", gotPath)
	}

	midnight := time.Date(2020, time.June, 4, 0, 0, 0, 0, time.UTC)
	if got := gotQuery.Get("dt"); got != "1591228800" {
		t.Errorf("query dt = %q, want %d", got, midnight.Unix())
	}
	if got := gotQuery.Get("units"); got != "imperial" {
		t.Errorf("query units = %q, want imperial", got)
	}
}

func TestRemoteError(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"cod": 401, "message": "Invalid API key"}`))
	}))

	_, err := client.Forecast(context.Background())
	if err == nil {
		t.Fatal("expected an error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error %T is not *APIError: %v", err, err)
	}
	if apiErr.Code != 401 || apiErr.Message != "Invalid API key" {
		t.Errorf("got %+v, want code 401 and message %q", apiErr, "Invalid API key")
	}
}

func TestDecodeErrorKeepsBody(t *testing.T) {
	const body = `<html>502 Bad Gateway</html>`

	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))

	_, err := client.Forecast(context.Background())
	if err == nil {
		t.Fatal("expected an error")
	}

	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("error %T is not *DecodeError: %v", err, err)
	}
	if decodeErr.Body != body {
		t.Errorf("Body = %q, want the raw response text", decodeErr.Body)
	}
	if decodeErr.Err == nil {
		t.Error("the original parse failure was lost")
	}
	if !strings.Contains(decodeErr.Error(), "while deserializing JSON") {
		t.Errorf("message %q does not describe the decode failure", decodeErr.Error())
	}
}

func TestTransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	config := &Config{APIKey: "deadbeef", Latitude: 42.4, Longitude: -71.2}
	client := NewClient(config, zap.NewNop())
	client.baseURL = server.URL
	server.Close()

	_, err := client.Forecast(context.Background())
	if err == nil {
		t.Fatal("expected an error")
	}

	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("error %T is not *RequestError: %v", err, err)
	}
}

// The error-shape fallback needs both cod and message; half an error
// payload surfaces as a decode failure with the body attached.
func TestDecodeRejectsPartialErrorShape(t *testing.T) {
	bodies := []string{
		`{"cod": 401}`,
		`{"message": "Invalid API key"}`,
	}

	for _, body := range bodies {
		var onecall OneCall
		err := decode([]byte(body), &onecall)
		if err == nil {
			t.Fatalf("decode(%s): expected an error", body)
		}

		var decodeErr *DecodeError
		if !errors.As(err, &decodeErr) {
			t.Fatalf("decode(%s): error %T is not *DecodeError: %v", body, err, err)
		}
		if decodeErr.Body != body {
			t.Errorf("decode(%s): Body = %q, want the raw response text", body, decodeErr.Body)
		}
	}
}

// A body missing its required arrays must not pass as an empty success.
func TestDecodeRejectsShapelessSuccess(t *testing.T) {
	var onecall OneCall
	err := decode([]byte(`{}`), &onecall)
	if err == nil {
		t.Fatal("expected an error for a body with no hourly/daily arrays")
	}

	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("error %T is not *DecodeError: %v", err, err)
	}
}
