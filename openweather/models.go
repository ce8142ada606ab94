package openweather

import (
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// UnixTime is a time.Time that travels over the wire as an integer count of
// seconds since the Unix epoch, which is how the API tags every reading.
// The conversion is lossless in both directions; there is no sub-second
// precision to lose.
type UnixTime struct {
	time.Time
}

func (t *UnixTime) UnmarshalJSON(data []byte) error {
	var secs int64
	if err := json.Unmarshal(data, &secs); err != nil {
		return err
	}
	t.Time = time.Unix(secs, 0).UTC()
	return nil
}

func (t UnixTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Unix())
}

// response is implemented by every top-level API payload so the client can
// tell a real decode apart from JSON that merely shares no keys with the
// target shape and leaves every field zero.
type response interface {
	validate() error
}

// OneCall is the combined forecast payload: hourly readings for the next
// couple of days plus one daily summary per day.
type OneCall struct {
	Hourly []Hourly `json:"hourly"`
	Daily  []Daily  `json:"daily"`
}

func (o *OneCall) validate() error {
	if o.Hourly == nil {
		return errors.New(`missing "hourly" array`)
	}
	if o.Daily == nil {
		return errors.New(`missing "daily" array`)
	}
	return nil
}

// Hourly is a single forecast reading.
type Hourly struct {
	Dt        UnixTime `json:"dt"`
	Temp      float64  `json:"temp"`
	FeelsLike float64  `json:"feels_like"`
	Humidity  float64  `json:"humidity"`
	Clouds    float64  `json:"clouds"`
	Rain      *Rain    `json:"rain,omitempty"`
	Snow      *Snow    `json:"snow,omitempty"`
}

// Rain is the rain volume for the last hour, in mm.
type Rain struct {
	OneHour float64 `json:"1h"`
}

// Snow is the snow volume for the last hour, in mm.
type Snow struct {
	OneHour float64 `json:"1h"`
}

// Daily is one day's summary from the forecast payload.
type Daily struct {
	Dt        UnixTime       `json:"dt"`
	Sunrise   UnixTime       `json:"sunrise"`
	Sunset    UnixTime       `json:"sunset"`
	Rain      *float64       `json:"rain,omitempty"`
	Snow      *float64       `json:"snow,omitempty"`
	Temp      DailyTemp      `json:"temp"`
	FeelsLike DailyFeelsLike `json:"feels_like"`
}

// DailyTemp breaks the day's temperature down by period, plus the extremes.
type DailyTemp struct {
	Morn  float64 `json:"morn"`
	Day   float64 `json:"day"`
	Eve   float64 `json:"eve"`
	Night float64 `json:"night"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// DailyFeelsLike is the apparent temperature by period of day.
type DailyFeelsLike struct {
	Morn  float64 `json:"morn"`
	Day   float64 `json:"day"`
	Eve   float64 `json:"eve"`
	Night float64 `json:"night"`
}

// Historical is the time-machine payload: one calendar day's hourly
// observations.
type Historical struct {
	Hourly []HistoricalHourly `json:"hourly"`
}

func (h *Historical) validate() error {
	if h.Hourly == nil {
		return errors.New(`missing "hourly" array`)
	}
	return nil
}

// HistoricalHourly is a single observed reading. Unlike the forecast
// variant it carries wind data.
type HistoricalHourly struct {
	Dt        UnixTime `json:"dt"`
	Temp      float64  `json:"temp"`
	FeelsLike float64  `json:"feels_like"`
	Humidity  float64  `json:"humidity"`
	Clouds    float64  `json:"clouds"`
	WindSpeed float64  `json:"wind_speed"`
	WindGust  *float64 `json:"wind_gust,omitempty"`
	Rain      *Rain    `json:"rain,omitempty"`
	Snow      *Snow    `json:"snow,omitempty"`
}
