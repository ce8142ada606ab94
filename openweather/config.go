package openweather

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// DefaultConfigPath is where the CLI looks for credentials when no
// -config flag is given.
const DefaultConfigPath = "openweather_api.json"

var validate = validator.New()

// Config holds the API credential and the coordinate every request is made
// for. It is loaded once at startup and never written back.
type Config struct {
	APIKey    string
	Latitude  float64
	Longitude float64
}

// configFile mirrors the JSON document. The coordinates are pointers so a
// document that omits a key is distinguishable from one that supplies the
// legal coordinate 0.0.
type configFile struct {
	APIKey    string   `json:"api_key" validate:"required"`
	Latitude  *float64 `json:"lat" validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"lon" validate:"required,gte=-180,lte=180"`
}

// Load reads the JSON configuration file at path and validates it. Opening
// and decoding fail with distinct contexts so the user can tell a missing
// file from a malformed one; a structurally valid document missing its key
// or either coordinate is rejected too.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open config file %q", path)
	}

	var file configFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, "failed to deserialize configuration JSON")
	}

	if err := validate.Struct(&file); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return &Config{
		APIKey:    file.APIKey,
		Latitude:  *file.Latitude,
		Longitude: *file.Longitude,
	}, nil
}
