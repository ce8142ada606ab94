package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	goodmorning "github.com/9999years/good-morning"
	"github.com/9999years/good-morning/openweather"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// hoursInWindow is how much of the hourly forecast feeds today's stats.
const hoursInWindow = 24

func main() {
	configPath := flag.String("config", openweather.DefaultConfigPath,
		"config filename; a JSON file with api_key, lat, and lon fields")
	flag.Parse()

	// Best effort; running without a .env file is the normal case.
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating the logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(context.Background(), *configPath, logger); err != nil {
		logger.Fatal("good-morning failed", zap.Error(err))
	}
}

func run(ctx context.Context, configPath string, logger *zap.Logger) error {
	config, err := openweather.Load(configPath)
	if err != nil {
		return err
	}

	// The key in the config file can be overridden from the environment,
	// which keeps the file shareable between machines.
	if key := os.Getenv("OPEN_WEATHER_API_KEY"); key != "" {
		config.APIKey = key
	}

	client := openweather.NewClient(config, logger)

	onecall, err := client.Forecast(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to deserialize hourly weather data")
	}

	historical, err := client.Yesterday(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to deserialize historical hourly weather data")
	}

	yesterday := goodmorning.ComputeStats(historicalFeelsLike(historical))

	hourly := onecall.Hourly
	if len(hourly) > hoursInWindow {
		hourly = hourly[:hoursInWindow]
	}
	today := goodmorning.ComputeStats(hourlyFeelsLike(hourly))

	diff := goodmorning.Classify(yesterday.Avg, today.Avg)

	// The report is the only thing written to stdout.
	fmt.Println(goodmorning.FormatReport(today, diff))

	return nil
}

func hourlyFeelsLike(hourly []openweather.Hourly) []float64 {
	values := make([]float64, 0, len(hourly))
	for _, h := range hourly {
		values = append(values, h.FeelsLike)
	}
	return values
}

func historicalFeelsLike(hourly []openweather.HistoricalHourly) []float64 {
	values := make([]float64, 0, len(hourly))
	for _, h := range hourly {
		values = append(values, h.FeelsLike)
	}
	return values
}
