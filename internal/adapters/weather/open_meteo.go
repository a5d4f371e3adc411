package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"ecoroute-service/internal/domain"
	"ecoroute-service/internal/platform/obs"

	"go.uber.org/zap"
)

const DefaultOpenMeteoBaseURL = "https://api.open-meteo.com"

// OpenMeteoProvider reads current conditions from the Open-Meteo forecast API.
// No API key is needed.
type OpenMeteoProvider struct {
	session *http.Client
	baseURL string
	log     *zap.Logger
}

func NewOpenMeteoProvider(baseURL string, timeout time.Duration, log *zap.Logger) *OpenMeteoProvider {
	if baseURL == "" {
		baseURL = DefaultOpenMeteoBaseURL
	}
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &OpenMeteoProvider{
		session: &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     log.Named("open_meteo"),
	}
}

type forecastResponse struct {
	Current struct {
		Temperature   *float64 `json:"temperature_2m"`
		WindSpeed     *float64 `json:"wind_speed_10m"`
		WindDirection *float64 `json:"wind_direction_10m"`
		Precipitation *float64 `json:"precipitation"`
	} `json:"current"`
}

func (p *OpenMeteoProvider) Current(ctx context.Context, at domain.Coordinates) (_ domain.WeatherSample, err error) {
	defer obs.Time(ctx, p.log, "weather.Current")(&err)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/v1/forecast", nil)
	if err != nil {
		return domain.WeatherSample{}, fmt.Errorf("create weather request: %w", err)
	}
	q := req.URL.Query()
	q.Set("latitude", strconv.FormatFloat(at.Lat, 'f', 5, 64))
	q.Set("longitude", strconv.FormatFloat(at.Lon, 'f', 5, 64))
	q.Set("current", "temperature_2m,wind_speed_10m,wind_direction_10m,precipitation")
	q.Set("wind_speed_unit", "kmh")
	q.Set("forecast_days", "1")
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")

	resp, err := p.session.Do(req)
	if err != nil {
		return domain.WeatherSample{}, fmt.Errorf("execute weather request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.WeatherSample{}, fmt.Errorf("weather: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var decoded forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.WeatherSample{}, fmt.Errorf("decode weather response: %w", err)
	}

	c := decoded.Current
	return domain.WeatherSample{
		TemperatureC:     valueOr(c.Temperature, domain.DefaultWeather.TemperatureC),
		WindSpeedKMH:     valueOr(c.WindSpeed, 0),
		WindDirectionDeg: valueOr(c.WindDirection, 0),
		PrecipitationMM:  valueOr(c.Precipitation, 0),
	}, nil
}

func valueOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}
