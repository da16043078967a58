package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/nasserlabs/anim-tools/internal/types"
)

const defaultBaseURL = "https://api.open-meteo.com/v1/forecast"

// Paris, used when the caller supplies no coordinates.
const (
	DefaultLatitude  = 48.8566
	DefaultLongitude = 2.3522
	DefaultLocation  = "Paris"
)

// Client fetches current conditions from the Open-Meteo forecast API.
type Client interface {
	Current(ctx context.Context, lat, lon float64) (*types.CurrentWeather, error)
}

var _ Client = (*OpenMeteoClient)(nil)

type OpenMeteoClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewOpenMeteoClient(logger *slog.Logger) *OpenMeteoClient {
	return &OpenMeteoClient{
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// openMeteoResponse mirrors the subset of the forecast payload we read.
type openMeteoResponse struct {
	Current struct {
		Temperature2m      float64 `json:"temperature_2m"`
		RelativeHumidity2m float64 `json:"relative_humidity_2m"`
		WeatherCode        int     `json:"weather_code"`
		WindSpeed10m       float64 `json:"wind_speed_10m"`
	} `json:"current"`
}

func (c *OpenMeteoClient) Current(ctx context.Context, lat, lon float64) (*types.CurrentWeather, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', 4, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', 4, 64))
	q.Set("current", "temperature_2m,relative_humidity_2m,weather_code,wind_speed_10m")
	q.Set("timezone", "Europe/Paris")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("error building forecast request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling forecast API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("forecast API returned status %d", resp.StatusCode)
	}

	var payload openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("error decoding forecast response: %w", err)
	}

	info := infoForCode(payload.Current.WeatherCode)
	return &types.CurrentWeather{
		Temperature: int(math.Round(payload.Current.Temperature2m)),
		Humidity:    int(math.Round(payload.Current.RelativeHumidity2m)),
		WindSpeed:   int(math.Round(payload.Current.WindSpeed10m)),
		WeatherCode: payload.Current.WeatherCode,
		Icon:        info.Icon,
		Label:       info.Label,
		Advice:      info.Advice,
		Indoor:      info.Indoor,
		FetchedAt:   time.Now(),
	}, nil
}
