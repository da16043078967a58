package types

import "time"

// CurrentWeather is the normalized Open-Meteo snapshot served to clients.
type CurrentWeather struct {
	Temperature int       `json:"temperature"` // rounded, °C
	Humidity    int       `json:"humidity"`    // percent
	WindSpeed   int       `json:"wind_speed"`  // rounded, km/h
	WeatherCode int       `json:"weather_code"`
	Icon        string    `json:"icon"`
	Label       string    `json:"label"`
	Advice      string    `json:"advice"`
	Indoor      bool      `json:"indoor"` // true when conditions call for indoor activities
	Location    string    `json:"location"`
	FetchedAt   time.Time `json:"fetched_at"`
}
