package models

// CurrentWeather is the inner current_weather object returned by Open-Meteo.
// Fields are pointers so a missing key is distinguishable from a zero value;
// the proxy treats any nil field as a malformed upstream response.
type CurrentWeather struct {
	Temperature *float64 `json:"temperature"`
	Windspeed   *float64 `json:"windspeed"`
	Time        *string  `json:"time"`
}

// ForecastResponse is the subset of the Open-Meteo forecast payload the proxy
// consumes. CurrentWeather is nil when the key is absent.
type ForecastResponse struct {
	CurrentWeather *CurrentWeather `json:"current_weather"`
}

// Report is the reshaped payload returned to callers. Latitude and Longitude
// echo the original query-string values rather than reformatted floats, so
// no precision is lost round-tripping through float64.
type Report struct {
	Latitude    string  `json:"latitude"`
	Longitude   string  `json:"longitude"`
	Temperatura float64 `json:"temperatura"`
	Vento       float64 `json:"vento"`
	Hora        string  `json:"hora"`
}
