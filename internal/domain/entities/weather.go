package entities

// Weather is the snapshot fetched once when a session starts. It is not
// refreshed afterwards.
type Weather struct {
	Temperature int    `json:"temperature"`
	Condition   string `json:"condition"`
	Humidity    int    `json:"humidity"`
	WindSpeed   int    `json:"wind_speed"`
	FeelsLike   int    `json:"feels_like"`
}
