package models

// Location - точка WGS84. Наружу всегда отдаётся в порядке (latitude, longitude).
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
