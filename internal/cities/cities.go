// Package cities holds the roster of cities the bot cycles through.
package cities

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// City is one roster entry. Coordinates are kept for operators who
// want to sanity-check the roster; forecasts are looked up by name.
type City struct {
	Name string  `yaml:"name"`
	Lat  float64 `yaml:"lat"`
	Lon  float64 `yaml:"lon"`
}

// Roster is an ordered list of cities
type Roster struct {
	cities []City
}

// defaultCities is the built-in roster of 10 US cities
var defaultCities = []City{
	{Name: "New York City", Lat: 40.7128, Lon: -74.0060},
	{Name: "Los Angeles", Lat: 34.0522, Lon: -118.2437},
	{Name: "Chicago", Lat: 41.8781, Lon: -87.6298},
	{Name: "Houston", Lat: 29.7604, Lon: -95.3698},
	{Name: "Phoenix", Lat: 33.4484, Lon: -112.0740},
	{Name: "Philadelphia", Lat: 39.9526, Lon: -75.1652},
	{Name: "San Antonio", Lat: 29.4241, Lon: -98.4936},
	{Name: "San Diego", Lat: 32.7157, Lon: -117.1611},
	{Name: "Dallas", Lat: 32.7767, Lon: -96.7970},
	{Name: "San Jose", Lat: 37.3382, Lon: -121.8863},
}

// Default returns the built-in roster
func Default() *Roster {
	return &Roster{cities: defaultCities}
}

// LoadFile loads a roster from a YAML file
func LoadFile(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cities file: %w", err)
	}

	var cities []City
	if err := yaml.Unmarshal(data, &cities); err != nil {
		return nil, fmt.Errorf("failed to parse cities file: %w", err)
	}

	if len(cities) == 0 {
		return nil, fmt.Errorf("cities file %s contains no cities", path)
	}

	for i, c := range cities {
		if c.Name == "" {
			return nil, fmt.Errorf("city at index %d has no name", i)
		}
	}

	return &Roster{cities: cities}, nil
}

// Load returns the roster from path if given, otherwise the default
func Load(path string) (*Roster, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// Names returns the city names in roster order
func (r *Roster) Names() []string {
	names := make([]string, len(r.cities))
	for i, c := range r.cities {
		names[i] = c.Name
	}
	return names
}

// Len returns the roster size
func (r *Roster) Len() int {
	return len(r.cities)
}

// Next determines the city following last in the cycle. An empty or
// unknown last city restarts the cycle from the first entry.
func (r *Roster) Next(last string) string {
	if last == "" {
		return r.cities[0].Name
	}
	for i, c := range r.cities {
		if c.Name == last {
			return r.cities[(i+1)%len(r.cities)].Name
		}
	}
	return r.cities[0].Name
}
