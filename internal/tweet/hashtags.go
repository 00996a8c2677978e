package tweet

import (
	"strings"
	"time"
	"unicode"

	"rainbot/internal/weather"
)

// Hashtags generates the dynamic hashtag list for a city and forecast.
// Order is deterministic: city tag, the two standing tags, then the
// conditional weekend and rain tags.
func Hashtags(city string, f *weather.Forecast, now time.Time) []string {
	hashtags := []string{
		CityHashtag(city),
		"#weatherupdate",
		"#USWeather",
	}

	switch now.Weekday() {
	case time.Friday, time.Saturday, time.Sunday:
		hashtags = append(hashtags, "#WeekendWeather")
	}

	if weather.RainImminent(f) {
		hashtags = append(hashtags, "#RainyWeather")
	}

	return hashtags
}

// CityHashtag turns a city name into a hashtag, keeping only words
// made entirely of letters and digits.
func CityHashtag(city string) string {
	var b strings.Builder
	b.WriteByte('#')
	for _, word := range strings.Fields(city) {
		if isAlnum(word) {
			b.WriteString(word)
		}
	}
	return b.String()
}

func isAlnum(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
