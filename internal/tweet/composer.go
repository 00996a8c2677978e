// Package tweet assembles tweet bodies, hashtags and image alt text
// from forecast data.
package tweet

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"rainbot/internal/weather"
)

// MaxTweetChars is the tweet length limit
const MaxTweetChars = 280

// MaxAltTextChars is the media alt text length limit
const MaxAltTextChars = 1000

// Components holds the assembled pieces of one tweet
type Components struct {
	Lines    []string
	Hashtags []string
	AltText  string
}

// Compose builds the tweet components for a city. now must already be
// in the bot's timezone; forecast interval times are converted to it.
func Compose(city string, f *weather.Forecast, now time.Time) *Components {
	return &Components{
		Lines:    bodyLines(city, f, now),
		Hashtags: Hashtags(city, f, now),
		AltText:  AltText(city, f, now),
	}
}

// bodyLines builds the main tweet content
func bodyLines(city string, f *weather.Forecast, now time.Time) []string {
	current := f.Current()
	if current == nil {
		return []string{"Could not generate weather report: Data missing."}
	}

	rainMessage := "☔ No significant rain expected soon."
	if weather.RainExpected(f) {
		rainMessage = fmt.Sprintf("☔ Chance of rain: %d%%", weather.RainChancePercent(f))
	}

	return []string{
		fmt.Sprintf("Hello, %s!👋, %s weather as of %s:", city, now.Format("Monday"), now.Format("03:04 PM")),
		fmt.Sprintf("☁️ Sky: %s", current.Description()),
		fmt.Sprintf("🌡️ Temp: %d°C (feels: %d°C)", weather.RoundTemp(current.Main.Temp), weather.RoundTemp(current.Main.FeelsLike)),
		fmt.Sprintf("💧 Humidity: %d%%", current.Main.Humidity),
		fmt.Sprintf("💨 Wind: %d km/h from the %s", weather.WindSpeedKPH(current.Wind.Speed), weather.DegToCompass(current.Wind.Deg)),
		rainMessage,
		"Have a great day! 😊",
	}
}

// Text assembles the final tweet, dropping trailing hashtags until it
// fits within the tweet length limit.
func (c *Components) Text() string {
	body := strings.Join(c.Lines, "\n")

	hashtags := make([]string, len(c.Hashtags))
	copy(hashtags, c.Hashtags)

	full := body
	if len(hashtags) > 0 {
		full = body + "\n" + strings.Join(hashtags, " ")
	}

	for len(hashtags) > 0 && utf8.RuneCountInString(full) > MaxTweetChars {
		hashtags = hashtags[:len(hashtags)-1]
		if len(hashtags) > 0 {
			full = body + "\n" + strings.Join(hashtags, " ")
		} else {
			full = body
		}
	}

	return full
}

// AltText generates detailed image alt text: current conditions plus
// the 12-hour outlook, truncated to the media alt text limit.
func AltText(city string, f *weather.Forecast, now time.Time) string {
	current := f.Current()
	if current == nil {
		return fmt.Sprintf("Weather report for %s is unavailable.", city)
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Current weather in %s at %s:\n", city, now.Format("03:04 PM"))
	fmt.Fprintf(&b,
		"It's about %d°C, but feels like %d°C with %s skies. Humidity is %d%%, pressure %d hPa. Wind is %d km/h from the %s. Visibility around %.0f km, and cloudiness is %d%%. \n\n",
		weather.RoundTemp(current.Main.Temp),
		weather.RoundTemp(current.Main.FeelsLike),
		strings.ToLower(current.Description()),
		current.Main.Humidity,
		current.Main.Pressure,
		weather.WindSpeedKPH(current.Wind.Speed),
		weather.DegToCompass(current.Wind.Deg),
		float64(current.Visibility)/1000,
		current.Clouds.All,
	)

	b.WriteString("-------------------><-----------------------\n\n")
	b.WriteString("Here's what to expect for the next 12 hours:\n")

	upcoming := f.Upcoming()
	if len(upcoming) == 0 {
		b.WriteString("Hourly forecast data is not available.")
	} else {
		for _, item := range upcoming {
			local := time.Unix(item.Dt, 0).In(now.Location())

			rainInfo := ""
			if pop := int(item.Pop * 100); pop > 0 {
				rainInfo = fmt.Sprintf("Chance of rain: %d%%.", pop)
				if item.Rain.ThreeHour > 0 {
					rainInfo += fmt.Sprintf(" (%.1fmm expected).", item.Rain.ThreeHour)
				}
			}

			fmt.Fprintf(&b, "By %s: Expect %s around %d°C. %s\n",
				local.Format("03 PM"), item.Description(), weather.RoundTemp(item.Main.Temp), rainInfo)
		}
	}

	altText := b.String()
	if utf8.RuneCountInString(altText) > MaxAltTextChars {
		runes := []rune(altText)
		altText = string(runes[:MaxAltTextChars-3]) + "..."
	}

	return altText
}
