package weather

import "math"

// compassDirs are the 16 points of the compass rose
var compassDirs = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// DegToCompass converts wind degrees to a cardinal compass direction
func DegToCompass(deg float64) string {
	ix := int((deg + 11.25) / 22.5)
	return compassDirs[ix%16]
}

// RainChancePercent computes the chance of rain over the next 12 hours
// (the four intervals after the current one). The chance is the highest
// probability of precipitation seen, floored at 25% whenever any
// interval reports actual rain volume.
func RainChancePercent(f *Forecast) int {
	chance := 0
	for _, item := range f.Upcoming() {
		pop := int(item.Pop * 100)
		if pop > chance {
			chance = pop
		}
		if item.Rain.ThreeHour > 0 && chance < 25 {
			chance = 25
		}
	}
	return chance
}

// RainExpected reports whether the rain chance crosses the threshold
// used for the tweet's rain message.
func RainExpected(f *Forecast) bool {
	return RainChancePercent(f) >= 20
}

// RainImminent reports whether rain-class conditions show up in the
// next 12 hours: a thunderstorm/drizzle/rain/snow condition code
// (200-599), a precipitation probability above 20%, or any reported
// rain volume.
func RainImminent(f *Forecast) bool {
	for _, item := range f.Upcoming() {
		id := item.ConditionID()
		if (id >= 200 && id < 600) || item.Pop > 0.2 || item.Rain.ThreeHour > 0 {
			return true
		}
	}
	return false
}

// WindSpeedKPH converts m/s wind speed to rounded km/h
func WindSpeedKPH(speedMS float64) int {
	return int(math.Round(speedMS * 3.6))
}

// RoundTemp rounds a temperature to the nearest whole degree
func RoundTemp(t float64) int {
	return int(math.Round(t))
}
