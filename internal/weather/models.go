package weather

// Forecast is the OpenWeatherMap 5-day/3-hour forecast response,
// trimmed to the fields the bot consumes.
type Forecast struct {
	Cod     string         `json:"cod"`
	Message interface{}    `json:"message"`
	List    []ForecastItem `json:"list"`
	City    ForecastCity   `json:"city"`
}

// ForecastCity identifies the city the forecast belongs to
type ForecastCity struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

// ForecastItem is one 3-hour forecast interval
type ForecastItem struct {
	Dt         int64          `json:"dt"`
	Main       MainConditions `json:"main"`
	Weather    []Condition    `json:"weather"`
	Wind       Wind           `json:"wind"`
	Clouds     Clouds         `json:"clouds"`
	Visibility int            `json:"visibility"`
	// Pop is the probability of precipitation, 0..1
	Pop  float64 `json:"pop"`
	Rain Rain    `json:"rain"`
}

// MainConditions carries temperature, humidity and pressure readings
type MainConditions struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	Humidity  int     `json:"humidity"`
	Pressure  int     `json:"pressure"`
}

// Condition is one weather classification entry
type Condition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
}

// Wind carries speed (m/s) and direction (degrees)
type Wind struct {
	Speed float64 `json:"speed"`
	Deg   float64 `json:"deg"`
}

// Clouds carries cloudiness percent
type Clouds struct {
	All int `json:"all"`
}

// Rain carries the 3-hour rain volume in mm
type Rain struct {
	ThreeHour float64 `json:"3h"`
}

// Current returns the first forecast interval, which the bot treats as
// current conditions. Returns nil when the forecast list is empty.
func (f *Forecast) Current() *ForecastItem {
	if len(f.List) == 0 {
		return nil
	}
	return &f.List[0]
}

// Upcoming returns up to the next four intervals after the current one,
// covering roughly the next 12 hours.
func (f *Forecast) Upcoming() []ForecastItem {
	if len(f.List) <= 1 {
		return nil
	}
	end := len(f.List)
	if end > 5 {
		end = 5
	}
	return f.List[1:end]
}

// Description returns the capitalized condition description of an item
func (i *ForecastItem) Description() string {
	if len(i.Weather) == 0 {
		return "N/A"
	}
	return capitalize(i.Weather[0].Description)
}

// ConditionID returns the OpenWeatherMap condition code of an item.
// 800 (clear) is assumed when the classification is missing.
func (i *ForecastItem) ConditionID() int {
	if len(i.Weather) == 0 {
		return 800
	}
	return i.Weather[0].ID
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
