package weather

import "strings"

const defaultIcon = "🌤️"

// conditionIcons is matched top to bottom, so "light rain and mist" is rain.
var conditionIcons = []struct {
	keywords []string
	icon     string
}{
	{[]string{"clear"}, "☀️"},
	{[]string{"cloud"}, "☁️"},
	{[]string{"rain"}, "🌧️"},
	{[]string{"snow"}, "❄️"},
	{[]string{"mist", "fog"}, "🌫️"},
}

// ConditionIcon maps a condition text to a display icon by case-insensitive
// substring match.
func ConditionIcon(condition string) string {
	c := strings.ToLower(condition)
	for _, ci := range conditionIcons {
		for _, kw := range ci.keywords {
			if strings.Contains(c, kw) {
				return ci.icon
			}
		}
	}
	return defaultIcon
}
