package fruit

import (
	"time"

	"github.com/dukerupert/orchard/internal/calendar"
	"github.com/dukerupert/orchard/internal/model"
)

// roster is the fixed set of decorative images cycled by day of year.
var roster = []model.FruitImage{
	{ID: 1, Name: "Apple", Image: "/assets/apple.png", Description: "A crisp and sweet red apple"},
	{ID: 2, Name: "Apricot", Image: "/assets/apricot.png", Description: "A golden apricot with velvety skin"},
	{ID: 3, Name: "Banana", Image: "/assets/banana.png", Description: "A yellow banana full of potassium"},
	{ID: 4, Name: "Kiwi", Image: "/assets/kiwi.png", Description: "A tangy kiwi with bright green flesh"},
	{ID: 5, Name: "Mango", Image: "/assets/mango.png", Description: "A popular variety found in the Caribbean and South American countries"},
	{ID: 6, Name: "Orange", Image: "/assets/orange.png", Description: "A juicy orange packed with vitamin C"},
	{ID: 7, Name: "Peach", Image: "/assets/peach.png", Description: "A soft and fuzzy peach"},
	{ID: 8, Name: "Pear", Image: "/assets/pear.png", Description: "A sweet yellow pear"},
	{ID: 9, Name: "Pomegranate", Image: "/assets/pomegranate.png", Description: "A ruby red pomegranate with jeweled seeds"},
}

// Roster returns a copy of the image roster.
func Roster() []model.FruitImage {
	out := make([]model.FruitImage, len(roster))
	copy(out, roster)
	return out
}

// Resolve returns the image of the day for the given date. The default
// is the roster entry at (dayOfYear-1) mod len(roster). If any event on
// the date carries a photo, the earliest such event overrides the
// roster with a synthetic image wrapping its photo and url. Resolve
// always returns exactly one image.
func Resolve(date time.Time, events []model.CalendarEvent) model.FruitImage {
	for _, e := range calendar.EventsOnDate(events, date) {
		if e.Photo != "" {
			return model.FruitImage{
				ID:    0,
				Name:  "Custom",
				Image: e.Photo,
				URL:   e.URL,
			}
		}
	}

	return roster[(date.YearDay()-1)%len(roster)]
}
