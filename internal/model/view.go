package model

import "fmt"

// ViewType identifies which calendar view is being displayed. The
// values match what the grid calendar library on the client expects.
type ViewType string

const (
	ViewDay   ViewType = "timeGridDay"
	ViewWeek  ViewType = "timeGridWeek"
	ViewMonth ViewType = "dayGridMonth"
	ViewYear  ViewType = "multiMonthYear"
)

// ParseViewType validates a view type string.
func ParseViewType(s string) (ViewType, error) {
	switch v := ViewType(s); v {
	case ViewDay, ViewWeek, ViewMonth, ViewYear:
		return v, nil
	}
	return "", fmt.Errorf("unknown view type %q", s)
}
