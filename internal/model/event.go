package model

// TimeLayout is the local date-time format events are stored in.
// It is zero-padded and fixed-width, so lexical order on the raw
// strings matches chronological order.
const TimeLayout = "2006-01-02T15:04"

// DateLayout is the date portion of TimeLayout.
const DateLayout = "2006-01-02"

// CalendarEvent is a single calendar entry. Start and End are local
// date-time strings in TimeLayout; they are stored and compared as
// written, never converted to UTC.
type CalendarEvent struct {
	ID       string `json:"id"`
	UID      int64  `json:"uid"`
	Title    string `json:"title"`
	Category string `json:"category,omitempty"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Color    string `json:"color"`
	Photo    string `json:"photo,omitempty"`
	URL      string `json:"url,omitempty"`
}

// EventPatch is a partial update of a CalendarEvent. Nil fields are
// left untouched by a merge.
type EventPatch struct {
	UID      *int64  `json:"uid,omitempty"`
	Title    *string `json:"title,omitempty"`
	Category *string `json:"category,omitempty"`
	Start    *string `json:"start,omitempty"`
	End      *string `json:"end,omitempty"`
	Color    *string `json:"color,omitempty"`
	Photo    *string `json:"photo,omitempty"`
	URL      *string `json:"url,omitempty"`
}

// Apply merges the patch into the event.
func (p EventPatch) Apply(e *CalendarEvent) {
	if p.UID != nil {
		e.UID = *p.UID
	}
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.Start != nil {
		e.Start = *p.Start
	}
	if p.End != nil {
		e.End = *p.End
	}
	if p.Color != nil {
		e.Color = *p.Color
	}
	if p.Photo != nil {
		e.Photo = *p.Photo
	}
	if p.URL != nil {
		e.URL = *p.URL
	}
}

// Event categories. They only affect the display glyph.
const (
	CategoryMeeting     = "meeting"
	CategoryPhone       = "phone"
	CategoryAppointment = "appointment"
	CategoryAlarm       = "alarm"
)
