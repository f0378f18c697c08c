package model

// Settings is the session-scoped display configuration. It lives in
// memory only and resets when the process restarts.
type Settings struct {
	LoggedIn        bool  `json:"loggedin"`
	UID             int64 `json:"uid"`
	WeekNumbers     bool  `json:"weeknumbers"`
	WeekdayInitials bool  `json:"weekdayinitials"`
	DayNavigator    bool  `json:"daynavigator"`
	WeekNavigator   bool  `json:"weeknavigator"`
	MonthNavigator  bool  `json:"monthnavigator"`
	YearNavigator   bool  `json:"yearnavigator"`
}

// SettingsPatch is a partial update of Settings.
type SettingsPatch struct {
	LoggedIn        *bool  `json:"loggedin,omitempty"`
	UID             *int64 `json:"uid,omitempty"`
	WeekNumbers     *bool  `json:"weeknumbers,omitempty"`
	WeekdayInitials *bool  `json:"weekdayinitials,omitempty"`
	DayNavigator    *bool  `json:"daynavigator,omitempty"`
	WeekNavigator   *bool  `json:"weeknavigator,omitempty"`
	MonthNavigator  *bool  `json:"monthnavigator,omitempty"`
	YearNavigator   *bool  `json:"yearnavigator,omitempty"`
}

// Apply merges the patch into the settings.
func (p SettingsPatch) Apply(s *Settings) {
	if p.LoggedIn != nil {
		s.LoggedIn = *p.LoggedIn
	}
	if p.UID != nil {
		s.UID = *p.UID
	}
	if p.WeekNumbers != nil {
		s.WeekNumbers = *p.WeekNumbers
	}
	if p.WeekdayInitials != nil {
		s.WeekdayInitials = *p.WeekdayInitials
	}
	if p.DayNavigator != nil {
		s.DayNavigator = *p.DayNavigator
	}
	if p.WeekNavigator != nil {
		s.WeekNavigator = *p.WeekNavigator
	}
	if p.MonthNavigator != nil {
		s.MonthNavigator = *p.MonthNavigator
	}
	if p.YearNavigator != nil {
		s.YearNavigator = *p.YearNavigator
	}
}

// DefaultSettings returns the settings a fresh session starts with.
func DefaultSettings() Settings {
	return Settings{
		LoggedIn:        false,
		UID:             1,
		WeekNumbers:     true,
		WeekdayInitials: true,
		DayNavigator:    true,
		WeekNavigator:   true,
		MonthNavigator:  true,
		YearNavigator:   true,
	}
}
