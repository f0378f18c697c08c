package model

// FruitImage is one entry in the decorative image-of-the-day roster,
// or a synthetic record wrapping an event photo.
type FruitImage struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
}
