package request_models

// EstimateRequest carries a travel profile: destination, trip length and
// daily usage hours per activity class.
type EstimateRequest struct {
	CountryID     string  `json:"country_id"`
	DurationDays  int     `json:"duration_days"`
	VideoHours    float64 `json:"video_hours"`
	MapsHours     float64 `json:"maps_hours"`
	SocialHours   float64 `json:"social_hours"`
	BrowsingHours float64 `json:"browsing_hours"`
}
