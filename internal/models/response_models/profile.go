package response_models

type ProfileResponse struct {
	Name          string   `json:"name"`
	Points        int      `json:"points"`
	Level         string   `json:"level"`
	PointsToNext  int      `json:"points_to_next_level"`
	Badges        []string `json:"badges"`
	Contributions int      `json:"contributions"`
}
