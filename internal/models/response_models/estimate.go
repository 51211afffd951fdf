package response_models

// EstimateResponse reports the projected volume for the trip and the cheapest
// plan that covers it. BestPlan is nil when no candidate survives filtering;
// that is a valid outcome, not an error.
type EstimateResponse struct {
	TotalGBNeeded int64         `json:"total_gb_needed"`
	DailyGB       float64       `json:"daily_gb"`
	BestPlan      *PlanResponse `json:"best_plan"`
}
