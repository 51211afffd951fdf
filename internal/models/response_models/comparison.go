package response_models

// ComparisonPoint positions a plan on the price/volume chart. Unlimited plans
// are plotted at 1.2x the largest finite allowance in the set so they stay on
// the axis.
type ComparisonPoint struct {
	PlanID    string  `json:"plan_id"`
	Name      string  `json:"name"`
	X         int64   `json:"x"` // gigabytes
	Y         float64 `json:"y"` // price
	Currency  string  `json:"currency"`
	DataLabel string  `json:"data_label"`
}

type ComparisonResponse struct {
	Plans  []PlanResponse    `json:"plans"`
	Points []ComparisonPoint `json:"points"`
}
