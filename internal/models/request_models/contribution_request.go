package request_models

type AddOperatorRequest struct {
	Name         string   `json:"name"`
	CountryID    string   `json:"country_id"`
	Technologies []string `json:"technologies"`
	Website      string   `json:"website"`
	Coverage     string   `json:"coverage"`
}

type AddPlanRequest struct {
	OperatorID   string   `json:"operator_id"`
	Name         string   `json:"name"`
	DataGB       int64    `json:"data_gb"` // -1 for unlimited
	Price        float64  `json:"price"`
	Currency     string   `json:"currency"`
	ValidityDays int      `json:"validity_days"`
	SimType      string   `json:"sim_type"`
	Speed5G      bool     `json:"speed_5g"`
	Features     []string `json:"features"`
}

type AddReviewRequest struct {
	UserName string `json:"user_name"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}
