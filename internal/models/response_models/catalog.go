package response_models

type CountryResponse struct {
	ID        string `json:"id"`
	NameEN    string `json:"name_en"`
	NameES    string `json:"name_es"`
	Continent string `json:"continent"`
	Currency  string `json:"currency"`
	Flag      string `json:"flag"`
}

type OperatorResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	CountryID    string   `json:"country_id"`
	Technologies []string `json:"technologies"`
	Website      string   `json:"website,omitempty"`
	Coverage     string   `json:"coverage,omitempty"`
}

type PlanResponse struct {
	ID           string   `json:"id"`
	OperatorID   string   `json:"operator_id"`
	Name         string   `json:"name"`
	DataGB       int64    `json:"data_gb"` // -1 for unlimited
	DataLabel    string   `json:"data_label"`
	Price        float64  `json:"price"`
	Currency     string   `json:"currency"`
	ValidityDays int      `json:"validity_days"`
	SimType      string   `json:"sim_type"`
	Speed5G      bool     `json:"speed_5g"`
	Features     []string `json:"features"`
}

type ReviewResponse struct {
	ID       string `json:"id"`
	PlanID   string `json:"plan_id"`
	UserName string `json:"user_name"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	Date     string `json:"date"`
}
