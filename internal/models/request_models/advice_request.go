package request_models

type AdviceRequest struct {
	Query string `json:"query"`
}
