package response_models

type AdviceResponse struct {
	Answer string `json:"answer"`
}
