package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"simconnect/internal/models/response_models"
	"simconnect/internal/repositories"
	"simconnect/pkg/utils"
)

// The advisor sends a trimmed snapshot of the catalog, not the whole store:
// enough context for grounded answers while staying inside token limits.
const (
	advisorMaxOperators = 10
	advisorMaxPlans     = 5
)

type AdvisorServiceInterface interface {
	Advise(ctx context.Context, query string) (response_models.AdviceResponse, error)
}

type AdvisorService struct {
	catalogRepo repositories.CatalogRepository
	client      utils.AdvisorClientInterface
}

func NewAdvisorService(
	catalogRepo repositories.CatalogRepository,
	client utils.AdvisorClientInterface,
) AdvisorServiceInterface {
	return &AdvisorService{
		catalogRepo: catalogRepo,
		client:      client,
	}
}

// Advise relays the traveler's question to the language-model service along
// with catalog context. It never mutates the store.
func (s *AdvisorService) Advise(ctx context.Context, query string) (response_models.AdviceResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return response_models.AdviceResponse{}, utils.ErrInvalidInput
	}

	instruction, err := s.buildSystemInstruction(ctx)
	if err != nil {
		return response_models.AdviceResponse{}, err
	}

	answer, err := s.client.GenerateAdvice(ctx, instruction, query)
	if err != nil {
		log.Printf("Advisor error: %v", err)
		return response_models.AdviceResponse{}, utils.ErrAdvisorUnavailable
	}

	return response_models.AdviceResponse{Answer: answer}, nil
}

func (s *AdvisorService) buildSystemInstruction(ctx context.Context) (string, error) {
	countries, err := s.catalogRepo.ListCountries(ctx)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	operators, err := s.catalogRepo.ListOperators(ctx, "")
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	plans, err := s.catalogRepo.ListPlans(ctx, "")
	if err != nil {
		return "", utils.ErrDatabaseError
	}

	countryNames := make([]string, 0, len(countries))
	for _, country := range countries {
		countryNames = append(countryNames, country.NameEN)
	}

	type operatorContext struct {
		Name     string `json:"name"`
		Coverage string `json:"coverage"`
	}
	type planContext struct {
		Name  string  `json:"name"`
		Price float64 `json:"price"`
		Data  int64   `json:"data"`
	}

	snapshot := struct {
		Operators    []operatorContext `json:"operators"`
		ExamplePlans []planContext     `json:"example_plans"`
	}{}
	for i, operator := range operators {
		if i == advisorMaxOperators {
			break
		}
		snapshot.Operators = append(snapshot.Operators, operatorContext{
			Name:     operator.Name,
			Coverage: operator.Coverage,
		})
	}
	for i, plan := range plans {
		if i == advisorMaxPlans {
			break
		}
		snapshot.ExamplePlans = append(snapshot.ExamplePlans, planContext{
			Name:  plan.Name,
			Price: plan.Price,
			Data:  int64(plan.DataGB),
		})
	}

	contextData, err := json.Marshal(snapshot)
	if err != nil {
		return "", utils.ErrDatabaseError
	}

	return fmt.Sprintf(`You are the AI assistant for "Global SIM Connect".
Your goal is to recommend the best SIM cards or mobile plans for travelers based on the user's query.

You have access to the following countries in the database:
%s

And this relevant data context (operators/plans, data value -1 means unlimited):
%s

Keep your answers concise, friendly, and practical.
If the user asks about a country we have data for, recommend specific plans from the context.
If the user asks about a country we don't have, provide general advice for that region.`,
		strings.Join(countryNames, ", "), contextData), nil
}
