package services

import (
	"simconnect/internal/models/db_models"
	"simconnect/internal/models/response_models"
)

func toCountryResponse(c db_models.Country) response_models.CountryResponse {
	return response_models.CountryResponse{
		ID:        c.ID,
		NameEN:    c.NameEN,
		NameES:    c.NameES,
		Continent: c.Continent,
		Currency:  c.Currency,
		Flag:      c.Flag,
	}
}

func toOperatorResponse(o db_models.Operator) response_models.OperatorResponse {
	return response_models.OperatorResponse{
		ID:           o.ID,
		Name:         o.Name,
		CountryID:    o.CountryID,
		Technologies: o.Technologies,
		Website:      o.Website,
		Coverage:     o.Coverage,
	}
}

func toPlanResponse(p db_models.Plan) response_models.PlanResponse {
	return response_models.PlanResponse{
		ID:           p.ID,
		OperatorID:   p.OperatorID,
		Name:         p.Name,
		DataGB:       int64(p.DataGB),
		DataLabel:    p.DataGB.String(),
		Price:        p.Price,
		Currency:     p.Currency,
		ValidityDays: p.ValidityDays,
		SimType:      string(p.SimType),
		Speed5G:      p.Speed5G,
		Features:     p.Features,
	}
}

func toReviewResponse(r db_models.Review) response_models.ReviewResponse {
	return response_models.ReviewResponse{
		ID:       r.ID,
		PlanID:   r.PlanID,
		UserName: r.UserName,
		Rating:   r.Rating,
		Comment:  r.Comment,
		Date:     r.Date,
	}
}
