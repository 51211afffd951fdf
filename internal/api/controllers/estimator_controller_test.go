package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"simconnect/internal/models/request_models"
	"simconnect/internal/models/response_models"
	"simconnect/pkg/middleware"
	"simconnect/pkg/utils"
)

type stubEstimatorService struct {
	resp response_models.EstimateResponse
	err  error
	got  request_models.EstimateRequest
}

func (s *stubEstimatorService) Estimate(_ context.Context, req request_models.EstimateRequest) (response_models.EstimateResponse, error) {
	s.got = req
	return s.resp, s.err
}

func newEstimateRouter(svc *stubEstimatorService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.POST("/estimate", NewEstimatorController(svc).Estimate)
	return r
}

func TestEstimateEndpointReturnsEnvelope(t *testing.T) {
	best := response_models.PlanResponse{ID: "plan-1", Name: "Unlimited", DataGB: -1, Price: 15}
	svc := &stubEstimatorService{resp: response_models.EstimateResponse{
		TotalGBNeeded: 11,
		DailyGB:       1.46,
		BestPlan:      &best,
	}}
	router := newEstimateRouter(svc)

	body := `{"country_id":"jp","duration_days":7,"video_hours":1,"maps_hours":1,"social_hours":2,"browsing_hours":2}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/estimate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, w.Header().Get("X-Trace-ID"))

	var envelope utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Equal(t, "success", envelope.Status)
	require.NotEmpty(t, envelope.TraceID)

	require.Equal(t, "jp", svc.got.CountryID)
	require.Equal(t, 7, svc.got.DurationDays)

	data, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	var resp response_models.EstimateResponse
	require.NoError(t, json.Unmarshal(data, &resp))
	require.EqualValues(t, 11, resp.TotalGBNeeded)
	require.NotNil(t, resp.BestPlan)
	require.Equal(t, "plan-1", resp.BestPlan.ID)
}

func TestEstimateEndpointRejectsMalformedBody(t *testing.T) {
	router := newEstimateRouter(&stubEstimatorService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/estimate", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEstimateEndpointMapsServiceErrors(t *testing.T) {
	svc := &stubEstimatorService{err: utils.ErrInvalidDuration}
	router := newEstimateRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/estimate", strings.NewReader(`{"country_id":"jp","duration_days":0}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var envelope utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Equal(t, "error", envelope.Status)
}
