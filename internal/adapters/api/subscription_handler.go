package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"weatherreminder.app/internal/core/subscription"
	"weatherreminder.app/internal/core/weather"
	"weatherreminder.app/pkg/errors"
)

// SubscribeRequest represents the HTTP request for creating a subscription
type SubscribeRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	City     string `json:"city" form:"city" binding:"required"`
	Provider string `json:"provider" form:"provider" binding:"required,provider"`
	Period   int    `json:"period" form:"period" binding:"required,period"`
}

// ChangePeriodRequest represents the HTTP request for editing a subscription's period
type ChangePeriodRequest struct {
	Period int `json:"period" form:"period" binding:"required,period"`
}

// UnsubscribeByKeyRequest identifies a subscription by email, city and provider
type UnsubscribeByKeyRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	City     string `json:"city" form:"city" binding:"required"`
	Provider string `json:"provider" form:"provider" binding:"required,provider"`
}

// SubscriptionResponse is the wire form of a subscription
type SubscriptionResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	City      string    `json:"city"`
	CityID    uint      `json:"city_id"`
	Provider  string    `json:"provider"`
	Period    int       `json:"period"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// SuccessResponse represents a successful HTTP response
type SuccessResponse struct {
	Message string `json:"message"`
}

func toSubscriptionResponse(s *subscription.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		ID:        s.ID,
		Email:     s.Email,
		City:      s.City,
		CityID:    s.CityID,
		Provider:  s.Provider.String(),
		Period:    s.Period.Hours(),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// subscribe handles POST /api/subscriptions requests
func (s *HTTPServerAdapter) subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.Debug("Request binding error", "error", err)
		s.handleError(c, errors.NewValidationError("Invalid request format"))
		return
	}

	sub, err := s.subscriptionUseCase.Subscribe(c.Request.Context(), subscription.SubscribeParams{
		Email:    req.Email,
		City:     req.City,
		Provider: weather.ProviderFromString(req.Provider),
		Period:   subscription.Period(req.Period),
	})
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toSubscriptionResponse(sub))
}

// listSubscriptions handles GET /api/subscriptions?email= requests
func (s *HTTPServerAdapter) listSubscriptions(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		s.handleError(c, errors.NewValidationError("email parameter is required"))
		return
	}

	subs, err := s.subscriptionUseCase.ListSubscriptions(c.Request.Context(), email)
	if err != nil {
		s.handleError(c, err)
		return
	}

	out := make([]SubscriptionResponse, 0, len(subs))
	for _, sub := range subs {
		out = append(out, toSubscriptionResponse(sub))
	}
	c.JSON(http.StatusOK, out)
}

// getSubscription handles GET /api/subscriptions/:id requests
func (s *HTTPServerAdapter) getSubscription(c *gin.Context) {
	id, ok := s.pathID(c)
	if !ok {
		return
	}

	sub, err := s.subscriptionUseCase.GetSubscription(c.Request.Context(), id)
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSubscriptionResponse(sub))
}

// changePeriod handles PUT /api/subscriptions/:id requests
func (s *HTTPServerAdapter) changePeriod(c *gin.Context) {
	id, ok := s.pathID(c)
	if !ok {
		return
	}

	var req ChangePeriodRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.Debug("Request binding error", "error", err)
		s.handleError(c, errors.NewValidationError("Invalid request format"))
		return
	}

	sub, err := s.subscriptionUseCase.ChangePeriod(c.Request.Context(), subscription.ChangePeriodParams{
		SubscriptionID: id,
		Period:         subscription.Period(req.Period),
	})
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSubscriptionResponse(sub))
}

// unsubscribe handles DELETE /api/subscriptions/:id requests
func (s *HTTPServerAdapter) unsubscribe(c *gin.Context) {
	id, ok := s.pathID(c)
	if !ok {
		return
	}

	if err := s.subscriptionUseCase.Unsubscribe(c.Request.Context(), subscription.UnsubscribeParams{SubscriptionID: id}); err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Unsubscribed successfully"})
}

// unsubscribeByKey handles DELETE /api/subscriptions requests carrying email, city and provider
func (s *HTTPServerAdapter) unsubscribeByKey(c *gin.Context) {
	var req UnsubscribeByKeyRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.Debug("Request binding error", "error", err)
		s.handleError(c, errors.NewValidationError("Invalid request format"))
		return
	}

	err := s.subscriptionUseCase.UnsubscribeByKey(c.Request.Context(), subscription.UnsubscribeByKeyParams{
		Email:    req.Email,
		City:     req.City,
		Provider: weather.ProviderFromString(req.Provider),
	})
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Unsubscribed successfully"})
}

// deleteCity handles DELETE /api/cities/:id requests
func (s *HTTPServerAdapter) deleteCity(c *gin.Context) {
	id, ok := s.pathID(c)
	if !ok {
		return
	}

	if err := s.subscriptionUseCase.DeleteCity(c.Request.Context(), subscription.DeleteCityParams{CityID: id}); err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "City deleted"})
}

// pathID parses the :id path parameter, answering 400 when it is not a positive integer
func (s *HTTPServerAdapter) pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		s.handleError(c, errors.NewValidationError("id must be a positive integer"))
		return 0, false
	}
	return uint(id), true
}
