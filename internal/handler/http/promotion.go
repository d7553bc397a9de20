package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/awash-hr/job-portal/internal/domain/promotion"
	"github.com/awash-hr/job-portal/internal/handler/http/middleware"
	"github.com/awash-hr/job-portal/internal/handler/http/response"
)

type PromotionHandler interface {
	RecordPromotion(w http.ResponseWriter, r *http.Request)
	ListPromotions(w http.ResponseWriter, r *http.Request)
	ListMyPromotions(w http.ResponseWriter, r *http.Request)
}

type promotionHandlerImpl struct {
	promotionService promotion.PromotionService
}

func NewPromotionHandler(promotionService promotion.PromotionService) PromotionHandler {
	return &promotionHandlerImpl{promotionService: promotionService}
}

type recordPromotionBody struct {
	EmployeeID string `json:"employee_id"`
	promotion.RecordPromotionRequest
}

// RecordPromotion handles POST /promotions
func (h *promotionHandlerImpl) RecordPromotion(w http.ResponseWriter, r *http.Request) {
	var body recordPromotionBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		slog.Error("RecordPromotion decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	body.EmployeeID = strings.TrimSpace(body.EmployeeID)
	if body.EmployeeID == "" {
		response.ValidationError(w, map[string]string{employeeIDParam: "employee_id is required"})
		return
	}

	resp, err := h.promotionService.RecordPromotion(r.Context(), middleware.IdentityFrom(r.Context()), body.EmployeeID, body.RecordPromotionRequest)
	if err != nil {
		slog.Error("RecordPromotion service error", "error", err, "employee_id", body.EmployeeID)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Promotion recorded successfully", resp)
}

// ListPromotions handles GET /promotions, optionally filtered by employee_id
func (h *promotionHandlerImpl) ListPromotions(w http.ResponseWriter, r *http.Request) {
	employeeID := strings.TrimSpace(r.URL.Query().Get(employeeIDParam))

	resp, err := h.promotionService.ListPromotions(r.Context(), middleware.IdentityFrom(r.Context()), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// ListMyPromotions handles GET /me/promotions
func (h *promotionHandlerImpl) ListMyPromotions(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFrom(r.Context())

	resp, err := h.promotionService.ListPromotions(r.Context(), identity, identity.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}
