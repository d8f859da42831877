package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"aquagest/internal/models/request_models"
	"aquagest/internal/services"
	"aquagest/pkg/utils"
)

type ComodatoController struct {
	comodatoService services.ComodatoServiceInterface
}

func NewComodatoController(comodatoService services.ComodatoServiceInterface) *ComodatoController {
	return &ComodatoController{
		comodatoService: comodatoService,
	}
}

// ProcessFirstCycle godoc
// @Summary Provision first-cycle comodatos
// @Description Issue loaned equipment for a subscription's first billing cycle; idempotent and best-effort per product
// @Tags Comodatos
// @Accept json
// @Produce json
// @Param request body request_models.FirstCycleComodatoRequest true "Subscription and delivery date"
// @Success 200 {object} response_models.FirstCycleResult
// @Failure 404 {object} utils.APIResponse
// @Router /comodatos/first-cycle [post]
func (cc *ComodatoController) ProcessFirstCycle(c *gin.Context) {

	var req request_models.FirstCycleComodatoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "subscription_id and delivery_date are required")
		return
	}

	subscriptionID, err := uuid.Parse(req.SubscriptionID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid subscription ID")
		return
	}

	deliveryDate, err := utils.ParseDate(req.DeliveryDate)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid delivery_date, expected YYYY-MM-DD")
		return
	}

	result, err := cc.comodatoService.ProcessFirstCycleComodato(c.Request.Context(), subscriptionID, deliveryDate)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "First-cycle comodato processing finished")
}

// GetActiveByCustomer godoc
// @Summary List a customer's active comodatos
// @Tags Comodatos
// @Produce json
// @Param customerId path string true "Customer ID"
// @Success 200 {array} response_models.ActiveComodatoResponse
// @Router /customers/{customerId}/comodatos [get]
func (cc *ComodatoController) GetActiveByCustomer(c *gin.Context) {

	customerID, err := uuid.Parse(c.Param("customerId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	comodatos, err := cc.comodatoService.GetActiveComodatosByCustomer(c.Request.Context(), customerID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, comodatos, "Active comodatos fetched successfully")
}

// ValidateExisting godoc
// @Summary Check products against a customer's active comodatos
// @Description Subscription-scoped when subscription_id is given, otherwise customer-scoped
// @Tags Comodatos
// @Accept json
// @Produce json
// @Param request body request_models.ValidateComodatosRequest true "Customer, products and optional subscription"
// @Success 200 {object} response_models.ConflictCheckResult
// @Router /comodatos/validate [post]
func (cc *ComodatoController) ValidateExisting(c *gin.Context) {

	var req request_models.ValidateComodatosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "customer_id and product_ids are required")
		return
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	productIDs := make([]uuid.UUID, 0, len(req.ProductIDs))
	for _, raw := range req.ProductIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid product ID: "+raw)
			return
		}
		productIDs = append(productIDs, id)
	}

	var subscriptionID *uuid.UUID
	if req.SubscriptionID != nil {
		id, err := uuid.Parse(*req.SubscriptionID)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid subscription ID")
			return
		}
		subscriptionID = &id
	}

	result, err := cc.comodatoService.ValidateExistingComodatos(c.Request.Context(), customerID, productIDs, subscriptionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Comodato validation finished")
}

// ReturnComodato godoc
// @Summary Close a comodato
// @Description Mark loaned equipment as returned; return_date defaults to today
// @Tags Comodatos
// @Accept json
// @Produce json
// @Param comodatoId path string true "Comodato ID"
// @Param request body request_models.ReturnComodatoRequest false "Return date"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /comodatos/{comodatoId}/return [post]
func (cc *ComodatoController) ReturnComodato(c *gin.Context) {

	comodatoID, err := uuid.Parse(c.Param("comodatoId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid comodato ID")
		return
	}

	var req request_models.ReturnComodatoRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	returnDate := utils.TodayAR()
	if req.ReturnDate != "" {
		returnDate, err = utils.ParseDate(req.ReturnDate)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid return_date, expected YYYY-MM-DD")
			return
		}
	}

	if err := cc.comodatoService.ReturnComodato(c.Request.Context(), comodatoID, returnDate); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Comodato returned successfully")
}
