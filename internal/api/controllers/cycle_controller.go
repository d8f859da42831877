package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"aquagest/internal/models/request_models"
	"aquagest/internal/services"
	"aquagest/pkg/utils"
)

type CycleController struct {
	billingService  services.BillingServiceInterface
	comodatoService services.ComodatoServiceInterface
}

func NewCycleController(
	billingService services.BillingServiceInterface,
	comodatoService services.ComodatoServiceInterface,
) *CycleController {
	return &CycleController{
		billingService:  billingService,
		comodatoService: comodatoService,
	}
}

// CreateCycle godoc
// @Summary Create a billing cycle
// @Description Create a billing cycle for a subscription; the first cycle also triggers comodato provisioning
// @Tags Billing
// @Accept json
// @Produce json
// @Param request body request_models.CreateCycleRequest true "Subscription ID and cycle bounds"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /cycles [post]
func (cc *CycleController) CreateCycle(c *gin.Context) {

	var req request_models.CreateCycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "subscription_id, cycle_start and cycle_end are required")
		return
	}

	subscriptionID, err := uuid.Parse(req.SubscriptionID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid subscription ID")
		return
	}

	cycleStart, err := utils.ParseDate(req.CycleStart)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid cycle_start, expected YYYY-MM-DD")
		return
	}
	cycleEnd, err := utils.ParseDate(req.CycleEnd)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid cycle_end, expected YYYY-MM-DD")
		return
	}

	cycle, err := cc.billingService.CreateCycle(c.Request.Context(), subscriptionID, cycleStart, cycleEnd)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	// First-cycle provisioning is best-effort: the cycle stands even when
	// equipment issuance fails, the summary is reviewed by a human.
	if cycle.IsFirstCycle {
		if _, err := cc.comodatoService.ProcessFirstCycleComodato(c.Request.Context(), subscriptionID, cycleStart); err != nil {
			log.WithFields(log.Fields{
				"subscription_id": subscriptionID,
			}).WithError(err).Warn("first-cycle comodato provisioning failed")
		}
	}

	utils.RespondSuccess(c, cycle, "Billing cycle created successfully")
}

// GetCyclesBySubscription godoc
// @Summary List billing cycles of a subscription
// @Tags Billing
// @Produce json
// @Param subscriptionId path string true "Subscription ID"
// @Success 200 {array} response_models.CycleResponse
// @Router /subscriptions/{subscriptionId}/cycles [get]
func (cc *CycleController) GetCyclesBySubscription(c *gin.Context) {

	subscriptionID, err := uuid.Parse(c.Param("subscriptionId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid subscription ID")
		return
	}

	cycles, err := cc.billingService.GetCyclesBySubscription(c.Request.Context(), subscriptionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, cycles, "Cycles fetched successfully")
}
