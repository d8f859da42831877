package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"aquagest/internal/models/request_models"
	"aquagest/internal/services"
	"aquagest/pkg/utils"
)

type ScheduleController struct {
	scheduleService services.ScheduleServiceInterface
}

func NewScheduleController(scheduleService services.ScheduleServiceInterface) *ScheduleController {
	return &ScheduleController{
		scheduleService: scheduleService,
	}
}

// CreateSchedule godoc
// @Summary Create a weekly delivery schedule
// @Description Add a delivery window ("HH:MM" or "HH:MM-HH:MM") for a subscription on a weekday
// @Tags Schedules
// @Accept json
// @Produce json
// @Param request body request_models.CreateScheduleRequest true "Subscription, weekday and time"
// @Success 200 {object} response_models.ScheduleResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /schedules [post]
func (sc *ScheduleController) CreateSchedule(c *gin.Context) {

	var req request_models.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "subscription_id, day_of_week and scheduled_time are required")
		return
	}

	subscriptionID, err := uuid.Parse(req.SubscriptionID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid subscription ID")
		return
	}

	schedule, err := sc.scheduleService.CreateSchedule(c.Request.Context(), subscriptionID, req.DayOfWeek, req.ScheduledTime)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, schedule, "Delivery schedule created successfully")
}

// UpdateSchedule godoc
// @Summary Update a delivery schedule
// @Description Change day and/or time of an existing schedule; omitted fields keep their values
// @Tags Schedules
// @Accept json
// @Produce json
// @Param scheduleId path string true "Schedule ID"
// @Param request body request_models.UpdateScheduleRequest true "Fields to change"
// @Success 200 {object} response_models.ScheduleResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /schedules/{scheduleId} [put]
func (sc *ScheduleController) UpdateSchedule(c *gin.Context) {

	scheduleID, err := uuid.Parse(c.Param("scheduleId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid schedule ID")
		return
	}

	var req request_models.UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.DayOfWeek == nil && req.ScheduledTime == nil {
		utils.RespondError(c, http.StatusBadRequest, "At least one of day_of_week or scheduled_time is required")
		return
	}

	schedule, err := sc.scheduleService.UpdateSchedule(c.Request.Context(), scheduleID, services.ScheduleChanges{
		DayOfWeek:     req.DayOfWeek,
		ScheduledTime: req.ScheduledTime,
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, schedule, "Delivery schedule updated successfully")
}

// GetSchedulesBySubscription godoc
// @Summary List delivery schedules of a subscription
// @Tags Schedules
// @Produce json
// @Param subscriptionId path string true "Subscription ID"
// @Success 200 {array} response_models.ScheduleResponse
// @Router /subscriptions/{subscriptionId}/schedules [get]
func (sc *ScheduleController) GetSchedulesBySubscription(c *gin.Context) {

	subscriptionID, err := uuid.Parse(c.Param("subscriptionId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid subscription ID")
		return
	}

	schedules, err := sc.scheduleService.GetSchedulesBySubscription(c.Request.Context(), subscriptionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, schedules, "Schedules fetched successfully")
}
