package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripcraft/internal/models/request_models"
	"tripcraft/internal/models/response_models"
	"tripcraft/internal/services"
	"tripcraft/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
	log              *zap.Logger
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface, log *zap.Logger) *ItineraryController {
	return &ItineraryController{itineraryService: itineraryService, log: log}
}

// SubmitItinerary godoc
// @Summary Generate a day-wise itinerary
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.SubmitItineraryRequest true "trip"
// @Success 200 {object} response_models.ItineraryResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /submitIternary [post]
func (i *ItineraryController) SubmitItinerary(c *gin.Context) {
	var req request_models.SubmitItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.BindingMessage(err))
		return
	}

	trip, err := req.ToTripRequest()
	if err != nil {
		utils.HandleServiceError(c, i.log, err)
		return
	}

	text, err := i.itineraryService.SubmitItinerary(c.Request.Context(), trip)
	if err != nil {
		utils.HandleServiceError(c, i.log, err)
		return
	}
	utils.RespondJSON(c, response_models.ItineraryResponse{Result: text})
}
