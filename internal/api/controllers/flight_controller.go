package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripcraft/internal/models/request_models"
	"tripcraft/internal/services"
	"tripcraft/pkg/utils"
)

type FlightController struct {
	flightService services.FlightServiceInterface
	log           *zap.Logger
}

func NewFlightController(flightService services.FlightServiceInterface, log *zap.Logger) *FlightController {
	return &FlightController{flightService: flightService, log: log}
}

// GetFlights godoc
// @Summary One-way flight search
// @Tags Flights
// @Accept json
// @Produce json
// @Param request body request_models.GetFlightsRequest true "departure, arrival as \"<IATA> - <label>\", date"
// @Success 200 {object} response_models.FlightsResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /getFlights [post]
func (f *FlightController) GetFlights(c *gin.Context) {
	var req request_models.GetFlightsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.BindingMessage(err))
		return
	}

	p := req.Params
	flights, err := f.flightService.SearchFlights(c.Request.Context(), p.Departure, p.Arrival, p.Date)
	if err != nil {
		utils.HandleServiceError(c, f.log, err)
		return
	}
	utils.RespondJSON(c, flights)
}
