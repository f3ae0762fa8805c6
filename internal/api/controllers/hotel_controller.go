package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripcraft/internal/models/request_models"
	"tripcraft/internal/services"
	"tripcraft/pkg/utils"
)

type HotelController struct {
	hotelService services.HotelServiceInterface
	log          *zap.Logger
}

func NewHotelController(hotelService services.HotelServiceInterface, log *zap.Logger) *HotelController {
	return &HotelController{hotelService: hotelService, log: log}
}

// SearchHotels godoc
// @Summary Hotel search
// @Description Returns the provider's hotel list for the stay unchanged
// @Tags Hotels
// @Accept json
// @Produce json
// @Param request body request_models.SearchHotelsRequest true "stay"
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /searchHotels [post]
func (h *HotelController) SearchHotels(c *gin.Context) {
	var req request_models.SearchHotelsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.BindingMessage(err))
		return
	}

	results, err := h.hotelService.SearchHotels(c.Request.Context(), req.ToHotelQuery())
	if err != nil {
		utils.HandleServiceError(c, h.log, err)
		return
	}
	utils.RespondJSON(c, results)
}

// GetHotelInformation godoc
// @Summary Hotel details and photos
// @Tags Hotels
// @Accept json
// @Produce json
// @Param request body request_models.HotelInformationRequest true "property"
// @Success 200 {object} response_models.HotelInformationResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /getHotelInformation [post]
func (h *HotelController) GetHotelInformation(c *gin.Context) {
	var req request_models.HotelInformationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.BindingMessage(err))
		return
	}

	info, err := h.hotelService.GetHotelInformation(c.Request.Context(), req.ToHotelQuery(), req.Name)
	if err != nil {
		utils.HandleServiceError(c, h.log, err)
		return
	}
	utils.RespondJSON(c, info)
}
