package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripcraft/internal/models/response_models"
	"tripcraft/internal/services"
	"tripcraft/pkg/utils"
)

const imageField = "image"

type PlaceController struct {
	placeService   services.PlaceServiceInterface
	maxUploadBytes int64
	log            *zap.Logger
}

func NewPlaceController(placeService services.PlaceServiceInterface, maxUploadBytes int64, log *zap.Logger) *PlaceController {
	return &PlaceController{placeService: placeService, maxUploadBytes: maxUploadBytes, log: log}
}

// Picture2Place godoc
// @Summary Identify the place in a photo
// @Tags Places
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "photo"
// @Success 200 {object} response_models.PlaceResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 413 {object} utils.APIResponse
// @Failure 415 {object} utils.APIResponse
// @Router /picture2Place [post]
func (p *PlaceController) Picture2Place(c *gin.Context) {
	if p.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, p.maxUploadBytes)
	}

	file, err := c.FormFile(imageField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.RespondError(c, http.StatusRequestEntityTooLarge, "Image exceeds the upload limit")
			return
		}
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format: multipart field \"image\" is required")
		return
	}

	f, err := file.Open()
	if err != nil {
		utils.HandleServiceError(c, p.log, err)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		utils.HandleServiceError(c, p.log, err)
		return
	}

	place, err := p.placeService.LookupPlace(c.Request.Context(), data)
	if err != nil {
		utils.HandleServiceError(c, p.log, err)
		return
	}
	utils.RespondJSON(c, response_models.PlaceResponse{Result: place.RawText, Location: place.Location})
}
