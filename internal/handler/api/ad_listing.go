package api

import (
	"net/http"

	resdto "ad-approval-service/internal/handler/dto/response"
	"ad-approval-service/internal/handler/httperr"
	"ad-approval-service/internal/pkg/errs"
	"ad-approval-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdListingHandler struct {
	q queries.AdListingQueries
}

func NewAdListingHandler(q queries.AdListingQueries) *AdListingHandler {
	return &AdListingHandler{q: q}
}

// @Summary Get ad listing
// @Description Approval state of one listing, including when the last payment reminder went out
// @Tags ads
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} resdto.AdListingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/ads/{id} [get]
func (h *AdListingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, queries.ErrAdListingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAdListingView(view))
}
