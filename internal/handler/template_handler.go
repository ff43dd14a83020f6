package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfoliomaker/internal/catalog"
)

type TemplatesResponse struct {
	Templates []catalog.Template `json:"templates"`
}

// ListTemplates godoc
// @Summary      Portfolio template catalog
// @Description  Returns the four built-in portfolio templates in display order.
// @Tags         Templates
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} handler.TemplatesResponse
// @Failure      401 {object} handler.ErrorResponse
// @Router       /api/templates [get]
func (h *Handler) ListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, TemplatesResponse{Templates: catalog.List()})
}
