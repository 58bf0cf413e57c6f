package restaurant

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	profile Profile
}

func NewHandler(profile Profile) *Handler {
	return &Handler{profile: profile}
}

// --------------------------------------------------
// GET /info
// --------------------------------------------------
func (h *Handler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, h.profile)
}
