package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tieubaoca/pdf-qa-be/repository"
	"github.com/tieubaoca/pdf-qa-be/types"
)

type InteractionHandler struct {
	interactionRepo repository.InteractionRepo
}

func NewInteractionHandler(interactionRepo repository.InteractionRepo) *InteractionHandler {
	return &InteractionHandler{
		interactionRepo: interactionRepo,
	}
}

// HandleListInteractions returns the question/answer history, oldest first.
// With no pdf_id query parameter every recorded interaction is returned.
func (h *InteractionHandler) HandleListInteractions(c *gin.Context) {
	pdfID := c.Query("pdf_id")

	interactions, err := h.interactionRepo.ListInteractions(c.Request.Context(), pdfID)
	if err != nil {
		log.Printf("Failed to list interactions: %v", err)
		c.JSON(http.StatusInternalServerError, types.DetailResponse{
			Detail: "Erro ao buscar interações.",
		})
		return
	}
	if interactions == nil {
		interactions = []*types.Interaction{}
	}

	c.JSON(http.StatusOK, interactions)
}
