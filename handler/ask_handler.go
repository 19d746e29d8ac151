package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tieubaoca/pdf-qa-be/repository"
	"github.com/tieubaoca/pdf-qa-be/service"
	"github.com/tieubaoca/pdf-qa-be/types"
)

type AskHandler struct {
	documentRepo    repository.DocumentRepo
	interactionRepo repository.InteractionRepo
	aiService       service.AIService
}

func NewAskHandler(
	documentRepo repository.DocumentRepo,
	interactionRepo repository.InteractionRepo,
	aiService service.AIService,
) *AskHandler {
	return &AskHandler{
		documentRepo:    documentRepo,
		interactionRepo: interactionRepo,
		aiService:       aiService,
	}
}

func (h *AskHandler) HandleAsk(c *gin.Context) {
	var req types.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DetailResponse{
			Detail: "Corpo da requisição inválido.",
		})
		return
	}

	doc, err := h.documentRepo.GetDocument(c.Request.Context(), req.PDFID)
	if errors.Is(err, types.ErrDocumentNotFound) {
		// Contract kept from day one: unknown ids answer 200 with an
		// error-shaped body, not a 404.
		c.JSON(http.StatusOK, gin.H{"error": "PDF não encontrado."})
		return
	}
	if err != nil {
		log.Printf("Failed to load document %s: %v", req.PDFID, err)
		c.JSON(http.StatusInternalServerError, types.DetailResponse{
			Detail: "Erro ao buscar o documento.",
		})
		return
	}

	answer, degraded, err := h.aiService.Ask(c.Request.Context(), doc.Text, req.Question)
	if err != nil {
		log.Printf("AI request failed for document %s: %v", req.PDFID, err)
		c.JSON(http.StatusInternalServerError, types.DetailResponse{
			Detail: "Erro ao consultar a IA.",
		})
		return
	}
	if degraded {
		log.Printf("AI answer for document %s could not be parsed, returning fallback", req.PDFID)
	}

	if err := service.ValidateAnswerShape(answer); err != nil {
		c.JSON(http.StatusInternalServerError, types.DetailResponse{
			Detail: "Resposta da IA está no formato inválido.",
		})
		return
	}

	interaction := &types.Interaction{
		PDFID:      req.PDFID,
		Question:   req.Question,
		Resposta:   stringValue(answer["resposta"]),
		Explicacao: stringValue(answer["explicação"]),
		Contexto:   stringValue(answer["contexto"]),
	}
	if err := h.interactionRepo.CreateInteraction(c.Request.Context(), interaction); err != nil {
		log.Printf("Failed to save interaction: %v", err)
		c.JSON(http.StatusInternalServerError, types.DetailResponse{
			Detail: "Erro ao salvar interação no banco de dados.",
		})
		return
	}
	log.Println("Interaction saved successfully.")

	// The parsed answer object is the whole response body, no wrapper.
	c.JSON(http.StatusOK, answer)
}

// stringValue flattens whatever the model put under a key into text. The keys
// are documented as strings but nothing stops a model from emitting a number.
func stringValue(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
