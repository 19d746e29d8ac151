package handler

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tieubaoca/pdf-qa-be/repository"
	"github.com/tieubaoca/pdf-qa-be/service"
	"github.com/tieubaoca/pdf-qa-be/types"
)

type UploadHandler struct {
	pdfService   *service.PDFService
	documentRepo repository.DocumentRepo
}

func NewUploadHandler(pdfService *service.PDFService, documentRepo repository.DocumentRepo) *UploadHandler {
	return &UploadHandler{
		pdfService:   pdfService,
		documentRepo: documentRepo,
	}
}

func (h *UploadHandler) HandleUploadPDF(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, types.DetailResponse{
			Detail: "Nenhum arquivo foi enviado.",
		})
		return
	}
	defer file.Close()

	log.Printf("Receiving file: %s with type: %s", header.Filename, header.Header.Get("Content-Type"))

	if header.Header.Get("Content-Type") != "application/pdf" {
		log.Printf("Uploaded file is not a PDF: %s", header.Header.Get("Content-Type"))
		c.JSON(http.StatusBadRequest, types.DetailResponse{
			Detail: "O arquivo enviado não é um PDF.",
		})
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, types.DetailResponse{
			Detail: "Não foi possível ler o arquivo enviado.",
		})
		return
	}
	log.Printf("PDF content read successfully. Size: %d bytes", len(data))

	text, err := h.pdfService.ExtractText(data)
	if errors.Is(err, types.ErrNoTextExtracted) {
		log.Println("No text was extracted from the PDF.")
		c.JSON(http.StatusBadRequest, types.DetailResponse{
			Detail: "Nenhum texto foi extraído do PDF.",
		})
		return
	}
	if err != nil {
		log.Printf("Failed to parse PDF: %v", err)
		c.JSON(http.StatusBadRequest, types.DetailResponse{
			Detail: "O arquivo PDF é inválido ou está corrompido.",
		})
		return
	}

	id, err := h.documentRepo.SaveDocument(c.Request.Context(), text)
	if err != nil {
		log.Printf("Failed to save extracted text: %v", err)
		c.JSON(http.StatusInternalServerError, types.DetailResponse{
			Detail: "Erro ao salvar o texto no banco de dados.",
		})
		return
	}
	log.Printf("Text saved successfully. Document id: %s", id)

	c.JSON(http.StatusOK, types.UploadResponse{
		Text:  text,
		PDFID: id,
	})
}
