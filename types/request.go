package types

type AskRequest struct {
	PDFID    string `json:"pdf_id" binding:"required"`
	Question string `json:"question" binding:"required"`
}
