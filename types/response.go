package types

type UploadResponse struct {
	Text  string `json:"text"`
	PDFID string `json:"pdf_id"`
}

// DetailResponse mirrors the {"detail": ...} error body the API has always
// returned on 4xx/5xx.
type DetailResponse struct {
	Detail string `json:"detail"`
}
