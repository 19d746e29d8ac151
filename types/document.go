package types

import "time"

// Document is one uploaded PDF's extracted text. The text is written once at
// upload time and never mutated afterwards.
type Document struct {
	ID   string `json:"id" bson:"_id,omitempty"`
	Text string `json:"text" bson:"text"`
}

// Interaction is one question asked against a document and the answer the AI
// produced for it. Contexto may be empty depending on what the model returned.
type Interaction struct {
	ID         string    `json:"id,omitempty" bson:"_id,omitempty"`
	PDFID      string    `json:"pdf_id" bson:"pdf_id"`
	Question   string    `json:"question" bson:"question"`
	Resposta   string    `json:"resposta" bson:"resposta"`
	Explicacao string    `json:"explicação" bson:"explicação"`
	Contexto   string    `json:"contexto,omitempty" bson:"contexto,omitempty"`
	Timestamp  time.Time `json:"timestamp" bson:"timestamp"`
}
