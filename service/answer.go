package service

import (
	"encoding/json"
	"strings"

	"github.com/tieubaoca/pdf-qa-be/types"
)

// FallbackResposta is returned as the answer whenever the model output cannot
// be parsed as JSON.
const FallbackResposta = "Desculpe, não consegui entender a resposta da IA."

const answerInstruction = "Você é um especialista em informações extraídas de documentos. " +
	"Por favor, responda a pergunta a seguir **somente** no formato JSON sem qualquer outra formatação ou texto adicional. " +
	"Use exatamente as chaves \"resposta\", \"explicação\", e \"contexto\". " +
	"Por exemplo: {\"resposta\": \"sua resposta aqui\", \"explicação\": \"informações relevantes\", \"contexto\": \"contexto aqui\"}."

// documentPayload wraps the document text as the machine-readable JSON blob
// sent in the first conversational turn.
func documentPayload(text string) (string, error) {
	payload, err := json.Marshal(map[string]string{"pdf_text": text})
	if err != nil {
		return "", err
	}
	return string(payload), nil
}

// NormalizeAnswer turns a raw model completion into the structured answer
// object. A surrounding markdown code fence is stripped before parsing. When
// the result is not valid JSON the fixed fallback object is returned and the
// degraded flag is set, so callers can log the miss without failing the
// request.
func NormalizeAnswer(raw string) (map[string]any, bool) {
	text := stripCodeFence(strings.TrimSpace(raw))

	var answer map[string]any
	if err := json.Unmarshal([]byte(text), &answer); err != nil {
		return map[string]any{
			"resposta":   FallbackResposta,
			"explicação": "",
			"contexto":   "",
		}, true
	}
	return answer, false
}

// stripCodeFence removes a leading ``` or ```json fence and the matching
// trailing fence, tolerating whitespace variations around the language tag.
func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	body := strings.TrimPrefix(s, "```")
	body = strings.TrimPrefix(strings.TrimLeft(body, " \t"), "json")
	body = strings.TrimSuffix(strings.TrimSpace(body), "```")
	return strings.TrimSpace(body)
}

// ValidateAnswerShape checks that the keys the interaction record depends on
// are present. The fallback object always carries both, so this only trips on
// model output that parsed as JSON but has the wrong shape.
func ValidateAnswerShape(answer map[string]any) error {
	if _, ok := answer["resposta"]; !ok {
		return types.ErrInvalidAnswerShape
	}
	if _, ok := answer["explicação"]; !ok {
		return types.ErrInvalidAnswerShape
	}
	return nil
}
