package types

// GenerationSettings contains the sampling configuration passed to the model.
type GenerationSettings struct {
	Temperature     float32
	TopK            int32
	TopP            float32
	MaxOutputTokens int32
}
