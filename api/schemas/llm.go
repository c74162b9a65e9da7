package schemas

// -- LLM Client Schemas --

// GenerationOptions provides the parameters that control text generation.
// The pipeline pins Temperature to the configured value (0 by default) so
// answers stay as deterministic as the hosted model allows.
type GenerationOptions struct {
	Temperature float64 `json:"temperature"`          // Controls randomness. Lower is more deterministic.
	TopP        float64 `json:"top_p,omitempty"`      // Nucleus sampling parameter.
	MaxTokens   int     `json:"max_tokens,omitempty"` // Upper bound on the completion length. 0 means provider default.
}

// GenerationRequest encapsulates a complete request to the LLM: the system
// prompt establishing the assistant's grounding rules and the user prompt
// carrying the context and question.
type GenerationRequest struct {
	SystemPrompt string            `json:"system_prompt"`
	UserPrompt   string            `json:"user_prompt"`
	Options      GenerationOptions `json:"options"`
}
