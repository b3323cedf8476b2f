package interfaces

import (
	"context"
	"encoding/json"
)

// IAIClient abstracts the external text-generation service.
//
// The service is an opaque collaborator: given a templated prompt it either
// returns a JSON object matching the requested schema or fails. One attempt,
// no retry, no streaming.
type IAIClient interface {
	GenerateJSON(ctx context.Context, systemPrompt, userPrompt string) (json.RawMessage, error)
}
