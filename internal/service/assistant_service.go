package service

import (
	"context"
	"fmt"

	"npo-hub-be/pkg/llm"
	"npo-hub-be/pkg/prompt"
)

type IAssistantService interface {
	Ask(ctx context.Context, question string) (string, error)
	History() []prompt.Turn
}

// assistantService runs one document-QA turn: render the prompt over the
// fixed regulation context, call the model, record the turn. State is
// single-owner; concurrent turns on one instance need external
// synchronization.
type assistantService struct {
	builder  *prompt.Builder
	provider llm.LLMProvider
}

func NewAssistantService(builder *prompt.Builder, provider llm.LLMProvider) IAssistantService {
	return &assistantService{
		builder:  builder,
		provider: provider,
	}
}

func (s *assistantService) Ask(ctx context.Context, question string) (string, error) {
	rendered := s.builder.Render(question)

	answer, err := s.provider.Generate(ctx, rendered)
	if err != nil {
		// The turn is not recorded on failure: history only holds
		// completed exchanges.
		return "", fmt.Errorf("generate answer: %w", err)
	}

	s.builder.AppendTurn(question, answer)
	return answer, nil
}

func (s *assistantService) History() []prompt.Turn {
	return s.builder.Turns()
}
