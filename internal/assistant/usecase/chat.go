package usecase

import (
	"context"
	"fmt"
	"strings"

	"calendar-assistant/internal/assistant"
	"calendar-assistant/pkg/gemini"
)

// Chat answers one message. Only generation failures are returned as errors;
// directive and persistence problems degrade to a reply without an event.
func (uc *implUseCase) Chat(ctx context.Context, input assistant.ChatInput) (assistant.ChatOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return assistant.ChatOutput{}, assistant.ErrEmptyMessage
	}
	if uc.llm == nil {
		return assistant.ChatOutput{}, assistant.ErrConfiguration
	}

	gc := uc.newGenerationContext()
	uc.l.Infof(ctx, "assistant.usecase.Chat: user=%q context=%q timezone=%q anchor=%s",
		input.UserID, input.Context, input.Timezone, gc.ISO)

	prompt := uc.buildPrompt(gc, input.LifeBalanceData)
	resp, err := uc.llm.GenerateContent(ctx, newGenerationRequest(prompt, message))
	if err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.Chat: llm.GenerateContent model=%s: %v", uc.llm.Model(), err)
		return assistant.ChatOutput{}, fmt.Errorf("%w: %v", assistant.ErrUpstreamService, err)
	}

	reply := resp.Text()
	if strings.TrimSpace(reply) == "" {
		uc.l.Errorf(ctx, "assistant.usecase.Chat: empty reply finish_reason=%s", resp.FinishReason)
		return assistant.ChatOutput{}, fmt.Errorf("%w: %v", assistant.ErrUpstreamService, gemini.ErrEmptyResponse)
	}

	ex := uc.extractEvent(ctx, reply, input.UserID, gc.Year)
	uc.l.Infof(ctx, "assistant.usecase.Chat: outcome=%s", ex.outcome)

	out := assistant.ChatOutput{
		Response:     ex.reply,
		Suggestions:  uc.suggestions(message, ex.event != nil),
		CreatedEvent: ex.event,
		Outcome:      ex.outcome,
	}
	if ex.event != nil {
		out.Action = assistant.ActionEventCreated
	}
	return out, nil
}
