package extraction

import (
	"context"
	"encoding/json"
	"fmt"

	"kai-assistant/internal/application/port/output"
	"kai-assistant/internal/domain/entity"
	"kai-assistant/internal/infrastructure/prompts"
)

const parseError = "Failed to parse LLM response"

// Pipeline turns schedule images or pasted text into validated class records.
// Both entry points make one schema-constrained model call and always return
// a well-formed result; failures surface through the Error field, never as a
// returned error.
type Pipeline struct {
	llm    output.LLMPort
	logger output.LoggerPort
}

func New(llm output.LLMPort, logger output.LoggerPort) *Pipeline {
	return &Pipeline{
		llm:    llm,
		logger: logger,
	}
}

func (p *Pipeline) ExtractFromImage(ctx context.Context, imageURL string, contextHint string) *entity.ScheduleExtractionResult {
	instruction := "Extract the class schedule from this image."
	if contextHint != "" {
		instruction += "\n\nAdditional context: " + contextHint
	}
	return p.extract(ctx, entity.Message{
		Role:     entity.RoleUser,
		Content:  instruction,
		ImageURL: imageURL,
	}, "")
}

func (p *Pipeline) ExtractFromText(ctx context.Context, textContent string, contextHint string) *entity.ScheduleExtractionResult {
	instruction := "Extract the class schedule from the following text:\n\n" + textContent
	if contextHint != "" {
		instruction += "\n\nAdditional context: " + contextHint
	}
	return p.extract(ctx, entity.Message{
		Role:    entity.RoleUser,
		Content: instruction,
	}, textContent)
}

func (p *Pipeline) extract(ctx context.Context, userMessage entity.Message, rawText string) *entity.ScheduleExtractionResult {
	resp, err := p.llm.Chat(ctx, output.ChatRequest{
		Messages: []entity.Message{
			{Role: entity.RoleSystem, Content: prompts.ExtractionPrompt},
			userMessage,
		},
		ResponseFormat: responseSchema(),
		Temperature:    0.0,
	})
	if err != nil {
		p.logger.Error("Schedule extraction request failed", "error", err)
		return failureResult(err.Error(), rawText)
	}

	content := resp.Message.Content
	if content == "" {
		p.logger.Error("Schedule extraction returned no content")
		return failureResult(parseError, rawText)
	}

	var result entity.ScheduleExtractionResult
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		p.logger.Error("Schedule extraction returned unparseable JSON", "error", err)
		return failureResult(parseError, rawText)
	}

	result.Classes, result.Warnings = validateClasses(result.Classes, result.Warnings)
	result.RawText = rawText

	p.logger.Info("Schedule extraction completed",
		"success", result.Success,
		"classes", len(result.Classes),
		"confidence", result.Confidence,
		"warnings", len(result.Warnings),
	)

	return &result
}

func failureResult(errMsg string, rawText string) *entity.ScheduleExtractionResult {
	return &entity.ScheduleExtractionResult{
		Success:    false,
		Classes:    []entity.ExtractedClass{},
		Confidence: 0,
		RawText:    rawText,
		Error:      errMsg,
	}
}

// validateClasses re-checks the schema's structural guarantees in code.
// Entries missing a required field or naming an unknown day are dropped with
// a warning rather than failing the whole extraction.
func validateClasses(classes []entity.ExtractedClass, warnings []string) ([]entity.ExtractedClass, []string) {
	valid := make([]entity.ExtractedClass, 0, len(classes))
	for _, c := range classes {
		switch {
		case c.Name == "" || c.StartTime == "" || c.EndTime == "":
			warnings = append(warnings, fmt.Sprintf("Dropped class entry with missing required fields: %q", c.Name))
		case !entity.IsWeekday(c.DayOfWeek):
			warnings = append(warnings, fmt.Sprintf("Dropped class %q with unrecognized day %q", c.Name, c.DayOfWeek))
		default:
			valid = append(valid, c)
		}
	}
	return valid, warnings
}
