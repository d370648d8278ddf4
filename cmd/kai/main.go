package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"kai-assistant/internal/application/port/input"
	"kai-assistant/internal/di"
	"kai-assistant/internal/domain/entity"
	"kai-assistant/internal/infrastructure/env"
	"kai-assistant/internal/usecase/blocks"
)

const turnTimeout = 2 * time.Minute

func main() {
	envService := env.NewEnvService()

	container, err := di.NewContainer(di.Config{
		OpenRouterAPIKey: envService.MustGet("OPENROUTER_API_KEY"),
		OpenRouterModel:  envService.MustGet("OPENROUTER_MODEL_NAME"),
		Debug:            envService.GetBool("DEBUG", false),
		LogHTTP:          envService.GetBool("LOG_HTTP", false),
	})
	if err != nil {
		log.Fatalf("init failed: %v", err)
	}
	defer container.Close()

	assistantName := envService.Get("ASSISTANT_NAME")
	if assistantName == "" {
		assistantName = "Kai"
	}

	fmt.Printf("%s is ready. Ask about your students, leads, or revenue. Ctrl+D to quit.\n", assistantName)

	var history []entity.Message
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println()
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		history = runTurn(container, line, history, assistantName)
	}
}

func runTurn(container *di.Container, userMessage string, history []entity.Message, assistantName string) []entity.Message {
	ctx, cancel := context.WithTimeout(context.Background(), turnTimeout)
	defer cancel()

	result, err := container.Assistant.Converse(ctx, userMessage, history, assistantName)
	if err != nil {
		container.Logger.Error("Turn failed", "error", err)
		fmt.Printf("error: %v\n", err)
		return history
	}

	history = append(history, entity.Message{Role: entity.RoleUser, Content: userMessage})

	if len(result.FunctionCalls) == 0 {
		fmt.Println(result.Response)
		return append(history, entity.Message{Role: entity.RoleAssistant, Content: result.Response})
	}

	formatted := blocks.FormatResults(executeCalls(ctx, container, result.FunctionCalls))

	if result.Response != "" {
		fmt.Println(result.Response)
	}
	if formatted.Text != "" {
		fmt.Println(formatted.Text)
	}
	for _, block := range formatted.Blocks {
		rendered, _ := json.Marshal(block)
		fmt.Println(string(rendered))
	}

	summary := result.Response
	if formatted.Text != "" {
		summary = strings.TrimSpace(summary + " " + formatted.Text)
	}
	return append(history, entity.Message{Role: entity.RoleAssistant, Content: summary})
}

func executeCalls(ctx context.Context, container *di.Container, calls []input.FunctionCall) []entity.FunctionResult {
	results := make([]entity.FunctionResult, 0, len(calls))
	for _, call := range calls {
		tool, ok := container.Tools.Get(entity.ToolName(call.Name))
		if !ok {
			container.Logger.Warn("Unknown tool requested", "name", call.Name)
			continue
		}

		args, err := json.Marshal(call.Arguments)
		if err != nil {
			container.Logger.Error("Failed to re-encode tool arguments", "name", call.Name, "error", err)
			continue
		}

		value, err := tool.Execute(ctx, string(args))
		if err != nil {
			container.Logger.Error("Tool execution failed", "name", call.Name, "error", err)
			continue
		}

		results = append(results, entity.FunctionResult{Function: call.Name, Result: value})
	}
	return results
}
