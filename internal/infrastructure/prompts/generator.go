package prompts

import (
	"bytes"
	"text/template"
)

type SystemPromptData struct {
	AssistantName string
}

// GenerateSystemPrompt renders the assistant persona with its display name.
func GenerateSystemPrompt(assistantName string) (string, error) {
	if assistantName == "" {
		assistantName = "Kai"
	}

	tmpl, err := template.New("system").Parse(SystemPromptTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, SystemPromptData{AssistantName: assistantName}); err != nil {
		return "", err
	}

	return buf.String(), nil
}
