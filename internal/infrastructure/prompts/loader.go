package prompts

import (
	_ "embed"
)

//go:embed system.txt
var SystemPromptTemplate string

//go:embed extraction.txt
var ExtractionPrompt string
