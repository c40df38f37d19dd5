package completions

import (
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const systemPrompt = "You are a professional product manager creating detailed product requirement documents."

const userPromptFormat = `Create a full professional grade PRD for "%s", including language requirements, app flow, front end/ backend, and tech stack in one document`

// Messages returns the chat messages sent for idea.
func Messages(idea string) []openai.ChatCompletionMessage {
	return []openai.ChatCompletionMessage{
		{
			Role:    openai.ChatMessageRoleSystem,
			Content: systemPrompt,
		},
		{
			Role:    openai.ChatMessageRoleUser,
			Content: fmt.Sprintf(userPromptFormat, idea),
		},
	}
}
