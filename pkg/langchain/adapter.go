// Package langchain bridges validated prompt templates into LangChain-Go
// chains. The adapter satisfies prompts.FormatPrompter, so a loaded
// template can drive an LLMChain without being rewritten in LangChain's
// own template syntax.
package langchain

import (
	"github.com/promptspec/promptspec/pkg/prompt"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/prompts"
)

// TemplateAdapter exposes a prompt.Template to LangChain-Go.
type TemplateAdapter struct {
	template *prompt.Template
}

// Wrap adapts a template for use with LangChain-Go chains.
func Wrap(template *prompt.Template) *TemplateAdapter {
	return &TemplateAdapter{template: template}
}

// Template returns the wrapped template.
func (a *TemplateAdapter) Template() *prompt.Template {
	return a.template
}

// Format renders the template with the given values.
func (a *TemplateAdapter) Format(values map[string]any) (string, error) {
	return a.template.Render(values)
}

// FormatPrompt renders the template as a LangChain prompt value.
func (a *TemplateAdapter) FormatPrompt(values map[string]any) (llms.PromptValue, error) {
	text, err := a.template.Render(values)
	if err != nil {
		return nil, err
	}
	return prompts.StringPromptValue(text), nil
}

// GetInputVariables returns the marker names referenced by the template
// text, in first-occurrence order.
func (a *TemplateAdapter) GetInputVariables() []string {
	return a.template.PlaceholderNames()
}

// Messages renders the template as chat messages. A template that declares
// a systemMessage yields a system and human pair; otherwise the rendered
// text stands alone as the human message.
func (a *TemplateAdapter) Messages(values map[string]any) ([]llms.ChatMessage, error) {
	text, err := a.template.Render(values)
	if err != nil {
		return nil, err
	}

	if system := a.template.SystemMessage(); system != "" {
		return []llms.ChatMessage{
			llms.SystemChatMessage{Content: system},
			llms.HumanChatMessage{Content: text},
		}, nil
	}
	return []llms.ChatMessage{
		llms.HumanChatMessage{Content: text},
	}, nil
}
