package assist

import (
	"context"
	"strings"

	"sanad/internal/config"
	"sanad/internal/form"
	"sanad/internal/i18n"
	"sanad/internal/llm"
	"sanad/internal/logging"
)

const maxSeedLen = 900

// Request describes one drafting call.
type Request struct {
	FieldKey    FieldKey
	Application form.ApplicationState
	Language    i18n.Lang
	// SourceText is the applicant's current text. When non-empty the draft
	// refines it instead of generating from scratch.
	SourceText string
}

// Service drafts and translates narrative text. A nil client means every
// call resolves offline.
type Service struct {
	client llm.Client
	cfg    config.AIConfig
}

// NewService builds a Service. client may be nil.
func NewService(client llm.Client, cfg config.AIConfig) *Service {
	return &Service{client: client, cfg: cfg}
}

// NormalizeSeed collapses runs of whitespace to single spaces and caps the
// result at 900 characters with a literal "..." marker.
func NormalizeSeed(text string) string {
	normalized := strings.Join(strings.Fields(text), " ")
	runes := []rune(normalized)
	if len(runes) > maxSeedLen {
		return string(runes[:maxSeedLen]) + "..."
	}
	return normalized
}

// Offline resolves a request without the network: a normalized echo of the
// seed text when present, otherwise the fixed template for the field.
func (s *Service) Offline(req Request) string {
	if strings.TrimSpace(req.SourceText) != "" {
		return NormalizeSeed(req.SourceText)
	}
	return OfflineTemplate(req.FieldKey, req.Application, req.Language)
}

// Generate produces a draft for the requested field. It never returns an
// error: any remote failure, timeout, or empty completion degrades to the
// offline result.
func (s *Service) Generate(ctx context.Context, req Request) string {
	if s.client == nil {
		return s.Offline(req)
	}

	seed := strings.TrimSpace(req.SourceText)
	var prompt string
	if seed != "" {
		prompt = BuildRefinePrompt(req.FieldKey, req.Language, seed)
	} else {
		prompt = BuildGeneratePrompt(req.FieldKey, req.Application, req.Language)
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout())
	defer cancel()

	result, err := s.client.Complete(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: "system", Content: SystemPrompt(req.Language)},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		logging.AssistDebug("completion failed for %s, using offline draft: %v", req.FieldKey, err)
		return s.Offline(req)
	}

	result = strings.TrimSpace(result)
	if result == "" {
		return s.Offline(req)
	}
	return result
}

// Translate converts text into the target language. Blank input, a missing
// client, a remote failure, or an empty completion all pass the original
// text through unchanged.
func (s *Service) Translate(ctx context.Context, text string, target i18n.Lang) string {
	normalized := strings.TrimSpace(text)
	if normalized == "" {
		return text
	}
	if s.client == nil {
		return text
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout())
	defer cancel()

	output, err := s.client.Complete(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: "system", Content: SystemTranslatePrompt(target)},
			{Role: "user", Content: UserTranslatePrompt(normalized, target)},
		},
		MaxTokens:   s.cfg.TranslateMaxTokens,
		Temperature: s.cfg.TranslateTemperature,
	})
	if err != nil {
		logging.Translate("translation failed, keeping original text: %v", err)
		return text
	}

	output = strings.TrimSpace(output)
	if output == "" {
		return text
	}
	return output
}
