package llm

import (
	"sanad/internal/config"
	"sanad/internal/logging"
)

// NewClientFromConfig builds a Client from the resolved AI configuration.
// Returns (nil, false) when no credential is configured; callers are
// expected to fall back to offline behavior in that case.
func NewClientFromConfig(cfg config.AIConfig) (Client, bool) {
	if cfg.APIKey == "" {
		logging.Assist("no AI credential configured, running offline")
		return nil, false
	}

	switch cfg.Provider {
	case "gemini":
		client, err := NewGeminiClient(cfg.APIKey, cfg.Model)
		if err != nil {
			logging.AssistDebug("gemini client init failed: %v", err)
			return nil, false
		}
		logging.Assist("using gemini provider (model=%s, key=%s)", client.GetModel(), config.MaskKey(cfg.APIKey))
		return client, true
	default:
		oaCfg := DefaultOpenAIConfig(cfg.APIKey)
		if cfg.BaseURL != "" {
			oaCfg.BaseURL = cfg.BaseURL
		}
		if cfg.Model != "" {
			oaCfg.Model = cfg.Model
		}
		if cfg.TimeoutSeconds > 0 {
			oaCfg.Timeout = cfg.Timeout()
		}
		client := NewOpenAIClientWithConfig(oaCfg)
		logging.Assist("using openai provider (model=%s, key=%s)", client.GetModel(), config.MaskKey(cfg.APIKey))
		return client, true
	}
}
