package llm

import "testing"

func TestValidate_MockNeedsNoKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestValidate_MissingKey(t *testing.T) {
	for _, provider := range []string{"anthropic", "openai", "gemini"} {
		cfg := DefaultConfig()
		cfg.Provider = provider
		if err := cfg.Validate(); err == nil {
			t.Errorf("Validate() with %s and no key = nil, want error", provider)
		}
	}
}

func TestValidate_UnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "carrier-pigeon"
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() with unknown provider = nil, want error")
	}
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("SENSEI_LLM_PROVIDER", "openai")
	t.Setenv("SENSEI_OPENAI_API_KEY", "test-key")
	t.Setenv("SENSEI_OPENAI_MODEL", "gpt-4o")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("Provider = %q, want openai", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "test-key" {
		t.Errorf("APIKey = %q, want test-key", cfg.OpenAI.APIKey)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("Model = %q, want gpt-4o", cfg.OpenAI.Model)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestResolveModel(t *testing.T) {
	if got := resolveModel("claude-haiku", anthropicModels); got != "claude-haiku-4-5-20251001" {
		t.Errorf("resolveModel = %q", got)
	}
	// Unmapped names pass through for direct model IDs.
	if got := resolveModel("claude-3-opus-20240229", anthropicModels); got != "claude-3-opus-20240229" {
		t.Errorf("resolveModel passthrough = %q", got)
	}
}
