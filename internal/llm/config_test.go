package llm

import "testing"

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"openai with key", func(c *Config) { c.Provider = "openai"; c.OpenAI.APIKey = "k" }, false},
		{"openai without key", func(c *Config) { c.Provider = "openai" }, true},
		{"anthropic without key", func(c *Config) { c.Provider = "anthropic" }, true},
		{"mock needs no key", func(c *Config) { c.Provider = "mock" }, false},
		{"unknown provider", func(c *Config) { c.Provider = "llama-at-home" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("QUESTLY_LLM_PROVIDER", "anthropic")
	t.Setenv("QUESTLY_ANTHROPIC_API_KEY", "sk-test")
	t.Setenv("QUESTLY_ANTHROPIC_MODEL", "claude-haiku")

	cfg := ConfigFromEnv()
	if cfg.Provider != "anthropic" {
		t.Errorf("Provider = %q, want anthropic", cfg.Provider)
	}
	if cfg.Anthropic.APIKey != "sk-test" {
		t.Errorf("APIKey = %q", cfg.Anthropic.APIKey)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestDiscoverConfigPriority(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "openai-key")
	t.Setenv("ANTHROPIC_API_KEY", "anthropic-key")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("DiscoverConfig found nothing")
	}
	// OpenAI wins when both are present.
	if cfg.Provider != "openai" {
		t.Errorf("Provider = %q, want openai", cfg.Provider)
	}
}

func TestDiscoverConfigNothingSet(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENROUTER_API_KEY", "")

	if _, ok := DiscoverConfig(); ok {
		t.Error("DiscoverConfig reported a provider with no keys set")
	}
}
