package config

import "testing"

func validConfig() *Config {
	return &Config{
		Telegram: TelegramConfig{Token: "123:abc"},
	}
}

func TestNormalizeDefaults(t *testing.T) {
	cfg := validConfig()
	if err := Normalize(cfg); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if cfg.Telegram.RunMode != RunModeLongpoll {
		t.Fatalf("run_mode = %q, want %q", cfg.Telegram.RunMode, RunModeLongpoll)
	}
	if cfg.Assets.ConsentDoc != "documents/soglasie.pdf" {
		t.Fatalf("consent_doc = %q", cfg.Assets.ConsentDoc)
	}
	if len(cfg.Assets.Platforms) != 2 {
		t.Fatalf("expected default platforms, got %+v", cfg.Assets.Platforms)
	}
}

func TestNormalizeRunModeAlias(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.RunMode = "Polling"
	if err := Normalize(cfg); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if cfg.Telegram.RunMode != RunModeLongpoll {
		t.Fatalf("run_mode = %q, want %q", cfg.Telegram.RunMode, RunModeLongpoll)
	}
}

func TestNormalizeRequiresToken(t *testing.T) {
	cfg := &Config{}
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for missing token")
	}
}

func TestNormalizeWebhookValidation(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.RunMode = RunModeWebhook
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for webhook mode without url")
	}

	cfg = validConfig()
	cfg.Telegram.RunMode = RunModeWebhook
	cfg.Webhook = WebhookConfig{URL: "https://bot.example.com/hook", Listen: "0.0.0.0", Port: 8443}
	if err := Normalize(cfg); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
}

func TestNormalizeAssets(t *testing.T) {
	cfg := validConfig()
	cfg.Assets.Platforms = []PlatformConfig{
		{Code: " Ozon ", Name: "Ozon", Guides: []GuideConfig{{Kind: "", Path: "media/a.jpg"}}},
	}
	if err := Normalize(cfg); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if cfg.Assets.Platforms[0].Code != "ozon" {
		t.Fatalf("code = %q, want lowercase", cfg.Assets.Platforms[0].Code)
	}
	if cfg.Assets.Platforms[0].Guides[0].Kind != "photo" {
		t.Fatalf("kind = %q, want photo default", cfg.Assets.Platforms[0].Guides[0].Kind)
	}

	cfg = validConfig()
	cfg.Assets.Platforms = []PlatformConfig{
		{Code: "ozon", Name: "Ozon"},
		{Code: "OZON", Name: "Ozon 2"},
	}
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected duplicate platform code error")
	}

	cfg = validConfig()
	cfg.Assets.Platforms = []PlatformConfig{
		{Code: "ozon", Name: "Ozon", Guides: []GuideConfig{{Kind: "gif", Path: "media/a.gif"}}},
	}
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected invalid guide kind error")
	}
}

func TestNormalizeRateLimitExclusions(t *testing.T) {
	cfg := validConfig()
	cfg.RateLimit.ExcludeUpdates = []string{"Callback", "message"}
	if err := Normalize(cfg); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if cfg.RateLimit.ExcludeUpdates[0] != "callback" {
		t.Fatalf("exclusion = %q, want normalized", cfg.RateLimit.ExcludeUpdates[0])
	}

	cfg = validConfig()
	cfg.RateLimit.ExcludeUpdates = []string{"inline_query"}
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for unsupported exclusion")
	}
}
