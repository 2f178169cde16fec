package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadCouncilConfig_Success(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "council.yaml")

	configContent := `council:
  members:
    - name: groq
      provider: groq
      model: llama-3.3-70b-versatile
    - name: local
      provider: local
      model: llama3.2:1b
  primary: groq
  timeout_seconds: 15

auditor:
  strict_mode: true

memory:
  kind: http
  endpoint: http://localhost:8090
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	os.Setenv("COUNCIL_CONFIG_PATH", configPath)
	defer os.Unsetenv("COUNCIL_CONFIG_PATH")

	cfg, err := LoadCouncilConfig()
	if err != nil {
		t.Fatalf("LoadCouncilConfig() failed: %v", err)
	}

	if len(cfg.Council.Members) != 2 {
		t.Errorf("Expected 2 members, got %d", len(cfg.Council.Members))
	}
	if cfg.Council.Members[0].Name != "groq" {
		t.Errorf("Expected first member 'groq', got '%s'", cfg.Council.Members[0].Name)
	}
	if cfg.Council.Members[1].Model != "llama3.2:1b" {
		t.Errorf("Expected second model 'llama3.2:1b', got '%s'", cfg.Council.Members[1].Model)
	}
	if cfg.Council.Primary != "groq" {
		t.Errorf("Expected primary 'groq', got '%s'", cfg.Council.Primary)
	}
	if cfg.Council.TimeoutSeconds != 15 {
		t.Errorf("Expected timeout_seconds=15, got %d", cfg.Council.TimeoutSeconds)
	}
	if !cfg.Auditor.StrictMode {
		t.Error("Expected strict_mode=true")
	}
	if cfg.Memory.Kind != "http" {
		t.Errorf("Expected memory kind 'http', got '%s'", cfg.Memory.Kind)
	}
}

func TestLoadCouncilConfig_AppliesDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "council.yaml")

	configContent := `council:
  members:
    - name: groq
      provider: groq
      model: llama-3.3-70b-versatile
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	os.Setenv("COUNCIL_CONFIG_PATH", configPath)
	defer os.Unsetenv("COUNCIL_CONFIG_PATH")

	cfg, err := LoadCouncilConfig()
	if err != nil {
		t.Fatalf("LoadCouncilConfig() failed: %v", err)
	}

	if cfg.Council.TimeoutSeconds != 30 {
		t.Errorf("Expected default timeout_seconds=30, got %d", cfg.Council.TimeoutSeconds)
	}
	if cfg.Council.Primary != "groq" {
		t.Errorf("Expected primary defaulted to first member, got '%s'", cfg.Council.Primary)
	}
	if cfg.Memory.Kind != "inmem" {
		t.Errorf("Expected default memory kind 'inmem', got '%s'", cfg.Memory.Kind)
	}
}

func TestLoadCouncilConfig_DefaultPath(t *testing.T) {
	os.Unsetenv("COUNCIL_CONFIG_PATH")

	_, err := LoadCouncilConfig()

	if err == nil {
		t.Log("Default config file loaded successfully")
	} else {
		if !strings.Contains(err.Error(), "configs/council.yaml") {
			t.Errorf("Expected error to mention default path 'configs/council.yaml', got: %v", err)
		}
	}
}

func TestLoadCouncilConfig_FileNotFound(t *testing.T) {
	os.Setenv("COUNCIL_CONFIG_PATH", "/nonexistent/path/council.yaml")
	defer os.Unsetenv("COUNCIL_CONFIG_PATH")

	_, err := LoadCouncilConfig()
	if err == nil {
		t.Error("Expected error for nonexistent config file")
	}

	if !strings.Contains(err.Error(), "failed to read config file") {
		t.Errorf("Expected 'failed to read config file' error, got: %v", err)
	}
}

func TestLoadCouncilConfig_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidContent := `council:
  members:
    - name: groq
      provider: groq
      invalid_indent:
    wrong_level
`

	if err := os.WriteFile(configPath, []byte(invalidContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	os.Setenv("COUNCIL_CONFIG_PATH", configPath)
	defer os.Unsetenv("COUNCIL_CONFIG_PATH")

	_, err := LoadCouncilConfig()
	if err == nil {
		t.Error("Expected error for invalid YAML")
	}

	if !strings.Contains(err.Error(), "failed to parse YAML") {
		t.Errorf("Expected 'failed to parse YAML' error, got: %v", err)
	}
}

func TestValidate_NoMembers(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	err := cfg.Validate()
	if err == nil {
		t.Error("Expected validation error for empty members list")
	}

	if !strings.Contains(err.Error(), "no council members configured") {
		t.Errorf("Expected 'no council members configured' error, got: %v", err)
	}
}

func TestValidate_MemberFields(t *testing.T) {
	tests := []struct {
		name    string
		member  MemberConfig
		wantErr string
	}{
		{
			name:    "missing name",
			member:  MemberConfig{Provider: "groq", Model: "llama-3.3-70b-versatile"},
			wantErr: "missing name",
		},
		{
			name:    "missing provider",
			member:  MemberConfig{Name: "groq", Model: "llama-3.3-70b-versatile"},
			wantErr: "missing provider",
		},
		{
			name:    "missing model",
			member:  MemberConfig{Name: "groq", Provider: "groq"},
			wantErr: "missing model",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Council: CouncilConfig{Members: []MemberConfig{tt.member}},
			}
			applyDefaults(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected '%s' error, got: %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidate_DuplicateMemberNames(t *testing.T) {
	cfg := &Config{
		Council: CouncilConfig{
			Members: []MemberConfig{
				{Name: "groq", Provider: "groq", Model: "a"},
				{Name: "groq", Provider: "local", Model: "b"},
			},
		},
	}
	applyDefaults(cfg)

	err := cfg.Validate()
	if err == nil {
		t.Error("Expected validation error for duplicate names")
	}

	if !strings.Contains(err.Error(), "duplicate member name") {
		t.Errorf("Expected 'duplicate member name' error, got: %v", err)
	}
}

func TestValidate_PrimaryMustMatchMember(t *testing.T) {
	cfg := &Config{
		Council: CouncilConfig{
			Members: []MemberConfig{{Name: "groq", Provider: "groq", Model: "a"}},
			Primary: "gemini",
		},
	}
	applyDefaults(cfg)

	err := cfg.Validate()
	if err == nil {
		t.Error("Expected validation error for unknown primary")
	}

	if !strings.Contains(err.Error(), "does not match any member") {
		t.Errorf("Expected 'does not match any member' error, got: %v", err)
	}
}

func TestValidate_NegativeTimeout(t *testing.T) {
	cfg := &Config{
		Council: CouncilConfig{
			Members:        []MemberConfig{{Name: "groq", Provider: "groq", Model: "a"}},
			TimeoutSeconds: -5,
		},
	}
	applyDefaults(cfg)

	err := cfg.Validate()
	if err == nil {
		t.Error("Expected validation error for negative timeout")
	}

	if !strings.Contains(err.Error(), "negative timeout_seconds") {
		t.Errorf("Expected 'negative timeout_seconds' error, got: %v", err)
	}
}

func TestValidate_MemoryKind(t *testing.T) {
	cfg := &Config{
		Council: CouncilConfig{
			Members: []MemberConfig{{Name: "groq", Provider: "groq", Model: "a"}},
		},
		Memory: MemoryConfig{Kind: "chroma"},
	}
	applyDefaults(cfg)

	err := cfg.Validate()
	if err == nil {
		t.Error("Expected validation error for unknown memory kind")
	}

	if !strings.Contains(err.Error(), "unknown memory kind") {
		t.Errorf("Expected 'unknown memory kind' error, got: %v", err)
	}

	cfg.Memory = MemoryConfig{Kind: "http"}
	err = cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "endpoint is required") {
		t.Errorf("Expected 'endpoint is required' error, got: %v", err)
	}
}
