package council

import (
	"testing"

	"github.com/Forgingalex/rei/internal/models"
)

func TestSynthesize(t *testing.T) {
	s := NewSynthesizer("groq", newTestLogger())

	tests := []struct {
		name      string
		responses []models.ProviderResponse
		want      string
	}{
		{
			name:      "no responses",
			responses: nil,
			want:      FallbackResponse,
		},
		{
			name: "all failed",
			responses: []models.ProviderResponse{
				{Provider: "groq", Response: "error: rate limited"},
				{Provider: "local", Response: "timeout: no response after 30s"},
			},
			want: FallbackResponse,
		},
		{
			name: "single survivor",
			responses: []models.ProviderResponse{
				{Provider: "local", Response: "only answer"},
			},
			want: "only answer",
		},
		{
			name: "error plus valid",
			responses: []models.ProviderResponse{
				{Provider: "groq", Response: "error: boom"},
				{Provider: "local", Response: "local answer"},
			},
			want: "local answer",
		},
		{
			name: "primary preferred",
			responses: []models.ProviderResponse{
				{Provider: "local", Response: "local answer"},
				{Provider: "groq", Response: "groq answer"},
			},
			want: "groq answer",
		},
		{
			name: "primary absent takes first in list order",
			responses: []models.ProviderResponse{
				{Provider: "local", Response: "local answer"},
				{Provider: "bedrock", Response: "bedrock answer"},
			},
			want: "local answer",
		},
		{
			name: "primary failed takes first survivor",
			responses: []models.ProviderResponse{
				{Provider: "groq", Response: "timeout: no response after 30s"},
				{Provider: "local", Response: "local answer"},
				{Provider: "bedrock", Response: "bedrock answer"},
			},
			want: "local answer",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := s.Synthesize(test.responses); got != test.want {
				t.Errorf("Synthesize: %q, want: %q", got, test.want)
			}
		})
	}
}

func TestSynthesizeIsPure(t *testing.T) {
	s := NewSynthesizer("groq", newTestLogger())

	responses := []models.ProviderResponse{
		{Provider: "local", Response: "local answer"},
		{Provider: "groq", Response: "groq answer"},
	}

	first := s.Synthesize(responses)
	second := s.Synthesize(responses)

	if first != second {
		t.Errorf("synthesis not deterministic: %q then %q", first, second)
	}
	if responses[0].Response != "local answer" || responses[1].Response != "groq answer" {
		t.Errorf("input slice mutated: %+v", responses)
	}
}
