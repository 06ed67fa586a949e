package domain

import "strings"

type Provider string

const (
	ProviderOpenAI   Provider = "openai"
	ProviderDeepSeek Provider = "deepseek"

	DefaultProvider = ProviderOpenAI
)

// ProviderSpec is the endpoint and default model of a summarization backend.
type ProviderSpec struct {
	Name         Provider
	Endpoint     string
	DefaultModel string
}

var providerSpecs = map[Provider]ProviderSpec{
	ProviderOpenAI: {
		Name:         ProviderOpenAI,
		Endpoint:     "https://api.openai.com/v1/chat/completions",
		DefaultModel: "gpt-4o-mini",
	},
	ProviderDeepSeek: {
		Name:         ProviderDeepSeek,
		Endpoint:     "https://api.deepseek.com/v1/chat/completions",
		DefaultModel: "deepseek-chat",
	},
}

// ResolveProvider maps a selector to a known backend. Unknown selectors fall
// back to the default provider.
func ResolveProvider(raw string) ProviderSpec {
	if spec, ok := providerSpecs[Provider(strings.ToLower(strings.TrimSpace(raw)))]; ok {
		return spec
	}
	return providerSpecs[DefaultProvider]
}

func Providers() []Provider {
	return []Provider{ProviderOpenAI, ProviderDeepSeek}
}

// SecretKey is the secret-store entry holding the provider API key.
func (p Provider) SecretKey() string {
	return "video-transcriber/providers/" + string(p) + "/api_key"
}
