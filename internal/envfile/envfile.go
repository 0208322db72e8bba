// Package envfile edits the .env file that selects the LLM provider.
package envfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/abhisek/mentorai/internal/llm"
)

// ProviderVar selects the provider.
const ProviderVar = "AI_PROVIDER"

// KnownProviders lists the provider names SwitchProvider accepts.
func KnownProviders() []string {
	presets := llm.Providers()
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
	}
	return names
}

// SwitchProvider rewrites path so that AI_PROVIDER names provider and,
// when apiKey is set, <PROVIDER>_API_KEY holds it. Every other line is
// kept as is. A missing file is created.
func SwitchProvider(path, provider, apiKey string) error {
	preset, ok := llm.LookupPreset(provider)
	if !ok {
		return fmt.Errorf("unknown provider %q (known: %s)", provider, strings.Join(KnownProviders(), ", "))
	}

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	out := Rewrite(string(data), preset.Name, preset.KeyEnv(), apiKey)
	if _, err := godotenv.Unmarshal(out); err != nil {
		return fmt.Errorf("rewritten %s is not a valid env file: %w", path, err)
	}

	mode := fs.FileMode(0o600)
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	}
	return os.WriteFile(path, []byte(out), mode)
}

// Rewrite applies the provider switch to env file content.
func Rewrite(content, provider, keyVar, apiKey string) string {
	lines := strings.SplitAfter(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	providerLine := ProviderVar + "=" + provider + "\n"
	replaced := false
	for i, line := range lines {
		if strings.HasPrefix(line, ProviderVar+"=") {
			lines[i] = providerLine
			replaced = true
		}
	}
	if !replaced {
		lines = append([]string{providerLine}, lines...)
	}

	if apiKey != "" {
		keyLine := keyVar + "=" + apiKey + "\n"
		found := false
		for i, line := range lines {
			if strings.HasPrefix(line, keyVar+"=") {
				lines[i] = keyLine
				found = true
				break
			}
		}
		if !found {
			lines = append(lines, "\n"+keyLine)
		}
	}
	return strings.Join(lines, "")
}
