package shared

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/gagliardetto/solana-go"
)

const (
	DefaultProgramID            = "EHLv9ANXJMm6AuNBAGoy3RuXCsctBAg6VBvcqkoQo9Gx"
	DefaultBubblegumProgramID   = "BGUMAp9Gq7iTEuizy4pqaxsTyUCBK68MDfK752saRPUY"
	DefaultLogWrapperProgramID  = "noopb9bkMVfRPU8AsbpTUg8AQkHtKwMYZiFUjNRtMmV"
	DefaultCompressionProgramID = "cmtDvXumGCrqC1Age74AVPhSRVXJMd8PJS91L8KbNCK"
)

// ProgramConfig holds the program identities a create_tree call is validated
// against.
type ProgramConfig struct {
	ProgramID            solana.PublicKey
	BubblegumProgramID   solana.PublicKey
	LogWrapperProgramID  solana.PublicKey
	CompressionProgramID solana.PublicKey
	LogLevel             string
}

var dotenvLoadOnce sync.Once

// DefaultProgramConfig returns the well-known mainnet program identities.
func DefaultProgramConfig() ProgramConfig {
	return ProgramConfig{
		ProgramID:            solana.MustPublicKeyFromBase58(DefaultProgramID),
		BubblegumProgramID:   solana.MustPublicKeyFromBase58(DefaultBubblegumProgramID),
		LogWrapperProgramID:  solana.MustPublicKeyFromBase58(DefaultLogWrapperProgramID),
		CompressionProgramID: solana.MustPublicKeyFromBase58(DefaultCompressionProgramID),
		LogLevel:             "info",
	}
}

// ProgramConfigFromEnv returns DefaultProgramConfig with any environment
// overrides applied.
func ProgramConfigFromEnv() (ProgramConfig, error) {
	loadDotEnvIfPresent()

	config := DefaultProgramConfig()

	overrides := []struct {
		target *solana.PublicKey
		keys   []string
	}{
		{target: &config.ProgramID, keys: []string{"KNOWLEDGE_MANAGER_PROGRAM_ID"}},
		{target: &config.BubblegumProgramID, keys: []string{"BUBBLEGUM_PROGRAM_ID"}},
		{target: &config.LogWrapperProgramID, keys: []string{"LOG_WRAPPER_PROGRAM_ID", "NOOP_PROGRAM_ID"}},
		{target: &config.CompressionProgramID, keys: []string{"COMPRESSION_PROGRAM_ID"}},
	}
	for _, override := range overrides {
		key, value := firstNonEmptyEnvPair(override.keys...)
		if value == "" {
			continue
		}
		parsed, err := ParsePublicKey(value)
		if err != nil {
			return ProgramConfig{}, fmt.Errorf("invalid %s: %w", key, err)
		}
		*override.target = parsed
	}

	if level := firstNonEmptyEnv("LOG_LEVEL"); level != "" {
		config.LogLevel = strings.ToLower(level)
	}

	return config, nil
}

// ParsePublicKey parses a base58 encoded public key.
func ParsePublicKey(raw string) (solana.PublicKey, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return solana.PublicKey{}, fmt.Errorf("public key cannot be empty")
	}

	parsed, err := solana.PublicKeyFromBase58(candidate)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("failed to parse public key %q: %w", candidate, err)
	}
	return parsed, nil
}

func loadDotEnvIfPresent() {
	dotenvLoadOnce.Do(func() {
		startPaths := make([]string, 0, 2)

		if cwd, err := os.Getwd(); err == nil {
			startPaths = append(startPaths, cwd)
		}
		if _, currentFile, _, ok := runtime.Caller(0); ok {
			startPaths = append(startPaths, filepath.Dir(currentFile))
		}

		seenCandidates := make(map[string]struct{})
		for _, start := range startPaths {
			current := start
			for {
				candidate := filepath.Join(current, ".env")
				if _, exists := seenCandidates[candidate]; !exists {
					seenCandidates[candidate] = struct{}{}
					if _, statErr := os.Stat(candidate); statErr == nil {
						loadDotEnvFile(candidate)
						return
					}
				}

				parent := filepath.Dir(current)
				if parent == current {
					break
				}
				current = parent
			}
		}
	})
}

func loadDotEnvFile(path string) bool {
	file, err := os.Open(path)
	if err != nil {
		return false
	}
	defer file.Close()

	loadedAny := false
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimSpace(strings.TrimPrefix(line, "export "))

		key, value, found := strings.Cut(line, "=")
		key = strings.TrimSpace(key)
		if !found || !isValidEnvKey(key) {
			continue
		}
		if _, alreadySet := os.LookupEnv(key); alreadySet {
			continue
		}

		value = unquote(strings.TrimSpace(value))
		if setErr := os.Setenv(key, value); setErr == nil {
			loadedAny = true
		}
	}

	return loadedAny
}

func unquote(value string) string {
	if len(value) < 2 {
		return value
	}
	first := value[0]
	last := value[len(value)-1]
	if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
		return value[1 : len(value)-1]
	}
	return value
}

func isValidEnvKey(key string) bool {
	if key == "" {
		return false
	}
	for index, character := range key {
		if (character >= 'A' && character <= 'Z') ||
			(character >= 'a' && character <= 'z') ||
			(index > 0 && character >= '0' && character <= '9') ||
			character == '_' {
			continue
		}
		return false
	}
	return true
}

func firstNonEmptyEnv(keys ...string) string {
	_, value := firstNonEmptyEnvPair(keys...)
	return value
}

func firstNonEmptyEnvPair(keys ...string) (string, string) {
	for _, key := range keys {
		value := strings.TrimSpace(os.Getenv(key))
		if value != "" {
			return key, value
		}
	}
	return "", ""
}
