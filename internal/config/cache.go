package config

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// Evaluated JS/TS configs are cached under the project's
// node_modules/.cache/devmoji/ keyed by a hash of the source bytes,
// so repeated hook invocations do not spawn Node.js.

const cacheFileName = "config.json"

type cachedConfig struct {
	SourceHash string     `json:"source_hash"`
	Config     fileConfig `json:"config"`
}

func sourceHash(src []byte) string {
	sum := sha256.Sum256(src)
	return hex.EncodeToString(sum[:])
}

// findCacheDir walks up from the config file looking for a
// node_modules directory. Returns "" when the project has none.
func findCacheDir(configPath string) string {
	dir := filepath.Dir(configPath)
	for {
		nm := filepath.Join(dir, "node_modules")
		if info, err := os.Stat(nm); err == nil && info.IsDir() {
			return filepath.Join(nm, ".cache", "devmoji")
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// readCachedConfig returns the cached config when it exists and its
// source hash still matches.
func readCachedConfig(cacheDir, hash string) (*fileConfig, bool) {
	data, err := os.ReadFile(filepath.Join(cacheDir, cacheFileName))
	if err != nil {
		return nil, false
	}
	var cached cachedConfig
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, false
	}
	if cached.SourceHash != hash {
		return nil, false
	}
	return &cached.Config, true
}

// writeCachedConfig stores a resolved config. Cache write failures
// only cost the next invocation a Node.js spawn, so they are logged
// and otherwise ignored.
func writeCachedConfig(cacheDir, hash string, fc *fileConfig) {
	data, err := json.Marshal(cachedConfig{SourceHash: hash, Config: *fc})
	if err != nil {
		return
	}
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		log.Debug().Err(err).Msg("Failed to create config cache directory")
		return
	}
	if err := os.WriteFile(filepath.Join(cacheDir, cacheFileName), data, 0o644); err != nil {
		log.Debug().Err(err).Msg("Failed to write config cache")
	}
}
