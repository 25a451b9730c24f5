package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/haytac/devmoji/internal/moji"
)

// Config is the resolved configuration handed to the resolver and
// linter. It is built once at startup and immutable afterwards.
type Config struct {
	Types    []string
	Devmojis []moji.VocabularyEntry
}

// fileConfig is the on-disk shape of devmoji.config.*.
type fileConfig struct {
	Types   []string    `mapstructure:"types" json:"types,omitempty"`
	Devmoji []fileEntry `mapstructure:"devmoji" json:"devmoji,omitempty"`
}

// fileEntry is one configured alias. Either emoji or gitmoji names
// the target; gitmoji also provides a fallback description.
type fileEntry struct {
	Code        string `mapstructure:"code" json:"code"`
	Emoji       string `mapstructure:"emoji" json:"emoji,omitempty"`
	Gitmoji     string `mapstructure:"gitmoji" json:"gitmoji,omitempty"`
	Description string `mapstructure:"description" json:"description,omitempty"`
}

// DefaultTypes is the conventional-commit type vocabulary used when
// the config does not extend it.
var DefaultTypes = []string{
	"feat", "fix", "docs", "style", "refactor", "perf", "test", "chore", "build", "ci",
}

// DefaultDevmojis is the built-in pack. Order matters: conversions
// and dedup use first-match-wins over this sequence.
var DefaultDevmojis = []moji.VocabularyEntry{
	{Code: "feat", Emoji: "sparkles", Description: "a new feature"},
	{Code: "fix", Emoji: "bug", Description: "a bug fix"},
	{Code: "docs", Emoji: "books", Description: "documentation only changes"},
	{Code: "style", Emoji: "art", Description: "changes that do not affect the meaning of the code"},
	{Code: "refactor", Emoji: "recycle", Description: "a code change that neither fixes a bug nor adds a feature"},
	{Code: "perf", Emoji: "zap", Description: "a code change that improves performance"},
	{Code: "test", Emoji: "rotating_light", Description: "adding missing or correcting existing tests"},
	{Code: "chore", Emoji: "wrench", Description: "changes to the build process or auxiliary tools"},
	{Code: "chore-release", Emoji: "rocket", Description: "code deployment or publishing to external repositories"},
	{Code: "chore-deps", Emoji: "link", Description: "add or delete dependencies"},
	{Code: "build", Emoji: "package", Description: "changes related to build processes"},
	{Code: "ci", Emoji: "construction_worker", Description: "updates to the continuous integration system"},
	{Code: "release", Emoji: "rocket", Description: "code deployment or publishing to external repositories"},
	{Code: "security", Emoji: "lock", Description: "fixing security issues"},
	{Code: "i18n", Emoji: "globe_with_meridians", Description: "internationalization and localization"},
	{Code: "breaking", Emoji: "boom", Description: "introducing breaking changes"},
	{Code: "config", Emoji: "gear", Description: "changing configuration files"},
	{Code: "add", Emoji: "heavy_plus_sign", Description: "add something"},
	{Code: "remove", Emoji: "heavy_minus_sign", Description: "remove something"},
}

// configExtensions lists the supported config file extensions in
// discovery priority order. The js/ts variants are evaluated through
// Node.js (see nodeconfig.go).
var configExtensions = []string{"json", "yaml", "toml", "ts", "mts", "js", "mjs"}

// Default returns a fresh copy of the built-in configuration.
func Default() *Config {
	return &Config{
		Types:    append([]string(nil), DefaultTypes...),
		Devmojis: append([]moji.VocabularyEntry(nil), DefaultDevmojis...),
	}
}

// Load resolves the configuration. An explicit path must load; a
// discovered file that fails to load logs a warning and falls back to
// the defaults, matching the degrade-gracefully policy of the core.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = findConfigFile()
	}
	if path == "" {
		return Default(), nil
	}

	fc, err := loadFile(path)
	if err != nil {
		if explicit {
			return nil, fmt.Errorf("loading config %s: %w", path, err)
		}
		log.Warn().Err(err).Str("path", path).Msg("Ignoring unreadable config file")
		return Default(), nil
	}
	log.Debug().Str("path", path).Msg("Loaded config file")
	return Merge(Default(), fc), nil
}

// Merge overlays a file config onto base, producing a new Config.
// Types append when unknown; pack entries overwrite by code (config
// wins) or append at the end, preserving order.
func Merge(base *Config, fc *fileConfig) *Config {
	out := &Config{
		Types:    append([]string(nil), base.Types...),
		Devmojis: append([]moji.VocabularyEntry(nil), base.Devmojis...),
	}
	if fc == nil {
		return out
	}

	for _, t := range fc.Types {
		if !containsString(out.Types, t) {
			out.Types = append(out.Types, t)
		}
	}

	for _, fe := range fc.Devmoji {
		emoji, desc := fe.resolve()
		if i := entryIndex(out.Devmojis, fe.Code); i >= 0 {
			if emoji != "" {
				out.Devmojis[i].Emoji = emoji
			}
			if desc != "" {
				out.Devmojis[i].Description = desc
			}
		} else {
			out.Devmojis = append(out.Devmojis, moji.VocabularyEntry{
				Code:        fe.Code,
				Emoji:       emoji,
				Description: desc,
			})
		}
	}
	return out
}

// resolve fills missing emoji and description fields from the legacy
// gitmoji vocabulary. The gitmoji reference resolves to the gitmoji
// code (a shortcode), not its glyph.
func (fe fileEntry) resolve() (emoji, desc string) {
	emoji = fe.Emoji
	desc = fe.Description
	if fe.Gitmoji != "" {
		if g, ok := moji.LookupGitmoji(fe.Gitmoji); ok {
			if emoji == "" {
				emoji = g.Code
			}
			if desc == "" {
				desc = g.Description
			}
		}
	}
	return emoji, desc
}

func loadFile(path string) (*fileConfig, error) {
	switch strings.TrimPrefix(filepath.Ext(path), ".") {
	case "js", "mjs", "ts", "mts":
		return loadNodeConfig(path)
	default:
		return loadDeclarativeFile(path)
	}
}

// loadDeclarativeFile reads a json/yaml/toml config through viper.
func loadDeclarativeFile(path string) (*fileConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("DEVMOJI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	var fc fileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return nil, err
	}
	return &fc, nil
}

// findConfigFile searches the working directory and its parents, then
// the home directory, for a devmoji.config.* file.
func findConfigFile() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	if found := findConfigFrom(cwd); found != "" {
		return found
	}
	if home, err := os.UserHomeDir(); err == nil {
		if found := findConfigInDir(home); found != "" {
			return found
		}
	}
	return ""
}

func findConfigFrom(dir string) string {
	for {
		if found := findConfigInDir(dir); found != "" {
			return found
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func findConfigInDir(dir string) string {
	for _, ext := range configExtensions {
		candidate := filepath.Join(dir, "devmoji.config."+ext)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func entryIndex(entries []moji.VocabularyEntry, code string) int {
	for i, e := range entries {
		if e.Code == code {
			return i
		}
	}
	return -1
}
