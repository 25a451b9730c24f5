package config

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rs/zerolog/log"
)

// loadNodeConfig evaluates a JS/TS config file through Node.js. A
// loader snippet imports the file and serializes its default export
// to JSON on stdout. Results are cached by content hash (cache.go) so
// Node.js is only spawned when the config file actually changes.
func loadNodeConfig(path string) (*fileConfig, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	src, err := os.ReadFile(abs)
	if err != nil {
		return nil, err
	}
	hash := sourceHash(src)

	cacheDir := findCacheDir(abs)
	if cacheDir != "" {
		if fc, ok := readCachedConfig(cacheDir, hash); ok {
			log.Debug().Str("path", abs).Msg("Using cached evaluated config")
			return fc, nil
		}
	}

	loader := fmt.Sprintf(
		`import(%q).then(m => {const c = m.default ?? m; process.stdout.write(JSON.stringify(c));}).catch(e => {process.stderr.write(e.message); process.exit(1);})`,
		fileURL(abs),
	)

	ext := strings.TrimPrefix(filepath.Ext(abs), ".")
	isTypescript := ext == "ts" || ext == "mts"

	var out []byte
	if isTypescript {
		out, err = runTypescriptLoader(loader)
	} else {
		out, err = runLoader("node", "--input-type=module", "-e", loader)
	}
	if err != nil {
		hint := "ensure Node.js is available on your PATH"
		if isTypescript {
			hint = "ensure 'tsx' is installed (npm i -D tsx) or use Node.js >= 22.6 for TypeScript support"
		}
		return nil, fmt.Errorf("evaluating config with Node.js: %w (%s)", err, hint)
	}

	var fc fileConfig
	if err := json.Unmarshal(out, &fc); err != nil {
		return nil, fmt.Errorf("parsing evaluated config: %w", err)
	}

	if cacheDir != "" {
		writeCachedConfig(cacheDir, hash, &fc)
	}
	return &fc, nil
}

// runTypescriptLoader tries the known ways of executing TypeScript:
// a tsx binary, node with the tsx loader, and finally node's native
// type stripping.
func runTypescriptLoader(loader string) ([]byte, error) {
	if out, err := runLoader("tsx", "--eval", loader); err == nil {
		return out, nil
	}
	if out, err := runLoader("node", "--import", "tsx", "--input-type=module", "-e", loader); err == nil {
		return out, nil
	}
	return runLoader("node",
		"--experimental-strip-types",
		"--disable-warning=ExperimentalWarning",
		"--input-type=module",
		"-e", loader,
	)
}

func runLoader(name string, args ...string) ([]byte, error) {
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("%s: %s", name, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, err
	}
	return out, nil
}

// fileURL converts an absolute path to a file:// URL for dynamic
// import(). Windows drive paths need an extra slash.
func fileURL(path string) string {
	path = filepath.ToSlash(path)
	if runtime.GOOS == "windows" && !strings.HasPrefix(path, "/") {
		return "file:///" + path
	}
	return "file://" + path
}
