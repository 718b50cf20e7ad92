// Package assets ensures the model file exists locally, fetching it from a
// configured URL on first run.
package assets

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

const fetchTimeout = 60 * time.Second

// ErrNoModel is returned when the model file is missing and no URL is
// configured to fetch it from.
var ErrNoModel = fmt.Errorf("assets: no model file and no model URL configured")

// EnsureModel returns path if the file already exists; otherwise it
// downloads it from url and saves it at path, creating parent directories as
// needed. The partial file is removed on a failed download so the next run
// retries cleanly.
func EnsureModel(path, url string) (string, error) {
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if url == "" {
		return "", ErrNoModel
	}

	client := &http.Client{Timeout: fetchTimeout}
	resp, err := client.Get(url)
	if err != nil {
		return "", fmt.Errorf("assets: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("assets: HTTP %d fetching %s", resp.StatusCode, url)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("assets: %w", err)
	}
	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("assets: %w", err)
	}
	defer out.Close()
	if _, err := io.Copy(out, resp.Body); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("assets: %w", err)
	}
	return path, nil
}
