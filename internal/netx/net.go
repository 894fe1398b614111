// Package netx contains plain-HTTP helpers that sit outside the API client,
// currently fetching generated image files to local disk.
package netx

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
)

// DownloadToFile fetches url with a GET request and streams the body into
// destPath. The file is created (or truncated) before the request body is
// copied. Non-2xx responses are reported as errors with the status line.
func DownloadToFile(ctx context.Context, client *http.Client, url, destPath string) error {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("download failed: %s", resp.Status)
	}

	f, err := os.Create(destPath)
	if err != nil {
		return err
	}

	if _, err := io.Copy(f, resp.Body); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", destPath, err)
	}
	return f.Close()
}
