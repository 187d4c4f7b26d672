package extractors

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const fetchTimeout = 60 * time.Second

func isRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

func httpClient(skipTLSVerify bool) *http.Client {
	client := &http.Client{Timeout: fetchTimeout}
	if skipTLSVerify {
		client.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}
	return client
}

// openSource opens a remote URL or a local path as a stream. The caller
// closes the returned reader.
func openSource(ctx context.Context, source string) (io.ReadCloser, error) {
	if !isRemote(source) {
		return os.Open(source)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, err
	}
	res, err := httpClient(false).Do(req)
	if err != nil {
		return nil, err
	}
	if res.StatusCode != http.StatusOK {
		res.Body.Close()
		return nil, fmt.Errorf("fetching %s: unexpected status %s", source, res.Status)
	}
	return res.Body, nil
}

// fetch downloads a remote resource in full, for formats that need random
// access to the whole payload (zip archives).
func fetch(ctx context.Context, source string, skipTLSVerify bool) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, err
	}
	res, err := httpClient(skipTLSVerify).Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: unexpected status %s", source, res.Status)
	}
	return io.ReadAll(res.Body)
}
