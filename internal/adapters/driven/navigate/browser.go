// Package navigate provides Navigator implementations. The browser
// navigator joins resolved paths onto a platform base URL and opens
// them in the system browser.
package navigate

import (
	"context"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"

	"github.com/custodia-labs/unisearch/internal/core/ports/driven"
	"github.com/custodia-labs/unisearch/internal/logger"
)

// Ensure BrowserNavigator implements the interface.
var _ driven.Navigator = (*BrowserNavigator)(nil)

// BrowserNavigator opens resolved paths in the default browser.
type BrowserNavigator struct {
	baseURL string
	// open is swappable for tests.
	open func(url string) error
}

// NewBrowserNavigator creates a navigator rooted at baseURL, e.g.
// "https://app.example.com".
func NewBrowserNavigator(baseURL string) *BrowserNavigator {
	return &BrowserNavigator{
		baseURL: strings.TrimRight(baseURL, "/"),
		open:    openURL,
	}
}

// Navigate opens the path in the system browser.
func (n *BrowserNavigator) Navigate(_ context.Context, path string) error {
	target, err := n.fullURL(path)
	if err != nil {
		return err
	}
	logger.Debug("Opening %s", target)
	return n.open(target)
}

// Prefetch is meaningless for an external browser.
func (n *BrowserNavigator) Prefetch(context.Context, string) error {
	return nil
}

// fullURL joins the path onto the base URL.
func (n *BrowserNavigator) fullURL(path string) (string, error) {
	if n.baseURL == "" {
		return "", fmt.Errorf("no base URL configured")
	}
	if _, err := url.Parse(n.baseURL + path); err != nil {
		return "", fmt.Errorf("building URL for %s: %w", path, err)
	}
	return n.baseURL + path, nil
}

// openURL launches the platform's URL handler.
func openURL(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}
