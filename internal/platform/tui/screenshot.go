package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// errNoClipboard is returned when no clipboard utility is available.
var errNoClipboard = errors.New("tui: clipboard unavailable")

// screenshotDir returns ~/.arcade/screenshots, or a relative fallback when
// the home directory is unknown.
func screenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "screenshots"
	}
	return filepath.Join(home, ".arcade", "screenshots")
}

// saveScreenshot writes the plain-text screen to dir and returns the file path.
func saveScreenshot(dir, gameID string, s *core.Screen, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: create screenshot dir: %w", err)
	}

	// Generate filename with timestamp
	filename := fmt.Sprintf("%s_%s.txt", gameID, now.Format("20060102_150405"))
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(s.String()+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("tui: write screenshot: %w", err)
	}
	return path, nil
}

// copyScreen puts the plain-text screen on the system clipboard.
func copyScreen(s *core.Screen) error {
	if clipboard.Unsupported {
		return errNoClipboard
	}
	if err := clipboard.WriteAll(s.String()); err != nil {
		return fmt.Errorf("tui: copy screen: %w", err)
	}
	return nil
}
