package app

import (
	"io"
	"os"
	"path/filepath"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home       string    // keyring directory, e.g. $HOME/.cryptalg
	Passphrase string    // seals and opens stored private exponents
	LogLevel   string    // logrus level name; defaults to "info"
	LogOutput  io.Writer // optional; defaults to os.Stderr
	Random     io.Reader // optional; defaults to crypto/rand
}

// DefaultHome returns $HOME/.cryptalg, or .cryptalg when the home directory
// cannot be determined.
func DefaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cryptalg"
	}
	return filepath.Join(home, ".cryptalg")
}
