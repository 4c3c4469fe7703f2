package shared

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// NewLogger builds a timestamped zerolog logger at the named level. An empty
// level means info and a nil writer means stderr.
func NewLogger(level string, writer io.Writer) (zerolog.Logger, error) {
	normalized := strings.ToLower(strings.TrimSpace(level))
	if normalized == "" {
		normalized = zerolog.InfoLevel.String()
	}

	parsed, err := zerolog.ParseLevel(normalized)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("unsupported log level %q", level)
	}

	if writer == nil {
		writer = os.Stderr
	}

	return zerolog.New(writer).Level(parsed).With().Timestamp().Logger(), nil
}
