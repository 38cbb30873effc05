package service

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// InputService collects CIDR candidates from a line-oriented stream,
// typically a stdin pipe.
type InputService struct {
	logger zerolog.Logger
}

// NewInputService creates a new input service
func NewInputService(logger zerolog.Logger) *InputService {
	return &InputService{
		logger: logger,
	}
}

// Read returns one candidate per line, in stream order. Blank lines and
// `#` comments are skipped; candidates are trimmed but not validated here.
func (s *InputService) Read(r io.Reader) ([]string, error) {
	inputs := make([]string, 0)
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		inputs = append(inputs, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	s.logger.Debug().
		Int("count", len(inputs)).
		Msg("Collected input lines")

	return inputs, nil
}
