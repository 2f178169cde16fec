package bench

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// InputRecord is one parsed line of a scenario JSONL file. Error is set
// when the line did not parse or validate; LineNumber always refers to
// the position in the source file.
type InputRecord struct {
	Scenario   Scenario
	LineNumber int
	Error      error
}

// Reader streams scenarios out of a JSONL source, one object per line.
// Blank lines are skipped but still counted.
type Reader struct {
	source io.Reader
	logger *zerolog.Logger
}

func NewReader(source io.Reader, logger *zerolog.Logger) *Reader {
	return &Reader{
		source: source,
		logger: logger,
	}
}

func (r *Reader) ReadAll(ctx context.Context) <-chan InputRecord {
	ch := make(chan InputRecord)

	go func() {
		defer close(ch)

		scanner := bufio.NewScanner(r.source)
		lineNumber := 0
		for scanner.Scan() {
			lineNumber++
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}

			record := InputRecord{LineNumber: lineNumber}
			var scenario Scenario
			if err := json.Unmarshal([]byte(line), &scenario); err != nil {
				record.Error = fmt.Errorf("line %d: %w", lineNumber, err)
			} else if err := scenario.Validate(); err != nil {
				record.Error = fmt.Errorf("line %d: %w", lineNumber, err)
			} else {
				record.Scenario = scenario
			}

			select {
			case ch <- record:
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			r.logger.Error().Err(err).Msg("Failed to read scenario input")
		}
	}()

	return ch
}
