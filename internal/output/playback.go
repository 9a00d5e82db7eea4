package output

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"time"

	"mission-copilot/internal/mission"
)

// ReplayLog re-emits plans from a JSONL plan log into writer. A speed > 0
// spaces the plans by their original creation gaps divided by speed; speed
// <= 0 replays without delay. It returns the number of plans written.
func ReplayLog(ctx context.Context, r io.Reader, writer Writer, speed float64) (int, error) {
	dec := json.NewDecoder(r)
	var prev time.Time
	n := 0
	for {
		var p mission.Plan
		if err := dec.Decode(&p); err != nil {
			if errors.Is(err, io.EOF) {
				return n, nil
			}
			return n, err
		}
		if !prev.IsZero() && speed > 0 {
			diff := time.Duration(float64(p.CreatedAt.Sub(prev)) / speed)
			if diff > 0 {
				select {
				case <-ctx.Done():
					return n, ctx.Err()
				case <-time.After(diff):
				}
			}
		}
		if err := ctx.Err(); err != nil {
			return n, err
		}
		if err := writer.WritePlan(&p); err != nil {
			return n, err
		}
		n++
		prev = p.CreatedAt
	}
}

// ReplayLogFile opens a file and replays its plans.
func ReplayLogFile(ctx context.Context, path string, writer Writer, speed float64) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return ReplayLog(ctx, f, writer, speed)
}
