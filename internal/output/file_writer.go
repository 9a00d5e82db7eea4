package output

import (
	"encoding/json"
	"errors"
	"os"
	"sync"

	"mission-copilot/internal/mission"
)

// FileWriter appends plans, and optionally their track points, to JSONL files.
type FileWriter struct {
	mu        sync.Mutex
	planFile  *os.File
	trackFile *os.File
	planEnc   *json.Encoder
	trackEnc  *json.Encoder
}

// NewFileWriter creates a FileWriter. trackPath may be empty to skip the
// track-point log.
func NewFileWriter(planPath, trackPath string) (*FileWriter, error) {
	pf, err := os.Create(planPath)
	if err != nil {
		return nil, err
	}
	fw := &FileWriter{planFile: pf, planEnc: json.NewEncoder(pf)}
	if trackPath != "" {
		tf, err := os.Create(trackPath)
		if err != nil {
			pf.Close()
			return nil, err
		}
		fw.trackFile = tf
		fw.trackEnc = json.NewEncoder(tf)
	}
	return fw, nil
}

// WritePlan logs the plan and its flattened track points.
func (f *FileWriter) WritePlan(p *mission.Plan) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.planEnc.Encode(p); err != nil {
		return err
	}
	if f.trackEnc == nil {
		return nil
	}
	for _, r := range p.TrackPointRows() {
		if err := f.trackEnc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the underlying files.
func (f *FileWriter) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	var errs []error
	errs = append(errs, f.planFile.Close())
	if f.trackFile != nil {
		errs = append(errs, f.trackFile.Close())
	}
	return errors.Join(errs...)
}
