package runconfig

import (
	"fmt"
	"os"

	"git.home.luguber.info/inful/spec-parser/internal/logfields"
)

// CreateOutputDirs creates the output directory of every enabled format,
// including missing parents. With force set, an existing directory is
// removed first. This is the only state-mutating filesystem operation of
// the run configuration; it must only run after HasErrors returned false.
func (rc *RunConfig) CreateOutputDirs() error {
	for _, f := range AllFormats() {
		target := rc.Targets[f]
		if target == nil || !target.Enabled || target.OutputPath == "" {
			continue
		}

		if rc.Force && pathExists(target.OutputPath) {
			if err := os.RemoveAll(target.OutputPath); err != nil {
				return fmt.Errorf("failed to remove existing output directory %s: %w", target.OutputPath, err)
			}
			rc.logger.Debug("Removed existing output directory",
				logfields.Format(string(f)), logfields.Path(target.OutputPath))
		}

		if err := os.MkdirAll(target.OutputPath, 0o750); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", target.OutputPath, err)
		}
		rc.logger.Debug("Created output directory",
			logfields.Format(string(f)), logfields.Path(target.OutputPath))
	}
	return nil
}
