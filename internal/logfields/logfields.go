package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID   = "run_id"
	KeyFormat  = "format"
	KeyPath    = "path"
	KeyInput   = "input_dir"
	KeyProgram = "program"
	KeyModule  = "module"
	KeyError   = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr     { return slog.String(KeyRunID, id) }
func Format(f string) slog.Attr     { return slog.String(KeyFormat, f) }
func Path(p string) slog.Attr       { return slog.String(KeyPath, p) }
func InputDir(p string) slog.Attr   { return slog.String(KeyInput, p) }
func Program(name string) slog.Attr { return slog.String(KeyProgram, name) }
func Module(name string) slog.Attr  { return slog.String(KeyModule, name) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
