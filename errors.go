package configfile

import (
	"errors"
	"fmt"
)

// Exported error categories returned by this package. These are used with
// wrapping so callers can detect error classes using errors.Is/As.
//   - ErrFileAccess: the file could not be opened or read. Wraps the
//     underlying I/O error, so errors.Is(err, os.ErrNotExist) still works.
//   - ErrParse: the file was read but its contents could not be decoded into
//     the target type. The concrete error is a *ParseError.
//   - ErrUnsupportedFormat: the extension matched no enabled format. Returned
//     before any file I/O is attempted.
var (
	ErrFileAccess        = errors.New("read config file")
	ErrParse             = errors.New("parse config file")
	ErrUnsupportedFormat = errors.New("unsupported config file format")
)

// ParseError reports a decode failure for a specific file and format. Format
// tells the caller which grammar was violated; Err carries the decoder's
// diagnostic.
type ParseError struct {
	Format Format
	Path   string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s file %s: %v", e.Format, e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is ties every ParseError to the ErrParse class.
func (e *ParseError) Is(target error) bool { return target == ErrParse }
