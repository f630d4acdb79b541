package configfile

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Option configures a single load call. Options are composable and can be
// passed to Load, LoadInto and LoadFS in any order.
type Option func(*options)

type options struct {
	knownFields bool
}

// WithKnownFields makes the decoder reject fields in the file that do not
// map onto the target type, where the format supports detecting them (TOML,
// JSON, YAML). XML ignores this option. Violations are reported as parse
// errors. Without this option, unknown fields are silently ignored.
func WithKnownFields() Option {
	return func(o *options) {
		o.knownFields = true
	}
}

// Load reads the configuration file at path, selects a decoder from the
// path's extension and decodes the contents into a new T.
//
// Errors are distinguishable by kind: ErrUnsupportedFormat when the
// extension matches no enabled format (returned before any file I/O),
// ErrFileAccess when the file cannot be opened or read, and ErrParse (a
// *ParseError carrying the Format) when the contents do not decode into T.
// Nothing is retried or guessed: a .toml file that fails to parse is never
// re-tried as another format.
func Load[T any](path string, opts ...Option) (*T, error) {
	var cfg T
	if err := LoadInto(path, &cfg, opts...); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadInto is Load for callers that already hold a destination value.
// v must be a non-nil pointer, as required by the underlying decoders.
func LoadInto(path string, v any, opts ...Option) error {
	format, dec, err := dispatch(path)
	if err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrFileAccess, path, err)
	}
	defer f.Close()
	return decode(dec, format, path, f, v, opts)
}

// LoadFS is Load against an fs.FS, e.g. an embed.FS or a test filesystem.
// Semantics are identical to Load; only the open goes through fsys.
func LoadFS[T any](fsys fs.FS, path string, opts ...Option) (*T, error) {
	var cfg T
	format, dec, err := dispatch(path)
	if err != nil {
		return nil, err
	}
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrFileAccess, path, err)
	}
	defer f.Close()
	if err := decode(dec, format, path, f, &cfg, opts); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// dispatch classifies the path and resolves its decoder. It performs no I/O,
// so an unsupported extension never touches the file system.
func dispatch(path string) (Format, decodeFunc, error) {
	format := Classify(path)
	dec, ok := decoders[format]
	if !ok {
		return format, nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
	return format, dec, nil
}

func decode(dec decodeFunc, format Format, path string, r io.Reader, v any, opts []Option) error {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if err := dec(r, v, o.knownFields); err != nil {
		// Decoders that buffer their input report read failures as
		// ErrFileAccess; keep those out of the parse class.
		if errors.Is(err, ErrFileAccess) {
			return fmt.Errorf("%s: %w", path, err)
		}
		return &ParseError{Format: format, Path: path, Err: err}
	}
	return nil
}
