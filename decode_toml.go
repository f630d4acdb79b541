//go:build !configfile_no_toml

package configfile

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

func init() {
	register(FormatTOML, decodeTOML)
}

// decodeTOML buffers the whole input before decoding; the TOML library
// operates on a string, not an incremental stream. A failure while reading
// is still an access error, not a parse error.
func decodeTOML(r io.Reader, v any, knownFields bool) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFileAccess, err)
	}
	md, err := toml.Decode(string(data), v)
	if err != nil {
		return err
	}
	if knownFields {
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("unknown keys %v", undecoded)
		}
	}
	return nil
}
