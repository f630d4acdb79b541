package configfile

import "io"

// decodeFunc decodes one format from r into v. knownFields requests
// rejection of fields absent from the target type, where the format's
// decoder can detect that. Read failures from r are wrapped with
// ErrFileAccess; everything else is a parse failure.
type decodeFunc func(r io.Reader, v any, knownFields bool) error

// decoders is the capability set of this build: one entry per enabled
// format. Populated only from per-format init functions, so it is read-only
// after program start and safe for concurrent lookups.
var decoders = make(map[Format]decodeFunc)

func register(f Format, fn decodeFunc) {
	decoders[f] = fn
}
