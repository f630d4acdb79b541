// Package configfile loads a typed configuration value from a single file,
// selecting the decoder from the file's extension.
//
// It supports:
//  1. Extension-based format selection: .toml, .json, .yaml/.yml and .xml
//     (case-insensitive). Anything else fails with ErrUnsupportedFormat
//     before any file I/O happens.
//  2. Decoding into an arbitrary caller-supplied struct via each format's
//     standard reflective binding (BurntSushi/toml, encoding/json,
//     gopkg.in/yaml.v3, encoding/xml).
//  3. Per-format capability toggles: each decoder can be excluded at build
//     time with a configfile_no_<format> build tag, in which case its
//     extensions degrade to ErrUnsupportedFormat.
//  4. A closed error taxonomy (ErrFileAccess, ErrParse/ParseError,
//     ErrUnsupportedFormat) detectable with errors.Is/As.
//
// A load is a pure function of the file's contents at call time: no caching,
// no environment overlay, no write-back, no retries. Concurrent calls are
// safe without synchronization.
//
// Typical usage:
//
//	type Cfg struct {
//	    Host string `toml:"host" json:"host" yaml:"host" xml:"host"`
//	    Port int    `toml:"port" json:"port" yaml:"port" xml:"port"`
//	}
//
//	cfg, err := configfile.Load[Cfg]("/etc/myapp/config.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = cfg
package configfile
