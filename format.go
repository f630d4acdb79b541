package configfile

import (
	"path/filepath"
	"strings"
)

// Format identifies the syntax family of a configuration file, derived from
// its extension. The zero value is FormatUnknown.
type Format int

const (
	FormatUnknown Format = iota
	FormatTOML
	FormatJSON
	FormatYAML
	FormatXML
)

// allFormats lists the concrete formats in declaration order. Used for
// stable iteration; registration state lives in the decoder registry.
var allFormats = []Format{FormatTOML, FormatJSON, FormatYAML, FormatXML}

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "TOML"
	case FormatJSON:
		return "JSON"
	case FormatYAML:
		return "YAML"
	case FormatXML:
		return "XML"
	}
	return "unknown"
}

// Supported reports whether this build has a decoder registered for f.
func (f Format) Supported() bool {
	_, ok := decoders[f]
	return ok
}

// Classify maps a path to a Format using the extension of its final segment,
// case-insensitively: .toml, .json, .yaml/.yml, .xml. Any other or missing
// extension yields FormatUnknown. Classification is pure string work and does
// not consult the file system or the decoder registry; a format excluded from
// the build still classifies, and fails later at dispatch.
func Classify(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".xml":
		return FormatXML
	}
	return FormatUnknown
}

// Formats returns the formats enabled in this build, in declaration order.
func Formats() []Format {
	enabled := make([]Format, 0, len(decoders))
	for _, f := range allFormats {
		if _, ok := decoders[f]; ok {
			enabled = append(enabled, f)
		}
	}
	return enabled
}
