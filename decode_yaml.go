//go:build !configfile_no_yaml

package configfile

import (
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

func init() {
	register(FormatYAML, decodeYAML)
}

func decodeYAML(r io.Reader, v any, knownFields bool) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(knownFields)
	if err := dec.Decode(v); err != nil {
		return err
	}
	// A config file holds exactly one YAML document; a second document
	// in the stream is a parse failure.
	switch err := dec.Decode(new(any)); err {
	case io.EOF:
		return nil
	case nil:
		return errors.New("unexpected second document")
	default:
		return err
	}
}
