//go:build !configfile_no_json

package configfile

import (
	"encoding/json"
	"errors"
	"io"
)

func init() {
	register(FormatJSON, decodeJSON)
}

func decodeJSON(r io.Reader, v any, knownFields bool) error {
	dec := json.NewDecoder(r)
	if knownFields {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(v); err != nil {
		return err
	}
	// A config file holds exactly one JSON value; anything after it,
	// valid JSON or not, is a parse failure.
	switch err := dec.Decode(new(any)); err {
	case io.EOF:
		return nil
	case nil:
		return errors.New("unexpected data after top-level value")
	default:
		return err
	}
}
