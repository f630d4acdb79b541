//go:build !configfile_no_xml

package configfile

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
)

func init() {
	register(FormatXML, decodeXML)
}

// decodeXML ignores knownFields: encoding/xml silently drops elements that
// match no struct field and offers no way to detect them.
func decodeXML(r io.Reader, v any, _ bool) error {
	dec := xml.NewDecoder(r)
	if err := dec.Decode(v); err != nil {
		return err
	}
	// A config file holds exactly one root element. After it, only
	// whitespace, comments and processing instructions may follow.
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return errors.New("unexpected data after root element")
			}
		case xml.Comment, xml.ProcInst, xml.Directive:
		default:
			return errors.New("unexpected data after root element")
		}
	}
}
