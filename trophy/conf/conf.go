// Package conf reads TROPCONF.SFM, the trophy-definition file that sits next
// to TROPTRNS.DAT in a trophy directory.
package conf

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/joshuapare/trophykit/pkg/types"
	"github.com/joshuapare/trophykit/trophy"
)

// FileName is the definition file name inside a trophy directory.
const FileName = "TROPCONF.SFM"

// sfmPrefix is the binary preamble ahead of the XML body on console dumps.
const sfmPrefix = 0x40

// Definitions is the decoded trophy set.
type Definitions struct {
	Version          string       `xml:"version,attr"`
	NPCommID         string       `xml:"npcommid"`
	TrophySetVersion string       `xml:"trophyset-version"`
	ParentalLevel    string       `xml:"parental-level"`
	TitleName        string       `xml:"title-name"`
	TitleDetail      string       `xml:"title-detail"`
	Trophies         []Definition `xml:"trophy"`
}

// Definition describes one trophy of the set.
type Definition struct {
	ID     int32  `xml:"id,attr"`
	Hidden string `xml:"hidden,attr"`
	TType  string `xml:"ttype,attr"`
	PID    int32  `xml:"pid,attr"`
	GID    int32  `xml:"gid,attr"`
	Name   string `xml:"name"`
	Detail string `xml:"detail"`
}

// IsHidden reports whether the trophy is secret until unlocked.
func (d Definition) IsHidden() bool {
	return strings.EqualFold(d.Hidden, "yes")
}

// Type resolves the ttype code to a trophy tier.
func (d Definition) Type() (trophy.TrophyType, error) {
	return trophy.ParseTrophyType(d.TType)
}

// HasPlatinum reports whether the set opens with a platinum trophy.
func (d *Definitions) HasPlatinum() bool {
	return len(d.Trophies) > 0 && d.Trophies[0].TType == "P"
}

// Lookup returns the definition for a trophy id.
func (d *Definitions) Lookup(id int32) (Definition, bool) {
	for _, t := range d.Trophies {
		if t.ID == id {
			return t, true
		}
	}
	return Definition{}, false
}

// Open reads <dir>/TROPCONF.SFM. The RPCS3 layout stores bare XML without
// the SFM preamble.
func Open(dir string, rpcs3 bool) (*Definitions, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, types.IOError(errors.New("trophy directory cannot be empty"))
	}
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		return nil, types.IOError(err)
	}
	return Parse(data, rpcs3)
}

// Parse decodes a TROPCONF.SFM image.
func Parse(data []byte, rpcs3 bool) (*Definitions, error) {
	if !rpcs3 {
		if len(data) < sfmPrefix {
			return nil, types.FormatError(fmt.Errorf("%s: %d bytes, shorter than the 0x%x-byte preamble", FileName, len(data), sfmPrefix))
		}
		data = data[sfmPrefix:]
	}
	data = bytes.Trim(data, "\x00")

	body, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
	if err != nil {
		return nil, types.FormatError(fmt.Errorf("%s: decode text: %w", FileName, err))
	}

	var defs Definitions
	if err := xml.Unmarshal(body, &defs); err != nil {
		return nil, types.FormatError(fmt.Errorf("%s: %w", FileName, err))
	}
	if len(defs.Trophies) == 0 {
		return nil, types.FormatError(fmt.Errorf("%s: no trophy elements", FileName))
	}
	return &defs, nil
}
