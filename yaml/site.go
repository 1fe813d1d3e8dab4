// Package yaml loads site configuration files.
package yaml

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/fwojciec/letterfreq"
	"gopkg.in/yaml.v3"
)

// LoadSite reads a site configuration from the YAML file at path.
// Fields absent from the file keep their biblior.net defaults.
func LoadSite(path string) (letterfreq.Site, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return letterfreq.Site{}, letterfreq.Errorf(letterfreq.ENOTFOUND, "site file %s not found", path)
		}
		return letterfreq.Site{}, err
	}
	return ParseSite(data)
}

// ParseSite decodes a YAML site configuration over the defaults.
// Unknown keys are rejected so a misspelled selector does not go unnoticed.
func ParseSite(data []byte) (letterfreq.Site, error) {
	site := letterfreq.DefaultSite()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&site); err != nil && !errors.Is(err, io.EOF) {
		return letterfreq.Site{}, letterfreq.Errorf(letterfreq.EINVALID, "parse site file: %v", err)
	}

	if err := site.Validate(); err != nil {
		return letterfreq.Site{}, err
	}
	return site, nil
}
