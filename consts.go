package mathexpr

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// tableFile is the YAML form of a constant module:
//
//	name: physics
//	constants:
//	  c: 299792458
//	  g: 9.80665
type tableFile struct {
	Name      string             `yaml:"name"`
	Constants map[string]float64 `yaml:"constants"`
}

// LoadTable reads a module of constants from YAML. Constant names must be
// identifiers and must be distinct ignoring case.
func LoadTable(r io.Reader) (*Table, error) {
	var f tableFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty module document")
		}
		return nil, errors.Wrap(err, "decoding module")
	}
	if f.Name == "" {
		return nil, errors.New("module has no name")
	}
	t := NewTable(f.Name)
	for name, v := range f.Constants {
		if !isIdent(name) {
			return nil, errors.Errorf("module %s: constant name %q is not an identifier", f.Name, name)
		}
		if _, ok := t.Field(name); ok {
			return nil, errors.Errorf("module %s: constant %q is defined more than once", f.Name, name)
		}
		t.SetField(name, v)
	}
	return t, nil
}

// LoadTableFile reads a module of constants from a YAML file.
func LoadTableFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening module")
	}
	defer f.Close()
	t, err := LoadTable(f)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return t, nil
}
