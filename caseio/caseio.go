// Package caseio reads reconstruction cases from JSON documents of the form
//
//	{
//	  "keys": {"n": 4, "k": 3},
//	  "1": {"base": "10", "value": "4"},
//	  "2": {"base": "2", "value": "111"},
//	  ...
//	}
//
// where every field other than "keys" is a share whose name is its x
// coordinate.
package caseio

import (
	"bytes"
	"math/big"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	shamir "github.com/renproject/shamir-recovery"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// KeysField is the reserved field holding the case parameters.
const KeysField = "keys"

// Ext is the extension of case files.
const Ext = ".json"

type keys struct {
	N flexInt `json:"n"`
	K flexInt `json:"k"`
}

type share struct {
	Base  flexInt `json:"base"`
	Value string  `json:"value"`
}

// flexInt is an integer that may be written either as a JSON number or as a
// string holding a decimal integer.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return errors.Wrapf(err, "parse %q as an integer", s)
		}
		*f = flexInt(v)
		return nil
	}

	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = flexInt(v)
	return nil
}

// Parse parses a case from a JSON document. The shares of the returned case
// are ordered by ascending x coordinate, which makes the set of shares chosen
// for reconstruction independent of the field order in the document.
func Parse(id string, data []byte) (shamir.Case, error) {
	var raw map[string]jsoniter.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return shamir.Case{}, errors.Wrap(err, "decode case")
	}

	keysData, ok := raw[KeysField]
	if !ok {
		return shamir.Case{}, errors.Errorf("missing %q field", KeysField)
	}
	var ks keys
	if err := json.Unmarshal(keysData, &ks); err != nil {
		return shamir.Case{}, errors.Wrapf(err, "decode %q field", KeysField)
	}

	shares := make(shamir.Shares, 0, len(raw))
	for label, data := range raw {
		if label == KeysField {
			continue
		}

		x, ok := new(big.Int).SetString(label, 10)
		if !ok {
			return shamir.Case{}, errors.Errorf("share label %q is not an integer", label)
		}
		var s share
		if err := json.Unmarshal(data, &s); err != nil {
			return shamir.Case{}, errors.Wrapf(err, "decode share %q", label)
		}
		shares = append(shares, shamir.NewShare(x, int(s.Base), s.Value))
	}

	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Index.Cmp(shares[j].Index) < 0
	})

	return shamir.Case{
		ID:     id,
		N:      int(ks.N),
		K:      int(ks.K),
		Shares: shares,
	}, nil
}

// ReadFile reads and parses the case in the given file. The case is
// identified by the base name of the file, which is set on the returned case
// even when reading fails.
func ReadFile(path string) (shamir.Case, error) {
	id := filepath.Base(path)
	data, err := os.ReadFile(path)
	if err != nil {
		return shamir.Case{ID: id}, errors.Wrapf(err, "read %q", path)
	}

	c, err := Parse(id, data)
	if err != nil {
		return shamir.Case{ID: id}, errors.Wrapf(err, "parse %q", path)
	}
	return c, nil
}

// List returns the paths of the case files directly inside the given
// directory, sorted by name.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "list %q", dir)
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), Ext) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}
