package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Fragment is one configuration layer: top-level keys mapped to their raw
// JSON values. Merging operates on whole top-level values only.
type Fragment map[string]json.RawMessage

// Status describes how a layer was obtained.
type Status int

const (
	StatusLoaded Status = iota
	StatusMissing
	StatusMalformed
)

func (s Status) String() string {
	switch s {
	case StatusLoaded:
		return "loaded"
	case StatusMissing:
		return "missing"
	case StatusMalformed:
		return "malformed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Layer is the outcome of loading one configuration source. Missing and
// malformed layers carry an empty Fragment; Err records why a malformed file
// was ignored.
type Layer struct {
	Name     string
	Path     string
	Status   Status
	Err      error
	Fragment Fragment
}

// LoadLayer reads an optional JSON override file. It never fails: a file that
// does not exist yields StatusMissing, one that cannot be read or is not a
// JSON object yields StatusMalformed. Both contribute nothing to the merge.
func LoadLayer(name, path string) Layer {
	layer := Layer{Name: name, Path: path, Fragment: Fragment{}}
	if path == "" {
		layer.Status = StatusMissing
		return layer
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		layer.Status = StatusMissing
		return layer
	}
	if err != nil {
		layer.Status = StatusMalformed
		layer.Err = fmt.Errorf("reading %s: %w", path, err)
		return layer
	}

	frag, err := ParseFragment(data)
	if err != nil {
		layer.Status = StatusMalformed
		layer.Err = fmt.Errorf("parsing %s: %w", path, err)
		return layer
	}

	layer.Status = StatusLoaded
	layer.Fragment = frag
	return layer
}

// ParseFragment decodes a JSON object into a Fragment. A JSON null decodes to
// an empty fragment.
func ParseFragment(data []byte) (Fragment, error) {
	var frag Fragment
	if err := json.Unmarshal(data, &frag); err != nil {
		return nil, err
	}
	if frag == nil {
		frag = Fragment{}
	}
	return frag, nil
}

// Merge combines fragments left to right. A key present in a later fragment
// replaces the earlier value entirely; nested objects are not merged.
func Merge(fragments ...Fragment) Fragment {
	merged := Fragment{}
	for _, frag := range fragments {
		for key, value := range frag {
			merged[key] = value
		}
	}
	return merged
}
