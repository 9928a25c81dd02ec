package crc

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrUnknownVariant is returned by Lookup for names the catalogue does
// not carry, under any alias.
var ErrUnknownVariant = errors.New("unknown CRC variant")

var (
	catalog []Params
	byName  map[string]int
)

func init() {
	catalog = make([]Params, 0, len(entries)+1)
	for _, e := range entries {
		catalog = append(catalog, e.params())
	}
	catalog = append(catalog, crc82Darc())

	byName = make(map[string]int, 2*len(catalog))
	for i, p := range catalog {
		register(p.Name, i)
		for _, a := range p.Aliases {
			register(a, i)
		}
	}
}

func register(name string, i int) {
	key := canonicalName(name)
	if _, dup := byName[key]; dup {
		panic("crc: duplicate catalogue name " + name)
	}
	byName[key] = i
}

func canonicalName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// Lookup resolves a variant by canonical name or alias. Matching is
// case-insensitive.
func Lookup(name string) (Params, error) {
	if i, ok := byName[canonicalName(name)]; ok {
		return catalog[i], nil
	}
	return Params{}, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

// All returns the catalogue in registration order. The slice is a copy;
// the parameter values are shared and must not be mutated.
func All() []Params {
	out := make([]Params, len(catalog))
	copy(out, catalog)
	return out
}

// Names returns every canonical variant name in catalogue order.
func Names() []string {
	out := make([]string, len(catalog))
	for i, p := range catalog {
		out[i] = p.Name
	}
	return out
}

// Filter selects catalogue entries by parameter values. A nil field
// matches everything. Residue only matches entries that define one.
type Filter struct {
	Width      *int
	Poly       *big.Int
	Init       *big.Int
	ReflectIn  *bool
	ReflectOut *bool
	XorOut     *big.Int
	Check      *big.Int
	Residue    *big.Int
}

func (f Filter) matches(p Params) bool {
	if f.Width != nil && *f.Width != p.Width {
		return false
	}
	if f.Poly != nil && f.Poly.Cmp(p.Poly) != 0 {
		return false
	}
	if f.Init != nil && f.Init.Cmp(p.Init) != 0 {
		return false
	}
	if f.ReflectIn != nil && *f.ReflectIn != p.ReflectIn {
		return false
	}
	if f.ReflectOut != nil && *f.ReflectOut != p.ReflectOut {
		return false
	}
	if f.XorOut != nil && f.XorOut.Cmp(p.XorOut) != 0 {
		return false
	}
	if f.Check != nil && (p.Check == nil || f.Check.Cmp(p.Check) != 0) {
		return false
	}
	if f.Residue != nil && (p.Residue == nil || f.Residue.Cmp(p.Residue) != 0) {
		return false
	}
	return true
}

// Find returns the catalogue entries matching the filter, in catalogue
// order. No match yields an empty slice, not an error.
func Find(f Filter) []Params {
	var found []Params
	for _, p := range catalog {
		if f.matches(p) {
			found = append(found, p)
		}
	}
	return found
}

// IdentifyOptions narrows an Identify scan. A zero Width means any
// width; nil Candidates means the whole catalogue.
type IdentifyOptions struct {
	Width      int
	Candidates []Params
	All        bool
}

// Identify scans for variants that produce the given CRC value over
// data. With All unset the scan stops at the first match. The result is
// empty when nothing matches; identification failure is an expected
// outcome, not an error. Scans over large data can be slow when the
// width is unknown.
func Identify(data []byte, value *big.Int, opts IdentifyOptions) []Params {
	candidates := opts.Candidates
	if candidates == nil {
		candidates = catalog
	}
	var found []Params
	for _, p := range candidates {
		if opts.Width != 0 && p.Width != opts.Width {
			continue
		}
		got, err := Compute(p, data)
		if err != nil {
			continue
		}
		if got.Cmp(value) == 0 {
			found = append(found, p)
			if !opts.All {
				break
			}
		}
	}
	return found
}
