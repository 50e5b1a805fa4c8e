package stdf

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/danmuck/stdfkit/internal/protocol/record"
)

var (
	ErrKindExists  = errors.New("stdf: kind already registered")
	ErrKindNil     = errors.New("stdf: kind is nil")
	ErrUnknownKind = errors.New("stdf: unknown record kind")
)

// Kind pairs a record schema with a constructor of a default-valued instance.
// Fields a kind requires are left at their zero value by New.
type Kind struct {
	Schema *record.Schema
	New    func() record.Record
}

// Registry stores record kinds by name and by (typ, sub) code.
type Registry struct {
	items map[string]Kind
	codes map[uint16]string
}

func NewRegistry() *Registry {
	return &Registry{items: make(map[string]Kind), codes: make(map[uint16]string)}
}

// Register adds a kind. Names and codes must both be unique.
func (r *Registry) Register(k Kind) error {
	if k.Schema == nil || k.New == nil {
		return ErrKindNil
	}
	name := k.Schema.Name
	if _, ok := r.items[name]; ok {
		return fmt.Errorf("%w: %s", ErrKindExists, name)
	}
	code := codeOf(k.Schema.Typ, k.Schema.Sub)
	if prev, ok := r.codes[code]; ok {
		return fmt.Errorf("%w: %s shares code %s with %s", ErrKindExists, name, k.Schema, prev)
	}
	r.items[name] = k
	r.codes[code] = name
	return nil
}

// Resolve returns a kind by name, ignoring case.
func (r *Registry) Resolve(name string) (Kind, bool) {
	k, ok := r.items[strings.ToUpper(strings.TrimSpace(name))]
	return k, ok
}

// ByCode returns the kind registered under a header (typ, sub) pair.
func (r *Registry) ByCode(typ, sub uint8) (Kind, bool) {
	name, ok := r.codes[codeOf(typ, sub)]
	if !ok {
		return Kind{}, false
	}
	return r.items[name], true
}

// New constructs a default-valued record of the named kind.
func (r *Registry) New(name string) (record.Record, error) {
	k, ok := r.Resolve(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
	return k.New(), nil
}

// List returns every kind ordered by (typ, sub).
func (r *Registry) List() []Kind {
	list := make([]Kind, 0, len(r.items))
	for _, k := range r.items {
		list = append(list, k)
	}
	sort.Slice(list, func(i, j int) bool {
		return codeOf(list[i].Schema.Typ, list[i].Schema.Sub) < codeOf(list[j].Schema.Typ, list[j].Schema.Sub)
	})
	return list
}

func codeOf(typ, sub uint8) uint16 {
	return uint16(typ)<<8 | uint16(sub)
}

var defaultRegistry = mustDefaultRegistry()

// Default returns the registry holding every STDF V4 kind.
func Default() *Registry { return defaultRegistry }

// Lookup resolves a kind in the default registry.
func Lookup(name string) (Kind, bool) { return defaultRegistry.Resolve(name) }

func mustDefaultRegistry() *Registry {
	r := NewRegistry()
	kinds := []Kind{
		{farSchema, func() record.Record { return DefaultFAR() }},
		{atrSchema, func() record.Record { return NewATR(0, "") }},
		{mirSchema, func() record.Record { return NewMIR(0, 0, 0, "", "", "", "", "") }},
		{mrrSchema, func() record.Record { return NewMRR(0) }},
		{pcrSchema, func() record.Record { return NewPCR(0, 0, 0) }},
		{hbrSchema, func() record.Record { return NewHBR(0, 0, 0, 0) }},
		{sbrSchema, func() record.Record { return NewSBR(0, 0, 0, 0) }},
		{pmrSchema, func() record.Record { return NewPMR(0) }},
		{pgrSchema, func() record.Record { return NewPGR(0) }},
		{plrSchema, func() record.Record { return NewPLR() }},
		{rdrSchema, func() record.Record { return NewRDR() }},
		{sdrSchema, func() record.Record { return NewSDR(0, 0) }},
		{wirSchema, func() record.Record { return NewWIR(0, 0) }},
		{wrrSchema, func() record.Record { return NewWRR(0, 0, 0) }},
		{wcrSchema, func() record.Record { return NewWCR() }},
		{pirSchema, func() record.Record { return NewPIR(0, 0) }},
		{prrSchema, func() record.Record { return NewPRR(0, 0, 0, 0, 0) }},
		{tsrSchema, func() record.Record { return NewTSR(0, 0, 0) }},
		{ptrSchema, func() record.Record { return NewPTR(0, 0, 0, 0, 0, 0) }},
		{mprSchema, func() record.Record { return NewMPR(0, 0, 0, 0, 0, nil, nil) }},
		{ftrSchema, func() record.Record { return NewFTR(0, 0, 0, 0) }},
		{bpsSchema, func() record.Record { return NewBPS("") }},
		{epsSchema, func() record.Record { return NewEPS() }},
		{gdrSchema, func() record.Record { return NewGDR() }},
		{dtrSchema, func() record.Record { return NewDTR("") }},
	}
	for _, k := range kinds {
		if err := r.Register(k); err != nil {
			panic(err)
		}
	}
	return r
}
