// Package mapping holds the schema mapping registry: one static table per
// source describing how that source's native field names map onto the
// canonical columns, plus the value transforms applied on the way in.
package mapping

import (
	"fmt"

	"github.com/bazarstat/bazarstat/internal/common"
	"github.com/bazarstat/bazarstat/internal/model"
)

// Transform is a pure value transform applied to a raw field before it is
// stored in the canonical record. Transforms rename units and formats; they
// never reinterpret semantics.
type Transform func(string) string

// FieldMap designates the single raw field backing one canonical column.
type FieldMap struct {
	Raw       string
	Transform Transform
}

// SourceMapping is the static mapping table for one source. Canonical
// columns absent from Fields are emitted as empty strings for every record
// of that source.
type SourceMapping struct {
	Source string
	Fields map[string]FieldMap
}

// Apply resolves one canonical column against a raw record. ok is false
// when the mapping does not cover the column at all; a covered column whose
// raw value is absent resolves to "".
func (m SourceMapping) Apply(raw model.RawRecord, column string) (string, bool) {
	fm, ok := m.Fields[column]
	if !ok {
		return "", false
	}
	v := raw[fm.Raw]
	if fm.Transform != nil {
		v = fm.Transform(v)
	}
	return v, true
}

// Registry resolves source identifiers to their mapping tables. It is
// populated once at startup and read-only afterwards.
type Registry struct {
	mappings map[string]SourceMapping
}

// NewRegistry returns the registry with all eleven platform mappings
// registered.
func NewRegistry() *Registry {
	r := &Registry{mappings: make(map[string]SourceMapping, len(model.AllSources))}
	for _, m := range []SourceMapping{
		bakuElectronicsMapping(),
		bytelecomMapping(),
		irshadMapping(),
		kontaktMapping(),
		mgstoreMapping(),
		smartElectronicsMapping(),
		solitonMapping(),
		texnohomeMapping(),
		wtMapping(),
		birmarketMapping(),
		tapMapping(),
	} {
		r.mappings[m.Source] = m
	}
	return r
}

// Lookup returns the mapping table for sourceID. An identifier outside the
// roster is a configuration defect and yields ErrUnknownSource.
func (r *Registry) Lookup(sourceID string) (SourceMapping, error) {
	m, ok := r.mappings[sourceID]
	if !ok {
		return SourceMapping{}, fmt.Errorf("%w: %q", common.ErrUnknownSource, sourceID)
	}
	return m, nil
}

// Sources returns the registered identifiers in the fixed merge order.
func (r *Registry) Sources() []string {
	out := make([]string, 0, len(r.mappings))
	for _, s := range model.AllSources {
		if _, ok := r.mappings[s]; ok {
			out = append(out, s)
		}
	}
	return out
}
