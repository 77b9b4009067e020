package dialect

import (
	"maps"
	"strconv"
	"strings"

	"github.com/leapstack-labs/termsql/pkg/core"
)

// TypeRenderer renders the native DDL type for a column.
type TypeRenderer func(col *core.Column) string

// RegisterTypeRenderer installs the native type renderer for st.
func (d *Dialect) RegisterTypeRenderer(st core.StandardType, r TypeRenderer) {
	d.typeRenderers[st] = r
}

// SetDefaultTypeRenderer sets the renderer used for standard types with no
// specific renderer.
func (d *Dialect) SetDefaultTypeRenderer(r TypeRenderer) {
	d.defaultType = r
}

// RegisterTypeOverride maps a vendor type token to a standard type.
// The token is stored lower-cased.
func (d *Dialect) RegisterTypeOverride(raw string, st core.StandardType) {
	d.typeOverrides[strings.ToLower(strings.TrimSpace(raw))] = st
}

// TypeOverrides returns a copy of the override table.
func (d *Dialect) TypeOverrides() map[string]core.StandardType {
	return maps.Clone(d.typeOverrides)
}

// NativeType returns the native DDL type for col. A column without a
// declared standard type yields "" and no error. A *ConfigError is returned
// when neither a specific nor a default renderer exists.
func (d *Dialect) NativeType(col *core.Column) (string, error) {
	if col == nil || col.Type == core.TypeUnset {
		return "", nil
	}
	if r, ok := d.typeRenderers[col.Type]; ok && r != nil {
		return r(col), nil
	}
	if d.defaultType != nil {
		return d.defaultType(col), nil
	}
	return "", &ConfigError{Dialect: d.Name, Type: col.Type, Err: ErrNoTypeRenderer}
}

// ParseStandardType resolves a native type token, e.g. "varchar(255)" or
// "int4", to a standard type. Unresolvable tokens log a warning and return
// core.TypeOther; this never fails.
func (d *Dialect) ParseStandardType(raw string) core.StandardType {
	token := strings.TrimSpace(raw)
	if st, ok := core.LookupStandardType(token); ok {
		return st
	}

	stripped := token
	if i := strings.IndexByte(stripped, '('); i >= 0 {
		stripped = stripped[:i]
	}
	key := strings.ToLower(strings.TrimSpace(stripped))

	if st, ok := d.typeOverrides[key]; ok {
		return st
	}
	if st, ok := core.LookupStandardType(key); ok {
		return st
	}

	d.logger.Warn("unknown native type, using OTHER", "dialect", d.Name, "type", raw)
	return core.TypeOther
}

// Validate reports setup-time misconfiguration.
func (d *Dialect) Validate() error {
	if d.defaultType == nil {
		return &ConfigError{Dialect: d.Name, Err: ErrNoTypeRenderer}
	}
	return nil
}

// --- Standard type renderers ---

// Fixed renders a constant type name.
func Fixed(name string) TypeRenderer {
	return func(*core.Column) string { return name }
}

// WithLength renders name(length), using def when the column has no length.
// A def of 0 omits the suffix for length-less columns.
func WithLength(name string, def int) TypeRenderer {
	return func(col *core.Column) string {
		n := col.Length
		if n <= 0 {
			n = def
		}
		if n <= 0 {
			return name
		}
		return name + "(" + strconv.Itoa(n) + ")"
	}
}

// WithPrecision renders name(precision,scale), using the defaults for
// unset values. A zero precision omits the suffix.
func WithPrecision(name string, defPrecision, defScale int) TypeRenderer {
	return func(col *core.Column) string {
		p, s := col.Precision, col.Scale
		if p <= 0 {
			p, s = defPrecision, defScale
		}
		if p <= 0 {
			return name
		}
		return name + "(" + strconv.Itoa(p) + "," + strconv.Itoa(s) + ")"
	}
}

// Lowercase renders the standard type name in lower case.
func Lowercase(col *core.Column) string {
	return strings.ToLower(col.Type.String())
}
