package core

import (
	"fmt"
	"strings"
)

// StandardType is a dialect-independent SQL type identifier.
// The set mirrors the JDBC standard types.
type StandardType int

// Standard SQL types. TypeUnset marks a column with no declared type and
// TypeOther is the fallback for native tokens nothing could resolve.
const (
	TypeUnset StandardType = iota
	TypeBit
	TypeTinyInt
	TypeSmallInt
	TypeInteger
	TypeBigInt
	TypeFloat
	TypeReal
	TypeDouble
	TypeNumeric
	TypeDecimal
	TypeChar
	TypeVarchar
	TypeLongVarchar
	TypeDate
	TypeTime
	TypeTimestamp
	TypeBinary
	TypeVarBinary
	TypeLongVarBinary
	TypeNull
	TypeOther
	TypeJavaObject
	TypeDistinct
	TypeStruct
	TypeArray
	TypeBlob
	TypeClob
	TypeRef
	TypeDatalink
	TypeBoolean
	TypeRowID
	TypeNChar
	TypeNVarchar
	TypeLongNVarchar
	TypeNClob
	TypeSQLXML
	TypeRefCursor
	TypeTimeWithTimezone
	TypeTimestampWithTimezone
)

var standardTypeNames = [...]string{
	TypeUnset:                 "",
	TypeBit:                   "BIT",
	TypeTinyInt:               "TINYINT",
	TypeSmallInt:              "SMALLINT",
	TypeInteger:               "INTEGER",
	TypeBigInt:                "BIGINT",
	TypeFloat:                 "FLOAT",
	TypeReal:                  "REAL",
	TypeDouble:                "DOUBLE",
	TypeNumeric:               "NUMERIC",
	TypeDecimal:               "DECIMAL",
	TypeChar:                  "CHAR",
	TypeVarchar:               "VARCHAR",
	TypeLongVarchar:           "LONGVARCHAR",
	TypeDate:                  "DATE",
	TypeTime:                  "TIME",
	TypeTimestamp:             "TIMESTAMP",
	TypeBinary:                "BINARY",
	TypeVarBinary:             "VARBINARY",
	TypeLongVarBinary:         "LONGVARBINARY",
	TypeNull:                  "NULL",
	TypeOther:                 "OTHER",
	TypeJavaObject:            "JAVA_OBJECT",
	TypeDistinct:              "DISTINCT",
	TypeStruct:                "STRUCT",
	TypeArray:                 "ARRAY",
	TypeBlob:                  "BLOB",
	TypeClob:                  "CLOB",
	TypeRef:                   "REF",
	TypeDatalink:              "DATALINK",
	TypeBoolean:               "BOOLEAN",
	TypeRowID:                 "ROWID",
	TypeNChar:                 "NCHAR",
	TypeNVarchar:              "NVARCHAR",
	TypeLongNVarchar:          "LONGNVARCHAR",
	TypeNClob:                 "NCLOB",
	TypeSQLXML:                "SQLXML",
	TypeRefCursor:             "REF_CURSOR",
	TypeTimeWithTimezone:      "TIME_WITH_TIMEZONE",
	TypeTimestampWithTimezone: "TIMESTAMP_WITH_TIMEZONE",
}

var standardTypesByName = func() map[string]StandardType {
	m := make(map[string]StandardType, len(standardTypeNames))
	for i, name := range standardTypeNames {
		if name != "" {
			m[name] = StandardType(i)
		}
	}
	return m
}()

// String returns the standard name of the type, e.g. "VARCHAR".
func (t StandardType) String() string {
	if t < 0 || int(t) >= len(standardTypeNames) {
		return fmt.Sprintf("StandardType(%d)", int(t))
	}
	return standardTypeNames[t]
}

// IsValid reports whether t is a declared type (not TypeUnset, not out of range).
func (t StandardType) IsValid() bool {
	return t > TypeUnset && int(t) < len(standardTypeNames)
}

// LookupStandardType resolves a standard type by name. Matching is
// case-insensitive and treats spaces like underscores, so "timestamp with
// timezone" resolves to TypeTimestampWithTimezone.
func LookupStandardType(name string) (StandardType, bool) {
	key := strings.ToUpper(strings.Join(strings.Fields(name), "_"))
	t, ok := standardTypesByName[key]
	return t, ok
}

// StandardTypes returns every declared type in declaration order.
func StandardTypes() []StandardType {
	out := make([]StandardType, 0, len(standardTypeNames)-1)
	for i := 1; i < len(standardTypeNames); i++ {
		out = append(out, StandardType(i))
	}
	return out
}

// MarshalText implements encoding.TextMarshaler.
func (t StandardType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *StandardType) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*t = TypeUnset
		return nil
	}
	st, ok := LookupStandardType(string(text))
	if !ok {
		return fmt.Errorf("unknown standard type %q", string(text))
	}
	*t = st
	return nil
}
