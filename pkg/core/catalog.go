package core

import (
	"sort"
	"strings"
)

// TableID identifies a table within a Catalog.
type TableID int

// DatabaseID identifies a database within a Catalog.
type DatabaseID int

// Column describes a table column as seen by the condition compiler.
// Table is an identifier into the owning Catalog, never a pointer.
type Column struct {
	Name      string
	Type      StandardType
	NativeRaw string // Native type token as reported by the database, if known
	Length    int
	Precision int
	Scale     int
	Nullable  bool
	Position  int
	Table     TableID
}

// Table holds metadata about a database table.
type Table struct {
	ID       TableID
	Schema   string
	Name     string
	Database DatabaseID
	Columns  []Column
}

// QualifiedName returns schema.name, or name when the schema is empty.
func (t *Table) QualifiedName() string {
	if t.Schema == "" {
		return t.Name
	}
	return t.Schema + "." + t.Name
}

// Column returns the named column. Matching is case-insensitive.
func (t *Table) Column(name string) (*Column, bool) {
	for i := range t.Columns {
		if strings.EqualFold(t.Columns[i].Name, name) {
			return &t.Columns[i], true
		}
	}
	return nil, false
}

// Database describes a database and the dialect it speaks.
type Database struct {
	ID      DatabaseID
	Name    string
	Dialect string
}

// Catalog is an arena of databases and tables keyed by ID.
// It is not safe for concurrent mutation.
type Catalog struct {
	databases map[DatabaseID]*Database
	tables    map[TableID]*Table
	nextDB    DatabaseID
	nextTable TableID
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		databases: make(map[DatabaseID]*Database),
		tables:    make(map[TableID]*Table),
	}
}

// AddDatabase registers a database and returns it with its assigned ID.
func (c *Catalog) AddDatabase(name, dialect string) *Database {
	c.nextDB++
	db := &Database{ID: c.nextDB, Name: name, Dialect: dialect}
	c.databases[db.ID] = db
	return db
}

// AddTable stores t under a fresh ID and stamps that ID on every column.
func (c *Catalog) AddTable(t *Table) *Table {
	c.nextTable++
	t.ID = c.nextTable
	for i := range t.Columns {
		t.Columns[i].Table = t.ID
	}
	c.tables[t.ID] = t
	return t
}

// Database returns the database with the given ID.
func (c *Catalog) Database(id DatabaseID) (*Database, bool) {
	db, ok := c.databases[id]
	return db, ok
}

// Table returns the table with the given ID.
func (c *Catalog) Table(id TableID) (*Table, bool) {
	t, ok := c.tables[id]
	return t, ok
}

// TableByName finds a table by schema and name (case-insensitive).
// An empty schema matches any schema.
func (c *Catalog) TableByName(schema, name string) (*Table, bool) {
	for _, t := range c.Tables() {
		if !strings.EqualFold(t.Name, name) {
			continue
		}
		if schema == "" || strings.EqualFold(t.Schema, schema) {
			return t, true
		}
	}
	return nil, false
}

// Tables returns all tables ordered by ID.
func (c *Catalog) Tables() []*Table {
	out := make([]*Table, 0, len(c.tables))
	for _, t := range c.tables {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// DialectOf follows column -> table -> database and returns the dialect name.
func (c *Catalog) DialectOf(col *Column) (string, bool) {
	if c == nil || col == nil {
		return "", false
	}
	t, ok := c.tables[col.Table]
	if !ok {
		return "", false
	}
	db, ok := c.databases[t.Database]
	if !ok || db.Dialect == "" {
		return "", false
	}
	return db.Dialect, true
}
