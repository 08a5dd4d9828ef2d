package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

type Kind string

const (
	KindInt      Kind = "int"
	KindFloat    Kind = "float"
	KindString   Kind = "string"
	KindCategory Kind = "category"
	KindDate     Kind = "date"
)

// Column describes one field of a delimited source file. Key marks the row
// key column; Counter marks the source's internal row counter, which is
// validated but never kept.
type Column struct {
	Name    string
	Kind    Kind
	Key     bool
	Counter bool
}

// Schema is the ordered column list a file is parsed against. DropEmpty
// skips rows whose every non-counter cell is empty instead of failing on
// them.
type Schema struct {
	Columns   []Column
	DropEmpty bool
}

// Row holds one parsed record keyed by column name. Values are int64,
// float64, string or time.Time per the column kind; empty cells are nil.
type Row map[string]any

type SchemaMismatchError struct {
	Line int
	Want int
	Got  int
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("line %d: expected %d fields, got %d", e.Line, e.Want, e.Got)
}

type CoercionError struct {
	Line   int
	Column string
	Value  string
	Kind   Kind
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("line %d, column %q: cannot coerce %q to %s", e.Line, e.Column, e.Value, e.Kind)
}

// Read parses delimited text against schema. Exactly one header line is
// skipped. A row with the wrong field count fails with SchemaMismatchError;
// an uncoercible cell fails with CoercionError. There is no silent
// tolerance for malformed content beyond what the sanitizer removed.
func Read(r io.Reader, schema Schema) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	pool := interner{}
	rows := []Row{}
	line := 0
	header := true
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++
		if header {
			header = false
			continue
		}
		if len(record) != len(schema.Columns) {
			return nil, &SchemaMismatchError{Line: line, Want: len(schema.Columns), Got: len(record)}
		}
		if schema.DropEmpty && emptyRecord(schema, record) {
			continue
		}

		row := Row{}
		for i, col := range schema.Columns {
			value, err := coerce(col, record[i], line, pool)
			if err != nil {
				return nil, err
			}
			row[col.Name] = value
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func emptyRecord(schema Schema, record []string) bool {
	for i, col := range schema.Columns {
		if col.Counter {
			continue
		}
		if strings.TrimSpace(record[i]) != "" {
			return false
		}
	}
	return true
}

func coerce(col Column, raw string, line int, pool interner) (any, error) {
	value := strings.TrimSpace(raw)
	switch col.Kind {
	case KindString:
		if value == "" {
			return nil, nil
		}
		return value, nil
	case KindCategory:
		if value == "" {
			return nil, nil
		}
		return pool.intern(value), nil
	case KindFloat:
		if value == "" {
			return nil, nil
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, &CoercionError{Line: line, Column: col.Name, Value: raw, Kind: col.Kind}
		}
		return f, nil
	case KindInt:
		// Whole-count fields are always populated in valid data, so an
		// empty cell is an error here, unlike the nullable floats.
		i, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, &CoercionError{Line: line, Column: col.Name, Value: raw, Kind: col.Kind}
		}
		return i, nil
	case KindDate:
		if value == "" {
			if col.Key {
				return nil, &CoercionError{Line: line, Column: col.Name, Value: raw, Kind: col.Kind}
			}
			return nil, nil
		}
		// The sources store a calendar year; some exports spell it as a
		// full ISO date where only the year is meaningful.
		year, err := strconv.Atoi(value)
		if err != nil {
			parsed, perr := time.Parse(time.DateOnly, value)
			if perr != nil {
				return nil, &CoercionError{Line: line, Column: col.Name, Value: raw, Kind: col.Kind}
			}
			year = parsed.Year()
		}
		return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC), nil
	}
	return nil, fmt.Errorf("unknown column kind: %s", col.Kind)
}

// interner reuses backing strings for bounded-categorical columns, which
// repeat a small value set across many rows.
type interner map[string]string

func (in interner) intern(s string) string {
	if v, ok := in[s]; ok {
		return v
	}
	in[s] = s
	return s
}

func (r Row) Str(name string) string {
	s, _ := r[name].(string)
	return s
}

func (r Row) StrPtr(name string) *string {
	s, ok := r[name].(string)
	if !ok {
		return nil
	}
	return &s
}

func (r Row) FloatPtr(name string) *float64 {
	f, ok := r[name].(float64)
	if !ok {
		return nil
	}
	return &f
}

func (r Row) Int(name string) int64 {
	i, _ := r[name].(int64)
	return i
}

func (r Row) Date(name string) time.Time {
	t, _ := r[name].(time.Time)
	return t
}
