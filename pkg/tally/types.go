package tally

import (
	"strconv"
	"strings"
)

// Kind tags the declared type of a column.
type Kind uint8

const (
	StringType Kind = iota
	IntType
	FloatType
	DateType // kept as its raw string; no calendar parsing
)

func (k Kind) String() string {
	switch k {
	case IntType:
		return "int"
	case FloatType:
		return "float"
	case DateType:
		return "date"
	default:
		return "string"
	}
}

// Column is one named, typed position in a Schema.
type Column struct {
	Name string `json:"name"`
	Kind Kind   `json:"kind"`
}

// Schema is the ordered column declaration shared by every row of a Table.
type Schema []Column

// Index returns the position of the named column.
func (s Schema) Index(name string) (int, bool) {
	for i, col := range s {
		if col.Name == name {
			return i, true
		}
	}
	return 0, false
}

// HeaderLine joins the column names with delim, producing the header line
// a well-formed input file carries.
func (s Schema) HeaderLine(delim string) string {
	names := make([]string, len(s))
	for i, col := range s {
		names[i] = col.Name
	}
	return strings.Join(names, delim)
}

// SalesSchema is the canonical sales-order layout this tool was built
// around: OrderDate,Region,Rep,Item,Units,Unit Cost,Total.
func SalesSchema() Schema {
	return Schema{
		{Name: "OrderDate", Kind: DateType},
		{Name: "Region", Kind: StringType},
		{Name: "Rep", Kind: StringType},
		{Name: "Item", Kind: StringType},
		{Name: "Units", Kind: IntType},
		{Name: "Unit Cost", Kind: FloatType},
		{Name: "Total", Kind: FloatType},
	}
}

// Value is one typed field. Exactly one of the variant fields is
// meaningful, selected by Kind. String and date values live in Str.
type Value struct {
	Kind  Kind    `json:"kind"`
	Str   string  `json:"str,omitempty"`
	Int   int64   `json:"int,omitempty"`
	Float float64 `json:"float,omitempty"`
}

func StringValue(s string) Value { return Value{Kind: StringType, Str: s} }
func IntValue(n int64) Value     { return Value{Kind: IntType, Int: n} }
func FloatValue(f float64) Value { return Value{Kind: FloatType, Float: f} }
func DateValue(s string) Value   { return Value{Kind: DateType, Str: s} }

// Num returns the value as a float64 for aggregation. The second return
// is false for string and date values.
func (v Value) Num() (float64, bool) {
	switch v.Kind {
	case IntType:
		return float64(v.Int), true
	case FloatType:
		return v.Float, true
	default:
		return 0, false
	}
}

// String renders the value for display. Floats are fixed to two decimal
// places; the dataset's float columns are currency.
func (v Value) String() string {
	switch v.Kind {
	case IntType:
		return strconv.FormatInt(v.Int, 10)
	case FloatType:
		return strconv.FormatFloat(v.Float, 'f', 2, 64)
	default:
		return v.Str
	}
}

// Equal reports whether two values have the same kind and content.
func (v Value) Equal(o Value) bool { return v == o }

// Row is one typed record derived from one input line. Rows are never
// mutated after the parser builds them; relational helpers copy.
type Row []Value

// Table is an ordered sequence of Rows under one Schema. A Table has a
// single owner at a time; each pipeline stage hands it to the next.
type Table struct {
	Schema Schema
	rows   []Row
}

// NewTable returns an empty table for the given schema.
func NewTable(s Schema) *Table {
	return &Table{Schema: s}
}

// Append adds a row. The row must match the schema width; the parser
// guarantees this for parsed input.
func (t *Table) Append(r Row) {
	t.rows = append(t.rows, r)
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Row returns the i-th row.
func (t *Table) Row(i int) Row { return t.rows[i] }

// Rows materializes every row in order. This is the collect-all mode;
// the returned slice shares the table's backing rows.
func (t *Table) Rows() []Row { return t.rows }

// GroupTotal is one aggregated group.
type GroupTotal struct {
	Key   string `json:"key"`
	Total Value  `json:"total"`
}

// AggregationResult is the ordered output of a grouped aggregation.
// Order is first-seen key order over the input table.
type AggregationResult []GroupTotal

// Combiner produces fresh accumulators for one aggregation run. A
// combiner's accumulation must be associative and commutative so that
// row order within a group never changes the result.
type Combiner interface {
	New() Accumulator
	Description() string
}

// Accumulator is the running aggregate for one group. Merge folds
// another accumulator of the same combiner into this one, so callers
// that shard a table externally can re-merge per-shard results.
type Accumulator interface {
	Add(v Value) error
	Merge(other Accumulator) error
	Result() Value
}
