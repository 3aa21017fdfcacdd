// Package models defines data structures for spreadsheet-to-card conversion.
package models

// Field is a single label/value pair of a record.
type Field struct {
	// Label is the column header the value belongs to.
	Label string
	// Value is the textual cell value ("" for empty cells).
	Value string
}

// Record represents one data row keyed by column header.
// Labels are unique and keep the order in which they were first set.
type Record struct {
	fields []Field
	index  map[string]int
}

// NewRecord creates an empty record with room for capacity fields.
func NewRecord(capacity int) *Record {
	return &Record{
		fields: make([]Field, 0, capacity),
		index:  make(map[string]int, capacity),
	}
}

// Set stores value under label. An existing label keeps its position
// and gets the new value.
func (r *Record) Set(label, value string) {
	if i, ok := r.index[label]; ok {
		r.fields[i].Value = value
		return
	}
	r.index[label] = len(r.fields)
	r.fields = append(r.fields, Field{Label: label, Value: value})
}

// Get returns the value stored under label.
func (r *Record) Get(label string) (string, bool) {
	i, ok := r.index[label]
	if !ok {
		return "", false
	}
	return r.fields[i].Value, true
}

// Len returns the number of fields.
func (r *Record) Len() int {
	return len(r.fields)
}

// Fields returns a copy of the fields in order.
func (r *Record) Fields() []Field {
	out := make([]Field, len(r.fields))
	copy(out, r.fields)
	return out
}

// Labels returns the labels in order.
func (r *Record) Labels() []string {
	out := make([]string, len(r.fields))
	for i, f := range r.fields {
		out[i] = f.Label
	}
	return out
}
