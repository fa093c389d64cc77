package field

// Values holds the resolved fields of one object, keyed by field name.
// Value types follow the Descriptor kind: float64, int, bool, string,
// []float64 for polygons, []any for lists, and whatever Context.Construct
// or Context.Find produced for Ref and Object fields.
type Values map[string]any

// Has reports whether the field was written in the source.
func (v Values) Has(name string) bool {
	_, ok := v[name]
	return ok
}

// String returns a string field, or "" when absent.
func (v Values) String(name string) string {
	s, _ := v[name].(string)
	return s
}

// Float returns a number field and whether it was present.
func (v Values) Float(name string) (float64, bool) {
	f, ok := v[name].(float64)
	return f, ok
}

// Int returns an integer field and whether it was present.
func (v Values) Int(name string) (int, bool) {
	i, ok := v[name].(int)
	return i, ok
}

// Bool returns a boolean field and whether it was present.
func (v Values) Bool(name string) (bool, bool) {
	b, ok := v[name].(bool)
	return b, ok
}

// Polygon returns the flat coordinates of a polygon field.
func (v Values) Polygon(name string) []float64 {
	p, _ := v[name].([]float64)
	return p
}

// List returns a list field. Absent lists are empty.
func (v Values) List(name string) []any {
	l, _ := v[name].([]any)
	return l
}

// Get returns the raw value of a field.
func (v Values) Get(name string) any {
	return v[name]
}

// Parsed is one resolved object body.
type Parsed struct {
	Type *Type
	// Line is where the body starts.
	Line int
	// Variant is set for enum types.
	Variant string
	// Fields holds struct fields, including the fields of a struct-payload
	// variant.
	Fields Values
	// Args holds the positional values of a tuple variant.
	Args []any
}
