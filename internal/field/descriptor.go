package field

// Kind is the value type a field expects.
type Kind int

const (
	Float Kind = iota
	Integer
	Boolean
	String
	// Polygon is a flat list of numbers read as 3D vertices.
	Polygon
	// Ref is a shared reference into a model collection, written either as
	// the quoted name of an existing object or as an inline object.
	Ref
	// Object is an embedded value of another Type, always written inline.
	Object
	List
)

var kindNames = [...]string{
	Float:   "Number",
	Integer: "Integer",
	Boolean: "Boolean",
	String:  "String",
	Polygon: "Polygon",
	Ref:     "Reference",
	Object:  "Object",
	List:    "List",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Descriptor describes one field of an object or one positional value of an
// enum variant.
type Descriptor struct {
	Name string
	Kind Kind
	// Elem is the element kind of a List.
	Elem Kind
	// Target names the Type referenced by Ref and Object fields, and by Lists
	// of them.
	Target   string
	Optional bool
	// NonEmpty marks a List that needs at least one element.
	NonEmpty bool
	Doc      string
}

// Variant is one alternative of an enum Type. A variant carries either
// positional Args written in parentheses, named Fields written in braces,
// or nothing.
type Variant struct {
	Name   string
	Args   []Descriptor
	Fields []Descriptor
	Doc    string
}

// IsUnit reports whether the variant carries no data.
func (v *Variant) IsUnit() bool {
	return len(v.Args) == 0 && len(v.Fields) == 0
}

// Type is the field table of one object type.
type Type struct {
	Name     string
	Doc      string
	Fields   []Descriptor
	Variants []Variant
}

// IsEnum reports whether the type is written as Type::Variant.
func (t *Type) IsEnum() bool {
	return len(t.Variants) > 0
}

// Variant finds a variant by name.
func (t *Type) Variant(name string) (*Variant, bool) {
	for i := range t.Variants {
		if t.Variants[i].Name == name {
			return &t.Variants[i], true
		}
	}
	return nil, false
}

// VariantNames lists the variant names in declaration order.
func (t *Type) VariantNames() []string {
	names := make([]string, len(t.Variants))
	for i, v := range t.Variants {
		names[i] = v.Name
	}
	return names
}

func lookup(fields []Descriptor, name string) (Descriptor, bool) {
	for _, d := range fields {
		if d.Name == name {
			return d, true
		}
	}
	return Descriptor{}, false
}

func names(fields []Descriptor) []string {
	out := make([]string, len(fields))
	for i, d := range fields {
		out[i] = d.Name
	}
	return out
}
