package engine

// Template is a named catalog entry.
type Template struct {
	Name  string
	Shape Shape
}

// catalog is validated at package init; MustShape panics on malformed art.
var catalog = []Template{
	{"single", MustShape("#")},
	{"domino", MustShape("##")},
	{"domino_v", MustShape("#", "#")},
	{"line3", MustShape("###")},
	{"line3_v", MustShape("#", "#", "#")},
	{"corner3", MustShape("#.", "##")},
	{"square2", MustShape("##", "##")},
	{"line4", MustShape("####")},
	{"line4_v", MustShape("#", "#", "#", "#")},
	{"l4", MustShape("#.", "#.", "##")},
	{"j4", MustShape(".#", ".#", "##")},
	{"t4", MustShape("###", ".#.")},
	{"s4", MustShape(".##", "##.")},
	{"z4", MustShape("##.", ".##")},
	{"line5", MustShape("#####")},
	{"square3", MustShape("###", "###", "###")},
}

// AllShapeTemplates returns the fixed set of block footprints.
// The order is stable across calls.
func AllShapeTemplates() []Shape {
	out := make([]Shape, len(catalog))
	for i, t := range catalog {
		out[i] = t.Shape
	}
	return out
}

// Templates returns the catalog with template names.
func Templates() []Template {
	out := make([]Template, len(catalog))
	copy(out, catalog)
	return out
}

// TemplateName returns the catalog name of s, or "" when s is not a template
// in its catalog orientation.
func TemplateName(s Shape) string {
	for _, t := range catalog {
		if t.Shape.Equal(s) {
			return t.Name
		}
	}
	return ""
}
