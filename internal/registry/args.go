package registry

import "github.com/zclconf/go-cty/cty"

// Args are bound argument values keyed by option name. Accessors return the
// zero value for absent or null options.
type Args map[string]cty.Value

func (a Args) present(name string) (cty.Value, bool) {
	v, ok := a[name]
	if !ok || v.IsNull() {
		return cty.NilVal, false
	}
	return v, true
}

// String returns a string option.
func (a Args) String(name string) string {
	if v, ok := a.present(name); ok && v.Type().Equals(cty.String) {
		return v.AsString()
	}
	return ""
}

// Bool returns a flag option.
func (a Args) Bool(name string) bool {
	if v, ok := a.present(name); ok && v.Type().Equals(cty.Bool) {
		return v.True()
	}
	return false
}

// Strings returns a list(string) option.
func (a Args) Strings(name string) []string {
	v, ok := a.present(name)
	if !ok || !v.Type().IsListType() {
		return nil
	}
	out := make([]string, 0, v.LengthInt())
	for it := v.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		if !elem.IsNull() {
			out = append(out, elem.AsString())
		}
	}
	return out
}

// Has reports whether name was supplied with a non-null value.
func (a Args) Has(name string) bool {
	_, ok := a.present(name)
	return ok
}
