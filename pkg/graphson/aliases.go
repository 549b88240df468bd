package graphson

import "maps"

// Aliases maps host-side enum names to their wire spelling. Host names carry
// a trailing underscore where the bare word is reserved ("global_"); the
// wire uses the bare word ("global"). Lookups work in both directions.
type Aliases struct {
	toWire map[string]string
	toHost map[string]string
}

// DefaultAliases is the built-in reserved-word table.
var DefaultAliases = NewAliases(map[string]string{
	"global_": "global",
	"as_":     "as",
	"in_":     "in",
	"and_":    "and",
	"or_":     "or",
	"is_":     "is",
	"not_":    "not",
	"from_":   "from",
	"set_":    "set",
	"list_":   "list",
	"all_":    "all",
})

// NewAliases builds a table from host name to wire name.
func NewAliases(hostToWire map[string]string) *Aliases {
	a := &Aliases{
		toWire: maps.Clone(hostToWire),
		toHost: make(map[string]string, len(hostToWire)),
	}
	if a.toWire == nil {
		a.toWire = map[string]string{}
	}
	for host, wire := range hostToWire {
		a.toHost[wire] = host
	}
	return a
}

// Wire returns the wire spelling of a host name. Unknown names are unchanged.
func (a *Aliases) Wire(name string) string {
	if a == nil {
		return name
	}
	if w, ok := a.toWire[name]; ok {
		return w
	}
	return name
}

// Host returns the host spelling of a wire name. Unknown names are unchanged.
func (a *Aliases) Host(name string) string {
	if a == nil {
		return name
	}
	if h, ok := a.toHost[name]; ok {
		return h
	}
	return name
}

// With returns a copy of a extended with more host to wire entries.
func (a *Aliases) With(hostToWire map[string]string) *Aliases {
	merged := map[string]string{}
	if a != nil {
		maps.Copy(merged, a.toWire)
	}
	maps.Copy(merged, hostToWire)
	return NewAliases(merged)
}
