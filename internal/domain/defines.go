package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Define is a single -D<key>=<value> system property.
type Define struct {
	Key   string
	Value string
}

// Defines is an ordered set of system properties.
// Iteration order is insertion order, so the generated arguments are deterministic.
type Defines []Define

// NewDefines builds Defines from alternating key/value pairs.
// A trailing key without a value is ignored.
func NewDefines(kv ...string) Defines {
	var d Defines
	for i := 0; i+1 < len(kv); i += 2 {
		d = d.Set(kv[i], kv[i+1])
	}
	return d
}

// DefinesFromMap converts a plain map into Defines sorted by key.
func DefinesFromMap(m map[string]string) Defines {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	d := make(Defines, 0, len(keys))
	for _, k := range keys {
		d = append(d, Define{Key: k, Value: m[k]})
	}
	return d
}

// ParseDefine parses "key=value". A bare "key" means "key=true", as Maven does.
func ParseDefine(s string) (Define, error) {
	key, value, found := strings.Cut(s, "=")
	if key == "" {
		return Define{}, fmt.Errorf("%w: %q", ErrInvalidDefine, s)
	}
	if !found {
		value = "true"
	}
	return Define{Key: key, Value: value}, nil
}

// ParseDefines parses each entry with ParseDefine, keeping order.
func ParseDefines(entries []string) (Defines, error) {
	var d Defines
	for _, e := range entries {
		def, err := ParseDefine(e)
		if err != nil {
			return nil, err
		}
		d = d.Set(def.Key, def.Value)
	}
	return d, nil
}

// Set returns d with key set to value.
// An existing key keeps its position and only its value changes.
func (d Defines) Set(key, value string) Defines {
	for i := range d {
		if d[i].Key == key {
			out := d.Clone()
			out[i].Value = value
			return out
		}
	}
	out := make(Defines, len(d), len(d)+1)
	copy(out, d)
	return append(out, Define{Key: key, Value: value})
}

// Get returns the value for key.
func (d Defines) Get(key string) (string, bool) {
	for _, def := range d {
		if def.Key == key {
			return def.Value, true
		}
	}
	return "", false
}

// Merge returns d overlaid with other. Keys already in d keep their position.
func (d Defines) Merge(other Defines) Defines {
	out := d.Clone()
	for _, def := range other {
		out = out.Set(def.Key, def.Value)
	}
	return out
}

// Clone returns a copy of d.
func (d Defines) Clone() Defines {
	if d == nil {
		return nil
	}
	out := make(Defines, len(d))
	copy(out, d)
	return out
}

// Strings returns the defines as "key=value" entries.
func (d Defines) Strings() []string {
	out := make([]string, 0, len(d))
	for _, def := range d {
		out = append(out, def.Key+"="+def.Value)
	}
	return out
}

// Arg returns the command-line token for the define.
func (def Define) Arg() string {
	return "-D" + def.Key + "=" + def.Value
}
