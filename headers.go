package stompy

import (
	"fmt"
	"strings"
)

//Headers maps header names to values while remembering insertion order.
//Order carries no protocol meaning but keeping it makes serialization
//deterministic. Keys are unique per frame, setting an existing key replaces
//its value in place.
type Headers struct {
	names  []string
	values map[string]string
}

func NewHeaders() *Headers {
	return &Headers{values: make(map[string]string)}
}

//Set adds or replaces a header value
func (h *Headers) Set(name, value string) {
	if _, ok := h.values[name]; !ok {
		h.names = append(h.names, name)
	}
	h.values[name] = value
}

//Get returns the value for name, or the empty string when absent
func (h *Headers) Get(name string) string {
	return h.values[name]
}

func (h *Headers) Has(name string) bool {
	_, ok := h.values[name]
	return ok
}

//Del removes a header if present
func (h *Headers) Del(name string) {
	if _, ok := h.values[name]; !ok {
		return
	}
	delete(h.values, name)
	for i, n := range h.names {
		if n == name {
			h.names = append(h.names[:i], h.names[i+1:]...)
			break
		}
	}
}

//Names returns the header names in insertion order. The returned slice is
//shared with the collection and must not be modified.
func (h *Headers) Names() []string {
	return h.names
}

func (h *Headers) Len() int {
	return len(h.names)
}

//Clone returns an independent copy. Build operations take ownership of the
//headers they are given, callers that want to reuse a set across frames
//should pass a clone each time.
func (h *Headers) Clone() *Headers {
	clone := NewHeaders()
	for _, name := range h.names {
		clone.Set(name, h.values[name])
	}
	return clone
}

func (h *Headers) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, name := range h.names {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s:%s", name, h.values[name])
	}
	b.WriteByte('}')
	return b.String()
}
