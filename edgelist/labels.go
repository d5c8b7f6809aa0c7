// SPDX-License-Identifier: MIT
// Package: gfp/edgelist
//
// labels.go — dense id assignment for textual vertex labels.

package edgelist

// Labels maps vertex labels to dense ids and back.
type Labels struct {
	ids   map[string]int
	names []string
}

func newLabels() *Labels {
	return &Labels{ids: make(map[string]int)}
}

// intern returns the id of name, assigning the next free id on first sight.
func (l *Labels) intern(name string) int {
	if id, ok := l.ids[name]; ok {
		return id
	}
	id := len(l.names)
	l.ids[name] = id
	l.names = append(l.names, name)

	return id
}

// Len returns the number of distinct labels.
func (l *Labels) Len() int { return len(l.names) }

// ID returns the vertex id of name.
func (l *Labels) ID(name string) (int, bool) {
	id, ok := l.ids[name]
	return id, ok
}

// Name returns the label of vertex id, or "" when id is out of range.
func (l *Labels) Name(id int) string {
	if id < 0 || id >= len(l.names) {
		return ""
	}

	return l.names[id]
}

// Names returns all labels ordered by id.
func (l *Labels) Names() []string {
	out := make([]string, len(l.names))
	copy(out, l.names)

	return out
}
