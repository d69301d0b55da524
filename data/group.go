package data

// GroupMap assigns series or row keys to groups. Keys without an explicit
// assignment belong to the default group.
//
// Groups are numbered densely in the order they are first seen, the
// default group always having index 0.
type GroupMap struct {
	groups keys
	byKey  map[string]string
}

// NewGroupMap returns a map in which every key belongs to defaultGroup.
func NewGroupMap(defaultGroup string) *GroupMap {
	m := &GroupMap{byKey: make(map[string]string)}
	m.groups.intern(defaultGroup)
	return m
}

// DefaultGroup returns the name of the default group.
func (m *GroupMap) DefaultGroup() string { return m.groups.key(0) }

// MapKeyToGroup assigns key to group.
func (m *GroupMap) MapKeyToGroup(key, group string) {
	m.groups.intern(group)
	m.byKey[key] = group
}

// Group returns the group key belongs to.
func (m *GroupMap) Group(key string) string {
	if g, ok := m.byKey[key]; ok {
		return g
	}
	return m.DefaultGroup()
}

// GroupCount returns the number of distinct groups including the default.
func (m *GroupMap) GroupCount() int { return m.groups.len() }

// Groups returns the group names in index order.
func (m *GroupMap) Groups() []string {
	return append([]string(nil), m.groups.list...)
}

// GroupIndex returns the index of the group key belongs to.
func (m *GroupMap) GroupIndex(key string) int {
	return m.groups.lookup(m.Group(key))
}
