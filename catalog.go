package main

import "sort"

// groupID identifies a translation group. Real groups map to one definition
// file each; the flat group holds JSON-style keys that are full strings
// with no group prefix.
type groupID struct {
	name string
	flat bool
}

// flatGroup is the group of bare string keys.
var flatGroup = groupID{flat: true}

// grouped returns the identifier of the named group.
func grouped(name string) groupID {
	return groupID{name: name}
}

func (g groupID) String() string {
	if g.flat {
		return "(flat)"
	}
	return g.name
}

// qualify joins the group and item into the key as it appears in source.
// Flat items are already complete keys.
func (g groupID) qualify(item string) string {
	if g.flat {
		return item
	}
	return g.name + "." + item
}

// items is an insertion-ordered item -> value mapping.
type items struct {
	keys   []string
	values map[string]string
}

func newItems() *items {
	return &items{values: make(map[string]string)}
}

// set stores value under key. An existing key keeps its position.
func (it *items) set(key, value string) {
	if _, ok := it.values[key]; !ok {
		it.keys = append(it.keys, key)
	}
	it.values[key] = value
}

func (it *items) has(key string) bool {
	_, ok := it.values[key]
	return ok
}

func (it *items) get(key string) string {
	return it.values[key]
}

func (it *items) len() int {
	return len(it.keys)
}

// ordered returns the keys in insertion order, or sorted when sorted is set.
func (it *items) ordered(sorted bool) []string {
	keys := make([]string, len(it.keys))
	copy(keys, it.keys)
	if sorted {
		sort.Strings(keys)
	}
	return keys
}

// catalog is an insertion-ordered group -> item -> value mapping. It backs
// the defined, used and useful key sets.
type catalog struct {
	order  []groupID
	groups map[groupID]*items
}

func newCatalog() *catalog {
	return &catalog{groups: make(map[groupID]*items)}
}

// ensure returns the items of g, creating an empty group if needed.
func (c *catalog) ensure(g groupID) *items {
	it, ok := c.groups[g]
	if !ok {
		it = newItems()
		c.groups[g] = it
		c.order = append(c.order, g)
	}
	return it
}

func (c *catalog) set(g groupID, item, value string) {
	c.ensure(g).set(item, value)
}

func (c *catalog) hasGroup(g groupID) bool {
	_, ok := c.groups[g]
	return ok
}

func (c *catalog) hasItem(g groupID, item string) bool {
	it, ok := c.groups[g]
	return ok && it.has(item)
}

// group returns the items of g, or nil if the group is absent.
func (c *catalog) group(g groupID) *items {
	return c.groups[g]
}

// groupIDs returns the groups in insertion order.
func (c *catalog) groupIDs() []groupID {
	ids := make([]groupID, len(c.order))
	copy(ids, c.order)
	return ids
}

// keys returns every qualified key, sorted.
func (c *catalog) keys() []string {
	var keys []string
	for _, g := range c.order {
		for _, item := range c.groups[g].keys {
			keys = append(keys, g.qualify(item))
		}
	}
	sort.Strings(keys)
	return keys
}
