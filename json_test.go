package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadJSONItems(t *testing.T) {
	input := `{
		"z": "Z",
		"a": {"b": "B", "c": {"d": "D"}},
		"list": ["x", "y"],
		"n": 1.5,
		"t": true,
		"none": null,
		"Hello. World": "Sentence key"
	}`

	got, err := loadJSONItems([]byte(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a.b", "a.c.d", "list.0", "list.1", "n", "t", "none", "Hello. World"}, got.keys)
	assert.Equal(t, map[string]string{
		"z":            "Z",
		"a.b":          "B",
		"a.c.d":        "D",
		"list.0":       "x",
		"list.1":       "y",
		"n":            "1.5",
		"t":            "true",
		"none":         "",
		"Hello. World": "Sentence key",
	}, got.asMap())
}

func TestLoadJSONItemsEmpty(t *testing.T) {
	got, err := loadJSONItems(nil)
	require.NoError(t, err)
	assert.Zero(t, got.len())

	got, err = loadJSONItems([]byte("{}"))
	require.NoError(t, err)
	assert.Zero(t, got.len())
}

func TestLoadJSONItemsErrors(t *testing.T) {
	for _, input := range []string{`{"a": `, `["a"]`, `"a"`, `{"a": "b"} {}`, `{"a": "b",}`} {
		_, err := loadJSONItems([]byte(input))
		assert.Error(t, err, input)
	}
}

func TestEncodeJSON(t *testing.T) {
	it := newItems()
	it.set("b", "<b>bold</b> & more")
	it.set("a", `say "hi"`)

	data, err := encodeJSON(it, it.keys)
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"b\": \"<b>bold</b> & more\",\n    \"a\": \"say \\\"hi\\\"\"\n}\n", string(data))

	empty, err := encodeJSON(newItems(), nil)
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(empty))
}

func TestEncodeJSONRoundTrip(t *testing.T) {
	it := newItems()
	it.set("Hello world", "你好，世界")
	it.set("It's a \"test\"", "line\nbreak\ttab")
	it.set("base.ok", "")
	it.set("slash/path", `back\slash`)

	data, err := encodeJSON(it, it.keys)
	require.NoError(t, err)

	got, err := loadJSONItems(data)
	require.NoError(t, err)
	assert.Equal(t, it.keys, got.keys)
	assert.Equal(t, it.asMap(), got.asMap())
}
