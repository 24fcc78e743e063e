package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// loadJSONItems parses a JSON definition file into flattened items. The
// decoder is driven token by token so the order of the file is kept.
func loadJSONItems(data []byte) (*items, error) {
	result := newItems()
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return result, nil
	}
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("top level must be an object")
	}
	if err := flattenJSONObject(dec, "", result); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after top-level object")
	}
	return result, nil
}

// flattenJSONObject reads members up to and including the closing brace.
func flattenJSONObject(dec *json.Decoder, prefix string, result *items) error {
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected object key %v", tok)
		}
		if err := flattenJSONValue(dec, joinKey(prefix, key), result); err != nil {
			return err
		}
	}
	_, err := dec.Token()
	return err
}

func flattenJSONValue(dec *json.Decoder, key string, result *items) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	switch v := tok.(type) {
	case json.Delim:
		if v == '{' {
			return flattenJSONObject(dec, key, result)
		}
		for i := 0; dec.More(); i++ {
			if err := flattenJSONValue(dec, joinKey(key, strconv.Itoa(i)), result); err != nil {
				return err
			}
		}
		_, err := dec.Token()
		return err
	case string:
		result.set(key, v)
	case json.Number:
		result.set(key, v.String())
	case bool:
		result.set(key, strconv.FormatBool(v))
	case nil:
		result.set(key, "")
	}
	return nil
}

// encodeJSON writes the items in the given key order as a single-level
// object indented with four spaces.
func encodeJSON(it *items, keys []string) ([]byte, error) {
	if len(keys) == 0 {
		return []byte("{}\n"), nil
	}
	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, k := range keys {
		buf.WriteString("    ")
		if err := writeJSONString(&buf, k); err != nil {
			return nil, err
		}
		buf.WriteString(": ")
		if err := writeJSONString(&buf, it.get(k)); err != nil {
			return nil, err
		}
		if i < len(keys)-1 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

// writeJSONString writes s as a JSON string without HTML escaping, so
// translations containing <, > or & stay readable.
func writeJSONString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))
	return nil
}
