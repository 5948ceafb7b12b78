/*
Copyright 2026 The containerimage-go Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package canonjson re-serializes a JSON document the way Python's
// json.dumps(doc, indent=3) does: object keys in their original
// insertion (source byte) order, 3-space nesting indentation, and
// ensure_ascii-style string escaping.
//
// This exists because regclient's digest recomputation (§4.7) depends on
// reproducing that exact byte layout - a registry that omits
// Docker-Content-Digest is trusted only if we can recompute the same
// digest the original Python client would have. encoding/json's
// map[string]interface{} decode path discards key order, so a
// hand-rolled order-preserving walk is the only option; no library in
// this module's dependency set does this.
package canonjson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// pair is one key/value entry of an object, in source order.
type pair struct {
	key   string
	value interface{}
}

// object is an ordered JSON object; array is a plain slice since JSON
// arrays are already ordered.
type object struct {
	pairs []pair
}

// Canonicalize parses data and re-serializes it with 3-space indentation
// and insertion-order-preserved object keys, matching
// json.dumps(doc, indent=3) in Python.
func Canonicalize(data []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tree, err := parseValue(dec)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	writeValue(&buf, tree, 0)
	return buf.Bytes(), nil
}

func parseValue(dec *json.Decoder) (interface{}, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := &object{}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("canonjson: expected string key, got %v", keyTok)
				}
				val, err := parseValue(dec)
				if err != nil {
					return nil, err
				}
				obj.pairs = append(obj.pairs, pair{key: key, value: val})
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return nil, err
			}
			return obj, nil
		case '[':
			var arr []interface{}
			for dec.More() {
				val, err := parseValue(dec)
				if err != nil {
					return nil, err
				}
				arr = append(arr, val)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return nil, err
			}
			if arr == nil {
				arr = []interface{}{}
			}
			return arr, nil
		}
		return nil, fmt.Errorf("canonjson: unexpected delimiter %v", t)
	default:
		return tok, nil
	}
}

func writeValue(buf *bytes.Buffer, v interface{}, depth int) {
	switch t := v.(type) {
	case nil:
		buf.WriteString("null")
	case bool:
		if t {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case json.Number:
		buf.WriteString(t.String())
	case string:
		writeString(buf, t)
	case []interface{}:
		writeArray(buf, t, depth)
	case *object:
		writeObject(buf, t, depth)
	default:
		// Unreachable for documents decoded via parseValue, but keep a
		// safe fallback rather than panicking on an unexpected type.
		b, _ := json.Marshal(t)
		buf.Write(b)
	}
}

func writeArray(buf *bytes.Buffer, arr []interface{}, depth int) {
	if len(arr) == 0 {
		buf.WriteString("[]")
		return
	}
	buf.WriteString("[\n")
	indent := strings.Repeat(" ", (depth+1)*3)
	for i, item := range arr {
		buf.WriteString(indent)
		writeValue(buf, item, depth+1)
		if i != len(arr)-1 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
	}
	buf.WriteString(strings.Repeat(" ", depth*3))
	buf.WriteString("]")
}

func writeObject(buf *bytes.Buffer, obj *object, depth int) {
	if len(obj.pairs) == 0 {
		buf.WriteString("{}")
		return
	}
	buf.WriteString("{\n")
	indent := strings.Repeat(" ", (depth+1)*3)
	for i, p := range obj.pairs {
		buf.WriteString(indent)
		writeString(buf, p.key)
		buf.WriteString(": ")
		writeValue(buf, p.value, depth+1)
		if i != len(obj.pairs)-1 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
	}
	buf.WriteString(strings.Repeat(" ", depth*3))
	buf.WriteString("}")
}

// writeString encodes s the way Python's json.dumps does with its
// default ensure_ascii=True: double-quoted, with \", \\, and control
// characters escaped, and any non-ASCII rune escaped as \uXXXX (with a
// surrogate pair for runes outside the BMP).
func writeString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			switch {
			case r < 0x20:
				fmt.Fprintf(buf, `\u%04x`, r)
			case r < 0x7f:
				buf.WriteRune(r)
			case r <= 0xffff:
				fmt.Fprintf(buf, `\u%04x`, r)
			default:
				// Encode as a UTF-16 surrogate pair, as Python does.
				r -= 0x10000
				hi := 0xd800 + (r >> 10)
				lo := 0xdc00 + (r & 0x3ff)
				fmt.Fprintf(buf, `\u%04x\u%04x`, hi, lo)
			}
		}
	}
	buf.WriteByte('"')
}
