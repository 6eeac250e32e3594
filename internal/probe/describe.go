package probe

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Field is the shape of one top-level key of a payload.
type Field struct {
	Key  string
	Kind string // "scalar", "list", "object" or "null"

	Value  string   // scalar: strings unquoted, other values as sent
	Length int      // list: element count
	First  string   // list: first element, compact JSON; empty for an empty list
	Keys   []string // object: keys in document order
}

// Shape lists the top-level keys of a JSON object in document order.
func Shape(raw json.RawMessage) ([]Field, error) {
	members, err := objectMembers(raw)
	if err != nil {
		return nil, err
	}

	fields := make([]Field, 0, len(members))
	for _, m := range members {
		f := Field{Key: m.key}
		v := bytes.TrimSpace(m.value)
		switch {
		case len(v) == 0:
			f.Kind = "null"
		case v[0] == '{':
			f.Kind = "object"
			inner, err := objectMembers(v)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", m.key, err)
			}
			f.Keys = make([]string, 0, len(inner))
			for _, im := range inner {
				f.Keys = append(f.Keys, im.key)
			}
		case v[0] == '[':
			f.Kind = "list"
			var items []json.RawMessage
			if err := json.Unmarshal(v, &items); err != nil {
				return nil, fmt.Errorf("key %q: %w", m.key, err)
			}
			f.Length = len(items)
			if len(items) > 0 {
				var buf bytes.Buffer
				if err := json.Compact(&buf, items[0]); err != nil {
					return nil, fmt.Errorf("key %q: %w", m.key, err)
				}
				f.First = buf.String()
			}
		case string(v) == "null":
			f.Kind = "null"
		case v[0] == '"':
			f.Kind = "scalar"
			if err := json.Unmarshal(v, &f.Value); err != nil {
				return nil, fmt.Errorf("key %q: %w", m.key, err)
			}
		default:
			f.Kind = "scalar"
			f.Value = string(v)
		}
		fields = append(fields, f)
	}
	return fields, nil
}

// Describe writes the indented payload followed by its shape summary.
func Describe(w io.Writer, raw json.RawMessage) error {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err != nil {
		return fmt.Errorf("indent payload: %w", err)
	}
	fields, err := Shape(raw)
	if err != nil {
		return err
	}

	rule := strings.Repeat("=", 80)
	var b strings.Builder
	b.Write(pretty.Bytes())
	b.WriteString("\n\n" + rule + "\n")
	b.WriteString("AVAILABLE PARAMETERS:\n")
	b.WriteString(rule + "\n")

	for _, f := range fields {
		switch f.Kind {
		case "list":
			fmt.Fprintf(&b, "%s: list (length: %d)\n", f.Key, f.Length)
			if f.Length > 0 {
				fmt.Fprintf(&b, "  Example: %s\n", f.First)
			}
		case "object":
			fmt.Fprintf(&b, "%s: object\n", f.Key)
			fmt.Fprintf(&b, "  Keys: [%s]\n", strings.Join(f.Keys, ", "))
		case "scalar":
			fmt.Fprintf(&b, "%s: %s\n", f.Key, f.Value)
		default:
			fmt.Fprintf(&b, "%s: null\n", f.Key)
		}
	}

	_, err = io.WriteString(w, b.String())
	return err
}

type member struct {
	key   string
	value json.RawMessage
}

// objectMembers walks a JSON object with a token decoder so keys keep the
// order they were sent in.
func objectMembers(raw json.RawMessage) ([]member, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("decode payload: not a JSON object")
	}

	var members []member
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decode payload: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("decode payload: unexpected token %v", tok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("decode payload: key %q: %w", key, err)
		}
		members = append(members, member{key: key, value: value})
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	return members, nil
}
