package models

import (
	"bytes"
	"encoding/json"
)

// jsonObject is a decoded JSON object whose members are looked up by their
// exact key. encoding/json folds case when matching struct tags, so a
// document with "CT" or "Attachment_Name" would otherwise be accepted.
type jsonObject map[string]json.RawMessage

func parseObject(b []byte) (jsonObject, error) {
	var obj jsonObject
	if err := json.Unmarshal(b, &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// decode unmarshals the member named key into v. It reports false when the
// member is absent or null.
func (o jsonObject) decode(key string, v any) (bool, error) {
	raw, ok := o[key]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, err
	}
	return true, nil
}

// marshalCompact encodes v without HTML escaping and without the trailing
// newline json.Encoder appends. U+2028 and U+2029 are written as raw UTF-8,
// the way JSON.stringify writes them.
func marshalCompact(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return unescapeLineSeparators(bytes.TrimSuffix(buf.Bytes(), []byte{'\n'})), nil
}

// unescapeLineSeparators rewrites the \u2028 and \u2029 escapes that
// encoding/json always emits. Other escape sequences are copied as they are,
// so an escaped backslash followed by "u2028" is left alone.
func unescapeLineSeparators(b []byte) []byte {
	if !bytes.Contains(b, []byte(`\u202`)) {
		return b
	}

	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		if b[i] != '\\' || i+1 == len(b) {
			out = append(out, b[i])
			continue
		}
		if i+6 <= len(b) {
			switch string(b[i : i+6]) {
			case `\u2028`:
				out = append(out, "\u2028"...)
				i += 5
				continue
			case `\u2029`:
				out = append(out, "\u2029"...)
				i += 5
				continue
			}
		}
		out = append(out, b[i], b[i+1])
		i++
	}
	return out
}
