package form

// Reducers for the edit buffer. Every operation returns a fresh top-level
// document built by structural merge; the input snapshot is never mutated.
// The UI layer composes these from change events, feeding each result back in
// as the next snapshot (unidirectional updates, no two-way binding).
//
// List and array items are addressed by index only. Out-of-range indexes are
// ignored and the original snapshot is returned: the editor always operates on
// the latest full snapshot, so a stale index simply loses that edit.

// Document is one section's raw (all-languages) content as decoded JSON.
type Document = map[string]any

// SetField returns a copy of data with one top-level field replaced.
func SetField(data Document, name string, value any) Document {
	out := cloneTop(data)
	out[name] = value
	return out
}

// SetPath replaces the value at a dotted object path, materialising empty
// records along the way so sections that were never saved remain editable.
func SetPath(data Document, path []string, value any) Document {
	if len(path) == 0 {
		return cloneTop(data)
	}
	if len(path) == 1 {
		return SetField(data, path[0], value)
	}
	child := ObjectAt(data, path[0])
	return SetField(data, path[0], SetPath(child, path[1:], value))
}

// AppendListItem appends an empty string to a list field.
func AppendListItem(data Document, name string) Document {
	items := ListAt(data, name)
	next := make([]any, 0, len(items)+1)
	next = append(next, items...)
	next = append(next, "")
	return SetField(data, name, next)
}

// UpdateListItem replaces the list entry at idx.
func UpdateListItem(data Document, name string, idx int, value string) Document {
	items := ListAt(data, name)
	if idx < 0 || idx >= len(items) {
		return data
	}
	next := make([]any, len(items))
	copy(next, items)
	next[idx] = value
	return SetField(data, name, next)
}

// RemoveListItem drops the list entry at idx, preserving order.
func RemoveListItem(data Document, name string, idx int) Document {
	items := ListAt(data, name)
	if idx < 0 || idx >= len(items) {
		return data
	}
	next := make([]any, 0, len(items)-1)
	next = append(next, items[:idx]...)
	next = append(next, items[idx+1:]...)
	return SetField(data, name, next)
}

// AppendArrayItem appends an empty record to an array field.
func AppendArrayItem(data Document, name string) Document {
	items := ListAt(data, name)
	next := make([]any, 0, len(items)+1)
	next = append(next, items...)
	next = append(next, Document{})
	return SetField(data, name, next)
}

// UpdateArrayItem replaces the record at idx with the item produced by a
// nested editing session.
func UpdateArrayItem(data Document, name string, idx int, item Document) Document {
	items := ListAt(data, name)
	if idx < 0 || idx >= len(items) {
		return data
	}
	next := make([]any, len(items))
	copy(next, items)
	next[idx] = item
	return SetField(data, name, next)
}

// RemoveArrayItem drops the record at idx, preserving order.
func RemoveArrayItem(data Document, name string, idx int) Document {
	items := ListAt(data, name)
	if idx < 0 || idx >= len(items) {
		return data
	}
	next := make([]any, 0, len(items)-1)
	next = append(next, items[:idx]...)
	next = append(next, items[idx+1:]...)
	return SetField(data, name, next)
}

// ObjectAt returns the sub-record stored under name, or an empty record when
// the field is absent or not a record.
func ObjectAt(data Document, name string) Document {
	if data == nil {
		return Document{}
	}
	if child, ok := data[name].(map[string]any); ok {
		return child
	}
	return Document{}
}

// ListAt returns the sequence stored under name, or an empty sequence when
// the field is absent or not a sequence.
func ListAt(data Document, name string) []any {
	if data == nil {
		return nil
	}
	if items, ok := data[name].([]any); ok {
		return items
	}
	return nil
}

// StringAt returns the string stored under name, defaulting to "".
func StringAt(data Document, name string) string {
	if data == nil {
		return ""
	}
	if s, ok := data[name].(string); ok {
		return s
	}
	return ""
}

// Strings converts a decoded JSON sequence to its string entries, keeping
// order. Non-string entries become "".
func Strings(items []any) []string {
	out := make([]string, len(items))
	for i, item := range items {
		if s, ok := item.(string); ok {
			out[i] = s
		}
	}
	return out
}

func cloneTop(data Document) Document {
	out := make(Document, len(data)+1)
	for key, value := range data {
		out[key] = value
	}
	return out
}
