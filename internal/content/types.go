package content

import "fmt"

// Kind is the closed enumeration of editable field kinds. The form editor
// switches exhaustively on it, so adding a kind means touching every renderer.
type Kind string

const (
	KindText     Kind = "text"
	KindTextarea Kind = "textarea"
	KindList     Kind = "list"
	KindObject   Kind = "object"
	KindArray    Kind = "array"
	KindSelect   Kind = "select"
	KindImage    Kind = "image"
)

// Option is one selectable label/value pair for KindSelect fields.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Field describes one editable slot inside a section schema. Composite kinds
// carry their sub-schemas: KindObject uses Children, KindArray uses
// ItemChildren (the schema of one item), KindSelect uses Options. Descriptors
// are immutable; they exist only inside the registry.
type Field struct {
	Name         string   `json:"name"`
	Label        string   `json:"label"`
	Kind         Kind     `json:"kind"`
	Children     []Field  `json:"children,omitempty"`
	ItemChildren []Field  `json:"itemChildren,omitempty"`
	Options      []Option `json:"options,omitempty"`
}

// Schema is the ordered descriptor list for one content section plus its
// human-readable label.
type Schema struct {
	Name   string  `json:"name"`
	Fields []Field `json:"fields"`
}

// Check verifies the structural invariants of a descriptor: composite kinds
// must carry a non-empty sub-schema and selects a non-empty option set.
func (f Field) Check() error {
	if f.Name == "" {
		return fmt.Errorf("content: field without a name")
	}
	switch f.Kind {
	case KindObject:
		if len(f.Children) == 0 {
			return fmt.Errorf("content: object field %q has no children", f.Name)
		}
		for _, child := range f.Children {
			if err := child.Check(); err != nil {
				return err
			}
		}
	case KindArray:
		if len(f.ItemChildren) == 0 {
			return fmt.Errorf("content: array field %q has no item children", f.Name)
		}
		for _, child := range f.ItemChildren {
			if err := child.Check(); err != nil {
				return err
			}
		}
	case KindSelect:
		if len(f.Options) == 0 {
			return fmt.Errorf("content: select field %q has no options", f.Name)
		}
	case KindText, KindTextarea, KindList, KindImage:
	default:
		return fmt.Errorf("content: field %q has unknown kind %q", f.Name, f.Kind)
	}
	return nil
}
