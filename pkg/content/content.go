package content

import internalcontent "github.com/goliatone/go-portfolio-cms/internal/content"

// Kind re-exports the internal field kind enumeration.
type Kind = internalcontent.Kind

const (
	KindText     = internalcontent.KindText
	KindTextarea = internalcontent.KindTextarea
	KindList     = internalcontent.KindList
	KindObject   = internalcontent.KindObject
	KindArray    = internalcontent.KindArray
	KindSelect   = internalcontent.KindSelect
	KindImage    = internalcontent.KindImage
)

type Option = internalcontent.Option
type Field = internalcontent.Field
type Schema = internalcontent.Schema
type Registry = internalcontent.Registry

// ErrSchemaNotFound marks section keys with no descriptor list.
var ErrSchemaNotFound = internalcontent.ErrSchemaNotFound

// NewRegistry returns the registry preloaded with every portfolio section.
func NewRegistry() *Registry {
	return internalcontent.NewRegistry()
}
