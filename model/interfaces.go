package model

import "fmt"

// Element is any element in the FHIR model.
//
// This includes Resources, Datatypes and BackboneElements.
// Every Element is immutable once built; it can only be obtained from its Builder.
type Element interface {
	// TypeName returns the FHIR type name, e.g. "dateTime", "CodeableConcept"
	// or "QuestionnaireResponse.Item" for backbone elements.
	TypeName() string
	// Descriptor returns the declarative field table of the type.
	Descriptor() *Descriptor
	// HasChildren reports whether at least one child element is present.
	// Scalar values like the element id are not children.
	HasChildren() bool
	// Hash returns the structural hash code of the element.
	Hash() uint64
	fmt.Stringer
}

// Resource is any FHIR Resource.
type Resource interface {
	Element
	ResourceType() string
	ResourceId() (string, bool)
}

// Builder is the generic construction path of an Element.
//
// It is used by parsers which do not know the concrete type at compile time.
// Builders are not safe for concurrent use.
type Builder interface {
	// SetField assigns the named field. On repeated fields the value is appended.
	// Scalar fields (id, url, primitive values) take Go values,
	// all other fields take Elements.
	SetField(name string, value any) error
	// BuildElement validates the accumulated fields and returns the frozen Element.
	BuildElement() (Element, error)
}

// Registry resolves FHIR type names to descriptors and builders.
type Registry interface {
	Descriptor(typeName string) (*Descriptor, bool)
	NewBuilder(typeName string) (Builder, bool)
}
