package r4

import (
	"strings"

	"github.com/damedic/fhir-model-go/model/validation"
)

// NewReference returns a Reference holding the literal reference, e.g. "Patient/123",
// nil if literal is empty.
func NewReference(literal string) *Reference {
	if literal == "" {
		return nil
	}
	return &Reference{reference: NewString(literal)}
}

// LiteralReference returns the value of Reference.reference, empty if absent.
func (e *Reference) LiteralReference() string {
	if e == nil || e.reference == nil {
		return ""
	}
	v, _ := e.reference.Value()
	return v
}

// TargetTypeName returns the value of Reference.type, empty if absent.
func (e *Reference) TargetTypeName() string {
	if e == nil || e.typ == nil {
		return ""
	}
	v, _ := e.typ.Value()
	return v
}

// ContainedId returns the id of the contained resource the reference points to.
func (e *Reference) ContainedId() (string, bool) {
	id, ok := strings.CutPrefix(e.LiteralReference(), "#")
	return id, ok && id != ""
}

// CodeValues returns system and code of the coding.
func (e *Coding) CodeValues() []validation.CodeValue {
	if e == nil || e.code == nil {
		return nil
	}
	cv := validation.CodeValue{}
	cv.Code, _ = e.code.Value()
	if e.system != nil {
		cv.System, _ = e.system.Value()
	}
	return []validation.CodeValue{cv}
}

// CodeValues returns system and code of every coding.
func (e *CodeableConcept) CodeValues() []validation.CodeValue {
	if e == nil {
		return nil
	}
	var cvs []validation.CodeValue
	for _, c := range e.coding {
		cvs = append(cvs, c.CodeValues()...)
	}
	return cvs
}
