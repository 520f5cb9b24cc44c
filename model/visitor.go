package model

// Visitor is the generic traversal contract used by Walk.
//
// For every element reached, Walk calls PreVisit; if it returns true,
// VisitStart, Visit, the children (only if Visit returned true), VisitEnd
// and PostVisit follow. Scalar values are reported through VisitValue in
// their declared position. Index is -1 for elements that are not part of a
// repeated field.
//
// An error returned by any method aborts the traversal and is returned by Walk
// unchanged.
type Visitor interface {
	PreVisit(e Element) bool
	VisitStart(name string, index int, e Element) error
	Visit(name string, index int, e Element) (bool, error)
	VisitValue(name string, value any) error
	VisitEnd(name string, index int, e Element) error
	PostVisit(e Element)
}

// BaseVisitor descends into every element and does nothing.
//
// Embed it to implement only the methods of interest.
type BaseVisitor struct{}

func (BaseVisitor) PreVisit(Element) bool { return true }
func (BaseVisitor) VisitStart(string, int, Element) error { return nil }
func (BaseVisitor) Visit(string, int, Element) (bool, error) { return true, nil }
func (BaseVisitor) VisitValue(string, any) error { return nil }
func (BaseVisitor) VisitEnd(string, int, Element) error { return nil }
func (BaseVisitor) PostVisit(Element) {}

// Walk traverses e depth-first in declaration order.
//
// name and index describe the position of e in its parent, the root is
// usually walked with its type name and index -1.
func Walk(v Visitor, name string, index int, e Element) error {
	if IsNil(e) || !v.PreVisit(e) {
		return nil
	}
	if err := v.VisitStart(name, index, e); err != nil {
		return err
	}
	descend, err := v.Visit(name, index, e)
	if err != nil {
		return err
	}
	if descend {
		for _, f := range e.Descriptor().Fields {
			if err := walkField(v, f, e); err != nil {
				return err
			}
		}
	}
	if err := v.VisitEnd(name, index, e); err != nil {
		return err
	}
	v.PostVisit(e)
	return nil
}

func walkField(v Visitor, f FieldDescriptor, e Element) error {
	if f.Kind == FieldValue {
		value, ok := f.Value(e)
		if !ok {
			return nil
		}
		return v.VisitValue(f.Name, value)
	}

	if !f.Repeated {
		return Walk(v, f.Name, -1, f.Element(e))
	}
	for i, c := range f.Elements(e) {
		if err := Walk(v, f.Name, i, c); err != nil {
			return err
		}
	}
	return nil
}
