package r4

import "github.com/damedic/fhir-model-go/model"

// ResolveContained resolves a local reference (#id) against the contained resources of r.
//
// Contained resources have no identity outside r, any other kind of
// reference yields false.
func ResolveContained(r DomainResource, ref *Reference) (model.Resource, bool) {
	if r == nil || ref == nil {
		return nil, false
	}
	id, ok := ref.ContainedId()
	if !ok {
		return nil, false
	}
	for _, c := range r.Contained() {
		if cid, ok := c.ResourceId(); ok && cid == id {
			return c, true
		}
	}
	return nil, false
}
