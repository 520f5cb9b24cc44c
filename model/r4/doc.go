// Package r4 holds the FHIR R4 object model.
//
// Every type is immutable once built and can only be obtained through its
// builder, which validates the structural rules of the type on Build.
// Cross-field invariants are declared on the type descriptors but not
// enforced, see package constraint.
package r4
