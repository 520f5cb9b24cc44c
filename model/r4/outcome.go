package r4

import (
	"errors"

	"github.com/damedic/fhir-model-go/model/validation"
)

// issueTypeOf maps an error to the code of an OperationOutcome issue.
func issueTypeOf(err error) *Code {
	switch {
	case errors.Is(err, validation.ErrMissingRequiredField):
		return IssueTypeRequired
	case errors.Is(err, validation.ErrInvalidElementType),
		errors.Is(err, validation.ErrInvalidChoiceType),
		errors.Is(err, validation.ErrEmptyElement),
		errors.Is(err, validation.ErrUnknownField):
		return IssueTypeStructure
	case errors.Is(err, validation.ErrInvalidReferenceType),
		errors.Is(err, validation.ErrInvalidValue):
		return IssueTypeValue
	case errors.Is(err, validation.ErrInvalidCodeValue):
		return IssueTypeCodeInvalid
	}
	return IssueTypeInvalid
}

// OperationOutcomeFromError reports err as an OperationOutcome with a single error issue.
//
// The issue code follows the kind of err. If err names a field of the type
// that failed to build, the issue carries it as expression, e.g.
// "ServiceRequest.intent". It returns nil for a nil err.
func OperationOutcomeFromError(err error) (*OperationOutcome, error) {
	if err == nil {
		return nil, nil
	}

	issue := NewOperationOutcomeIssueBuilder().
		SetSeverity(IssueSeverityError).
		SetCode(issueTypeOf(err)).
		SetDiagnostics(NewString(err.Error()))

	if field, ok := validation.FieldOf(err); ok {
		if typeName, ok := innermostBuild(err); ok {
			field = typeName + "." + field
		}
		issue.AddExpression(NewString(field))
	}

	i, buildErr := issue.Build()
	if buildErr != nil {
		return nil, buildErr
	}
	return NewOperationOutcomeBuilder().AddIssue(i).Build()
}

// innermostBuild returns the type of the innermost BuildError in the chain of err.
func innermostBuild(err error) (string, bool) {
	var typeName string
	for ; err != nil; err = errors.Unwrap(err) {
		if be, ok := err.(*validation.BuildError); ok {
			typeName = be.Type
		}
	}
	return typeName, typeName != ""
}
