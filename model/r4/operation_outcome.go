package r4

import (
	"slices"

	"github.com/damedic/fhir-model-go/model"
	"github.com/damedic/fhir-model-go/model/validation"
)

// OperationOutcome is a collection of error, warning, or information messages that result from a system action.
type OperationOutcome struct {
	domainResourceBase
	issue []*OperationOutcomeIssue

	hash model.HashCache
}

var operationOutcomeDescriptor = model.NewDescriptor("OperationOutcome", model.ResourceKind, append(domainResourceFields(),
	model.ListField("issue", "OperationOutcome.Issue", func(r *OperationOutcome) []*OperationOutcomeIssue { return r.issue }).Require(),
)...).WithConstraints(domainResourceConstraints...)

func (r *OperationOutcome) TypeName() string { return "OperationOutcome" }
func (r *OperationOutcome) ResourceType() string { return "OperationOutcome" }
func (r *OperationOutcome) Descriptor() *model.Descriptor { return operationOutcomeDescriptor }
func (r *OperationOutcome) HasChildren() bool { return model.HasChildren(r) }
func (r *OperationOutcome) Hash() uint64 { return r.hash.Get(func() uint64 { return model.ComputeHash(r) }) }
func (r *OperationOutcome) Equal(o *OperationOutcome) bool { return model.Equal(r, o) }
func (r *OperationOutcome) String() string { return stringify(r) }

func (r *OperationOutcome) Issue() []*OperationOutcomeIssue { return slices.Clone(r.issue) }

// ToBuilder returns a builder initialized with the fields of r.
func (r *OperationOutcome) ToBuilder() *OperationOutcomeBuilder {
	return &OperationOutcomeBuilder{
		domainResourceBuilder: r.domainResourceBase.toBuilder(),
		issue:                 slices.Clip(r.issue),
	}
}

// OperationOutcomeBuilder builds an OperationOutcome.
type OperationOutcomeBuilder struct {
	domainResourceBuilder
	issue []*OperationOutcomeIssue
}

func NewOperationOutcomeBuilder() *OperationOutcomeBuilder { return &OperationOutcomeBuilder{} }

func (b *OperationOutcomeBuilder) SetId(id string) *OperationOutcomeBuilder {
	b.id = id
	return b
}

func (b *OperationOutcomeBuilder) SetMeta(v *Meta) *OperationOutcomeBuilder {
	b.meta = v
	return b
}

func (b *OperationOutcomeBuilder) SetImplicitRules(v *Uri) *OperationOutcomeBuilder {
	b.implicitRules = v
	return b
}

func (b *OperationOutcomeBuilder) SetLanguage(v *Code) *OperationOutcomeBuilder {
	b.language = v
	return b
}

func (b *OperationOutcomeBuilder) SetText(v *Narrative) *OperationOutcomeBuilder {
	b.text = v
	return b
}

func (b *OperationOutcomeBuilder) AddContained(v ...model.Resource) *OperationOutcomeBuilder {
	b.contained = append(b.contained, v...)
	return b
}

func (b *OperationOutcomeBuilder) AddExtension(v ...*Extension) *OperationOutcomeBuilder {
	b.extension = append(b.extension, v...)
	return b
}

func (b *OperationOutcomeBuilder) AddModifierExtension(v ...*Extension) *OperationOutcomeBuilder {
	b.modifierExtension = append(b.modifierExtension, v...)
	return b
}

func (b *OperationOutcomeBuilder) AddIssue(v ...*OperationOutcomeIssue) *OperationOutcomeBuilder {
	b.issue = append(b.issue, v...)
	return b
}

func (b *OperationOutcomeBuilder) SetField(name string, value any) error {
	switch name {
	case "issue":
		return validation.AppendTo(&b.issue, name, value)
	}
	return b.setDomainResourceField("OperationOutcome", name, value)
}

func (b *OperationOutcomeBuilder) BuildElement() (model.Element, error) {
	r, err := b.Build()
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Build validates the builder state and returns the OperationOutcome.
func (b *OperationOutcomeBuilder) Build() (*OperationOutcome, error) {
	var c checker
	r := &OperationOutcome{
		domainResourceBase: b.domainResourceBuilder.build(&c),
		issue:              checkNonEmptyList(&c, b.issue, "issue"),
	}
	if c.err != nil {
		return nil, c.result("OperationOutcome")
	}
	return r, nil
}

// OperationOutcomeIssue is a single issue associated with the action.
type OperationOutcomeIssue struct {
	backboneElementBase
	severity    *Code
	code        *Code
	details     *CodeableConcept
	diagnostics *String
	location    []*String
	expression  []*String

	hash model.HashCache
}

var operationOutcomeIssueDescriptor = model.NewDescriptor("OperationOutcome.Issue", model.BackboneKind, append(backboneElementFields(),
	model.ElementField("severity", "code", func(e *OperationOutcomeIssue) *Code { return e.severity }).Require(),
	model.ElementField("code", "code", func(e *OperationOutcomeIssue) *Code { return e.code }).Require(),
	model.ElementField("details", "CodeableConcept", func(e *OperationOutcomeIssue) *CodeableConcept { return e.details }),
	model.ElementField("diagnostics", "string", func(e *OperationOutcomeIssue) *String { return e.diagnostics }),
	model.ListField("location", "string", func(e *OperationOutcomeIssue) []*String { return e.location }),
	model.ListField("expression", "string", func(e *OperationOutcomeIssue) []*String { return e.expression }),
)...)

func (e *OperationOutcomeIssue) TypeName() string { return "OperationOutcome.Issue" }
func (e *OperationOutcomeIssue) Descriptor() *model.Descriptor { return operationOutcomeIssueDescriptor }
func (e *OperationOutcomeIssue) HasChildren() bool { return model.HasChildren(e) }
func (e *OperationOutcomeIssue) Hash() uint64 { return e.hash.Get(func() uint64 { return model.ComputeHash(e) }) }
func (e *OperationOutcomeIssue) Equal(o *OperationOutcomeIssue) bool { return model.Equal(e, o) }
func (e *OperationOutcomeIssue) String() string { return stringify(e) }

func (e *OperationOutcomeIssue) Severity() *Code { return e.severity }
func (e *OperationOutcomeIssue) Code() *Code { return e.code }
func (e *OperationOutcomeIssue) Details() *CodeableConcept { return e.details }
func (e *OperationOutcomeIssue) Diagnostics() *String { return e.diagnostics }
func (e *OperationOutcomeIssue) Location() []*String { return slices.Clone(e.location) }
func (e *OperationOutcomeIssue) Expression() []*String { return slices.Clone(e.expression) }

// ToBuilder returns a builder initialized with the fields of e.
func (e *OperationOutcomeIssue) ToBuilder() *OperationOutcomeIssueBuilder {
	return &OperationOutcomeIssueBuilder{
		backboneElementBuilder: e.backboneElementBase.toBuilder(),
		severity:               e.severity,
		code:                   e.code,
		details:                e.details,
		diagnostics:            e.diagnostics,
		location:               slices.Clip(e.location),
		expression:             slices.Clip(e.expression),
	}
}

// OperationOutcomeIssueBuilder builds an OperationOutcomeIssue.
type OperationOutcomeIssueBuilder struct {
	backboneElementBuilder
	severity    *Code
	code        *Code
	details     *CodeableConcept
	diagnostics *String
	location    []*String
	expression  []*String
}

func NewOperationOutcomeIssueBuilder() *OperationOutcomeIssueBuilder { return &OperationOutcomeIssueBuilder{} }

func (b *OperationOutcomeIssueBuilder) SetId(id string) *OperationOutcomeIssueBuilder {
	b.id = id
	return b
}

func (b *OperationOutcomeIssueBuilder) AddExtension(v ...*Extension) *OperationOutcomeIssueBuilder {
	b.extension = append(b.extension, v...)
	return b
}

func (b *OperationOutcomeIssueBuilder) AddModifierExtension(v ...*Extension) *OperationOutcomeIssueBuilder {
	b.modifierExtension = append(b.modifierExtension, v...)
	return b
}

func (b *OperationOutcomeIssueBuilder) SetSeverity(v *Code) *OperationOutcomeIssueBuilder {
	b.severity = v
	return b
}

func (b *OperationOutcomeIssueBuilder) SetCode(v *Code) *OperationOutcomeIssueBuilder {
	b.code = v
	return b
}

func (b *OperationOutcomeIssueBuilder) SetDetails(v *CodeableConcept) *OperationOutcomeIssueBuilder {
	b.details = v
	return b
}

func (b *OperationOutcomeIssueBuilder) SetDiagnostics(v *String) *OperationOutcomeIssueBuilder {
	b.diagnostics = v
	return b
}

func (b *OperationOutcomeIssueBuilder) AddLocation(v ...*String) *OperationOutcomeIssueBuilder {
	b.location = append(b.location, v...)
	return b
}

func (b *OperationOutcomeIssueBuilder) AddExpression(v ...*String) *OperationOutcomeIssueBuilder {
	b.expression = append(b.expression, v...)
	return b
}

func (b *OperationOutcomeIssueBuilder) SetField(name string, value any) error {
	switch name {
	case "severity":
		return validation.Assign(&b.severity, name, value)
	case "code":
		return validation.Assign(&b.code, name, value)
	case "details":
		return validation.Assign(&b.details, name, value)
	case "diagnostics":
		return validation.Assign(&b.diagnostics, name, value)
	case "location":
		return validation.AppendTo(&b.location, name, value)
	case "expression":
		return validation.AppendTo(&b.expression, name, value)
	}
	return b.setBackboneField("OperationOutcome.Issue", name, value)
}

func (b *OperationOutcomeIssueBuilder) BuildElement() (model.Element, error) {
	e, err := b.Build()
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Build validates the builder state and returns the OperationOutcomeIssue.
func (b *OperationOutcomeIssueBuilder) Build() (*OperationOutcomeIssue, error) {
	var c checker
	e := &OperationOutcomeIssue{
		backboneElementBase: b.backboneElementBuilder.build(&c),
		severity:            b.severity,
		code:                b.code,
		details:             b.details,
		diagnostics:         b.diagnostics,
		location:            checkList(&c, b.location, "location"),
		expression:          checkList(&c, b.expression, "expression"),
	}
	c.check(validation.RequireNonNull(e.severity, "severity"))
	c.check(validation.RequireNonNull(e.code, "code"))
	issueSeverityBinding.check(&c, e.severity, "severity")
	issueTypeBinding.check(&c, e.code, "code")
	c.check(validation.RequireChildren(e))
	if c.err != nil {
		return nil, c.result("OperationOutcome.Issue")
	}
	return e, nil
}
