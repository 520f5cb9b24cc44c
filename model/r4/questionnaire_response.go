package r4

import (
	"slices"

	"github.com/damedic/fhir-model-go/model"
	"github.com/damedic/fhir-model-go/model/validation"
)

// QuestionnaireResponse is a structured set of questions and their answers.
type QuestionnaireResponse struct {
	domainResourceBase
	identifier    *Identifier
	basedOn       []*Reference
	partOf        []*Reference
	questionnaire *Canonical
	status        *Code
	subject       *Reference
	encounter     *Reference
	authored      *DateTime
	author        *Reference
	source        *Reference
	item          []*QuestionnaireResponseItem

	hash model.HashCache
}

var questionnaireResponseDescriptor = model.NewDescriptor("QuestionnaireResponse", model.ResourceKind, append(domainResourceFields(),
	model.ElementField("identifier", "Identifier", func(r *QuestionnaireResponse) *Identifier { return r.identifier }),
	model.ListField("basedOn", "Reference", func(r *QuestionnaireResponse) []*Reference { return r.basedOn }).WithTargets("CarePlan", "ServiceRequest"),
	model.ListField("partOf", "Reference", func(r *QuestionnaireResponse) []*Reference { return r.partOf }).WithTargets("Observation", "Procedure"),
	model.ElementField("questionnaire", "canonical", func(r *QuestionnaireResponse) *Canonical { return r.questionnaire }),
	model.ElementField("status", "code", func(r *QuestionnaireResponse) *Code { return r.status }).Require(),
	model.ElementField("subject", "Reference", func(r *QuestionnaireResponse) *Reference { return r.subject }),
	model.ElementField("encounter", "Reference", func(r *QuestionnaireResponse) *Reference { return r.encounter }).WithTargets("Encounter"),
	model.ElementField("authored", "dateTime", func(r *QuestionnaireResponse) *DateTime { return r.authored }),
	model.ElementField("author", "Reference", func(r *QuestionnaireResponse) *Reference { return r.author }).WithTargets("Device", "Practitioner", "PractitionerRole", "Patient", "RelatedPerson", "Organization"),
	model.ElementField("source", "Reference", func(r *QuestionnaireResponse) *Reference { return r.source }).WithTargets("Patient", "Practitioner", "PractitionerRole", "RelatedPerson"),
	model.ListField("item", "QuestionnaireResponse.Item", func(r *QuestionnaireResponse) []*QuestionnaireResponseItem { return r.item }),
)...).WithConstraints(domainResourceConstraints...).WithConstraints(
	model.Constraint{
		Key:        "qrs-1",
		Severity:   "error",
		Human:      "Nested item can't be beneath both item and answer",
		Expression: "(item | item.repeat(item | answer.item)).all((answer.exists() and item.exists()).not())",
	},
)

func (r *QuestionnaireResponse) TypeName() string { return "QuestionnaireResponse" }
func (r *QuestionnaireResponse) ResourceType() string { return "QuestionnaireResponse" }
func (r *QuestionnaireResponse) Descriptor() *model.Descriptor { return questionnaireResponseDescriptor }
func (r *QuestionnaireResponse) HasChildren() bool { return model.HasChildren(r) }
func (r *QuestionnaireResponse) Hash() uint64 { return r.hash.Get(func() uint64 { return model.ComputeHash(r) }) }
func (r *QuestionnaireResponse) Equal(o *QuestionnaireResponse) bool { return model.Equal(r, o) }
func (r *QuestionnaireResponse) String() string { return stringify(r) }

func (r *QuestionnaireResponse) Identifier() *Identifier { return r.identifier }
func (r *QuestionnaireResponse) BasedOn() []*Reference { return slices.Clone(r.basedOn) }
func (r *QuestionnaireResponse) PartOf() []*Reference { return slices.Clone(r.partOf) }
func (r *QuestionnaireResponse) Questionnaire() *Canonical { return r.questionnaire }
func (r *QuestionnaireResponse) Status() *Code { return r.status }
func (r *QuestionnaireResponse) Subject() *Reference { return r.subject }
func (r *QuestionnaireResponse) Encounter() *Reference { return r.encounter }
func (r *QuestionnaireResponse) Authored() *DateTime { return r.authored }
func (r *QuestionnaireResponse) Author() *Reference { return r.author }
func (r *QuestionnaireResponse) Source() *Reference { return r.source }
func (r *QuestionnaireResponse) Item() []*QuestionnaireResponseItem { return slices.Clone(r.item) }

// ToBuilder returns a builder initialized with the fields of r.
func (r *QuestionnaireResponse) ToBuilder() *QuestionnaireResponseBuilder {
	return &QuestionnaireResponseBuilder{
		domainResourceBuilder: r.domainResourceBase.toBuilder(),
		identifier:            r.identifier,
		basedOn:               slices.Clip(r.basedOn),
		partOf:                slices.Clip(r.partOf),
		questionnaire:         r.questionnaire,
		status:                r.status,
		subject:               r.subject,
		encounter:             r.encounter,
		authored:              r.authored,
		author:                r.author,
		source:                r.source,
		item:                  slices.Clip(r.item),
	}
}

// QuestionnaireResponseBuilder builds a QuestionnaireResponse.
type QuestionnaireResponseBuilder struct {
	domainResourceBuilder
	identifier    *Identifier
	basedOn       []*Reference
	partOf        []*Reference
	questionnaire *Canonical
	status        *Code
	subject       *Reference
	encounter     *Reference
	authored      *DateTime
	author        *Reference
	source        *Reference
	item          []*QuestionnaireResponseItem
}

func NewQuestionnaireResponseBuilder() *QuestionnaireResponseBuilder { return &QuestionnaireResponseBuilder{} }

func (b *QuestionnaireResponseBuilder) SetId(id string) *QuestionnaireResponseBuilder {
	b.id = id
	return b
}

func (b *QuestionnaireResponseBuilder) SetMeta(v *Meta) *QuestionnaireResponseBuilder {
	b.meta = v
	return b
}

func (b *QuestionnaireResponseBuilder) SetImplicitRules(v *Uri) *QuestionnaireResponseBuilder {
	b.implicitRules = v
	return b
}

func (b *QuestionnaireResponseBuilder) SetLanguage(v *Code) *QuestionnaireResponseBuilder {
	b.language = v
	return b
}

func (b *QuestionnaireResponseBuilder) SetText(v *Narrative) *QuestionnaireResponseBuilder {
	b.text = v
	return b
}

func (b *QuestionnaireResponseBuilder) AddContained(v ...model.Resource) *QuestionnaireResponseBuilder {
	b.contained = append(b.contained, v...)
	return b
}

func (b *QuestionnaireResponseBuilder) AddExtension(v ...*Extension) *QuestionnaireResponseBuilder {
	b.extension = append(b.extension, v...)
	return b
}

func (b *QuestionnaireResponseBuilder) AddModifierExtension(v ...*Extension) *QuestionnaireResponseBuilder {
	b.modifierExtension = append(b.modifierExtension, v...)
	return b
}

func (b *QuestionnaireResponseBuilder) SetIdentifier(v *Identifier) *QuestionnaireResponseBuilder {
	b.identifier = v
	return b
}

func (b *QuestionnaireResponseBuilder) AddBasedOn(v ...*Reference) *QuestionnaireResponseBuilder {
	b.basedOn = append(b.basedOn, v...)
	return b
}

func (b *QuestionnaireResponseBuilder) AddPartOf(v ...*Reference) *QuestionnaireResponseBuilder {
	b.partOf = append(b.partOf, v...)
	return b
}

func (b *QuestionnaireResponseBuilder) SetQuestionnaire(v *Canonical) *QuestionnaireResponseBuilder {
	b.questionnaire = v
	return b
}

func (b *QuestionnaireResponseBuilder) SetStatus(v *Code) *QuestionnaireResponseBuilder {
	b.status = v
	return b
}

func (b *QuestionnaireResponseBuilder) SetSubject(v *Reference) *QuestionnaireResponseBuilder {
	b.subject = v
	return b
}

func (b *QuestionnaireResponseBuilder) SetEncounter(v *Reference) *QuestionnaireResponseBuilder {
	b.encounter = v
	return b
}

func (b *QuestionnaireResponseBuilder) SetAuthored(v *DateTime) *QuestionnaireResponseBuilder {
	b.authored = v
	return b
}

func (b *QuestionnaireResponseBuilder) SetAuthor(v *Reference) *QuestionnaireResponseBuilder {
	b.author = v
	return b
}

func (b *QuestionnaireResponseBuilder) SetSource(v *Reference) *QuestionnaireResponseBuilder {
	b.source = v
	return b
}

func (b *QuestionnaireResponseBuilder) AddItem(v ...*QuestionnaireResponseItem) *QuestionnaireResponseBuilder {
	b.item = append(b.item, v...)
	return b
}

func (b *QuestionnaireResponseBuilder) SetField(name string, value any) error {
	switch name {
	case "identifier":
		return validation.Assign(&b.identifier, name, value)
	case "basedOn":
		return validation.AppendTo(&b.basedOn, name, value)
	case "partOf":
		return validation.AppendTo(&b.partOf, name, value)
	case "questionnaire":
		return validation.Assign(&b.questionnaire, name, value)
	case "status":
		return validation.Assign(&b.status, name, value)
	case "subject":
		return validation.Assign(&b.subject, name, value)
	case "encounter":
		return validation.Assign(&b.encounter, name, value)
	case "authored":
		return validation.Assign(&b.authored, name, value)
	case "author":
		return validation.Assign(&b.author, name, value)
	case "source":
		return validation.Assign(&b.source, name, value)
	case "item":
		return validation.AppendTo(&b.item, name, value)
	}
	return b.setDomainResourceField("QuestionnaireResponse", name, value)
}

func (b *QuestionnaireResponseBuilder) BuildElement() (model.Element, error) {
	r, err := b.Build()
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Build validates the builder state and returns the QuestionnaireResponse.
func (b *QuestionnaireResponseBuilder) Build() (*QuestionnaireResponse, error) {
	var c checker
	r := &QuestionnaireResponse{
		domainResourceBase: b.domainResourceBuilder.build(&c),
		identifier:         b.identifier,
		basedOn:            checkList(&c, b.basedOn, "basedOn"),
		partOf:             checkList(&c, b.partOf, "partOf"),
		questionnaire:      b.questionnaire,
		status:             b.status,
		subject:            b.subject,
		encounter:          b.encounter,
		authored:           b.authored,
		author:             b.author,
		source:             b.source,
		item:               checkList(&c, b.item, "item"),
	}
	c.check(validation.RequireNonNull(r.status, "status"))
	c.check(validation.CheckReferenceTypes(r.basedOn, "basedOn", "CarePlan", "ServiceRequest"))
	c.check(validation.CheckReferenceTypes(r.partOf, "partOf", "Observation", "Procedure"))
	c.check(validation.CheckReferenceType(r.encounter, "encounter", "Encounter"))
	c.check(validation.CheckReferenceType(r.author, "author", "Device", "Practitioner", "PractitionerRole", "Patient", "RelatedPerson", "Organization"))
	c.check(validation.CheckReferenceType(r.source, "source", "Patient", "Practitioner", "PractitionerRole", "RelatedPerson"))
	questionnaireResponseStatusBinding.check(&c, r.status, "status")
	if c.err != nil {
		return nil, c.result("QuestionnaireResponse")
	}
	return r, nil
}

// QuestionnaireResponseItem is a group or question item from the original questionnaire for which answers are provided.
type QuestionnaireResponseItem struct {
	backboneElementBase
	linkId     *String
	definition *Uri
	text       *String
	answer     []*QuestionnaireResponseItemAnswer
	item       []*QuestionnaireResponseItem

	hash model.HashCache
}

var questionnaireResponseItemDescriptor = model.NewDescriptor("QuestionnaireResponse.Item", model.BackboneKind, append(backboneElementFields(),
	model.ElementField("linkId", "string", func(e *QuestionnaireResponseItem) *String { return e.linkId }).Require(),
	model.ElementField("definition", "uri", func(e *QuestionnaireResponseItem) *Uri { return e.definition }),
	model.ElementField("text", "string", func(e *QuestionnaireResponseItem) *String { return e.text }),
	model.ListField("answer", "QuestionnaireResponse.Item.Answer", func(e *QuestionnaireResponseItem) []*QuestionnaireResponseItemAnswer { return e.answer }),
	model.ListField("item", "QuestionnaireResponse.Item", func(e *QuestionnaireResponseItem) []*QuestionnaireResponseItem { return e.item }),
)...)

func (e *QuestionnaireResponseItem) TypeName() string { return "QuestionnaireResponse.Item" }
func (e *QuestionnaireResponseItem) Descriptor() *model.Descriptor { return questionnaireResponseItemDescriptor }
func (e *QuestionnaireResponseItem) HasChildren() bool { return model.HasChildren(e) }
func (e *QuestionnaireResponseItem) Hash() uint64 { return e.hash.Get(func() uint64 { return model.ComputeHash(e) }) }
func (e *QuestionnaireResponseItem) Equal(o *QuestionnaireResponseItem) bool { return model.Equal(e, o) }
func (e *QuestionnaireResponseItem) String() string { return stringify(e) }

func (e *QuestionnaireResponseItem) LinkId() *String { return e.linkId }
func (e *QuestionnaireResponseItem) Definition() *Uri { return e.definition }
func (e *QuestionnaireResponseItem) Text() *String { return e.text }
func (e *QuestionnaireResponseItem) Answer() []*QuestionnaireResponseItemAnswer { return slices.Clone(e.answer) }
func (e *QuestionnaireResponseItem) Item() []*QuestionnaireResponseItem { return slices.Clone(e.item) }

// ToBuilder returns a builder initialized with the fields of e.
func (e *QuestionnaireResponseItem) ToBuilder() *QuestionnaireResponseItemBuilder {
	return &QuestionnaireResponseItemBuilder{
		backboneElementBuilder: e.backboneElementBase.toBuilder(),
		linkId:                 e.linkId,
		definition:             e.definition,
		text:                   e.text,
		answer:                 slices.Clip(e.answer),
		item:                   slices.Clip(e.item),
	}
}

// QuestionnaireResponseItemBuilder builds a QuestionnaireResponseItem.
type QuestionnaireResponseItemBuilder struct {
	backboneElementBuilder
	linkId     *String
	definition *Uri
	text       *String
	answer     []*QuestionnaireResponseItemAnswer
	item       []*QuestionnaireResponseItem
}

func NewQuestionnaireResponseItemBuilder() *QuestionnaireResponseItemBuilder { return &QuestionnaireResponseItemBuilder{} }

func (b *QuestionnaireResponseItemBuilder) SetId(id string) *QuestionnaireResponseItemBuilder {
	b.id = id
	return b
}

func (b *QuestionnaireResponseItemBuilder) AddExtension(v ...*Extension) *QuestionnaireResponseItemBuilder {
	b.extension = append(b.extension, v...)
	return b
}

func (b *QuestionnaireResponseItemBuilder) AddModifierExtension(v ...*Extension) *QuestionnaireResponseItemBuilder {
	b.modifierExtension = append(b.modifierExtension, v...)
	return b
}

func (b *QuestionnaireResponseItemBuilder) SetLinkId(v *String) *QuestionnaireResponseItemBuilder {
	b.linkId = v
	return b
}

func (b *QuestionnaireResponseItemBuilder) SetDefinition(v *Uri) *QuestionnaireResponseItemBuilder {
	b.definition = v
	return b
}

func (b *QuestionnaireResponseItemBuilder) SetText(v *String) *QuestionnaireResponseItemBuilder {
	b.text = v
	return b
}

func (b *QuestionnaireResponseItemBuilder) AddAnswer(v ...*QuestionnaireResponseItemAnswer) *QuestionnaireResponseItemBuilder {
	b.answer = append(b.answer, v...)
	return b
}

func (b *QuestionnaireResponseItemBuilder) AddItem(v ...*QuestionnaireResponseItem) *QuestionnaireResponseItemBuilder {
	b.item = append(b.item, v...)
	return b
}

func (b *QuestionnaireResponseItemBuilder) SetField(name string, value any) error {
	switch name {
	case "linkId":
		return validation.Assign(&b.linkId, name, value)
	case "definition":
		return validation.Assign(&b.definition, name, value)
	case "text":
		return validation.Assign(&b.text, name, value)
	case "answer":
		return validation.AppendTo(&b.answer, name, value)
	case "item":
		return validation.AppendTo(&b.item, name, value)
	}
	return b.setBackboneField("QuestionnaireResponse.Item", name, value)
}

func (b *QuestionnaireResponseItemBuilder) BuildElement() (model.Element, error) {
	e, err := b.Build()
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Build validates the builder state and returns the QuestionnaireResponseItem.
func (b *QuestionnaireResponseItemBuilder) Build() (*QuestionnaireResponseItem, error) {
	var c checker
	e := &QuestionnaireResponseItem{
		backboneElementBase: b.backboneElementBuilder.build(&c),
		linkId:              b.linkId,
		definition:          b.definition,
		text:                b.text,
		answer:              checkList(&c, b.answer, "answer"),
		item:                checkList(&c, b.item, "item"),
	}
	c.check(validation.RequireNonNull(e.linkId, "linkId"))
	c.check(validation.RequireChildren(e))
	if c.err != nil {
		return nil, c.result("QuestionnaireResponse.Item")
	}
	return e, nil
}

// QuestionnaireResponseItemAnswer is the respondent's answer(s) to the question.
type QuestionnaireResponseItemAnswer struct {
	backboneElementBase
	value QuestionnaireResponseItemAnswerValue
	item  []*QuestionnaireResponseItem

	hash model.HashCache
}

// QuestionnaireResponseItemAnswerValue is the closed set of types
// QuestionnaireResponse.Item.Answer.value[x] can hold: Boolean, Decimal, Integer, Date,
// DateTime, Time, String, Uri, Attachment, Coding, Quantity or Reference.
type QuestionnaireResponseItemAnswerValue interface {
	model.Element
	isQuestionnaireResponseItemAnswerValue()
}

var questionnaireResponseItemAnswerValueTypes = []string{"boolean", "decimal", "integer", "date", "dateTime", "time", "string", "uri", "Attachment", "Coding", "Quantity", "Reference"}

func (*Boolean) isQuestionnaireResponseItemAnswerValue() {}
func (*Decimal) isQuestionnaireResponseItemAnswerValue() {}
func (*Integer) isQuestionnaireResponseItemAnswerValue() {}
func (*Date) isQuestionnaireResponseItemAnswerValue() {}
func (*DateTime) isQuestionnaireResponseItemAnswerValue() {}
func (*Time) isQuestionnaireResponseItemAnswerValue() {}
func (*String) isQuestionnaireResponseItemAnswerValue() {}
func (*Uri) isQuestionnaireResponseItemAnswerValue() {}
func (*Attachment) isQuestionnaireResponseItemAnswerValue() {}
func (*Coding) isQuestionnaireResponseItemAnswerValue() {}
func (*Quantity) isQuestionnaireResponseItemAnswerValue() {}
func (*Reference) isQuestionnaireResponseItemAnswerValue() {}

var questionnaireResponseItemAnswerDescriptor = model.NewDescriptor("QuestionnaireResponse.Item.Answer", model.BackboneKind, append(backboneElementFields(),
	model.ChoiceField("value", func(e *QuestionnaireResponseItemAnswer) QuestionnaireResponseItemAnswerValue { return e.value }, questionnaireResponseItemAnswerValueTypes...),
	model.ListField("item", "QuestionnaireResponse.Item", func(e *QuestionnaireResponseItemAnswer) []*QuestionnaireResponseItem { return e.item }),
)...)

func (e *QuestionnaireResponseItemAnswer) TypeName() string { return "QuestionnaireResponse.Item.Answer" }
func (e *QuestionnaireResponseItemAnswer) Descriptor() *model.Descriptor { return questionnaireResponseItemAnswerDescriptor }
func (e *QuestionnaireResponseItemAnswer) HasChildren() bool { return model.HasChildren(e) }
func (e *QuestionnaireResponseItemAnswer) Hash() uint64 { return e.hash.Get(func() uint64 { return model.ComputeHash(e) }) }
func (e *QuestionnaireResponseItemAnswer) Equal(o *QuestionnaireResponseItemAnswer) bool { return model.Equal(e, o) }
func (e *QuestionnaireResponseItemAnswer) String() string { return stringify(e) }

func (e *QuestionnaireResponseItemAnswer) Value() QuestionnaireResponseItemAnswerValue { return e.value }
func (e *QuestionnaireResponseItemAnswer) Item() []*QuestionnaireResponseItem { return slices.Clone(e.item) }

// ToBuilder returns a builder initialized with the fields of e.
func (e *QuestionnaireResponseItemAnswer) ToBuilder() *QuestionnaireResponseItemAnswerBuilder {
	return &QuestionnaireResponseItemAnswerBuilder{
		backboneElementBuilder: e.backboneElementBase.toBuilder(),
		value:                  e.value,
		item:                   slices.Clip(e.item),
	}
}

// QuestionnaireResponseItemAnswerBuilder builds a QuestionnaireResponseItemAnswer.
type QuestionnaireResponseItemAnswerBuilder struct {
	backboneElementBuilder
	value QuestionnaireResponseItemAnswerValue
	item  []*QuestionnaireResponseItem
}

func NewQuestionnaireResponseItemAnswerBuilder() *QuestionnaireResponseItemAnswerBuilder { return &QuestionnaireResponseItemAnswerBuilder{} }

func (b *QuestionnaireResponseItemAnswerBuilder) SetId(id string) *QuestionnaireResponseItemAnswerBuilder {
	b.id = id
	return b
}

func (b *QuestionnaireResponseItemAnswerBuilder) AddExtension(v ...*Extension) *QuestionnaireResponseItemAnswerBuilder {
	b.extension = append(b.extension, v...)
	return b
}

func (b *QuestionnaireResponseItemAnswerBuilder) AddModifierExtension(v ...*Extension) *QuestionnaireResponseItemAnswerBuilder {
	b.modifierExtension = append(b.modifierExtension, v...)
	return b
}

func (b *QuestionnaireResponseItemAnswerBuilder) SetValue(v QuestionnaireResponseItemAnswerValue) *QuestionnaireResponseItemAnswerBuilder {
	b.value = v
	return b
}

func (b *QuestionnaireResponseItemAnswerBuilder) AddItem(v ...*QuestionnaireResponseItem) *QuestionnaireResponseItemAnswerBuilder {
	b.item = append(b.item, v...)
	return b
}

func (b *QuestionnaireResponseItemAnswerBuilder) SetField(name string, value any) error {
	switch name {
	case "value":
		return validation.AssignChoice(&b.value, name, value, questionnaireResponseItemAnswerValueTypes...)
	case "item":
		return validation.AppendTo(&b.item, name, value)
	}
	return b.setBackboneField("QuestionnaireResponse.Item.Answer", name, value)
}

func (b *QuestionnaireResponseItemAnswerBuilder) BuildElement() (model.Element, error) {
	e, err := b.Build()
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Build validates the builder state and returns the QuestionnaireResponseItemAnswer.
func (b *QuestionnaireResponseItemAnswerBuilder) Build() (*QuestionnaireResponseItemAnswer, error) {
	var c checker
	e := &QuestionnaireResponseItemAnswer{
		backboneElementBase: b.backboneElementBuilder.build(&c),
		value:               b.value,
		item:                checkList(&c, b.item, "item"),
	}
	c.check(validation.ChoiceElement(e.value, "value", questionnaireResponseItemAnswerValueTypes...))
	c.check(validation.RequireChildren(e))
	if c.err != nil {
		return nil, c.result("QuestionnaireResponse.Item.Answer")
	}
	return e, nil
}
