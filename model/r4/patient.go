package r4

import (
	"slices"

	"github.com/damedic/fhir-model-go/model"
	"github.com/damedic/fhir-model-go/model/validation"
)

// Patient holds demographics and other administrative information about an individual receiving care or other health-related services.
type Patient struct {
	domainResourceBase
	identifier           []*Identifier
	active               *Boolean
	name                 []*HumanName
	telecom              []*ContactPoint
	gender               *Code
	birthDate            *Date
	deceased             PatientDeceased
	address              []*Address
	maritalStatus        *CodeableConcept
	multipleBirth        PatientMultipleBirth
	photo                []*Attachment
	contact              []*PatientContact
	communication        []*PatientCommunication
	generalPractitioner  []*Reference
	managingOrganization *Reference
	link                 []*PatientLink

	hash model.HashCache
}

// PatientDeceased is the closed set of types Patient.deceased[x] can hold: Boolean or
// DateTime.
type PatientDeceased interface {
	model.Element
	isPatientDeceased()
}

var patientDeceasedTypes = []string{"boolean", "dateTime"}

func (*Boolean) isPatientDeceased() {}
func (*DateTime) isPatientDeceased() {}

// PatientMultipleBirth is the closed set of types Patient.multipleBirth[x] can hold: Boolean
// or Integer.
type PatientMultipleBirth interface {
	model.Element
	isPatientMultipleBirth()
}

var patientMultipleBirthTypes = []string{"boolean", "integer"}

func (*Boolean) isPatientMultipleBirth() {}
func (*Integer) isPatientMultipleBirth() {}

var patientDescriptor = model.NewDescriptor("Patient", model.ResourceKind, append(domainResourceFields(),
	model.ListField("identifier", "Identifier", func(r *Patient) []*Identifier { return r.identifier }),
	model.ElementField("active", "boolean", func(r *Patient) *Boolean { return r.active }),
	model.ListField("name", "HumanName", func(r *Patient) []*HumanName { return r.name }),
	model.ListField("telecom", "ContactPoint", func(r *Patient) []*ContactPoint { return r.telecom }),
	model.ElementField("gender", "code", func(r *Patient) *Code { return r.gender }),
	model.ElementField("birthDate", "date", func(r *Patient) *Date { return r.birthDate }),
	model.ChoiceField("deceased", func(r *Patient) PatientDeceased { return r.deceased }, patientDeceasedTypes...),
	model.ListField("address", "Address", func(r *Patient) []*Address { return r.address }),
	model.ElementField("maritalStatus", "CodeableConcept", func(r *Patient) *CodeableConcept { return r.maritalStatus }),
	model.ChoiceField("multipleBirth", func(r *Patient) PatientMultipleBirth { return r.multipleBirth }, patientMultipleBirthTypes...),
	model.ListField("photo", "Attachment", func(r *Patient) []*Attachment { return r.photo }),
	model.ListField("contact", "Patient.Contact", func(r *Patient) []*PatientContact { return r.contact }),
	model.ListField("communication", "Patient.Communication", func(r *Patient) []*PatientCommunication { return r.communication }),
	model.ListField("generalPractitioner", "Reference", func(r *Patient) []*Reference { return r.generalPractitioner }).WithTargets("Organization", "Practitioner", "PractitionerRole"),
	model.ElementField("managingOrganization", "Reference", func(r *Patient) *Reference { return r.managingOrganization }).WithTargets("Organization"),
	model.ListField("link", "Patient.Link", func(r *Patient) []*PatientLink { return r.link }),
)...).WithConstraints(domainResourceConstraints...).WithConstraints(
	model.Constraint{
		Key:        "pat-1",
		Severity:   "error",
		Human:      "SHALL at least contain a contact's details or a reference to an organization",
		Expression: "contact.all(name.exists() or telecom.exists() or address.exists() or organization.exists())",
	},
)

func (r *Patient) TypeName() string { return "Patient" }
func (r *Patient) ResourceType() string { return "Patient" }
func (r *Patient) Descriptor() *model.Descriptor { return patientDescriptor }
func (r *Patient) HasChildren() bool { return model.HasChildren(r) }
func (r *Patient) Hash() uint64 { return r.hash.Get(func() uint64 { return model.ComputeHash(r) }) }
func (r *Patient) Equal(o *Patient) bool { return model.Equal(r, o) }
func (r *Patient) String() string { return stringify(r) }

func (r *Patient) Identifier() []*Identifier { return slices.Clone(r.identifier) }
func (r *Patient) Active() *Boolean { return r.active }
func (r *Patient) Name() []*HumanName { return slices.Clone(r.name) }
func (r *Patient) Telecom() []*ContactPoint { return slices.Clone(r.telecom) }
func (r *Patient) Gender() *Code { return r.gender }
func (r *Patient) BirthDate() *Date { return r.birthDate }
func (r *Patient) Deceased() PatientDeceased { return r.deceased }
func (r *Patient) Address() []*Address { return slices.Clone(r.address) }
func (r *Patient) MaritalStatus() *CodeableConcept { return r.maritalStatus }
func (r *Patient) MultipleBirth() PatientMultipleBirth { return r.multipleBirth }
func (r *Patient) Photo() []*Attachment { return slices.Clone(r.photo) }
func (r *Patient) Contact() []*PatientContact { return slices.Clone(r.contact) }
func (r *Patient) Communication() []*PatientCommunication { return slices.Clone(r.communication) }
func (r *Patient) GeneralPractitioner() []*Reference { return slices.Clone(r.generalPractitioner) }
func (r *Patient) ManagingOrganization() *Reference { return r.managingOrganization }
func (r *Patient) Link() []*PatientLink { return slices.Clone(r.link) }

// ToBuilder returns a builder initialized with the fields of r.
func (r *Patient) ToBuilder() *PatientBuilder {
	return &PatientBuilder{
		domainResourceBuilder: r.domainResourceBase.toBuilder(),
		identifier:            slices.Clip(r.identifier),
		active:                r.active,
		name:                  slices.Clip(r.name),
		telecom:               slices.Clip(r.telecom),
		gender:                r.gender,
		birthDate:             r.birthDate,
		deceased:              r.deceased,
		address:               slices.Clip(r.address),
		maritalStatus:         r.maritalStatus,
		multipleBirth:         r.multipleBirth,
		photo:                 slices.Clip(r.photo),
		contact:               slices.Clip(r.contact),
		communication:         slices.Clip(r.communication),
		generalPractitioner:   slices.Clip(r.generalPractitioner),
		managingOrganization:  r.managingOrganization,
		link:                  slices.Clip(r.link),
	}
}

// PatientBuilder builds a Patient.
type PatientBuilder struct {
	domainResourceBuilder
	identifier           []*Identifier
	active               *Boolean
	name                 []*HumanName
	telecom              []*ContactPoint
	gender               *Code
	birthDate            *Date
	deceased             PatientDeceased
	address              []*Address
	maritalStatus        *CodeableConcept
	multipleBirth        PatientMultipleBirth
	photo                []*Attachment
	contact              []*PatientContact
	communication        []*PatientCommunication
	generalPractitioner  []*Reference
	managingOrganization *Reference
	link                 []*PatientLink
}

func NewPatientBuilder() *PatientBuilder { return &PatientBuilder{} }

func (b *PatientBuilder) SetId(id string) *PatientBuilder {
	b.id = id
	return b
}

func (b *PatientBuilder) SetMeta(v *Meta) *PatientBuilder {
	b.meta = v
	return b
}

func (b *PatientBuilder) SetImplicitRules(v *Uri) *PatientBuilder {
	b.implicitRules = v
	return b
}

func (b *PatientBuilder) SetLanguage(v *Code) *PatientBuilder {
	b.language = v
	return b
}

func (b *PatientBuilder) SetText(v *Narrative) *PatientBuilder {
	b.text = v
	return b
}

func (b *PatientBuilder) AddContained(v ...model.Resource) *PatientBuilder {
	b.contained = append(b.contained, v...)
	return b
}

func (b *PatientBuilder) AddExtension(v ...*Extension) *PatientBuilder {
	b.extension = append(b.extension, v...)
	return b
}

func (b *PatientBuilder) AddModifierExtension(v ...*Extension) *PatientBuilder {
	b.modifierExtension = append(b.modifierExtension, v...)
	return b
}

func (b *PatientBuilder) AddIdentifier(v ...*Identifier) *PatientBuilder {
	b.identifier = append(b.identifier, v...)
	return b
}

func (b *PatientBuilder) SetActive(v *Boolean) *PatientBuilder {
	b.active = v
	return b
}

func (b *PatientBuilder) AddName(v ...*HumanName) *PatientBuilder {
	b.name = append(b.name, v...)
	return b
}

func (b *PatientBuilder) AddTelecom(v ...*ContactPoint) *PatientBuilder {
	b.telecom = append(b.telecom, v...)
	return b
}

func (b *PatientBuilder) SetGender(v *Code) *PatientBuilder {
	b.gender = v
	return b
}

func (b *PatientBuilder) SetBirthDate(v *Date) *PatientBuilder {
	b.birthDate = v
	return b
}

func (b *PatientBuilder) SetDeceased(v PatientDeceased) *PatientBuilder {
	b.deceased = v
	return b
}

func (b *PatientBuilder) AddAddress(v ...*Address) *PatientBuilder {
	b.address = append(b.address, v...)
	return b
}

func (b *PatientBuilder) SetMaritalStatus(v *CodeableConcept) *PatientBuilder {
	b.maritalStatus = v
	return b
}

func (b *PatientBuilder) SetMultipleBirth(v PatientMultipleBirth) *PatientBuilder {
	b.multipleBirth = v
	return b
}

func (b *PatientBuilder) AddPhoto(v ...*Attachment) *PatientBuilder {
	b.photo = append(b.photo, v...)
	return b
}

func (b *PatientBuilder) AddContact(v ...*PatientContact) *PatientBuilder {
	b.contact = append(b.contact, v...)
	return b
}

func (b *PatientBuilder) AddCommunication(v ...*PatientCommunication) *PatientBuilder {
	b.communication = append(b.communication, v...)
	return b
}

func (b *PatientBuilder) AddGeneralPractitioner(v ...*Reference) *PatientBuilder {
	b.generalPractitioner = append(b.generalPractitioner, v...)
	return b
}

func (b *PatientBuilder) SetManagingOrganization(v *Reference) *PatientBuilder {
	b.managingOrganization = v
	return b
}

func (b *PatientBuilder) AddLink(v ...*PatientLink) *PatientBuilder {
	b.link = append(b.link, v...)
	return b
}

func (b *PatientBuilder) SetField(name string, value any) error {
	switch name {
	case "identifier":
		return validation.AppendTo(&b.identifier, name, value)
	case "active":
		return validation.Assign(&b.active, name, value)
	case "name":
		return validation.AppendTo(&b.name, name, value)
	case "telecom":
		return validation.AppendTo(&b.telecom, name, value)
	case "gender":
		return validation.Assign(&b.gender, name, value)
	case "birthDate":
		return validation.Assign(&b.birthDate, name, value)
	case "deceased":
		return validation.AssignChoice(&b.deceased, name, value, patientDeceasedTypes...)
	case "address":
		return validation.AppendTo(&b.address, name, value)
	case "maritalStatus":
		return validation.Assign(&b.maritalStatus, name, value)
	case "multipleBirth":
		return validation.AssignChoice(&b.multipleBirth, name, value, patientMultipleBirthTypes...)
	case "photo":
		return validation.AppendTo(&b.photo, name, value)
	case "contact":
		return validation.AppendTo(&b.contact, name, value)
	case "communication":
		return validation.AppendTo(&b.communication, name, value)
	case "generalPractitioner":
		return validation.AppendTo(&b.generalPractitioner, name, value)
	case "managingOrganization":
		return validation.Assign(&b.managingOrganization, name, value)
	case "link":
		return validation.AppendTo(&b.link, name, value)
	}
	return b.setDomainResourceField("Patient", name, value)
}

func (b *PatientBuilder) BuildElement() (model.Element, error) {
	r, err := b.Build()
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Build validates the builder state and returns the Patient.
func (b *PatientBuilder) Build() (*Patient, error) {
	var c checker
	r := &Patient{
		domainResourceBase:   b.domainResourceBuilder.build(&c),
		identifier:           checkList(&c, b.identifier, "identifier"),
		active:               b.active,
		name:                 checkList(&c, b.name, "name"),
		telecom:              checkList(&c, b.telecom, "telecom"),
		gender:               b.gender,
		birthDate:            b.birthDate,
		deceased:             b.deceased,
		address:              checkList(&c, b.address, "address"),
		maritalStatus:        b.maritalStatus,
		multipleBirth:        b.multipleBirth,
		photo:                checkList(&c, b.photo, "photo"),
		contact:              checkList(&c, b.contact, "contact"),
		communication:        checkList(&c, b.communication, "communication"),
		generalPractitioner:  checkList(&c, b.generalPractitioner, "generalPractitioner"),
		managingOrganization: b.managingOrganization,
		link:                 checkList(&c, b.link, "link"),
	}
	c.check(validation.ChoiceElement(r.deceased, "deceased", patientDeceasedTypes...))
	c.check(validation.ChoiceElement(r.multipleBirth, "multipleBirth", patientMultipleBirthTypes...))
	c.check(validation.CheckReferenceTypes(r.generalPractitioner, "generalPractitioner", "Organization", "Practitioner", "PractitionerRole"))
	c.check(validation.CheckReferenceType(r.managingOrganization, "managingOrganization", "Organization"))
	administrativeGenderBinding.check(&c, r.gender, "gender")
	if c.err != nil {
		return nil, c.result("Patient")
	}
	return r, nil
}

// PatientContact is a contact party (e.g. guardian, partner, friend) for the patient.
type PatientContact struct {
	backboneElementBase
	relationship []*CodeableConcept
	name         *HumanName
	telecom      []*ContactPoint
	address      *Address
	gender       *Code
	organization *Reference
	period       *Period

	hash model.HashCache
}

var patientContactDescriptor = model.NewDescriptor("Patient.Contact", model.BackboneKind, append(backboneElementFields(),
	model.ListField("relationship", "CodeableConcept", func(e *PatientContact) []*CodeableConcept { return e.relationship }),
	model.ElementField("name", "HumanName", func(e *PatientContact) *HumanName { return e.name }),
	model.ListField("telecom", "ContactPoint", func(e *PatientContact) []*ContactPoint { return e.telecom }),
	model.ElementField("address", "Address", func(e *PatientContact) *Address { return e.address }),
	model.ElementField("gender", "code", func(e *PatientContact) *Code { return e.gender }),
	model.ElementField("organization", "Reference", func(e *PatientContact) *Reference { return e.organization }).WithTargets("Organization"),
	model.ElementField("period", "Period", func(e *PatientContact) *Period { return e.period }),
)...)

func (e *PatientContact) TypeName() string { return "Patient.Contact" }
func (e *PatientContact) Descriptor() *model.Descriptor { return patientContactDescriptor }
func (e *PatientContact) HasChildren() bool { return model.HasChildren(e) }
func (e *PatientContact) Hash() uint64 { return e.hash.Get(func() uint64 { return model.ComputeHash(e) }) }
func (e *PatientContact) Equal(o *PatientContact) bool { return model.Equal(e, o) }
func (e *PatientContact) String() string { return stringify(e) }

func (e *PatientContact) Relationship() []*CodeableConcept { return slices.Clone(e.relationship) }
func (e *PatientContact) Name() *HumanName { return e.name }
func (e *PatientContact) Telecom() []*ContactPoint { return slices.Clone(e.telecom) }
func (e *PatientContact) Address() *Address { return e.address }
func (e *PatientContact) Gender() *Code { return e.gender }
func (e *PatientContact) Organization() *Reference { return e.organization }
func (e *PatientContact) Period() *Period { return e.period }

// ToBuilder returns a builder initialized with the fields of e.
func (e *PatientContact) ToBuilder() *PatientContactBuilder {
	return &PatientContactBuilder{
		backboneElementBuilder: e.backboneElementBase.toBuilder(),
		relationship:           slices.Clip(e.relationship),
		name:                   e.name,
		telecom:                slices.Clip(e.telecom),
		address:                e.address,
		gender:                 e.gender,
		organization:           e.organization,
		period:                 e.period,
	}
}

// PatientContactBuilder builds a PatientContact.
type PatientContactBuilder struct {
	backboneElementBuilder
	relationship []*CodeableConcept
	name         *HumanName
	telecom      []*ContactPoint
	address      *Address
	gender       *Code
	organization *Reference
	period       *Period
}

func NewPatientContactBuilder() *PatientContactBuilder { return &PatientContactBuilder{} }

func (b *PatientContactBuilder) SetId(id string) *PatientContactBuilder {
	b.id = id
	return b
}

func (b *PatientContactBuilder) AddExtension(v ...*Extension) *PatientContactBuilder {
	b.extension = append(b.extension, v...)
	return b
}

func (b *PatientContactBuilder) AddModifierExtension(v ...*Extension) *PatientContactBuilder {
	b.modifierExtension = append(b.modifierExtension, v...)
	return b
}

func (b *PatientContactBuilder) AddRelationship(v ...*CodeableConcept) *PatientContactBuilder {
	b.relationship = append(b.relationship, v...)
	return b
}

func (b *PatientContactBuilder) SetName(v *HumanName) *PatientContactBuilder {
	b.name = v
	return b
}

func (b *PatientContactBuilder) AddTelecom(v ...*ContactPoint) *PatientContactBuilder {
	b.telecom = append(b.telecom, v...)
	return b
}

func (b *PatientContactBuilder) SetAddress(v *Address) *PatientContactBuilder {
	b.address = v
	return b
}

func (b *PatientContactBuilder) SetGender(v *Code) *PatientContactBuilder {
	b.gender = v
	return b
}

func (b *PatientContactBuilder) SetOrganization(v *Reference) *PatientContactBuilder {
	b.organization = v
	return b
}

func (b *PatientContactBuilder) SetPeriod(v *Period) *PatientContactBuilder {
	b.period = v
	return b
}

func (b *PatientContactBuilder) SetField(name string, value any) error {
	switch name {
	case "relationship":
		return validation.AppendTo(&b.relationship, name, value)
	case "name":
		return validation.Assign(&b.name, name, value)
	case "telecom":
		return validation.AppendTo(&b.telecom, name, value)
	case "address":
		return validation.Assign(&b.address, name, value)
	case "gender":
		return validation.Assign(&b.gender, name, value)
	case "organization":
		return validation.Assign(&b.organization, name, value)
	case "period":
		return validation.Assign(&b.period, name, value)
	}
	return b.setBackboneField("Patient.Contact", name, value)
}

func (b *PatientContactBuilder) BuildElement() (model.Element, error) {
	e, err := b.Build()
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Build validates the builder state and returns the PatientContact.
func (b *PatientContactBuilder) Build() (*PatientContact, error) {
	var c checker
	e := &PatientContact{
		backboneElementBase: b.backboneElementBuilder.build(&c),
		relationship:        checkList(&c, b.relationship, "relationship"),
		name:                b.name,
		telecom:             checkList(&c, b.telecom, "telecom"),
		address:             b.address,
		gender:              b.gender,
		organization:        b.organization,
		period:              b.period,
	}
	c.check(validation.CheckReferenceType(e.organization, "organization", "Organization"))
	administrativeGenderBinding.check(&c, e.gender, "gender")
	c.check(validation.RequireChildren(e))
	if c.err != nil {
		return nil, c.result("Patient.Contact")
	}
	return e, nil
}

// PatientCommunication is a language which may be used to communicate with the patient about their health.
type PatientCommunication struct {
	backboneElementBase
	language  *CodeableConcept
	preferred *Boolean

	hash model.HashCache
}

var patientCommunicationDescriptor = model.NewDescriptor("Patient.Communication", model.BackboneKind, append(backboneElementFields(),
	model.ElementField("language", "CodeableConcept", func(e *PatientCommunication) *CodeableConcept { return e.language }).Require(),
	model.ElementField("preferred", "boolean", func(e *PatientCommunication) *Boolean { return e.preferred }),
)...)

func (e *PatientCommunication) TypeName() string { return "Patient.Communication" }
func (e *PatientCommunication) Descriptor() *model.Descriptor { return patientCommunicationDescriptor }
func (e *PatientCommunication) HasChildren() bool { return model.HasChildren(e) }
func (e *PatientCommunication) Hash() uint64 { return e.hash.Get(func() uint64 { return model.ComputeHash(e) }) }
func (e *PatientCommunication) Equal(o *PatientCommunication) bool { return model.Equal(e, o) }
func (e *PatientCommunication) String() string { return stringify(e) }

func (e *PatientCommunication) Language() *CodeableConcept { return e.language }
func (e *PatientCommunication) Preferred() *Boolean { return e.preferred }

// ToBuilder returns a builder initialized with the fields of e.
func (e *PatientCommunication) ToBuilder() *PatientCommunicationBuilder {
	return &PatientCommunicationBuilder{
		backboneElementBuilder: e.backboneElementBase.toBuilder(),
		language:               e.language,
		preferred:              e.preferred,
	}
}

// PatientCommunicationBuilder builds a PatientCommunication.
type PatientCommunicationBuilder struct {
	backboneElementBuilder
	language  *CodeableConcept
	preferred *Boolean
}

func NewPatientCommunicationBuilder() *PatientCommunicationBuilder { return &PatientCommunicationBuilder{} }

func (b *PatientCommunicationBuilder) SetId(id string) *PatientCommunicationBuilder {
	b.id = id
	return b
}

func (b *PatientCommunicationBuilder) AddExtension(v ...*Extension) *PatientCommunicationBuilder {
	b.extension = append(b.extension, v...)
	return b
}

func (b *PatientCommunicationBuilder) AddModifierExtension(v ...*Extension) *PatientCommunicationBuilder {
	b.modifierExtension = append(b.modifierExtension, v...)
	return b
}

func (b *PatientCommunicationBuilder) SetLanguage(v *CodeableConcept) *PatientCommunicationBuilder {
	b.language = v
	return b
}

func (b *PatientCommunicationBuilder) SetPreferred(v *Boolean) *PatientCommunicationBuilder {
	b.preferred = v
	return b
}

func (b *PatientCommunicationBuilder) SetField(name string, value any) error {
	switch name {
	case "language":
		return validation.Assign(&b.language, name, value)
	case "preferred":
		return validation.Assign(&b.preferred, name, value)
	}
	return b.setBackboneField("Patient.Communication", name, value)
}

func (b *PatientCommunicationBuilder) BuildElement() (model.Element, error) {
	e, err := b.Build()
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Build validates the builder state and returns the PatientCommunication.
func (b *PatientCommunicationBuilder) Build() (*PatientCommunication, error) {
	var c checker
	e := &PatientCommunication{
		backboneElementBase: b.backboneElementBuilder.build(&c),
		language:            b.language,
		preferred:           b.preferred,
	}
	c.check(validation.RequireNonNull(e.language, "language"))
	c.check(validation.RequireChildren(e))
	if c.err != nil {
		return nil, c.result("Patient.Communication")
	}
	return e, nil
}

// PatientLink links to another patient resource that concerns the same actual patient.
type PatientLink struct {
	backboneElementBase
	other *Reference
	typ   *Code

	hash model.HashCache
}

var patientLinkDescriptor = model.NewDescriptor("Patient.Link", model.BackboneKind, append(backboneElementFields(),
	model.ElementField("other", "Reference", func(e *PatientLink) *Reference { return e.other }).Require().WithTargets("Patient", "RelatedPerson"),
	model.ElementField("type", "code", func(e *PatientLink) *Code { return e.typ }).Require(),
)...)

func (e *PatientLink) TypeName() string { return "Patient.Link" }
func (e *PatientLink) Descriptor() *model.Descriptor { return patientLinkDescriptor }
func (e *PatientLink) HasChildren() bool { return model.HasChildren(e) }
func (e *PatientLink) Hash() uint64 { return e.hash.Get(func() uint64 { return model.ComputeHash(e) }) }
func (e *PatientLink) Equal(o *PatientLink) bool { return model.Equal(e, o) }
func (e *PatientLink) String() string { return stringify(e) }

func (e *PatientLink) Other() *Reference { return e.other }
func (e *PatientLink) Type() *Code { return e.typ }

// ToBuilder returns a builder initialized with the fields of e.
func (e *PatientLink) ToBuilder() *PatientLinkBuilder {
	return &PatientLinkBuilder{
		backboneElementBuilder: e.backboneElementBase.toBuilder(),
		other:                  e.other,
		typ:                    e.typ,
	}
}

// PatientLinkBuilder builds a PatientLink.
type PatientLinkBuilder struct {
	backboneElementBuilder
	other *Reference
	typ   *Code
}

func NewPatientLinkBuilder() *PatientLinkBuilder { return &PatientLinkBuilder{} }

func (b *PatientLinkBuilder) SetId(id string) *PatientLinkBuilder {
	b.id = id
	return b
}

func (b *PatientLinkBuilder) AddExtension(v ...*Extension) *PatientLinkBuilder {
	b.extension = append(b.extension, v...)
	return b
}

func (b *PatientLinkBuilder) AddModifierExtension(v ...*Extension) *PatientLinkBuilder {
	b.modifierExtension = append(b.modifierExtension, v...)
	return b
}

func (b *PatientLinkBuilder) SetOther(v *Reference) *PatientLinkBuilder {
	b.other = v
	return b
}

func (b *PatientLinkBuilder) SetType(v *Code) *PatientLinkBuilder {
	b.typ = v
	return b
}

func (b *PatientLinkBuilder) SetField(name string, value any) error {
	switch name {
	case "other":
		return validation.Assign(&b.other, name, value)
	case "type":
		return validation.Assign(&b.typ, name, value)
	}
	return b.setBackboneField("Patient.Link", name, value)
}

func (b *PatientLinkBuilder) BuildElement() (model.Element, error) {
	e, err := b.Build()
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Build validates the builder state and returns the PatientLink.
func (b *PatientLinkBuilder) Build() (*PatientLink, error) {
	var c checker
	e := &PatientLink{
		backboneElementBase: b.backboneElementBuilder.build(&c),
		other:               b.other,
		typ:                 b.typ,
	}
	c.check(validation.RequireNonNull(e.other, "other"))
	c.check(validation.RequireNonNull(e.typ, "type"))
	c.check(validation.CheckReferenceType(e.other, "other", "Patient", "RelatedPerson"))
	linkTypeBinding.check(&c, e.typ, "type")
	c.check(validation.RequireChildren(e))
	if c.err != nil {
		return nil, c.result("Patient.Link")
	}
	return e, nil
}
