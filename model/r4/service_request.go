package r4

import (
	"slices"

	"github.com/damedic/fhir-model-go/model"
	"github.com/damedic/fhir-model-go/model/validation"
)

// ServiceRequest is a record of a request for service such as diagnostic investigations, treatments, or operations to be performed.
type ServiceRequest struct {
	domainResourceBase
	identifier            []*Identifier
	instantiatesCanonical []*Canonical
	instantiatesUri       []*Uri
	basedOn               []*Reference
	replaces              []*Reference
	requisition           *Identifier
	status                *Code
	intent                *Code
	category              []*CodeableConcept
	priority              *Code
	doNotPerform          *Boolean
	code                  *CodeableConcept
	orderDetail           []*CodeableConcept
	quantity              ServiceRequestQuantity
	subject               *Reference
	encounter             *Reference
	occurrence            ServiceRequestOccurrence
	asNeeded              ServiceRequestAsNeeded
	authoredOn            *DateTime
	requester             *Reference
	performerType         *CodeableConcept
	performer             []*Reference
	locationCode          []*CodeableConcept
	locationReference     []*Reference
	reasonCode            []*CodeableConcept
	reasonReference       []*Reference
	insurance             []*Reference
	supportingInfo        []*Reference
	specimen              []*Reference
	bodySite              []*CodeableConcept
	note                  []*Annotation
	patientInstruction    *String
	relevantHistory       []*Reference

	hash model.HashCache
}

// ServiceRequestQuantity is the closed set of types ServiceRequest.quantity[x] can hold:
// Quantity, Ratio or Range.
type ServiceRequestQuantity interface {
	model.Element
	isServiceRequestQuantity()
}

var serviceRequestQuantityTypes = []string{"Quantity", "Ratio", "Range"}

func (*Quantity) isServiceRequestQuantity() {}
func (*Ratio) isServiceRequestQuantity() {}
func (*Range) isServiceRequestQuantity() {}

// ServiceRequestOccurrence is the closed set of types ServiceRequest.occurrence[x] can hold:
// DateTime, Period or Timing.
type ServiceRequestOccurrence interface {
	model.Element
	isServiceRequestOccurrence()
}

var serviceRequestOccurrenceTypes = []string{"dateTime", "Period", "Timing"}

func (*DateTime) isServiceRequestOccurrence() {}
func (*Period) isServiceRequestOccurrence() {}
func (*Timing) isServiceRequestOccurrence() {}

// ServiceRequestAsNeeded is the closed set of types ServiceRequest.asNeeded[x] can hold:
// Boolean or CodeableConcept.
type ServiceRequestAsNeeded interface {
	model.Element
	isServiceRequestAsNeeded()
}

var serviceRequestAsNeededTypes = []string{"boolean", "CodeableConcept"}

func (*Boolean) isServiceRequestAsNeeded() {}
func (*CodeableConcept) isServiceRequestAsNeeded() {}

var serviceRequestDescriptor = model.NewDescriptor("ServiceRequest", model.ResourceKind, append(domainResourceFields(),
	model.ListField("identifier", "Identifier", func(r *ServiceRequest) []*Identifier { return r.identifier }),
	model.ListField("instantiatesCanonical", "canonical", func(r *ServiceRequest) []*Canonical { return r.instantiatesCanonical }),
	model.ListField("instantiatesUri", "uri", func(r *ServiceRequest) []*Uri { return r.instantiatesUri }),
	model.ListField("basedOn", "Reference", func(r *ServiceRequest) []*Reference { return r.basedOn }).WithTargets("CarePlan", "ServiceRequest", "MedicationRequest"),
	model.ListField("replaces", "Reference", func(r *ServiceRequest) []*Reference { return r.replaces }).WithTargets("ServiceRequest"),
	model.ElementField("requisition", "Identifier", func(r *ServiceRequest) *Identifier { return r.requisition }),
	model.ElementField("status", "code", func(r *ServiceRequest) *Code { return r.status }).Require(),
	model.ElementField("intent", "code", func(r *ServiceRequest) *Code { return r.intent }).Require(),
	model.ListField("category", "CodeableConcept", func(r *ServiceRequest) []*CodeableConcept { return r.category }),
	model.ElementField("priority", "code", func(r *ServiceRequest) *Code { return r.priority }),
	model.ElementField("doNotPerform", "boolean", func(r *ServiceRequest) *Boolean { return r.doNotPerform }),
	model.ElementField("code", "CodeableConcept", func(r *ServiceRequest) *CodeableConcept { return r.code }),
	model.ListField("orderDetail", "CodeableConcept", func(r *ServiceRequest) []*CodeableConcept { return r.orderDetail }),
	model.ChoiceField("quantity", func(r *ServiceRequest) ServiceRequestQuantity { return r.quantity }, serviceRequestQuantityTypes...),
	model.ElementField("subject", "Reference", func(r *ServiceRequest) *Reference { return r.subject }).Require().WithTargets("Patient", "Group", "Location", "Device"),
	model.ElementField("encounter", "Reference", func(r *ServiceRequest) *Reference { return r.encounter }).WithTargets("Encounter"),
	model.ChoiceField("occurrence", func(r *ServiceRequest) ServiceRequestOccurrence { return r.occurrence }, serviceRequestOccurrenceTypes...),
	model.ChoiceField("asNeeded", func(r *ServiceRequest) ServiceRequestAsNeeded { return r.asNeeded }, serviceRequestAsNeededTypes...),
	model.ElementField("authoredOn", "dateTime", func(r *ServiceRequest) *DateTime { return r.authoredOn }),
	model.ElementField("requester", "Reference", func(r *ServiceRequest) *Reference { return r.requester }).WithTargets("Practitioner", "PractitionerRole", "Organization", "Patient", "RelatedPerson", "Device"),
	model.ElementField("performerType", "CodeableConcept", func(r *ServiceRequest) *CodeableConcept { return r.performerType }),
	model.ListField("performer", "Reference", func(r *ServiceRequest) []*Reference { return r.performer }).WithTargets("Practitioner", "PractitionerRole", "Organization", "CareTeam", "HealthcareService", "Patient", "Device", "RelatedPerson"),
	model.ListField("locationCode", "CodeableConcept", func(r *ServiceRequest) []*CodeableConcept { return r.locationCode }),
	model.ListField("locationReference", "Reference", func(r *ServiceRequest) []*Reference { return r.locationReference }).WithTargets("Location"),
	model.ListField("reasonCode", "CodeableConcept", func(r *ServiceRequest) []*CodeableConcept { return r.reasonCode }),
	model.ListField("reasonReference", "Reference", func(r *ServiceRequest) []*Reference { return r.reasonReference }).WithTargets("Condition", "Observation", "DiagnosticReport", "DocumentReference"),
	model.ListField("insurance", "Reference", func(r *ServiceRequest) []*Reference { return r.insurance }).WithTargets("Coverage", "ClaimResponse"),
	model.ListField("supportingInfo", "Reference", func(r *ServiceRequest) []*Reference { return r.supportingInfo }),
	model.ListField("specimen", "Reference", func(r *ServiceRequest) []*Reference { return r.specimen }).WithTargets("Specimen"),
	model.ListField("bodySite", "CodeableConcept", func(r *ServiceRequest) []*CodeableConcept { return r.bodySite }),
	model.ListField("note", "Annotation", func(r *ServiceRequest) []*Annotation { return r.note }),
	model.ElementField("patientInstruction", "string", func(r *ServiceRequest) *String { return r.patientInstruction }),
	model.ListField("relevantHistory", "Reference", func(r *ServiceRequest) []*Reference { return r.relevantHistory }).WithTargets("Provenance"),
)...).WithConstraints(domainResourceConstraints...).WithConstraints(
	model.Constraint{
		Key:        "prr-1",
		Severity:   "error",
		Human:      "orderDetail SHALL only be present if code is present",
		Expression: "orderDetail.empty() or code.exists()",
	},
)

func (r *ServiceRequest) TypeName() string { return "ServiceRequest" }
func (r *ServiceRequest) ResourceType() string { return "ServiceRequest" }
func (r *ServiceRequest) Descriptor() *model.Descriptor { return serviceRequestDescriptor }
func (r *ServiceRequest) HasChildren() bool { return model.HasChildren(r) }
func (r *ServiceRequest) Hash() uint64 { return r.hash.Get(func() uint64 { return model.ComputeHash(r) }) }
func (r *ServiceRequest) Equal(o *ServiceRequest) bool { return model.Equal(r, o) }
func (r *ServiceRequest) String() string { return stringify(r) }

func (r *ServiceRequest) Identifier() []*Identifier { return slices.Clone(r.identifier) }
func (r *ServiceRequest) InstantiatesCanonical() []*Canonical { return slices.Clone(r.instantiatesCanonical) }
func (r *ServiceRequest) InstantiatesUri() []*Uri { return slices.Clone(r.instantiatesUri) }
func (r *ServiceRequest) BasedOn() []*Reference { return slices.Clone(r.basedOn) }
func (r *ServiceRequest) Replaces() []*Reference { return slices.Clone(r.replaces) }
func (r *ServiceRequest) Requisition() *Identifier { return r.requisition }
func (r *ServiceRequest) Status() *Code { return r.status }
func (r *ServiceRequest) Intent() *Code { return r.intent }
func (r *ServiceRequest) Category() []*CodeableConcept { return slices.Clone(r.category) }
func (r *ServiceRequest) Priority() *Code { return r.priority }
func (r *ServiceRequest) DoNotPerform() *Boolean { return r.doNotPerform }
func (r *ServiceRequest) Code() *CodeableConcept { return r.code }
func (r *ServiceRequest) OrderDetail() []*CodeableConcept { return slices.Clone(r.orderDetail) }
func (r *ServiceRequest) Quantity() ServiceRequestQuantity { return r.quantity }
func (r *ServiceRequest) Subject() *Reference { return r.subject }
func (r *ServiceRequest) Encounter() *Reference { return r.encounter }
func (r *ServiceRequest) Occurrence() ServiceRequestOccurrence { return r.occurrence }
func (r *ServiceRequest) AsNeeded() ServiceRequestAsNeeded { return r.asNeeded }
func (r *ServiceRequest) AuthoredOn() *DateTime { return r.authoredOn }
func (r *ServiceRequest) Requester() *Reference { return r.requester }
func (r *ServiceRequest) PerformerType() *CodeableConcept { return r.performerType }
func (r *ServiceRequest) Performer() []*Reference { return slices.Clone(r.performer) }
func (r *ServiceRequest) LocationCode() []*CodeableConcept { return slices.Clone(r.locationCode) }
func (r *ServiceRequest) LocationReference() []*Reference { return slices.Clone(r.locationReference) }
func (r *ServiceRequest) ReasonCode() []*CodeableConcept { return slices.Clone(r.reasonCode) }
func (r *ServiceRequest) ReasonReference() []*Reference { return slices.Clone(r.reasonReference) }
func (r *ServiceRequest) Insurance() []*Reference { return slices.Clone(r.insurance) }
func (r *ServiceRequest) SupportingInfo() []*Reference { return slices.Clone(r.supportingInfo) }
func (r *ServiceRequest) Specimen() []*Reference { return slices.Clone(r.specimen) }
func (r *ServiceRequest) BodySite() []*CodeableConcept { return slices.Clone(r.bodySite) }
func (r *ServiceRequest) Note() []*Annotation { return slices.Clone(r.note) }
func (r *ServiceRequest) PatientInstruction() *String { return r.patientInstruction }
func (r *ServiceRequest) RelevantHistory() []*Reference { return slices.Clone(r.relevantHistory) }

// ToBuilder returns a builder initialized with the fields of r.
func (r *ServiceRequest) ToBuilder() *ServiceRequestBuilder {
	return &ServiceRequestBuilder{
		domainResourceBuilder: r.domainResourceBase.toBuilder(),
		identifier:            slices.Clip(r.identifier),
		instantiatesCanonical: slices.Clip(r.instantiatesCanonical),
		instantiatesUri:       slices.Clip(r.instantiatesUri),
		basedOn:               slices.Clip(r.basedOn),
		replaces:              slices.Clip(r.replaces),
		requisition:           r.requisition,
		status:                r.status,
		intent:                r.intent,
		category:              slices.Clip(r.category),
		priority:              r.priority,
		doNotPerform:          r.doNotPerform,
		code:                  r.code,
		orderDetail:           slices.Clip(r.orderDetail),
		quantity:              r.quantity,
		subject:               r.subject,
		encounter:             r.encounter,
		occurrence:            r.occurrence,
		asNeeded:              r.asNeeded,
		authoredOn:            r.authoredOn,
		requester:             r.requester,
		performerType:         r.performerType,
		performer:             slices.Clip(r.performer),
		locationCode:          slices.Clip(r.locationCode),
		locationReference:     slices.Clip(r.locationReference),
		reasonCode:            slices.Clip(r.reasonCode),
		reasonReference:       slices.Clip(r.reasonReference),
		insurance:             slices.Clip(r.insurance),
		supportingInfo:        slices.Clip(r.supportingInfo),
		specimen:              slices.Clip(r.specimen),
		bodySite:              slices.Clip(r.bodySite),
		note:                  slices.Clip(r.note),
		patientInstruction:    r.patientInstruction,
		relevantHistory:       slices.Clip(r.relevantHistory),
	}
}

// ServiceRequestBuilder builds a ServiceRequest.
type ServiceRequestBuilder struct {
	domainResourceBuilder
	identifier            []*Identifier
	instantiatesCanonical []*Canonical
	instantiatesUri       []*Uri
	basedOn               []*Reference
	replaces              []*Reference
	requisition           *Identifier
	status                *Code
	intent                *Code
	category              []*CodeableConcept
	priority              *Code
	doNotPerform          *Boolean
	code                  *CodeableConcept
	orderDetail           []*CodeableConcept
	quantity              ServiceRequestQuantity
	subject               *Reference
	encounter             *Reference
	occurrence            ServiceRequestOccurrence
	asNeeded              ServiceRequestAsNeeded
	authoredOn            *DateTime
	requester             *Reference
	performerType         *CodeableConcept
	performer             []*Reference
	locationCode          []*CodeableConcept
	locationReference     []*Reference
	reasonCode            []*CodeableConcept
	reasonReference       []*Reference
	insurance             []*Reference
	supportingInfo        []*Reference
	specimen              []*Reference
	bodySite              []*CodeableConcept
	note                  []*Annotation
	patientInstruction    *String
	relevantHistory       []*Reference
}

func NewServiceRequestBuilder() *ServiceRequestBuilder { return &ServiceRequestBuilder{} }

func (b *ServiceRequestBuilder) SetId(id string) *ServiceRequestBuilder {
	b.id = id
	return b
}

func (b *ServiceRequestBuilder) SetMeta(v *Meta) *ServiceRequestBuilder {
	b.meta = v
	return b
}

func (b *ServiceRequestBuilder) SetImplicitRules(v *Uri) *ServiceRequestBuilder {
	b.implicitRules = v
	return b
}

func (b *ServiceRequestBuilder) SetLanguage(v *Code) *ServiceRequestBuilder {
	b.language = v
	return b
}

func (b *ServiceRequestBuilder) SetText(v *Narrative) *ServiceRequestBuilder {
	b.text = v
	return b
}

func (b *ServiceRequestBuilder) AddContained(v ...model.Resource) *ServiceRequestBuilder {
	b.contained = append(b.contained, v...)
	return b
}

func (b *ServiceRequestBuilder) AddExtension(v ...*Extension) *ServiceRequestBuilder {
	b.extension = append(b.extension, v...)
	return b
}

func (b *ServiceRequestBuilder) AddModifierExtension(v ...*Extension) *ServiceRequestBuilder {
	b.modifierExtension = append(b.modifierExtension, v...)
	return b
}

func (b *ServiceRequestBuilder) AddIdentifier(v ...*Identifier) *ServiceRequestBuilder {
	b.identifier = append(b.identifier, v...)
	return b
}

func (b *ServiceRequestBuilder) AddInstantiatesCanonical(v ...*Canonical) *ServiceRequestBuilder {
	b.instantiatesCanonical = append(b.instantiatesCanonical, v...)
	return b
}

func (b *ServiceRequestBuilder) AddInstantiatesUri(v ...*Uri) *ServiceRequestBuilder {
	b.instantiatesUri = append(b.instantiatesUri, v...)
	return b
}

func (b *ServiceRequestBuilder) AddBasedOn(v ...*Reference) *ServiceRequestBuilder {
	b.basedOn = append(b.basedOn, v...)
	return b
}

func (b *ServiceRequestBuilder) AddReplaces(v ...*Reference) *ServiceRequestBuilder {
	b.replaces = append(b.replaces, v...)
	return b
}

func (b *ServiceRequestBuilder) SetRequisition(v *Identifier) *ServiceRequestBuilder {
	b.requisition = v
	return b
}

func (b *ServiceRequestBuilder) SetStatus(v *Code) *ServiceRequestBuilder {
	b.status = v
	return b
}

func (b *ServiceRequestBuilder) SetIntent(v *Code) *ServiceRequestBuilder {
	b.intent = v
	return b
}

func (b *ServiceRequestBuilder) AddCategory(v ...*CodeableConcept) *ServiceRequestBuilder {
	b.category = append(b.category, v...)
	return b
}

func (b *ServiceRequestBuilder) SetPriority(v *Code) *ServiceRequestBuilder {
	b.priority = v
	return b
}

func (b *ServiceRequestBuilder) SetDoNotPerform(v *Boolean) *ServiceRequestBuilder {
	b.doNotPerform = v
	return b
}

func (b *ServiceRequestBuilder) SetCode(v *CodeableConcept) *ServiceRequestBuilder {
	b.code = v
	return b
}

func (b *ServiceRequestBuilder) AddOrderDetail(v ...*CodeableConcept) *ServiceRequestBuilder {
	b.orderDetail = append(b.orderDetail, v...)
	return b
}

func (b *ServiceRequestBuilder) SetQuantity(v ServiceRequestQuantity) *ServiceRequestBuilder {
	b.quantity = v
	return b
}

func (b *ServiceRequestBuilder) SetSubject(v *Reference) *ServiceRequestBuilder {
	b.subject = v
	return b
}

func (b *ServiceRequestBuilder) SetEncounter(v *Reference) *ServiceRequestBuilder {
	b.encounter = v
	return b
}

func (b *ServiceRequestBuilder) SetOccurrence(v ServiceRequestOccurrence) *ServiceRequestBuilder {
	b.occurrence = v
	return b
}

func (b *ServiceRequestBuilder) SetAsNeeded(v ServiceRequestAsNeeded) *ServiceRequestBuilder {
	b.asNeeded = v
	return b
}

func (b *ServiceRequestBuilder) SetAuthoredOn(v *DateTime) *ServiceRequestBuilder {
	b.authoredOn = v
	return b
}

func (b *ServiceRequestBuilder) SetRequester(v *Reference) *ServiceRequestBuilder {
	b.requester = v
	return b
}

func (b *ServiceRequestBuilder) SetPerformerType(v *CodeableConcept) *ServiceRequestBuilder {
	b.performerType = v
	return b
}

func (b *ServiceRequestBuilder) AddPerformer(v ...*Reference) *ServiceRequestBuilder {
	b.performer = append(b.performer, v...)
	return b
}

func (b *ServiceRequestBuilder) AddLocationCode(v ...*CodeableConcept) *ServiceRequestBuilder {
	b.locationCode = append(b.locationCode, v...)
	return b
}

func (b *ServiceRequestBuilder) AddLocationReference(v ...*Reference) *ServiceRequestBuilder {
	b.locationReference = append(b.locationReference, v...)
	return b
}

func (b *ServiceRequestBuilder) AddReasonCode(v ...*CodeableConcept) *ServiceRequestBuilder {
	b.reasonCode = append(b.reasonCode, v...)
	return b
}

func (b *ServiceRequestBuilder) AddReasonReference(v ...*Reference) *ServiceRequestBuilder {
	b.reasonReference = append(b.reasonReference, v...)
	return b
}

func (b *ServiceRequestBuilder) AddInsurance(v ...*Reference) *ServiceRequestBuilder {
	b.insurance = append(b.insurance, v...)
	return b
}

func (b *ServiceRequestBuilder) AddSupportingInfo(v ...*Reference) *ServiceRequestBuilder {
	b.supportingInfo = append(b.supportingInfo, v...)
	return b
}

func (b *ServiceRequestBuilder) AddSpecimen(v ...*Reference) *ServiceRequestBuilder {
	b.specimen = append(b.specimen, v...)
	return b
}

func (b *ServiceRequestBuilder) AddBodySite(v ...*CodeableConcept) *ServiceRequestBuilder {
	b.bodySite = append(b.bodySite, v...)
	return b
}

func (b *ServiceRequestBuilder) AddNote(v ...*Annotation) *ServiceRequestBuilder {
	b.note = append(b.note, v...)
	return b
}

func (b *ServiceRequestBuilder) SetPatientInstruction(v *String) *ServiceRequestBuilder {
	b.patientInstruction = v
	return b
}

func (b *ServiceRequestBuilder) AddRelevantHistory(v ...*Reference) *ServiceRequestBuilder {
	b.relevantHistory = append(b.relevantHistory, v...)
	return b
}

func (b *ServiceRequestBuilder) SetField(name string, value any) error {
	switch name {
	case "identifier":
		return validation.AppendTo(&b.identifier, name, value)
	case "instantiatesCanonical":
		return validation.AppendTo(&b.instantiatesCanonical, name, value)
	case "instantiatesUri":
		return validation.AppendTo(&b.instantiatesUri, name, value)
	case "basedOn":
		return validation.AppendTo(&b.basedOn, name, value)
	case "replaces":
		return validation.AppendTo(&b.replaces, name, value)
	case "requisition":
		return validation.Assign(&b.requisition, name, value)
	case "status":
		return validation.Assign(&b.status, name, value)
	case "intent":
		return validation.Assign(&b.intent, name, value)
	case "category":
		return validation.AppendTo(&b.category, name, value)
	case "priority":
		return validation.Assign(&b.priority, name, value)
	case "doNotPerform":
		return validation.Assign(&b.doNotPerform, name, value)
	case "code":
		return validation.Assign(&b.code, name, value)
	case "orderDetail":
		return validation.AppendTo(&b.orderDetail, name, value)
	case "quantity":
		return validation.AssignChoice(&b.quantity, name, value, serviceRequestQuantityTypes...)
	case "subject":
		return validation.Assign(&b.subject, name, value)
	case "encounter":
		return validation.Assign(&b.encounter, name, value)
	case "occurrence":
		return validation.AssignChoice(&b.occurrence, name, value, serviceRequestOccurrenceTypes...)
	case "asNeeded":
		return validation.AssignChoice(&b.asNeeded, name, value, serviceRequestAsNeededTypes...)
	case "authoredOn":
		return validation.Assign(&b.authoredOn, name, value)
	case "requester":
		return validation.Assign(&b.requester, name, value)
	case "performerType":
		return validation.Assign(&b.performerType, name, value)
	case "performer":
		return validation.AppendTo(&b.performer, name, value)
	case "locationCode":
		return validation.AppendTo(&b.locationCode, name, value)
	case "locationReference":
		return validation.AppendTo(&b.locationReference, name, value)
	case "reasonCode":
		return validation.AppendTo(&b.reasonCode, name, value)
	case "reasonReference":
		return validation.AppendTo(&b.reasonReference, name, value)
	case "insurance":
		return validation.AppendTo(&b.insurance, name, value)
	case "supportingInfo":
		return validation.AppendTo(&b.supportingInfo, name, value)
	case "specimen":
		return validation.AppendTo(&b.specimen, name, value)
	case "bodySite":
		return validation.AppendTo(&b.bodySite, name, value)
	case "note":
		return validation.AppendTo(&b.note, name, value)
	case "patientInstruction":
		return validation.Assign(&b.patientInstruction, name, value)
	case "relevantHistory":
		return validation.AppendTo(&b.relevantHistory, name, value)
	}
	return b.setDomainResourceField("ServiceRequest", name, value)
}

func (b *ServiceRequestBuilder) BuildElement() (model.Element, error) {
	r, err := b.Build()
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Build validates the builder state and returns the ServiceRequest.
func (b *ServiceRequestBuilder) Build() (*ServiceRequest, error) {
	var c checker
	r := &ServiceRequest{
		domainResourceBase:    b.domainResourceBuilder.build(&c),
		identifier:            checkList(&c, b.identifier, "identifier"),
		instantiatesCanonical: checkList(&c, b.instantiatesCanonical, "instantiatesCanonical"),
		instantiatesUri:       checkList(&c, b.instantiatesUri, "instantiatesUri"),
		basedOn:               checkList(&c, b.basedOn, "basedOn"),
		replaces:              checkList(&c, b.replaces, "replaces"),
		requisition:           b.requisition,
		status:                b.status,
		intent:                b.intent,
		category:              checkList(&c, b.category, "category"),
		priority:              b.priority,
		doNotPerform:          b.doNotPerform,
		code:                  b.code,
		orderDetail:           checkList(&c, b.orderDetail, "orderDetail"),
		quantity:              b.quantity,
		subject:               b.subject,
		encounter:             b.encounter,
		occurrence:            b.occurrence,
		asNeeded:              b.asNeeded,
		authoredOn:            b.authoredOn,
		requester:             b.requester,
		performerType:         b.performerType,
		performer:             checkList(&c, b.performer, "performer"),
		locationCode:          checkList(&c, b.locationCode, "locationCode"),
		locationReference:     checkList(&c, b.locationReference, "locationReference"),
		reasonCode:            checkList(&c, b.reasonCode, "reasonCode"),
		reasonReference:       checkList(&c, b.reasonReference, "reasonReference"),
		insurance:             checkList(&c, b.insurance, "insurance"),
		supportingInfo:        checkList(&c, b.supportingInfo, "supportingInfo"),
		specimen:              checkList(&c, b.specimen, "specimen"),
		bodySite:              checkList(&c, b.bodySite, "bodySite"),
		note:                  checkList(&c, b.note, "note"),
		patientInstruction:    b.patientInstruction,
		relevantHistory:       checkList(&c, b.relevantHistory, "relevantHistory"),
	}
	c.check(validation.RequireNonNull(r.status, "status"))
	c.check(validation.RequireNonNull(r.intent, "intent"))
	c.check(validation.RequireNonNull(r.subject, "subject"))
	c.check(validation.ChoiceElement(r.quantity, "quantity", serviceRequestQuantityTypes...))
	c.check(validation.ChoiceElement(r.occurrence, "occurrence", serviceRequestOccurrenceTypes...))
	c.check(validation.ChoiceElement(r.asNeeded, "asNeeded", serviceRequestAsNeededTypes...))
	c.check(validation.CheckReferenceTypes(r.basedOn, "basedOn", "CarePlan", "ServiceRequest", "MedicationRequest"))
	c.check(validation.CheckReferenceTypes(r.replaces, "replaces", "ServiceRequest"))
	c.check(validation.CheckReferenceType(r.subject, "subject", "Patient", "Group", "Location", "Device"))
	c.check(validation.CheckReferenceType(r.encounter, "encounter", "Encounter"))
	c.check(validation.CheckReferenceType(r.requester, "requester", "Practitioner", "PractitionerRole", "Organization", "Patient", "RelatedPerson", "Device"))
	c.check(validation.CheckReferenceTypes(r.performer, "performer", "Practitioner", "PractitionerRole", "Organization", "CareTeam", "HealthcareService", "Patient", "Device", "RelatedPerson"))
	c.check(validation.CheckReferenceTypes(r.locationReference, "locationReference", "Location"))
	c.check(validation.CheckReferenceTypes(r.reasonReference, "reasonReference", "Condition", "Observation", "DiagnosticReport", "DocumentReference"))
	c.check(validation.CheckReferenceTypes(r.insurance, "insurance", "Coverage", "ClaimResponse"))
	c.check(validation.CheckReferenceTypes(r.specimen, "specimen", "Specimen"))
	c.check(validation.CheckReferenceTypes(r.relevantHistory, "relevantHistory", "Provenance"))
	requestStatusBinding.check(&c, r.status, "status")
	requestIntentBinding.check(&c, r.intent, "intent")
	requestPriorityBinding.check(&c, r.priority, "priority")
	if c.err != nil {
		return nil, c.result("ServiceRequest")
	}
	return r, nil
}
