package r4

import (
	"maps"
	"slices"

	"github.com/damedic/fhir-model-go/model"
)

type typeEntry struct {
	descriptor *model.Descriptor
	builder    func() model.Builder
}

var types = map[string]typeEntry{
	"boolean":                           {booleanDescriptor, func() model.Builder { return NewBooleanBuilder() }},
	"integer":                           {integerDescriptor, func() model.Builder { return NewIntegerBuilder() }},
	"positiveInt":                       {positiveIntDescriptor, func() model.Builder { return NewPositiveIntBuilder() }},
	"unsignedInt":                       {unsignedIntDescriptor, func() model.Builder { return NewUnsignedIntBuilder() }},
	"decimal":                           {decimalDescriptor, func() model.Builder { return NewDecimalBuilder() }},
	"string":                            {stringDescriptor, func() model.Builder { return NewStringBuilder() }},
	"code":                              {codeDescriptor, func() model.Builder { return NewCodeBuilder() }},
	"id":                                {idDescriptor, func() model.Builder { return NewIdBuilder() }},
	"uri":                               {uriDescriptor, func() model.Builder { return NewUriBuilder() }},
	"url":                               {urlDescriptor, func() model.Builder { return NewUrlBuilder() }},
	"canonical":                         {canonicalDescriptor, func() model.Builder { return NewCanonicalBuilder() }},
	"markdown":                          {markdownDescriptor, func() model.Builder { return NewMarkdownBuilder() }},
	"date":                              {dateDescriptor, func() model.Builder { return NewDateBuilder() }},
	"dateTime":                          {dateTimeDescriptor, func() model.Builder { return NewDateTimeBuilder() }},
	"instant":                           {instantDescriptor, func() model.Builder { return NewInstantBuilder() }},
	"time":                              {timeDescriptor, func() model.Builder { return NewTimeBuilder() }},
	"base64Binary":                      {base64BinaryDescriptor, func() model.Builder { return NewBase64BinaryBuilder() }},
	"uuid":                              {uuidDescriptor, func() model.Builder { return NewUuidBuilder() }},
	"oid":                               {oidDescriptor, func() model.Builder { return NewOidBuilder() }},
	"xhtml":                             {xhtmlDescriptor, func() model.Builder { return NewXhtmlBuilder() }},
	"Extension":                         {extensionDescriptor, func() model.Builder { return NewExtensionBuilder() }},
	"Coding":                            {codingDescriptor, func() model.Builder { return NewCodingBuilder() }},
	"CodeableConcept":                   {codeableConceptDescriptor, func() model.Builder { return NewCodeableConceptBuilder() }},
	"Identifier":                        {identifierDescriptor, func() model.Builder { return NewIdentifierBuilder() }},
	"Reference":                         {referenceDescriptor, func() model.Builder { return NewReferenceBuilder() }},
	"Period":                            {periodDescriptor, func() model.Builder { return NewPeriodBuilder() }},
	"Quantity":                          {quantityDescriptor, func() model.Builder { return NewQuantityBuilder() }},
	"Range":                             {rangeDescriptor, func() model.Builder { return NewRangeBuilder() }},
	"Ratio":                             {ratioDescriptor, func() model.Builder { return NewRatioBuilder() }},
	"Attachment":                        {attachmentDescriptor, func() model.Builder { return NewAttachmentBuilder() }},
	"Annotation":                        {annotationDescriptor, func() model.Builder { return NewAnnotationBuilder() }},
	"HumanName":                         {humanNameDescriptor, func() model.Builder { return NewHumanNameBuilder() }},
	"ContactPoint":                      {contactPointDescriptor, func() model.Builder { return NewContactPointBuilder() }},
	"Address":                           {addressDescriptor, func() model.Builder { return NewAddressBuilder() }},
	"Meta":                              {metaDescriptor, func() model.Builder { return NewMetaBuilder() }},
	"Narrative":                         {narrativeDescriptor, func() model.Builder { return NewNarrativeBuilder() }},
	"Timing":                            {timingDescriptor, func() model.Builder { return NewTimingBuilder() }},
	"Timing.Repeat":                     {timingRepeatDescriptor, func() model.Builder { return NewTimingRepeatBuilder() }},
	"ServiceRequest":                    {serviceRequestDescriptor, func() model.Builder { return NewServiceRequestBuilder() }},
	"QuestionnaireResponse":             {questionnaireResponseDescriptor, func() model.Builder { return NewQuestionnaireResponseBuilder() }},
	"QuestionnaireResponse.Item":        {questionnaireResponseItemDescriptor, func() model.Builder { return NewQuestionnaireResponseItemBuilder() }},
	"QuestionnaireResponse.Item.Answer": {questionnaireResponseItemAnswerDescriptor, func() model.Builder { return NewQuestionnaireResponseItemAnswerBuilder() }},
	"Patient":                           {patientDescriptor, func() model.Builder { return NewPatientBuilder() }},
	"Patient.Contact":                   {patientContactDescriptor, func() model.Builder { return NewPatientContactBuilder() }},
	"Patient.Communication":             {patientCommunicationDescriptor, func() model.Builder { return NewPatientCommunicationBuilder() }},
	"Patient.Link":                      {patientLinkDescriptor, func() model.Builder { return NewPatientLinkBuilder() }},
	"OperationOutcome":                  {operationOutcomeDescriptor, func() model.Builder { return NewOperationOutcomeBuilder() }},
	"OperationOutcome.Issue":            {operationOutcomeIssueDescriptor, func() model.Builder { return NewOperationOutcomeIssueBuilder() }},
}

type registry struct{}

// Registry resolves the FHIR type names of this package, including backbone
// element names such as "QuestionnaireResponse.Item".
var Registry model.Registry = registry{}

func (registry) Descriptor(typeName string) (*model.Descriptor, bool) {
	t, ok := types[typeName]
	return t.descriptor, ok
}

func (registry) NewBuilder(typeName string) (model.Builder, bool) {
	t, ok := types[typeName]
	if !ok {
		return nil, false
	}
	return t.builder(), true
}

// TypeNames returns the sorted names of all types of this package.
func TypeNames() []string {
	return slices.Sorted(maps.Keys(types))
}

// ResourceTypes returns the sorted names of all resource types of this package.
func ResourceTypes() []string {
	var names []string
	for _, n := range TypeNames() {
		if types[n].descriptor.Kind == model.ResourceKind {
			names = append(names, n)
		}
	}
	return names
}
