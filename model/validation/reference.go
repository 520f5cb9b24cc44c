package validation

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/damedic/fhir-model-go/model"
)

// Referencer is implemented by Reference.
type Referencer interface {
	model.Element
	// LiteralReference returns Reference.reference, empty if absent.
	LiteralReference() string
	// TargetTypeName returns Reference.type, empty if absent.
	TargetTypeName() string
}

const structureDefinitionPrefix = "http://hl7.org/fhir/StructureDefinition/"

var (
	relativeReference = regexp.MustCompile(`^([A-Z][A-Za-z]+)/[A-Za-z0-9\-.]{1,64}(/_history/[A-Za-z0-9\-.]{1,64})?$`)
	absoluteReference = regexp.MustCompile(`^https?://\S+/([A-Z][A-Za-z]+)/[A-Za-z0-9\-.]{1,64}(/_history/[A-Za-z0-9\-.]{1,64})?$`)
)

// ReferenceTargetType derives the resource type from a literal reference.
//
// Contained (#id), urn:uuid:/urn:oid: and unparseable references yield false.
func ReferenceTargetType(literal string) (string, bool) {
	if literal == "" || strings.HasPrefix(literal, "#") || strings.HasPrefix(literal, "urn:") {
		return "", false
	}
	if m := relativeReference.FindStringSubmatch(literal); m != nil {
		return m[1], IsResourceType(m[1])
	}
	if m := absoluteReference.FindStringSubmatch(literal); m != nil {
		return m[1], IsResourceType(m[1])
	}
	return "", false
}

// referenceType determines the target type of ref, or "" if it can't be determined.
func referenceType(ref Referencer, field string) (string, error) {
	declared := strings.TrimPrefix(ref.TargetTypeName(), structureDefinitionPrefix)
	if strings.ContainsAny(declared, ":/") {
		// a profile or logical model url, not a resource type
		declared = ""
	}
	literal, ok := ReferenceTargetType(ref.LiteralReference())

	switch {
	case declared != "" && ok && declared != literal:
		return "", &InvalidReferenceTypeError{
			Field:  field,
			Target: declared,
			Reason: fmt.Sprintf("type %s does not match reference %s", declared, ref.LiteralReference()),
		}
	case declared != "":
		return declared, nil
	case ok:
		return literal, nil
	}
	return "", nil
}

// CheckReferenceType fails if the target type of ref is known and not in allowed.
//
// The target type is taken from Reference.type, else from the literal
// reference. References whose type can't be determined (logical
// references, contained or urn references) pass. "Resource" in allowed
// admits any type.
func CheckReferenceType(ref Referencer, field string, allowed ...string) error {
	if model.IsNil(ref) {
		return nil
	}
	target, err := referenceType(ref, field)
	if err != nil || target == "" {
		return err
	}
	if len(allowed) == 0 || slices.Contains(allowed, "Resource") || slices.Contains(allowed, target) {
		return nil
	}
	return &InvalidReferenceTypeError{Field: field, Target: target, Allowed: allowed}
}

// CheckReferenceTypes is CheckReferenceType for repeated fields.
func CheckReferenceTypes[T Referencer](refs []T, field string, allowed ...string) error {
	for _, r := range refs {
		if err := CheckReferenceType(r, field, allowed...); err != nil {
			return err
		}
	}
	return nil
}

// IsResourceType reports whether name is a FHIR R4 resource type.
func IsResourceType(name string) bool {
	_, ok := resourceTypes[name]
	return ok
}

var resourceTypes = func() map[string]struct{} {
	names := []string{
		"Account", "ActivityDefinition", "AdverseEvent", "AllergyIntolerance", "Appointment",
		"AppointmentResponse", "AuditEvent", "Basic", "Binary", "BiologicallyDerivedProduct",
		"BodyStructure", "Bundle", "CapabilityStatement", "CarePlan", "CareTeam", "CatalogEntry",
		"ChargeItem", "ChargeItemDefinition", "Claim", "ClaimResponse", "ClinicalImpression",
		"CodeSystem", "Communication", "CommunicationRequest", "CompartmentDefinition",
		"Composition", "ConceptMap", "Condition", "Consent", "Contract", "Coverage",
		"CoverageEligibilityRequest", "CoverageEligibilityResponse", "DetectedIssue", "Device",
		"DeviceDefinition", "DeviceMetric", "DeviceRequest", "DeviceUseStatement",
		"DiagnosticReport", "DocumentManifest", "DocumentReference", "EffectEvidenceSynthesis",
		"Encounter", "Endpoint", "EnrollmentRequest", "EnrollmentResponse", "EpisodeOfCare",
		"EventDefinition", "Evidence", "EvidenceVariable", "ExampleScenario",
		"ExplanationOfBenefit", "FamilyMemberHistory", "Flag", "Goal", "GraphDefinition", "Group",
		"GuidanceResponse", "HealthcareService", "ImagingStudy", "Immunization",
		"ImmunizationEvaluation", "ImmunizationRecommendation", "ImplementationGuide",
		"InsurancePlan", "Invoice", "Library", "Linkage", "List", "Location", "Measure",
		"MeasureReport", "Media", "Medication", "MedicationAdministration", "MedicationDispense",
		"MedicationKnowledge", "MedicationRequest", "MedicationStatement", "MedicinalProduct",
		"MedicinalProductAuthorization", "MedicinalProductContraindication",
		"MedicinalProductIndication", "MedicinalProductIngredient", "MedicinalProductInteraction",
		"MedicinalProductManufactured", "MedicinalProductPackaged", "MedicinalProductPharmaceutical",
		"MedicinalProductUndesirableEffect", "MessageDefinition", "MessageHeader",
		"MolecularSequence", "NamingSystem", "NutritionOrder", "Observation",
		"ObservationDefinition", "OperationDefinition", "OperationOutcome", "Organization",
		"OrganizationAffiliation", "Parameters", "Patient", "PaymentNotice", "PaymentReconciliation",
		"Person", "PlanDefinition", "Practitioner", "PractitionerRole", "Procedure", "Provenance",
		"Questionnaire", "QuestionnaireResponse", "RelatedPerson", "RequestGroup",
		"ResearchDefinition", "ResearchElementDefinition", "ResearchStudy", "ResearchSubject",
		"RiskAssessment", "RiskEvidenceSynthesis", "Schedule", "SearchParameter", "ServiceRequest",
		"Slot", "Specimen", "SpecimenDefinition", "StructureDefinition", "StructureMap",
		"Subscription", "Substance", "SubstanceNucleicAcid", "SubstancePolymer",
		"SubstanceProtein", "SubstanceReferenceInformation", "SubstanceSourceMaterial",
		"SubstanceSpecification", "SupplyDelivery", "SupplyRequest", "Task",
		"TerminologyCapabilities", "TestReport", "TestScript", "ValueSet", "VerificationResult",
		"VisionPrescription",
	}
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return m
}()
