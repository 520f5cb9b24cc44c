package r4

import "github.com/damedic/fhir-model-go/model/validation"

// Value set constants for required bindings

type binding struct {
	valueSet string
	system   string
	codes    []string
}

func (vs binding) check(c *checker, v validation.Coded, field string) {
	c.check(validation.CheckValueSetBinding(v, field, vs.valueSet, vs.system, vs.codes...))
}

func checkBindings[T validation.Coded](c *checker, vs binding, values []T, field string) {
	c.check(validation.CheckValueSetBindings(values, field, vs.valueSet, vs.system, vs.codes...))
}

var addressTypeBinding = binding{
	valueSet: "http://hl7.org/fhir/ValueSet/address-type|4.0.1",
	system:   "http://hl7.org/fhir/address-type",
	codes:    []string{"postal", "physical", "both"},
}

var (
	// AddressType Postal & Physical
	AddressTypeBoth = MustCode("both")
	// AddressType Physical
	AddressTypePhysical = MustCode("physical")
	// AddressType Postal
	AddressTypePostal = MustCode("postal")
)

var addressUseBinding = binding{
	valueSet: "http://hl7.org/fhir/ValueSet/address-use|4.0.1",
	system:   "http://hl7.org/fhir/address-use",
	codes:    []string{"home", "work", "temp", "old", "billing"},
}

var (
	// AddressUse Billing
	AddressUseBilling = MustCode("billing")
	// AddressUse Home
	AddressUseHome = MustCode("home")
	// AddressUse Old / Incorrect
	AddressUseOld = MustCode("old")
	// AddressUse Temporary
	AddressUseTemp = MustCode("temp")
	// AddressUse Work
	AddressUseWork = MustCode("work")
)

var administrativeGenderBinding = binding{
	valueSet: "http://hl7.org/fhir/ValueSet/administrative-gender|4.0.1",
	system:   "http://hl7.org/fhir/administrative-gender",
	codes:    []string{"male", "female", "other", "unknown"},
}

var (
	// AdministrativeGender Female
	AdministrativeGenderFemale = MustCode("female")
	// AdministrativeGender Male
	AdministrativeGenderMale = MustCode("male")
	// AdministrativeGender Other
	AdministrativeGenderOther = MustCode("other")
	// AdministrativeGender Unknown
	AdministrativeGenderUnknown = MustCode("unknown")
)

var contactPointSystemBinding = binding{
	valueSet: "http://hl7.org/fhir/ValueSet/contact-point-system|4.0.1",
	system:   "http://hl7.org/fhir/contact-point-system",
	codes:    []string{"phone", "fax", "email", "pager", "url", "sms", "other"},
}

var (
	// ContactPointSystem Email
	ContactPointSystemEmail = MustCode("email")
	// ContactPointSystem Fax
	ContactPointSystemFax = MustCode("fax")
	// ContactPointSystem Other
	ContactPointSystemOther = MustCode("other")
	// ContactPointSystem Pager
	ContactPointSystemPager = MustCode("pager")
	// ContactPointSystem Phone
	ContactPointSystemPhone = MustCode("phone")
	// ContactPointSystem SMS
	ContactPointSystemSms = MustCode("sms")
	// ContactPointSystem URL
	ContactPointSystemUrl = MustCode("url")
)

var contactPointUseBinding = binding{
	valueSet: "http://hl7.org/fhir/ValueSet/contact-point-use|4.0.1",
	system:   "http://hl7.org/fhir/contact-point-use",
	codes:    []string{"home", "work", "temp", "old", "mobile"},
}

var (
	// ContactPointUse Home
	ContactPointUseHome = MustCode("home")
	// ContactPointUse Mobile
	ContactPointUseMobile = MustCode("mobile")
	// ContactPointUse Old
	ContactPointUseOld = MustCode("old")
	// ContactPointUse Temp
	ContactPointUseTemp = MustCode("temp")
	// ContactPointUse Work
	ContactPointUseWork = MustCode("work")
)

var daysOfWeekBinding = binding{
	valueSet: "http://hl7.org/fhir/ValueSet/days-of-week|4.0.1",
	system:   "http://hl7.org/fhir/days-of-week",
	codes:    []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"},
}

var (
	// DaysOfWeek Friday
	DaysOfWeekFri = MustCode("fri")
	// DaysOfWeek Monday
	DaysOfWeekMon = MustCode("mon")
	// DaysOfWeek Saturday
	DaysOfWeekSat = MustCode("sat")
	// DaysOfWeek Sunday
	DaysOfWeekSun = MustCode("sun")
	// DaysOfWeek Thursday
	DaysOfWeekThu = MustCode("thu")
	// DaysOfWeek Tuesday
	DaysOfWeekTue = MustCode("tue")
	// DaysOfWeek Wednesday
	DaysOfWeekWed = MustCode("wed")
)

var identifierUseBinding = binding{
	valueSet: "http://hl7.org/fhir/ValueSet/identifier-use|4.0.1",
	system:   "http://hl7.org/fhir/identifier-use",
	codes:    []string{"usual", "official", "temp", "secondary", "old"},
}

var (
	// IdentifierUse Official
	IdentifierUseOfficial = MustCode("official")
	// IdentifierUse Old
	IdentifierUseOld = MustCode("old")
	// IdentifierUse Secondary
	IdentifierUseSecondary = MustCode("secondary")
	// IdentifierUse Temp
	IdentifierUseTemp = MustCode("temp")
	// IdentifierUse Usual
	IdentifierUseUsual = MustCode("usual")
)

var issueSeverityBinding = binding{
	valueSet: "http://hl7.org/fhir/ValueSet/issue-severity|4.0.1",
	system:   "http://hl7.org/fhir/issue-severity",
	codes:    []string{"fatal", "error", "warning", "information"},
}

var (
	// IssueSeverity Error
	IssueSeverityError = MustCode("error")
	// IssueSeverity Fatal
	IssueSeverityFatal = MustCode("fatal")
	// IssueSeverity Information
	IssueSeverityInformation = MustCode("information")
	// IssueSeverity Warning
	IssueSeverityWarning = MustCode("warning")
)

var issueTypeBinding = binding{
	valueSet: "http://hl7.org/fhir/ValueSet/issue-type|4.0.1",
	system:   "http://hl7.org/fhir/issue-type",
	codes:    []string{"invalid", "structure", "required", "value", "invariant", "security", "login", "unknown", "expired", "forbidden", "suppressed", "processing", "not-supported", "duplicate", "multiple-matches", "not-found", "deleted", "too-long", "code-invalid", "extension", "too-costly", "business-rule", "conflict", "transient", "lock-error", "no-store", "exception", "timeout", "incomplete", "throttled", "informational"},
}

var (
	// IssueType Business Rule Violation
	IssueTypeBusinessRule = MustCode("business-rule")
	// IssueType Invalid Code
	IssueTypeCodeInvalid = MustCode("code-invalid")
	// IssueType Edit Version Conflict
	IssueTypeConflict = MustCode("conflict")
	// IssueType Deleted
	IssueTypeDeleted = MustCode("deleted")
	// IssueType Duplicate
	IssueTypeDuplicate = MustCode("duplicate")
	// IssueType Exception
	IssueTypeException = MustCode("exception")
	// IssueType Session Expired
	IssueTypeExpired = MustCode("expired")
	// IssueType Unacceptable Extension
	IssueTypeExtension = MustCode("extension")
	// IssueType Forbidden
	IssueTypeForbidden = MustCode("forbidden")
	// IssueType Incomplete Results
	IssueTypeIncomplete = MustCode("incomplete")
	// IssueType Informational Note
	IssueTypeInformational = MustCode("informational")
	// IssueType Invalid Content
	IssueTypeInvalid = MustCode("invalid")
	// IssueType Validation rule failed
	IssueTypeInvariant = MustCode("invariant")
	// IssueType Lock Error
	IssueTypeLockError = MustCode("lock-error")
	// IssueType Login Required
	IssueTypeLogin = MustCode("login")
	// IssueType Multiple Matches
	IssueTypeMultipleMatches = MustCode("multiple-matches")
	// IssueType No Store Available
	IssueTypeNoStore = MustCode("no-store")
	// IssueType Not Found
	IssueTypeNotFound = MustCode("not-found")
	// IssueType Content not supported
	IssueTypeNotSupported = MustCode("not-supported")
	// IssueType Processing Failure
	IssueTypeProcessing = MustCode("processing")
	// IssueType Required element missing
	IssueTypeRequired = MustCode("required")
	// IssueType Security Problem
	IssueTypeSecurity = MustCode("security")
	// IssueType Structural Issue
	IssueTypeStructure = MustCode("structure")
	// IssueType Information Suppressed
	IssueTypeSuppressed = MustCode("suppressed")
	// IssueType Throttled
	IssueTypeThrottled = MustCode("throttled")
	// IssueType Timeout
	IssueTypeTimeout = MustCode("timeout")
	// IssueType Operation Too Costly
	IssueTypeTooCostly = MustCode("too-costly")
	// IssueType Content Too Long
	IssueTypeTooLong = MustCode("too-long")
	// IssueType Transient Issue
	IssueTypeTransient = MustCode("transient")
	// IssueType Unknown User
	IssueTypeUnknown = MustCode("unknown")
	// IssueType Element value invalid
	IssueTypeValue = MustCode("value")
)

var linkTypeBinding = binding{
	valueSet: "http://hl7.org/fhir/ValueSet/link-type|4.0.1",
	system:   "http://hl7.org/fhir/link-type",
	codes:    []string{"replaced-by", "replaces", "refer", "seealso"},
}

var (
	// LinkType Refer
	LinkTypeRefer = MustCode("refer")
	// LinkType Replaced-by
	LinkTypeReplacedBy = MustCode("replaced-by")
	// LinkType Replaces
	LinkTypeReplaces = MustCode("replaces")
	// LinkType See also
	LinkTypeSeealso = MustCode("seealso")
)

var nameUseBinding = binding{
	valueSet: "http://hl7.org/fhir/ValueSet/name-use|4.0.1",
	system:   "http://hl7.org/fhir/name-use",
	codes:    []string{"usual", "official", "temp", "nickname", "anonymous", "old", "maiden"},
}

var (
	// NameUse Anonymous
	NameUseAnonymous = MustCode("anonymous")
	// NameUse Name changed for Marriage
	NameUseMaiden = MustCode("maiden")
	// NameUse Nickname
	NameUseNickname = MustCode("nickname")
	// NameUse Official
	NameUseOfficial = MustCode("official")
	// NameUse Old
	NameUseOld = MustCode("old")
	// NameUse Temp
	NameUseTemp = MustCode("temp")
	// NameUse Usual
	NameUseUsual = MustCode("usual")
)

var narrativeStatusBinding = binding{
	valueSet: "http://hl7.org/fhir/ValueSet/narrative-status|4.0.1",
	system:   "http://hl7.org/fhir/narrative-status",
	codes:    []string{"generated", "extensions", "additional", "empty"},
}

var (
	// NarrativeStatus Additional
	NarrativeStatusAdditional = MustCode("additional")
	// NarrativeStatus Empty
	NarrativeStatusEmpty = MustCode("empty")
	// NarrativeStatus Extensions
	NarrativeStatusExtensions = MustCode("extensions")
	// NarrativeStatus Generated
	NarrativeStatusGenerated = MustCode("generated")
)

var quantityComparatorBinding = binding{
	valueSet: "http://hl7.org/fhir/ValueSet/quantity-comparator|4.0.1",
	system:   "http://hl7.org/fhir/quantity-comparator",
	codes:    []string{"<", "<=", ">=", ">"},
}

var (
	// QuantityComparator Greater than
	QuantityComparatorGreaterThan = MustCode(">")
	// QuantityComparator Greater or Equal to
	QuantityComparatorGreaterThanOrEqualTo = MustCode(">=")
	// QuantityComparator Less than
	QuantityComparatorLessThan = MustCode("<")
	// QuantityComparator Less or Equal to
	QuantityComparatorLessThanOrEqualTo = MustCode("<=")
)

var questionnaireResponseStatusBinding = binding{
	valueSet: "http://hl7.org/fhir/ValueSet/questionnaire-answers-status|4.0.1",
	system:   "http://hl7.org/fhir/questionnaire-answers-status",
	codes:    []string{"in-progress", "completed", "amended", "entered-in-error", "stopped"},
}

var (
	// QuestionnaireResponseStatus Amended
	QuestionnaireResponseStatusAmended = MustCode("amended")
	// QuestionnaireResponseStatus Completed
	QuestionnaireResponseStatusCompleted = MustCode("completed")
	// QuestionnaireResponseStatus Entered in Error
	QuestionnaireResponseStatusEnteredInError = MustCode("entered-in-error")
	// QuestionnaireResponseStatus In Progress
	QuestionnaireResponseStatusInProgress = MustCode("in-progress")
	// QuestionnaireResponseStatus Stopped
	QuestionnaireResponseStatusStopped = MustCode("stopped")
)

var requestIntentBinding = binding{
	valueSet: "http://hl7.org/fhir/ValueSet/request-intent|4.0.1",
	system:   "http://hl7.org/fhir/request-intent",
	codes:    []string{"proposal", "plan", "directive", "order", "original-order", "reflex-order", "filler-order", "instance-order", "option"},
}

var (
	// RequestIntent Directive
	RequestIntentDirective = MustCode("directive")
	// RequestIntent Filler Order
	RequestIntentFillerOrder = MustCode("filler-order")
	// RequestIntent Instance Order
	RequestIntentInstanceOrder = MustCode("instance-order")
	// RequestIntent Option
	RequestIntentOption = MustCode("option")
	// RequestIntent Order
	RequestIntentOrder = MustCode("order")
	// RequestIntent Original Order
	RequestIntentOriginalOrder = MustCode("original-order")
	// RequestIntent Plan
	RequestIntentPlan = MustCode("plan")
	// RequestIntent Proposal
	RequestIntentProposal = MustCode("proposal")
	// RequestIntent Reflex Order
	RequestIntentReflexOrder = MustCode("reflex-order")
)

var requestPriorityBinding = binding{
	valueSet: "http://hl7.org/fhir/ValueSet/request-priority|4.0.1",
	system:   "http://hl7.org/fhir/request-priority",
	codes:    []string{"routine", "urgent", "asap", "stat"},
}

var (
	// RequestPriority ASAP
	RequestPriorityAsap = MustCode("asap")
	// RequestPriority Routine
	RequestPriorityRoutine = MustCode("routine")
	// RequestPriority STAT
	RequestPriorityStat = MustCode("stat")
	// RequestPriority Urgent
	RequestPriorityUrgent = MustCode("urgent")
)

var requestStatusBinding = binding{
	valueSet: "http://hl7.org/fhir/ValueSet/request-status|4.0.1",
	system:   "http://hl7.org/fhir/request-status",
	codes:    []string{"draft", "active", "on-hold", "revoked", "completed", "entered-in-error", "unknown"},
}

var (
	// RequestStatus Active
	RequestStatusActive = MustCode("active")
	// RequestStatus Completed
	RequestStatusCompleted = MustCode("completed")
	// RequestStatus Draft
	RequestStatusDraft = MustCode("draft")
	// RequestStatus Entered in Error
	RequestStatusEnteredInError = MustCode("entered-in-error")
	// RequestStatus On Hold
	RequestStatusOnHold = MustCode("on-hold")
	// RequestStatus Revoked
	RequestStatusRevoked = MustCode("revoked")
	// RequestStatus Unknown
	RequestStatusUnknown = MustCode("unknown")
)

var unitsOfTimeBinding = binding{
	valueSet: "http://hl7.org/fhir/ValueSet/units-of-time|4.0.1",
	system:   "http://unitsofmeasure.org",
	codes:    []string{"s", "min", "h", "d", "wk", "mo", "a"},
}

var (
	// UnitsOfTime year
	UnitsOfTimeA = MustCode("a")
	// UnitsOfTime day
	UnitsOfTimeD = MustCode("d")
	// UnitsOfTime hour
	UnitsOfTimeH = MustCode("h")
	// UnitsOfTime minute
	UnitsOfTimeMin = MustCode("min")
	// UnitsOfTime month
	UnitsOfTimeMo = MustCode("mo")
	// UnitsOfTime second
	UnitsOfTimeS = MustCode("s")
	// UnitsOfTime week
	UnitsOfTimeWk = MustCode("wk")
)
