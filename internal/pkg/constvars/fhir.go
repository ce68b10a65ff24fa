package constvars

const (
	ResourceAllergyIntolerance   = "AllergyIntolerance"
	ResourceBinary               = "Binary"
	ResourceBundle               = "Bundle"
	ResourceDocumentReference    = "DocumentReference"
	ResourceExplanationOfBenefit = "ExplanationOfBenefit"
	ResourceMedicationDispense   = "MedicationDispense"
	ResourceMedicationOrder      = "MedicationOrder"
	ResourceMedicationStatement  = "MedicationStatement"
	ResourceOperationOutcome     = "OperationOutcome"
	ResourceParameters           = "Parameters"
	ResourcePatient              = "Patient"
	ResourceRelatedPerson        = "RelatedPerson"
)

// Search parameters understood by the My Health Record FHIR gateway.
const (
	FhirParamDateWritten       = "datewritten"
	FhirParamWhenHandedOver    = "whenhandedover"
	FhirParamPatient           = "patient"
	FhirParamIdentifier        = "identifier"
	FhirParamClass             = "class"
	FhirParamType              = "type"
	FhirParamCreated           = "created"
	FhirParamAuthor            = "author"
	FhirParamStatus            = "status"
	FhirParamSlotName          = "slotName"
	FhirParamSlotValue         = "slotValue"
	FhirParamPatientReference  = "patientreference"
	FhirParamCoveragePlan      = "coverage.plan"
	FhirParamInclude           = "_include"
	FhirParamElements          = "_elements"
	FhirParamDocID             = "docId"
	FhirParamReporterType      = "reporter._type"
	FhirParamSourceType        = "source._type"
	FhirParamCoverageID        = "coverageId"
	FhirParamBirthdate         = "birthdate"
	FhirParamGender            = "gender"
	FhirParamFamily            = "family"
	FhirParamGiven             = "given"
	FhirParamSubject           = "subject"
	FhirParamAccessType        = "accessType"
	FhirParamAccessCode        = "accessCode"
	FhirOperationAccess        = "$access"
	FhirIncludeAuthorizingRx   = "MedicationDispense:authorizingPrescription"
	FhirValuePractitioner      = "Practitioner"
	FhirValuePatient           = "Patient"
	FhirValueMBS               = "MBS"
	FhirValuePBS               = "PBS"
	FhirValueIdentifier        = "identifier"
	FhirPrefixGreaterOrEqualTo = "ge"
	FhirPrefixLessOrEqualTo    = "le"
	FhirDateLayout             = "2006-01-02"
	FhirCodedValueSeparator    = "^^"
)

const (
	FhirBundleTypeCollection = "collection"
)

const (
	FhirIdentifierTypeSystem          = "http://hl7.org/fhir/v2/0203"
	FhirIdentifierTypeCodeNI          = "NI"
	FhirIdentifierTypeDisplayNI       = "National unique individual identifier"
	FhirIdentifierTypeTextIHI         = "IHI"
	IdentifierNamespaceMedicareCard   = "http://ns.electronichealth.net.au/id/hi/mc"
	IdentifierNamespaceMilitaryHealth = "TBD"
	IdentifierNamespaceDvaFile        = "http://ns.electronichealth.net.au/id/hi/dva"
	IdentifierNamespaceIhi            = "http://ns.electronichealth.net.au/id/hi/ihi/1.0"
)
