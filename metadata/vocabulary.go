package metadata

// ResourceTypeGeneral is the general type of a resource (DataCite property 10.a).
type ResourceTypeGeneral string

const (
	ResourceTypeGeneralAudiovisual           ResourceTypeGeneral = "Audiovisual"
	ResourceTypeGeneralAward                 ResourceTypeGeneral = "Award"
	ResourceTypeGeneralBook                  ResourceTypeGeneral = "Book"
	ResourceTypeGeneralBookChapter           ResourceTypeGeneral = "BookChapter"
	ResourceTypeGeneralCollection            ResourceTypeGeneral = "Collection"
	ResourceTypeGeneralComputationalNotebook ResourceTypeGeneral = "ComputationalNotebook"
	ResourceTypeGeneralConferencePaper       ResourceTypeGeneral = "ConferencePaper"
	ResourceTypeGeneralConferenceProceeding  ResourceTypeGeneral = "ConferenceProceeding"
	ResourceTypeGeneralDataPaper             ResourceTypeGeneral = "DataPaper"
	ResourceTypeGeneralDataset               ResourceTypeGeneral = "Dataset"
	ResourceTypeGeneralDissertation          ResourceTypeGeneral = "Dissertation"
	ResourceTypeGeneralEvent                 ResourceTypeGeneral = "Event"
	ResourceTypeGeneralImage                 ResourceTypeGeneral = "Image"
	ResourceTypeGeneralInteractiveResource   ResourceTypeGeneral = "InteractiveResource"
	ResourceTypeGeneralInstrument            ResourceTypeGeneral = "Instrument"
	ResourceTypeGeneralJournal               ResourceTypeGeneral = "Journal"
	ResourceTypeGeneralJournalArticle        ResourceTypeGeneral = "JournalArticle"
	ResourceTypeGeneralModel                 ResourceTypeGeneral = "Model"
	ResourceTypeGeneralOutputManagementPlan  ResourceTypeGeneral = "OutputManagementPlan"
	ResourceTypeGeneralPeerReview            ResourceTypeGeneral = "PeerReview"
	ResourceTypeGeneralPhysicalObject        ResourceTypeGeneral = "PhysicalObject"
	ResourceTypeGeneralPreprint              ResourceTypeGeneral = "Preprint"
	ResourceTypeGeneralProject               ResourceTypeGeneral = "Project"
	ResourceTypeGeneralReport                ResourceTypeGeneral = "Report"
	ResourceTypeGeneralService               ResourceTypeGeneral = "Service"
	ResourceTypeGeneralSoftware              ResourceTypeGeneral = "Software"
	ResourceTypeGeneralSound                 ResourceTypeGeneral = "Sound"
	ResourceTypeGeneralStandard              ResourceTypeGeneral = "Standard"
	ResourceTypeGeneralStudyRegistration     ResourceTypeGeneral = "StudyRegistration"
	ResourceTypeGeneralText                  ResourceTypeGeneral = "Text"
	ResourceTypeGeneralWorkflow              ResourceTypeGeneral = "Workflow"
	ResourceTypeGeneralOther                 ResourceTypeGeneral = "Other"
)

var resourceTypeGeneralVocabulary = newVocabulary("resourceTypeGeneral",
	ResourceTypeGeneralAudiovisual,
	ResourceTypeGeneralAward,
	ResourceTypeGeneralBook,
	ResourceTypeGeneralBookChapter,
	ResourceTypeGeneralCollection,
	ResourceTypeGeneralComputationalNotebook,
	ResourceTypeGeneralConferencePaper,
	ResourceTypeGeneralConferenceProceeding,
	ResourceTypeGeneralDataPaper,
	ResourceTypeGeneralDataset,
	ResourceTypeGeneralDissertation,
	ResourceTypeGeneralEvent,
	ResourceTypeGeneralImage,
	ResourceTypeGeneralInteractiveResource,
	ResourceTypeGeneralInstrument,
	ResourceTypeGeneralJournal,
	ResourceTypeGeneralJournalArticle,
	ResourceTypeGeneralModel,
	ResourceTypeGeneralOutputManagementPlan,
	ResourceTypeGeneralPeerReview,
	ResourceTypeGeneralPhysicalObject,
	ResourceTypeGeneralPreprint,
	ResourceTypeGeneralProject,
	ResourceTypeGeneralReport,
	ResourceTypeGeneralService,
	ResourceTypeGeneralSoftware,
	ResourceTypeGeneralSound,
	ResourceTypeGeneralStandard,
	ResourceTypeGeneralStudyRegistration,
	ResourceTypeGeneralText,
	ResourceTypeGeneralWorkflow,
	ResourceTypeGeneralOther,
)

// ParseResourceTypeGeneral resolves s against the ResourceTypeGeneral vocabulary
func ParseResourceTypeGeneral(s string) (ResourceTypeGeneral, error) {
	return resourceTypeGeneralVocabulary.parse(s)
}

// ResourceTypeGeneralValues returns every ResourceTypeGeneral in schema order
func ResourceTypeGeneralValues() []ResourceTypeGeneral {
	return resourceTypeGeneralVocabulary.all()
}

// Valid reports whether v is a member of the vocabulary
func (v ResourceTypeGeneral) Valid() bool {
	return resourceTypeGeneralVocabulary.contains(v)
}

func (v ResourceTypeGeneral) String() string {
	return string(v)
}

// MarshalText rejects values outside the vocabulary
func (v ResourceTypeGeneral) MarshalText() ([]byte, error) {
	return resourceTypeGeneralVocabulary.marshal(v)
}

// UnmarshalText rejects values outside the vocabulary
func (v *ResourceTypeGeneral) UnmarshalText(text []byte) error {
	return resourceTypeGeneralVocabulary.unmarshal(v, text)
}

// RelationType describes how a resource relates to a related identifier or item.
type RelationType string

const (
	RelationTypeIsCitedBy           RelationType = "IsCitedBy"
	RelationTypeCites               RelationType = "Cites"
	RelationTypeIsSupplementTo      RelationType = "IsSupplementTo"
	RelationTypeIsSupplementedBy    RelationType = "IsSupplementedBy"
	RelationTypeIsContinuedBy       RelationType = "IsContinuedBy"
	RelationTypeContinues           RelationType = "Continues"
	RelationTypeIsDescribedBy       RelationType = "IsDescribedBy"
	RelationTypeDescribes           RelationType = "Describes"
	RelationTypeHasMetadata         RelationType = "HasMetadata"
	RelationTypeIsMetadataFor       RelationType = "IsMetadataFor"
	RelationTypeHasVersion          RelationType = "HasVersion"
	RelationTypeIsVersionOf         RelationType = "IsVersionOf"
	RelationTypeIsNewVersionOf      RelationType = "IsNewVersionOf"
	RelationTypeIsPreviousVersionOf RelationType = "IsPreviousVersionOf"
	RelationTypeIsPartOf            RelationType = "IsPartOf"
	RelationTypeHasPart             RelationType = "HasPart"
	RelationTypeIsPublishedIn       RelationType = "IsPublishedIn"
	RelationTypeIsReferencedBy      RelationType = "IsReferencedBy"
	RelationTypeReferences          RelationType = "References"
	RelationTypeIsDocumentedBy      RelationType = "IsDocumentedBy"
	RelationTypeDocuments           RelationType = "Documents"
	RelationTypeIsCompiledBy        RelationType = "IsCompiledBy"
	RelationTypeCompiles            RelationType = "Compiles"
	RelationTypeIsVariantFormOf     RelationType = "IsVariantFormOf"
	RelationTypeIsOriginalFormOf    RelationType = "IsOriginalFormOf"
	RelationTypeIsIdenticalTo       RelationType = "IsIdenticalTo"
	RelationTypeIsReviewedBy        RelationType = "IsReviewedBy"
	RelationTypeReviews             RelationType = "Reviews"
	RelationTypeIsDerivedFrom       RelationType = "IsDerivedFrom"
	RelationTypeIsSourceOf          RelationType = "IsSourceOf"
	RelationTypeIsRequiredBy        RelationType = "IsRequiredBy"
	RelationTypeRequires            RelationType = "Requires"
	RelationTypeIsObsoletedBy       RelationType = "IsObsoletedBy"
	RelationTypeObsoletes           RelationType = "Obsoletes"
	RelationTypeIsCollectedBy       RelationType = "IsCollectedBy"
	RelationTypeCollects            RelationType = "Collects"
	RelationTypeIsTranslationOf     RelationType = "IsTranslationOf"
	RelationTypeHasTranslation      RelationType = "HasTranslation"
)

var relationTypeVocabulary = newVocabulary("relationType",
	RelationTypeIsCitedBy,
	RelationTypeCites,
	RelationTypeIsSupplementTo,
	RelationTypeIsSupplementedBy,
	RelationTypeIsContinuedBy,
	RelationTypeContinues,
	RelationTypeIsDescribedBy,
	RelationTypeDescribes,
	RelationTypeHasMetadata,
	RelationTypeIsMetadataFor,
	RelationTypeHasVersion,
	RelationTypeIsVersionOf,
	RelationTypeIsNewVersionOf,
	RelationTypeIsPreviousVersionOf,
	RelationTypeIsPartOf,
	RelationTypeHasPart,
	RelationTypeIsPublishedIn,
	RelationTypeIsReferencedBy,
	RelationTypeReferences,
	RelationTypeIsDocumentedBy,
	RelationTypeDocuments,
	RelationTypeIsCompiledBy,
	RelationTypeCompiles,
	RelationTypeIsVariantFormOf,
	RelationTypeIsOriginalFormOf,
	RelationTypeIsIdenticalTo,
	RelationTypeIsReviewedBy,
	RelationTypeReviews,
	RelationTypeIsDerivedFrom,
	RelationTypeIsSourceOf,
	RelationTypeIsRequiredBy,
	RelationTypeRequires,
	RelationTypeIsObsoletedBy,
	RelationTypeObsoletes,
	RelationTypeIsCollectedBy,
	RelationTypeCollects,
	RelationTypeIsTranslationOf,
	RelationTypeHasTranslation,
)

// ParseRelationType resolves s against the RelationType vocabulary
func ParseRelationType(s string) (RelationType, error) {
	return relationTypeVocabulary.parse(s)
}

// RelationTypeValues returns every RelationType in schema order
func RelationTypeValues() []RelationType {
	return relationTypeVocabulary.all()
}

// Valid reports whether v is a member of the vocabulary
func (v RelationType) Valid() bool {
	return relationTypeVocabulary.contains(v)
}

func (v RelationType) String() string {
	return string(v)
}

// MarshalText rejects values outside the vocabulary
func (v RelationType) MarshalText() ([]byte, error) {
	return relationTypeVocabulary.marshal(v)
}

// UnmarshalText rejects values outside the vocabulary
func (v *RelationType) UnmarshalText(text []byte) error {
	return relationTypeVocabulary.unmarshal(v, text)
}

// RelatedIdentifierType is the scheme of a related identifier.
type RelatedIdentifierType string

const (
	RelatedIdentifierTypeARK     RelatedIdentifierType = "ARK"
	RelatedIdentifierTypeArXiv   RelatedIdentifierType = "arXiv"
	RelatedIdentifierTypeBibcode RelatedIdentifierType = "bibcode"
	RelatedIdentifierTypeCSTR    RelatedIdentifierType = "CSTR"
	RelatedIdentifierTypeDOI     RelatedIdentifierType = "DOI"
	RelatedIdentifierTypeEAN13   RelatedIdentifierType = "EAN13"
	RelatedIdentifierTypeEISSN   RelatedIdentifierType = "EISSN"
	RelatedIdentifierTypeHandle  RelatedIdentifierType = "Handle"
	RelatedIdentifierTypeIGSN    RelatedIdentifierType = "IGSN"
	RelatedIdentifierTypeISBN    RelatedIdentifierType = "ISBN"
	RelatedIdentifierTypeISSN    RelatedIdentifierType = "ISSN"
	RelatedIdentifierTypeISTC    RelatedIdentifierType = "ISTC"
	RelatedIdentifierTypeLISSN   RelatedIdentifierType = "LISSN"
	RelatedIdentifierTypeLSID    RelatedIdentifierType = "LSID"
	RelatedIdentifierTypePMID    RelatedIdentifierType = "PMID"
	RelatedIdentifierTypePURL    RelatedIdentifierType = "PURL"
	RelatedIdentifierTypeRRID    RelatedIdentifierType = "RRID"
	RelatedIdentifierTypeUPC     RelatedIdentifierType = "UPC"
	RelatedIdentifierTypeURL     RelatedIdentifierType = "URL"
	RelatedIdentifierTypeURN     RelatedIdentifierType = "URN"
	RelatedIdentifierTypeW3ID    RelatedIdentifierType = "w3id"
)

var relatedIdentifierTypeVocabulary = newVocabulary("relatedIdentifierType",
	RelatedIdentifierTypeARK,
	RelatedIdentifierTypeArXiv,
	RelatedIdentifierTypeBibcode,
	RelatedIdentifierTypeCSTR,
	RelatedIdentifierTypeDOI,
	RelatedIdentifierTypeEAN13,
	RelatedIdentifierTypeEISSN,
	RelatedIdentifierTypeHandle,
	RelatedIdentifierTypeIGSN,
	RelatedIdentifierTypeISBN,
	RelatedIdentifierTypeISSN,
	RelatedIdentifierTypeISTC,
	RelatedIdentifierTypeLISSN,
	RelatedIdentifierTypeLSID,
	RelatedIdentifierTypePMID,
	RelatedIdentifierTypePURL,
	RelatedIdentifierTypeRRID,
	RelatedIdentifierTypeUPC,
	RelatedIdentifierTypeURL,
	RelatedIdentifierTypeURN,
	RelatedIdentifierTypeW3ID,
)

// ParseRelatedIdentifierType resolves s against the RelatedIdentifierType vocabulary
func ParseRelatedIdentifierType(s string) (RelatedIdentifierType, error) {
	return relatedIdentifierTypeVocabulary.parse(s)
}

// RelatedIdentifierTypeValues returns every RelatedIdentifierType in schema order
func RelatedIdentifierTypeValues() []RelatedIdentifierType {
	return relatedIdentifierTypeVocabulary.all()
}

// Valid reports whether v is a member of the vocabulary
func (v RelatedIdentifierType) Valid() bool {
	return relatedIdentifierTypeVocabulary.contains(v)
}

func (v RelatedIdentifierType) String() string {
	return string(v)
}

// MarshalText rejects values outside the vocabulary
func (v RelatedIdentifierType) MarshalText() ([]byte, error) {
	return relatedIdentifierTypeVocabulary.marshal(v)
}

// UnmarshalText rejects values outside the vocabulary
func (v *RelatedIdentifierType) UnmarshalText(text []byte) error {
	return relatedIdentifierTypeVocabulary.unmarshal(v, text)
}

// ContributorType is the role of a contributor.
type ContributorType string

const (
	ContributorTypeContactPerson         ContributorType = "ContactPerson"
	ContributorTypeDataCollector         ContributorType = "DataCollector"
	ContributorTypeDataCurator           ContributorType = "DataCurator"
	ContributorTypeDataManager           ContributorType = "DataManager"
	ContributorTypeDistributor           ContributorType = "Distributor"
	ContributorTypeEditor                ContributorType = "Editor"
	ContributorTypeHostingInstitution    ContributorType = "HostingInstitution"
	ContributorTypeProducer              ContributorType = "Producer"
	ContributorTypeProjectLeader         ContributorType = "ProjectLeader"
	ContributorTypeProjectManager        ContributorType = "ProjectManager"
	ContributorTypeProjectMember         ContributorType = "ProjectMember"
	ContributorTypeRegistrationAgency    ContributorType = "RegistrationAgency"
	ContributorTypeRegistrationAuthority ContributorType = "RegistrationAuthority"
	ContributorTypeRelatedPerson         ContributorType = "RelatedPerson"
	ContributorTypeResearcher            ContributorType = "Researcher"
	ContributorTypeResearchGroup         ContributorType = "ResearchGroup"
	ContributorTypeRightsHolder          ContributorType = "RightsHolder"
	ContributorTypeSponsor               ContributorType = "Sponsor"
	ContributorTypeSupervisor            ContributorType = "Supervisor"
	ContributorTypeTranslator            ContributorType = "Translator"
	ContributorTypeWorkPackageLeader     ContributorType = "WorkPackageLeader"
	ContributorTypeOther                 ContributorType = "Other"
)

var contributorTypeVocabulary = newVocabulary("contributorType",
	ContributorTypeContactPerson,
	ContributorTypeDataCollector,
	ContributorTypeDataCurator,
	ContributorTypeDataManager,
	ContributorTypeDistributor,
	ContributorTypeEditor,
	ContributorTypeHostingInstitution,
	ContributorTypeProducer,
	ContributorTypeProjectLeader,
	ContributorTypeProjectManager,
	ContributorTypeProjectMember,
	ContributorTypeRegistrationAgency,
	ContributorTypeRegistrationAuthority,
	ContributorTypeRelatedPerson,
	ContributorTypeResearcher,
	ContributorTypeResearchGroup,
	ContributorTypeRightsHolder,
	ContributorTypeSponsor,
	ContributorTypeSupervisor,
	ContributorTypeTranslator,
	ContributorTypeWorkPackageLeader,
	ContributorTypeOther,
)

// ParseContributorType resolves s against the ContributorType vocabulary
func ParseContributorType(s string) (ContributorType, error) {
	return contributorTypeVocabulary.parse(s)
}

// ContributorTypeValues returns every ContributorType in schema order
func ContributorTypeValues() []ContributorType {
	return contributorTypeVocabulary.all()
}

// Valid reports whether v is a member of the vocabulary
func (v ContributorType) Valid() bool {
	return contributorTypeVocabulary.contains(v)
}

func (v ContributorType) String() string {
	return string(v)
}

// MarshalText rejects values outside the vocabulary
func (v ContributorType) MarshalText() ([]byte, error) {
	return contributorTypeVocabulary.marshal(v)
}

// UnmarshalText rejects values outside the vocabulary
func (v *ContributorType) UnmarshalText(text []byte) error {
	return contributorTypeVocabulary.unmarshal(v, text)
}

// DateType qualifies a date.
type DateType string

const (
	DateTypeAccepted    DateType = "Accepted"
	DateTypeAvailable   DateType = "Available"
	DateTypeCopyrighted DateType = "Copyrighted"
	DateTypeCollected   DateType = "Collected"
	DateTypeCoverage    DateType = "Coverage"
	DateTypeCreated     DateType = "Created"
	DateTypeIssued      DateType = "Issued"
	DateTypeSubmitted   DateType = "Submitted"
	DateTypeUpdated     DateType = "Updated"
	DateTypeValid       DateType = "Valid"
	DateTypeWithdrawn   DateType = "Withdrawn"
	DateTypeOther       DateType = "Other"
)

var dateTypeVocabulary = newVocabulary("dateType",
	DateTypeAccepted,
	DateTypeAvailable,
	DateTypeCopyrighted,
	DateTypeCollected,
	DateTypeCoverage,
	DateTypeCreated,
	DateTypeIssued,
	DateTypeSubmitted,
	DateTypeUpdated,
	DateTypeValid,
	DateTypeWithdrawn,
	DateTypeOther,
)

// ParseDateType resolves s against the DateType vocabulary
func ParseDateType(s string) (DateType, error) {
	return dateTypeVocabulary.parse(s)
}

// DateTypeValues returns every DateType in schema order
func DateTypeValues() []DateType {
	return dateTypeVocabulary.all()
}

// Valid reports whether v is a member of the vocabulary
func (v DateType) Valid() bool {
	return dateTypeVocabulary.contains(v)
}

func (v DateType) String() string {
	return string(v)
}

// MarshalText rejects values outside the vocabulary
func (v DateType) MarshalText() ([]byte, error) {
	return dateTypeVocabulary.marshal(v)
}

// UnmarshalText rejects values outside the vocabulary
func (v *DateType) UnmarshalText(text []byte) error {
	return dateTypeVocabulary.unmarshal(v, text)
}

// DescriptionType qualifies a description.
type DescriptionType string

const (
	DescriptionTypeAbstract          DescriptionType = "Abstract"
	DescriptionTypeMethods           DescriptionType = "Methods"
	DescriptionTypeSeriesInformation DescriptionType = "SeriesInformation"
	DescriptionTypeTableOfContents   DescriptionType = "TableOfContents"
	DescriptionTypeTechnicalInfo     DescriptionType = "TechnicalInfo"
	DescriptionTypeOther             DescriptionType = "Other"
)

var descriptionTypeVocabulary = newVocabulary("descriptionType",
	DescriptionTypeAbstract,
	DescriptionTypeMethods,
	DescriptionTypeSeriesInformation,
	DescriptionTypeTableOfContents,
	DescriptionTypeTechnicalInfo,
	DescriptionTypeOther,
)

// ParseDescriptionType resolves s against the DescriptionType vocabulary
func ParseDescriptionType(s string) (DescriptionType, error) {
	return descriptionTypeVocabulary.parse(s)
}

// DescriptionTypeValues returns every DescriptionType in schema order
func DescriptionTypeValues() []DescriptionType {
	return descriptionTypeVocabulary.all()
}

// Valid reports whether v is a member of the vocabulary
func (v DescriptionType) Valid() bool {
	return descriptionTypeVocabulary.contains(v)
}

func (v DescriptionType) String() string {
	return string(v)
}

// MarshalText rejects values outside the vocabulary
func (v DescriptionType) MarshalText() ([]byte, error) {
	return descriptionTypeVocabulary.marshal(v)
}

// UnmarshalText rejects values outside the vocabulary
func (v *DescriptionType) UnmarshalText(text []byte) error {
	return descriptionTypeVocabulary.unmarshal(v, text)
}

// TitleType qualifies a title. Main titles carry no type.
type TitleType string

const (
	TitleTypeAlternativeTitle TitleType = "AlternativeTitle"
	TitleTypeSubtitle         TitleType = "Subtitle"
	TitleTypeTranslatedTitle  TitleType = "TranslatedTitle"
	TitleTypeOther            TitleType = "Other"
)

var titleTypeVocabulary = newVocabulary("titleType",
	TitleTypeAlternativeTitle,
	TitleTypeSubtitle,
	TitleTypeTranslatedTitle,
	TitleTypeOther,
)

// ParseTitleType resolves s against the TitleType vocabulary
func ParseTitleType(s string) (TitleType, error) {
	return titleTypeVocabulary.parse(s)
}

// TitleTypeValues returns every TitleType in schema order
func TitleTypeValues() []TitleType {
	return titleTypeVocabulary.all()
}

// Valid reports whether v is a member of the vocabulary
func (v TitleType) Valid() bool {
	return titleTypeVocabulary.contains(v)
}

func (v TitleType) String() string {
	return string(v)
}

// MarshalText rejects values outside the vocabulary
func (v TitleType) MarshalText() ([]byte, error) {
	return titleTypeVocabulary.marshal(v)
}

// UnmarshalText rejects values outside the vocabulary
func (v *TitleType) UnmarshalText(text []byte) error {
	return titleTypeVocabulary.unmarshal(v, text)
}

// NameType distinguishes people from organizations.
type NameType string

const (
	NameTypePersonal       NameType = "Personal"
	NameTypeOrganizational NameType = "Organizational"
)

var nameTypeVocabulary = newVocabulary("nameType",
	NameTypePersonal,
	NameTypeOrganizational,
)

// ParseNameType resolves s against the NameType vocabulary
func ParseNameType(s string) (NameType, error) {
	return nameTypeVocabulary.parse(s)
}

// NameTypeValues returns every NameType in schema order
func NameTypeValues() []NameType {
	return nameTypeVocabulary.all()
}

// Valid reports whether v is a member of the vocabulary
func (v NameType) Valid() bool {
	return nameTypeVocabulary.contains(v)
}

func (v NameType) String() string {
	return string(v)
}

// MarshalText rejects values outside the vocabulary
func (v NameType) MarshalText() ([]byte, error) {
	return nameTypeVocabulary.marshal(v)
}

// UnmarshalText rejects values outside the vocabulary
func (v *NameType) UnmarshalText(text []byte) error {
	return nameTypeVocabulary.unmarshal(v, text)
}

// DOIEvent is a state transition requested on create or update.
// Leaving it empty creates or keeps a draft.
type DOIEvent string

const (
	DOIEventPublish  DOIEvent = "publish"
	DOIEventRegister DOIEvent = "register"
	DOIEventHide     DOIEvent = "hide"
)

var doiEventVocabulary = newVocabulary("event",
	DOIEventPublish,
	DOIEventRegister,
	DOIEventHide,
)

// ParseDOIEvent resolves s against the DOIEvent vocabulary
func ParseDOIEvent(s string) (DOIEvent, error) {
	return doiEventVocabulary.parse(s)
}

// DOIEventValues returns every DOIEvent in schema order
func DOIEventValues() []DOIEvent {
	return doiEventVocabulary.all()
}

// Valid reports whether v is a member of the vocabulary
func (v DOIEvent) Valid() bool {
	return doiEventVocabulary.contains(v)
}

func (v DOIEvent) String() string {
	return string(v)
}

// MarshalText rejects values outside the vocabulary
func (v DOIEvent) MarshalText() ([]byte, error) {
	return doiEventVocabulary.marshal(v)
}

// UnmarshalText rejects values outside the vocabulary
func (v *DOIEvent) UnmarshalText(text []byte) error {
	return doiEventVocabulary.unmarshal(v, text)
}

// EventSource is the agent that produced an Event Data event.
type EventSource string

const (
	EventSourceDataCiteUsage           EventSource = "datacite-usage"
	EventSourceDataCiteRelated         EventSource = "datacite-related"
	EventSourceDataCiteCrossref        EventSource = "datacite-crossref"
	EventSourceDataCiteKisti           EventSource = "datacite-kisti"
	EventSourceDataCiteOp              EventSource = "datacite-op"
	EventSourceDataCiteMedra           EventSource = "datacite-medra"
	EventSourceDataCiteIstic           EventSource = "datacite-istic"
	EventSourceDataCiteFunder          EventSource = "datacite-funder"
	EventSourceDataCiteORCIDAutoUpdate EventSource = "datacite-orcid-auto-update"
	EventSourceDataCiteURL             EventSource = "datacite-url"
	EventSourceCrossref                EventSource = "crossref"
)

var eventSourceVocabulary = newVocabulary("source-id",
	EventSourceDataCiteUsage,
	EventSourceDataCiteRelated,
	EventSourceDataCiteCrossref,
	EventSourceDataCiteKisti,
	EventSourceDataCiteOp,
	EventSourceDataCiteMedra,
	EventSourceDataCiteIstic,
	EventSourceDataCiteFunder,
	EventSourceDataCiteORCIDAutoUpdate,
	EventSourceDataCiteURL,
	EventSourceCrossref,
)

// ParseEventSource resolves s against the EventSource vocabulary
func ParseEventSource(s string) (EventSource, error) {
	return eventSourceVocabulary.parse(s)
}

// EventSourceValues returns every EventSource in schema order
func EventSourceValues() []EventSource {
	return eventSourceVocabulary.all()
}

// Valid reports whether v is a member of the vocabulary
func (v EventSource) Valid() bool {
	return eventSourceVocabulary.contains(v)
}

func (v EventSource) String() string {
	return string(v)
}

// MarshalText rejects values outside the vocabulary
func (v EventSource) MarshalText() ([]byte, error) {
	return eventSourceVocabulary.marshal(v)
}

// UnmarshalText rejects values outside the vocabulary
func (v *EventSource) UnmarshalText(text []byte) error {
	return eventSourceVocabulary.unmarshal(v, text)
}

// EventRelationType is the relation or usage metric an event records.
type EventRelationType string

const (
	EventRelationTypeIsCitedBy                          EventRelationType = "is-cited-by"
	EventRelationTypeCites                              EventRelationType = "cites"
	EventRelationTypeIsSupplementTo                     EventRelationType = "is-supplement-to"
	EventRelationTypeIsSupplementedBy                   EventRelationType = "is-supplemented-by"
	EventRelationTypeIsContinuedBy                      EventRelationType = "is-continued-by"
	EventRelationTypeContinues                          EventRelationType = "continues"
	EventRelationTypeIsDescribedBy                      EventRelationType = "is-described-by"
	EventRelationTypeDescribes                          EventRelationType = "describes"
	EventRelationTypeHasMetadata                        EventRelationType = "has-metadata"
	EventRelationTypeIsMetadataFor                      EventRelationType = "is-metadata-for"
	EventRelationTypeHasVersion                         EventRelationType = "has-version"
	EventRelationTypeIsVersionOf                        EventRelationType = "is-version-of"
	EventRelationTypeIsNewVersionOf                     EventRelationType = "is-new-version-of"
	EventRelationTypeIsPreviousVersionOf                EventRelationType = "is-previous-version-of"
	EventRelationTypeIsPartOf                           EventRelationType = "is-part-of"
	EventRelationTypeHasPart                            EventRelationType = "has-part"
	EventRelationTypeIsPublishedIn                      EventRelationType = "is-published-in"
	EventRelationTypeIsReferencedBy                     EventRelationType = "is-referenced-by"
	EventRelationTypeReferences                         EventRelationType = "references"
	EventRelationTypeIsDocumentedBy                     EventRelationType = "is-documented-by"
	EventRelationTypeDocuments                          EventRelationType = "documents"
	EventRelationTypeIsCompiledBy                       EventRelationType = "is-compiled-by"
	EventRelationTypeCompiles                           EventRelationType = "compiles"
	EventRelationTypeIsVariantFormOf                    EventRelationType = "is-variant-form-of"
	EventRelationTypeIsOriginalFormOf                   EventRelationType = "is-original-form-of"
	EventRelationTypeIsIdenticalTo                      EventRelationType = "is-identical-to"
	EventRelationTypeIsReviewedBy                       EventRelationType = "is-reviewed-by"
	EventRelationTypeReviews                            EventRelationType = "reviews"
	EventRelationTypeIsDerivedFrom                      EventRelationType = "is-derived-from"
	EventRelationTypeIsSourceOf                         EventRelationType = "is-source-of"
	EventRelationTypeIsRequiredBy                       EventRelationType = "is-required-by"
	EventRelationTypeRequires                           EventRelationType = "requires"
	EventRelationTypeIsObsoletedBy                      EventRelationType = "is-obsoleted-by"
	EventRelationTypeObsoletes                          EventRelationType = "obsoletes"
	EventRelationTypeIsCollectedBy                      EventRelationType = "is-collected-by"
	EventRelationTypeCollects                           EventRelationType = "collects"
	EventRelationTypeIsAuthoredBy                       EventRelationType = "is-authored-by"
	EventRelationTypeIsAuthoredAt                       EventRelationType = "is-authored-at"
	EventRelationTypeIsFundedBy                         EventRelationType = "is-funded-by"
	EventRelationTypeTotalDatasetInvestigationsRegular  EventRelationType = "total-dataset-investigations-regular"
	EventRelationTypeUniqueDatasetInvestigationsRegular EventRelationType = "unique-dataset-investigations-regular"
	EventRelationTypeTotalDatasetRequestsRegular        EventRelationType = "total-dataset-requests-regular"
	EventRelationTypeUniqueDatasetRequestsRegular       EventRelationType = "unique-dataset-requests-regular"
	EventRelationTypeTotalDatasetInvestigationsMachine  EventRelationType = "total-dataset-investigations-machine"
	EventRelationTypeUniqueDatasetInvestigationsMachine EventRelationType = "unique-dataset-investigations-machine"
	EventRelationTypeTotalDatasetRequestsMachine        EventRelationType = "total-dataset-requests-machine"
	EventRelationTypeUniqueDatasetRequestsMachine       EventRelationType = "unique-dataset-requests-machine"
)

var eventRelationTypeVocabulary = newVocabulary("relation-type-id",
	EventRelationTypeIsCitedBy,
	EventRelationTypeCites,
	EventRelationTypeIsSupplementTo,
	EventRelationTypeIsSupplementedBy,
	EventRelationTypeIsContinuedBy,
	EventRelationTypeContinues,
	EventRelationTypeIsDescribedBy,
	EventRelationTypeDescribes,
	EventRelationTypeHasMetadata,
	EventRelationTypeIsMetadataFor,
	EventRelationTypeHasVersion,
	EventRelationTypeIsVersionOf,
	EventRelationTypeIsNewVersionOf,
	EventRelationTypeIsPreviousVersionOf,
	EventRelationTypeIsPartOf,
	EventRelationTypeHasPart,
	EventRelationTypeIsPublishedIn,
	EventRelationTypeIsReferencedBy,
	EventRelationTypeReferences,
	EventRelationTypeIsDocumentedBy,
	EventRelationTypeDocuments,
	EventRelationTypeIsCompiledBy,
	EventRelationTypeCompiles,
	EventRelationTypeIsVariantFormOf,
	EventRelationTypeIsOriginalFormOf,
	EventRelationTypeIsIdenticalTo,
	EventRelationTypeIsReviewedBy,
	EventRelationTypeReviews,
	EventRelationTypeIsDerivedFrom,
	EventRelationTypeIsSourceOf,
	EventRelationTypeIsRequiredBy,
	EventRelationTypeRequires,
	EventRelationTypeIsObsoletedBy,
	EventRelationTypeObsoletes,
	EventRelationTypeIsCollectedBy,
	EventRelationTypeCollects,
	EventRelationTypeIsAuthoredBy,
	EventRelationTypeIsAuthoredAt,
	EventRelationTypeIsFundedBy,
	EventRelationTypeTotalDatasetInvestigationsRegular,
	EventRelationTypeUniqueDatasetInvestigationsRegular,
	EventRelationTypeTotalDatasetRequestsRegular,
	EventRelationTypeUniqueDatasetRequestsRegular,
	EventRelationTypeTotalDatasetInvestigationsMachine,
	EventRelationTypeUniqueDatasetInvestigationsMachine,
	EventRelationTypeTotalDatasetRequestsMachine,
	EventRelationTypeUniqueDatasetRequestsMachine,
)

// ParseEventRelationType resolves s against the EventRelationType vocabulary
func ParseEventRelationType(s string) (EventRelationType, error) {
	return eventRelationTypeVocabulary.parse(s)
}

// EventRelationTypeValues returns every EventRelationType in schema order
func EventRelationTypeValues() []EventRelationType {
	return eventRelationTypeVocabulary.all()
}

// Valid reports whether v is a member of the vocabulary
func (v EventRelationType) Valid() bool {
	return eventRelationTypeVocabulary.contains(v)
}

func (v EventRelationType) String() string {
	return string(v)
}

// MarshalText rejects values outside the vocabulary
func (v EventRelationType) MarshalText() ([]byte, error) {
	return eventRelationTypeVocabulary.marshal(v)
}

// UnmarshalText rejects values outside the vocabulary
func (v *EventRelationType) UnmarshalText(text []byte) error {
	return eventRelationTypeVocabulary.unmarshal(v, text)
}

// EventMessageAction is the action recorded by an event message.
type EventMessageAction string

const (
	EventMessageActionCreate EventMessageAction = "create"
	EventMessageActionAdd    EventMessageAction = "add"
)

var eventMessageActionVocabulary = newVocabulary("message-action",
	EventMessageActionCreate,
	EventMessageActionAdd,
)

// ParseEventMessageAction resolves s against the EventMessageAction vocabulary
func ParseEventMessageAction(s string) (EventMessageAction, error) {
	return eventMessageActionVocabulary.parse(s)
}

// EventMessageActionValues returns every EventMessageAction in schema order
func EventMessageActionValues() []EventMessageAction {
	return eventMessageActionVocabulary.all()
}

// Valid reports whether v is a member of the vocabulary
func (v EventMessageAction) Valid() bool {
	return eventMessageActionVocabulary.contains(v)
}

func (v EventMessageAction) String() string {
	return string(v)
}

// MarshalText rejects values outside the vocabulary
func (v EventMessageAction) MarshalText() ([]byte, error) {
	return eventMessageActionVocabulary.marshal(v)
}

// UnmarshalText rejects values outside the vocabulary
func (v *EventMessageAction) UnmarshalText(text []byte) error {
	return eventMessageActionVocabulary.unmarshal(v, text)
}

// DOIState is the publication state of a DOI
type DOIState string

const (
	DOIStateDraft      DOIState = "draft"
	DOIStateRegistered DOIState = "registered"
	DOIStateFindable   DOIState = "findable"
)

var doiStateVocabulary = newVocabulary("state",
	DOIStateDraft,
	DOIStateRegistered,
	DOIStateFindable,
)

// ParseDOIState resolves s against the DOIState vocabulary
func ParseDOIState(s string) (DOIState, error) {
	return doiStateVocabulary.parse(s)
}

// DOIStateValues returns every DOIState
func DOIStateValues() []DOIState {
	return doiStateVocabulary.all()
}

// Valid reports whether v is a member of the vocabulary
func (v DOIState) Valid() bool {
	return doiStateVocabulary.contains(v)
}

func (v DOIState) String() string {
	return string(v)
}

// MarshalText rejects values outside the vocabulary
func (v DOIState) MarshalText() ([]byte, error) {
	return doiStateVocabulary.marshal(v)
}

// UnmarshalText rejects values outside the vocabulary
func (v *DOIState) UnmarshalText(text []byte) error {
	return doiStateVocabulary.unmarshal(v, text)
}
