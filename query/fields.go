package query

// Field is a searchable DataCite field path. The constants below cover the
// documented DOI search fields; any other path converts with Field(path).
type Field string

// String returns the field path
func (f Field) String() string {
	return string(f)
}

const (
	FieldDOI Field = "doi"

	FieldCreatorsName                        Field = "creators.name"
	FieldCreatorsLang                        Field = "creators.lang"
	FieldCreatorsNameType                    Field = "creators.nameType"
	FieldCreatorsGivenName                   Field = "creators.givenName"
	FieldCreatorsFamilyName                  Field = "creators.familyName"
	FieldCreatorsNameIdentifier              Field = "creators.nameIdentifiers.nameIdentifier"
	FieldCreatorsNameIdentifierScheme        Field = "creators.nameIdentifiers.nameIdentifierScheme"
	FieldCreatorsNameIdentifierSchemeURI     Field = "creators.nameIdentifiers.schemeUri"
	FieldCreatorsAffiliationName             Field = "creators.affiliation.name"
	FieldCreatorsAffiliationIdentifier       Field = "creators.affiliation.affiliationIdentifier"
	FieldCreatorsAffiliationIdentifierScheme Field = "creators.affiliation.affiliationIdentifierScheme"
	FieldCreatorsAffiliationSchemeURI        Field = "creators.affiliation.schemeUri"

	FieldTitlesTitle     Field = "titles.title"
	FieldTitlesLang      Field = "titles.lang"
	FieldTitlesTitleType Field = "titles.titleType"

	FieldPublisher                 Field = "publisher"
	FieldPublisherName             Field = "publisher.name"
	FieldPublisherIdentifier       Field = "publisher.publisherIdentifier"
	FieldPublisherIdentifierScheme Field = "publisher.publisherIdentifierScheme"
	FieldPublisherSchemeURI        Field = "publisher.schemeUri"
	FieldPublisherLang             Field = "publisher.lang"

	FieldPublicationYear Field = "publicationYear"

	FieldSubjectsSubject            Field = "subjects.subject"
	FieldSubjectsSubjectScheme      Field = "subjects.subjectScheme"
	FieldSubjectsSchemeURI          Field = "subjects.schemeUri"
	FieldSubjectsValueURI           Field = "subjects.valueUri"
	FieldSubjectsClassificationCode Field = "subjects.classificationCode"
	FieldSubjectsLang               Field = "subjects.lang"

	FieldContributorsContributorType             Field = "contributors.contributorType"
	FieldContributorsName                        Field = "contributors.name"
	FieldContributorsLang                        Field = "contributors.lang"
	FieldContributorsNameType                    Field = "contributors.nameType"
	FieldContributorsGivenName                   Field = "contributors.givenName"
	FieldContributorsFamilyName                  Field = "contributors.familyName"
	FieldContributorsNameIdentifier              Field = "contributors.nameIdentifiers.nameIdentifier"
	FieldContributorsNameIdentifierScheme        Field = "contributors.nameIdentifiers.nameIdentifierScheme"
	FieldContributorsNameIdentifierSchemeURI     Field = "contributors.nameIdentifiers.schemeUri"
	FieldContributorsAffiliationName             Field = "contributors.affiliation.name"
	FieldContributorsAffiliationIdentifier       Field = "contributors.affiliation.affiliationIdentifier"
	FieldContributorsAffiliationIdentifierScheme Field = "contributors.affiliation.affiliationIdentifierScheme"
	FieldContributorsAffiliationSchemeURI        Field = "contributors.affiliation.schemeUri"

	FieldDatesDate            Field = "dates.date"
	FieldDatesDateType        Field = "dates.dateType"
	FieldDatesDateInformation Field = "dates.dateInformation"

	FieldLanguage Field = "language"

	FieldTypesResourceType        Field = "types.resourceType"
	FieldTypesResourceTypeGeneral Field = "types.resourceTypeGeneral"

	FieldAlternateIdentifiersAlternateIdentifier     Field = "alternateIdentifiers.alternateIdentifier"
	FieldAlternateIdentifiersAlternateIdentifierType Field = "alternateIdentifiers.alternateIdentifierType"

	FieldIdentifiersIdentifier     Field = "identifiers.identifier"
	FieldIdentifiersIdentifierType Field = "identifiers.identifierType"

	FieldRelatedIdentifiersRelatedIdentifier     Field = "relatedIdentifiers.relatedIdentifier"
	FieldRelatedIdentifiersRelatedIdentifierType Field = "relatedIdentifiers.relatedIdentifierType"
	FieldRelatedIdentifiersRelationType          Field = "relatedIdentifiers.relationType"
	FieldRelatedIdentifiersRelatedMetadataScheme Field = "relatedIdentifiers.relatedMetadataScheme"
	FieldRelatedIdentifiersSchemeURI             Field = "relatedIdentifiers.schemeUri"
	FieldRelatedIdentifiersSchemeType            Field = "relatedIdentifiers.schemeType"
	FieldRelatedIdentifiersResourceTypeGeneral   Field = "relatedIdentifiers.resourceTypeGeneral"

	FieldSizes Field = "sizes"

	FieldFormats Field = "formats"

	FieldVersion Field = "version"

	FieldRightsListRights                 Field = "rightsList.rights"
	FieldRightsListLang                   Field = "rightsList.lang"
	FieldRightsListRightsURI              Field = "rightsList.rightsUri"
	FieldRightsListRightsIdentifier       Field = "rightsList.rightsIdentifier"
	FieldRightsListRightsIdentifierScheme Field = "rightsList.rightsIdentifierScheme"
	FieldRightsListSchemeURI              Field = "rightsList.schemeUri"

	FieldDescriptionsDescription     Field = "descriptions.description"
	FieldDescriptionsLang            Field = "descriptions.lang"
	FieldDescriptionsDescriptionType Field = "descriptions.descriptionType"

	FieldGeoLocationsGeoLocationPlace Field = "geoLocations.geoLocationPlace"

	FieldFundingReferencesFunderName           Field = "fundingReferences.funderName"
	FieldFundingReferencesFunderIdentifier     Field = "fundingReferences.funderIdentifier"
	FieldFundingReferencesFunderIdentifierType Field = "fundingReferences.funderIdentifierType"
	FieldFundingReferencesSchemeURI            Field = "fundingReferences.schemeUri"
	FieldFundingReferencesAwardNumber          Field = "fundingReferences.awardNumber"
	FieldFundingReferencesAwardURI             Field = "fundingReferences.awardUri"
	FieldFundingReferencesAwardTitle           Field = "fundingReferences.awardTitle"

	FieldRelatedItemsRelatedItemType             Field = "relatedItems.relatedItemType"
	FieldRelatedItemsRelationType                Field = "relatedItems.relationType"
	FieldRelatedItemsRelatedItemIdentifier       Field = "relatedItems.relatedItemIdentifier.relatedItemIdentifier"
	FieldRelatedItemsRelatedItemIdentifierType   Field = "relatedItems.relatedItemIdentifier.relatedItemIdentifierType"
	FieldRelatedItemsRelatedMetadataScheme       Field = "relatedItems.relatedItemIdentifier.relatedMetadataScheme"
	FieldRelatedItemsSchemeURI                   Field = "relatedItems.relatedItemIdentifier.schemeURI"
	FieldRelatedItemsSchemeType                  Field = "relatedItems.relatedItemIdentifier.schemeType"
	FieldRelatedItemsCreatorsName                Field = "relatedItems.creators.name"
	FieldRelatedItemsCreatorsNameType            Field = "relatedItems.creators.nameType"
	FieldRelatedItemsCreatorsGivenName           Field = "relatedItems.creators.givenName"
	FieldRelatedItemsCreatorsFamilyName          Field = "relatedItems.creators.familyName"
	FieldRelatedItemsTitlesTitle                 Field = "relatedItems.titles.title"
	FieldRelatedItemsTitlesLang                  Field = "relatedItems.titles.lang"
	FieldRelatedItemsTitlesTitleType             Field = "relatedItems.titles.titleType"
	FieldRelatedItemsPublicationYear             Field = "relatedItems.publicationYear"
	FieldRelatedItemsVolume                      Field = "relatedItems.volume"
	FieldRelatedItemsIssue                       Field = "relatedItems.issue"
	FieldRelatedItemsNumber                      Field = "relatedItems.number"
	FieldRelatedItemsNumberType                  Field = "relatedItems.numberType"
	FieldRelatedItemsFirstPage                   Field = "relatedItems.firstPage"
	FieldRelatedItemsLastPage                    Field = "relatedItems.lastPage"
	FieldRelatedItemsPublisher                   Field = "relatedItems.publisher"
	FieldRelatedItemsEdition                     Field = "relatedItems.edition"
	FieldRelatedItemsContributorsContributorType Field = "relatedItems.contributors.contributorType"
	FieldRelatedItemsContributorsName            Field = "relatedItems.contributors.name"
	FieldRelatedItemsContributorsNameType        Field = "relatedItems.contributors.nameType"
	FieldRelatedItemsContributorsGivenName       Field = "relatedItems.contributors.givenName"
	FieldRelatedItemsContributorsFamilyName      Field = "relatedItems.contributors.familyName"
)
