// Package metadata models DataCite Metadata Schema 4.6 records as returned
// and accepted by the DataCite REST API.
//
// Every type maps to its JSON:API member names through struct tags and
// implements json.Marshaler and json.Unmarshaler on top of the defaults.
//
// # Decoding
//
// Decoding is strict about shape. A missing mandatory member, a null where
// a value is required, a wrong JSON type or an unknown vocabulary value
// fails with a *DecodeError, which matches ErrContract:
//
//	var doi metadata.DOIData
//	if err := json.Unmarshal(body, &doi); errors.Is(err, metadata.ErrContract) {
//		// the API returned something this package does not understand
//	}
//
// A few places are lenient because real-world records are uneven:
//
//   - Creators and Descriptions drop entries that do not decode
//   - Title.TitleType becomes empty for an unknown value
//   - Affiliation and Publisher accept either a bare name or an object
//   - Year and Coordinate accept numbers and numeric strings
//   - TimeSeries accepts an object or the API's list form
//
// # Encoding
//
// Values are never validated on construction. Validate, and MarshalJSON
// which calls it, check mandatory members, vocabularies and dependent
// pairs such as affiliationIdentifier and affiliationIdentifierScheme.
// Failures are *ValidationError values matching ErrValidation. Optional
// members are only written when set.
//
// CreateDOIInput and DOIInput are the write-side shapes. DOIData.Input
// turns a fetched record into an update.
package metadata
