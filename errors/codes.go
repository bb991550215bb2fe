package mederrors

// Internal error codes embedded in error messages for easier
// debugging. These are NOT the codes returned by Medium's API;
// remote codes are carried verbatim in ApiError.Code instead.
const (
	DEV_ERROR = iota + 1000
	UNEXPECTED_ERROR
	OS_ERROR
	INPUT_ERROR
	CONNECTION_ERROR
	JSON_ERROR
	RESPONSE_ERROR
	HTML_ERROR
	CACHE_ERROR
)

// UNKNOWN_API_CODE is the sentinel ApiError code used for every
// failure that did not come with a remote error code, i.e. local
// validation errors, network/timeout errors, malformed JSON
// responses and unexpected status classes.
const UNKNOWN_API_CODE = -1
