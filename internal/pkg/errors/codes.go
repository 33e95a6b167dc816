package errors

import "net/http"

var (
	ErrLocationsRequired = New(
		"LOCATIONS_REQUIRED",
		"Locations must be a non-empty array",
		http.StatusBadRequest,
	)

	ErrTextRequired = New(
		"TEXT_REQUIRED",
		"Text field is required",
		http.StatusBadRequest,
	)

	ErrNoLocationsFound = New(
		"NO_LOCATIONS_FOUND",
		"No recognized locations found in the text",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrStoryNotFound = New(
		"STORY_NOT_FOUND",
		"Story not found",
		http.StatusNotFound,
	)

	ErrGeocodingFailed = New(
		"GEOCODING_FAILED",
		"Geocoding service request failed",
		http.StatusBadGateway,
	)

	ErrSpeechSynthesisFailed = New(
		"SPEECH_SYNTHESIS_FAILED",
		"All speech synthesis providers failed",
		http.StatusBadGateway,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
