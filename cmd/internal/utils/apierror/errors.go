package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse abstracts all API error responses to the user.
//
// This interface does not implement `error`, since its only purpose
// is to be used for API responses and not for logging circumstances.
//
// In general, the whole ErrorResponse can be sent for serialization.
type ErrorResponse interface {
	// Code is the HTTP status code to be returned.
	Code() int
}

type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (a *APIError) Code() int {
	return a.Status
}

type StructuredError struct {
	Errors map[string][]string `json:"errors"`
	Status int                 `json:"-"`
}

func (s *StructuredError) Code() int {
	return s.Status
}

func (s *StructuredError) Add(field, problem string) {
	s.Errors[field] = append(s.Errors[field], problem)
}

var (
	MalformedJSONError  = NewSimple(400, "Malformed JSON body")
	InternalServerError = NewSimple(500, "Internal server error")

	NotFoundError         = NewSimple(404, "Resource not found")
	UnauthorizedError     = NewSimple(401, "Missing or invalid admin credentials")
	InvalidIDError        = NewSimple(400, "The provided ID is invalid, IDs are usually int > 0")
	InvalidMediaTypeError = NewSimple(415, "Unsupported media type")
	MissingFileNameError  = NewSimple(400, "Missing file name")
	TooManyRequestsError  = NewSimple(429, "Too many submissions, try again later")

	/*
	 * Moderation / directory conflicts
	 */
	DuplicateBrandNameError = NewSimple(409, "A brand with this name already exists")
	PropositionDecidedError = NewSimple(409, "Proposition has already been decided")
	UnknownCategoryError    = NewSimple(400, "Referenced category does not exist")
	LogoNotFoundError       = NewSimple(404, "No logo known for this brand")
)

func FromValidationError(err error) *StructuredError {
	var ve validator.ValidationErrors
	ok := errors.As(err, &ve)
	if !ok {
		return nil
	}

	problems := map[string][]string{}
	for _, fe := range err.(validator.ValidationErrors) {
		field := strings.ToLower(fe.Field())

		switch fe.Tag() {
		case "required", "required_without":
			problems[field] = append(problems[field], "This field is required")
		case "min":
			problems[field] = append(problems[field], "Value is too short, min: "+fe.Param())
		case "max":
			problems[field] = append(problems[field], "Value is too long, max: "+fe.Param())
		case "gt":
			problems[field] = append(problems[field], "Value must be greater than "+fe.Param())
		case "oneof":
			problems[field] = append(problems[field], "Value must be one of: "+fe.Param())
		case "url":
			problems[field] = append(problems[field], "Value must be a valid URL")
		case "isodate":
			problems[field] = append(problems[field], "Value must be an ISO date (YYYY-MM-DD)")

		default:
			problems[field] = append(problems[field], "Invalid value provided")
		}
	}

	return &StructuredError{
		Errors: problems,
		Status: http.StatusBadRequest,
	}
}

func NewSimple(status int, msg string, args ...any) *APIError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &APIError{Status: status, Message: msg}
}

func NewStructured(code int) *StructuredError {
	return &StructuredError{
		Errors: make(map[string][]string),
		Status: code,
	}
}

func NewDuplicateLinkError(brandID, beneficiaryID int) *APIError {
	return NewSimple(http.StatusConflict, "Brand %d is already linked to beneficiary %d", brandID, beneficiaryID)
}

func NewMissingParamError(name string) *APIError {
	return NewSimple(http.StatusBadRequest, "Missing required parameter '%s'", name)
}

func NewInvalidParamTypeError(name, dataType string) *APIError {
	return NewSimple(http.StatusBadRequest, "Parameter '%s' has invalid type, expected: %s", name, dataType)
}

func NewInvalidFileExtError(ext string) *APIError {
	return NewSimple(http.StatusBadRequest, "Unsupported file extension: %s", ext)
}

func NewLogoTooLargeError(maxBytes int64) *APIError {
	return NewSimple(http.StatusBadRequest, "Logo file exceeds the maximum of %d bytes", maxBytes)
}
