package types

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aws/smithy-go"
)

// You don't have access to this item. The provided credentials couldn't be validated.
type AccessDeniedException struct {
	Message   *string `json:"Message,omitempty"`
	RequestId *string `json:"RequestId,omitempty"`
}

func (e *AccessDeniedException) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode(), e.ErrorMessage())
}

func (e *AccessDeniedException) ErrorMessage() string {
	if e.Message == nil {
		return ""
	}
	return *e.Message
}

func (e *AccessDeniedException) ErrorCode() string             { return "AccessDeniedException" }
func (e *AccessDeniedException) ErrorFault() smithy.ErrorFault { return smithy.FaultClient }

// A resource is already in a state that indicates an action is happening that must complete before a new update can be applied.
type ConcurrentUpdatingException struct {
	Message   *string `json:"Message,omitempty"`
	RequestId *string `json:"RequestId,omitempty"`
}

func (e *ConcurrentUpdatingException) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode(), e.ErrorMessage())
}

func (e *ConcurrentUpdatingException) ErrorMessage() string {
	if e.Message == nil {
		return ""
	}
	return *e.Message
}

func (e *ConcurrentUpdatingException) ErrorCode() string             { return "ConcurrentUpdatingException" }
func (e *ConcurrentUpdatingException) ErrorFault() smithy.ErrorFault { return smithy.FaultServer }

// Updating or deleting a resource can cause an inconsistent state.
type ConflictException struct {
	Message   *string `json:"Message,omitempty"`
	RequestId *string `json:"RequestId,omitempty"`
}

func (e *ConflictException) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode(), e.ErrorMessage())
}

func (e *ConflictException) ErrorMessage() string {
	if e.Message == nil {
		return ""
	}
	return *e.Message
}

func (e *ConflictException) ErrorCode() string             { return "ConflictException" }
func (e *ConflictException) ErrorFault() smithy.ErrorFault { return smithy.FaultClient }

// The domain specified is not on the allowlist.
type DomainNotWhitelistedException struct {
	Message   *string `json:"Message,omitempty"`
	RequestId *string `json:"RequestId,omitempty"`
}

func (e *DomainNotWhitelistedException) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode(), e.ErrorMessage())
}

func (e *DomainNotWhitelistedException) ErrorMessage() string {
	if e.Message == nil {
		return ""
	}
	return *e.Message
}

func (e *DomainNotWhitelistedException) ErrorCode() string             { return "DomainNotWhitelistedException" }
func (e *DomainNotWhitelistedException) ErrorFault() smithy.ErrorFault { return smithy.FaultClient }

// The identity type specified is not supported.
type IdentityTypeNotSupportedException struct {
	Message   *string `json:"Message,omitempty"`
	RequestId *string `json:"RequestId,omitempty"`
}

func (e *IdentityTypeNotSupportedException) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode(), e.ErrorMessage())
}

func (e *IdentityTypeNotSupportedException) ErrorMessage() string {
	if e.Message == nil {
		return ""
	}
	return *e.Message
}

func (e *IdentityTypeNotSupportedException) ErrorCode() string             { return "IdentityTypeNotSupportedException" }
func (e *IdentityTypeNotSupportedException) ErrorFault() smithy.ErrorFault { return smithy.FaultClient }

// An internal failure occurred.
type InternalFailureException struct {
	Message   *string `json:"Message,omitempty"`
	RequestId *string `json:"RequestId,omitempty"`
}

func (e *InternalFailureException) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode(), e.ErrorMessage())
}

func (e *InternalFailureException) ErrorMessage() string {
	if e.Message == nil {
		return ""
	}
	return *e.Message
}

func (e *InternalFailureException) ErrorCode() string             { return "InternalFailureException" }
func (e *InternalFailureException) ErrorFault() smithy.ErrorFault { return smithy.FaultServer }

// The NextToken value isn't valid.
type InvalidNextTokenException struct {
	Message   *string `json:"Message,omitempty"`
	RequestId *string `json:"RequestId,omitempty"`
}

func (e *InvalidNextTokenException) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode(), e.ErrorMessage())
}

func (e *InvalidNextTokenException) ErrorMessage() string {
	if e.Message == nil {
		return ""
	}
	return *e.Message
}

func (e *InvalidNextTokenException) ErrorCode() string             { return "InvalidNextTokenException" }
func (e *InvalidNextTokenException) ErrorFault() smithy.ErrorFault { return smithy.FaultClient }

// One or more parameters has a value that isn't valid.
type InvalidParameterValueException struct {
	Message   *string `json:"Message,omitempty"`
	RequestId *string `json:"RequestId,omitempty"`
}

func (e *InvalidParameterValueException) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode(), e.ErrorMessage())
}

func (e *InvalidParameterValueException) ErrorMessage() string {
	if e.Message == nil {
		return ""
	}
	return *e.Message
}

func (e *InvalidParameterValueException) ErrorCode() string             { return "InvalidParameterValueException" }
func (e *InvalidParameterValueException) ErrorFault() smithy.ErrorFault { return smithy.FaultClient }

// A limit is exceeded.
type LimitExceededException struct {
	Message      *string               `json:"Message,omitempty"`
	ResourceType ExceptionResourceType `json:"ResourceType,omitempty"`
	RequestId    *string               `json:"RequestId,omitempty"`
}

func (e *LimitExceededException) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode(), e.ErrorMessage())
}

func (e *LimitExceededException) ErrorMessage() string {
	if e.Message == nil {
		return ""
	}
	return *e.Message
}

func (e *LimitExceededException) ErrorCode() string             { return "LimitExceededException" }
func (e *LimitExceededException) ErrorFault() smithy.ErrorFault { return smithy.FaultClient }

// One or more preconditions aren't met.
type PreconditionNotMetException struct {
	Message   *string `json:"Message,omitempty"`
	RequestId *string `json:"RequestId,omitempty"`
}

func (e *PreconditionNotMetException) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode(), e.ErrorMessage())
}

func (e *PreconditionNotMetException) ErrorMessage() string {
	if e.Message == nil {
		return ""
	}
	return *e.Message
}

func (e *PreconditionNotMetException) ErrorCode() string             { return "PreconditionNotMetException" }
func (e *PreconditionNotMetException) ErrorFault() smithy.ErrorFault { return smithy.FaultClient }

// The user with the provided name isn't found.
type QuickSightUserNotFoundException struct {
	Message   *string `json:"Message,omitempty"`
	RequestId *string `json:"RequestId,omitempty"`
}

func (e *QuickSightUserNotFoundException) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode(), e.ErrorMessage())
}

func (e *QuickSightUserNotFoundException) ErrorMessage() string {
	if e.Message == nil {
		return ""
	}
	return *e.Message
}

func (e *QuickSightUserNotFoundException) ErrorCode() string             { return "QuickSightUserNotFoundException" }
func (e *QuickSightUserNotFoundException) ErrorFault() smithy.ErrorFault { return smithy.FaultClient }

// The resource specified already exists.
type ResourceExistsException struct {
	Message      *string               `json:"Message,omitempty"`
	ResourceType ExceptionResourceType `json:"ResourceType,omitempty"`
	RequestId    *string               `json:"RequestId,omitempty"`
}

func (e *ResourceExistsException) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode(), e.ErrorMessage())
}

func (e *ResourceExistsException) ErrorMessage() string {
	if e.Message == nil {
		return ""
	}
	return *e.Message
}

func (e *ResourceExistsException) ErrorCode() string             { return "ResourceExistsException" }
func (e *ResourceExistsException) ErrorFault() smithy.ErrorFault { return smithy.FaultClient }

// One or more resources can't be found.
type ResourceNotFoundException struct {
	Message      *string               `json:"Message,omitempty"`
	ResourceType ExceptionResourceType `json:"ResourceType,omitempty"`
	RequestId    *string               `json:"RequestId,omitempty"`
}

func (e *ResourceNotFoundException) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode(), e.ErrorMessage())
}

func (e *ResourceNotFoundException) ErrorMessage() string {
	if e.Message == nil {
		return ""
	}
	return *e.Message
}

func (e *ResourceNotFoundException) ErrorCode() string             { return "ResourceNotFoundException" }
func (e *ResourceNotFoundException) ErrorFault() smithy.ErrorFault { return smithy.FaultClient }

// This resource is currently unavailable.
type ResourceUnavailableException struct {
	Message      *string               `json:"Message,omitempty"`
	ResourceType ExceptionResourceType `json:"ResourceType,omitempty"`
	RequestId    *string               `json:"RequestId,omitempty"`
}

func (e *ResourceUnavailableException) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode(), e.ErrorMessage())
}

func (e *ResourceUnavailableException) ErrorMessage() string {
	if e.Message == nil {
		return ""
	}
	return *e.Message
}

func (e *ResourceUnavailableException) ErrorCode() string             { return "ResourceUnavailableException" }
func (e *ResourceUnavailableException) ErrorFault() smithy.ErrorFault { return smithy.FaultServer }

// The number of minutes specified for the lifetime of a session isn't valid.
type SessionLifetimeInMinutesInvalidException struct {
	Message   *string `json:"Message,omitempty"`
	RequestId *string `json:"RequestId,omitempty"`
}

func (e *SessionLifetimeInMinutesInvalidException) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode(), e.ErrorMessage())
}

func (e *SessionLifetimeInMinutesInvalidException) ErrorMessage() string {
	if e.Message == nil {
		return ""
	}
	return *e.Message
}

func (e *SessionLifetimeInMinutesInvalidException) ErrorCode() string             { return "SessionLifetimeInMinutesInvalidException" }
func (e *SessionLifetimeInMinutesInvalidException) ErrorFault() smithy.ErrorFault { return smithy.FaultClient }

// Access is throttled.
type ThrottlingException struct {
	Message   *string `json:"Message,omitempty"`
	RequestId *string `json:"RequestId,omitempty"`
}

func (e *ThrottlingException) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode(), e.ErrorMessage())
}

func (e *ThrottlingException) ErrorMessage() string {
	if e.Message == nil {
		return ""
	}
	return *e.Message
}

func (e *ThrottlingException) ErrorCode() string             { return "ThrottlingException" }
func (e *ThrottlingException) ErrorFault() smithy.ErrorFault { return smithy.FaultClient }

// This error indicates that you are calling an operation on an Amazon QuickSight subscription where the edition doesn't include support for that operation.
type UnsupportedUserEditionException struct {
	Message   *string `json:"Message,omitempty"`
	RequestId *string `json:"RequestId,omitempty"`
}

func (e *UnsupportedUserEditionException) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode(), e.ErrorMessage())
}

func (e *UnsupportedUserEditionException) ErrorMessage() string {
	if e.Message == nil {
		return ""
	}
	return *e.Message
}

func (e *UnsupportedUserEditionException) ErrorCode() string             { return "UnsupportedUserEditionException" }
func (e *UnsupportedUserEditionException) ErrorFault() smithy.ErrorFault { return smithy.FaultClient }

type exception struct {
	status int
	new    func() smithy.APIError
}

var exceptions = map[string]exception{
	"AccessDeniedException":                    {http.StatusUnauthorized, func() smithy.APIError { return &AccessDeniedException{} }},
	"ConcurrentUpdatingException":              {http.StatusInternalServerError, func() smithy.APIError { return &ConcurrentUpdatingException{} }},
	"ConflictException":                        {http.StatusConflict, func() smithy.APIError { return &ConflictException{} }},
	"DomainNotWhitelistedException":            {http.StatusForbidden, func() smithy.APIError { return &DomainNotWhitelistedException{} }},
	"IdentityTypeNotSupportedException":        {http.StatusForbidden, func() smithy.APIError { return &IdentityTypeNotSupportedException{} }},
	"InternalFailureException":                 {http.StatusInternalServerError, func() smithy.APIError { return &InternalFailureException{} }},
	"InvalidNextTokenException":                {http.StatusBadRequest, func() smithy.APIError { return &InvalidNextTokenException{} }},
	"InvalidParameterValueException":           {http.StatusBadRequest, func() smithy.APIError { return &InvalidParameterValueException{} }},
	"LimitExceededException":                   {http.StatusConflict, func() smithy.APIError { return &LimitExceededException{} }},
	"PreconditionNotMetException":              {http.StatusBadRequest, func() smithy.APIError { return &PreconditionNotMetException{} }},
	"QuickSightUserNotFoundException":          {http.StatusNotFound, func() smithy.APIError { return &QuickSightUserNotFoundException{} }},
	"ResourceExistsException":                  {http.StatusConflict, func() smithy.APIError { return &ResourceExistsException{} }},
	"ResourceNotFoundException":                {http.StatusNotFound, func() smithy.APIError { return &ResourceNotFoundException{} }},
	"ResourceUnavailableException":             {http.StatusServiceUnavailable, func() smithy.APIError { return &ResourceUnavailableException{} }},
	"SessionLifetimeInMinutesInvalidException": {http.StatusBadRequest, func() smithy.APIError { return &SessionLifetimeInMinutesInvalidException{} }},
	"ThrottlingException":                      {http.StatusTooManyRequests, func() smithy.APIError { return &ThrottlingException{} }},
	"UnsupportedUserEditionException":          {http.StatusForbidden, func() smithy.APIError { return &UnsupportedUserEditionException{} }},
}

// DecodeException builds the typed exception for code from a JSON error body.
// Codes this package does not model become a *smithy.GenericAPIError.
func DecodeException(code, message string, body []byte) error {
	e, ok := exceptions[code]
	if !ok {
		fault := smithy.FaultClient
		if code == "" {
			fault = smithy.FaultUnknown
		}
		return &smithy.GenericAPIError{Code: code, Message: message, Fault: fault}
	}
	err := e.new()
	if len(body) > 0 {
		if jerr := json.Unmarshal(body, err); jerr != nil {
			return &smithy.DeserializationError{Err: fmt.Errorf("decode %s: %w", code, jerr), Snapshot: body}
		}
	}
	return err
}

// ExceptionStatus is the HTTP status an exception code is served with. Unmodelled
// codes are served as internal errors.
func ExceptionStatus(code string) int {
	if e, ok := exceptions[code]; ok {
		return e.status
	}
	return http.StatusInternalServerError
}
