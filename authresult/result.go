// Package authresult defines the terminal outcome of an interactive
// authorization session hosted in an embedded webview.
package authresult

import (
	"encoding/json"
	"fmt"

	"github.com/jrsteele09/go-webview-auth/internal/utils"
)

// AuthorizationResult is the immutable outcome of one session. Exactly one of
// the following holds:
//   - Success: response data present, no error
//   - error statuses: error present, no response data
//   - UserCancel: neither present
//
// The zero value is not a valid result; use the constructors.
type AuthorizationResult struct {
	status           Status
	responseData     *string
	err              *string
	errorDescription *string
}

// NewSuccess returns a Success result carrying the redirected URL.
func NewSuccess(responseData string) AuthorizationResult {
	return AuthorizationResult{
		status:       StatusSuccess,
		responseData: utils.Ptr(responseData),
	}
}

// NewUserCancel returns a UserCancel result.
func NewUserCancel() AuthorizationResult {
	return AuthorizationResult{status: StatusUserCancel}
}

// NewError returns an error result. It panics if status is not an error
// status or code is empty, both of which are programming errors.
func NewError(status Status, code, description string) AuthorizationResult {
	if !status.IsError() {
		panic(fmt.Sprintf("authresult: %s is not an error status", status))
	}
	if code == "" {
		panic("authresult: error code is required")
	}
	return AuthorizationResult{
		status:           status,
		err:              utils.Ptr(code),
		errorDescription: utils.NonEmptyPtr(description),
	}
}

func (r AuthorizationResult) Status() Status {
	return r.status
}

// ResponseData returns the redirected URL of a Success result.
func (r AuthorizationResult) ResponseData() (string, bool) {
	return utils.Value(r.responseData), r.responseData != nil
}

// ErrorCode returns the error code, empty unless the status is an error status.
func (r AuthorizationResult) ErrorCode() string {
	return utils.Value(r.err)
}

func (r AuthorizationResult) ErrorDescription() string {
	return utils.Value(r.errorDescription)
}

// Valid reports whether the result was built by one of the constructors.
func (r AuthorizationResult) Valid() bool {
	return r.status != 0
}

// Err returns the result as a *ResultError, or nil for non-error statuses.
func (r AuthorizationResult) Err() error {
	if !r.status.IsError() {
		return nil
	}
	return &ResultError{
		Status:      r.status,
		Code:        r.ErrorCode(),
		Description: r.ErrorDescription(),
	}
}

func (r AuthorizationResult) String() string {
	switch {
	case r.status == StatusSuccess:
		return fmt.Sprintf("%s(%s)", r.status, utils.Value(r.responseData))
	case r.status.IsError():
		return fmt.Sprintf("%s(%s)", r.status, r.ErrorCode())
	default:
		return r.status.String()
	}
}

type resultJSON struct {
	Status           Status  `json:"status"`
	ResponseData     *string `json:"response_data,omitempty"`
	Error            *string `json:"error,omitempty"`
	ErrorDescription *string `json:"error_description,omitempty"`
}

func (r AuthorizationResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(resultJSON{
		Status:           r.status,
		ResponseData:     r.responseData,
		Error:            r.err,
		ErrorDescription: r.errorDescription,
	})
}
