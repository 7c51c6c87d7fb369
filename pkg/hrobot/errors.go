package hrobot

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Static errors for err113 compliance.
var (
	ErrCredentialsRequired = errors.New("username and password are required")
	ErrEnvelopeShape       = errors.New("unexpected envelope shape")
	ErrUnexpectedPayload   = errors.New("unexpected response payload")
	ErrMissingField        = errors.New("required field missing from response")
)

// APIError represents a structured error reported by the Robot webservice.
//
// The wire format is {"error": {"status": ..., "code": ..., "message": ...}}
// with optional "missing"/"invalid" field lists for INVALID_INPUT and
// "max_request"/"interval" for RATE_LIMIT_EXCEEDED. The service is known to
// return null instead of omitting the field lists; both decode to nil.
type APIError struct {
	Status  int    `json:"status"  yaml:"status"`
	Code    string `json:"code"    yaml:"code"`
	Message string `json:"message" yaml:"message"`

	Missing []string `json:"missing,omitempty" yaml:"missing,omitempty"`
	Invalid []string `json:"invalid,omitempty" yaml:"invalid,omitempty"`

	MaxRequest int `json:"max_request,omitempty" yaml:"max_request,omitempty"`
	Interval   int `json:"interval,omitempty"    yaml:"interval,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s (status: %d)", e.Code, e.Message, e.Status)
}

// TransportError wraps a failure to establish or complete the network
// exchange (DNS, connect, TLS, timeout, reset). It is always distinct from an
// error reported by the remote service.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RawError represents a non-2xx response whose body could not be parsed as a
// structured Robot error. It carries the raw body for diagnosis.
type RawError struct {
	StatusCode int
	Body       []byte
}

func (e *RawError) Error() string {
	return fmt.Sprintf("http error %d: %s", e.StatusCode, strings.TrimSpace(string(e.Body)))
}

// DecodeError wraps a failure to deserialize a nominally-successful response
// body into the expected type.
type DecodeError struct {
	Err  error
	Body []byte
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// EncodeError wraps a local failure to form-encode an outgoing request body.
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encoding request body: %v", e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

// Error codes returned by the Robot webservice.
const (
	ErrorCodeUnavailable      = "UNAVAILABLE"
	ErrorCodeNotFound         = "NOT_FOUND"
	ErrorCodeServerNotFound   = "SERVER_NOT_FOUND"
	ErrorCodeIPNotFound       = "IP_NOT_FOUND"
	ErrorCodeSubnetNotFound   = "SUBNET_NOT_FOUND"
	ErrorCodeMacNotFound      = "MAC_NOT_FOUND"
	ErrorCodeMacNotAvailable  = "MAC_NOT_AVAILABLE"
	ErrorCodeMacAlreadySet    = "MAC_ALREADY_SET"
	ErrorCodeMacFailed        = "MAC_FAILED"
	ErrorCodeWolNotAvailable  = "WOL_NOT_AVAILABLE"
	ErrorCodeWolFailed        = "WOL_FAILED"
	ErrorCodeInvalidInput     = "INVALID_INPUT"
	ErrorCodeConflict         = "CONFLICT"
	ErrorCodeRateLimit        = "RATE_LIMIT_EXCEEDED"
	ErrorCodeInternalError    = "INTERNAL_ERROR"
	ErrorCodeResetNotAvail    = "RESET_NOT_AVAILABLE"
	ErrorCodeResetManual      = "RESET_MANUAL_ACTIVE"
	ErrorCodeResetFailed      = "RESET_FAILED"
	ErrorCodeBootNotAvailable = "BOOT_NOT_AVAILABLE"
	ErrorCodeBootActivation   = "BOOT_ACTIVATION_FAILED"
	ErrorCodeBootDeactivation = "BOOT_DEACTIVATION_FAILED"
	ErrorCodeBootEnabled      = "BOOT_ALREADY_ENABLED"
	ErrorCodeBootBlocked      = "BOOT_BLOCKED"
	ErrorCodeKeyAlreadyExists = "KEY_ALREADY_EXISTS"
	ErrorCodeKeyCreateFailed  = "KEY_CREATE_FAILED"
	ErrorCodeKeyUpdateFailed  = "KEY_UPDATE_FAILED"
	ErrorCodeKeyDeleteFailed  = "KEY_DELETE_FAILED"
	ErrorCodeRdnsNotFound     = "RDNS_NOT_FOUND"
	ErrorCodeRdnsExists       = "RDNS_ALREADY_EXISTS"
	ErrorCodeRdnsCreateFailed = "RDNS_CREATE_FAILED"
	ErrorCodeRdnsUpdateFailed = "RDNS_UPDATE_FAILED"
	ErrorCodeRdnsDeleteFailed = "RDNS_DELETE_FAILED"
	ErrorCodeFirewallPort     = "FIREWALL_PORT_NOT_FOUND"
	ErrorCodeFirewallNotAvail = "FIREWALL_NOT_AVAILABLE"
	ErrorCodeFirewallTemplate = "FIREWALL_TEMPLATE_NOT_FOUND"
	ErrorCodeFirewallInProc   = "FIREWALL_IN_PROCESS"
	ErrorCodeFailoverRouted   = "FAILOVER_ALREADY_ROUTED"
	ErrorCodeFailoverFailed   = "FAILOVER_FAILED"
	ErrorCodeFailoverLocked   = "FAILOVER_LOCKED"
	ErrorCodeFailoverPartial  = "FAILOVER_NOT_COMPLETE"
	ErrorCodeFailoverNoTarget = "FAILOVER_NEW_SERVER_NOT_FOUND"
	ErrorCodeVSwitchLimit     = "VSWITCH_LIMIT_REACHED"
	ErrorCodeVSwitchNotAvail  = "VSWITCH_NOT_AVAILABLE"
	ErrorCodeVSwitchSrvLimit  = "VSWITCH_SERVER_LIMIT_REACHED"
	ErrorCodeVSwitchPerSrv    = "VSWITCH_PER_SERVER_LIMIT_REACHED"
	ErrorCodeVSwitchInProc    = "VSWITCH_IN_PROCESS"
	ErrorCodeVSwitchVlanDup   = "VSWITCH_VLAN_NOT_UNIQUE"
	ErrorCodeTrafficWarning   = "TRAFFIC_WARNING_UPDATE_FAILED"
)

// responseError is the wire envelope carrying an APIError.
type responseError struct {
	Error *APIError `json:"error"`
}

// ParseAPIError parses the body of a failed response into an APIError.
// It returns an error when the body does not carry the documented
// {"error": {...}} shape.
func ParseAPIError(data []byte) (*APIError, error) {
	var wrapped responseError

	err := json.Unmarshal(data, &wrapped)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal error response: %w", err)
	}

	if wrapped.Error == nil || wrapped.Error.Code == "" {
		return nil, fmt.Errorf("%w: error response without code", ErrMissingField)
	}

	return wrapped.Error, nil
}

// IsNotFound checks whether the error reports a missing resource of any kind.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Code == ErrorCodeNotFound || strings.HasSuffix(apiErr.Code, "_NOT_FOUND")
	}

	return false
}

// IsInvalidInput checks whether the error reports missing or invalid request
// fields.
func IsInvalidInput(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Code == ErrorCodeInvalidInput
	}

	return false
}

// IsRateLimited checks whether the error reports an exceeded request quota.
func IsRateLimited(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Code == ErrorCodeRateLimit
	}

	return false
}

// IsConflict checks whether the error reports a conflicting concurrent
// operation.
func IsConflict(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Code == ErrorCodeConflict
	}

	return false
}
