package client

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/hrobot-io/hrobot/pkg/hrobot"
)

// validator is implemented by payload types that carry required identity
// fields. encoding/json leaves missing fields at their zero value, so the
// check runs after decoding.
type validator interface {
	Validate() error
}

func validate(value interface{}, body []byte) error {
	v, ok := value.(validator)
	if !ok {
		return nil
	}

	err := v.Validate()
	if err != nil {
		return &hrobot.DecodeError{Err: err, Body: body}
	}

	return nil
}

// decodeSingle unwraps a single-key envelope ({"server": {...}}) and decodes
// the payload. The expected key is preferred, but any sole entry is accepted
// since the service is not strict about envelope keys.
func decodeSingle[T any](body []byte, key string) (*T, error) {
	var envelope map[string]json.RawMessage

	err := json.Unmarshal(body, &envelope)
	if err != nil {
		return nil, &hrobot.DecodeError{Err: err, Body: body}
	}

	raw, ok := envelope[key]
	if !ok {
		if len(envelope) != 1 {
			return nil, &hrobot.DecodeError{
				Err:  fmt.Errorf("%w: expected key %q among %d entries", hrobot.ErrEnvelopeShape, key, len(envelope)),
				Body: body,
			}
		}

		for _, value := range envelope {
			raw = value
		}
	}

	var value T

	err = json.Unmarshal(raw, &value)
	if err != nil {
		return nil, &hrobot.DecodeError{Err: err, Body: body}
	}

	err = validate(&value, body)
	if err != nil {
		return nil, err
	}

	return &value, nil
}

// decodeList decodes an array of single-key envelopes, preserving order.
func decodeList[T any](body []byte, key string) ([]T, error) {
	var elements []json.RawMessage

	err := json.Unmarshal(body, &elements)
	if err != nil {
		return nil, &hrobot.DecodeError{Err: err, Body: body}
	}

	values := make([]T, 0, len(elements))

	for _, element := range elements {
		value, err := decodeSingle[T](element, key)
		if err != nil {
			return nil, err
		}

		values = append(values, *value)
	}

	return values, nil
}

// decodeBare decodes a payload without an envelope. The vSwitch endpoints
// and the reset trigger response use this shape.
func decodeBare[T any](body []byte, value *T) error {
	err := json.Unmarshal(body, value)
	if err != nil {
		return &hrobot.DecodeError{Err: err, Body: body}
	}

	return validate(value, body)
}

// decodeBareList decodes an array without per-element envelopes.
func decodeBareList[T any](body []byte) ([]T, error) {
	var values []T

	err := json.Unmarshal(body, &values)
	if err != nil {
		return nil, &hrobot.DecodeError{Err: err, Body: body}
	}

	return values, nil
}

// expectEmpty verifies a response that should carry no payload (DELETE and
// some POST endpoints answer 200 with an empty body, or 204).
func expectEmpty(body []byte) error {
	if len(bytes.TrimSpace(body)) != 0 {
		return &hrobot.DecodeError{
			Err:  fmt.Errorf("%w after status 2xx", hrobot.ErrUnexpectedPayload),
			Body: body,
		}
	}

	return nil
}
