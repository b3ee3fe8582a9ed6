package rop

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/goccy/go-json"
)

// FormatVersion tags every encoded container, whatever its payload type.
const FormatVersion = 1

type Variant uint8

const (
	SuccessVariant Variant = iota + 1
	FailureVariant
)

func (v Variant) String() string {
	switch v {
	case SuccessVariant:
		return "Success"
	case FailureVariant:
		return "Failure"
	}
	return fmt.Sprintf("Variant(%d)", uint8(v))
}

func (v Variant) MarshalText() ([]byte, error) {
	switch v {
	case SuccessVariant:
		return []byte("success"), nil
	case FailureVariant:
		return []byte("failure"), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownVariant, uint8(v))
}

func (v *Variant) UnmarshalText(text []byte) error {
	switch string(text) {
	case "success":
		*v = SuccessVariant
	case "failure":
		*v = FailureVariant
	default:
		return fmt.Errorf("%w: %q", ErrUnknownVariant, text)
	}
	return nil
}

// Envelope is the durable form shared by result.Result and
// completable.Completable.
type Envelope struct {
	Version int             `json:"version"`
	Variant Variant         `json:"variant"`
	Value   json.RawMessage `json:"value,omitempty"`
	Error   json.RawMessage `json:"error,omitempty"`
}

func (e Envelope) Marshal() ([]byte, error) {
	e.Version = FormatVersion
	return json.Marshal(e)
}

// DecodeEnvelope parses data and checks the version tag and the variant.
func DecodeEnvelope(data []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Envelope{}, err
	}
	if env.Version != FormatVersion {
		return Envelope{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, env.Version)
	}
	if env.Variant != SuccessVariant && env.Variant != FailureVariant {
		return Envelope{}, fmt.Errorf("%w: missing", ErrUnknownVariant)
	}
	return env, nil
}

// EncodePayload encodes p. A payload statically typed as the error interface
// is written as its message.
func EncodePayload[T any](p T, name string) (json.RawMessage, error) {
	if IsNil(p) {
		return nil, NilPayload(name)
	}
	if isErrorInterface[T]() {
		return json.Marshal(any(p).(error).Error())
	}
	return json.Marshal(p)
}

// DecodePayload is the inverse of EncodePayload. Error interface payloads
// come back as errors.New(message).
func DecodePayload[T any](raw json.RawMessage, name string) (T, error) {
	var p T
	if len(raw) == 0 || string(raw) == "null" {
		return p, NilPayload(name)
	}

	if isErrorInterface[T]() {
		var msg string
		if err := json.Unmarshal(raw, &msg); err != nil {
			return p, err
		}
		return any(errors.New(msg)).(T), nil
	}

	if err := json.Unmarshal(raw, &p); err != nil {
		return p, err
	}
	if IsNil(p) {
		return p, NilPayload(name)
	}
	return p, nil
}

func isErrorInterface[T any]() bool {
	return reflect.TypeFor[T]() == reflect.TypeFor[error]()
}
