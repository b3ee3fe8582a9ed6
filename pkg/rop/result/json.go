package result

import "github.com/ib-77/ropresult/pkg/rop"

func (r Result[V, E]) MarshalJSON() ([]byte, error) {
	if r.isSuccess {
		value, err := rop.EncodePayload(r.value, "value")
		if err != nil {
			return nil, err
		}
		return rop.Envelope{Variant: rop.SuccessVariant, Value: value}.Marshal()
	}

	payload, err := rop.EncodePayload(r.err, "error")
	if err != nil {
		return nil, err
	}
	return rop.Envelope{Variant: rop.FailureVariant, Error: payload}.Marshal()
}

func (r *Result[V, E]) UnmarshalJSON(data []byte) error {
	env, err := rop.DecodeEnvelope(data)
	if err != nil {
		return err
	}

	if env.Variant == rop.SuccessVariant {
		value, err := rop.DecodePayload[V](env.Value, "value")
		if err != nil {
			return err
		}
		*r = Success[V, E](value)
		return nil
	}

	payload, err := rop.DecodePayload[E](env.Error, "error")
	if err != nil {
		return err
	}
	*r = Failure[V, E](payload)
	return nil
}
