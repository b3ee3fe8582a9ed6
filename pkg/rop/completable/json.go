package completable

import "github.com/ib-77/ropresult/pkg/rop"

func (c Completable[E]) MarshalJSON() ([]byte, error) {
	if !c.isFailed {
		return rop.Envelope{Variant: rop.SuccessVariant}.Marshal()
	}

	payload, err := rop.EncodePayload(c.err, "error")
	if err != nil {
		return nil, err
	}
	return rop.Envelope{Variant: rop.FailureVariant, Error: payload}.Marshal()
}

func (c *Completable[E]) UnmarshalJSON(data []byte) error {
	env, err := rop.DecodeEnvelope(data)
	if err != nil {
		return err
	}

	if env.Variant == rop.SuccessVariant {
		*c = Success[E]()
		return nil
	}

	payload, err := rop.DecodePayload[E](env.Error, "error")
	if err != nil {
		return err
	}
	*c = Failure(payload)
	return nil
}
