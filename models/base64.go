package models

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// Base64Bytes is a []byte that is encoded on the wire as a base64 string.
//
// encoding/json already marshals []byte as base64, but it also accepts JSON
// arrays when unmarshalling. This type enforces the contract: binary fields
// such as profile photos cross the API boundary as base64 strings only.
type Base64Bytes []byte

func (b Base64Bytes) MarshalJSON() ([]byte, error) {
	if b == nil {
		return []byte("null"), nil
	}
	return json.Marshal(base64.StdEncoding.EncodeToString(b))
}

func (b *Base64Bytes) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*b = nil
		return nil
	}

	var encoded string
	if err := json.Unmarshal(data, &encoded); err != nil {
		return fmt.Errorf("expected base64 string: %w", err)
	}

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		// Tolerate unpadded standard base64.
		decoded, err = base64.RawStdEncoding.DecodeString(encoded)
		if err != nil {
			return fmt.Errorf("invalid base64: %w", err)
		}
	}

	*b = Base64Bytes(decoded)
	return nil
}
