package storecodec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/teampay/chain/internal/storecodec"
)

type payload struct {
	Handle string `json:"handle"`
	Count  int64  `json:"count"`
}

func TestJSONValueRoundTrip(t *testing.T) {
	codec := storecodec.JSONValue[payload]("Payload")

	value := payload{Handle: "dev-ayna", Count: 3}
	encoded, err := codec.Encode(value)
	require.NoError(t, err)

	decoded, err := codec.Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, value, decoded)

	jsonBytes, err := codec.EncodeJSON(value)
	require.NoError(t, err)
	require.Equal(t, encoded, jsonBytes)

	require.Equal(t, "Payload", codec.ValueType())
	require.Equal(t, "{dev-ayna 3}", codec.Stringify(value))
}

func TestJSONValueDecodeRejectsGarbage(t *testing.T) {
	codec := storecodec.JSONValue[payload]("Payload")
	_, err := codec.Decode([]byte("not json"))
	require.Error(t, err)
}
