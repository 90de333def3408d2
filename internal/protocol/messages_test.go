package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeCarriesTypedPayload(t *testing.T) {
	msg, err := NewMessage(TypeReveal, RevealData{GameID: "g1", Row: 3, Col: 4})
	require.NoError(t, err)
	assert.Equal(t, TypeReveal, msg.Type)
	assert.False(t, msg.Timestamp.IsZero())

	// Simulate the wire: encode the envelope, decode it, then decode the
	// payload by type tag.
	frame, err := json.Marshal(msg)
	require.NoError(t, err)

	var received Message
	require.NoError(t, json.Unmarshal(frame, &received))
	require.Equal(t, TypeReveal, received.Type)

	var reveal RevealData
	require.NoError(t, received.DecodeData(&reveal))
	assert.Equal(t, "g1", reveal.GameID)
	assert.Equal(t, 3, reveal.Row)
	assert.Equal(t, 4, reveal.Col)
}

func TestDecodeDataRejectsMalformedPayload(t *testing.T) {
	msg := &Message{Type: TypeFlag, Data: json.RawMessage(`{"row":"not a number"}`)}
	var flag FlagData
	assert.Error(t, msg.DecodeData(&flag))
}
