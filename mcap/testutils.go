package mcap

import (
	"io"
	"testing"

	"github.com/foxglove/mcap/go/mcap"
	"github.com/stretchr/testify/require"
)

// Fixture is one cdr channel's worth of test data.
type Fixture struct {
	Topic      string
	SchemaName string
	Msgdef     string
	Payloads   [][]byte
}

// WriteFile writes one mcap file containing the fixtures, one channel per
// fixture, message log times increasing per channel.
func WriteFile(t *testing.T, w io.Writer, fixtures ...Fixture) {
	t.Helper()
	writer, err := NewWriter(w)
	require.NoError(t, err)
	require.NoError(t, writer.WriteHeader(&mcap.Header{}))

	for i, fixture := range fixtures {
		schemaID := uint16(i + 1) // nolint:gosec
		channelID := uint16(i)    // nolint:gosec
		require.NoError(t, writer.WriteSchema(NewSchema(schemaID, fixture.SchemaName, []byte(fixture.Msgdef))))
		require.NoError(t, writer.WriteChannel(NewChannel(channelID, schemaID, fixture.Topic)))
		for j, payload := range fixture.Payloads {
			require.NoError(t, writer.WriteMessage(&mcap.Message{
				ChannelID: channelID,
				Sequence:  uint32(j), // nolint:gosec
				LogTime:   uint64(j), // nolint:gosec
				Data:      payload,
			}))
		}
	}
	require.NoError(t, writer.Close())
}
