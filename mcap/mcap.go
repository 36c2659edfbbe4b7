package mcap

import (
	"fmt"
	"io"

	"github.com/foxglove/mcap/go/mcap"
)

/*
Thin wrappers over the foxglove mcap library, fixing the writer options we
use everywhere and cutting down on import noise at call sites.
*/

////////////////////////////////////////////////////////////////////////////////

const megabyte = 1024 * 1024

func NewWriter(w io.Writer) (*mcap.Writer, error) {
	writer, err := mcap.NewWriter(w, &mcap.WriterOptions{
		IncludeCRC:  true,
		Chunked:     true,
		ChunkSize:   4 * megabyte,
		Compression: "zstd",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build writer: %w", err)
	}
	return writer, nil
}

func NewReader(r io.Reader) (*mcap.Reader, error) {
	reader, err := mcap.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to build reader: %w", err)
	}
	return reader, nil
}

// NewSchema builds a ros2msg-encoded schema record.
func NewSchema(id uint16, name string, msgdef []byte) *mcap.Schema {
	return &mcap.Schema{
		ID:       id,
		Name:     name,
		Encoding: "ros2msg",
		Data:     msgdef,
	}
}

// NewChannel builds a cdr-encoded channel record.
func NewChannel(id uint16, schemaID uint16, topic string) *mcap.Channel {
	return &mcap.Channel{
		ID:              id,
		SchemaID:        schemaID,
		Topic:           topic,
		MessageEncoding: "cdr",
	}
}
