package mcap

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	fmcap "github.com/foxglove/mcap/go/mcap"
	"github.com/wkalt/cdrcat/cdr"
	"github.com/wkalt/cdrcat/registry"
	"github.com/wkalt/cdrcat/ros2msg"
	"github.com/wkalt/cdrcat/schema"
	"github.com/wkalt/cdrcat/util/log"
)

/*
Verify replays every cdr-encoded message in an MCAP file through the codec:
decode against the channel's schema, re-encode, and require the output bytes
to equal the input bytes. Schemas resolve through the built-in catalogue
first, falling back to the message definition text carried in the file's
schema record when the type is not catalogued.

A file passes when every message on every cdr channel decodes and reproduces
its exact input bytes.
*/

////////////////////////////////////////////////////////////////////////////////

const maxRecordedFailures = 10

// ChannelReport is the verification outcome for one channel.
type ChannelReport struct {
	Topic      string
	SchemaName string
	Messages   int
	Bytes      uint64
	Decoded    int
	Canonical  int
	Failures   []string
}

// Report is the verification outcome for a file.
type Report struct {
	Channels []*ChannelReport
	Skipped  int
}

// OK reports whether every message on every cdr channel round-tripped
// byte-exactly.
func (r *Report) OK() bool {
	for _, channel := range r.Channels {
		if channel.Canonical != channel.Messages {
			return false
		}
	}
	return true
}

func (c *ChannelReport) fail(format string, args ...any) {
	if len(c.Failures) < maxRecordedFailures {
		c.Failures = append(c.Failures, fmt.Sprintf(format, args...))
	}
}

////////////////////////////////////////////////////////////////////////////////

// Verify checks every cdr-encoded message in the file for canonical
// round-trip through the codec. Messages on channels with other encodings
// are counted as skipped.
func Verify(ctx context.Context, r io.Reader) (*Report, error) {
	reader, err := NewReader(r)
	if err != nil {
		return nil, err
	}
	defer reader.Close()
	it, err := reader.Messages(fmcap.UsingIndex(false), fmcap.InOrder(fmcap.FileOrder))
	if err != nil {
		return nil, fmt.Errorf("failed to read messages: %w", err)
	}
	report := &Report{}
	channels := make(map[uint16]*ChannelReport)
	parsed := make(map[uint16]*schema.Schema)
	buf := make([]byte, 1024)
	for {
		mcapSchema, channel, msg, err := it.Next(buf)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read message: %w", err)
		}
		if len(msg.Data) > len(buf) {
			buf = make([]byte, 2*len(msg.Data))
		}
		if channel.MessageEncoding != "cdr" || mcapSchema == nil {
			report.Skipped++
			continue
		}
		cr, ok := channels[channel.ID]
		if !ok {
			cr = &ChannelReport{Topic: channel.Topic, SchemaName: mcapSchema.Name}
			channels[channel.ID] = cr
			report.Channels = append(report.Channels, cr)
		}
		cr.Messages++
		cr.Bytes += uint64(len(msg.Data))
		s, ok := parsed[channel.ID]
		if !ok {
			s, err = ResolveSchema(ctx, mcapSchema)
			if err != nil {
				cr.fail("failed to resolve schema: %s", err)
				continue
			}
			parsed[channel.ID] = s
		}
		verifyMessage(cr, s, msg.Data)
	}
	log.Debugf(ctx, "verified %d channels, skipped %d messages", len(report.Channels), report.Skipped)
	return report, nil
}

// ResolveSchema resolves an mcap schema record to a descriptor: the built-in
// catalogue when the name is catalogued, the embedded message definition text
// otherwise.
func ResolveSchema(ctx context.Context, mcapSchema *fmcap.Schema) (*schema.Schema, error) {
	s, err := registry.Lookup(mcapSchema.Name)
	if err == nil {
		return s, nil
	}
	if mcapSchema.Encoding != "ros2msg" || len(mcapSchema.Data) == 0 {
		return nil, err
	}
	canonical, cerr := registry.Canonical(mcapSchema.Name)
	if cerr != nil {
		return nil, cerr
	}
	parts := strings.SplitN(canonical, "/", 3)
	log.Debugf(ctx, "schema %s not catalogued, parsing from message definition", mcapSchema.Name)
	s, perr := ros2msg.ParseMessageDefinition(parts[0], parts[2], mcapSchema.Data)
	if perr != nil {
		return nil, fmt.Errorf("failed to parse message definition: %w", perr)
	}
	return s, nil
}

func verifyMessage(cr *ChannelReport, s *schema.Schema, data []byte) {
	decoder := cdr.NewDecoder(data)
	record, err := schema.Decode(s, decoder)
	if err != nil {
		cr.fail("failed to decode message %d: %s", cr.Messages-1, err)
		return
	}
	cr.Decoded++
	if decoder.Remaining() > 0 {
		cr.fail("message %d: %d trailing bytes after decode", cr.Messages-1, decoder.Remaining())
		return
	}
	encoder := cdr.NewEncoder()
	if err := schema.Encode(s, encoder, record); err != nil {
		cr.fail("failed to re-encode message %d: %s", cr.Messages-1, err)
		return
	}
	if !bytes.Equal(data, encoder.Bytes()) {
		cr.fail("message %d: re-encoded bytes differ from input", cr.Messages-1)
		return
	}
	cr.Canonical++
}
