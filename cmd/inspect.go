package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	fmcap "github.com/foxglove/mcap/go/mcap"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/wkalt/cdrcat/cdr"
	"github.com/wkalt/cdrcat/mcap"
	"github.com/wkalt/cdrcat/schema"
)

var (
	inspectTopic  string
	inspectPretty bool
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect [file] | less",
	Short: "Print cdr messages from an mcap file as JSON lines",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			bailf("Usage: cdrcat inspect [file] | less")
		}
		f, err := os.Open(args[0])
		if err != nil {
			bailf("failed to open file: %v", err)
		}
		defer f.Close()
		reader, err := mcap.NewReader(f)
		if err != nil {
			bailf("failed to create reader: %v", err)
		}
		defer reader.Close()
		it, err := reader.Messages(fmcap.UsingIndex(false), fmcap.InOrder(fmcap.FileOrder))
		if err != nil {
			bailf("failed to read messages: %v", err)
		}
		ctx := cmd.Context()
		type channelCodec struct {
			schema     *schema.Schema
			transcoder *schema.JSONTranscoder
		}
		codecs := map[uint16]channelCodec{}
		buf := make([]byte, 1024)
		out := &bytes.Buffer{}
		for {
			mcapSchema, channel, msg, err := it.Next(buf)
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				bailf("failed to read message: %v", err)
			}
			if len(msg.Data) > len(buf) {
				buf = make([]byte, 2*len(msg.Data))
			}
			if channel.MessageEncoding != "cdr" || mcapSchema == nil {
				continue
			}
			if inspectTopic != "" && channel.Topic != inspectTopic {
				continue
			}
			codec, ok := codecs[channel.ID]
			if !ok {
				s, err := mcap.ResolveSchema(ctx, mcapSchema)
				if err != nil {
					bailf("failed to resolve schema for %s: %v", channel.Topic, err)
				}
				codec = channelCodec{schema: s, transcoder: schema.NewJSONTranscoder(s)}
				codecs[channel.ID] = codec
			}
			record, err := schema.Decode(codec.schema, cdr.NewDecoder(msg.Data))
			if err != nil {
				bailf("failed to decode message on %s: %v", channel.Topic, err)
			}
			out.Reset()
			if err := codec.transcoder.Transcode(out, record); err != nil {
				bailf("failed to transcode message on %s: %v", channel.Topic, err)
			}
			if inspectPretty {
				indented := &bytes.Buffer{}
				if err := json.Indent(indented, out.Bytes(), "", "  "); err != nil {
					bailf("failed to indent output: %v", err)
				}
				fmt.Printf("%d %s %s\n", msg.LogTime, channel.Topic, indented.String())
				continue
			}
			fmt.Printf("%d %s %s\n", msg.LogTime, channel.Topic, out.String())
		}
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.PersistentFlags().StringVarP(&inspectTopic, "topic", "t", "", "restrict output to one topic")
	inspectCmd.PersistentFlags().BoolVarP(&inspectPretty, "pretty", "p", false, "indent JSON output")
}
