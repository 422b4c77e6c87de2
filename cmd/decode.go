package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/crumbline/pkg/logger"
	"github.com/oakwood-commons/crumbline/pkg/textdecode"
)

const (
	decodeModeStrict  = "strict"
	decodeModeDisplay = "display"
	decodeModeSafe    = "safe"
)

var (
	decodeMode     string
	decodeEncoding string
)

var decodeCmd = &cobra.Command{
	Use:   "decode [FILE|-]",
	Short: "Convert raw bytes to displayable text",
	Long: `Read bytes from FILE (or stdin) and print them as UTF-8 text.

  strict   fail on the first byte sequence that does not decode
  display  replace undecodable bytes with <XX> tokens (default)
  safe     never fail; fall back to the locale encoding, then to a
           description of the failure

--encoding overrides the locale encoding (LC_ALL, LC_CTYPE, LANG) used by
strict and display.`,
	Example: "\n  printf 'caf\\xe9' | crumbline decode\n  crumbline decode --mode strict notes.txt\n  crumbline decode --encoding shift_jis legacy.txt\n",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readDecodeInput(cmd, args)
		if err != nil {
			return err
		}

		enc := textdecode.PreferredEncoding()
		if cmd.Flags().Changed("encoding") {
			if enc, err = textdecode.LookupEncoding(decodeEncoding); err != nil {
				return usageError(fmt.Errorf("unknown encoding %q: %w", decodeEncoding, err))
			}
		}
		logger.FromContext(rootCtx).V(1).Info("Decoding input", "mode", decodeMode, "encoding", enc.Name, "bytes", len(data))

		var text string
		switch decodeMode {
		case decodeModeStrict:
			text, err = textdecode.StrictWith(enc, data)
			if err != nil {
				return reportFailure(cmd.ErrOrStderr(), err)
			}
		case decodeModeDisplay:
			if text, err = textdecode.DisplayWith(enc, data); err != nil {
				return err
			}
		case decodeModeSafe:
			text = textdecode.Safe(data)
		default:
			return usageError(fmt.Errorf("invalid --mode %q (use strict|display|safe)", decodeMode))
		}
		_, err = io.WriteString(cmd.OutOrStdout(), text)
		return err
	},
}

func readDecodeInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, usageError(err)
	}
	return data, nil
}

func init() { //nolint:gochecknoinits
	decodeCmd.Flags().StringVar(&decodeMode, "mode", decodeModeDisplay, "decode mode: strict|display|safe")
	decodeCmd.Flags().StringVar(&decodeEncoding, "encoding", "", "source encoding (default from locale)")
}
