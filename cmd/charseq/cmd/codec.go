package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/ssargent/charseq/pkg/codec"
	"github.com/ssargent/charseq/pkg/text"
)

func newHexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hex [text]",
		Short: "Dump bytes as uppercase hex",
		Long: `Dump the UTF-8 bytes of the argument, or of stdin when no argument
is given, as uppercase hexadecimal with two digits per byte.

Example:
  charseq hex "hi!"
  printf '\x00\x0a\xff' | charseq hex`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			if len(args) == 1 {
				data = []byte(args[0])
			} else {
				var err error
				if data, err = io.ReadAll(cmd.InOrStdin()); err != nil {
					return errors.Wrap(err, "failed to read stdin")
				}
			}

			seq, err := text.HexString(data, 0, len(data))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), seq)
			return nil
		},
	}
}

func fieldFlags(cmd *cobra.Command) {
	cmd.Flags().Int("width", 32, "Field width in bits (16 or 32)")
	cmd.Flags().String("order", "big", "Byte order (big or little; little is 16-bit only)")
}

func fieldFromFlags(cmd *cobra.Command) (codec.Field, error) {
	width, _ := cmd.Flags().GetInt("width")
	order, _ := cmd.Flags().GetString("order")

	o, err := codec.ParseByteOrder(order)
	if err != nil {
		return codec.Field{}, err
	}
	return codec.Field{Width: width, Order: o}, nil
}

func newEncodeCmd() *cobra.Command {
	encodeCmd := &cobra.Command{
		Use:   "encode <value>",
		Short: "Encode a signed integer as a fixed-width field",
		Long: `Encode a signed integer and print the field as hex.

Example:
  charseq encode 16909060
  charseq encode -2 --width 16 --order little`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseInt(args[0], 0, 64)
			if err != nil {
				return errors.Wrapf(err, "invalid integer %q", args[0])
			}
			field, err := fieldFromFlags(cmd)
			if err != nil {
				return err
			}

			buf, err := field.Encode(value)
			if err != nil {
				return err
			}
			hex, err := codec.ToHexString(buf, 0, len(buf))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex)
			return nil
		},
	}
	fieldFlags(encodeCmd)
	return encodeCmd
}

func newDecodeCmd() *cobra.Command {
	decodeCmd := &cobra.Command{
		Use:   "decode <hex>",
		Short: "Decode a fixed-width signed integer from a hex dump",
		Long: `Decode a signed integer stored at --offset in a hex dump.

Example:
  charseq decode 01020304
  charseq decode AA3412 --offset 1 --width 16 --order little`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			offset, _ := cmd.Flags().GetInt("offset")
			field, err := fieldFromFlags(cmd)
			if err != nil {
				return err
			}

			buf, err := codec.DecodeHex(args[0])
			if err != nil {
				return err
			}
			value, err := field.Decode(buf, offset)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
	fieldFlags(decodeCmd)
	decodeCmd.Flags().Int("offset", 0, "Byte offset of the field")
	return decodeCmd
}
