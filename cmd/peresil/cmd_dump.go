package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seritools/peresil"
)

func newDumpCmd() *cobra.Command {
	var typeName string
	var order string
	var count int

	cmd := &cobra.Command{
		Use:          "dump <file>",
		Short:        "Decode fixed-width numeric values from a binary file",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			var big bool
			switch order {
			case "le":
			case "be":
				big = true
			default:
				return fmt.Errorf("unknown byte order: %s (expected le or be)", order)
			}

			decode, err := decoderFor(typeName, big)
			if err != nil {
				return err
			}

			pt := peresil.NewBytePoint(data)
			decoded := 0
			for count == 0 || decoded < count {
				text, next, ok := decode(pt)
				if !ok {
					break
				}
				fmt.Printf("%08x  %s\n", pt.Offset, text)
				pt = next
				decoded++
			}
			log.Infof("decoded %d %s %s values, %d bytes left", decoded, order, typeName, len(pt.Rest))
			return nil
		},
	}

	cmd.Flags().StringVarP(&typeName, "type", "t", "u32", "value type (u8, u16, u32, u64, u128, i8..i128, f32, f64)")
	cmd.Flags().StringVar(&order, "order", "be", "byte order (le, be)")
	cmd.Flags().IntVarP(&count, "count", "n", 0, "values to decode (0 = until input runs out)")

	return cmd
}

type decodeStep func(peresil.BytePoint) (string, peresil.BytePoint, bool)

// pick builds a decodeStep from the two byte-order variants of one
// decoder, stringifying the value for display.
func pick[T any](
	le, be func(peresil.BytePoint) peresil.Progress[peresil.BytePoint, T, peresil.NoMatch],
	big bool,
) decodeStep {
	f := le
	if big {
		f = be
	}
	return func(p peresil.BytePoint) (string, peresil.BytePoint, bool) {
		r := f(p)
		v, ok := r.Status.Value()
		if !ok {
			return "", p, false
		}
		return fmt.Sprint(v), r.Point, true
	}
}

func decoderFor(name string, big bool) (decodeStep, error) {
	switch name {
	case "u8":
		return pick(peresil.BytePoint.U8LE, peresil.BytePoint.U8BE, big), nil
	case "u16":
		return pick(peresil.BytePoint.U16LE, peresil.BytePoint.U16BE, big), nil
	case "u32":
		return pick(peresil.BytePoint.U32LE, peresil.BytePoint.U32BE, big), nil
	case "u64":
		return pick(peresil.BytePoint.U64LE, peresil.BytePoint.U64BE, big), nil
	case "u128":
		return pick(peresil.BytePoint.U128LE, peresil.BytePoint.U128BE, big), nil
	case "i8":
		return pick(peresil.BytePoint.I8LE, peresil.BytePoint.I8BE, big), nil
	case "i16":
		return pick(peresil.BytePoint.I16LE, peresil.BytePoint.I16BE, big), nil
	case "i32":
		return pick(peresil.BytePoint.I32LE, peresil.BytePoint.I32BE, big), nil
	case "i64":
		return pick(peresil.BytePoint.I64LE, peresil.BytePoint.I64BE, big), nil
	case "i128":
		return pick(peresil.BytePoint.I128LE, peresil.BytePoint.I128BE, big), nil
	case "f32":
		return pick(peresil.BytePoint.F32LE, peresil.BytePoint.F32BE, big), nil
	case "f64":
		return pick(peresil.BytePoint.F64LE, peresil.BytePoint.F64BE, big), nil
	}
	return nil, fmt.Errorf("unknown value type: %s", name)
}
