package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/seritools/peresil/format"
	"github.com/seritools/peresil/sexpr"
)

func newParseCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:          "parse [file]",
		Short:        "Parse s-expressions from a file or stdin and dump the trees",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			var err error
			if len(args) == 1 {
				data, err = os.ReadFile(args[0])
			} else {
				data, err = io.ReadAll(os.Stdin)
			}
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			nodes, err := sexpr.ParseAll(string(data))
			if err != nil {
				return err
			}
			log.Infof("parsed %d expressions", len(nodes))

			var encoder format.Encoder
			switch outputFormat {
			case "json":
				encoder = format.NewJSONEncoder(os.Stdout)
			case "yaml":
				encoder = format.NewYAMLEncoder(os.Stdout)
			case "sexpr":
				for _, n := range nodes {
					fmt.Println(n)
				}
				return nil
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			for _, n := range nodes {
				if err := encoder.Encode(n); err != nil {
					return fmt.Errorf("encode: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, yaml, sexpr)")

	return cmd
}
