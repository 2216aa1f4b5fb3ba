package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ogiekako/ebuildls/ebuild/parser"
	"github.com/ogiekako/ebuildls/format"
)

func newParseCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse <file>...",
		Short: "Parse ebuild files and dump the extracted assignments",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			docs := make([]*parser.Document, len(args))
			errs := make([]error, len(args))

			g, gctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(runtime.GOMAXPROCS(0))
			for i, filename := range args {
				g.Go(func() error {
					if err := gctx.Err(); err != nil {
						return err
					}
					data, err := os.ReadFile(filename)
					if err != nil {
						errs[i] = err
						return nil
					}
					doc, err := parser.Parse(string(data))
					if err != nil {
						errs[i] = fmt.Errorf("%s: %w", filename, err)
						return nil
					}
					docs[i] = doc
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			failed := 0
			for i := range args {
				if errs[i] != nil {
					fmt.Fprintln(os.Stderr, errs[i])
					failed++
					continue
				}

				var encoder format.Encoder
				switch outputFormat {
				case "json":
					encoder = format.NewJSONEncoder(os.Stdout)
				case "text":
					encoder = format.NewLineEncoder(os.Stdout)
				default:
					return fmt.Errorf("unknown format: %s (expected json or text)", outputFormat)
				}

				if err := encoder.Encode(docs[i]); err != nil {
					return fmt.Errorf("encode: %w", err)
				}
				if outputFormat == "json" {
					fmt.Println()
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, text)")

	return cmd
}
