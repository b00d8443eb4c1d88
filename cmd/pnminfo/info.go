package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	pnm "github.com/ajroetker/go-pnm"
)

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Print the header fields of a P6 file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		img, err := load(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("format:  %s\n", img.Format())
		fmt.Printf("width:   %d\n", img.Width())
		fmt.Printf("height:  %d\n", img.Height())
		fmt.Printf("maxval:  %d\n", img.MaxVal())
		if c := img.Comment(); c != "" {
			fmt.Printf("comment: %s\n", c)
		}
		return nil
	},
}

// load reads a file and parses it, keeping the parse error's byte
// position and offending byte in the message for malformed files.
func load(path string) (*pnm.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	img, err := pnm.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
