package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var pixelCmd = &cobra.Command{
	Use:   "pixel <file> <x> <y>",
	Short: "Print the RGB triple at a coordinate",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		img, err := load(args[0])
		if err != nil {
			return err
		}

		x, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid x coordinate %q", args[1])
		}
		y, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid y coordinate %q", args[2])
		}

		r, g, b, ok := img.PixelRGB(x, y)
		if !ok {
			return fmt.Errorf("pixel (%d, %d) is outside the %dx%d image",
				x, y, img.Width(), img.Height())
		}
		fmt.Printf("(%d, %d) = rgb(%d, %d, %d)\n", x, y, r, g, b)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pixelCmd)
}
