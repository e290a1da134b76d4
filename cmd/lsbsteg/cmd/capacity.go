package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yyyoichi/lsbsteg"
	"github.com/yyyoichi/lsbsteg/internal/imageio"
)

func newCapacityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "capacity <input>",
		Short: "Show how many bytes an image can hold",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			src, _, err := imageio.Read(args[0])
			if err != nil {
				return err
			}
			c, err := lsbsteg.Capacity(src.Bounds(), cfg.Bits)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "size:     %dx%d\n", c.Width, c.Height)
			fmt.Fprintf(out, "channels: %d\n", c.Slots)
			fmt.Fprintf(out, "bits:     %d (%d per channel)\n", c.Bits, c.BitsPerChannel)
			fmt.Fprintf(out, "bytes:    %d\n", c.Bytes)
			return nil
		},
	}
}
