package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/yyyoichi/lsbsteg"
	"github.com/yyyoichi/lsbsteg/internal/imageio"
)

func newDecodeCmd() *cobra.Command {
	decodeCmd := &cobra.Command{
		Use:     "decode <input>",
		Aliases: []string{"d"},
		Short:   "Print the message hidden in an image",
		Long: `decode reads the low-order bits of every color channel of <input> and
prints them as text.

The image does not record the message length, so the output spans the whole
capacity and ends with zero bytes. Use --trim to drop them.`,
		Args: cobra.ExactArgs(1),
		RunE: runDecode,
	}
	decodeCmd.Flags().Bool("trim", false, "strip trailing zero bytes")
	decodeCmd.Flags().StringP("out", "o", "", "write the raw bytes to a file instead of printing")
	return decodeCmd
}

func runDecode(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	s, err := lsbsteg.New(cfg.options()...)
	if err != nil {
		return err
	}
	src, _, err := imageio.Read(args[0])
	if err != nil {
		return err
	}
	msg, err := s.Decode(cmd.Context(), src)
	if err != nil {
		return err
	}
	if cfg.Trim {
		msg = msg.Trimmed()
	}

	if path, _ := cmd.Flags().GetString("out"); path != "" {
		if err := os.WriteFile(path, msg.Bytes(), 0o644); err != nil {
			return fmt.Errorf("failed to write message: %w", err)
		}
		log.Printf("wrote %d bytes to %s", msg.Len(), path)
		return nil
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), msg.String())
	return err
}
