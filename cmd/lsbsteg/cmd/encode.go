package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/yyyoichi/lsbsteg"
	"github.com/yyyoichi/lsbsteg/internal/fidelity"
	"github.com/yyyoichi/lsbsteg/internal/imageio"
	"github.com/yyyoichi/lsbsteg/message"
)

var errMessageSource = errors.New("give the message either as an argument or with --message-file")

func newEncodeCmd() *cobra.Command {
	encodeCmd := &cobra.Command{
		Use:     "encode <input> <output> [message]",
		Aliases: []string{"e"},
		Short:   "Hide a message in an image",
		Long: `encode reads <input>, stores the message in the low-order bits of its
color channels and writes the result to <output>.

Channels not needed by the message have their low-order bits cleared and every
pixel becomes opaque. A message longer than the image capacity is cut short
unless --strict is set.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: runEncode,
	}
	encodeCmd.Flags().Bool("strict", false, "fail instead of truncating a message that does not fit")
	encodeCmd.Flags().StringP("message-file", "f", "", "read the message bytes from a file")
	encodeCmd.Flags().Bool("report", false, "print MSE and PSNR of the output against the input")
	return encodeCmd
}

func runEncode(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	msg, err := readMessage(cmd, args)
	if err != nil {
		return err
	}
	input, output := args[0], args[1]

	// fail before doing any work if the output cannot hold the payload
	if _, err := imageio.FormatFromPath(output); err != nil {
		return err
	}

	s, err := lsbsteg.New(cfg.options()...)
	if err != nil {
		return err
	}
	src, format, err := imageio.Read(input)
	if err != nil {
		return err
	}
	capacity := s.Capacity(src.Bounds())
	log.Printf("read %s (%s, %dx%d), capacity %d bytes at %d bits per channel",
		input, format, capacity.Width, capacity.Height, capacity.Bytes, capacity.BitsPerChannel)
	if msg.BitLen() > capacity.Bits && !cfg.Strict {
		log.Printf("message is %d bytes, only the first %d are stored", msg.Len(), capacity.Bytes)
	}

	dist, err := s.Encode(cmd.Context(), src, msg)
	if err != nil {
		return err
	}
	if err := imageio.Write(dist, output); err != nil {
		return err
	}
	log.Printf("wrote %s", output)

	if report, _ := cmd.Flags().GetBool("report"); report {
		r, err := fidelity.Compare(src, dist)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "MSE:  %.4f (R %.4f, G %.4f, B %.4f)\n", r.MSE, r.ChannelMSE[0], r.ChannelMSE[1], r.ChannelMSE[2])
		fmt.Fprintf(out, "PSNR: %.2f dB (luma %.2f dB)\n", r.PSNR, r.LumaPSNR)
		fmt.Fprintf(out, "changed channels: %d, max diff: %.0f\n", r.Changed, r.MaxDiff)
	}
	return nil
}

func readMessage(cmd *cobra.Command, args []string) (*message.Message, error) {
	path, _ := cmd.Flags().GetString("message-file")
	switch {
	case path != "" && len(args) == 3, path == "" && len(args) == 2:
		return nil, errMessageSource
	case path != "":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read message file: %w", err)
		}
		return message.NewBytes(data), nil
	default:
		return message.NewString(args[2]), nil
	}
}
