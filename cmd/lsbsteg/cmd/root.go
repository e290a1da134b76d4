package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/yyyoichi/lsbsteg"
)

var (
	// Version is the version of the binary.
	Version = "0.0.0"
)

const envPrefix = "LSBSTEG"

// Config holds the settings shared by all commands.
// Values come from flags, then LSBSTEG_* environment variables, then the config file.
type Config struct {
	Bits    int  `mapstructure:"bits"`
	Workers int  `mapstructure:"workers"`
	Strict  bool `mapstructure:"strict"`
	Trim    bool `mapstructure:"trim"`
}

func defaultConfig() *Config {
	return &Config{
		Bits:    lsbsteg.DefaultBitsPerChannel,
		Workers: 1,
	}
}

func (c *Config) options() []lsbsteg.Option {
	opts := []lsbsteg.Option{
		lsbsteg.WithBitsPerChannel(c.Bits),
		lsbsteg.WithWorkers(c.Workers),
	}
	if c.Strict {
		opts = append(opts, lsbsteg.WithStrictCapacity())
	}
	return opts
}

// NewRootCmd builds the lsbsteg command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lsbsteg",
		Short: "Hide text in the low-order bits of an image",
		Long: `lsbsteg stores a message in the least significant bits of the red, green
and blue channels of every pixel, and reads it back.

The output image must use a lossless format (png, bmp or tiff).`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String("config", "", "config file (yaml, toml or json)")
	rootCmd.PersistentFlags().IntP("bits", "n", lsbsteg.DefaultBitsPerChannel,
		"low-order bits per color channel (1, 2, 4 or 8); more bits hold more data but change the image more")
	rootCmd.PersistentFlags().Int("workers", 1, "number of goroutines processing image rows")

	rootCmd.AddCommand(newEncodeCmd(), newDecodeCmd(), newCapacityCmd())
	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
		os.Exit(1)
	}
}

// loadConfig merges the config file, the environment and the flags of cmd.
func loadConfig(cmd *cobra.Command) (*Config, error) {
	vip := viper.New()
	vip.SetEnvPrefix(envPrefix)
	vip.AutomaticEnv()

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		vip.SetConfigFile(path)
		if err := vip.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" || bindErr != nil {
			return
		}
		bindErr = vip.BindPFlag(f.Name, f)
	})
	if bindErr != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", bindErr)
	}

	cfg := defaultConfig()
	if err := vip.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
