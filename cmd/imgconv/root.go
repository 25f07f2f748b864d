package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"imgconv/contracts"
	"imgconv/converter"
	"imgconv/files_manager"
)

// version is set at build time via ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "imgconv <input...> <output>",
	Short: "Convert images between formats or into an image-based PDF",
	Long: `imgconv decodes one or more input images (JPEG, PNG, GIF, BMP, TIFF,
WebP, HEIF/HEIC) and writes either a single converted image or a multi-page
PDF with one full-bleed page per input, in input order.

Examples:
  images to pdf:

    imgconv *.jpg out.pdf
    imgconv --adjust-widths --grayscale *.jpg out.pdf

  HEIF photo to JPEG:

    imgconv IMG_0001.heic IMG_0001.jpg`,
	Args:          cobra.MinimumNArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().Bool("grayscale", false, "convert images to single-channel luminance (drops alpha)")
	rootCmd.Flags().Bool("adjust-widths", false, "rescale every PDF page to one shared width (ignored for image output)")
	rootCmd.Flags().Int("width", 0, "target width in pixels for --adjust-widths (default: narrowest input)")
	rootCmd.Flags().Int("quality", 0, "JPEG quality 1-100 for image output, default 75; does not apply to PDF output")
	rootCmd.Flags().Bool("use-dpi", false, "size PDF pages from the embedded image resolution instead of 1pt per pixel")
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./imgconv.yaml or ~/.config/imgconv/config.yaml)")

	viper.BindPFlag("grayscale", rootCmd.Flags().Lookup("grayscale"))
	viper.BindPFlag("adjust-widths", rootCmd.Flags().Lookup("adjust-widths"))
	viper.BindPFlag("width", rootCmd.Flags().Lookup("width"))
	viper.BindPFlag("quality", rootCmd.Flags().Lookup("quality"))
	viper.BindPFlag("use-dpi", rootCmd.Flags().Lookup("use-dpi"))

	rootCmd.Version = version
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("imgconv")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "imgconv"))
		}
	}

	viper.SetEnvPrefix("IMGCONV")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputs := args[:len(args)-1]
	output := args[len(args)-1]

	if files_manager.IsPDF(output) && cmd.Flags().Changed("quality") {
		return fmt.Errorf("--quality does not apply to PDF output")
	}

	request := contracts.ConversionRequest{
		InputPaths: inputs,
		OutputPath: output,
		Parameters: contracts.InputFlags{
			Grayscale:    viper.GetBool("grayscale"),
			AdjustWidths: viper.GetBool("adjust-widths"),
			TargetWidth:  viper.GetInt("width"),
			JpegQuality:  viper.GetInt("quality"),
			UseDPI:       viper.GetBool("use-dpi"),
		},
	}

	return converter.New().Convert(request)
}
