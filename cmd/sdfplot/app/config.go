package app

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

const (
	FormatPDF  OutputFormat = "pdf"
	FormatPNG  OutputFormat = "png"
	FormatSVG  OutputFormat = "svg"
	FormatEPS  OutputFormat = "eps"
	FormatJPEG OutputFormat = "jpeg"
	FormatTIFF OutputFormat = "tiff"
)

// ErrHelp is returned when the user asked for usage only
var ErrHelp = errors.New("help requested")

type OutputFormat string

type Config struct {
	InputFile  string // measurement path without extension
	OutputFile string
	Format     OutputFormat
}

var outputFormats = map[string]OutputFormat{
	".pdf":  FormatPDF,
	".png":  FormatPNG,
	".svg":  FormatSVG,
	".eps":  FormatEPS,
	".jpg":  FormatJPEG,
	".jpeg": FormatJPEG,
	".tif":  FormatTIFF,
	".tiff": FormatTIFF,
}

func NewConfig() *Config {
	return &Config{
		Format: FormatPDF,
	}
}

// NewConfigFromCLI parses the two positional arguments: the measurement
// file without extension and the output plot file.
func NewConfigFromCLI(args []string, stderr io.Writer) (*Config, error) {
	c := NewConfig()

	var parsed bool
	cmd := &cobra.Command{
		Use:   "sdfplot inputfile outputfile",
		Short: "Plot an SDF measurement export",
		Long: `sdfplot reads an SDF measurement export (inputfile.HDR and inputfile.DAT)
and renders its frequency/amplitude plot to outputfile. The output format
follows the file extension: pdf, png, svg, eps, jpg or tif.`,
		Args:          cobra.ExactArgs(2),
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			parsed = true
			c.InputFile = args[0]
			c.OutputFile = args[1]
			return nil
		},
	}
	if args == nil {
		args = []string{} // nil makes cobra fall back to os.Args
	}
	cmd.SetArgs(args)
	cmd.SetOut(stderr)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		return nil, err
	}
	if !parsed {
		return nil, ErrHelp
	}

	var err error
	if strings.TrimSpace(c.InputFile) == "" {
		err = errors.New("input file is required")
	} else if strings.TrimSpace(c.OutputFile) == "" {
		err = errors.New("output file is required")
	} else if format, ok := outputFormats[strings.ToLower(filepath.Ext(c.OutputFile))]; !ok {
		err = fmt.Errorf("unsupported output format: '%s'", filepath.Ext(c.OutputFile))
	} else {
		c.Format = format
	}

	if err != nil {
		_ = cmd.Usage()
		return nil, err
	}
	return c, nil
}
