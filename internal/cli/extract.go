package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/huecount/huecount/internal/colour"
	"github.com/huecount/huecount/internal/image"
)

var (
	// Extract command flags
	extractPrecision int
	extractTop       int
	extractAll       bool
	extractFormat    string
	extractOutput    string
	extractPreview   bool
	extractWhitelist string
)

// extractCmd represents the extract command.
var extractCmd = &cobra.Command{
	Use:   "extract <image>",
	Short: "Extract the dominant palette colours from an image",
	Long: `Extract the dominant colours of an image by classifying sampled pixels
against a fixed reference palette.

Pixels are sampled on a precision-sized grid: a precision of 10 inspects
every tenth pixel along each axis, a precision of 1 scans the whole image.
Each opaque sample is matched to its nearest reference colour, and the
reference palette is ranked by how many samples each colour attracted.

The image argument may be a file path, a directory (a random image is
picked) or an HTTP(S) URL.

Examples:
  # Show the top 5 palette colours of an image
  huecount extract wallpaper.jpg

  # Full scan, top 10 colours, with terminal swatches
  huecount extract --precision 1 --top 10 --preview wallpaper.png

  # Whole ranked palette as JSON
  huecount extract --all --format json wallpaper.jpg

  # Table output with hit counts and shares
  huecount extract -f table wallpaper.jpg

  # Classify against a custom palette instead of the built-in one
  huecount extract --whitelist "#cc0000,#00cc00,#0000cc" wallpaper.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	registerExtractFlags(extractCmd.Flags())
}

// registerExtractFlags binds the extract command flags to the given flag set.
func registerExtractFlags(fs *pflag.FlagSet) {
	fs.IntVarP(&extractPrecision, "precision", "p", colour.DefaultPrecision, "sampling stride in pixels (1 = full scan)")
	fs.IntVarP(&extractTop, "top", "n", colour.DefaultLength, "number of ranked colours to output")
	fs.BoolVar(&extractAll, "all", false, "output the whole ranked palette, ignoring --top")
	fs.StringVarP(&extractFormat, "format", "f", "hex", "output format (hex, rgb, int, json, table)")
	fs.StringVarP(&extractOutput, "output", "o", "", "output file (default: stdout)")
	fs.BoolVar(&extractPreview, "preview", false, "show colour swatches in terminal output")
	fs.StringVar(&extractWhitelist, "whitelist", "", "comma-separated hex colours replacing the built-in palette")
}

// runExtract executes the extract command.
func runExtract(cmd *cobra.Command, args []string) error {
	imagePath := args[0]

	if err := image.ValidateImagePath(imagePath); err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}

	config := colour.DefaultExtractorConfig()
	config.Precision = extractPrecision
	config.DefaultLength = extractTop

	if extractWhitelist != "" {
		whitelist, err := parseWhitelist(extractWhitelist)
		if err != nil {
			return fmt.Errorf("invalid whitelist: %w", err)
		}
		config.Whitelist = whitelist
	}

	extractor, err := colour.NewExtractor(config)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	resolved, err := image.ResolveImagePath(imagePath)
	if err != nil {
		return fmt.Errorf("failed to resolve image path: %w", err)
	}
	if resolved != imagePath {
		logger.Debug("resolved image path", "requested", imagePath, "resolved", resolved)
	}

	loader := image.NewSmartLoader()
	img, err := loader.Load(resolved)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	src := image.NewSource(img)
	logger.Debug("image loaded", "width", src.Width(), "height", src.Height(),
		"precision", config.Precision, "whitelist", len(config.Whitelist))

	palette, err := extractor.Classify(src)
	if err != nil {
		return fmt.Errorf("failed to classify image: %w", err)
	}

	logger.Debug("classification complete", "samples", palette.TotalHits())

	top := extractTop
	if extractAll {
		top = palette.Len()
	}

	output, err := formatPalette(palette, top, extractFormat, extractPreview)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	if extractOutput != "" {
		if err := os.WriteFile(extractOutput, []byte(output), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		logger.Debug("palette written", "file", extractOutput)
	} else {
		cmd.Print(output)
	}

	return nil
}

// parseWhitelist parses a comma-separated list of hex colours.
func parseWhitelist(list string) ([]colour.Packed, error) {
	parts := strings.Split(list, ",")
	whitelist := make([]colour.Packed, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		packed, err := colour.ParseHex(part)
		if err != nil {
			return nil, err
		}
		whitelist = append(whitelist, packed)
	}
	if len(whitelist) == 0 {
		return nil, fmt.Errorf("whitelist must contain at least one colour")
	}
	return whitelist, nil
}

// formatPalette formats the top n ranked colours according to the specified format.
func formatPalette(palette *colour.RankedPalette, n int, format string, showPreview bool) (string, error) {
	switch format {
	case "hex":
		return formatHex(palette, n, showPreview), nil
	case "rgb":
		return formatRGB(palette, n, showPreview), nil
	case "int":
		return formatInt(palette, n), nil
	case "json":
		jsonBytes, err := palette.ToJSON(n)
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(jsonBytes) + "\n", nil
	case "table":
		return formatTable(palette, n, showPreview), nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: hex, rgb, int, json, table)", format)
	}
}

// formatHex formats the ranked colours as hex codes, one per line.
func formatHex(palette *colour.RankedPalette, n int, showPreview bool) string {
	var b strings.Builder
	for _, rgb := range palette.ToRGBSlice(n) {
		if showPreview {
			b.WriteString(colour.FormatColourWithPreview(rgb, 8))
		} else {
			b.WriteString(rgb.Hex())
		}
		b.WriteString("\n")
	}
	return b.String()
}

// formatRGB formats the ranked colours as rgb(r, g, b) values, one per line.
func formatRGB(palette *colour.RankedPalette, n int, showPreview bool) string {
	var b strings.Builder
	for _, rgb := range palette.ToRGBSlice(n) {
		if showPreview {
			b.WriteString(colour.ColourPreview(rgb, 8))
			b.WriteString("  ")
		}
		b.WriteString(rgb.String())
		b.WriteString("\n")
	}
	return b.String()
}

// formatInt formats the ranked colours as packed decimal integers, one per line.
func formatInt(palette *colour.RankedPalette, n int) string {
	var b strings.Builder
	for _, packed := range palette.ToInts(n) {
		fmt.Fprintf(&b, "%d\n", packed)
	}
	return b.String()
}

// formatTable renders the ranked colours as a table with hit counts and shares.
func formatTable(palette *colour.RankedPalette, n int, showPreview bool) string {
	headers := []string{"RANK", "HEX", "RGB", "HITS", "SHARE"}
	if showPreview {
		headers = append([]string{""}, headers...)
	}

	table := NewTable(headers)
	total := palette.TotalHits()

	for i, e := range palette.TopColours(n) {
		rgb := e.Colour.RGB()
		share := 0.0
		if total > 0 {
			share = float64(e.Count) / float64(total)
		}
		row := []string{
			fmt.Sprintf("%d", i+1),
			rgb.Hex(),
			rgb.String(),
			fmt.Sprintf("%d", e.Count),
			fmt.Sprintf("%.1f%%", share*100),
		}
		if showPreview {
			row = append([]string{colour.ColourPreview(rgb, 4)}, row...)
		}
		table.AddRow(row)
	}

	return table.Render()
}
