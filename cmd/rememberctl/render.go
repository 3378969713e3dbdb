package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/your-org/remember/internal/features"
	"github.com/your-org/remember/internal/render"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Draw a sketch from a description into a PNG file",
	RunE:  runRender,
}

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Print the keywords and features found in a description",
	RunE:  runKeywords,
}

var (
	description   string
	renderOut     string
	renderVariant int
	renderStyle   string
	renderScale   float64
)

func init() {
	for _, c := range []*cobra.Command{renderCmd, keywordsCmd} {
		c.Flags().StringVarP(&description, "description", "d", "", "spoken or typed description of the person")
		_ = c.MarkFlagRequired("description")
	}
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "sketch.png", "output PNG path")
	renderCmd.Flags().IntVar(&renderVariant, "variant", 0, "sketch variant")
	renderCmd.Flags().StringVar(&renderStyle, "style", "", "render style (default, sketchy, bold); empty picks one from the variant")
	renderCmd.Flags().Float64Var(&renderScale, "scale", 2, "output pixels per canvas unit")

	rootCmd.AddCommand(renderCmd, keywordsCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfg := render.DefaultConfig()
	cfg.Scale = renderScale
	r, err := render.New(cfg)
	if err != nil {
		return err
	}

	st := render.StyleForVariant(renderVariant)
	if renderStyle != "" {
		if st, err = render.StyleByName(renderStyle); err != nil {
			return err
		}
	}

	f := features.FromDescription(description)
	data, err := r.EncodePNGWithStyle(f, renderVariant, st)
	if err != nil {
		return fmt.Errorf("render sketch: %w", err)
	}
	if err := os.WriteFile(renderOut, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", renderOut, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", renderOut, len(data))
	return nil
}

func runKeywords(cmd *cobra.Command, _ []string) error {
	keywords := features.Extract(description)
	out := struct {
		Keywords []string                `json:"keywords"`
		Features features.SketchFeatures `json:"features"`
	}{keywords, features.Parse(keywords)}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
