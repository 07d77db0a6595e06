package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/foldprint/foldprint/pkg/errors"
	"github.com/foldprint/foldprint/pkg/layout"
)

// inspectResult is the JSON document emitted by the inspect command.
type inspectResult struct {
	Geometry  layout.Geometry  `json:"geometry"`
	Placement layout.Placement `json:"placement"`
}

// inspectCommand creates the inspect command for debugging placement geometry.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		output     string
		logoSizeMM float64
		marginMM   float64
	)

	cmd := &cobra.Command{
		Use:   "inspect [name]",
		Short: "Print the computed placement for one name as JSON",
		Long: `Print the computed placement for one name as JSON.

The inspect command runs the layout engine for a single name and prints
the resulting coordinates: logo rectangles, text anchors, rotations and
font sizes for both halves of the page. Coordinates are in points with
the origin at the bottom-left corner of the page.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(args[0], logoSizeMM, marginMM, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write JSON to file instead of stdout")
	cmd.Flags().Float64Var(&logoSizeMM, "logo-size-mm", 30, "logo square side in millimetres")
	cmd.Flags().Float64Var(&marginMM, "margin-mm", 10, "logo inset from page edges in millimetres")

	return cmd
}

// runInspect computes and prints the placement for one name.
func (c *CLI) runInspect(name string, logoSizeMM, marginMM float64, output string) error {
	if err := errors.ValidateName(name); err != nil {
		return err
	}

	geo := layout.A4()
	spec := layout.LogoSpec{Size: layout.MM(logoSizeMM), Margin: layout.MM(marginMM)}
	result := inspectResult{
		Geometry:  geo,
		Placement: layout.Plan(geo, spec, layout.DefaultFontTiers(), name),
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "marshal placement")
	}

	if output == "" {
		fmt.Println(string(data))
		return nil
	}

	if err := os.WriteFile(output, append(data, '\n'), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidOutput, err, "write %s", output)
	}
	printFile(output)
	return nil
}
