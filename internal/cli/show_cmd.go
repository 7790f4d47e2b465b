package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/slotboard/internal/cli/formatter"
	"github.com/alexanderramin/slotboard/internal/domain"
	"github.com/alexanderramin/slotboard/internal/route"
	"github.com/alexanderramin/slotboard/internal/service"
)

func newShowCmd(app *App, flags *rootFlags) *cobra.Command {
	var hard bool
	var asJSON bool
	var width int

	cmd := &cobra.Command{
		Use:   "show <path>",
		Short: "Print the screen a path shows for a role",
		Example: `  slotboard show /domain/domain1/commercials --role COO
  slotboard show /photo/3 --hard
  slotboard show /admin --role Developer --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := service.ScreenRequest{
				Path:       args[0],
				Role:       domain.Role(flags.role),
				BusinessID: flags.business,
				Load:       route.SoftLoad,
			}
			if hard {
				req.Load = route.HardLoad
			}

			scr, err := app.Screens.Screen(cmd.Context(), req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(scr)
			}
			fmt.Fprint(out, formatter.FormatScreen(scr, width))
			return nil
		},
	}

	cmd.Flags().BoolVar(&hard, "hard", false, "Resolve the path as a fresh page load")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the composed screen as JSON")
	cmd.Flags().IntVar(&width, "width", 100, "Layout width for KPI tiles")

	return cmd
}
