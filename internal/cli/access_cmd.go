package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/slotboard/internal/cli/formatter"
	"github.com/alexanderramin/slotboard/internal/domain"
)

func newAccessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "access [role]",
		Short: "Show what each role may see",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			roles := domain.AllRoles()
			if len(args) == 1 {
				r, err := domain.ParseRole(args[0])
				if err != nil {
					return err
				}
				roles = []domain.Role{r}
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAccess(roles))
			return nil
		},
	}
}
