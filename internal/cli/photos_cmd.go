package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/slotboard/internal/cli/formatter"
)

func newPhotosCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "photos",
		Short: "List photos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPhotoList(app.Photos.List(cmd.Context())))
			return nil
		},
	}

	cmd.AddCommand(newPhotosRenameCmd(app))

	return cmd
}

func newPhotosRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <title>",
		Short: "Rename a photo",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			photo, changed, err := app.Photos.Rename(cmd.Context(), args[0], strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !changed {
				fmt.Fprintln(out, formatter.Dim("Title unchanged: "+photo.Title))
				return nil
			}
			fmt.Fprintf(out, "%s %s\n\n", formatter.StyleGreen.Render("Renamed photo "+photo.ID+":"), photo.Title)
			fmt.Fprint(out, formatter.FormatPhotoList(app.Photos.List(cmd.Context())))
			return nil
		},
	}
}
