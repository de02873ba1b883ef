package improve365

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/perihassanzadeh/improve365/internal/model"
	"github.com/perihassanzadeh/improve365/internal/service"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize local improve365 database",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd.Context(), func(e *env) error {
			today := timeNow().Format("2006-01-02")
			if _, err := service.SetConfigOnce(e.db, service.ConfigJoinDate, today); err != nil {
				return err
			}
			joined, _, err := service.GetConfig(e.db, service.ConfigJoinDate)
			if err != nil {
				return err
			}
			if err := e.store.UpdateUser(cmd.Context(), model.UserPatch{JoinDate: &joined}); err != nil {
				return err
			}
			path, err := resolveDBPath(e.cfg)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized improve365 database at %s\n", path)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
