package account

import (
	"github.com/spf13/cobra"

	"github.com/bankctl/bankctl/internal/app"
)

func NewAccountCmd(application *app.App) *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Create, list and update bank accounts",
		Long:  `Create, list and update bank accounts`,
	}

	accountCmd.AddCommand(NewCreateCmd(application))
	accountCmd.AddCommand(NewListCmd(application))
	accountCmd.AddCommand(NewUpdateCmd(application))

	return accountCmd
}
