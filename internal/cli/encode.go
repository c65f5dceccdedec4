package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"interbank/internal/conversion"
	"interbank/pkg/cci"
)

// EncodeCmd returns the encode command with one subcommand per supported bank.
func EncodeCmd(svc *conversion.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode a domestic account number as a CCI",
	}
	cmd.AddCommand(encodeBCPCmd(svc))
	cmd.AddCommand(encodeBBVACmd(svc))
	return cmd
}

func encodeBCPCmd(svc *conversion.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bcp <account-number>",
		Short: "Encode a 14-digit BCP account number",
		Example: `  cci encode bcp 19205678912345 --type savings
  cci encode bcp 19205678912345 -t corriente --formatted`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rawType, _ := cmd.Flags().GetString("type")
			accountType, err := cci.ParseAccountType(rawType)
			if err != nil {
				return err
			}
			code, err := svc.EncodeBCP(cmd.Context(), args[0], accountType)
			if err != nil {
				return err
			}
			return printCode(cmd, code)
		},
	}

	cmd.Flags().StringP("type", "t", "", "Account type: savings, checking or cts (1, 2, 3 also accepted)")
	cmd.Flags().Bool("formatted", false, "Print the code as XXX-XXX-XXXXXXXXXXXX-XX")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func encodeBBVACmd(svc *conversion.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bbva <account-number>",
		Short: "Encode an 18- or 20-digit BBVA account number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := svc.EncodeBBVA(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printCode(cmd, code)
		},
	}

	cmd.Flags().Bool("formatted", false, "Print the code as XXX-XXX-XXXXXXXXXXXX-XX")

	return cmd
}

func printCode(cmd *cobra.Command, code string) error {
	if formatted, _ := cmd.Flags().GetBool("formatted"); formatted {
		code = cci.CCI(code).Formatted()
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), code)
	return err
}
