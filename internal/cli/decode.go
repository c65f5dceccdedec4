package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"interbank/internal/conversion"
	"interbank/pkg/cci"
)

// DecodeCmd returns the decode command.
func DecodeCmd(svc *conversion.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <cci>",
		Short: "Decode a CCI into bank and domestic account number",
		Long: `Decode a CCI into bank and domestic account number.

Dashes and spaces in the input are ignored. BCP codes also report the
currency and the account kind.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			md, err := svc.Decode(cmd.Context(), cci.Clean(args[0]))
			if err != nil {
				return err
			}
			code := cci.CCI(md.CCI)

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(md)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Bank:\t%s (%s)\n", color.New(color.Bold).Sprint(md.Bank), md.Bank.Code())
			fmt.Fprintf(w, "Account:\t%s\n", md.AccountNumber)
			fmt.Fprintf(w, "CCI:\t%s\n", code.Formatted())
			if md.BCPDetails != nil {
				fmt.Fprintf(w, "Currency:\t%s\n", md.Currency)
				fmt.Fprintf(w, "Type:\t%s\n", md.Type)
			}
			return w.Flush()
		},
	}

	cmd.Flags().Bool("json", false, "Print the metadata as JSON")

	return cmd
}

// IdentifyCmd returns the identify command.
func IdentifyCmd(svc *conversion.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "identify <cci>",
		Short: "Print the bank that issued a CCI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bank, err := svc.Identify(cmd.Context(), cci.Clean(args[0]))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), bank)
			return err
		},
	}
}

// VerifyCmd returns the verify command.
func VerifyCmd(svc *conversion.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <cci>",
		Short: "Check the two check digits of a BCP CCI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := cci.CCI(cci.Clean(args[0]))
			if err := svc.Verify(cmd.Context(), code.String()); err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", failMark, code.Formatted())
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s check digits %s are valid\n", okMark, code.Formatted(), code.CheckDigits())
			return err
		},
	}
}

// BanksCmd returns the banks command.
func BanksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "banks [name]",
		Short: "List the supported banks and their codes",
		Long: `List the supported banks and their codes.

With a name, print only the code of that bank. Common aliases such as
"interbank", "scotia", "bn" or "mibanco" are accepted, in any case.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				bank, err := cci.ParseBank(args[0])
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), bank.Code())
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "CODE\tBANK")
			for _, b := range cci.Banks() {
				fmt.Fprintf(w, "%s\t%s\n", b.Code, b.Bank)
			}
			return w.Flush()
		},
	}
}
