// Package cli implements the cci command tree.
package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"interbank/internal/conversion"
)

// Version is set at build time via ldflags.
var Version = "dev"

var (
	okMark   = color.New(color.FgGreen).Sprint("✓")
	failMark = color.New(color.FgRed).Sprint("✗")
)

// NewRootCmd builds the cci command tree. Conversions go through svc so they
// are logged, counted and traced.
func NewRootCmd(svc *conversion.Service) *cobra.Command {
	root := &cobra.Command{
		Use:     "cci",
		Short:   "Convert Peruvian bank account numbers to and from CCI codes",
		Version: Version,
		Long: `cci converts domestic account numbers into the 20-digit Código de Cuenta
Interbancario (CCI) and decodes CCIs back into bank and account number.

Encoding is supported for BCP and BBVA. Decoding covers BCP, BBVA, Interbank,
Scotiabank, Banco de la Nación, Banbif and Mi Banco.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(EncodeCmd(svc))
	root.AddCommand(DecodeCmd(svc))
	root.AddCommand(IdentifyCmd(svc))
	root.AddCommand(VerifyCmd(svc))
	root.AddCommand(BanksCmd())
	root.AddCommand(BatchCmd(svc))

	return root
}
