package cli

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"interbank/internal/conversion"
	dErrors "interbank/pkg/domain-errors"
)

// BatchCmd returns the batch command.
func BatchCmd(svc *conversion.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Convert many accounts at once",
		Long: `Read one conversion per line and print one JSON result per line, in input order.

Each line is op,value[,type] where op is bcp, bbva or decode and type is the
BCP account type. Blank lines and lines starting with # are skipped.

Example input:
  bcp,19205678912345,savings
  bbva,001101234567890123
  decode,00219210567891234533`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("file")
			strict, _ := cmd.Flags().GetBool("strict")

			in := cmd.InOrStdin()
			if path != "" && path != "-" {
				f, err := os.Open(path)
				if err != nil {
					return fmt.Errorf("failed to open batch file: %w", err)
				}
				defer f.Close()
				in = f
			}

			reqs, err := readRequests(in)
			if err != nil {
				return err
			}

			out, err := svc.ConvertBatch(cmd.Context(), reqs)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, r := range out.Results {
				if err := enc.Encode(r); err != nil {
					return err
				}
			}

			summary := fmt.Sprintf("%d converted", len(out.Results)-out.Failed)
			if out.Failed > 0 {
				summary += ", " + color.New(color.FgRed).Sprintf("%d failed", out.Failed)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "batch %s: %s\n", out.ID, summary)

			if strict && out.Failed > 0 {
				return fmt.Errorf("batch %s: %d of %d conversions failed", out.ID, out.Failed, len(out.Results))
			}
			return nil
		},
	}

	cmd.Flags().StringP("file", "f", "", "Read requests from a file instead of stdin")
	cmd.Flags().Bool("strict", false, "Exit with an error if any conversion fails")

	return cmd
}

// readRequests parses op,value[,type] records.
func readRequests(in io.Reader) ([]conversion.Request, error) {
	r := csv.NewReader(in)
	r.Comment = '#'
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	var reqs []conversion.Request
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			return reqs, nil
		}
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, "failed to read batch input: "+err.Error())
		}
		if len(rec) < 2 || len(rec) > 3 {
			line, _ := r.FieldPos(0)
			return nil, dErrors.New(dErrors.CodeInvalidInput,
				fmt.Sprintf("line %d: expected op,value[,type], got %d fields", line, len(rec)))
		}

		req := conversion.Request{
			Op:    conversion.Op(strings.TrimSpace(rec[0])),
			Value: strings.TrimSpace(rec[1]),
		}
		if len(rec) == 3 {
			req.AccountType = strings.TrimSpace(rec[2])
		}
		reqs = append(reqs, req)
	}
}
