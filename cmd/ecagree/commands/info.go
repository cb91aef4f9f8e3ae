package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/go-i2p/ec"
)

func (c *cli) newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "List supported curves and detected CPU features",
		Args:  cobra.NoArgs,
		RunE:  c.runInfo,
	}
}

func (c *cli) runInfo(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CURVE\tPRIVATE\tPUBLIC\tSHARED")
	for _, alg := range algorithms {
		curve := alg.Curve()
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", curve, curve.ElemAndScalarLen(), curve.PublicKeyLen(), alg.SharedSecretLen())
	}
	if err := w.Flush(); err != nil {
		return err
	}

	f := ec.CPUFeatures()
	fmt.Fprintf(cmd.OutOrStdout(), "cpu: aes=%t clmul=%t avx2=%t bmi2=%t adx=%t sha2=%t\n",
		f.AES, f.CarrylessMul, f.AVX2, f.BMI2, f.ADX, f.SHA2)
	return nil
}
