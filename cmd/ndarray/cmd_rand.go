package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/born-ml/ndarray"
)

func newRandCmd() *cobra.Command {
	var (
		shape     []int
		dist      string
		seed      uint64
		mean, std float32
		lo, hi    float32
	)

	randCmd := &cobra.Command{
		Use:   "rand",
		Short: "Print a random array",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("seed") {
				ndarray.Seed(seed)
			}

			var (
				x   *ndarray.NdArray
				err error
			)
			switch dist {
			case "uniform":
				x, err = ndarray.RandBetween(shape, lo, hi)
			case "normal":
				x, err = ndarray.Normal(shape, mean, std)
			default:
				return errors.Errorf("unknown distribution %q (want uniform or normal)", dist)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), x)
			return nil
		},
	}

	randCmd.Flags().IntSliceVar(&shape, "shape", []int{2, 3}, "Array shape")
	randCmd.Flags().StringVar(&dist, "dist", "uniform", "Distribution: uniform or normal")
	randCmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for a reproducible draw")
	randCmd.Flags().Float32Var(&mean, "mean", 0, "Mean of the normal distribution")
	randCmd.Flags().Float32Var(&std, "std", 1, "Standard deviation of the normal distribution")
	randCmd.Flags().Float32Var(&lo, "min", 0, "Lower bound of the uniform distribution")
	randCmd.Flags().Float32Var(&hi, "max", 1, "Upper bound of the uniform distribution")
	return randCmd
}
