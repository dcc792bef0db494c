package main

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gorgonia.org/vecf32"
	"k8s.io/klog/v2"

	"github.com/born-ml/ndarray/internal/safetensors"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "List the arrays stored in a SafeTensors file",
		Args:  cobra.ExactArgs(1),
		RunE:  inspectHandler,
	}
}

func inspectHandler(cmd *cobra.Command, args []string) error {
	f, err := safetensors.ReadFile(args[0])
	if err != nil {
		return err
	}
	klog.FromContext(cmd.Context()).V(1).Info("Read safetensors file", "path", args[0], "arrays", len(f.Names()))

	var data [][]string
	for _, name := range f.Names() {
		info, _ := f.Info(name)
		a, err := f.Array(name)
		if err != nil {
			return err
		}
		data = append(data, []string{
			name,
			string(info.DType),
			fmt.Sprint(info.Shape),
			strconv.FormatFloat(float64(vecf32.Sum(a.Data())), 'g', -1, 32),
		})
	}

	w := cmd.OutOrStdout()
	metadata := f.Metadata()
	keys := make([]string, 0, len(metadata))
	for key := range metadata {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	for _, key := range keys {
		fmt.Fprintf(w, "%s: %s\n", key, metadata[key])
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"NAME", "DTYPE", "SHAPE", "SUM"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()
	return nil
}
