package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/born-ml/ndarray"
)

// loadImage decodes the file at path in the given mode.
func loadImage(cmd *cobra.Command, path, mode string) (*ndarray.NdArray, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read image")
	}

	var x *ndarray.NdArray
	switch mode {
	case "rgb":
		x = ndarray.LoadImageRGB(data)
	case "rgba":
		x = ndarray.LoadImageRGBA(data)
	case "luma":
		x = ndarray.LoadImageLuma(data)
	default:
		return nil, errors.Errorf("unknown mode %q (want rgb, rgba or luma)", mode)
	}
	if x == nil {
		return nil, errors.WithMessagef(ndarray.ErrDecode, "%s", path)
	}
	klog.FromContext(cmd.Context()).V(1).Info("Decoded image", "path", path, "mode", mode, "shape", x.Shape())
	return x, nil
}

func newImageCmd() *cobra.Command {
	var mode, save, dtype string

	imageCmd := &cobra.Command{
		Use:   "image FILE",
		Short: "Decode an image and print its shape and statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := loadImage(cmd, args[0], mode)
			if err != nil {
				return err
			}
			sum := x.Sum()
			mean := float32(0)
			if x.Len() > 0 {
				mean = sum / float32(x.Len())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "shape: %v\nsum: %g\nmean: %g\n", x.Shape(), sum, mean)
			if save == "" {
				return nil
			}
			return saveArray(save, "image", x, dtype, map[string]string{"source": args[0], "mode": mode})
		},
	}

	imageCmd.Flags().StringVar(&mode, "mode", "rgb", "Pixel layout: rgb, rgba or luma")
	imageCmd.Flags().StringVar(&save, "save", "", "Write the decoded array to a SafeTensors file")
	imageCmd.Flags().StringVar(&dtype, "dtype", "F32", "Storage type for --save: F32, F16, BF16 or F64")
	return imageCmd
}

// saveArray writes x under name to a SafeTensors file at path.
func saveArray(path, name string, x *ndarray.NdArray, dtype string, metadata map[string]string) error {
	d, err := ndarray.ParseDType(dtype)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	if err := ndarray.SaveSafetensors(f, map[string]*ndarray.NdArray{name: x}, d, metadata); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func newIm2ColCmd() *cobra.Command {
	var (
		mode    string
		kernel  []int
		stride  int
		padding []int
	)

	im2colCmd := &cobra.Command{
		Use:   "im2col FILE",
		Short: "Decode an image and extract convolution windows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := loadImage(cmd, args[0], mode)
			if err != nil {
				return err
			}
			cols, err := x.Im2Col(kernel, stride, padding, 0)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "input: %v\nwindows: %v\n", x.Shape(), cols.Shape())
			return nil
		},
	}

	im2colCmd.Flags().StringVar(&mode, "mode", "rgb", "Pixel layout: rgb, rgba or luma")
	im2colCmd.Flags().IntSliceVar(&kernel, "kernel", []int{3, 3}, "Window size (height,width)")
	im2colCmd.Flags().IntVar(&stride, "stride", 1, "Window stride")
	im2colCmd.Flags().IntSliceVar(&padding, "padding", []int{0, 0}, "Padding (height,width)")
	return im2colCmd
}
