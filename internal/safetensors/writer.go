package safetensors

import (
	"encoding/binary"
	"encoding/json"
	"io"
	"os"
	"sort"

	"github.com/pkg/errors"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/born-ml/ndarray/internal/tensor"
)

// Write encodes arrays as dtype and writes them to w.
//
// Arrays are stored in alphabetical order by name; the metadata entry, if
// any, comes first in the header.
func Write(w io.Writer, arrays map[string]*tensor.Array, dtype DType, metadata map[string]string) error {
	if dtype.Size() == 0 {
		return tensor.ShapeErrorf("safetensors: unsupported dtype %q", dtype)
	}

	names := make([]string, 0, len(arrays))
	for name := range arrays {
		if name == metadataKey {
			return tensor.ShapeErrorf("safetensors: %q is reserved", name)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	header := orderedmap.New[string, any]()
	if len(metadata) > 0 {
		header.Set(metadataKey, metadata)
	}

	var offset int64
	for _, name := range names {
		a := arrays[name]
		size := int64(a.Len() * dtype.Size())
		header.Set(name, Info{
			DType:       dtype,
			Shape:       a.Shape(),
			DataOffsets: [2]int64{offset, offset + size},
		})
		offset += size
	}

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return errors.Wrap(err, "safetensors: marshal header")
	}
	if err := binary.Write(w, binary.LittleEndian, uint64(len(headerJSON))); err != nil {
		return errors.Wrap(err, "safetensors: write header size")
	}
	if _, err := w.Write(headerJSON); err != nil {
		return errors.Wrap(err, "safetensors: write header")
	}

	for _, name := range names {
		if _, err := w.Write(encode(dtype, arrays[name].Data())); err != nil {
			return errors.Wrapf(err, "safetensors: write %s", name)
		}
	}
	return nil
}

// WriteFile writes arrays to the file at path.
func WriteFile(path string, arrays map[string]*tensor.Array, dtype DType, metadata map[string]string) error {
	//nolint:gosec // G304: path comes from the caller
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "safetensors: create file")
	}
	if err := Write(file, arrays, dtype, metadata); err != nil {
		_ = file.Close() // Best effort close on error
		return err
	}
	return file.Close()
}
