package safetensors

import (
	"encoding/binary"
	"encoding/json"
	"math"
	"os"
	"sort"

	"github.com/pkg/errors"

	"github.com/born-ml/ndarray/internal/tensor"
)

// File is a parsed SafeTensors buffer.
type File struct {
	metadata map[string]string
	infos    map[string]Info
	names    []string // in data order
	data     []byte   // data section
}

// Parse reads the header of a SafeTensors buffer and validates every entry.
// Malformed input returns an error wrapping tensor.ErrDecode.
func Parse(buf []byte) (*File, error) {
	if len(buf) < 8 {
		return nil, decodeErrorf("buffer of %d bytes has no header size", len(buf))
	}
	headerSize := binary.LittleEndian.Uint64(buf)
	if headerSize > maxHeaderSize || headerSize > uint64(len(buf)-8) {
		return nil, decodeErrorf("invalid header size %d for %d bytes", headerSize, len(buf))
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(buf[8:8+headerSize], &raw); err != nil {
		return nil, decodeErrorf("parse header: %v", err)
	}

	f := &File{
		infos: make(map[string]Info, len(raw)),
		data:  buf[8+headerSize:],
	}
	for name, value := range raw {
		if name == metadataKey {
			if err := json.Unmarshal(value, &f.metadata); err != nil {
				return nil, decodeErrorf("parse metadata: %v", err)
			}
			continue
		}
		var info Info
		if err := json.Unmarshal(value, &info); err != nil {
			return nil, decodeErrorf("parse %s: %v", name, err)
		}
		if err := f.validate(name, info); err != nil {
			return nil, err
		}
		f.infos[name] = info
		f.names = append(f.names, name)
	}

	sort.Slice(f.names, func(i, j int) bool {
		return f.infos[f.names[i]].DataOffsets[0] < f.infos[f.names[j]].DataOffsets[0]
	})
	return f, nil
}

func (f *File) validate(name string, info Info) error {
	if info.DType.Size() == 0 {
		return decodeErrorf("%s: unsupported dtype %q", name, info.DType)
	}
	if err := tensor.Shape(info.Shape).Validate(); err != nil {
		return decodeErrorf("%s: %v", name, err)
	}
	start, end := info.DataOffsets[0], info.DataOffsets[1]
	if start < 0 || end < start || end > int64(len(f.data)) {
		return decodeErrorf("%s: data offsets [%d, %d] outside %d bytes", name, start, end, len(f.data))
	}
	n := tensor.Shape(info.Shape).NumElements()
	if n > math.MaxInt/info.DType.Size() {
		return decodeErrorf("%s: shape %v of %s overflows the byte count", name, info.Shape, info.DType)
	}
	want := int64(n) * int64(info.DType.Size())
	if end-start != want {
		return decodeErrorf("%s: %d bytes for shape %v of %s, want %d", name, end-start, info.Shape, info.DType, want)
	}
	return nil
}

// ReadFile reads and parses the file at path.
func ReadFile(path string) (*File, error) {
	//nolint:gosec // G304: path comes from the caller
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "safetensors: read file")
	}
	return Parse(buf)
}

// Metadata returns the free-form metadata of the file.
func (f *File) Metadata() map[string]string {
	return f.metadata
}

// Names returns the array names in the order their data is stored.
func (f *File) Names() []string {
	return append([]string(nil), f.names...)
}

// Info returns the header entry of name.
func (f *File) Info(name string) (Info, bool) {
	info, ok := f.infos[name]
	return info, ok
}

// Array decodes the array stored under name.
func (f *File) Array(name string) (*tensor.Array, error) {
	info, ok := f.infos[name]
	if !ok {
		return nil, tensor.IndexErrorf("safetensors: no array named %q", name)
	}
	raw := f.data[info.DataOffsets[0]:info.DataOffsets[1]]
	return tensor.Wrap(decode(info.DType, raw), info.Shape)
}

// Arrays decodes every array in the file.
func (f *File) Arrays() (map[string]*tensor.Array, error) {
	out := make(map[string]*tensor.Array, len(f.names))
	for _, name := range f.names {
		a, err := f.Array(name)
		if err != nil {
			return nil, err
		}
		out[name] = a
	}
	return out, nil
}

func decodeErrorf(format string, args ...any) error {
	return errors.WithMessagef(tensor.ErrDecode, "safetensors: "+format, args...)
}
