package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/chartgeom/pkg/chart"
	"github.com/matzehuels/chartgeom/pkg/errors"
)

// Supported file formats.
const (
	FormatJSON = "json"
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// DefaultName names the dataset of a bare JSON array file.
const DefaultName = "default"

// Dataset is one named series of a dashboard file.
type Dataset struct {
	Name  string
	Kind  chart.Kind // empty when the file does not say
	Title string
	Data  []chart.Datum

	// Records is the number of raw records before coercion.
	Records int
}

// File is a decoded dashboard file.
type File struct {
	Datasets []Dataset
}

type rawFile struct {
	Datasets []rawDataset `json:"datasets" toml:"datasets" yaml:"datasets"`
}

type rawDataset struct {
	Name  string `json:"name" toml:"name" yaml:"name"`
	Kind  string `json:"kind" toml:"kind" yaml:"kind"`
	Title string `json:"title" toml:"title" yaml:"title"`
	Data  any    `json:"data" toml:"data" yaml:"data"`
}

// FormatFromPath infers the file format from the extension of path.
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported dataset file %q (use .json, .toml, .yaml or .yml)", filepath.Base(path))
}

// Load reads and decodes the dashboard file at path.
func Load(path string) (*File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f, format)
}

// Read decodes a dashboard file of the given format from r.
// Read does not close r.
func Read(r io.Reader, format string) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	var raw rawFile
	switch format {
	case FormatJSON:
		raw, err = decodeJSON(data)
	case FormatTOML:
		_, err = toml.Decode(string(data), &raw)
	case FormatYAML:
		err = yaml.Unmarshal(data, &raw)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported dataset format %q", format)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDataset, err, "decode %s", format)
	}
	return build(raw)
}

func decodeJSON(data []byte) (rawFile, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		var records any
		if err := dec.Decode(&records); err != nil {
			return rawFile{}, err
		}
		return rawFile{Datasets: []rawDataset{{Name: DefaultName, Data: records}}}, nil
	}

	var raw rawFile
	err := dec.Decode(&raw)
	return raw, err
}

func build(raw rawFile) (*File, error) {
	if len(raw.Datasets) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidDataset, "file contains no datasets")
	}

	seen := make(map[string]struct{}, len(raw.Datasets))
	out := &File{Datasets: make([]Dataset, 0, len(raw.Datasets))}
	for i, rd := range raw.Datasets {
		if err := errors.ValidateDatasetName(rd.Name); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDataset, err, "dataset #%d", i+1)
		}
		if _, dup := seen[rd.Name]; dup {
			return nil, errors.New(errors.ErrCodeInvalidDataset, "duplicate dataset name %q", rd.Name)
		}
		seen[rd.Name] = struct{}{}

		ds := Dataset{
			Name:    rd.Name,
			Title:   rd.Title,
			Data:    chart.Coerce(rd.Data),
			Records: recordCount(rd.Data),
		}
		if rd.Kind != "" {
			k, err := chart.ParseKind(rd.Kind)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidChartType, err, "dataset %q", rd.Name)
			}
			ds.Kind = k
		}
		out.Datasets = append(out.Datasets, ds)
	}
	return out, nil
}

func recordCount(v any) int {
	switch s := v.(type) {
	case []any:
		return len(s)
	case []map[string]any:
		return len(s)
	}
	return 0
}

// Find returns the dataset called name.
func (f *File) Find(name string) (Dataset, error) {
	for _, ds := range f.Datasets {
		if ds.Name == name {
			return ds, nil
		}
	}
	return Dataset{}, errors.New(errors.ErrCodeDatasetNotFound, "dataset %q not found (available: %s)", name, strings.Join(f.Names(), ", "))
}

// Names returns the dataset names in sorted order.
func (f *File) Names() []string {
	names := make([]string, len(f.Datasets))
	for i, ds := range f.Datasets {
		names[i] = ds.Name
	}
	sort.Strings(names)
	return names
}

// Single returns the only dataset of a one-dataset file.
func (f *File) Single() (Dataset, bool) {
	if len(f.Datasets) == 1 {
		return f.Datasets[0], true
	}
	return Dataset{}, false
}
