package vectors

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/tidwall/jsonc"

	"github.com/athapa23/ece545-f22-prj/pkg/xtea"
)

var (
	// ErrUnsupportedFormat is returned for a vector file with an unknown extension.
	ErrUnsupportedFormat = errors.New("unsupported vector file format")
	// ErrUnquotedHex is returned when a YAML hex value is not a quoted string.
	ErrUnquotedHex = errors.New("hex values must be quoted strings")
)

// hexString is a hex value kept as written. In YAML it must be a quoted string:
// an unquoted 0x12 would otherwise arrive as the integer 18.
type hexString string

// UnmarshalYAML implements yaml.BytesUnmarshaler.
func (h *hexString) UnmarshalYAML(data []byte) error {
	var value any
	if err := yaml.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("decoding hex value: %w", err)
	}

	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("%w: got %v", ErrUnquotedHex, value)
	}

	*h = hexString(s)

	return nil
}

// record is the on-disk form of a vector. Either Message or High/Low is set.
type record struct {
	Name    string    `json:"name"    yaml:"name"`
	High    hexString `json:"high"    yaml:"high"`
	Low     hexString `json:"low"     yaml:"low"`
	Message hexString `json:"message" yaml:"message"`
	Expect  hexString `json:"expect"  yaml:"expect"`
}

// Load reads a vector table from a .yml/.yaml or .json/.jsonc file.
func Load(path string) ([]Vector, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-supplied
	if err != nil {
		return nil, fmt.Errorf("reading vectors file %q: %w", path, err)
	}

	var records []record

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yml", ".yaml":
		err = yaml.Unmarshal(data, &records)
	case ".json", ".jsonc":
		err = json.Unmarshal(jsonc.ToJSONInPlace(data), &records)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if err != nil {
		return nil, fmt.Errorf("parsing vectors file %q: %w", path, err)
	}

	out := make([]Vector, 0, len(records))

	for i, rec := range records {
		vec, err := rec.vector(i)
		if err != nil {
			return nil, fmt.Errorf("%s: vector %d: %w", path, i, err)
		}

		out = append(out, vec)
	}

	return out, nil
}

// LoadAll concatenates the tables of every path, in order.
func LoadAll(paths []string) ([]Vector, error) {
	var out []Vector

	for _, path := range paths {
		vecs, err := Load(path)
		if err != nil {
			return nil, err
		}

		out = append(out, vecs...)
	}

	return out, nil
}

func (r record) vector(index int) (Vector, error) {
	vec := Vector{Name: r.Name}

	if vec.Name == "" {
		vec.Name = fmt.Sprintf("%d", index)
	}

	halves := r.High != "" || r.Low != ""

	switch {
	case r.Message != "" && halves:
		return Vector{}, fmt.Errorf("%w: message and high/low are mutually exclusive", ErrInvalidVector)
	case r.Message != "":
		msg, err := ParseMessage(string(r.Message))
		if err != nil {
			return Vector{}, err
		}

		vec.Block = xtea.Split(msg)
	case r.High != "" && r.Low != "":
		high, err := ParseWord(string(r.High))
		if err != nil {
			return Vector{}, err
		}

		low, err := ParseWord(string(r.Low))
		if err != nil {
			return Vector{}, err
		}

		vec.Block = xtea.Block{High: high, Low: low}
	default:
		return Vector{}, fmt.Errorf("%w: need message or both high and low", ErrInvalidVector)
	}

	if r.Expect != "" {
		expect, err := ParseMessage(string(r.Expect))
		if err != nil {
			return Vector{}, fmt.Errorf("parsing expect: %w", err)
		}

		vec.Expect = expect
		vec.HasExpect = true
	}

	return vec, nil
}
