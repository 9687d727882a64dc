package sdf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

var (
	headerExtensions = []string{".HDR", ".hdr"}
	dataExtensions   = []string{".DAT", ".dat"}
)

// Reader loads a measurement given its path without extension. The returned
// header has passed Validate and the sample count matches num_points.
type Reader interface {
	Read(path string) (*Header, []complex128, error)
}

// FileReader reads the ASCII export of an SDF file: a YAML header next to
// a text file with one point per line.
type FileReader struct{}

func (FileReader) Read(path string) (*Header, []complex128, error) {
	return ReadFile(path)
}

// ReadFile loads and validates the measurement stored at path.HDR and path.DAT.
func ReadFile(path string) (*Header, []complex128, error) {
	hdrPath, err := findFile(path, headerExtensions)
	if err != nil {
		return nil, nil, newReadError(path, err)
	}
	datPath, err := findFile(path, dataExtensions)
	if err != nil {
		return nil, nil, newReadError(path, err)
	}

	hdr, err := readHeaderFile(hdrPath)
	if err != nil {
		return nil, nil, newReadError(hdrPath, err)
	}
	if err = hdr.Validate(); err != nil {
		return nil, nil, newReadError(hdrPath, err)
	}

	samples, err := readDataFile(datPath)
	if err != nil {
		return nil, nil, newReadError(datPath, err)
	}
	if n := hdr.Data().NumPoints; n != len(samples) {
		return nil, nil, newReadError(datPath, fmt.Errorf("%w: header has %d, file has %d", ErrPointCountMismatch, n, len(samples)))
	}

	return hdr, samples, nil
}

func findFile(base string, extensions []string) (string, error) {
	for _, ext := range extensions {
		candidate := base + ext
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
	}
	return "", fmt.Errorf("no file '%s%s': %w", base, extensions[0], fs.ErrNotExist)
}

func readHeaderFile(path string) (*Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return DecodeHeader(f)
}

// DecodeHeader decodes a YAML header record. Unknown vendor keys are ignored.
func DecodeHeader(r io.Reader) (*Header, error) {
	var hdr Header
	if err := yaml.NewDecoder(r).Decode(&hdr); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty header")
		}
		return nil, fmt.Errorf("decoding header: %w", err)
	}
	return &hdr, nil
}

func readDataFile(path string) ([]complex128, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return DecodeSamples(f)
}

// DecodeSamples parses one sample per line, either "re" or "re im".
// Columns may be separated by whitespace or commas, '#' starts a comment.
func DecodeSamples(r io.Reader) ([]complex128, error) {
	samples := make([]complex128, 0)

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++

		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})

		switch len(fields) {
		case 0:
			continue

		case 1, 2:
			re, err := strconv.ParseFloat(fields[0], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			var im float64
			if len(fields) == 2 {
				if im, err = strconv.ParseFloat(fields[1], 64); err != nil {
					return nil, fmt.Errorf("line %d: %w", line, err)
				}
			}
			samples = append(samples, complex(re, im))

		default:
			return nil, fmt.Errorf("line %d: expected 1 or 2 columns, got %d", line, len(fields))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return samples, nil
}
