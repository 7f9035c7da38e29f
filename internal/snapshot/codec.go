package snapshot

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gopkg.in/yaml.v3"
)

// Encode writes f as YAML.
func Encode(w io.Writer, f *File) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return enc.Close()
}

// Decode reads a YAML snapshot.
func Decode(r io.Reader) (*File, error) {
	var f File
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return &f, nil
}

// WriteFile encodes f to filename, replacing any existing file and creating
// missing directories.
func WriteFile(filename string, f *File) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}
	out, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create snapshot file: %w", err)
	}
	if err := Encode(out, f); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// ReadFile decodes the snapshot stored in filename.
func ReadFile(filename string) (*File, error) {
	in, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot file: %w", err)
	}
	defer in.Close()
	return Decode(in)
}

// Load reads a snapshot from filename, or from stdin when filename is "-".
func Load(filename string, stdin io.Reader) (*File, error) {
	if filename == "-" {
		return Decode(stdin)
	}
	return ReadFile(filename)
}

// Diff compares a recording against a golden one and reports the first
// difference, wrapped around ErrMismatch. Cases are matched by key.
func Diff(want, got *File) error {
	if want.Style != got.Style || want.Height != got.Height || want.Position != got.Position {
		return fmt.Errorf("%w: recorded %s at %v height %d, expected %s at %v height %d",
			ErrMismatch, got.Style, got.Position, got.Height, want.Style, want.Position, want.Height)
	}

	gotByKey := make(map[string]*Case, len(got.Cases))
	for i := range got.Cases {
		gotByKey[got.Cases[i].Key()] = &got.Cases[i]
	}

	for i := range want.Cases {
		w := &want.Cases[i]
		g, ok := gotByKey[w.Key()]
		if !ok {
			return fmt.Errorf("%w: case %s missing", ErrMismatch, w.Key())
		}
		if d := cmp.Diff(w.Calls, g.Calls, cmpopts.EquateEmpty()); d != "" {
			return fmt.Errorf("%w: case %s (-want +got):\n%s", ErrMismatch, w.Key(), d)
		}
		delete(gotByKey, w.Key())
	}

	for i := range got.Cases {
		if _, extra := gotByKey[got.Cases[i].Key()]; extra {
			return fmt.Errorf("%w: unexpected case %s", ErrMismatch, got.Cases[i].Key())
		}
	}
	return nil
}
