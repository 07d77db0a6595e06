package roster

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/foldprint/foldprint/pkg/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr errors.Code
	}{
		{
			name:  "simple list",
			input: "Alice Smith\nBob\nCarol Jones\n",
			want:  []string{"Alice Smith", "Bob", "Carol Jones"},
		},
		{
			name:  "blank lines skipped",
			input: "Alice Smith\n\nBob\n",
			want:  []string{"Alice Smith", "Bob"},
		},
		{
			name:  "whitespace trimmed",
			input: "  Alice Smith  \n\tBob\t\n",
			want:  []string{"Alice Smith", "Bob"},
		},
		{
			name:  "whitespace-only lines skipped",
			input: "Alice\n   \n\t\nBob\n",
			want:  []string{"Alice", "Bob"},
		},
		{
			name:  "no trailing newline",
			input: "Alice\nBob",
			want:  []string{"Alice", "Bob"},
		},
		{
			name:  "duplicates preserved in order",
			input: "Bob\nBob\nAlice\n",
			want:  []string{"Bob", "Bob", "Alice"},
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: errors.ErrCodeEmptyRoster,
		},
		{
			name:    "only blank lines",
			input:   "\n\n   \n",
			wantErr: errors.ErrCodeEmptyRoster,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.input))

			if tt.wantErr != "" {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse() error = %v, want code %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "names.txt")
		if err := os.WriteFile(path, []byte("Alice Smith\n\nBob\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		got, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		want := []string{"Alice Smith", "Bob"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Load() = %v, want %v", got, want)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
		if !errors.Is(err, errors.ErrCodeFileNotFound) {
			t.Errorf("Load() error = %v, want code %v", err, errors.ErrCodeFileNotFound)
		}
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.txt")
		if err := os.WriteFile(path, []byte("\n\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		_, err := Load(path)
		if !errors.Is(err, errors.ErrCodeEmptyRoster) {
			t.Errorf("Load() error = %v, want code %v", err, errors.ErrCodeEmptyRoster)
		}
	})
}
