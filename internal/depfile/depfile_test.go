package depfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    []string
		wantErr bool
	}{
		{
			name:    "single line",
			content: "shader.vert.spv: shader.vert common.glsl\n",
			want:    []string{"shader.vert", "common.glsl"},
		},
		{
			name:    "continuation lines",
			content: "shader.vert.spv: shader.vert \\\n  lighting.glsl \\\n  common.glsl\n",
			want:    []string{"shader.vert", "lighting.glsl", "common.glsl"},
		},
		{
			name:    "duplicates collapsed",
			content: "a.spv: a.vert a.vert inc.glsl\n",
			want:    []string{"a.vert", "inc.glsl"},
		},
		{
			name:    "no prerequisites",
			content: "a.spv:\n",
			want:    nil,
		},
		{
			name:    "malformed",
			content: "not a dependency record\n",
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "record.d")
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0o644))

			deps, err := Parse(path)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, deps)
		})
	}
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "dne.d"))
	assert.Error(t, err)
}
