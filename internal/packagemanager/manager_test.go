package packagemanager

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cyclone1070/wsresolve/internal/testing/mocks"
)

func newMockFileSystem(root string, files map[string]string) *mocks.MockFileSystem {
	m := mocks.NewMockFileSystem()
	for name, content := range files {
		m.CreateFile(filepath.Join(root, name), []byte(content))
	}
	return m
}

func TestParse_RoundTripsEveryManager(t *testing.T) {
	for _, m := range All() {
		parsed, err := Parse(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
}

func TestParse_CaseInsensitive(t *testing.T) {
	m, err := Parse("  PNPM6 ")
	require.NoError(t, err)
	assert.Equal(t, Pnpm6, m)
}

func TestParse_Unknown(t *testing.T) {
	_, err := Parse("bun")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownManager))

	var unknownErr *UnknownManagerError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "bun", unknownErr.Name)
}

func TestManager_DeclarationFile(t *testing.T) {
	tests := []struct {
		manager Manager
		file    string
		key     string
	}{
		{Berry, PackageJSON, "workspaces"},
		{Npm, PackageJSON, "workspaces"},
		{Yarn, PackageJSON, "workspaces"},
		{Pnpm, PnpmWorkspaceYAML, "packages"},
		{Pnpm6, PnpmWorkspaceYAML, "packages"},
		{Unknown, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.manager.String(), func(t *testing.T) {
			assert.Equal(t, tt.file, tt.manager.DeclarationFile())
			assert.Equal(t, tt.key, tt.manager.DeclarationKey())
		})
	}
}

func TestManager_Valid(t *testing.T) {
	assert.False(t, Unknown.Valid())
	assert.False(t, Manager(42).Valid())
	assert.Equal(t, "unknown(42)", Manager(42).String())
	for _, m := range All() {
		assert.True(t, m.Valid(), m.String())
	}
}

func TestManager_Set(t *testing.T) {
	var m Manager
	require.NoError(t, m.Set("berry"))
	assert.Equal(t, Berry, m)
	assert.Equal(t, "manager", m.Type())
	assert.Error(t, m.Set("nope"))
	assert.Equal(t, Berry, m, "failed Set must not change the value")
}

func TestFromPackageManagerField(t *testing.T) {
	tests := []struct {
		value   string
		want    Manager
		wantErr bool
	}{
		{"npm@9.8.1", Npm, false},
		{"pnpm@6.35.1", Pnpm6, false},
		{"pnpm@7.0.0", Pnpm, false},
		{"pnpm@8.6.0+sha256.0123abcd", Pnpm, false},
		{"yarn@1.22.19", Yarn, false},
		{"yarn@3.6.1", Berry, false},
		{"yarn@4.0.0-rc.42", Berry, false},
		{"yarn", Unknown, true},
		{"yarn@", Unknown, true},
		{"pnpm@latest", Unknown, true},
		{"bun@1.0.0", Unknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := FromPackageManagerField(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidPackageManagerField))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetect(t *testing.T) {
	root := "/repo"
	tests := []struct {
		name  string
		files map[string]string
		want  Manager
	}{
		{
			name:  "packageManager field wins over lockfiles",
			files: map[string]string{PackageJSON: `{"packageManager":"yarn@1.22.0"}`, PnpmLock: ""},
			want:  Yarn,
		},
		{
			name:  "pnpm lockfile",
			files: map[string]string{PackageJSON: `{}`, PnpmLock: ""},
			want:  Pnpm,
		},
		{
			name:  "yarn lockfile with yarnrc is berry",
			files: map[string]string{YarnLock: "", YarnrcYML: ""},
			want:  Berry,
		},
		{
			name:  "yarn lockfile alone is classic",
			files: map[string]string{YarnLock: ""},
			want:  Yarn,
		},
		{
			name:  "npm lockfile",
			files: map[string]string{PackageJSON: `not json`, PackageLockJSON: ""},
			want:  Npm,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Detect(root, newMockFileSystem(root, tt.files))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetect_NothingFound(t *testing.T) {
	_, err := Detect("/repo", newMockFileSystem("/repo", map[string]string{PackageJSON: `{}`}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUndetected))
}

func TestDetect_BadPackageManagerField(t *testing.T) {
	fs := newMockFileSystem("/repo", map[string]string{PackageJSON: `{"packageManager":"pnpm"}`})
	_, err := Detect("/repo", fs)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidPackageManagerField))
}

func TestDetect_UnreadablePackageJSONFallsBackToLockfiles(t *testing.T) {
	fs := newMockFileSystem("/repo", map[string]string{PnpmLock: ""})
	fs.SetError(filepath.Join("/repo", PackageJSON), errors.New("boom"))

	got, err := Detect("/repo", fs)

	require.NoError(t, err)
	assert.Equal(t, Pnpm, got)
}
