package resolve

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stable/endpoints"
	"github.com/stable/endpoints/internal/appcontext"
	"github.com/stable/endpoints/pkg/errors"
)

const canonicalID = "3f2b8c1e-6d0a-4c55-9d7e-1a2b3c4d5e6f"

func TestResolve(t *testing.T) {
	reg := endpoints.MustNew()

	tests := []struct {
		name   string
		args   []string
		strict bool
		want   Result
	}{
		{
			name: "static",
			args: []string{"message"},
			want: Result{Key: "message", URL: "http://127.0.0.1:8787/message"},
		},
		{
			name: "parameterized",
			args: []string{"getProfileByUUID", "abc-123"},
			want: Result{Key: "getProfileByUUID", ID: "abc-123", URL: "http://127.0.0.1:8787/user-profile/get/abc-123"},
		},
		{
			name:   "strict uuid",
			args:   []string{"updateProfileByUUID", canonicalID},
			strict: true,
			want:   Result{Key: "updateProfileByUUID", ID: canonicalID, URL: "http://127.0.0.1:8787/user-profile/update/" + canonicalID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(reg, tt.args, tt.strict)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_Errors(t *testing.T) {
	reg := endpoints.MustNew()

	tests := []struct {
		name   string
		args   []string
		strict bool
		check  func(error) bool
	}{
		{"unknown key", []string{"deleteProfile"}, false, errors.IsUnknownKey},
		{"static with id", []string{"message", "abc-123"}, false, errors.IsShapeMismatch},
		{"parameterized without id", []string{"getProfileByUUID"}, false, errors.IsShapeMismatch},
		{"blank id", []string{"getProfileByUUID", "  "}, false, errors.IsValidationError},
		{"non-uuid under --uuid", []string{"getProfileByUUID", "abc-123"}, true, errors.IsValidationError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(reg, tt.args, tt.strict)
			require.Error(t, err)
			assert.True(t, tt.check(err), "unexpected error: %v", err)
		})
	}
}

func TestResolveCommand_Plain(t *testing.T) {
	mock := &appcontext.Mock{
		OutputFormatFunc: func() string { return "" },
	}

	var buf bytes.Buffer
	cmd := NewCommand(mock)
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"createProfile"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "http://127.0.0.1:8787/user-profile/create-profile\n", buf.String())
}

func TestResolveCommand_JSON(t *testing.T) {
	mock := &appcontext.Mock{
		OutputFormatFunc: func() string { return "json" },
		RegistryFunc: func() (*endpoints.Registry, error) {
			return endpoints.New(endpoints.WithBaseURL("https://api.example.com/"))
		},
	}

	var buf bytes.Buffer
	cmd := NewCommand(mock)
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"getProfileByUUID", canonicalID, "--uuid"})
	require.NoError(t, cmd.Execute())

	var got Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "https://api.example.com/user-profile/get/"+canonicalID, got.URL)
	assert.Equal(t, canonicalID, got.ID)
}

func TestResolveCommand_YAML(t *testing.T) {
	mock := &appcontext.Mock{
		OutputFormatFunc: func() string { return "yaml" },
	}

	var buf bytes.Buffer
	cmd := NewCommand(mock)
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"message"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "key: message")
	assert.Contains(t, buf.String(), "url: http://127.0.0.1:8787/message")
	assert.NotContains(t, buf.String(), "id:")
}

func TestResolveCommand_Table(t *testing.T) {
	mock := &appcontext.Mock{
		OutputFormatFunc: func() string { return "table" },
	}

	var buf bytes.Buffer
	cmd := NewCommand(mock)
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"getProfileByUUID", "abc-123"})
	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "Url")
	assert.Contains(t, out, "Id")
	assert.Contains(t, out, "abc-123")
	assert.Contains(t, out, "http://127.0.0.1:8787/user-profile/get/abc-123")
}

func TestResolveCommand_Args(t *testing.T) {
	cmd := NewCommand(&appcontext.Mock{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	assert.Error(t, cmd.Execute())
}
