package operation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func valid(verb Verb) Operation {
	op := Operation{
		Verb:      verb,
		Volume:    "data",
		SourceDir: "/home/user/project",
		User:      "root",
	}
	if verb == Copy || verb == Remove {
		op.Files = []string{"file.txt"}
	}
	return op
}

func TestValidate_AcceptsWellFormedOperations(t *testing.T) {
	for _, verb := range []Verb{Copy, Remove, List, Terminal} {
		assert.NoError(t, valid(verb).Validate(), "verb %s", verb)
	}
}

func TestValidate_UnknownVerb(t *testing.T) {
	op := valid(Copy)
	op.Verb = Verb("mv")

	err := op.Validate()
	require.Error(t, err)

	var usageErr *UsageError
	require.ErrorAs(t, err, &usageErr)
	assert.Contains(t, usageErr.Error(), "mv")
}

func TestValidate_RequiresVolume(t *testing.T) {
	op := valid(Copy)
	op.Volume = ""

	var usageErr *UsageError
	require.ErrorAs(t, op.Validate(), &usageErr)
	assert.Contains(t, usageErr.Error(), "-V")
}

func TestValidate_RejectsBadVolumeName(t *testing.T) {
	op := valid(List)
	op.Volume = "-bad name"

	var usageErr *UsageError
	require.ErrorAs(t, op.Validate(), &usageErr)
}

func TestValidate_SourceDirMustNotContainColon(t *testing.T) {
	op := valid(Copy)
	op.SourceDir = "/home/user/odd:dir"

	err := op.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "':'")
}

func TestValidate_FileOperands(t *testing.T) {
	tests := []struct {
		name    string
		verb    Verb
		files   []string
		wantErr bool
	}{
		{name: "cp requires files", verb: Copy, files: nil, wantErr: true},
		{name: "rm requires files", verb: Remove, files: nil, wantErr: true},
		{name: "ls allows no files", verb: List, files: nil, wantErr: false},
		{name: "ls allows files", verb: List, files: []string{"a"}, wantErr: false},
		{name: "term rejects files", verb: Terminal, files: []string{"a"}, wantErr: true},
		{name: "term allows none", verb: Terminal, files: nil, wantErr: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := valid(tt.verb)
			op.Files = tt.files

			err := op.Validate()
			if tt.wantErr {
				var usageErr *UsageError
				require.ErrorAs(t, err, &usageErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_Containment(t *testing.T) {
	tests := []struct {
		name string
		mut  func(*Operation)
	}{
		{name: "absolute file", mut: func(op *Operation) { op.Files = []string{"/etc/passwd"} }},
		{name: "escaping file", mut: func(op *Operation) { op.Files = []string{"../secrets"} }},
		{name: "nested escape", mut: func(op *Operation) { op.Files = []string{"a/../../b"} }},
		{name: "absolute target", mut: func(op *Operation) { op.TargetSubpath = "/abs" }},
		{name: "escaping target", mut: func(op *Operation) { op.TargetSubpath = "../up" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := valid(Copy)
			tt.mut(&op)

			var usageErr *UsageError
			require.ErrorAs(t, op.Validate(), &usageErr)
		})
	}
}

func TestValidate_OrderVolumeBeforeFiles(t *testing.T) {
	// Both the volume and the file list are missing; the volume violation
	// must be the one reported.
	op := Operation{Verb: Copy, SourceDir: "/src", User: "root"}

	err := op.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "volume")
}

func TestValidate_RecursiveIgnoredByListAndTerminal(t *testing.T) {
	for _, verb := range []Verb{List, Terminal} {
		op := valid(verb)
		op.Recursive = true
		assert.NoError(t, op.Validate(), "verb %s", verb)
	}
}

func TestUsageError_IsDistinguishable(t *testing.T) {
	op := valid(Copy)
	op.Volume = ""

	var usageErr *UsageError
	assert.True(t, errors.As(op.Validate(), &usageErr))
}
