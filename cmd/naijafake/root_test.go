package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/naijafake/pkg/dataset"
	"github.com/dmitrymomot/naijafake/pkg/validator"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestPlateCommand(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "--seed", "42", "plate", "--state", "lagos", "-n", "3")
	require.NoError(t, err)

	plate := regexp.MustCompile(`^[A-Z]{3}-\d{3}[A-Z]{2}$`)
	got := lines(out)
	require.Len(t, got, 3)
	for _, p := range got {
		assert.Regexp(t, plate, p)
	}

	again, err := execute(t, "--seed", "42", "plate", "--state", "lagos", "-n", "3")
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestNameCommandJSON(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "--format", "json", "name", "--tribe", "yoruba", "--middle")
	require.NoError(t, err)

	var name struct {
		First  string `json:"first"`
		Middle string `json:"middle"`
		Last   string `json:"last"`
		Tribe  string `json:"tribe"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &name))
	assert.NotEmpty(t, name.First)
	assert.NotEmpty(t, name.Middle)
	assert.NotEmpty(t, name.Last)
	assert.Equal(t, "yoruba", name.Tribe)
}

func TestStateCommandYAML(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "--format", "yaml", "state", "--region", "SW", "--field", "record")
	require.NoError(t, err)

	var st dataset.State
	require.NoError(t, yaml.Unmarshal([]byte(out), &st))
	assert.NotEmpty(t, st.Name)
	assert.Equal(t, "South West", st.Region)
	assert.NotEmpty(t, st.LGAs)
}

func TestListCommand(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "list", "networks")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"mtn", "glo", "airtel", "9mobile"}, lines(out))

	_, err = execute(t, "list", "planets")
	assert.Error(t, err)
}

func TestCommandErrors(t *testing.T) {
	t.Parallel()

	t.Run("invalid domain", func(t *testing.T) {
		t.Parallel()
		_, err := execute(t, "email", "--domain", "invalid..domain")
		require.Error(t, err)
		assert.True(t, validator.ExtractValidationErrors(err).Has("domain"))
	})

	t.Run("zero count", func(t *testing.T) {
		t.Parallel()
		_, err := execute(t, "-n", "0", "name")
		require.Error(t, err)
		assert.True(t, validator.ExtractValidationErrors(err).Has("count"))
	})

	t.Run("unknown format", func(t *testing.T) {
		t.Parallel()
		_, err := execute(t, "--format", "xml", "name")
		require.Error(t, err)
		assert.True(t, validator.ExtractValidationErrors(err).Has("format"))
	})

	t.Run("unknown state field", func(t *testing.T) {
		t.Parallel()
		_, err := execute(t, "state", "--field", "anthem")
		require.Error(t, err)
		assert.True(t, validator.ExtractValidationErrors(err).Has("field"))
	})

	t.Run("unknown tribe", func(t *testing.T) {
		t.Parallel()
		_, err := execute(t, "name", "--tribe", "yorba")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "yoruba")
	})

	t.Run("empty data dir", func(t *testing.T) {
		t.Parallel()
		_, err := execute(t, "--data-dir", t.TempDir(), "name")
		assert.ErrorIs(t, err, dataset.ErrDatasetNotFound)
	})
}

func TestRepeatClosesOutputOnError(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	out := new(bytes.Buffer)
	a := &app{stdout: out, format: formatYAML, count: 3}

	calls := 0
	err := a.repeat(func() (any, error) {
		calls++
		if calls == 2 {
			return nil, errBoom
		}
		return map[string]string{"state": "Lagos"}, nil
	})
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, 2, calls)

	var doc map[string]string
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, "Lagos", doc["state"])
}
