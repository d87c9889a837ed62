package treeopt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/napalu/treeopt/errs"
)

func newTestStore() *FlagStore {
	s := newFlagStore()
	s.set("app.verbose", Bool(true))
	s.set("app.retries", Int(-3))
	s.set("app.lines", Uint(24))
	s.set("app.timeout", Float(1.5))
	s.set("app.output", Str("out.vt"))
	return s
}

func TestFlagStore_TypedGetters(t *testing.T) {
	s := newTestStore()

	assert.True(t, s.Boolean("app.verbose"))
	assert.Equal(t, int64(-3), s.Integer("app.retries"))
	assert.Equal(t, uint64(24), s.UnsignedInteger("app.lines"))
	assert.Equal(t, 1.5, s.Real("app.timeout"))
	assert.Equal(t, "out.vt", s.String("app.output"))
}

func TestFlagStore_GetterErrors(t *testing.T) {
	s := newTestStore()

	_, err := s.GetInt("app.lines")
	assert.ErrorIs(t, err, errs.ErrTypeMismatch)
	assert.Equal(t, "value at 'app.lines' is uint, not int", err.Error())

	_, err = s.GetFloat("app.missing")
	assert.ErrorIs(t, err, errs.ErrPathNotFound)

	v, err := s.GetString("app.output")
	assert.NoError(t, err)
	assert.Equal(t, "out.vt", v)
}

func TestFlagStore_GettersPanicOnContractViolation(t *testing.T) {
	s := newTestStore()

	assert.PanicsWithError(t, "value at 'app.verbose' is bool, not string", func() { s.String("app.verbose") })
	assert.Panics(t, func() { s.Boolean("app.missing") })
	assert.Panics(t, func() { s.Real("app.retries") })
	assert.Panics(t, func() { s.UnsignedInteger("app.retries") })
	assert.Panics(t, func() { s.Integer("app.timeout") })
}

func TestFlagStore_Iteration(t *testing.T) {
	s := newTestStore()
	s.set("app.verbose", Bool(false))

	assert.Equal(t, 5, s.Len())
	assert.Equal(t, []string{"app.verbose", "app.retries", "app.lines", "app.timeout", "app.output"}, s.Paths())
	assert.True(t, s.Has("app.lines"))
	assert.False(t, s.Has("app"))

	var visited []string
	s.Each(func(path string, v Value) bool {
		visited = append(visited, path)
		return len(visited) < 2
	})
	assert.Equal(t, []string{"app.verbose", "app.retries"}, visited)
}

func TestFlagStore_MarshalYAML(t *testing.T) {
	s := newFlagStore()
	s.set("app.debug", Str(""))
	s.set("app.flag", Str("true"))
	s.set("app.count", Str("42"))
	s.set("app.timeout", Float(1))
	s.set("app.ratio", Float(0.25))
	s.set("app.inf", Float(math.Inf(1)))
	s.set("app.lines", Uint(7))
	s.set("app.verbose", Bool(true))

	out, err := yaml.Marshal(s)
	require.NoError(t, err)

	assert.Equal(t, `app.debug: ""
app.flag: "true"
app.count: "42"
app.timeout: 1.0
app.ratio: 0.25
app.inf: .inf
app.lines: 7
app.verbose: true
`, string(out))

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, "", decoded["app.debug"])
	assert.Equal(t, "true", decoded["app.flag"])
	assert.Equal(t, "42", decoded["app.count"])
	assert.Equal(t, 1.0, decoded["app.timeout"])
	assert.Equal(t, 7, decoded["app.lines"])
	assert.Equal(t, true, decoded["app.verbose"])
}

type captureSettings struct {
	Logical    bool    `flag:"logical"`
	Timeout    float64 `flag:"timeout"`
	Output     string  `flag:"output"`
	LineCount  uint16
	Raw        Value  `flag:"output"`
	Ignored    string `flag:"-"`
	unexported int
}

func TestFlagStore_Bind(t *testing.T) {
	s := newFlagStore()
	s.set("app.capture.logical", Bool(true))
	s.set("app.capture.timeout", Float(2.5))
	s.set("app.capture.output", Str("out.vt"))
	s.set("app.capture.line-count", Uint(100))

	var settings captureSettings
	require.NoError(t, s.Bind("app.capture", &settings))

	assert.True(t, settings.Logical)
	assert.Equal(t, 2.5, settings.Timeout)
	assert.Equal(t, "out.vt", settings.Output)
	assert.Equal(t, uint16(100), settings.LineCount)
	assert.Equal(t, Str("out.vt"), settings.Raw)
	assert.Empty(t, settings.Ignored)
}

func TestFlagStore_BindNested(t *testing.T) {
	type inner struct {
		Timeout float32 `flag:"timeout"`
	}
	type outer struct {
		Config  string `flag:"config"`
		Capture inner  `flag:"capture"`
	}

	s := newFlagStore()
	s.set("app.config", Str("app.yml"))
	s.set("app.capture.timeout", Float(0.5))

	var target outer
	require.NoError(t, s.Bind("app", &target))
	assert.Equal(t, "app.yml", target.Config)
	assert.Equal(t, float32(0.5), target.Capture.Timeout)
}

func TestFlagStore_BindErrors(t *testing.T) {
	s := newFlagStore()
	s.set("app.lines", Uint(300))
	s.set("app.name", Str("x"))

	var notStruct int
	assert.ErrorIs(t, s.Bind("app", &notStruct), errs.ErrBindTarget)
	assert.ErrorIs(t, s.Bind("app", captureSettings{}), errs.ErrBindTarget)
	assert.ErrorIs(t, s.Bind("app", nil), errs.ErrBindTarget)

	var overflow struct {
		Lines uint8 `flag:"lines"`
	}
	assert.ErrorIs(t, s.Bind("app", &overflow), errs.ErrTypeMismatch)

	var wrongKind struct {
		Name int `flag:"name"`
	}
	assert.ErrorIs(t, s.Bind("app", &wrongKind), errs.ErrTypeMismatch)

	var missing struct {
		Other string
	}
	assert.ErrorIs(t, s.Bind("app", &missing), errs.ErrPathNotFound)

	var unsupported struct {
		Name []string `flag:"name"`
	}
	assert.ErrorIs(t, s.Bind("app", &unsupported), errs.ErrBindTarget)
}
