package envconfig

import (
	"runtime"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVar(t *testing.T) {
	cases := map[string]string{
		"value":       "value",
		" value ":     "value",
		" 'value' ":   "value",
		` "value" `:   "value",
		" ' value ' ": " value ",
		"":            "",
	}

	for input, want := range cases {
		t.Run(input, func(t *testing.T) {
			t.Setenv("STRATA_VAR", input)
			assert.Equal(t, want, Var("STRATA_VAR"))
		})
	}
}

func TestFused(t *testing.T) {
	cases := map[string]bool{
		"":      true,
		"1":     true,
		"true":  true,
		"0":     false,
		"false": false,
		"nope":  true,
	}

	for input, want := range cases {
		t.Run(input, func(t *testing.T) {
			t.Setenv("STRATA_FUSED_LAYERNORM", input)
			assert.Equal(t, want, Fused())
		})
	}
}

func TestEncoding(t *testing.T) {
	t.Setenv("STRATA_ENCODING", "")
	assert.Equal(t, "cl100k_base", Encoding())

	t.Setenv("STRATA_ENCODING", "'p50k_base'")
	assert.Equal(t, "p50k_base", Encoding())
}

func TestSeed(t *testing.T) {
	t.Setenv("STRATA_SEED", "42")
	assert.Equal(t, int64(42), Seed())

	t.Setenv("STRATA_SEED", "-7")
	assert.Equal(t, int64(-7), Seed())

	for _, input := range []string{"", "0", "abc"} {
		t.Setenv("STRATA_SEED", input)
		assert.NotZero(t, Seed(), "input %q", input)
	}
}

func TestWorkers(t *testing.T) {
	cases := map[string]int{
		"":   runtime.NumCPU(),
		"0":  runtime.NumCPU(),
		"3":  3,
		"-1": runtime.NumCPU(),
		"x":  runtime.NumCPU(),
	}

	for input, want := range cases {
		t.Run(input, func(t *testing.T) {
			t.Setenv("STRATA_NUM_WORKERS", input)
			assert.Equal(t, want, Workers())
		})
	}
}

func TestValues(t *testing.T) {
	t.Setenv("STRATA_SEED", "5")
	t.Setenv("STRATA_NUM_WORKERS", "2")
	t.Setenv("STRATA_FUSED_LAYERNORM", "")

	vals := Values()
	assert.Len(t, vals, 4)
	assert.Equal(t, "5", vals["STRATA_SEED"])
	assert.Equal(t, strconv.Itoa(2), vals["STRATA_NUM_WORKERS"])
	assert.Equal(t, "true", vals["STRATA_FUSED_LAYERNORM"])
}
