// Package envconfig reads runtime settings from STRATA_* environment variables.
package envconfig

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"k8s.io/klog/v2"
)

// Var returns an environment variable stripped of leading and trailing quotes or spaces
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}

// Bool returns a getter for a boolean variable. Unset or unparsable values yield
// defaultValue; the latter also logs a warning.
func Bool(key string, defaultValue bool) func() bool {
	return func() bool {
		if s := Var(key); s != "" {
			b, err := strconv.ParseBool(s)
			if err != nil {
				klog.Warningf("invalid environment variable %s=%q, using default %v", key, s, defaultValue)
				return defaultValue
			}
			return b
		}
		return defaultValue
	}
}

// String returns a getter for a string variable.
func String(key string, defaultValue string) func() string {
	return func() string {
		if s := Var(key); s != "" {
			return s
		}
		return defaultValue
	}
}

// Uint returns a getter for an unsigned integer variable.
func Uint(key string, defaultValue uint) func() uint {
	return func() uint {
		if s := Var(key); s != "" {
			if n, err := strconv.ParseUint(s, 10, 64); err != nil {
				klog.Warningf("invalid environment variable %s=%q, using default %d", key, s, defaultValue)
			} else {
				return uint(n)
			}
		}
		return defaultValue
	}
}

// Int64 returns a getter for a signed integer variable.
func Int64(key string, defaultValue int64) func() int64 {
	return func() int64 {
		if s := Var(key); s != "" {
			if n, err := strconv.ParseInt(s, 10, 64); err != nil {
				klog.Warningf("invalid environment variable %s=%q, using default %d", key, s, defaultValue)
			} else {
				return n
			}
		}
		return defaultValue
	}
}

var (
	// Fused selects the fused LayerNorm kernel. Configured via STRATA_FUSED_LAYERNORM.
	Fused = Bool("STRATA_FUSED_LAYERNORM", true)
	// Encoding is the tiktoken encoding name. Configured via STRATA_ENCODING.
	Encoding = String("STRATA_ENCODING", "cl100k_base")

	seed       = Int64("STRATA_SEED", 0)
	numWorkers = Uint("STRATA_NUM_WORKERS", 0)
)

// Seed returns the random seed from STRATA_SEED. Zero or unset derives a seed from
// the current time.
func Seed() int64 {
	if s := seed(); s != 0 {
		return s
	}
	return time.Now().UnixNano()
}

// Workers returns the CPU worker count from STRATA_NUM_WORKERS. Zero or unset means
// runtime.NumCPU().
func Workers() int {
	if n := numWorkers(); n > 0 {
		return int(n) //nolint:gosec // G115: worker counts are small.
	}
	return runtime.NumCPU()
}

// EnvVar describes one setting for display.
type EnvVar struct {
	Name        string
	Value       any
	Description string
}

// AsMap returns every setting with its effective value.
func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"STRATA_SEED":            {"STRATA_SEED", seed(), "Random seed for initialization and dropout (0: time-derived)"},
		"STRATA_FUSED_LAYERNORM": {"STRATA_FUSED_LAYERNORM", Fused(), "Use the fused LayerNorm kernel (default true)"},
		"STRATA_ENCODING":        {"STRATA_ENCODING", Encoding(), "tiktoken encoding (default cl100k_base)"},
		"STRATA_NUM_WORKERS":     {"STRATA_NUM_WORKERS", Workers(), "CPU worker goroutines (default: number of CPUs)"},
	}
}

// Values returns the effective settings formatted as strings.
func Values() map[string]string {
	vals := make(map[string]string)
	for k, v := range AsMap() {
		vals[k] = fmt.Sprintf("%v", v.Value)
	}
	return vals
}
