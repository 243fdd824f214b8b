package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRun(t *testing.T) {
	in := strings.NewReader("0 c f\n\n# comment\n32 fahrenheit celsius\n100 1 3\nwarm c f\n")
	var out bytes.Buffer
	obs, logs := observer.New(zapcore.InfoLevel)

	failed, err := run(in, &out, 2, zap.New(obs))
	require.NoError(t, err)
	assert.Equal(t, 1, failed)
	assert.Equal(t, "32.00°F\n0.00°C\n373.15K\nerror: malformed temperature value: \"warm\"\n", out.String())
	assert.Equal(t, 1, logs.FilterMessage("bad request").Len())
}
