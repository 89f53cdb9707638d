package logio

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerPrintf(t *testing.T) {
	var out strings.Builder
	var log Logger
	log.SetOutput(&out)

	log.Printf("info", "hello %v", "there")
	log.Printf("", "bare message")
	log.Printf("info", "already terminated\n")

	assert.Equal(t,
		"info: hello there\n"+
			"bare message\n"+
			"info: already terminated\n",
		out.String())
	assert.Equal(t, 0, log.ExitCode())
}

func TestLoggerLeveledf(t *testing.T) {
	var out strings.Builder
	var log Logger
	log.SetOutput(&out)

	tracef := log.Leveledf("trace")
	tracef("step %v", 1)
	tracef("step %v", 2)

	assert.Equal(t, "trace: step 1\ntrace: step 2\n", out.String())
}

func TestLoggerErrorf(t *testing.T) {
	var out strings.Builder
	var log Logger
	log.SetOutput(&out)

	assert.Equal(t, 0, log.ExitCode())
	log.Errorf("it broke: %v", "badly")
	assert.Equal(t, "ERROR: it broke: badly\n", out.String())
	assert.Equal(t, 1, log.ExitCode())

	log.ErrorIf(nil)
	assert.Equal(t, "ERROR: it broke: badly\n", out.String())
}

func TestLoggerNoOutput(t *testing.T) {
	var log Logger
	log.Printf("info", "dropped")
	log.Errorf("still counted")
	assert.Equal(t, 1, log.ExitCode())
}

func TestWriterLines(t *testing.T) {
	var got []string
	lw := Writer{Logf: func(mess string, args ...interface{}) {
		got = append(got, fmt.Sprintf(mess, args...))
	}}

	lw.Write([]byte("one\ntw"))
	assert.Equal(t, []string{"one"}, got)
	lw.Write([]byte("o\n"))
	assert.Equal(t, []string{"one", "two"}, got)
	lw.Write([]byte("tail"))
	assert.NoError(t, lw.Close())
	assert.Equal(t, []string{"one", "two", "tail"}, got)
}
