package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	assert := assert.New(t)
	defer SetFilter("")

	out := filterOutput("calc 1/2 + %s", "1/3")
	assert.Equal("calc 1/2 + 1/3", out)

	err := SetFilter("board")
	assert.Nil(err)
	out = filterOutput("calc 1/2 + %s", "1/3")
	assert.Equal("", out)
	out = filterOutput("Board row %d", 3)
	assert.Equal("", out)
	out = filterOutput("board row %d", 3)
	assert.Equal("board row 3", out)

	err = SetFilter("(?i)board|calc")
	assert.Nil(err)
	assert.Contains(filterOutput("Board row %d", 3), "row")
	assert.Contains(filterOutput("calc %s", "1/2"), "1/2")
	assert.Equal("", filterOutput("parse %s", "1/2"))

	err = SetFilter("(")
	assert.NotNil(err)
}

func TestLimiter(t *testing.T) {
	assert := assert.New(t)
	defer SetLimiter(0)

	assert.True(limiterAvailable("parse 117/1098"))
	SetLimiter(10)
	for i := 0; i < 10; i++ {
		assert.True(limiterAvailable("compare 1/2 2/3"))
	}
	assert.False(limiterAvailable("compare 1/2 2/3"))
	assert.True(limiterAvailable("compare 1/2 3/4"))
}

func TestLevels(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	defer SetLevel(Level())

	SetLevel(ERROR)
	Printf("info %d", 1)
	Verbosef("verbose %d", 1)
	assert.Equal("", buf.String())
	Errorf("division by %d", 0)
	assert.Contains(buf.String(), "ERROR division by 0")

	buf.Reset()
	SetLevel(DEBUG)
	Debugf("debug %s", "row")
	Println("done")
	assert.Contains(buf.String(), "debug row")
	assert.Contains(buf.String(), "done")
}
