package errlog

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileLocation(t *testing.T) {
	line := currentLine() + 1
	short, long, longer := FileLocation(1, 1), FileLocation(1, 2), FileLocation(1, 3)

	assert.Equal(t, fmt.Sprintf("location_test.go:%d", line), short)
	assert.Equal(t, fmt.Sprintf("errlog/location_test.go:%d", line), long)
	assert.True(t, strings.HasSuffix(longer, fmt.Sprintf("/errlog/location_test.go:%d", line)), longer)
	assert.Equal(t, 2, strings.Count(longer, "/"), longer)
}

func TestFileLocationUnknownCaller(t *testing.T) {
	assert.Equal(t, "???:0", FileLocation(1000, 2))
}
