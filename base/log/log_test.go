package log

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithFieldDoesNotShareBacking(t *testing.T) {
	req := require.New(t)

	base := Log().WithField("track", "a")
	left := base.WithField("peaks", 10)
	right := base.WithField("peaks", 20)

	req.Equal([]interface{}{"track", "a", "peaks", 10}, left.fields)
	req.Equal([]interface{}{"track", "a", "peaks", 20}, right.fields)
	req.Len(base.fields, 2)
}

func TestSetDebug(t *testing.T) {
	SetDebug(true)
	defer SetDebug(false)

	l := Log().WithFields(Fields{"k": "v"})
	require.NotNil(t, l.logger)
	l.Debug("debug enabled")
}
