package notify

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPush_BuffersAndReturnsID(t *testing.T) {
	c := NewCenter()

	id := c.Success("Order placed successfully!")

	require.NotEmpty(t, id)
	list := c.List()
	require.Len(t, list, 1)
	assert.Equal(t, id, list[0].ID)
	assert.Equal(t, LevelSuccess, list[0].Level)
	assert.Equal(t, "Order placed successfully!", list[0].Message)
}

func TestPush_LevelHelpers(t *testing.T) {
	c := NewCenter()

	c.Success("a")
	c.Error("b")
	c.Warning("c")
	c.Info("d")

	list := c.List()
	require.Len(t, list, 4)
	assert.Equal(t, LevelSuccess, list[0].Level)
	assert.Equal(t, LevelError, list[1].Level)
	assert.Equal(t, LevelWarning, list[2].Level)
	assert.Equal(t, LevelInfo, list[3].Level)
}

func TestPush_DropsOldestBeyondLimit(t *testing.T) {
	c := NewCenter()

	for i := 0; i < maxBuffered+5; i++ {
		c.Info(fmt.Sprintf("message %d", i))
	}

	list := c.List()
	require.Len(t, list, maxBuffered)
	assert.Equal(t, "message 5", list[0].Message)
}

func TestSubscribe_ReceivesEveryPush(t *testing.T) {
	c := NewCenter()
	var seen []Notification
	c.Subscribe(func(n Notification) { seen = append(seen, n) })

	c.Error("payment failed")
	c.Info("retrying")

	require.Len(t, seen, 2)
	assert.Equal(t, LevelError, seen[0].Level)
	assert.Equal(t, "payment failed", seen[0].Message)
}

func TestDismiss_RemovesByID(t *testing.T) {
	c := NewCenter()
	keep := c.Info("keep")
	drop := c.Info("drop")

	c.Dismiss(drop)

	list := c.List()
	require.Len(t, list, 1)
	assert.Equal(t, keep, list[0].ID)
}

func TestDismiss_UnknownIDIgnored(t *testing.T) {
	c := NewCenter()
	c.Info("only")

	c.Dismiss("no-such-id")

	assert.Len(t, c.List(), 1)
}
