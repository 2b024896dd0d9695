package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCannedDescriber(t *testing.T) {
	d := NewCannedDescriber(0)

	desc, err := d.Describe(context.Background(), "Window Cleaning")
	require.NoError(t, err)
	assert.Equal(t, "Professional window cleaning service using advanced techniques.", desc)

	desc, err = d.Describe(context.Background(), "Helicopter Detailing")
	require.NoError(t, err)
	assert.Empty(t, desc)
}

func TestDescribeAllPreservesOrder(t *testing.T) {
	d := NewCannedDescriber(0)
	titles := []string{"Carpet Cleaning", "Unknown Service", "Window Cleaning"}

	out, err := DescribeAll(context.Background(), d, titles)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Contains(t, out[0], "carpet")
	assert.Empty(t, out[1])
	assert.Contains(t, out[2], "window")
}

func TestDescribeCancelled(t *testing.T) {
	d := NewCannedDescriber(1000000000) // effectively forever
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := d.Describe(ctx, "Window Cleaning")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSuggestClient(t *testing.T) {
	c, ok := SuggestClient("marriott")
	require.True(t, ok)
	assert.Equal(t, "Marriott Hotel", c.Name)
	assert.Equal(t, "Kigali, Rwanda", c.Location)

	_, ok = SuggestClient("mt")
	assert.False(t, ok, "short queries never match")

	_, ok = SuggestClient("Unknown Plaza")
	assert.False(t, ok)
}

func TestTemplateItems(t *testing.T) {
	items := TemplateItems()
	require.Len(t, items, 3)
	for _, it := range items {
		assert.NotEmpty(t, it.Description)
		assert.Positive(t, it.Qty)
	}
}
