package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStrip_RemovesSyntax(t *testing.T) {
	src := []byte("# Hello *Alice*\n\nBob went [home](home.md).\n")

	got := Strip(src)
	require.Contains(t, got, "Hello Alice")
	require.Contains(t, got, "Bob went home.")
	require.NotContains(t, got, "#")
	require.NotContains(t, got, "home.md")
	require.NotContains(t, got, "*")
}

func TestStrip_SoftBreakBecomesSpace(t *testing.T) {
	require.Equal(t, "one two", Strip([]byte("one\ntwo\n")))
}

func TestStrip_BlocksSeparated(t *testing.T) {
	require.Equal(t, "first\nsecond", Strip([]byte("first\n\nsecond\n")))
}

func TestStrip_DropsCode(t *testing.T) {
	got := Strip([]byte("Carol waits.\n\n```\nDave()\n```\n\nInline `Eve` here.\n"))
	require.Contains(t, got, "Carol waits.")
	require.NotContains(t, got, "Dave")
	require.NotContains(t, got, "Eve")
}

func TestStrip_Empty(t *testing.T) {
	require.Equal(t, "", Strip(nil))
}
