package main

import (
	"testing"

	"github.com/Garsondee/fancy-go/internal/audio"
)

func TestClosePlayer_NilAndRepeated(t *testing.T) {
	// Muted or failed audio leaves no player.
	closePlayer(nil)

	p := &audio.Player{}
	closePlayer(p)
	closePlayer(p)
}
