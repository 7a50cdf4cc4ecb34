package services_test

import (
	"net/url"
	"testing"

	"github.com/Sarujan100/best-wishes-final-sub001/services"
)

func TestHandshakeToken(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"/socket.io/?EIO=3&transport=polling&token=abc.def.ghi", "abc.def.ghi"},
		{"/socket.io/?token=Bearer%20abc.def.ghi", "abc.def.ghi"},
		{"/socket.io/?EIO=3&transport=websocket", ""},
	}
	for _, tt := range tests {
		u, err := url.Parse(tt.raw)
		if err != nil {
			t.Fatalf("parse %q: %v", tt.raw, err)
		}
		if got := services.HandshakeToken(*u); got != tt.want {
			t.Errorf("HandshakeToken(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestSocketHubIsAPusher(t *testing.T) {
	var _ services.Pusher = services.NewSocketHub([]string{"http://localhost:3000"})
}
