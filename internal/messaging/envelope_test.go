package messaging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/veriframe/vf-pipeline/internal/messaging"
)

func TestUnwrapBody_Wrapped(t *testing.T) {
	wrapped := []byte(`{"Message": "{\"asset_id\":\"abc\"}"}`)
	assert.Equal(t, []byte(`{"asset_id":"abc"}`), messaging.UnwrapBody(wrapped))
}

func TestUnwrapBody_Bare(t *testing.T) {
	bare := []byte(`{"asset_id":"abc"}`)
	assert.Equal(t, bare, messaging.UnwrapBody(bare))
}

func TestUnwrapBody_NotJSON(t *testing.T) {
	garbage := []byte("not json at all")
	assert.Equal(t, garbage, messaging.UnwrapBody(garbage))
}

func TestUnwrapBody_NullMessageField(t *testing.T) {
	body := []byte(`{"Message": null}`)
	assert.Equal(t, body, messaging.UnwrapBody(body))
}
