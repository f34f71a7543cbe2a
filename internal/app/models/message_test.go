package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeConversationPair(t *testing.T) {
	a, b := NormalizeConversationPair(7, 3)
	assert.Equal(t, int64(3), a)
	assert.Equal(t, int64(7), b)

	a, b = NormalizeConversationPair(3, 7)
	assert.Equal(t, int64(3), a)
	assert.Equal(t, int64(7), b)
}

func TestConversationOtherParticipant(t *testing.T) {
	conv := &Conversation{UserAID: 3, UserBID: 7}

	assert.Equal(t, int64(7), conv.OtherParticipant(3))
	assert.Equal(t, int64(3), conv.OtherParticipant(7))
	assert.Zero(t, conv.OtherParticipant(99))
}

func TestConversationHasParticipant(t *testing.T) {
	conv := &Conversation{UserAID: 3, UserBID: 7}

	assert.True(t, conv.HasParticipant(3))
	assert.True(t, conv.HasParticipant(7))
	assert.False(t, conv.HasParticipant(99))
}
