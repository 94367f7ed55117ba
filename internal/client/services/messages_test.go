package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/doorbell/internal/client/models"
	"github.com/stretchr/testify/assert"
)

func TestUserMessage(t *testing.T) {
	assert.Empty(t, UserMessage(nil))
	assert.Contains(t, UserMessage(fmt.Errorf("x: %w", ErrNetworkUnavailable)), "No connection")
	assert.Contains(t, UserMessage(&StageError{Stage: StageSignup, Err: ErrAvailabilityConflict}), "already registered")
	assert.Contains(t, UserMessage(context.Canceled), "cancelled")
	assert.Equal(t, "Something went wrong. Please try again.", UserMessage(errors.New("boom")))

	rejected := &OTPRejectedError{Status: models.OTPStatusExpired}
	assert.Equal(t, rejected.UserMessage(), UserMessage(&StageError{Stage: StageSendOTP, Err: rejected}))
}
