package pearl_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pearl "github.com/dmitrymomot/pearl-go"
	"github.com/dmitrymomot/pearl-go/pkg/retry"
)

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     pearl.Config
		wantErr error
	}{
		{
			name: "api key only is enough",
			cfg:  pearl.Config{APIKey: "pk_test_123"},
		},
		{
			name:    "missing api key",
			cfg:     pearl.Config{},
			wantErr: pearl.ErrInvalidConfiguration,
		},
		{
			name:    "negative timeout",
			cfg:     pearl.Config{APIKey: "pk_test_123", Timeout: -time.Second},
			wantErr: pearl.ErrInvalidConfiguration,
		},
		{
			name: "invalid retry config fails construction",
			cfg: pearl.Config{
				APIKey: "pk_test_123",
				Retry: retry.Config{
					Enabled:       true,
					MaxRetries:    3,
					RetryDelay:    time.Minute,
					MaxRetryDelay: time.Second,
				},
			},
			wantErr: retry.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client, err := pearl.New(tt.cfg)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, client)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, client)
			assert.NotNil(t, client.Chat)
			assert.NotNil(t, client.Webhooks)
		})
	}
}
