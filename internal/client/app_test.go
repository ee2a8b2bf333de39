package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-scim-owner/internal/logger"
	"github.com/MKhiriev/go-scim-owner/internal/service"
	"github.com/MKhiriev/go-scim-owner/internal/service/mock"
	"github.com/MKhiriev/go-scim-owner/internal/tui"
)

type fakeUI struct {
	err   error
	calls int
}

func (f *fakeUI) Run(context.Context) error {
	f.calls++
	return f.err
}

func newTestApp(t *testing.T, ui UI) *App {
	t.Helper()
	job := mock.NewMockBackgroundJob(gomock.NewController(t))
	job.EXPECT().Stop()

	app, err := NewApp(&service.ClientServices{RefreshJob: job}, ui, logger.Nop())
	require.NoError(t, err)
	return app
}

func TestNewApp_RequiresDependencies(t *testing.T) {
	_, err := NewApp(nil, &fakeUI{}, logger.Nop())
	assert.Error(t, err)

	_, err = NewApp(&service.ClientServices{}, nil, logger.Nop())
	assert.Error(t, err)
}

func TestApp_Run(t *testing.T) {
	tests := []struct {
		name    string
		uiErr   error
		wantErr bool
	}{
		{name: "clean exit", uiErr: nil},
		{name: "user quit", uiErr: tui.ErrUserQuit},
		{name: "ui failure", uiErr: errors.New("no tty"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui := &fakeUI{err: tt.uiErr}
			app := newTestApp(t, ui)

			err := app.run(context.Background())
			assert.Equal(t, 1, ui.calls)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.uiErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestApp_Run_InterruptIsNotAnError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	app := newTestApp(t, &fakeUI{err: context.Canceled})
	assert.NoError(t, app.run(ctx))
}
