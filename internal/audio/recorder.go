// Package audio captures microphone input and encodes it for AI providers.
package audio

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gen2brain/malgo"
)

// ErrNoInputDevice is returned when the default capture device cannot be
// opened.
var ErrNoInputDevice = errors.New("no audio input device available")

const (
	captureSampleRate = 16000
	captureChannels   = 1

	// defaultMaxDuration bounds recordings whose action config carries no
	// explicit limit.
	defaultMaxDuration = 30 * time.Second
)

// Recorder captures PCM from the default input device and returns it as WAV.
type Recorder struct{}

// NewRecorder creates a recorder. Device access is deferred to Record so a
// missing microphone only fails the actions that need it.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record captures up to maxDuration of mono 16-bit audio, or until ctx is
// done, and returns the WAV bytes with their MIME type. A maxDuration of
// zero applies the default bound.
func (r *Recorder) Record(ctx context.Context, maxDuration time.Duration) ([]byte, string, error) {
	if maxDuration <= 0 {
		maxDuration = defaultMaxDuration
	}

	mctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrNoInputDevice, err)
	}
	defer func() {
		_ = mctx.Uninit()
		mctx.Free()
	}()

	cfg := malgo.DefaultDeviceConfig(malgo.Capture)
	cfg.Capture.Format = malgo.FormatS16
	cfg.Capture.Channels = captureChannels
	cfg.SampleRate = captureSampleRate

	var (
		mu  sync.Mutex
		pcm []byte
	)
	callbacks := malgo.DeviceCallbacks{
		Data: func(_, input []byte, _ uint32) {
			mu.Lock()
			pcm = append(pcm, input...)
			mu.Unlock()
		},
	}

	device, err := malgo.InitDevice(mctx.Context, cfg, callbacks)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrNoInputDevice, err)
	}
	defer device.Uninit()

	if err := device.Start(); err != nil {
		return nil, "", fmt.Errorf("failed to start capture: %w", err)
	}

	select {
	case <-time.After(maxDuration):
	case <-ctx.Done():
	}
	if err := device.Stop(); err != nil {
		return nil, "", fmt.Errorf("failed to stop capture: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(pcm) == 0 {
		return nil, "", errors.New("no audio captured")
	}
	return EncodeWAV(pcm, captureSampleRate, captureChannels), WAVMimeType, nil
}
