package circuit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBreaker_InitialState(t *testing.T) {
	b := New("profile-registry")
	assert.False(t, b.IsOpen())
	assert.Equal(t, StateClosed, b.State())
	assert.Equal(t, "profile-registry", b.Name())
	assert.Equal(t, "closed", b.State().String())
}

// step is one recorded outcome and the state expected after it.
type step struct {
	fail     bool
	wantOpen bool
}

func TestBreaker_Sequences(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		outcome []step
	}{
		{
			name: "opens on the third consecutive failure",
			opts: []Option{WithFailureThreshold(3)},
			outcome: []step{
				{fail: true}, {fail: true}, {fail: true, wantOpen: true},
			},
		},
		{
			name: "success resets the failure count",
			opts: []Option{WithFailureThreshold(3)},
			outcome: []step{
				{fail: true}, {fail: true}, {},
				{fail: true}, {fail: true}, {fail: true, wantOpen: true},
			},
		},
		{
			name: "closes after enough successes",
			opts: []Option{WithFailureThreshold(1), WithSuccessThreshold(2)},
			outcome: []step{
				{fail: true, wantOpen: true}, {wantOpen: true}, {},
			},
		},
		{
			name: "failure while open resets the success count",
			opts: []Option{WithFailureThreshold(1), WithSuccessThreshold(3)},
			outcome: []step{
				{fail: true, wantOpen: true},
				{wantOpen: true}, {wantOpen: true},
				{fail: true, wantOpen: true},
				{wantOpen: true}, {wantOpen: true}, {},
			},
		},
		{
			name: "non-positive thresholds fall back to five",
			opts: []Option{WithFailureThreshold(0), WithSuccessThreshold(-1)},
			outcome: []step{
				{fail: true}, {fail: true}, {fail: true}, {fail: true},
				{fail: true, wantOpen: true},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New("profile-registry", tt.opts...)
			for i, s := range tt.outcome {
				if s.fail {
					b.RecordFailure()
				} else {
					b.RecordSuccess()
				}
				assert.Equal(t, s.wantOpen, b.IsOpen(), "after step %d", i)
			}
		})
	}
}

func TestBreaker_ReportsTransitionsOnce(t *testing.T) {
	b := New("profile-registry", WithFailureThreshold(1), WithSuccessThreshold(1))

	useFallback, change := b.RecordFailure()
	assert.True(t, useFallback)
	assert.True(t, change.Opened)

	useFallback, change = b.RecordFailure()
	assert.True(t, useFallback)
	assert.False(t, change.Opened, "already open")

	usePrimary, change := b.RecordSuccess()
	assert.True(t, usePrimary)
	assert.True(t, change.Closed)
}

func TestBreaker_Reset(t *testing.T) {
	b := New("profile-registry", WithFailureThreshold(1))
	b.RecordFailure()
	assert.Equal(t, "open", b.State().String())

	b.Reset()
	assert.False(t, b.IsOpen())
	assert.Equal(t, StateClosed, b.State())
}
