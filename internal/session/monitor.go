package session

import (
	"context"
	"errors"
	"time"
)

//go:generate moq -rm -out monitor_mock.go . ActivityMonitorInterface
type ActivityMonitorInterface interface {
	Start(ctx context.Context) error
}

var _ ActivityMonitorInterface = (*ActivityMonitor)(nil)

// ActivityMonitor aborts the session when no recognition result
// arrives within the timeout. The activity channel closing means the
// pipeline finished normally and the monitor stands down.
type ActivityMonitor struct {
	activityCh      <-chan struct{}
	timeoutDuration time.Duration
}

func NewActivityMonitor(
	activityCh <-chan struct{},
	timeoutDuration time.Duration,
) (*ActivityMonitor, error) {
	if activityCh == nil {
		return nil, errors.New("activity channel must be specified")
	}
	if timeoutDuration <= 0 {
		return nil, errors.New("timeout duration must be positive")
	}

	return &ActivityMonitor{
		activityCh:      activityCh,
		timeoutDuration: timeoutDuration,
	}, nil
}

func (m *ActivityMonitor) Start(ctx context.Context) error {
	timer := time.NewTimer(m.timeoutDuration)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-m.activityCh:
			if !ok {
				return nil
			}
			if !timer.Stop() {
				<-timer.C
			}
			timer.Reset(m.timeoutDuration)
		case <-timer.C:
			return errors.New("no recognition activity for a long time")
		}
	}
}
