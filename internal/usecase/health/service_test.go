package health

import (
	"context"
	"errors"
	"testing"
)

type pingerMock struct {
	PingFn func(ctx context.Context) error
}

func (m *pingerMock) Ping(ctx context.Context) error {
	return m.PingFn(ctx)
}

func TestCheck_Healthy(t *testing.T) {
	svc := New(&pingerMock{PingFn: func(context.Context) error { return nil }})

	report := svc.Check(context.Background())
	if report.Status != Healthy {
		t.Errorf("status = %q, want %q", report.Status, Healthy)
	}
	if report.Checks["database"] != CheckOK {
		t.Errorf("database check = %q, want %q", report.Checks["database"], CheckOK)
	}
}

func TestCheck_DatabaseDown(t *testing.T) {
	svc := New(&pingerMock{PingFn: func(context.Context) error {
		return errors.New("connection refused")
	}})

	report := svc.Check(context.Background())
	if report.Status != Unhealthy {
		t.Errorf("status = %q, want %q", report.Status, Unhealthy)
	}
	if report.Checks["database"] != CheckError {
		t.Errorf("database check = %q, want %q", report.Checks["database"], CheckError)
	}
}
