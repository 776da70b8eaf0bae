package wrap

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errBoom = errors.New("boom")

func TestError_Nil(t *testing.T) {
	assert.NoError(t, Error(context.Background(), nil))
}

func TestError_RewrapKeepsInnerContext(t *testing.T) {
	repo := WithAction(WithRequestID(context.Background(), "req-1"), "database_query_failed")
	err := Error(repo, errBoom)

	handler := WithView(WithAction(context.Background(), "admin_get_kpis"), "dashboard")
	err = Error(handler, fmt.Errorf("AdminRepo.KPICounts: %w", err))

	assert.Equal(t, "AdminRepo.KPICounts: boom", err.Error())
	assert.ErrorIs(t, err, errBoom)

	lc := fromContext(ErrorCtx(context.Background(), err))
	assert.Equal(t, LogCtx{Action: "database_query_failed", RequestID: "req-1", View: "dashboard"}, lc)
}

func TestError_RewrapSameError(t *testing.T) {
	ctx := WithAction(context.Background(), "fetch")
	err := Error(ctx, Error(ctx, errBoom))

	assert.Equal(t, "boom", err.Error())
	assert.ErrorIs(t, err, errBoom)
}

func TestErrorCtx_PlainErrorKeepsContext(t *testing.T) {
	ctx := WithUserID(context.Background(), "42")
	assert.Equal(t, ctx, ErrorCtx(ctx, errBoom))
}

func TestWithLogCtx_Merges(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")
	ctx = WithLogCtx(ctx, LogCtx{Action: "render"})

	assert.Equal(t, LogCtx{Action: "render", RequestID: "req-1"}, fromContext(ctx))
}
