package module

import (
	"bytes"
	"context"
	"testing"

	"github.com/soyeahso/underline/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testModule struct {
	id       string
	name     string
	initErr  error
	gotArgs  []any
	initLog  *[]string
	initCall int
}

func (m *testModule) ID() string   { return m.id }
func (m *testModule) Name() string { return m.name }
func (m *testModule) Init(_ context.Context, args ...any) error {
	m.initCall++
	m.gotArgs = args
	if m.initLog != nil {
		*m.initLog = append(*m.initLog, m.id)
	}
	return m.initErr
}

func testRegistry() *Registry {
	return NewRegistry(logging.Nop())
}

func TestRegistry_Register(t *testing.T) {
	reg := testRegistry()
	err := reg.Register(&testModule{id: "test", name: "Test Module"})
	require.NoError(t, err)
	assert.Equal(t, 1, reg.Count())
}

func TestRegistry_Register_Duplicate(t *testing.T) {
	reg := testRegistry()
	m := &testModule{id: "test", name: "Test"}

	require.NoError(t, reg.Register(m))
	err := reg.Register(m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestRegistry_Get(t *testing.T) {
	reg := testRegistry()
	require.NoError(t, reg.Register(&testModule{id: "test", name: "Test"}))

	got := reg.Get("test")
	require.NotNil(t, got)
	assert.Equal(t, "test", got.ID())

	assert.Nil(t, reg.Get("nonexistent"))
}

func TestRegistry_List(t *testing.T) {
	reg := testRegistry()
	require.NoError(t, reg.Register(&testModule{id: "a", name: "A"}))
	require.NoError(t, reg.Register(&testModule{id: "b", name: "B"}))

	assert.Equal(t, []string{"a", "b"}, reg.List())
}

func TestRegistry_InitAll(t *testing.T) {
	reg := testRegistry()
	var order []string
	m1 := &testModule{id: "a", name: "A", initLog: &order}
	m2 := &testModule{id: "b", name: "B", initLog: &order}
	require.NoError(t, reg.Register(m1, "config.json", 3))
	require.NoError(t, reg.Register(m2))

	require.NoError(t, reg.InitAll(context.Background()))
	assert.Equal(t, 1, m1.initCall)
	assert.Equal(t, 1, m2.initCall)
	assert.Equal(t, []any{"config.json", 3}, m1.gotArgs)
	assert.Empty(t, m2.gotArgs)
	assert.Equal(t, []string{"a", "b"}, order)
}

func TestRegistry_InitAll_StopsOnError(t *testing.T) {
	reg := testRegistry()
	bad := &testModule{id: "bad", name: "Bad", initErr: assert.AnError}
	after := &testModule{id: "after", name: "After"}
	require.NoError(t, reg.Register(bad))
	require.NoError(t, reg.Register(after))

	err := reg.InitAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "init module bad")
	assert.Equal(t, 0, after.initCall)
}

func TestRegistry_InitAll_Cancelled(t *testing.T) {
	reg := testRegistry()
	m := &testModule{id: "a", name: "A"}
	require.NoError(t, reg.Register(m))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := reg.InitAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, m.initCall)
}

func TestRegistry_InitAll_LogsRunID(t *testing.T) {
	var buf bytes.Buffer
	reg := NewRegistry(logging.New(&buf, "info"))
	require.NoError(t, reg.Register(&testModule{id: "a", name: "A"}))

	require.NoError(t, reg.InitAll(context.Background()))
	out := buf.String()
	assert.Contains(t, out, "initializing module")
	assert.Contains(t, out, `"run":"`)
	assert.Contains(t, out, `"subsystem":"modules"`)
}

func TestRegistry_Info(t *testing.T) {
	reg := testRegistry()
	require.NoError(t, reg.Register(&testModule{id: "x", name: "Module X"}))

	infos := reg.Info()
	require.Len(t, infos, 1)
	assert.Equal(t, "x", infos[0].ID)
	assert.Equal(t, "Module X", infos[0].Name)
}
