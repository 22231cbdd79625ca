//go:build integration

// Package catalog_test exercises the full catalog path end to end:
// standard catalog assembly, materialization, attribute queries, event
// subscriptions, and metric export.
package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	graalprom "github.com/aetheriaxai/graal/pkg/export/prometheus"
	"github.com/aetheriaxai/graal/pkg/managed"
	"github.com/aetheriaxai/graal/pkg/platform"
	"github.com/aetheriaxai/graal/pkg/vminfo"
)

func TestStandardCatalogEndToEnd(t *testing.T) {
	support, err := platform.New(
		platform.WithMemoryThreshold(1),
		platform.WithEventBuffer(16),
	)
	require.NoError(t, err)

	t.Run("all standard groups resolve", func(t *testing.T) {
		runtimeObj, err := support.Single(vminfo.RuntimeTag)
		require.NoError(t, err)
		assert.Equal(t, "go.runtime:type=Runtime", runtimeObj.ObjectName().String())

		threading, err := support.Single(vminfo.ThreadingTag)
		require.NoError(t, err)
		assert.NotNil(t, threading)

		extended, err := support.Single(vminfo.ExtendedThreadingTag)
		require.NoError(t, err)
		assert.Equal(t, threading.ObjectName(), extended.ObjectName())

		memory, err := support.Single(vminfo.MemoryTag)
		require.NoError(t, err)
		assert.NotNil(t, memory)

		pools, err := support.Many(vminfo.MemoryPoolTag)
		require.NoError(t, err)
		assert.Len(t, pools, 4)

		osObj, err := support.Single(vminfo.OSTag)
		require.NoError(t, err)
		assert.NotNil(t, osObj)

		// Test binaries always carry module build information.
		buildObj, err := support.Single(vminfo.BuildTag)
		require.NoError(t, err)
		assert.NotNil(t, buildObj)
	})

	t.Run("goroutine accounting flows through queries", func(t *testing.T) {
		done := make(chan struct{})
		go func() {
			support.NoteStart()
			defer support.NoteExit()
			<-done
		}()
		defer close(done)

		// The tracked goroutine registers before any work, but give the
		// scheduler a moment to run it.
		require.Eventually(t, func() bool {
			obj, err := support.Single(vminfo.ThreadingTag)
			if err != nil {
				return false
			}
			threading, ok := obj.(vminfo.Threading)
			if !ok {
				return false
			}
			return threading.TrackedLive() >= 1
		}, time.Second, 10*time.Millisecond)
	})

	t.Run("materialized server answers queries", func(t *testing.T) {
		srv, err := support.Server()
		require.NoError(t, err)

		assert.True(t, support.Sealed())
		assert.NotEmpty(t, srv.ID())
		assert.Equal(t, srv.Count(), len(srv.Names()))
		assert.Contains(t, srv.Domains(), vminfo.Domain)

		// Every listed attribute of every object must read cleanly.
		for _, name := range srv.Names() {
			adapter, err := srv.Lookup(name)
			require.NoError(t, err)
			for _, attr := range adapter.AttributeNames() {
				value, err := srv.Attribute(name, attr)
				require.NoError(t, err, "reading %s on %s", attr, name)
				assert.NotNil(t, value, "attribute %s on %s", attr, name)
			}
		}
	})

	t.Run("provenance separates host and application objects", func(t *testing.T) {
		memory, err := support.Single(vminfo.MemoryTag)
		require.NoError(t, err)
		assert.True(t, support.Allowed(memory))

		// Unregistered objects count as application-provided.
		outsider := &fakeObject{name: managed.MustName("test.catalog:type=Outsider")}
		assert.True(t, support.Allowed(outsider))

		// A catalog embedded in this one rejects our objects as host-owned
		// while still admitting its own.
		embedded, err := platform.New(platform.WithHostCatalog(support.Registry()))
		require.NoError(t, err)
		assert.False(t, embedded.Allowed(memory))

		ownMemory, err := embedded.Single(vminfo.MemoryTag)
		require.NoError(t, err)
		assert.True(t, embedded.Allowed(ownMemory))
	})

	t.Run("memory events reach subscribers", func(t *testing.T) {
		srv, err := support.Server()
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		memName := managed.MustName(vminfo.Domain + ":type=Memory")
		events, err := srv.Subscribe(ctx, memName)
		require.NoError(t, err)

		obj, err := support.Single(vminfo.MemoryTag)
		require.NoError(t, err)
		memory, ok := obj.(vminfo.Memory)
		require.True(t, ok)

		// Threshold is 1 byte, so any observation crosses it.
		memory.Observe()

		select {
		case ev := <-events:
			assert.Equal(t, memName, ev.Source)
			assert.Equal(t, vminfo.EventMemoryThreshold, ev.Type)
			assert.NotZero(t, ev.Sequence)
		case <-ctx.Done():
			t.Fatal("timed out waiting for memory threshold event")
		}
	})

	t.Run("prometheus export publishes numeric attributes", func(t *testing.T) {
		srv, err := support.Server()
		require.NoError(t, err)

		promReg := prometheus.NewRegistry()
		require.NoError(t, promReg.Register(graalprom.NewBridge(srv, "")))

		families, err := promReg.Gather()
		require.NoError(t, err)
		require.NotEmpty(t, families)

		found := map[string]bool{}
		for _, fam := range families {
			found[fam.GetName()] = true
		}
		assert.True(t, found["graal_heap_alloc"], "expected graal_heap_alloc family, got %v", found)
		assert.True(t, found["graal_pid"], "expected graal_pid family, got %v", found)
	})
}

type fakeObject struct {
	name managed.Name
}

func (f *fakeObject) ObjectName() managed.Name { return f.name }
