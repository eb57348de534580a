package cdp

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ysmood/gson"
	"go.uber.org/goleak"

	"github.com/bnema/chatdeck/internal/domain/autostyle"
)

func newTaskWindow() *Window {
	w := &Window{
		observers: make(map[string]func([]autostyle.Mutation)),
		wake:      make(chan struct{}, 1),
		done:      make(chan struct{}),
	}
	go w.runTasks()
	return w
}

func TestWindow_QueueMicrotaskRunsInOrder(t *testing.T) {
	defer goleak.VerifyNone(t)

	w := newTaskWindow()
	var (
		mu  sync.Mutex
		got []int
		wg  sync.WaitGroup
	)
	wg.Add(3)
	for i := range 3 {
		w.QueueMicrotask(func() {
			defer wg.Done()
			mu.Lock()
			got = append(got, i)
			mu.Unlock()
		})
	}
	wg.Wait()

	assert.Equal(t, []int{0, 1, 2}, got)
	require.NoError(t, w.Close())
}

func TestWindow_QueueMicrotaskFromTask(t *testing.T) {
	defer goleak.VerifyNone(t)

	w := newTaskWindow()
	done := make(chan struct{})
	w.QueueMicrotask(func() {
		w.QueueMicrotask(func() { close(done) })
	})
	<-done
	require.NoError(t, w.Close())
}

func TestWindow_ClosedDropsTasks(t *testing.T) {
	defer goleak.VerifyNone(t)

	w := newTaskWindow()
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	w.QueueMicrotask(func() { t.Error("task ran after close") })
	w.taskMu.Lock()
	defer w.taskMu.Unlock()
	assert.Empty(t, w.tasks)
}

func TestWindow_DispatchRoutesToObserver(t *testing.T) {
	defer goleak.VerifyNone(t)

	w := newTaskWindow()
	defer func() { require.NoError(t, w.Close()) }()

	var got []autostyle.Mutation
	w.observers["7"] = func(m []autostyle.Mutation) { got = m }

	w.dispatch(gson.New(map[string]any{
		"id": "7",
		"records": []any{
			map[string]any{"type": "childList", "added": 2, "attr": ""},
			map[string]any{"type": "attributes", "added": 0, "attr": "class"},
		},
	}))

	assert.Equal(t, []autostyle.Mutation{
		{Type: autostyle.MutationChildList, AddedNodes: 2},
		{Type: autostyle.MutationAttributes, AttributeName: "class"},
	}, got)

	// Unknown observers are ignored.
	w.dispatch(gson.New(map[string]any{"id": "8", "records": []any{}}))
}
