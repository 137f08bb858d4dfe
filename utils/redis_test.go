package utils_test

import (
	"context"
	"csrfdemo/models"
	"csrfdemo/simulator"
	"csrfdemo/utils"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// runPublisher starts pub and waits for it to stop once the test's context
// is cancelled.
func runPublisher(t *testing.T, ctx context.Context, pub *utils.StatePublisher) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		defer close(done)
		pub.Run(ctx)
	}()
	t.Cleanup(func() { <-done })
}

func TestOpenRedisPool(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := utils.OpenRedisPool("redis://" + mr.Addr())
	require.NoError(t, err)
	defer client.Close()

	_, err = utils.OpenRedisPool("not a url")
	assert.Error(t, err)
}

func TestStatePublisherRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := utils.OpenRedisPool("redis://" + mr.Addr())
	require.NoError(t, err)
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	const channel = "csrfdemo:test"
	states, err := utils.SubscribeStates(ctx, client, channel)
	require.NoError(t, err)

	want := models.State{
		LoggedIn:  true,
		Balance:   1000,
		Mode:      models.ModeProtected,
		CSRFToken: "csrf-ab12cd34e",
		Log: []models.LogEntry{
			{Message: "Logged in! CSRF token generated: csrf-ab12cd34e", Severity: models.SeveritySuccess, Time: "10:00:00"},
		},
	}
	pub := utils.NewStatePublisher(client, channel, zaptest.NewLogger(t).Sugar())
	runPublisher(t, ctx, pub)
	pub.Observe(want)

	select {
	case got := <-states:
		assert.Equal(t, want, got)
	case <-ctx.Done():
		t.Fatal("no state received")
	}
}

func TestSubscribeStatesSkipsMalformedPayloads(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := utils.OpenRedisPool("redis://" + mr.Addr())
	require.NoError(t, err)
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	const channel = "csrfdemo:test"
	states, err := utils.SubscribeStates(ctx, client, channel)
	require.NoError(t, err)

	mr.Publish(channel, "{not json")
	pub := utils.NewStatePublisher(client, channel, nil)
	require.NoError(t, pub.Publish(ctx, models.State{Balance: 500, Mode: models.ModeVulnerable, Log: []models.LogEntry{}}))

	select {
	case got := <-states:
		assert.Equal(t, int64(500), got.Balance)
	case <-ctx.Done():
		t.Fatal("no state received")
	}

	cancel()
	select {
	case _, ok := <-states:
		assert.False(t, ok, "stream should close once the context is done")
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not close")
	}
}

func TestStatePublisherLogsFailures(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := utils.OpenRedisPool("redis://" + mr.Addr())
	require.NoError(t, err)
	client.Close()

	pub := utils.NewStatePublisher(client, "csrfdemo:test", zaptest.NewLogger(t).Sugar())
	assert.Error(t, pub.Publish(context.Background(), models.State{}))
	assert.NotPanics(t, func() { pub.Observe(models.State{}) })
}

// silentListener accepts connections and never answers, like a hung Redis
func silentListener(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	var (
		mu    sync.Mutex
		conns []net.Conn
	)
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			mu.Lock()
			conns = append(conns, conn)
			mu.Unlock()
		}
	}()
	t.Cleanup(func() {
		ln.Close()
		mu.Lock()
		defer mu.Unlock()
		for _, c := range conns {
			c.Close()
		}
	})
	return ln.Addr().String()
}

func TestUnresponsiveRedisDoesNotStallSimulator(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:                  silentListener(t),
		ReadTimeout:           -1,
		ContextTimeoutEnabled: true,
	})
	defer client.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pub := utils.NewStatePublisher(client, "csrfdemo:test", nil)
	runPublisher(t, ctx, pub)

	sim := simulator.New(simulator.WithMode(models.ModeVulnerable))
	defer sim.Subscribe(pub.Observe)()

	start := time.Now()
	for i := 0; i < 200; i++ {
		sim.Login()
		_, err := sim.SimulateTransfer(models.OriginMalicious, 500)
		require.NoError(t, err)
	}
	st := sim.State()

	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, int64(500), st.Balance)
}

func TestObserveDropsWhenQueueIsFull(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := utils.OpenRedisPool("redis://" + mr.Addr())
	require.NoError(t, err)
	defer client.Close()

	pub := utils.NewStatePublisher(client, "csrfdemo:test", zaptest.NewLogger(t).Sugar())

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			pub.Observe(models.State{Balance: int64(i)})
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Observe blocked without a running publisher")
	}
}
