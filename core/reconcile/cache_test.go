package reconcile

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSource struct {
	name  string
	calls atomic.Int32
	err   error
	delay time.Duration
}

func (s *countingSource) Name() string { return s.name }

func (s *countingSource) LoadReference(_ context.Context) ([]Identity, error) {
	s.calls.Add(1)
	time.Sleep(s.delay)
	if s.err != nil {
		return nil, s.err
	}
	return []Identity{{ID: 1, Name: "Jane Doe"}}, nil
}

func TestGetOrBuildReference_CachesWithinTTL(t *testing.T) {
	source := &countingSource{name: t.Name()}
	defer InvalidateReference(source)

	ref, err := GetOrBuildReference(context.Background(), source, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, ref.Len())

	_, err = GetOrBuildReference(context.Background(), source, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int32(1), source.calls.Load())
}

func TestGetOrBuildReference_ZeroTTLRebuilds(t *testing.T) {
	source := &countingSource{name: t.Name()}
	defer InvalidateReference(source)

	for i := 0; i < 3; i++ {
		_, err := GetOrBuildReference(context.Background(), source, 0)
		require.NoError(t, err)
	}
	assert.Equal(t, int32(3), source.calls.Load())
}

func TestGetOrBuildReference_Singleflight(t *testing.T) {
	source := &countingSource{name: t.Name(), delay: 50 * time.Millisecond}
	defer InvalidateReference(source)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := GetOrBuildReference(context.Background(), source, time.Minute)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), source.calls.Load())
}

func TestGetOrBuildReference_Error(t *testing.T) {
	source := &countingSource{name: t.Name(), err: fmt.Errorf("source down")}
	defer InvalidateReference(source)

	_, err := GetOrBuildReference(context.Background(), source, time.Minute)
	assert.EqualError(t, err, "source down")
}

func TestReferenceCache_IsExpired(t *testing.T) {
	assert.True(t, (&ReferenceCache{Built: time.Now()}).IsExpired())
	assert.False(t, (&ReferenceCache{Built: time.Now(), TTL: time.Hour}).IsExpired())
	assert.True(t, (&ReferenceCache{Built: time.Now().Add(-2 * time.Hour), TTL: time.Hour}).IsExpired())
}
