package loadbalancer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextCyclesThroughServers(t *testing.T) {
	rr := NewRoundRobin([]string{"http://a:8080", "http://b:8080", "http://c:8080"})

	got := []string{rr.Next(), rr.Next(), rr.Next(), rr.Next()}
	assert.Equal(t, []string{"http://a:8080", "http://b:8080", "http://c:8080", "http://a:8080"}, got)
}

func TestEmptyPoolFallsBackToDefault(t *testing.T) {
	rr := NewRoundRobin(nil)
	assert.Equal(t, "http://localhost:8080", rr.Next())
}

func TestAddAndRemoveServer(t *testing.T) {
	rr := NewRoundRobin([]string{"http://a:8080"})
	rr.AddServer("http://b:8080")
	assert.Len(t, rr.GetServers(), 2)

	rr.RemoveServer("http://a:8080")
	assert.Equal(t, []string{"http://b:8080"}, rr.GetServers())
	assert.Equal(t, "http://b:8080", rr.Next())
	assert.Equal(t, "http://b:8080", rr.Next())
}

func TestRemoveUnknownServerIsNoop(t *testing.T) {
	rr := NewRoundRobin([]string{"http://a:8080"})
	rr.RemoveServer("http://zzz:8080")
	assert.Len(t, rr.GetServers(), 1)
}
