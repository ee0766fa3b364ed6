package service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kube-rca/incident-predictor/internal/model"
)

func TestWorkspaceReplaceAndReset(t *testing.T) {
	ws := NewWorkspace()

	id, incidents := ws.Incidents()
	assert.Empty(t, id)
	assert.NotNil(t, incidents)

	first := ws.ReplaceIncidents([]model.Incident{{Number: "INC1"}})
	second := ws.ReplaceIncidents(nil)
	assert.NotEqual(t, first, second)

	id, incidents = ws.Incidents()
	assert.Equal(t, second, id)
	assert.NotNil(t, incidents)
	assert.Empty(t, incidents)

	ws.StartExchange("q")
	ws.Reset()
	id, _ = ws.Incidents()
	assert.Empty(t, id)
	assert.Empty(t, ws.History())
}

func TestWorkspaceHistoryIsCopy(t *testing.T) {
	ws := NewWorkspace()
	ws.StartExchange("q")

	history := ws.History()
	history[0].Content = "changed"

	require.Len(t, ws.History(), 1)
	assert.Equal(t, "q", ws.History()[0].Content)
}

func TestWorkspaceConcurrentAppend(t *testing.T) {
	ws := NewWorkspace()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ws.StartExchange("q")
			_ = ws.History()
		}()
	}
	wg.Wait()

	assert.Len(t, ws.History(), 50)
}

func TestAppendToSessionDropsAfterReset(t *testing.T) {
	ws := NewWorkspace()

	session := ws.StartExchange("q1")
	assert.True(t, ws.AppendToSession(session, model.RoleAssistant, "a1"))

	stale := ws.StartExchange("q2")
	ws.Reset()
	assert.False(t, ws.AppendToSession(stale, model.RoleAssistant, "a2"))
	assert.Empty(t, ws.History())
}
