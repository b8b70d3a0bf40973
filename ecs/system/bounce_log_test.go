package system

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bouncebox/ecs"
	"github.com/milk9111/bouncebox/ecs/component"
)

func TestBounceLogCountsAndLogsHits(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	w, sq := newTestWorld(t, 0, 720, 510, cp.Vector{X: 30, Y: 40})
	NewBoundaryCollisionSystem().Update(w)
	NewBounceLogSystem(logger).Update(w)

	counter, ok := ecs.Get(w, sq, component.BounceCounterComponent.Kind())
	if !ok {
		t.Fatalf("missing bounce counter")
	}
	if counter.Total != 2 {
		t.Fatalf("expected 2 bounces, got %d", counter.Total)
	}
	if counter.PerEdge[component.EdgeRight] != 1 || counter.PerEdge[component.EdgeBottom] != 1 {
		t.Fatalf("unexpected per-edge counts: %v", counter.PerEdge)
	}
	if w.Events().Len() != 0 {
		t.Fatalf("expected events drained, %d left", w.Events().Len())
	}

	out := buf.String()
	if strings.Count(out, "boundary hit") != 2 {
		t.Fatalf("expected two log lines, got %q", out)
	}
	if !strings.Contains(out, "edge=right") || !strings.Contains(out, "edge=bottom") {
		t.Fatalf("expected edges in log output, got %q", out)
	}
}

func TestBounceLogQuietAboveDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel})

	w, sq := newTestWorld(t, 0, -5, 100, cp.Vector{X: -10})
	NewBoundaryCollisionSystem().Update(w)
	NewBounceLogSystem(logger).Update(w)

	if buf.Len() != 0 {
		t.Fatalf("expected no output at info level, got %q", buf.String())
	}
	counter, _ := ecs.Get(w, sq, component.BounceCounterComponent.Kind())
	if counter.Total != 1 {
		t.Fatalf("hits must be counted regardless of log level, got %d", counter.Total)
	}
}

func TestBounceLogSkipsDestroyedEntities(t *testing.T) {
	w, sq := newTestWorld(t, 0, 0, 0, cp.Vector{})
	w.Events().Push(ecs.Event{Type: ecs.EventBoundaryHit, Data: ecs.BoundaryHit{Entity: sq, Edge: component.EdgeTop}})
	ecs.DestroyEntity(w, sq)

	NewBounceLogSystem(nil).Update(w)
	if w.Events().Len() != 0 {
		t.Fatalf("expected queue drained")
	}
}
