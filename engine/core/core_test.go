package core

import "testing"

func TestEventBus_DispatchesQueuedEvents(t *testing.T) {
	bus := NewEventBus()
	var got []interface{}
	bus.On(EvtMapChanged, func(e Event) { got = append(got, e.Payload) })
	bus.Emit(EvtMapChanged, 1)
	bus.Emit(EvtOutOfRange, 2)
	bus.Emit(EvtMapChanged, 3)
	if len(got) != 0 {
		t.Fatal("Emit should not run handlers")
	}
	bus.Dispatch()
	if len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Fatalf("unexpected payloads %v", got)
	}
	if bus.Pending() != 0 {
		t.Fatalf("queue should be drained, %d left", bus.Pending())
	}
}

func TestEventBus_HandlerEmitsDuringDispatch(t *testing.T) {
	bus := NewEventBus()
	var order []EventType
	bus.On(EvtMapChanged, func(e Event) {
		order = append(order, e.Type)
		bus.Emit(EvtPathfindingUpdated, nil)
	})
	bus.On(EvtPathfindingUpdated, func(e Event) { order = append(order, e.Type) })
	bus.Emit(EvtMapChanged, nil)
	bus.Dispatch()
	if len(order) != 2 || order[1] != EvtPathfindingUpdated {
		t.Fatalf("chained event not delivered: %v", order)
	}
}

func TestMode_Cycles(t *testing.T) {
	if ModePathfindingTesting.Next() != ModeMapEditing {
		t.Fatal("Next should wrap to map editing")
	}
	if ModeMapEditing.Previous() != ModePathfindingTesting {
		t.Fatal("Previous should wrap to pathfinding testing")
	}
	for m := ModeMapEditing; m < modeCount; m++ {
		if m.String() == "Unknown" || m.Info() == "" {
			t.Fatalf("mode %d missing text", m)
		}
	}
}

func TestModeSwitch_RefusesWhileBusy(t *testing.T) {
	ms := ModeSwitch{Current: ModePathfindingTesting}
	busy := true
	if ms.Change(true, func() bool { return busy }) {
		t.Fatal("should not leave pathfinding testing while busy")
	}
	busy = false
	var from, to Mode
	ms.OnChange = func(f, tt Mode) { from, to = f, tt }
	if !ms.Change(true, func() bool { return busy }) {
		t.Fatal("should change when idle")
	}
	if from != ModePathfindingTesting || to != ModeMapEditing || ms.Current != ModeMapEditing {
		t.Fatalf("unexpected transition %v -> %v", from, to)
	}
	ms.Current = ModeUnitPlacement
	if !ms.Change(false, func() bool { return true }) || ms.Current != ModeMapEditing {
		t.Fatal("busy only guards pathfinding testing")
	}
}
