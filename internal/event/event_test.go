package event

import "testing"

func TestDispatchInSubscriptionOrder(t *testing.T) {
	d := NewDispatcher()
	var got []string
	d.Subscribe(ListenerFunc(func(e Event) { got = append(got, "a:"+string(e.Type)) }), WaveStarted, WaveCleared)
	d.Subscribe(ListenerFunc(func(e Event) { got = append(got, "b:"+string(e.Type)) }), WaveStarted)

	d.Dispatch(Event{Type: WaveStarted, Data: 1})
	d.Dispatch(Event{Type: WaveCleared})
	d.Dispatch(Event{Type: EnemyEscaped})

	want := []string{"a:WaveStarted", "b:WaveStarted", "a:WaveCleared"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, got[i], want[i])
		}
	}
}
