package agent_test

import (
	"encoding/json"
	"testing"

	"github.com/samuelfneumann/tdlearn/agent"
	"github.com/samuelfneumann/tdlearn/agent/tabular/qlearning"
	"github.com/samuelfneumann/tdlearn/agent/tabular/sarsa"
)

func TestConfigAt(t *testing.T) {
	list := sarsa.ConfigList{
		LearningRate: []float64{0.1, 0.5},
		Discount:     []float64{0.8, 0.9},
		Epsilon:      []float64{0.1},
		Tolerance:    []float64{0, 1e-9},
	}

	want := []sarsa.Config{
		{LearningRate: 0.1, Discount: 0.8, Epsilon: 0.1, Tolerance: 0},
		{LearningRate: 0.1, Discount: 0.8, Epsilon: 0.1, Tolerance: 1e-9},
		{LearningRate: 0.1, Discount: 0.9, Epsilon: 0.1, Tolerance: 0},
		{LearningRate: 0.1, Discount: 0.9, Epsilon: 0.1, Tolerance: 1e-9},
		{LearningRate: 0.5, Discount: 0.8, Epsilon: 0.1, Tolerance: 0},
		{LearningRate: 0.5, Discount: 0.8, Epsilon: 0.1, Tolerance: 1e-9},
		{LearningRate: 0.5, Discount: 0.9, Epsilon: 0.1, Tolerance: 0},
		{LearningRate: 0.5, Discount: 0.9, Epsilon: 0.1, Tolerance: 1e-9},
	}

	if list.Len() != len(want) {
		t.Fatalf("len = %d, want %d", list.Len(), len(want))
	}
	for i := range want {
		if c := agent.ConfigAt(i, list); c != want[i] {
			t.Errorf("config %d = %+v, want %+v", i, c, want[i])
		}
	}
}

func TestConfigAtOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for index out of range")
		}
	}()

	list := qlearning.ConfigList{
		LearningRate: []float64{0.1},
		Discount:     []float64{0.8},
		Epsilon:      []float64{0.1},
		Tolerance:    []float64{0},
	}
	agent.ConfigAt(1, list)
}

func TestTypedConfigListJSON(t *testing.T) {
	lists := []agent.TypedConfigList{
		qlearning.NewConfigList([]float64{0.1, 0.2}, []float64{0.8},
			[]float64{0.1}, []float64{1e-9}),
		sarsa.NewConfigList([]float64{0.5}, []float64{0.9, 0.99},
			[]float64{0.05}, []float64{0}),
	}

	for _, list := range lists {
		data, err := json.Marshal(list)
		if err != nil {
			t.Fatalf("could not marshal %v: %v", list.Type, err)
		}

		var decoded agent.TypedConfigList
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("could not unmarshal %v: %v", list.Type, err)
		}

		if decoded.Type != list.Type {
			t.Errorf("type = %v, want %v", decoded.Type, list.Type)
		}
		if decoded.Len() != list.Len() {
			t.Fatalf("%v: len = %d, want %d", list.Type, decoded.Len(),
				list.Len())
		}
		for i := 0; i < list.Len(); i++ {
			if got, want := decoded.At(i), list.At(i); got != want {
				t.Errorf("%v: config %d = %+v, want %+v", list.Type, i, got,
					want)
			}
		}
	}
}

func TestUnmarshalUnregistered(t *testing.T) {
	data := []byte(`{"Type": "Unknown", "ConfigList": {}}`)

	var decoded agent.TypedConfigList
	if err := json.Unmarshal(data, &decoded); err == nil {
		t.Errorf("expected error for unregistered type")
	}
}

func TestRegistered(t *testing.T) {
	for _, ty := range []agent.Type{agent.QLearningTabular,
		agent.SarsaTabular} {
		if !agent.Registered(ty) {
			t.Errorf("%v not registered", ty)
		}
	}
}
