package vector

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type scenarioOp struct {
	Op    string `yaml:"op"`
	Value int    `yaml:"value"`
	Pos   int    `yaml:"pos"`
	N     int    `yaml:"n"`
}

type scenario struct {
	Name     string       `yaml:"name"`
	Ops      []scenarioOp `yaml:"ops"`
	Want     []int        `yaml:"want"`
	Capacity int          `yaml:"capacity"`
}

func loadScenarios(t *testing.T) []scenario {
	t.Helper()
	data, err := os.ReadFile("testdata/scenarios.yaml")
	require.NoError(t, err)

	var scenarios []scenario
	require.NoError(t, yaml.Unmarshal(data, &scenarios))
	require.NotEmpty(t, scenarios)
	return scenarios
}

func (op scenarioOp) apply(t *testing.T, v *Vector[int]) {
	t.Helper()
	switch op.Op {
	case "push":
		v.PushBack(op.Value)
	case "pop":
		v.PopBack()
	case "insert":
		v.Insert(op.Pos, op.Value)
	case "erase":
		v.Erase(op.Pos)
	case "resize":
		v.Resize(op.N)
	case "reserve":
		v.Reserve(op.N)
	case "clear":
		v.Clear()
	default:
		t.Fatalf("unknown op %q", op.Op)
	}
}

func TestScenarios(t *testing.T) {
	for _, sc := range loadScenarios(t) {
		t.Run(sc.Name, func(t *testing.T) {
			v := New[int]()
			for _, op := range sc.Ops {
				op.apply(t, v)
			}

			assert.Equal(t, append([]int{}, sc.Want...), values(v))
			assert.Equal(t, len(sc.Want), v.Size())
			assert.Equal(t, sc.Capacity, v.Capacity())
		})
	}
}
