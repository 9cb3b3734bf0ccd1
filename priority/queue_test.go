package priority_test

import (
	"math/rand"
	"testing"

	"github.com/google/btree"
	"github.com/jkomyno/jkds/priority"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// the "minheap" fixture: value ordering written out by ascending key is
// a, e, h, i, m, n, p
var (
	fixtureKeys   = []uint8{5, 4, 1, 3, 6, 0, 2}
	fixtureValues = []string{"m", "i", "n", "h", "e", "a", "p"}
)

type keyValue struct {
	key   uint8
	value string
}

func drainKeyValues(t *testing.T, pq *priority.Queue[uint8, string]) []keyValue {
	t.Helper()
	var out []keyValue
	for !pq.IsEmpty() {
		k, v, err := pq.TopKeyValue()
		require.NoError(t, err)

		top, err := pq.Top()
		require.NoError(t, err)
		assert.Equal(t, v, top)

		popped, err := pq.Pop()
		require.NoError(t, err)
		assert.Equal(t, v, popped)

		out = append(out, keyValue{k, v})
	}
	return out
}

func TestQueue_Empty(t *testing.T) {
	pq := priority.NewMin[int, string](nil, nil)

	assert.True(t, pq.IsEmpty())
	assert.Equal(t, 0, pq.Len())

	_, err := pq.Top()
	assert.ErrorIs(t, err, priority.ErrEmpty)

	_, _, err = pq.TopKeyValue()
	assert.ErrorIs(t, err, priority.ErrEmpty)

	_, err = pq.Pop()
	assert.ErrorIs(t, err, priority.ErrEmpty)
}

func TestQueue_MinPopOrder(t *testing.T) {
	tests := []struct {
		name string
		opts []priority.Option
	}{
		{name: "binary"},
		{name: "4-ary", opts: []priority.Option{priority.WithArity(4)}},
	}

	want := []keyValue{
		{0, "a"}, {6, "e"}, {3, "h"}, {4, "i"}, {5, "m"}, {1, "n"}, {2, "p"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pq := priority.NewMin(
				append([]uint8(nil), fixtureKeys...),
				append([]string(nil), fixtureValues...),
				tt.opts...,
			)

			assert.False(t, pq.IsEmpty())
			assert.Equal(t, 7, pq.Len())

			assert.Equal(t, want, drainKeyValues(t, pq))

			assert.True(t, pq.IsEmpty())
			assert.Equal(t, 0, pq.Len())
		})
	}
}

func TestQueue_MaxPopOrder(t *testing.T) {
	tests := []struct {
		name string
		opts []priority.Option
	}{
		{name: "binary"},
		{name: "4-ary", opts: []priority.Option{priority.WithArity(4)}},
	}

	want := []keyValue{
		{6, "e"}, {5, "m"}, {4, "i"}, {3, "h"}, {2, "p"}, {1, "n"}, {0, "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pq := priority.NewMax(
				append([]uint8(nil), fixtureKeys...),
				append([]string(nil), fixtureValues...),
				tt.opts...,
			)

			assert.Equal(t, want, drainKeyValues(t, pq))
		})
	}
}

func TestQueue_PushPop(t *testing.T) {
	pq := priority.NewMin[uint8, string](nil, nil)

	for k, v := range map[uint8]string{5: "m", 4: "i", 1: "n", 3: "h", 6: "e", 0: "a", 2: "p"} {
		require.NoError(t, pq.Push(k, v))
	}

	want := []keyValue{
		{0, "a"}, {6, "e"}, {3, "h"}, {4, "i"}, {5, "m"}, {1, "n"}, {2, "p"},
	}
	assert.Equal(t, want, drainKeyValues(t, pq))
}

func TestQueue_DuplicateValue(t *testing.T) {
	pq := priority.NewMin[int, string](nil, nil)

	require.NoError(t, pq.Push(1, "a"))
	assert.ErrorIs(t, pq.Push(2, "a"), priority.ErrDuplicateValue)

	// the original association is untouched
	k, err := pq.KeyAt("a")
	require.NoError(t, err)
	assert.Equal(t, 1, k)
	assert.Equal(t, 1, pq.Len())
}

func TestQueue_ContainsAndKeyAt(t *testing.T) {
	pq := priority.NewMin(
		append([]uint8(nil), fixtureKeys...),
		append([]string(nil), fixtureValues...),
	)

	for k, v := range map[uint8]string{5: "m", 4: "i", 1: "n", 3: "h", 6: "e", 0: "a", 2: "p"} {
		assert.True(t, pq.Contains(v))

		got, err := pq.KeyAt(v)
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	assert.False(t, pq.Contains("z"))
	_, err := pq.KeyAt("z")
	assert.ErrorIs(t, err, priority.ErrUnknownValue)

	// popped values are forgotten
	popped, err := pq.Pop()
	require.NoError(t, err)
	assert.Equal(t, "a", popped)
	assert.False(t, pq.Contains("a"))
}

func TestQueue_UpdateKey(t *testing.T) {
	t.Run("decrease in min queue reorders", func(t *testing.T) {
		pq := priority.NewMin(
			[]uint8{5, 4, 1, 3, 8, 0, 2},
			append([]string(nil), fixtureValues...),
		)

		// "e" starts at key 8; after the update it behaves as if it had
		// always been 6
		require.NoError(t, pq.UpdateKey(6, "e"))

		want := []keyValue{
			{0, "a"}, {6, "e"}, {3, "h"}, {4, "i"}, {5, "m"}, {1, "n"}, {2, "p"},
		}
		assert.Equal(t, want, drainKeyValues(t, pq))
	})

	t.Run("decrease to new top", func(t *testing.T) {
		pq := priority.NewMin(
			append([]uint8(nil), fixtureKeys...),
			append([]string(nil), fixtureValues...),
		)

		require.NoError(t, pq.UpdateKey(0, "p"))

		top, err := pq.Top()
		require.NoError(t, err)
		assert.Contains(t, []string{"a", "p"}, top) // both now hold key 0
	})

	t.Run("increase in max queue reorders", func(t *testing.T) {
		pq := priority.NewMax(
			append([]uint8(nil), fixtureKeys...),
			append([]string(nil), fixtureValues...),
		)

		require.NoError(t, pq.UpdateKey(9, "h"))

		k, v, err := pq.TopKeyValue()
		require.NoError(t, err)
		assert.Equal(t, uint8(9), k)
		assert.Equal(t, "h", v)
	})

	t.Run("wrong direction is rejected", func(t *testing.T) {
		pq := priority.NewMin(
			append([]uint8(nil), fixtureKeys...),
			append([]string(nil), fixtureValues...),
		)

		err := pq.UpdateKey(7, "h") // increase in a min queue
		assert.ErrorIs(t, err, priority.ErrWrongDirection)

		// the rejected update leaves the key untouched
		k, kerr := pq.KeyAt("h")
		require.NoError(t, kerr)
		assert.Equal(t, uint8(3), k)
	})

	t.Run("unknown value", func(t *testing.T) {
		pq := priority.NewMin[uint8, string](nil, nil)
		assert.ErrorIs(t, pq.UpdateKey(1, "z"), priority.ErrUnknownValue)
	})
}

func TestQueue_CustomComparison(t *testing.T) {
	type deadline struct {
		day, hour int
	}

	before := func(a, b deadline) bool {
		if a.day != b.day {
			return a.day < b.day
		}
		return a.hour < b.hour
	}

	pq := priority.New[deadline, string](before, nil, nil)
	require.NoError(t, pq.Push(deadline{2, 9}, "review"))
	require.NoError(t, pq.Push(deadline{1, 17}, "release"))
	require.NoError(t, pq.Push(deadline{2, 8}, "standup"))

	var order []string
	for !pq.IsEmpty() {
		v, err := pq.Pop()
		require.NoError(t, err)
		order = append(order, v)
	}

	assert.Equal(t, []string{"release", "standup", "review"}, order)
}

func TestQueue_TruncatesAtShortest(t *testing.T) {
	t.Run("more values than keys", func(t *testing.T) {
		pq := priority.NewMin(
			[]int{3, 1},
			[]string{"c", "a", "ignored", "also ignored"},
		)

		assert.Equal(t, 2, pq.Len())
		assert.False(t, pq.Contains("ignored"))

		v, err := pq.Pop()
		require.NoError(t, err)
		assert.Equal(t, "a", v)
	})

	t.Run("more keys than values", func(t *testing.T) {
		pq := priority.NewMin(
			[]int{3, 1, 0, 0},
			[]string{"c", "a"},
		)

		assert.Equal(t, 2, pq.Len())
	})
}

func TestQueue_FromOrdered(t *testing.T) {
	// keys ascending with values laid out accordingly form a valid min heap
	keys := []uint8{0, 1, 2, 3, 4}
	values := []string{"a", "b", "c", "d", "e"}

	built := priority.NewMin(append([]uint8(nil), keys...), append([]string(nil), values...))
	trusted := priority.NewMin(
		append([]uint8(nil), keys...),
		append([]string(nil), values...),
		priority.FromOrdered(),
	)

	assert.Equal(t, drainKeyValues(t, built), drainKeyValues(t, trusted))
}

// TestQueue_IndexConsistency stresses the index bookkeeping under a random
// mix of pushes, pops, and valid key updates, cross-checking pop order
// against an independently sorted reference.
func TestQueue_IndexConsistency(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	type entry struct {
		key   int
		value int
	}

	pq := priority.NewMin[int, int](nil, nil, priority.WithArity(4))
	ref := btree.NewG(2, func(a, b entry) bool {
		if a.key != b.key {
			return a.key < b.key
		}
		return a.value < b.value
	})
	keys := make(map[int]int)

	for value := 0; value < 300; value++ {
		key := rng.Intn(1 << 20)
		require.NoError(t, pq.Push(key, value))
		ref.ReplaceOrInsert(entry{key, value})
		keys[value] = key

		switch rng.Intn(4) {
		case 0:
			popped, err := pq.Pop()
			require.NoError(t, err)
			_, ok := ref.Delete(entry{keys[popped], popped})
			require.True(t, ok)
			delete(keys, popped)
		case 1:
			// decrease the key of a random live value
			if old, ok := keys[value]; ok && old > 0 {
				next := rng.Intn(old)
				require.NoError(t, pq.UpdateKey(next, value))
				_, ok := ref.Delete(entry{old, value})
				require.True(t, ok)
				ref.ReplaceOrInsert(entry{next, value})
				keys[value] = next
			}
		}

		if lowest, ok := ref.Min(); ok {
			k, v, err := pq.TopKeyValue()
			require.NoError(t, err)
			require.Equal(t, lowest.key, k)
			require.Equal(t, keys[v], k)
		}
	}

	var prev int
	first := true
	for !pq.IsEmpty() {
		k, v, err := pq.TopKeyValue()
		require.NoError(t, err)
		require.Equal(t, keys[v], k)
		if !first {
			require.LessOrEqual(t, prev, k)
		}
		prev, first = k, false
		_, err = pq.Pop()
		require.NoError(t, err)
	}
}

func BenchmarkQueue_PushPop(b *testing.B) {
	for n := 0; n < b.N; n++ {
		pq := priority.NewMin[int, int](nil, nil)
		for i := 0; i < 1024; i++ {
			_ = pq.Push(1024-i, i)
		}
		for !pq.IsEmpty() {
			_, _ = pq.Pop()
		}
	}
}
