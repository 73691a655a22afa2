package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFields(t *testing.T) {
	t.Run("Should marshal keys in insertion order", func(t *testing.T) {
		fields := Fields{
			{Key: "b", Value: 1},
			{Key: "a", Value: 2},
		}

		out, err := json.Marshal(fields)
		require.NoError(t, err)
		assert.Equal(t, `{"b":1,"a":2}`, string(out))
	})

	t.Run("Should report presence and values", func(t *testing.T) {
		fields := Fields{{Key: "status", Value: "Sim"}}

		value, ok := fields.Get("status")
		require.True(t, ok)
		assert.Equal(t, "Sim", value)
		assert.True(t, fields.Has("status"))
		assert.False(t, fields.Has("data"))
		assert.Equal(t, []string{"status"}, fields.Keys())
	})

	t.Run("Should marshal an empty object", func(t *testing.T) {
		out, err := json.Marshal(Fields{})
		require.NoError(t, err)
		assert.Equal(t, `{}`, string(out))
	})
}

func TestFeeMap(t *testing.T) {
	t.Run("Should preserve the key order of the source JSON", func(t *testing.T) {
		var fees FeeMap
		err := json.Unmarshal([]byte(`{"sucumbenciais": 10.5, "contratuais": 5}`), &fees)
		require.NoError(t, err)

		assert.Equal(t, FeeMap{
			{Name: "sucumbenciais", Amount: 10.5},
			{Name: "contratuais", Amount: 5},
		}, fees)
	})

	t.Run("Should round-trip in the same order", func(t *testing.T) {
		fees := FeeMap{
			{Name: "sucumbenciais", Amount: 10.5},
			{Name: "contratuais", Amount: 5},
		}

		out, err := json.Marshal(fees)
		require.NoError(t, err)
		assert.Equal(t, `{"sucumbenciais":10.5,"contratuais":5}`, string(out))
	})

	t.Run("Should decode null as absent", func(t *testing.T) {
		fees := FeeMap{{Name: "contratuais", Amount: 5}}
		err := json.Unmarshal([]byte(`null`), &fees)
		require.NoError(t, err)
		assert.Nil(t, fees)
	})

	t.Run("Should reject non-object input", func(t *testing.T) {
		var fees FeeMap
		assert.Error(t, json.Unmarshal([]byte(`[1, 2]`), &fees))
	})

	t.Run("Should reject non-numeric amounts", func(t *testing.T) {
		var fees FeeMap
		assert.Error(t, json.Unmarshal([]byte(`{"contratuais": "muito"}`), &fees))
	})

	t.Run("Should look up amounts by category", func(t *testing.T) {
		fees := FeeMap{{Name: "periciais", Amount: 200}}

		amount, ok := fees.Get("periciais")
		require.True(t, ok)
		assert.Equal(t, 200.0, amount)
		_, ok = fees.Get("contratuais")
		assert.False(t, ok)
	})
}

func TestMinimalProcessValidate(t *testing.T) {
	t.Run("Should accept absent and non-negative award values", func(t *testing.T) {
		assert.NoError(t, (&MinimalProcess{}).Validate())

		award := 0.0
		assert.NoError(t, (&MinimalProcess{AwardValue: &award}).Validate())
	})

	t.Run("Should reject negative award values", func(t *testing.T) {
		award := -0.01
		err := (&MinimalProcess{AwardValue: &award}).Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "valorCondenacao")
	})
}
