package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/map-memoir/backend/internal/pkg/utils"
)

func TestStripCodeFences(t *testing.T) {
	t.Run("json fence", func(t *testing.T) {
		text := "Here is the result:\n```json\n{\"locations\": []}\n```\nDone."
		assert.Equal(t, `{"locations": []}`, utils.StripCodeFences(text))
	})

	t.Run("plain fence", func(t *testing.T) {
		text := "```\n{\"a\": 1}\n```"
		assert.Equal(t, `{"a": 1}`, utils.StripCodeFences(text))
	})

	t.Run("no fence returns trimmed text", func(t *testing.T) {
		assert.Equal(t, `{"a": 1}`, utils.StripCodeFences("  {\"a\": 1}  "))
	})

	t.Run("unclosed fence", func(t *testing.T) {
		assert.Equal(t, `{"a": 1}`, utils.StripCodeFences("```json\n{\"a\": 1}"))
	})
}

func TestDecodeModelJSON(t *testing.T) {
	t.Run("valid json", func(t *testing.T) {
		result := utils.DecodeModelJSON(`{"title": "Trip"}`)
		assert.Equal(t, "Trip", result["title"])
	})

	t.Run("fenced json", func(t *testing.T) {
		result := utils.DecodeModelJSON("```json\n{\"title\": \"Trip\"}\n```")
		assert.Equal(t, "Trip", result["title"])
	})

	t.Run("garbage yields empty map", func(t *testing.T) {
		result := utils.DecodeModelJSON("not json at all")
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})
}

func TestExtractListItems(t *testing.T) {
	t.Run("bulleted list", func(t *testing.T) {
		items := utils.ExtractListItems("- Paris\n- London\n- Tokyo")
		assert.Equal(t, []string{"Paris", "London", "Tokyo"}, items)
	})

	t.Run("numbered list", func(t *testing.T) {
		items := utils.ExtractListItems("1. Day one in Paris\n2. Day two in Rome")
		assert.Equal(t, []string{"Day one in Paris", "Day two in Rome"}, items)
	})

	t.Run("skips blank lines and fences", func(t *testing.T) {
		items := utils.ExtractListItems("```\n- Paris\n\n- Rome\n```")
		assert.Equal(t, []string{"Paris", "Rome"}, items)
	})
}

func TestStringsFromJSONField(t *testing.T) {
	data := map[string]interface{}{
		"locations": []interface{}{"Paris", "Rome", 42},
		"title":     "Trip",
	}

	assert.Equal(t, []string{"Paris", "Rome"}, utils.StringsFromJSONField(data, "locations"))
	assert.Nil(t, utils.StringsFromJSONField(data, "title"))
	assert.Nil(t, utils.StringsFromJSONField(data, "missing"))
}
