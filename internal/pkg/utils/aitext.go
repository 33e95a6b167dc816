package utils

import (
	"encoding/json"
	"strings"
)

// StripCodeFences извлекает содержимое markdown-блока ```json ... ``` из ответа
// языковой модели. Если блока нет, текст возвращается без изменений.
func StripCodeFences(text string) string {
	if idx := strings.Index(text, "```json"); idx >= 0 {
		rest := text[idx+len("```json"):]
		if end := strings.Index(rest, "```"); end >= 0 {
			return strings.TrimSpace(rest[:end])
		}
		return strings.TrimSpace(rest)
	}

	if idx := strings.Index(text, "```"); idx >= 0 {
		rest := text[idx+3:]
		if end := strings.LastIndex(rest, "```"); end >= 0 {
			return strings.TrimSpace(rest[:end])
		}
		return strings.TrimSpace(rest)
	}

	return strings.TrimSpace(text)
}

// DecodeModelJSON пытается разобрать JSON из ответа языковой модели.
// Возвращает пустую карту, если разбор невозможен; ошибка наружу не отдаётся.
func DecodeModelJSON(text string) map[string]interface{} {
	cleaned := StripCodeFences(text)

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return map[string]interface{}{}
	}

	return result
}

// ExtractListItems - построчный запасной разбор, когда модель вернула не JSON,
// а маркированный или нумерованный список
func ExtractListItems(text string) []string {
	var items []string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "```") {
			continue
		}

		line = strings.TrimLeft(line, "-*• ")
		for i, r := range line {
			if r >= '0' && r <= '9' || r == '.' || r == ')' || r == ' ' {
				continue
			}
			line = line[i:]
			break
		}

		line = strings.Trim(line, `"',`)
		if line != "" {
			items = append(items, line)
		}
	}

	return items
}

// StringsFromJSONField достаёт []string из поля декодированного JSON-ответа
func StringsFromJSONField(data map[string]interface{}, field string) []string {
	raw, ok := data[field].([]interface{})
	if !ok {
		return nil
	}

	result := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			result = append(result, s)
		}
	}

	return result
}
